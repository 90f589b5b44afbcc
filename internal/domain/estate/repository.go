package estate

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	GetOwner(ctx context.Context, id int64) (*Owner, error)
	ListOwners(ctx context.Context) ([]Owner, error)
	CreateOwner(ctx context.Context, owner *Owner) error
	SaveOwner(ctx context.Context, owner *Owner) error
	DeleteOwner(ctx context.Context, id int64) error

	GetCity(ctx context.Context, id int64) (*City, error)
	GetCityByName(ctx context.Context, name string) (*City, error)
	ListCities(ctx context.Context) ([]City, error)
	CreateCity(ctx context.Context, city *City) error
	SaveCity(ctx context.Context, city *City) error

	GetAddress(ctx context.Context, id int64) (*Address, error)
	ListAddressDetails(ctx context.Context) ([]AddressDetail, error)
	CreateAddress(ctx context.Context, address *Address) error
	SaveAddress(ctx context.Context, address *Address) error
	DeleteAddress(ctx context.Context, id int64) error

	GetProperty(ctx context.Context, id int64) (*Property, error)
	ListProperties(ctx context.Context) ([]Property, error)
	ListPropertiesByOwner(ctx context.Context, ownerID int64) ([]Property, error)
	CreateProperty(ctx context.Context, property *Property) error
	SaveProperty(ctx context.Context, property *Property) error
	DeleteProperty(ctx context.Context, id int64) error

	GetAgency(ctx context.Context, id int64) (*Agency, error)
	GetAgencyByCode(ctx context.Context, code string) (*Agency, error)
	ListAgencies(ctx context.Context) ([]Agency, error)
	CreateAgency(ctx context.Context, agency *Agency) error
	SaveAgency(ctx context.Context, agency *Agency) error

	GetListing(ctx context.Context, id int64) (*Listing, error)
	ListListings(ctx context.Context) ([]Listing, error)
	CreateListing(ctx context.Context, listing *Listing) error
	SaveListing(ctx context.Context, listing *Listing) error
	DeleteListing(ctx context.Context, id int64) error
	DeleteListingsByProperty(ctx context.Context, propertyID int64) (int64, error)
}
