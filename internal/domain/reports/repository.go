package reports

import "context"

type Repository interface {
	CityExists(ctx context.Context, name string) (bool, error)
	PropertiesInCity(ctx context.Context, city string) ([]CityProperty, error)
	PropertyByRegistry(ctx context.Context, registry string) (*PropertyInfo, error)
	ListingsForProperty(ctx context.Context, propertyID int64) ([]AgencyPrice, error)
	Search(ctx context.Context, filter SearchFilter) ([]SearchResult, error)
	AllProperties(ctx context.Context) ([]PropertySummary, error)
	AgencyListings(ctx context.Context) ([]AgencyListingRow, error)
	OwnerProperties(ctx context.Context) ([]OwnerPropertyRow, error)
}
