package reports

import "real-estate-go/internal/domain/estate"

var (
	ErrCityNotFound     = estate.ErrCityNotFound
	ErrPropertyNotFound = estate.ErrPropertyNotFound
)

// PropertyInfo is the property and address part shared by every report row.
type PropertyInfo struct {
	PropertyID     int64
	RegistryNumber string
	AreaSqm        float64
	StreetAddress  string
	PostalCode     string
	City           string
}

type CityProperty struct {
	PropertyInfo
	AvgSalePrice   *float64
	AvgRentalPrice *float64
	PricePerSqm    *float64
}

type RegistryPrices struct {
	Property PropertyInfo
	Listings []AgencyPrice
}

type AgencyPrice struct {
	AgencyID    int64
	AgencyName  string
	SalePrice   *float64
	RentalPrice *float64
	PricePerSqm *float64
}

// SearchFilter bounds are inclusive; a nil bound does not constrain.
type SearchFilter struct {
	City      string
	MinSale   *float64
	MaxSale   *float64
	MinRental *float64
	MaxRental *float64
}

type SearchResult struct {
	PropertyInfo
	MinSalePrice   *float64
	MinRentalPrice *float64
}

type PropertySummary struct {
	PropertyInfo
	MinSalePrice   *float64
	MinRentalPrice *float64
	PricePerSqm    *float64
}

// AgencyListingRow is one (agency, listing) pair as read from the store.
type AgencyListingRow struct {
	AgencyID    int64
	AgencyName  string
	CompanyCode string
	ListingID   int64
	PropertyInfo
	SalePrice   *float64
	RentalPrice *float64
}

type AgencyPortfolio struct {
	AgencyID    int64
	AgencyName  string
	CompanyCode string
	Properties  []AgencyProperty
}

type AgencyProperty struct {
	ListingID int64
	PropertyInfo
	SalePrice   *float64
	RentalPrice *float64
	PricePerSqm *float64
}

// OwnerPropertyRow is one (owner, property) pair as read from the store.
type OwnerPropertyRow struct {
	OwnerID        int64
	FirstName      string
	LastName       string
	PhoneNumber    string
	RegistryNumber string
	StreetAddress  string
	City           string
	AreaSqm        float64
}

type OwnerPortfolio struct {
	OwnerID     int64
	FirstName   string
	LastName    string
	PhoneNumber string
	Properties  []OwnedProperty
}

func (o OwnerPortfolio) FullName() string {
	return o.FirstName + " " + o.LastName
}

type OwnedProperty struct {
	RegistryNumber string
	StreetAddress  string
	City           string
	AreaSqm        float64
}
