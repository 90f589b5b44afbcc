package reports

import (
	"context"
	"errors"
	"testing"
)

type fakeReportsRepo struct {
	cities          map[string]bool
	cityProperties  []CityProperty
	registry        map[string]PropertyInfo
	listings        map[int64][]AgencyPrice
	search          []SearchResult
	lastFilter      SearchFilter
	all             []PropertySummary
	agencyListings  []AgencyListingRow
	ownerProperties []OwnerPropertyRow
}

func (r *fakeReportsRepo) CityExists(ctx context.Context, name string) (bool, error) {
	return r.cities[name], nil
}

func (r *fakeReportsRepo) PropertiesInCity(ctx context.Context, city string) ([]CityProperty, error) {
	return r.cityProperties, nil
}

func (r *fakeReportsRepo) PropertyByRegistry(ctx context.Context, registry string) (*PropertyInfo, error) {
	info, ok := r.registry[registry]
	if !ok {
		return nil, ErrPropertyNotFound
	}
	return &info, nil
}

func (r *fakeReportsRepo) ListingsForProperty(ctx context.Context, propertyID int64) ([]AgencyPrice, error) {
	return r.listings[propertyID], nil
}

func (r *fakeReportsRepo) Search(ctx context.Context, filter SearchFilter) ([]SearchResult, error) {
	r.lastFilter = filter
	return r.search, nil
}

func (r *fakeReportsRepo) AllProperties(ctx context.Context) ([]PropertySummary, error) {
	return r.all, nil
}

func (r *fakeReportsRepo) AgencyListings(ctx context.Context) ([]AgencyListingRow, error) {
	return r.agencyListings, nil
}

func (r *fakeReportsRepo) OwnerProperties(ctx context.Context) ([]OwnerPropertyRow, error) {
	return r.ownerProperties, nil
}

func amount(value float64) *float64 {
	return &value
}

func TestPricePerSqm(t *testing.T) {
	got := PricePerSqm(amount(1000), 50)
	if got == nil || *got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if PricePerSqm(amount(1000), 0) != nil {
		t.Fatalf("expected not applicable for zero area")
	}
	if PricePerSqm(nil, 50) != nil {
		t.Fatalf("expected not applicable without a sale price")
	}
}

func TestPropertiesInCityUnknownCity(t *testing.T) {
	svc := NewService(&fakeReportsRepo{cities: map[string]bool{}})
	_, err := svc.PropertiesInCity(context.Background(), "Atlantis")
	if !errors.Is(err, ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestPropertiesInCityComputesPricePerSqm(t *testing.T) {
	repo := &fakeReportsRepo{
		cities: map[string]bool{"Kaunas": true},
		cityProperties: []CityProperty{
			{PropertyInfo: PropertyInfo{PropertyID: 1, AreaSqm: 50}, AvgSalePrice: amount(1000)},
			{PropertyInfo: PropertyInfo{PropertyID: 2, AreaSqm: 0}, AvgSalePrice: amount(1000)},
			{PropertyInfo: PropertyInfo{PropertyID: 3, AreaSqm: 40}, AvgRentalPrice: amount(300)},
		},
	}
	svc := NewService(repo)

	rows, err := svc.PropertiesInCity(context.Background(), " Kaunas ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rows[0].PricePerSqm == nil || *rows[0].PricePerSqm != 20 {
		t.Fatalf("expected 20 per sqm, got %v", rows[0].PricePerSqm)
	}
	if rows[1].PricePerSqm != nil || rows[2].PricePerSqm != nil {
		t.Fatalf("expected not applicable for zero area and missing sale price")
	}
}

func TestListingsForRegistry(t *testing.T) {
	repo := &fakeReportsRepo{
		registry: map[string]PropertyInfo{
			"R-1": {PropertyID: 1, RegistryNumber: "R-1", AreaSqm: 50},
			"R-2": {PropertyID: 2, RegistryNumber: "R-2", AreaSqm: 70},
		},
		listings: map[int64][]AgencyPrice{
			1: {{AgencyName: "Ober", SalePrice: amount(1000)}, {AgencyName: "Capital", RentalPrice: amount(400)}},
		},
	}
	svc := NewService(repo)

	_, err := svc.ListingsForRegistry(context.Background(), "R-404")
	if !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}

	unlisted, err := svc.ListingsForRegistry(context.Background(), "R-2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if unlisted.Listings == nil || len(unlisted.Listings) != 0 {
		t.Fatalf("expected empty listings, got %v", unlisted.Listings)
	}

	listed, err := svc.ListingsForRegistry(context.Background(), "R-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(listed.Listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listed.Listings))
	}
	if listed.Listings[0].PricePerSqm == nil || *listed.Listings[0].PricePerSqm != 20 {
		t.Fatalf("expected 20 per sqm, got %v", listed.Listings[0].PricePerSqm)
	}
	if listed.Listings[1].PricePerSqm != nil {
		t.Fatalf("expected not applicable for rental-only listing")
	}
}

func TestAdvancedSearchPassesBounds(t *testing.T) {
	repo := &fakeReportsRepo{cities: map[string]bool{"Kaunas": true}}
	svc := NewService(repo)

	_, err := svc.AdvancedSearch(context.Background(), SearchFilter{City: "Kaunas ", MinSale: amount(100000)})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastFilter.City != "Kaunas" {
		t.Fatalf("expected trimmed city, got %q", repo.lastFilter.City)
	}
	if repo.lastFilter.MinSale == nil || *repo.lastFilter.MinSale != 100000 {
		t.Fatalf("expected min sale bound forwarded")
	}
	if repo.lastFilter.MaxSale != nil {
		t.Fatalf("expected max sale unconstrained")
	}
}

func TestPropertiesByAgencyGroupsRows(t *testing.T) {
	repo := &fakeReportsRepo{
		agencyListings: []AgencyListingRow{
			{AgencyID: 2, AgencyName: "Ober", ListingID: 10, PropertyInfo: PropertyInfo{PropertyID: 1, AreaSqm: 50}, SalePrice: amount(1000)},
			{AgencyID: 2, AgencyName: "Ober", ListingID: 11, PropertyInfo: PropertyInfo{PropertyID: 3, AreaSqm: 0}, SalePrice: amount(1000)},
			{AgencyID: 5, AgencyName: "Capital", ListingID: 12, PropertyInfo: PropertyInfo{PropertyID: 1, AreaSqm: 50}, RentalPrice: amount(400)},
		},
	}
	svc := NewService(repo)

	portfolios, err := svc.PropertiesByAgency(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(portfolios) != 2 {
		t.Fatalf("expected 2 agencies, got %d", len(portfolios))
	}
	if portfolios[0].AgencyName != "Ober" || len(portfolios[0].Properties) != 2 {
		t.Fatalf("expected Ober with 2 properties, got %+v", portfolios[0])
	}
	if got := portfolios[0].Properties[0].PricePerSqm; got == nil || *got != 20 {
		t.Fatalf("expected 20 per sqm, got %v", got)
	}
	if portfolios[0].Properties[1].PricePerSqm != nil {
		t.Fatalf("expected not applicable for zero area")
	}
	if portfolios[1].AgencyName != "Capital" || len(portfolios[1].Properties) != 1 {
		t.Fatalf("expected Capital with 1 property, got %+v", portfolios[1])
	}
}

func TestOwnersWithPropertiesGroupsRows(t *testing.T) {
	repo := &fakeReportsRepo{
		ownerProperties: []OwnerPropertyRow{
			{OwnerID: 1, FirstName: "Ona", LastName: "Jonaitė", RegistryNumber: "R-1"},
			{OwnerID: 1, FirstName: "Ona", LastName: "Jonaitė", RegistryNumber: "R-2"},
			{OwnerID: 4, FirstName: "Petras", LastName: "Petraitis", RegistryNumber: "R-3"},
		},
	}
	svc := NewService(repo)

	portfolios, err := svc.OwnersWithProperties(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(portfolios) != 2 {
		t.Fatalf("expected 2 owners, got %d", len(portfolios))
	}
	if portfolios[0].FullName() != "Ona Jonaitė" || len(portfolios[0].Properties) != 2 {
		t.Fatalf("unexpected first owner %+v", portfolios[0])
	}
}
