package reports

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PropertiesInCity lists the listed properties of a city with their average
// prices. Properties without listings are left out.
func (s *Service) PropertiesInCity(ctx context.Context, city string) ([]CityProperty, error) {
	city = strings.TrimSpace(city)
	if err := s.requireCity(ctx, city); err != nil {
		return nil, err
	}

	rows, err := s.repo.PropertiesInCity(ctx, city)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].PricePerSqm = PricePerSqm(rows[i].AvgSalePrice, rows[i].AreaSqm)
	}
	return rows, nil
}

// ListingsForRegistry returns ErrPropertyNotFound for an unknown registry
// number and an empty Listings slice for a property nobody lists.
func (s *Service) ListingsForRegistry(ctx context.Context, registry string) (*RegistryPrices, error) {
	property, err := s.repo.PropertyByRegistry(ctx, strings.TrimSpace(registry))
	if err != nil {
		return nil, err
	}

	listings, err := s.repo.ListingsForProperty(ctx, property.PropertyID)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []AgencyPrice{}
	}
	for i := range listings {
		listings[i].PricePerSqm = PricePerSqm(listings[i].SalePrice, property.AreaSqm)
	}

	return &RegistryPrices{Property: *property, Listings: listings}, nil
}

func (s *Service) AdvancedSearch(ctx context.Context, filter SearchFilter) ([]SearchResult, error) {
	filter.City = strings.TrimSpace(filter.City)
	if err := s.requireCity(ctx, filter.City); err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, filter)
}

func (s *Service) AllProperties(ctx context.Context) ([]PropertySummary, error) {
	rows, err := s.repo.AllProperties(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].PricePerSqm = PricePerSqm(rows[i].MinSalePrice, rows[i].AreaSqm)
	}
	return rows, nil
}

// PropertiesByAgency groups listings by agency, keeping the order in which
// agencies first appear.
func (s *Service) PropertiesByAgency(ctx context.Context) ([]AgencyPortfolio, error) {
	rows, err := s.repo.AgencyListings(ctx)
	if err != nil {
		return nil, err
	}

	portfolios := make([]AgencyPortfolio, 0)
	index := make(map[int64]int)
	for _, row := range rows {
		pos, ok := index[row.AgencyID]
		if !ok {
			pos = len(portfolios)
			index[row.AgencyID] = pos
			portfolios = append(portfolios, AgencyPortfolio{
				AgencyID:    row.AgencyID,
				AgencyName:  row.AgencyName,
				CompanyCode: row.CompanyCode,
			})
		}
		portfolios[pos].Properties = append(portfolios[pos].Properties, AgencyProperty{
			ListingID:    row.ListingID,
			PropertyInfo: row.PropertyInfo,
			SalePrice:    row.SalePrice,
			RentalPrice:  row.RentalPrice,
			PricePerSqm:  PricePerSqm(row.SalePrice, row.AreaSqm),
		})
	}
	return portfolios, nil
}

func (s *Service) OwnersWithProperties(ctx context.Context) ([]OwnerPortfolio, error) {
	rows, err := s.repo.OwnerProperties(ctx)
	if err != nil {
		return nil, err
	}

	portfolios := make([]OwnerPortfolio, 0)
	index := make(map[int64]int)
	for _, row := range rows {
		pos, ok := index[row.OwnerID]
		if !ok {
			pos = len(portfolios)
			index[row.OwnerID] = pos
			portfolios = append(portfolios, OwnerPortfolio{
				OwnerID:     row.OwnerID,
				FirstName:   row.FirstName,
				LastName:    row.LastName,
				PhoneNumber: row.PhoneNumber,
			})
		}
		portfolios[pos].Properties = append(portfolios[pos].Properties, OwnedProperty{
			RegistryNumber: row.RegistryNumber,
			StreetAddress:  row.StreetAddress,
			City:           row.City,
			AreaSqm:        row.AreaSqm,
		})
	}
	return portfolios, nil
}

func (s *Service) requireCity(ctx context.Context, city string) error {
	if city == "" {
		return ErrCityNotFound
	}
	exists, err := s.repo.CityExists(ctx, city)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCityNotFound
	}
	return nil
}
