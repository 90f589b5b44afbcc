package estate

import (
	"context"
	"errors"
	"math"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetOwner(ctx context.Context, id int64) (*Owner, error) {
	return s.repo.GetOwner(ctx, id)
}

func (s *Service) GetCity(ctx context.Context, id int64) (*City, error) {
	return s.repo.GetCity(ctx, id)
}

func (s *Service) GetAddress(ctx context.Context, id int64) (*Address, error) {
	return s.repo.GetAddress(ctx, id)
}

func (s *Service) GetProperty(ctx context.Context, id int64) (*Property, error) {
	return s.repo.GetProperty(ctx, id)
}

func (s *Service) GetAgency(ctx context.Context, id int64) (*Agency, error) {
	return s.repo.GetAgency(ctx, id)
}

func (s *Service) GetListing(ctx context.Context, id int64) (*Listing, error) {
	return s.repo.GetListing(ctx, id)
}

func (s *Service) ListOwners(ctx context.Context) ([]Owner, error) {
	return s.repo.ListOwners(ctx)
}

func (s *Service) ListCities(ctx context.Context) ([]City, error) {
	return s.repo.ListCities(ctx)
}

func (s *Service) ListAddresses(ctx context.Context) ([]AddressDetail, error) {
	return s.repo.ListAddressDetails(ctx)
}

func (s *Service) ListProperties(ctx context.Context) ([]Property, error) {
	return s.repo.ListProperties(ctx)
}

func (s *Service) ListAgencies(ctx context.Context) ([]Agency, error) {
	return s.repo.ListAgencies(ctx)
}

func (s *Service) ListListings(ctx context.Context) ([]Listing, error) {
	return s.repo.ListListings(ctx)
}

func (s *Service) FindCityByName(ctx context.Context, name string) (*City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCityNotFound
	}
	return s.repo.GetCityByName(ctx, name)
}

// FindOrCreateCity returns the city with the given name, creating it on first use.
func (s *Service) FindOrCreateCity(ctx context.Context, name string) (*City, error) {
	var result *City
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		city, err := findOrCreateCity(ctx, tx, name)
		if err != nil {
			return err
		}
		result = city
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func findOrCreateCity(ctx context.Context, repo Repository, name string) (*City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	city, err := repo.GetCityByName(ctx, name)
	if err == nil {
		return city, nil
	}
	if !errors.Is(err, ErrCityNotFound) {
		return nil, err
	}

	city = &City{Name: name}
	if err := repo.CreateCity(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func keepString(current string, next *string) string {
	if next == nil {
		return current
	}
	trimmed := strings.TrimSpace(*next)
	if trimmed == "" {
		return current
	}
	return trimmed
}

func hasText(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

func checkArea(area float64) error {
	if math.IsNaN(area) || math.IsInf(area, 0) {
		return ErrInvalidArea
	}
	if area < 0 {
		return ErrNegativeArea
	}
	return nil
}
