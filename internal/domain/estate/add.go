package estate

import (
	"context"
	"strings"
)

func (s *Service) AddOwner(ctx context.Context, input NewOwner) (*Owner, error) {
	owner := Owner{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
	}
	if owner.PhoneNumber == "" {
		return nil, ErrPhoneRequired
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		return tx.CreateOwner(ctx, &owner)
	})
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// AddProperty creates the address (and the city, when new) together with the
// property. A failure at any step leaves none of them behind.
func (s *Service) AddProperty(ctx context.Context, input NewProperty) (*Property, error) {
	registry := strings.TrimSpace(input.RegistryNumber)
	if registry == "" {
		return nil, ErrRegistryRequired
	}
	if err := checkArea(input.AreaSqm); err != nil {
		return nil, err
	}

	var result Property
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetOwner(ctx, input.OwnerID); err != nil {
			return missingReference(err, ErrUnknownOwner, input.OwnerID)
		}

		city, err := findOrCreateCity(ctx, tx, input.City)
		if err != nil {
			return err
		}

		address := Address{
			StreetAddress: strings.TrimSpace(input.StreetAddress),
			PostalCode:    strings.TrimSpace(input.PostalCode),
			CityID:        city.ID,
		}
		if err := tx.CreateAddress(ctx, &address); err != nil {
			return err
		}

		property := Property{
			OwnerID:        input.OwnerID,
			AddressID:      address.ID,
			AreaSqm:        input.AreaSqm,
			RegistryNumber: registry,
		}
		if err := tx.CreateProperty(ctx, &property); err != nil {
			return err
		}

		result = property
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) AddAgency(ctx context.Context, input NewAgency) (*Agency, error) {
	agency := Agency{
		Name:        strings.TrimSpace(input.Name),
		CompanyCode: strings.TrimSpace(input.CompanyCode),
	}
	if agency.CompanyCode == "" {
		return nil, ErrCompanyCodeRequired
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetAgencyByCode(ctx, agency.CompanyCode); err == nil {
			return ErrCompanyCodeTaken
		} else if !isNotFound(err) {
			return err
		}
		return tx.CreateAgency(ctx, &agency)
	})
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

func (s *Service) AddListing(ctx context.Context, input NewListing) (*Listing, error) {
	if input.SalePrice == nil && input.RentalPrice == nil {
		return nil, ErrListingPriceRequired
	}

	listing := Listing{
		PropertyID:  input.PropertyID,
		AgencyID:    input.AgencyID,
		SalePrice:   input.SalePrice,
		RentalPrice: input.RentalPrice,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetProperty(ctx, input.PropertyID); err != nil {
			return missingReference(err, ErrUnknownProperty, input.PropertyID)
		}
		if _, err := tx.GetAgency(ctx, input.AgencyID); err != nil {
			return missingReference(err, ErrUnknownAgency, input.AgencyID)
		}
		return tx.CreateListing(ctx, &listing)
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}
