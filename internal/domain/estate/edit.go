package estate

import "context"

func (s *Service) EditOwner(ctx context.Context, id int64, patch OwnerPatch) (*Owner, error) {
	var result Owner
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		owner, err := tx.GetOwner(ctx, id)
		if err != nil {
			return err
		}

		owner.FirstName = keepString(owner.FirstName, patch.FirstName)
		owner.LastName = keepString(owner.LastName, patch.LastName)
		owner.PhoneNumber = keepString(owner.PhoneNumber, patch.PhoneNumber)
		if err := tx.SaveOwner(ctx, owner); err != nil {
			return err
		}

		result = *owner
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) EditProperty(ctx context.Context, id int64, patch PropertyPatch) (*Property, error) {
	if patch.AreaSqm != nil {
		if err := checkArea(*patch.AreaSqm); err != nil {
			return nil, err
		}
	}

	var result Property
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		property, err := tx.GetProperty(ctx, id)
		if err != nil {
			return err
		}

		if patch.AreaSqm != nil {
			property.AreaSqm = *patch.AreaSqm
		}
		property.RegistryNumber = keepString(property.RegistryNumber, patch.RegistryNumber)
		if err := tx.SaveProperty(ctx, property); err != nil {
			return err
		}

		result = *property
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// EditAddress moves the address to another city by name, creating that city
// when it does not exist yet.
func (s *Service) EditAddress(ctx context.Context, id int64, patch AddressPatch) (*Address, error) {
	var result Address
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		address, err := tx.GetAddress(ctx, id)
		if err != nil {
			return err
		}

		address.StreetAddress = keepString(address.StreetAddress, patch.StreetAddress)
		address.PostalCode = keepString(address.PostalCode, patch.PostalCode)
		if hasText(patch.City) {
			city, err := findOrCreateCity(ctx, tx, *patch.City)
			if err != nil {
				return err
			}
			address.CityID = city.ID
		}
		if err := tx.SaveAddress(ctx, address); err != nil {
			return err
		}

		result = *address
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) EditAgency(ctx context.Context, id int64, patch AgencyPatch) (*Agency, error) {
	var result Agency
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		agency, err := tx.GetAgency(ctx, id)
		if err != nil {
			return err
		}

		agency.Name = keepString(agency.Name, patch.Name)
		agency.CompanyCode = keepString(agency.CompanyCode, patch.CompanyCode)
		if err := tx.SaveAgency(ctx, agency); err != nil {
			return err
		}

		result = *agency
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) EditCity(ctx context.Context, id int64, patch CityPatch) (*City, error) {
	var result City
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		city, err := tx.GetCity(ctx, id)
		if err != nil {
			return err
		}

		city.Name = keepString(city.Name, patch.Name)
		if err := tx.SaveCity(ctx, city); err != nil {
			return err
		}

		result = *city
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// EditListing applies the same price rule as AddListing: the listing must keep
// at least one of its two prices.
func (s *Service) EditListing(ctx context.Context, id int64, patch ListingPatch) (*Listing, error) {
	var result Listing
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		listing, err := tx.GetListing(ctx, id)
		if err != nil {
			return err
		}

		listing.SalePrice = patchPrice(listing.SalePrice, patch.SalePrice, patch.ClearSalePrice)
		listing.RentalPrice = patchPrice(listing.RentalPrice, patch.RentalPrice, patch.ClearRentalPrice)
		if listing.SalePrice == nil && listing.RentalPrice == nil {
			return ErrListingPriceRequired
		}
		if err := tx.SaveListing(ctx, listing); err != nil {
			return err
		}

		result = *listing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func patchPrice(current, next *float64, clear bool) *float64 {
	if clear {
		return nil
	}
	if next == nil {
		return current
	}
	value := *next
	return &value
}
