package estate

import "context"

// Removal counts the rows deleted by one remove operation.
type Removal struct {
	Owners     int
	Properties int
	Addresses  int
	Listings   int
}

// RemoveOwner deletes the owner together with every property it owns, each
// property's listings and each property's address. Cities and agencies stay.
func (s *Service) RemoveOwner(ctx context.Context, id int64) (Removal, error) {
	var removal Removal
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetOwner(ctx, id); err != nil {
			return err
		}

		properties, err := tx.ListPropertiesByOwner(ctx, id)
		if err != nil {
			return err
		}
		for i := range properties {
			if err := removeProperty(ctx, tx, &properties[i], &removal); err != nil {
				return err
			}
		}

		if err := tx.DeleteOwner(ctx, id); err != nil {
			return err
		}
		removal.Owners++
		return nil
	})
	if err != nil {
		return Removal{}, err
	}
	return removal, nil
}

func (s *Service) RemoveProperty(ctx context.Context, id int64) (Removal, error) {
	var removal Removal
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		property, err := tx.GetProperty(ctx, id)
		if err != nil {
			return err
		}
		return removeProperty(ctx, tx, property, &removal)
	})
	if err != nil {
		return Removal{}, err
	}
	return removal, nil
}

func (s *Service) RemoveListing(ctx context.Context, id int64) (Removal, error) {
	var removal Removal
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetListing(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteListing(ctx, id); err != nil {
			return err
		}
		removal.Listings++
		return nil
	})
	if err != nil {
		return Removal{}, err
	}
	return removal, nil
}

// removeProperty deletes children before parents: listings reference the
// property and the property references its address, so the address goes last.
func removeProperty(ctx context.Context, tx Repository, property *Property, removal *Removal) error {
	deleted, err := tx.DeleteListingsByProperty(ctx, property.ID)
	if err != nil {
		return err
	}
	removal.Listings += int(deleted)

	if err := tx.DeleteProperty(ctx, property.ID); err != nil {
		return err
	}
	removal.Properties++

	if err := tx.DeleteAddress(ctx, property.AddressID); err != nil {
		return err
	}
	removal.Addresses++
	return nil
}
