package console

import (
	"context"
	"errors"

	estatedomain "real-estate-go/internal/domain/estate"
)

func (c *Console) addOwner(ctx context.Context) error {
	first, err := c.ask("Enter owner's first name: ")
	if err != nil {
		return err
	}
	last, err := c.ask("Enter owner's last name: ")
	if err != nil {
		return err
	}
	phone, err := c.ask("Enter owner's phone number: ")
	if err != nil {
		return err
	}

	owner, err := c.Estate.AddOwner(ctx, estatedomain.NewOwner{FirstName: first, LastName: last, PhoneNumber: phone})
	if err != nil {
		return c.report("add owner", err)
	}
	c.log.Info("console: owner added", "owner_id", owner.ID)
	c.printf("Owner %s %s added successfully (ID %d).\n", owner.FirstName, owner.LastName, owner.ID)

	for {
		more, err := c.askYesNo("Do you want to add a property for this owner? (yes/no): ")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := c.addPropertyFor(ctx, owner.ID); err != nil {
			return err
		}
	}
}

func (c *Console) addProperty(ctx context.Context) error {
	owners, err := c.Estate.ListOwners(ctx)
	if err != nil {
		return c.report("list owners", err)
	}
	if len(owners) == 0 {
		c.println("No owners found. Please add an owner first.")
		return nil
	}
	c.println("\nAvailable owners:")
	writeOwners(c.out, owners)

	for {
		ownerID, err := c.askID("Enter owner ID: ")
		if err != nil {
			return err
		}
		_, err = c.Estate.GetOwner(ctx, ownerID)
		if errors.Is(err, estatedomain.ErrOwnerNotFound) {
			c.println("Owner not found. Please enter a valid owner ID.")
			continue
		}
		if err != nil {
			return c.report("get owner", err)
		}
		return c.addPropertyFor(ctx, ownerID)
	}
}

func (c *Console) addPropertyFor(ctx context.Context, ownerID int64) error {
	street, err := c.ask("Enter street address: ")
	if err != nil {
		return err
	}
	postal, err := c.ask("Enter postal code: ")
	if err != nil {
		return err
	}
	city, err := c.ask("Enter city: ")
	if err != nil {
		return err
	}
	area, err := c.askFloat("Enter area in sqm: ")
	if err != nil {
		return err
	}
	registry, err := c.ask("Enter registry number: ")
	if err != nil {
		return err
	}

	property, err := c.Estate.AddProperty(ctx, estatedomain.NewProperty{
		OwnerID:        ownerID,
		StreetAddress:  street,
		PostalCode:     postal,
		City:           city,
		AreaSqm:        area,
		RegistryNumber: registry,
	})
	if err != nil {
		return c.report("add property", err)
	}
	c.log.Info("console: property added", "property_id", property.ID, "owner_id", ownerID)
	c.printf("Property %s added successfully (ID %d).\n", property.RegistryNumber, property.ID)
	return nil
}

func (c *Console) addAgency(ctx context.Context) error {
	name, err := c.ask("Enter agency name: ")
	if err != nil {
		return err
	}
	code, err := c.ask("Enter company code: ")
	if err != nil {
		return err
	}

	agency, err := c.Estate.AddAgency(ctx, estatedomain.NewAgency{Name: name, CompanyCode: code})
	if err != nil {
		return c.report("add agency", err)
	}
	c.log.Info("console: agency added", "agency_id", agency.ID)
	c.printf("Agency %s added successfully (ID %d).\n", agency.Name, agency.ID)
	return nil
}

func (c *Console) addListing(ctx context.Context) error {
	properties, err := c.Estate.ListProperties(ctx)
	if err != nil {
		return c.report("list properties", err)
	}
	if len(properties) == 0 {
		c.println("No properties found. Please add a property first.")
		return nil
	}
	agencies, err := c.Estate.ListAgencies(ctx)
	if err != nil {
		return c.report("list agencies", err)
	}
	if len(agencies) == 0 {
		c.println("No agencies found. Please add an agency first.")
		return nil
	}

	c.println("\nAvailable properties:")
	writeProperties(c.out, properties)
	propertyID, err := c.askID("Enter property ID: ")
	if err != nil {
		return err
	}

	c.println("\nAvailable agencies:")
	writeAgencies(c.out, agencies)
	agencyID, err := c.askID("Enter agency ID: ")
	if err != nil {
		return err
	}

	sale, err := c.askOptionalFloat("Enter sale price (leave blank if not for sale): ")
	if err != nil {
		return err
	}
	rent, err := c.askOptionalFloat("Enter rental price (leave blank if not for rent): ")
	if err != nil {
		return err
	}

	listing, err := c.Estate.AddListing(ctx, estatedomain.NewListing{
		PropertyID:  propertyID,
		AgencyID:    agencyID,
		SalePrice:   sale,
		RentalPrice: rent,
	})
	if err != nil {
		return c.report("add listing", err)
	}
	c.log.Info("console: listing added", "listing_id", listing.ID, "property_id", propertyID, "agency_id", agencyID)
	c.printf("Listing added successfully (ID %d).\n", listing.ID)
	return nil
}
