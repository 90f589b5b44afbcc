package console

import (
	"context"
	"fmt"

	estatedomain "real-estate-go/internal/domain/estate"
)

func current(label, value string) string {
	return fmt.Sprintf("Enter new %s (current: %s, leave blank to keep): ", label, value)
}

func (c *Console) editOwner(ctx context.Context) error {
	owners, err := c.Estate.ListOwners(ctx)
	if err != nil {
		return c.report("list owners", err)
	}
	if len(owners) == 0 {
		c.println("No owners found.")
		return nil
	}
	writeOwners(c.out, owners)

	id, err := c.askID("Enter owner ID to edit: ")
	if err != nil {
		return err
	}
	owner, err := c.Estate.GetOwner(ctx, id)
	if err != nil {
		return c.report("edit owner", err)
	}

	var patch estatedomain.OwnerPatch
	if patch.FirstName, err = c.askOptional(current("first name", owner.FirstName)); err != nil {
		return err
	}
	if patch.LastName, err = c.askOptional(current("last name", owner.LastName)); err != nil {
		return err
	}
	if patch.PhoneNumber, err = c.askOptional(current("phone number", owner.PhoneNumber)); err != nil {
		return err
	}

	if _, err := c.Estate.EditOwner(ctx, id, patch); err != nil {
		return c.report("edit owner", err)
	}
	c.println("Owner updated successfully.")
	return nil
}

func (c *Console) editProperty(ctx context.Context) error {
	properties, err := c.Estate.ListProperties(ctx)
	if err != nil {
		return c.report("list properties", err)
	}
	if len(properties) == 0 {
		c.println("No properties found.")
		return nil
	}
	writeProperties(c.out, properties)

	id, err := c.askID("Enter property ID to edit: ")
	if err != nil {
		return err
	}
	property, err := c.Estate.GetProperty(ctx, id)
	if err != nil {
		return c.report("edit property", err)
	}

	var patch estatedomain.PropertyPatch
	if patch.AreaSqm, err = c.askOptionalFloat(current("area in sqm", formatArea(property.AreaSqm))); err != nil {
		return err
	}
	if patch.RegistryNumber, err = c.askOptional(current("registry number", property.RegistryNumber)); err != nil {
		return err
	}

	if _, err := c.Estate.EditProperty(ctx, id, patch); err != nil {
		return c.report("edit property", err)
	}
	c.println("Property updated successfully.")
	return nil
}

func (c *Console) editAgency(ctx context.Context) error {
	agencies, err := c.Estate.ListAgencies(ctx)
	if err != nil {
		return c.report("list agencies", err)
	}
	if len(agencies) == 0 {
		c.println("No agencies found.")
		return nil
	}
	writeAgencies(c.out, agencies)

	id, err := c.askID("Enter agency ID to edit: ")
	if err != nil {
		return err
	}
	agency, err := c.Estate.GetAgency(ctx, id)
	if err != nil {
		return c.report("edit agency", err)
	}

	var patch estatedomain.AgencyPatch
	if patch.Name, err = c.askOptional(current("agency name", agency.Name)); err != nil {
		return err
	}
	if patch.CompanyCode, err = c.askOptional(current("company code", agency.CompanyCode)); err != nil {
		return err
	}

	if _, err := c.Estate.EditAgency(ctx, id, patch); err != nil {
		return c.report("edit agency", err)
	}
	c.println("Agency updated successfully.")
	return nil
}

func (c *Console) editListing(ctx context.Context) error {
	listings, err := c.Estate.ListListings(ctx)
	if err != nil {
		return c.report("list listings", err)
	}
	if len(listings) == 0 {
		c.println("No listings found.")
		return nil
	}
	writeListings(c.out, listings)

	id, err := c.askID("Enter listing ID to edit: ")
	if err != nil {
		return err
	}
	listing, err := c.Estate.GetListing(ctx, id)
	if err != nil {
		return c.report("edit listing", err)
	}

	var patch estatedomain.ListingPatch
	label := "Enter new %s (current: %s, leave blank for none): "
	if patch.SalePrice, patch.ClearSalePrice, err = c.askPriceEdit(fmt.Sprintf(label, "sale price", formatPrice(listing.SalePrice))); err != nil {
		return err
	}
	if patch.RentalPrice, patch.ClearRentalPrice, err = c.askPriceEdit(fmt.Sprintf(label, "rental price", formatPrice(listing.RentalPrice))); err != nil {
		return err
	}

	if _, err := c.Estate.EditListing(ctx, id, patch); err != nil {
		return c.report("edit listing", err)
	}
	c.println("Listing updated successfully.")
	return nil
}

func (c *Console) editAddress(ctx context.Context) error {
	addresses, err := c.Estate.ListAddresses(ctx)
	if err != nil {
		return c.report("list addresses", err)
	}
	if len(addresses) == 0 {
		c.println("No addresses found.")
		return nil
	}
	writeAddresses(c.out, addresses)

	id, err := c.askID("Enter address ID to edit: ")
	if err != nil {
		return err
	}
	address, err := c.Estate.GetAddress(ctx, id)
	if err != nil {
		return c.report("edit address", err)
	}
	city, err := c.Estate.GetCity(ctx, address.CityID)
	if err != nil {
		return c.report("edit address", err)
	}

	var patch estatedomain.AddressPatch
	if patch.StreetAddress, err = c.askOptional(current("street address", address.StreetAddress)); err != nil {
		return err
	}
	if patch.PostalCode, err = c.askOptional(current("postal code", address.PostalCode)); err != nil {
		return err
	}
	if patch.City, err = c.askOptional(current("city", city.Name)); err != nil {
		return err
	}

	if _, err := c.Estate.EditAddress(ctx, id, patch); err != nil {
		return c.report("edit address", err)
	}
	c.println("Address updated successfully.")
	return nil
}

func (c *Console) editCity(ctx context.Context) error {
	cities, err := c.Estate.ListCities(ctx)
	if err != nil {
		return c.report("list cities", err)
	}
	if len(cities) == 0 {
		c.println("No cities found.")
		return nil
	}
	writeCities(c.out, cities)

	id, err := c.askID("Enter city ID to edit: ")
	if err != nil {
		return err
	}
	city, err := c.Estate.GetCity(ctx, id)
	if err != nil {
		return c.report("edit city", err)
	}

	var patch estatedomain.CityPatch
	if patch.Name, err = c.askOptional(current("city name", city.Name)); err != nil {
		return err
	}

	if _, err := c.Estate.EditCity(ctx, id, patch); err != nil {
		return c.report("edit city", err)
	}
	c.println("City updated successfully.")
	return nil
}
