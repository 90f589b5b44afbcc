package console

import "context"

func (c *Console) removeOwner(ctx context.Context) error {
	owners, err := c.Estate.ListOwners(ctx)
	if err != nil {
		return c.report("list owners", err)
	}
	if len(owners) == 0 {
		c.println("No owners found.")
		return nil
	}
	writeOwners(c.out, owners)

	id, err := c.askID("Enter owner ID to remove: ")
	if err != nil {
		return err
	}
	removal, err := c.Estate.RemoveOwner(ctx, id)
	if err != nil {
		return c.report("remove owner", err)
	}
	c.log.Info("console: owner removed", "owner_id", id, "properties", removal.Properties, "listings", removal.Listings)
	RenderRemoval(c.out, removal)
	return nil
}

func (c *Console) removeProperty(ctx context.Context) error {
	properties, err := c.Estate.ListProperties(ctx)
	if err != nil {
		return c.report("list properties", err)
	}
	if len(properties) == 0 {
		c.println("No properties found.")
		return nil
	}
	writeProperties(c.out, properties)

	id, err := c.askID("Enter property ID to remove: ")
	if err != nil {
		return err
	}
	removal, err := c.Estate.RemoveProperty(ctx, id)
	if err != nil {
		return c.report("remove property", err)
	}
	c.log.Info("console: property removed", "property_id", id, "listings", removal.Listings)
	RenderRemoval(c.out, removal)
	return nil
}

func (c *Console) removeListing(ctx context.Context) error {
	listings, err := c.Estate.ListListings(ctx)
	if err != nil {
		return c.report("list listings", err)
	}
	if len(listings) == 0 {
		c.println("No listings found.")
		return nil
	}
	writeListings(c.out, listings)

	id, err := c.askID("Enter listing ID to remove: ")
	if err != nil {
		return err
	}
	removal, err := c.Estate.RemoveListing(ctx, id)
	if err != nil {
		return c.report("remove listing", err)
	}
	c.log.Info("console: listing removed", "listing_id", id)
	RenderRemoval(c.out, removal)
	return nil
}
