package console

import (
	"context"

	reportsdomain "real-estate-go/internal/domain/reports"
)

func (c *Console) searchByCity(ctx context.Context) error {
	city, err := c.ask("Enter city name: ")
	if err != nil {
		return err
	}
	rows, err := c.Reports.PropertiesInCity(ctx, city)
	if err != nil {
		return c.report("search by city", err)
	}
	RenderCityProperties(c.out, city, rows)
	return nil
}

func (c *Console) pricesByRegistry(ctx context.Context) error {
	registry, err := c.ask("Enter registry number: ")
	if err != nil {
		return err
	}
	prices, err := c.Reports.ListingsForRegistry(ctx, registry)
	if err != nil {
		return c.report("prices by registry", err)
	}
	RenderRegistryPrices(c.out, prices)
	return nil
}

func (c *Console) advancedSearch(ctx context.Context) error {
	var (
		filter reportsdomain.SearchFilter
		err    error
	)
	if filter.City, err = c.ask("Enter city name: "); err != nil {
		return err
	}
	if filter.MinSale, err = c.askOptionalFloat("Minimum sale price (leave blank for no limit): "); err != nil {
		return err
	}
	if filter.MaxSale, err = c.askOptionalFloat("Maximum sale price (leave blank for no limit): "); err != nil {
		return err
	}
	if filter.MinRental, err = c.askOptionalFloat("Minimum rental price (leave blank for no limit): "); err != nil {
		return err
	}
	if filter.MaxRental, err = c.askOptionalFloat("Maximum rental price (leave blank for no limit): "); err != nil {
		return err
	}

	rows, err := c.Reports.AdvancedSearch(ctx, filter)
	if err != nil {
		return c.report("advanced search", err)
	}
	RenderSearchResults(c.out, rows)
	return nil
}

func (c *Console) showByAgency(ctx context.Context) error {
	agencies, err := c.Reports.PropertiesByAgency(ctx)
	if err != nil {
		return c.report("show by agency", err)
	}
	RenderAgencies(c.out, agencies)
	return nil
}

func (c *Console) showAllProperties(ctx context.Context) error {
	rows, err := c.Reports.AllProperties(ctx)
	if err != nil {
		return c.report("show all properties", err)
	}
	RenderAllProperties(c.out, rows)
	return nil
}

func (c *Console) showOwners(ctx context.Context) error {
	owners, err := c.Reports.OwnersWithProperties(ctx)
	if err != nil {
		return c.report("show owners", err)
	}
	RenderOwners(c.out, owners)
	return nil
}
