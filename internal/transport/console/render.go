package console

import (
	"fmt"
	"io"

	estatedomain "real-estate-go/internal/domain/estate"
	reportsdomain "real-estate-go/internal/domain/reports"
)

const notAvailable = "N/A"

func formatPrice(value *float64) string {
	if value == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f", *value)
}

func formatPerSqm(value *float64) string {
	if value == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f per sqm", *value)
}

func formatArea(area float64) string {
	return fmt.Sprintf("%g sqm", area)
}

func writeProperty(w io.Writer, p reportsdomain.PropertyInfo) {
	fmt.Fprintf(w, "\nRegistry Number: %s\n", p.RegistryNumber)
	fmt.Fprintf(w, "Address: %s, %s, %s\n", p.StreetAddress, p.PostalCode, p.City)
	fmt.Fprintf(w, "Area: %s\n", formatArea(p.AreaSqm))
}

func RenderCityProperties(w io.Writer, city string, rows []reportsdomain.CityProperty) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "No listed properties found in %s.\n", city)
		return
	}
	fmt.Fprintf(w, "\nProperties in %s:\n", city)
	for _, row := range rows {
		writeProperty(w, row.PropertyInfo)
		fmt.Fprintf(w, "Average Sale Price: %s\n", formatPrice(row.AvgSalePrice))
		fmt.Fprintf(w, "Average Rental Price: %s\n", formatPrice(row.AvgRentalPrice))
		fmt.Fprintf(w, "Price per sqm: %s\n", formatPerSqm(row.PricePerSqm))
	}
}

func RenderRegistryPrices(w io.Writer, prices *reportsdomain.RegistryPrices) {
	writeProperty(w, prices.Property)
	if len(prices.Listings) == 0 {
		fmt.Fprintln(w, "No listings found for this property.")
		return
	}
	for _, listing := range prices.Listings {
		fmt.Fprintf(w, "\nAgency: %s\n", listing.AgencyName)
		fmt.Fprintf(w, "Sale Price: %s\n", formatPrice(listing.SalePrice))
		fmt.Fprintf(w, "Rental Price: %s\n", formatPrice(listing.RentalPrice))
		fmt.Fprintf(w, "Price per sqm: %s\n", formatPerSqm(listing.PricePerSqm))
	}
}

func RenderSearchResults(w io.Writer, rows []reportsdomain.SearchResult) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No properties match the search criteria.")
		return
	}
	fmt.Fprintln(w, "\nSearch results:")
	for _, row := range rows {
		writeProperty(w, row.PropertyInfo)
		fmt.Fprintf(w, "Lowest Sale Price: %s\n", formatPrice(row.MinSalePrice))
		fmt.Fprintf(w, "Lowest Rental Price: %s\n", formatPrice(row.MinRentalPrice))
	}
}

func RenderAllProperties(w io.Writer, rows []reportsdomain.PropertySummary) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No properties found.")
		return
	}
	fmt.Fprintln(w, "\nAll properties:")
	for _, row := range rows {
		writeProperty(w, row.PropertyInfo)
		fmt.Fprintf(w, "Lowest Sale Price: %s\n", formatPrice(row.MinSalePrice))
		fmt.Fprintf(w, "Lowest Rental Price: %s\n", formatPrice(row.MinRentalPrice))
		fmt.Fprintf(w, "Price per sqm: %s\n", formatPerSqm(row.PricePerSqm))
	}
}

func RenderAgencies(w io.Writer, agencies []reportsdomain.AgencyPortfolio) {
	if len(agencies) == 0 {
		fmt.Fprintln(w, "No agencies with listings found.")
		return
	}
	for _, agency := range agencies {
		fmt.Fprintf(w, "\nAgency: %s (Code: %s)\n", agency.AgencyName, agency.CompanyCode)
		for _, p := range agency.Properties {
			writeProperty(w, p.PropertyInfo)
			fmt.Fprintf(w, "Sale Price: %s\n", formatPrice(p.SalePrice))
			fmt.Fprintf(w, "Rental Price: %s\n", formatPrice(p.RentalPrice))
			fmt.Fprintf(w, "Price per sqm: %s\n", formatPerSqm(p.PricePerSqm))
		}
	}
}

func RenderOwners(w io.Writer, owners []reportsdomain.OwnerPortfolio) {
	if len(owners) == 0 {
		fmt.Fprintln(w, "No owners with properties found.")
		return
	}
	for _, owner := range owners {
		fmt.Fprintf(w, "\nOwner: %s (Phone: %s)\n", owner.FullName(), owner.PhoneNumber)
		for _, p := range owner.Properties {
			fmt.Fprintf(w, "  - %s: %s, %s (%s)\n", p.RegistryNumber, p.StreetAddress, p.City, formatArea(p.AreaSqm))
		}
	}
}

func RenderRemoval(w io.Writer, removal estatedomain.Removal) {
	fmt.Fprintf(w, "Removed %d owner(s), %d property(ies), %d address(es), %d listing(s).\n",
		removal.Owners, removal.Properties, removal.Addresses, removal.Listings)
}

func writeOwners(w io.Writer, owners []estatedomain.Owner) {
	for _, o := range owners {
		fmt.Fprintf(w, "Owner ID: %d, Name: %s %s, Phone: %s\n", o.ID, o.FirstName, o.LastName, o.PhoneNumber)
	}
}

func writeProperties(w io.Writer, properties []estatedomain.Property) {
	for _, p := range properties {
		fmt.Fprintf(w, "Property ID: %d, Registry Number: %s, Area: %s\n", p.ID, p.RegistryNumber, formatArea(p.AreaSqm))
	}
}

func writeAgencies(w io.Writer, agencies []estatedomain.Agency) {
	for _, a := range agencies {
		fmt.Fprintf(w, "Agency ID: %d, Name: %s, Code: %s\n", a.ID, a.Name, a.CompanyCode)
	}
}

func writeListings(w io.Writer, listings []estatedomain.Listing) {
	for _, l := range listings {
		fmt.Fprintf(w, "Listing ID: %d, Property ID: %d, Agency ID: %d, Sale: %s, Rent: %s\n",
			l.ID, l.PropertyID, l.AgencyID, formatPrice(l.SalePrice), formatPrice(l.RentalPrice))
	}
}

func writeAddresses(w io.Writer, addresses []estatedomain.AddressDetail) {
	for _, a := range addresses {
		fmt.Fprintf(w, "Address ID: %d, %s, %s, %s\n", a.ID, a.StreetAddress, a.PostalCode, a.CityName)
	}
}

func writeCities(w io.Writer, cities []estatedomain.City) {
	for _, c := range cities {
		fmt.Fprintf(w, "City ID: %d, Name: %s\n", c.ID, c.Name)
	}
}
