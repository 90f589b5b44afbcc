package cli

import (
	"github.com/spf13/cobra"

	"real-estate-go/internal/app"
	"real-estate-go/internal/domain/reports"
	"real-estate-go/internal/transport/console"
)

func reportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a read-only report",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "properties",
			Short: "All properties with their lowest prices",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(a *app.App) error {
					rows, err := a.Reports().AllProperties(cmd.Context())
					if err != nil {
						return err
					}
					console.RenderAllProperties(cmd.OutOrStdout(), rows)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "agencies",
			Short: "Listed properties grouped by agency",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(a *app.App) error {
					agencies, err := a.Reports().PropertiesByAgency(cmd.Context())
					if err != nil {
						return err
					}
					console.RenderAgencies(cmd.OutOrStdout(), agencies)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "owners",
			Short: "Owners with their properties",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(a *app.App) error {
					owners, err := a.Reports().OwnersWithProperties(cmd.Context())
					if err != nil {
						return err
					}
					console.RenderOwners(cmd.OutOrStdout(), owners)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "city NAME",
			Short: "Listed properties in a city with average prices",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(a *app.App) error {
					rows, err := a.Reports().PropertiesInCity(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					console.RenderCityProperties(cmd.OutOrStdout(), args[0], rows)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "registry NUMBER",
			Short: "Every agency price for one property",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(a *app.App) error {
					prices, err := a.Reports().ListingsForRegistry(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					console.RenderRegistryPrices(cmd.OutOrStdout(), prices)
					return nil
				})
			},
		},
		searchCmd(opts),
	)

	return cmd
}

func searchCmd(opts *options) *cobra.Command {
	var bounds struct {
		minSale, maxSale, minRental, maxRental float64
	}

	cmd := &cobra.Command{
		Use:   "search CITY",
		Short: "Properties in a city within price bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := reports.SearchFilter{
				City:      args[0],
				MinSale:   flagBound(cmd, "min-sale", bounds.minSale),
				MaxSale:   flagBound(cmd, "max-sale", bounds.maxSale),
				MinRental: flagBound(cmd, "min-rental", bounds.minRental),
				MaxRental: flagBound(cmd, "max-rental", bounds.maxRental),
			}
			return opts.withApp(cmd, func(a *app.App) error {
				rows, err := a.Reports().AdvancedSearch(cmd.Context(), filter)
				if err != nil {
					return err
				}
				console.RenderSearchResults(cmd.OutOrStdout(), rows)
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&bounds.minSale, "min-sale", 0, "lowest sale price, inclusive")
	cmd.Flags().Float64Var(&bounds.maxSale, "max-sale", 0, "highest sale price, inclusive")
	cmd.Flags().Float64Var(&bounds.minRental, "min-rental", 0, "lowest rental price, inclusive")
	cmd.Flags().Float64Var(&bounds.maxRental, "max-rental", 0, "highest rental price, inclusive")

	return cmd
}

// flagBound returns nil unless the flag was given, so an unset bound does
// not constrain the search.
func flagBound(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
