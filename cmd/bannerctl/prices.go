package main

import (
	"bannerdesk/internal/banner"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var pricesCmd = &cobra.Command{
	Use:   "prices [zone_type]",
	Short: "Print the price table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		types := []banner.ZoneType{banner.ZoneTypeCity, banner.ZoneTypeHomeCountry}
		if len(args) == 1 {
			zt, err := banner.ParseZoneType(args[0])
			if err != nil {
				return err
			}
			types = []banner.ZoneType{zt}
		}

		tables := make(map[banner.ZoneType][]banner.PriceEntry, len(types))
		for _, zt := range types {
			tables[zt] = banner.PriceTable(zt)
		}
		return render(cmd.OutOrStdout(), tables, func() string {
			var b strings.Builder
			for _, zt := range types {
				fmt.Fprintf(&b, "%s\n", zt)
				for _, e := range tables[zt] {
					fmt.Fprintf(&b, "  %3d days  $%d\n", e.DurationDays, e.PriceUSD)
				}
			}
			return strings.TrimSuffix(b.String(), "\n")
		})
	},
}

// render writes v as JSON or the text produced by text, per --output
func render(w io.Writer, v any, text func() string) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text())
	return err
}
