package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agriadvisor/agriadvisor-go/pkg/catalog"
)

var catalogSet string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the crop and seed profiles used for scoring",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := catalog.Default.Profiles(catalog.Set(catalogSet))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, p := range profiles {
			fmt.Fprintf(out, "%-12s pH %.1f-%.1f  %2.0f-%2.0f°C  rain >= %4.0f mm  %s\n",
				p.Name, p.PHRange.Min, p.PHRange.Max, p.TempRange.Min, p.TempRange.Max,
				p.Rainfall.Min, strings.Join(p.Regions, ", "))
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogSet, "set", string(catalog.SetAll), "profile set (crops, seeds, all)")
}
