package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/evcs/core/catalog"
	"github.com/kilianp07/evcs/core/model"
)

var (
	stationsLocation string
	stationsFast     string
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List the stations matching the filters and exit",
	RunE:  runStations,
}

func init() {
	stationsCmd.Flags().StringVar(&stationsLocation, "location", "", "location, matched case-insensitively")
	stationsCmd.Flags().StringVar(&stationsFast, "fast", "skip", "fast charging filter: yes, no or skip")
	rootCmd.AddCommand(stationsCmd)
}

func runStations(cmd *cobra.Command, args []string) error {
	fast, err := model.ParseFastChargingFilter(stationsFast)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := catalog.New(cfg.Catalog.BuildStations()...)
	if err != nil {
		return err
	}
	stations := c.FindByFilters(stationsLocation, fast)
	if len(stations) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No stations match your filters.")
		return err
	}
	for _, st := range stations {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), st); err != nil {
			return err
		}
	}
	return nil
}
