package config

import (
	"fmt"

	"github.com/kilianp07/evcs/core/model"
)

// StationConfig describes one station of the catalog.
type StationConfig struct {
	ID           string `json:"id"`
	Location     string `json:"location"`
	FastCharging bool   `json:"fast_charging"`
}

// CatalogConfig holds the station seed data and the bookable slot labels.
type CatalogConfig struct {
	Stations []StationConfig `json:"stations"`
	Slots    []string        `json:"slots"`
}

// DefaultStations is the seed catalog.
var DefaultStations = []StationConfig{
	{ID: "1", Location: "Downtown", FastCharging: true},
	{ID: "2", Location: "Uptown", FastCharging: false},
	{ID: "3", Location: "Suburbs", FastCharging: true},
	{ID: "4", Location: "City Center", FastCharging: false},
}

// SetDefaults fills in the seed stations and the default slots.
func (c *CatalogConfig) SetDefaults() {
	if len(c.Stations) == 0 {
		c.Stations = append([]StationConfig(nil), DefaultStations...)
	}
	if len(c.Slots) == 0 {
		c.Slots = append([]string(nil), model.DefaultSlots...)
	}
}

// Validate checks ids and slot labels are present and unique.
func (c CatalogConfig) Validate() error {
	ids := map[string]struct{}{}
	for i, s := range c.Stations {
		if s.ID == "" {
			return fmt.Errorf("station %d: id is required", i)
		}
		if s.Location == "" {
			return fmt.Errorf("station %s: location is required", s.ID)
		}
		if _, ok := ids[s.ID]; ok {
			return fmt.Errorf("duplicate station id %s", s.ID)
		}
		ids[s.ID] = struct{}{}
	}
	labels := map[string]struct{}{}
	for _, l := range c.Slots {
		if l == "" {
			return fmt.Errorf("empty slot label")
		}
		if _, ok := labels[l]; ok {
			return fmt.Errorf("duplicate slot %s", l)
		}
		labels[l] = struct{}{}
	}
	return nil
}

// BuildStations creates fresh stations, all slots available.
func (c CatalogConfig) BuildStations() []*model.Station {
	out := make([]*model.Station, len(c.Stations))
	for i, s := range c.Stations {
		out[i] = model.NewStation(s.ID, s.Location, s.FastCharging, c.Slots...)
	}
	return out
}
