// Package catalog holds the fixed list of charging stations and answers
// filtered lookups over it.
package catalog

import (
	"fmt"

	"github.com/kilianp07/evcs/core/model"
)

// Catalog is the ordered, fixed set of stations known to the process.
// Stations are never added or removed after construction.
type Catalog struct {
	stations []*model.Station
}

// New builds a catalog preserving the given order. Station ids must be unique.
func New(stations ...*model.Station) (*Catalog, error) {
	seen := make(map[string]struct{}, len(stations))
	for _, s := range stations {
		if s == nil {
			return nil, fmt.Errorf("catalog: nil station")
		}
		if _, ok := seen[s.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate station id %s", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	out := make([]*model.Station, len(stations))
	copy(out, stations)
	return &Catalog{stations: out}, nil
}

// All returns every station in catalog order.
func (c *Catalog) All() []*model.Station {
	out := make([]*model.Station, len(c.stations))
	copy(out, c.stations)
	return out
}

// FindByFilters returns the stations whose location matches case-insensitively
// and whose fast charging flag passes fast. Only an empty location skips the
// location check; blanks are compared like any other text. No match yields
// an empty slice.
func (c *Catalog) FindByFilters(location string, fast model.FastChargingFilter) []*model.Station {
	res := make([]*model.Station, 0, len(c.stations))
	for _, s := range c.stations {
		if location != "" && !s.MatchesLocation(location) {
			continue
		}
		if !fast.Matches(s.FastCharging) {
			continue
		}
		res = append(res, s)
	}
	return res
}

// FindByID returns the station with the given id or an error wrapping
// model.ErrNotFound.
func (c *Catalog) FindByID(id string) (*model.Station, error) {
	for _, s := range c.stations {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("station %s: %w", id, model.ErrNotFound)
}
