package feed

import (
	"slices"
	"strings"

	"github.com/lysyi3m/apogee-rss/app/launch"
)

const (
	FilterAll             = "all"
	FilterExcludeStarlink = "exclude_starlink"
	FilterStarshipOnly    = "starship_only"
	FilterCrewedOnly      = "crewed_only"
)

var namedFilters = map[string]FilterFunc{
	FilterAll:             func(launch.Mission) bool { return true },
	FilterExcludeStarlink: excludeStarlink,
	FilterStarshipOnly:    starshipOnly,
	FilterCrewedOnly:      crewedOnly,
}

var crewedMissionTypes = []string{"human exploration", "tourism"}

// LookupFilter returns the named filter. An empty name selects FilterAll.
func LookupFilter(name string) (FilterFunc, bool) {
	if name == "" {
		name = FilterAll
	}
	fn, ok := namedFilters[name]
	return fn, ok
}

var filterFields = map[string]bool{
	"name":        true,
	"description": true,
	"rocket":      true,
	"provider":    true,
	"type":        true,
	"orbit":       true,
	"pad":         true,
	"status":      true,
}

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run returns the missions that pass the feed's named filter and field rules,
// in upstream order. The input slice is not modified.
func (f *Filterer) Run(missions []launch.Mission, feedConfig *Config) []launch.Mission {
	named, ok := LookupFilter(feedConfig.Filter)
	if !ok {
		return []launch.Mission{}
	}

	kept := make([]launch.Mission, 0, len(missions))
	for _, m := range missions {
		if !named(m) {
			continue
		}
		if f.isExcluded(m, feedConfig.Filters) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func (f *Filterer) isExcluded(m launch.Mission, filters []ConfigFilter) bool {
	for _, filter := range filters {
		value := f.getFieldValue(m, filter.Field)

		for _, exclude := range filter.Excludes {
			if contains(value, exclude) {
				return true
			}
		}

		if len(filter.Includes) > 0 && !slices.ContainsFunc(filter.Includes, func(include string) bool {
			return contains(value, include)
		}) {
			return true
		}
	}
	return false
}

func (f *Filterer) getFieldValue(m launch.Mission, field string) string {
	switch field {
	case "name":
		return m.Name.String()
	case "description":
		if m.Mission != nil {
			return m.Mission.Description.String()
		}
	case "rocket":
		if c := m.Rocket.Config(); c != nil {
			return c.Name.String() + " " + c.FullName.String()
		}
	case "provider":
		if m.LaunchServiceProvider != nil {
			return m.LaunchServiceProvider.Name.String()
		}
	case "type":
		if m.Mission != nil {
			return m.Mission.Type.String()
		}
	case "orbit":
		if m.Mission != nil && m.Mission.Orbit != nil {
			return m.Mission.Orbit.Name.String() + " " + m.Mission.Orbit.Abbrev.String()
		}
	case "pad":
		if m.Pad != nil {
			return m.Pad.Name.String()
		}
	case "status":
		if m.Status != nil {
			return m.Status.Name.String()
		}
	}
	return ""
}

func contains(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

func excludeStarlink(m launch.Mission) bool {
	if contains(m.Name.String(), "starlink") {
		return false
	}
	if m.Mission != nil && contains(m.Mission.Description.String(), "starlink") {
		return false
	}
	return true
}

func starshipOnly(m launch.Mission) bool {
	if c := m.Rocket.Config(); c != nil {
		if contains(c.Name.String(), "starship") || contains(c.FullName.String(), "starship") {
			return true
		}
	}
	return contains(m.Name.String(), "starship")
}

func crewedOnly(m launch.Mission) bool {
	if s := m.Rocket.Spacecraft(); s != nil {
		if len(s.LaunchCrew) > 0 {
			return true
		}
		if s.Spacecraft != nil && s.Spacecraft.SpacecraftConfig != nil {
			if s.Spacecraft.SpacecraftConfig.HumanRated.True() {
				return true
			}
		}
	}
	if m.Mission != nil {
		return slices.Contains(crewedMissionTypes, strings.ToLower(m.Mission.Type.String()))
	}
	return false
}
