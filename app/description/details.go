package description

import (
	"time"

	"github.com/lysyi3m/apogee-rss/app/launch"
	"github.com/lysyi3m/apogee-rss/app/render"
)

// MissionDetail is the flat, display-ready view of a mission. An empty string
// means the value is absent.
type MissionDetail struct {
	StatusName  string
	Net         string
	Type        string
	OrbitName   string
	OrbitAbbrev string
	OrbitDesc   string
	PadName     string
	MapURL      string
	Desc        string
	Image       string
	VidURL      string
	VidThumb    string
}

// VehicleDetail is the flat view of a rocket configuration. Physical
// quantities and counts are nil when absent.
type VehicleDetail struct {
	FullName    string
	Name        string
	Desc        string
	ImageURL    string
	InfoURL     string
	Length      *float64
	Diameter    *float64
	LaunchMass  *float64
	LaunchCost  string
	CapacityLEO *float64
	CapacityGTO *float64
	ThrustTO    *float64

	LaunchSuccessCount  *int
	LaunchFailedCount   *int
	LandingSuccessCount *int
	LandingFailedCount  *int
}

type ProviderDetail struct {
	Name          string
	Desc          string
	InfoURL       string
	ImageURL      string
	Administrator string
	Type          string
	FoundingYear  string
	Launchers     string
	Spacecraft    string

	LaunchSuccessCount  *int
	LaunchFailedCount   *int
	LandingSuccessCount *int
	LandingFailedCount  *int
}

const defaultCurrency = "$"

func ExtractMissionDetail(m launch.Mission) MissionDetail {
	d := MissionDetail{
		Net:   formatNet(m.Net.String()),
		Image: m.Image.String(),
	}

	if m.Status != nil {
		d.StatusName = m.Status.Name.String()
	}

	if info := m.Mission; info != nil {
		d.Type = info.Type.String()
		d.Desc = info.Description.String()

		if orbit := info.Orbit; orbit != nil {
			d.OrbitName = orbit.Name.String()
			d.OrbitAbbrev = orbit.Abbrev.String()
			if orbit.ID.Valid {
				d.OrbitDesc = launch.OrbitDescription(orbit.ID.Value)
			}
		}
	}

	if pad := m.Pad; pad != nil {
		d.PadName = pad.Name.String()
		d.MapURL = pad.MapURL.String()
	}

	if video := firstVideo(m); video != nil {
		d.VidURL = video.URL.String()
		d.VidThumb = video.FeatureImage.String()
	}

	return d
}

func ExtractVehicleDetail(r *launch.Rocket) VehicleDetail {
	config := r.Config()
	if config == nil {
		return VehicleDetail{}
	}

	return VehicleDetail{
		FullName:    config.FullName.String(),
		Name:        config.Name.String(),
		Desc:        config.Description.String(),
		ImageURL:    config.ImageURL.String(),
		InfoURL:     config.InfoURL.String(),
		Length:      config.Length.Ptr(),
		Diameter:    config.Diameter.Ptr(),
		LaunchMass:  config.LaunchMass.Ptr(),
		LaunchCost:  render.Currency(config.LaunchCost.String(), defaultCurrency),
		CapacityLEO: config.LEOCapacity.Ptr(),
		CapacityGTO: config.GTOCapacity.Ptr(),
		ThrustTO:    config.ToThrust.Ptr(),

		LaunchSuccessCount:  config.SuccessfulLaunches.Ptr(),
		LaunchFailedCount:   config.FailedLaunches.Ptr(),
		LandingSuccessCount: config.SuccessfulLandings.Ptr(),
		LandingFailedCount:  config.FailedLandings.Ptr(),
	}
}

func ExtractProviderDetail(p *launch.Provider) ProviderDetail {
	if p == nil {
		return ProviderDetail{}
	}

	return ProviderDetail{
		Name:          p.Name.String(),
		Desc:          p.Description.String(),
		InfoURL:       p.InfoURL.String(),
		ImageURL:      p.ImageURL.String(),
		Administrator: p.Administrator.String(),
		Type:          p.Type.String(),
		FoundingYear:  p.FoundingYear.String(),
		Launchers:     p.Launchers.String(),
		Spacecraft:    p.Spacecraft.String(),

		LaunchSuccessCount:  p.SuccessfulLaunches.Ptr(),
		LaunchFailedCount:   p.FailedLaunches.Ptr(),
		LandingSuccessCount: p.SuccessfulLandings.Ptr(),
		LandingFailedCount:  p.FailedLandings.Ptr(),
	}
}

// ParseNet parses an upstream launch time. ok is false when net is empty or
// not RFC 3339.
func ParseNet(net string) (time.Time, bool) {
	if net == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, net)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func formatNet(net string) string {
	if t, ok := ParseNet(net); ok {
		return t.UTC().Format(time.RFC1123)
	}
	return net
}

// firstVideo prefers the launch-level vidURLs and falls back to the mission's
// own list.
func firstVideo(m launch.Mission) *launch.VideoURL {
	for i := range m.VidURLs {
		if m.VidURLs[i].URL != "" {
			return &m.VidURLs[i]
		}
	}
	if m.Mission != nil {
		for i := range m.Mission.VidURLs {
			if m.Mission.VidURLs[i].URL != "" {
				return &m.Mission.VidURLs[i]
			}
		}
	}
	return nil
}
