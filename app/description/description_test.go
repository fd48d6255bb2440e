package description

import (
	"strings"
	"testing"

	"github.com/lysyi3m/apogee-rss/app/launch"
)

func intPtr(n int) *int { return &n }

func falconHeavy() launch.Mission {
	return launch.Mission{
		ID:     "a1b2",
		Name:   "Falcon Heavy | USSF-67",
		Status: &launch.Status{Name: "Go for Launch"},
		Net:    "2025-03-01T14:30:00Z",
		Image:  "https://example.com/fh.png",
		Mission: &launch.MissionInfo{
			Type:        "Government/Top Secret",
			Description: "National security payload.",
			Orbit:       &launch.Orbit{ID: launch.NewInt(2), Name: "Geostationary Orbit", Abbrev: "GEO"},
		},
		Pad: &launch.Pad{Name: "Launch Complex 39A", MapURL: "https://maps.example.com/39a"},
		Rocket: &launch.Rocket{
			Configuration: &launch.RocketConfiguration{
				Name:               "Falcon Heavy",
				FullName:           "Falcon Heavy",
				Length:             launch.NewFloat(70),
				Diameter:           launch.NewFloat(3.7),
				LaunchMass:         launch.NewFloat(1420),
				LEOCapacity:        launch.NewFloat(63800),
				SuccessfulLaunches: launch.NewInt(5),
				FailedLaunches:     launch.NewInt(0),
			},
			LauncherStage: []launch.LauncherStage{{
				Reused:               launch.NewBool(true),
				LauncherFlightNumber: launch.NewInt(4),
				Launcher:             &launch.Launcher{SerialNumber: "B1064"},
				Landing: &launch.Landing{
					Attempt:  launch.NewBool(true),
					Location: &launch.LandingLocation{Name: "Landing Zone 1"},
				},
			}},
		},
		LaunchServiceProvider: &launch.Provider{
			Name:               "SpaceX",
			Type:               "Commercial",
			SuccessfulLaunches: launch.NewInt(300),
			FailedLaunches:     launch.NewInt(4),
		},
	}
}

func TestBuild_FalconHeavy(t *testing.T) {
	out := Build(falconHeavy())

	expected := []string{
		"Launch Vehicle - Falcon Heavy",
		"Length:</strong> 70 m",
		"Diameter:</strong> 3.7 m",
		"Launch Mass:</strong> 1,420 tons",
		"LEO Capacity:</strong> 63,800 kg",
		"Launch Attempts:</strong> 5",
		"GEO - Geostationary Orbit",
		`<a href="https://maps.example.com/39a">Launch Complex 39A</a>`,
		"Landing:</strong> Attempted at Landing Zone 1",
		"Serial Number:</strong> B1064",
		"Reused:</strong> Yes (flight #4)",
		"Launch Provider - SpaceX",
		"Launch Library 2",
		"Apache License 2.0",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("Expected description to contain %q", want)
		}
	}

	for _, unwanted := range []string{"GTO Capacity", "Thrust at Liftoff", "Launch Cost", "Spacecraft</h3>"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("Expected description not to contain %q", unwanted)
		}
	}

	mission := strings.Index(out, "Mission Details")
	vehicle := strings.Index(out, "Launch Vehicle")
	provider := strings.Index(out, "Launch Provider")
	attribution := strings.Index(out, "The Space Devs")
	if !(mission < vehicle && vehicle < provider && provider < attribution) {
		t.Errorf("Expected sections in order mission, vehicle, provider, attribution")
	}
}

func TestBuild_EmptyMission(t *testing.T) {
	out := Build(launch.Mission{})

	for _, token := range []string{"undefined", "null", "<nil>", "NaN"} {
		if strings.Contains(out, token) {
			t.Errorf("Expected no %q in description, got %s", token, out)
		}
	}
	if !strings.Contains(out, "Launch Vehicle - Unknown") {
		t.Errorf("Expected unknown vehicle heading, got %s", out)
	}
	if !strings.HasSuffix(out, Attribution) {
		t.Errorf("Expected attribution at the end")
	}
}

func TestBuild_AbsentVehicleAndProvider(t *testing.T) {
	out := Build(launch.Mission{Name: "X"})

	if strings.Contains(out, "Attempts") {
		t.Errorf("Expected no attempts line without counts, got %s", out)
	}
	if strings.Contains(out, "Launch Record") {
		t.Errorf("Expected no launch record without counts, got %s", out)
	}
}

func TestBuild_AbsentLandingCounts(t *testing.T) {
	out := Build(falconHeavy())

	if !strings.Contains(out, "Launch Attempts:</strong> 5") {
		t.Errorf("Expected launch attempts line")
	}
	if strings.Contains(out, "Landing Attempts") {
		t.Errorf("Expected no landing attempts line when landing counts are absent")
	}
}

func TestBuild_EscapesUpstreamText(t *testing.T) {
	m := falconHeavy()
	m.Mission.Description = `<script>alert("x")</script>`

	out := Build(m)
	if strings.Contains(out, "<script>") {
		t.Errorf("Expected upstream markup to be escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("Expected escaped markup in output")
	}
}

func TestBuild_TruncatesDescription(t *testing.T) {
	m := falconHeavy()
	m.Mission.Description = launch.Text(strings.Repeat("a", 400))

	out := Build(m)
	want := "<p>" + strings.Repeat("a", DescriptionLimit) + "...</p>"
	if !strings.Contains(out, want) {
		t.Errorf("Expected description truncated to %d characters", DescriptionLimit)
	}
}

func TestBuild_VideoPlaceholder(t *testing.T) {
	m := falconHeavy()
	m.VidURLs = []launch.VideoURL{{URL: "https://youtube.com/watch?v=1"}}

	out := Build(m)
	if !strings.Contains(out, `href="https://youtube.com/watch?v=1"`) {
		t.Errorf("Expected video link")
	}
	if !strings.Contains(out, PlaceholderImageURL) {
		t.Errorf("Expected placeholder thumbnail")
	}
}

func TestBuildRecord(t *testing.T) {
	tests := []struct {
		name      string
		success   *int
		failed    *int
		expected  []string
		forbidden []string
	}{
		{
			name:      "no failures collapses to attempts",
			success:   intPtr(5),
			failed:    intPtr(0),
			expected:  []string{"<h3>Falcon 9 Launch Record</h3>", "Launch Attempts:</strong> 5"},
			forbidden: []string{"Successful Launches", "Failed Launches", "Landing"},
		},
		{
			name:      "failures show both lines",
			success:   intPtr(4),
			failed:    intPtr(1),
			expected:  []string{"Successful Launches:</strong> 4", "Failed Launches:</strong> 1"},
			forbidden: []string{"Launch Attempts"},
		},
		{
			name:      "unknown failures still show attempts",
			success:   intPtr(3),
			expected:  []string{"Launch Attempts:</strong> 3"},
			forbidden: []string{"Failed Launches"},
		},
		{
			name:      "failures without successes",
			failed:    intPtr(2),
			expected:  []string{"Failed Launches:</strong> 2"},
			forbidden: []string{"Successful Launches", "Attempts"},
		},
		{
			name:      "nothing known",
			forbidden: []string{"Launch Record", "Attempts", "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := buildRecord("Falcon 9", tt.success, tt.failed, nil, nil)
			for _, want := range tt.expected {
				if !strings.Contains(out, want) {
					t.Errorf("Expected %q in %s", want, out)
				}
			}
			for _, bad := range tt.forbidden {
				if strings.Contains(out, bad) {
					t.Errorf("Expected no %q in %s", bad, out)
				}
			}
		})
	}
}

func TestLandingOutcome(t *testing.T) {
	tests := []struct {
		name     string
		landing  *launch.Landing
		expected string
	}{
		{"nil", nil, ""},
		{"no attempt", &launch.Landing{Attempt: launch.NewBool(false)}, "No attempt"},
		{"unknown attempt", &launch.Landing{}, "No attempt"},
		{"pending", &launch.Landing{Attempt: launch.NewBool(true)}, "Planned"},
		{"success", &launch.Landing{Attempt: launch.NewBool(true), Success: launch.NewBool(true)}, "Successful"},
		{"failure", &launch.Landing{Attempt: launch.NewBool(true), Success: launch.NewBool(false)}, "Failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LandingOutcome(tt.landing, "Planned"); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestExtractMissionDetail(t *testing.T) {
	d := ExtractMissionDetail(falconHeavy())

	if d.Net != "Sat, 01 Mar 2025 14:30:00 UTC" {
		t.Errorf("Expected formatted net, got %q", d.Net)
	}
	if d.OrbitDesc == "" {
		t.Errorf("Expected orbit description for id 2")
	}

	raw := ExtractMissionDetail(launch.Mission{Net: "sometime soon"})
	if raw.Net != "sometime soon" {
		t.Errorf("Expected raw net passthrough, got %q", raw.Net)
	}
}

func TestExtractProviderDetail_Counts(t *testing.T) {
	d := ExtractProviderDetail(&launch.Provider{SuccessfulLaunches: launch.NewInt(0)})
	if d.LaunchSuccessCount == nil || *d.LaunchSuccessCount != 0 {
		t.Errorf("Expected a reported zero to be kept, got %v", d.LaunchSuccessCount)
	}
	if d.LaunchFailedCount != nil || d.LandingSuccessCount != nil {
		t.Errorf("Expected absent counts to stay nil, got %+v", d)
	}
}

func TestExtractVehicleDetail_Nil(t *testing.T) {
	d := ExtractVehicleDetail(nil)
	if d.Length != nil || d.FullName != "" || d.LaunchSuccessCount != nil {
		t.Errorf("Expected empty detail, got %+v", d)
	}
}
