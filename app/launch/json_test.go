package launch

import (
	"encoding/json"
	"testing"
)

func TestDecode_TolerantScalars(t *testing.T) {
	payload := `{
		"count": 1,
		"results": [{
			"id": "abc",
			"name": "Falcon Heavy - USSF-52",
			"image": null,
			"rocket": {
				"configuration": {
					"full_name": "Falcon Heavy",
					"length": "70",
					"diameter": 12.2,
					"launch_mass": "unknown",
					"leo_capacity": null,
					"launch_cost": 97000000,
					"successful_launches": "9",
					"failed_launches": 0.5
				}
			},
			"launch_service_provider": {"name": "SpaceX", "founding_year": 2002, "description": {"weird": true}}
		}]
	}`

	missions, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(missions) != 1 {
		t.Fatalf("Expected 1 mission, got %d", len(missions))
	}

	m := missions[0]
	if m.Image != "" {
		t.Errorf("Expected null image to decode empty, got %q", m.Image)
	}

	config := m.Rocket.Config()
	if !config.Length.Valid || config.Length.Value != 70 {
		t.Errorf("Expected length 70 from string, got %+v", config.Length)
	}
	if !config.Diameter.Valid || config.Diameter.Value != 12.2 {
		t.Errorf("Expected diameter 12.2, got %+v", config.Diameter)
	}
	if config.LaunchMass.Valid {
		t.Errorf("Expected unparseable launch mass to be invalid, got %+v", config.LaunchMass)
	}
	if config.LEOCapacity.Ptr() != nil {
		t.Error("Expected null LEO capacity to be absent")
	}
	if config.LaunchCost != "97000000" {
		t.Errorf("Expected numeric launch cost kept as text, got %q", config.LaunchCost)
	}
	if config.SuccessfulLaunches.Or(-1) != 9 {
		t.Errorf("Expected 9 successful launches, got %d", config.SuccessfulLaunches.Or(-1))
	}
	if config.FailedLaunches.Valid {
		t.Error("Expected fractional count to be invalid")
	}

	provider := m.LaunchServiceProvider
	if provider.FoundingYear != "2002" {
		t.Errorf("Expected founding year '2002', got %q", provider.FoundingYear)
	}
	if provider.Description != "" {
		t.Errorf("Expected object description to decode empty, got %q", provider.Description)
	}
}

func TestDecode_FieldDrift(t *testing.T) {
	payload := `{
		"results": [
			{
				"id": "1",
				"name": "Drifted",
				"status": {"id": "8", "name": "To Be Confirmed"},
				"mission": {"type": "Communications", "orbit": {"id": 1, "name": 5}},
				"pad": {"id": "87", "name": 39},
				"launch_service_provider": {"id": "121", "name": "SpaceX", "type": {"id": 1, "name": "Commercial"}},
				"rocket": {"launcher_stage": [{"reused": "true", "launcher": {"status": {"id": 1, "name": "active"}}}]}
			},
			{"id": "2"}
		]
	}`

	missions, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(missions) != 2 {
		t.Fatalf("Expected 2 missions, got %d", len(missions))
	}

	m := missions[0]
	if m.Status == nil || m.Status.ID.Or(-1) != 8 || m.Status.Name != "To Be Confirmed" {
		t.Errorf("Expected status 8 'To Be Confirmed', got %+v", m.Status)
	}
	if m.Mission.Orbit.ID.Or(-1) != 1 || m.Mission.Orbit.Name != "5" {
		t.Errorf("Expected orbit 1 named '5', got %+v", m.Mission.Orbit)
	}
	if m.Pad.ID.Or(-1) != 87 || m.Pad.Name != "39" {
		t.Errorf("Expected pad 87 named '39', got %+v", m.Pad)
	}
	if m.LaunchServiceProvider.Type != "Commercial" {
		t.Errorf("Expected provider type 'Commercial', got %q", m.LaunchServiceProvider.Type)
	}
	booster := m.Rocket.Booster()
	if !booster.Reused.True() {
		t.Errorf("Expected string 'true' to decode as reused, got %+v", booster.Reused)
	}
	if booster.Launcher.Status != "active" {
		t.Errorf("Expected launcher status 'active', got %q", booster.Launcher.Status)
	}

	if missions[1].ID != "2" {
		t.Errorf("Expected second mission '2', got %q", missions[1].ID)
	}
}

func TestDecode_SkipsUndecodableLaunch(t *testing.T) {
	payload := `{"results": [
		{"id": "1", "rocket": "Falcon 9"},
		{"id": "2", "name": "Healthy"},
		{"id": "3", "program": {"name": "not a list"}}
	]}`

	missions, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(missions) != 1 {
		t.Fatalf("Expected only the healthy mission, got %d", len(missions))
	}
	if missions[0].ID != "2" || missions[0].Name != "Healthy" {
		t.Errorf("Expected mission 2 'Healthy', got %+v", missions[0])
	}
}

func TestStatus_BareName(t *testing.T) {
	var m Mission
	if err := json.Unmarshal([]byte(`{"status": "Go for Launch"}`), &m); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if m.Status == nil || m.Status.Name != "Go for Launch" {
		t.Errorf("Expected status name from bare string, got %+v", m.Status)
	}
}

func TestBool(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		value bool
	}{
		{`true`, true, true},
		{`false`, true, false},
		{`"true"`, true, true},
		{`1`, true, true},
		{`0`, true, false},
		{`null`, false, false},
		{`"maybe"`, false, false},
		{`{}`, false, false},
	}

	for _, tc := range cases {
		var b Bool
		if err := json.Unmarshal([]byte(tc.in), &b); err != nil {
			t.Fatalf("Expected no error for %s, got: %v", tc.in, err)
		}
		if b.Valid != tc.valid || b.Value != tc.value {
			t.Errorf("Expected %s to decode as {%v %v}, got %+v", tc.in, tc.value, tc.valid, b)
		}
		if (b.Ptr() == nil) == tc.valid {
			t.Errorf("Expected Ptr presence %v for %s", tc.valid, tc.in)
		}
	}
}

func TestDecode_SpacecraftStageShapes(t *testing.T) {
	cases := []struct {
		name  string
		stage string
		want  string
	}{
		{"object", `{"destination": "ISS", "spacecraft": {"name": "Crew Dragon Endeavour"}}`, "Crew Dragon Endeavour"},
		{"array", `[{"destination": "ISS", "spacecraft": {"name": "Starliner"}}]`, "Starliner"},
		{"empty array", `[]`, ""},
		{"null", `null`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Rocket
			if err := json.Unmarshal([]byte(`{"spacecraft_stage": `+tc.stage+`}`), &r); err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}

			stage := r.Spacecraft()
			if tc.want == "" {
				if stage != nil {
					t.Errorf("Expected no spacecraft stage, got %+v", stage)
				}
				return
			}
			if stage == nil || stage.Spacecraft == nil || stage.Spacecraft.Name.String() != tc.want {
				t.Errorf("Expected spacecraft %q, got %+v", tc.want, stage)
			}
		})
	}
}

func TestDecode_VideoURLShapes(t *testing.T) {
	payload := `{"vid_urls": ["https://youtu.be/a", {"url": "https://youtu.be/b", "feature_image": "thumb.jpg"}, 42]}`

	var info MissionInfo
	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(info.VidURLs) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(info.VidURLs))
	}
	if info.VidURLs[0].URL != "https://youtu.be/a" {
		t.Errorf("Expected string form URL, got %q", info.VidURLs[0].URL)
	}
	if info.VidURLs[1].FeatureImage != "thumb.jpg" {
		t.Errorf("Expected object form thumbnail, got %q", info.VidURLs[1].FeatureImage)
	}
	if info.VidURLs[2].URL != "" {
		t.Errorf("Expected unsupported form to decode empty, got %q", info.VidURLs[2].URL)
	}
}

func TestDecode_MissingResults(t *testing.T) {
	missions, err := Decode([]byte(`{"count": 0}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if missions == nil || len(missions) != 0 {
		t.Errorf("Expected empty, non-nil list, got %v", missions)
	}

	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("Expected error for malformed payload")
	}
}

func TestRocketAccessorsOnNil(t *testing.T) {
	var r *Rocket
	if r.Booster() != nil || r.Spacecraft() != nil || r.Config() != nil {
		t.Error("Expected nil rocket accessors to return nil")
	}
}

func TestOrbitDescription(t *testing.T) {
	if OrbitCount() != 28 {
		t.Errorf("Expected 28 orbit classes, got %d", OrbitCount())
	}
	if got := OrbitDescription(1); got != "Direct path to a fixed orbit 35,000 km above Earth." {
		t.Errorf("Unexpected description for orbit 1: %q", got)
	}
	if got := OrbitDescription(0); got == "" {
		t.Error("Expected orbit 0 to be known")
	}
	if got := OrbitDescription(99); got != "" {
		t.Errorf("Expected unknown orbit to be empty, got %q", got)
	}
}
