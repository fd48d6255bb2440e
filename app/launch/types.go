// Package launch models the Launch Library 2 "launch/upcoming" payload and
// fetches it. Every field is optional: nested objects are pointers and every
// scalar decodes through the tolerant types in json.go, so a field whose
// upstream type drifts comes out absent instead of failing the record.
package launch

type Mission struct {
	ID          Text    `json:"id"`
	URL         Text    `json:"url"`
	Slug        Text    `json:"slug"`
	Name        Text    `json:"name"`
	Status      *Status `json:"status"`
	LastUpdated Text    `json:"last_updated"`
	Net         Text    `json:"net"`
	WindowStart Text    `json:"window_start"`
	WindowEnd   Text    `json:"window_end"`
	Probability Int     `json:"probability"`
	HoldReason  Text    `json:"holdreason"`
	FailReason  Text    `json:"failreason"`

	LaunchServiceProvider *Provider    `json:"launch_service_provider"`
	Rocket                *Rocket      `json:"rocket"`
	Mission               *MissionInfo `json:"mission"`
	Pad                   *Pad         `json:"pad"`
	Program               []Program    `json:"program"`

	VidURLs     []VideoURL `json:"vidURLs"`
	WebcastLive Bool       `json:"webcast_live"`
	Image       Text       `json:"image"`
}

// Status also accepts a bare status name.
type Status struct {
	ID          Int  `json:"id"`
	Name        Text `json:"name"`
	Abbrev      Text `json:"abbrev"`
	Description Text `json:"description"`
}

type MissionInfo struct {
	ID          Int        `json:"id"`
	Name        Text       `json:"name"`
	Description Text       `json:"description"`
	Type        Label      `json:"type"`
	Orbit       *Orbit     `json:"orbit"`
	VidURLs     []VideoURL `json:"vid_urls"`
}

type Orbit struct {
	ID     Int  `json:"id"`
	Name   Text `json:"name"`
	Abbrev Text `json:"abbrev"`
}

type Pad struct {
	ID       Int          `json:"id"`
	Name     Text         `json:"name"`
	MapURL   Text         `json:"map_url"`
	WikiURL  Text         `json:"wiki_url"`
	Location *PadLocation `json:"location"`
}

type PadLocation struct {
	Name        Text `json:"name"`
	CountryCode Text `json:"country_code"`
}

type Program struct {
	ID          Int          `json:"id"`
	Name        Text         `json:"name"`
	Description Text         `json:"description"`
	ImageURL    Text         `json:"image_url"`
	Type        *ProgramType `json:"type"`
}

type ProgramType struct {
	ID   Int  `json:"id"`
	Name Text `json:"name"`
}

type Rocket struct {
	ID              Int                  `json:"id"`
	Configuration   *RocketConfiguration `json:"configuration"`
	LauncherStage   []LauncherStage      `json:"launcher_stage"`
	SpacecraftStage SpacecraftStages     `json:"spacecraft_stage"`
}

type RocketConfiguration struct {
	ID          Int  `json:"id"`
	Name        Text `json:"name"`
	FullName    Text `json:"full_name"`
	Family      Text `json:"family"`
	Variant     Text `json:"variant"`
	Description Text `json:"description"`
	ImageURL    Text `json:"image_url"`
	InfoURL     Text `json:"info_url"`
	WikiURL     Text `json:"wiki_url"`

	Length      Float `json:"length"`
	Diameter    Float `json:"diameter"`
	LaunchMass  Float `json:"launch_mass"`
	LaunchCost  Text  `json:"launch_cost"`
	LEOCapacity Float `json:"leo_capacity"`
	GTOCapacity Float `json:"gto_capacity"`
	ToThrust    Float `json:"to_thrust"`

	TotalLaunchCount   Int `json:"total_launch_count"`
	SuccessfulLaunches Int `json:"successful_launches"`
	FailedLaunches     Int `json:"failed_launches"`
	PendingLaunches    Int `json:"pending_launches"`
	AttemptedLandings  Int `json:"attempted_landings"`
	SuccessfulLandings Int `json:"successful_landings"`
	FailedLandings     Int `json:"failed_landings"`
}

type LauncherStage struct {
	ID                   Int       `json:"id"`
	Type                 Label     `json:"type"`
	Reused               Bool      `json:"reused"`
	LauncherFlightNumber Int       `json:"launcher_flight_number"`
	Launcher             *Launcher `json:"launcher"`
	Landing              *Landing  `json:"landing"`
}

type Launcher struct {
	ID           Int   `json:"id"`
	SerialNumber Text  `json:"serial_number"`
	Status       Label `json:"status"`
	FlightProven Bool  `json:"flight_proven"`
	Flights      Int   `json:"flights"`
}

type Landing struct {
	ID          Int              `json:"id"`
	Attempt     Bool             `json:"attempt"`
	Success     Bool             `json:"success"`
	Description Text             `json:"description"`
	Location    *LandingLocation `json:"location"`
	Type        *LandingType     `json:"type"`
}

type LandingLocation struct {
	ID     Int  `json:"id"`
	Name   Text `json:"name"`
	Abbrev Text `json:"abbrev"`
}

type LandingType struct {
	ID     Int  `json:"id"`
	Name   Text `json:"name"`
	Abbrev Text `json:"abbrev"`
}

type SpacecraftStage struct {
	ID          Int              `json:"id"`
	Destination Text             `json:"destination"`
	Spacecraft  *Spacecraft      `json:"spacecraft"`
	Landing     *Landing         `json:"landing"`
	LaunchCrew  []CrewAssignment `json:"launch_crew"`
}

type Spacecraft struct {
	ID               Int               `json:"id"`
	Name             Text              `json:"name"`
	SerialNumber     Text              `json:"serial_number"`
	Description      Text              `json:"description"`
	SpacecraftConfig *SpacecraftConfig `json:"spacecraft_config"`
}

type SpacecraftConfig struct {
	ID         Int  `json:"id"`
	Name       Text `json:"name"`
	Capability Text `json:"capability"`
	HumanRated Bool `json:"human_rated"`
}

type CrewAssignment struct {
	ID        Int        `json:"id"`
	Role      *CrewRole  `json:"role"`
	Astronaut *Astronaut `json:"astronaut"`
}

type CrewRole struct {
	Role Text `json:"role"`
}

type Astronaut struct {
	Name Text `json:"name"`
}

type Provider struct {
	ID            Int   `json:"id"`
	Name          Text  `json:"name"`
	Abbrev        Text  `json:"abbrev"`
	Type          Label `json:"type"`
	CountryCode   Text  `json:"country_code"`
	Description   Text  `json:"description"`
	Administrator Text  `json:"administrator"`
	FoundingYear  Text  `json:"founding_year"`
	Launchers     Text  `json:"launchers"`
	Spacecraft    Text  `json:"spacecraft"`
	InfoURL       Text  `json:"info_url"`
	WikiURL       Text  `json:"wiki_url"`
	LogoURL       Text  `json:"logo_url"`
	ImageURL      Text  `json:"image_url"`

	TotalLaunchCount   Int `json:"total_launch_count"`
	SuccessfulLaunches Int `json:"successful_launches"`
	FailedLaunches     Int `json:"failed_launches"`
	PendingLaunches    Int `json:"pending_launches"`
	AttemptedLandings  Int `json:"attempted_landings"`
	SuccessfulLandings Int `json:"successful_landings"`
	FailedLandings     Int `json:"failed_landings"`
}

// Booster returns the first launcher stage, or nil.
func (r *Rocket) Booster() *LauncherStage {
	if r == nil || len(r.LauncherStage) == 0 {
		return nil
	}
	return &r.LauncherStage[0]
}

// Spacecraft returns the first spacecraft stage, or nil.
func (r *Rocket) Spacecraft() *SpacecraftStage {
	if r == nil || len(r.SpacecraftStage) == 0 {
		return nil
	}
	return &r.SpacecraftStage[0]
}

func (r *Rocket) Config() *RocketConfiguration {
	if r == nil {
		return nil
	}
	return r.Configuration
}
