// Package description turns one upstream launch record into the HTML body of
// an RSS item: extractors flatten the record, section builders render the
// mission, vehicle and provider blocks, and Build joins them with the data
// attribution.
package description

import (
	"html"
	"strings"

	"github.com/lysyi3m/apogee-rss/app/launch"
)

const (
	// DescriptionLimit is the character budget for free-text descriptions.
	DescriptionLimit = 310

	PlaceholderImageURL = "https://apogee-rss.vercel.app/image-placeholder.jpg"
)

// Attribution must follow every description built from Launch Library data.
const Attribution = `<p>---</p>
<p style="font-size: 0.8em; color: #666;">Data provided by <a href="https://thespacedevs.com/llapi">Launch Library 2</a> API from <a href="https://thespacedevs.com/">The Space Devs</a>. Licensed under Apache License 2.0.</p>
`

// Build renders the full item description for a mission.
func Build(m launch.Mission) string {
	missionDetail := ExtractMissionDetail(m)
	vehicleDetail := ExtractVehicleDetail(m.Rocket)
	providerDetail := ExtractProviderDetail(m.LaunchServiceProvider)

	var b strings.Builder
	b.WriteString(BuildMissionSection(m, missionDetail))
	b.WriteString(BuildVehicleSection(m, vehicleDetail))
	b.WriteString(BuildProviderSection(m, providerDetail))
	b.WriteString(Attribution)
	return b.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}

func image(src, alt string) string {
	return `<img src="` + esc(src) + `" alt="` + esc(alt) + `" style="max-width:100%; height:auto;" />` + "\n"
}

func line(label, value string) string {
	return "<strong>" + label + ":</strong> " + value + "<br />\n"
}

func paragraph(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return "<p>\n" + content + "</p>\n"
}
