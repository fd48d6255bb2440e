package description

import (
	"github.com/lysyi3m/apogee-rss/app/launch"
	"github.com/lysyi3m/apogee-rss/app/render"
)

func BuildProviderSection(_ launch.Mission, d ProviderDetail) string {
	out := "<h2>Launch Provider" + render.If(d.Name, func(n string) string { return " - " + esc(n) }) + "</h2>\n"

	out += render.If(d.ImageURL, func(src string) string { return image(src, d.Name) })
	out += render.If(d.Desc, func(s string) string {
		return "<p>" + esc(render.Truncate(s, DescriptionLimit)) + "</p>\n"
	})
	out += render.If(d.InfoURL, func(url string) string {
		name := render.If(d.Name, esc, func() string { return "this provider" })
		return `<p><a href="` + esc(url) + `">Discover more about ` + name + "</a></p>\n"
	})

	out += "<h3>Agency Details</h3>\n"
	out += paragraph(
		render.If(d.Administrator, func(s string) string { return line("Administrator", esc(s)) }) +
			render.If(d.Type, func(s string) string { return line("Type", esc(s)) }) +
			render.If(d.FoundingYear, func(s string) string { return line("Founded", esc(s)) }) +
			render.If(d.Launchers, func(s string) string { return line("Launchers", esc(s)) }) +
			render.If(d.Spacecraft, func(s string) string { return line("Spacecraft", esc(s)) }),
	)

	out += buildRecord(d.Name, d.LaunchSuccessCount, d.LaunchFailedCount, d.LandingSuccessCount, d.LandingFailedCount)
	return out
}
