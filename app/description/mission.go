package description

import (
	"github.com/lysyi3m/apogee-rss/app/launch"
	"github.com/lysyi3m/apogee-rss/app/render"
)

func BuildMissionSection(m launch.Mission, d MissionDetail) string {
	name := m.Name.String()

	out := render.If(d.Image, func(src string) string { return image(src, name) })

	out += paragraph(
		render.If(d.StatusName, func(s string) string { return line("Status", esc(s)) }) +
			render.If(d.Net, func(s string) string { return line("Launch Time", esc(s)) }),
	)

	out += render.If(d.Desc, func(s string) string {
		return "<p>" + esc(render.Truncate(s, DescriptionLimit)) + "</p>\n"
	})

	out += render.If(d.VidURL, func(url string) string {
		thumb := render.If(d.VidThumb, func(s string) string { return s }, func() string { return PlaceholderImageURL })
		return `<p><a href="` + esc(url) + `">` + image(thumb, "Watch the launch") + "</a></p>\n"
	})

	out += "<h3>Mission Details</h3>\n"
	out += paragraph(
		render.If(d.Type, func(s string) string { return line("Type", esc(s)) }) +
			render.If(d.OrbitName, func(orbit string) string {
				value := render.If(d.OrbitAbbrev, func(a string) string { return esc(a) + " - " }) + esc(orbit)
				value += render.If(d.OrbitDesc, func(s string) string { return "<br />\n" + esc(s) })
				return line("Destination", value)
			}) +
			render.If(d.PadName, func(pad string) string {
				value := render.If(d.MapURL,
					func(url string) string { return `<a href="` + esc(url) + `">` + esc(pad) + "</a>" },
					func() string { return esc(pad) })
				return line("Launch Site", value)
			}) +
			render.If(m.Rocket.Booster(), func(b *launch.LauncherStage) string {
				return render.If(b.Landing, boosterLanding)
			}),
	)

	out += render.If(m.Program, func(programs []launch.Program) string {
		p := programs[0]
		return "<h3>Program</h3>\n" + paragraph(
			render.If(p.Name.String(), func(s string) string { return line("Name", esc(s)) })+
				render.If(p.Type, func(t *launch.ProgramType) string {
					return render.If(t.Name.String(), func(s string) string { return line("Program Type", esc(s)) })
				})+
				render.If(p.Description.String(), func(s string) string {
					return esc(render.Truncate(s, DescriptionLimit)) + "<br />\n"
				}),
		)
	})

	return out
}

func boosterLanding(l *launch.Landing) string {
	value := LandingOutcome(l, "Attempted")
	value += render.If(l.Location, func(loc *launch.LandingLocation) string {
		return render.If(loc.Name.String(), func(s string) string { return " at " + esc(s) })
	})
	out := line("Landing", value)
	out += render.If(l.Description.String(), func(s string) string {
		return "<em>" + esc(s) + "</em><br />\n"
	})
	return out
}
