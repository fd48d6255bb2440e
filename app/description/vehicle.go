package description

import (
	"strconv"

	"github.com/lysyi3m/apogee-rss/app/launch"
	"github.com/lysyi3m/apogee-rss/app/render"
)

func BuildVehicleSection(m launch.Mission, d VehicleDetail) string {
	heading := render.If(d.FullName, esc, func() string { return "Unknown" })
	out := "<h2>Launch Vehicle - " + heading + "</h2>\n"

	out += render.If(d.ImageURL, func(src string) string { return image(src, d.FullName) })
	out += render.If(d.Desc, func(s string) string {
		return "<p>" + esc(render.Truncate(s, DescriptionLimit)) + "</p>\n"
	})
	out += render.If(d.InfoURL, func(url string) string {
		name := render.If(d.Name, esc, func() string { return "this vehicle" })
		return `<p><a href="` + esc(url) + `">Learn more about ` + name + "</a></p>\n"
	})

	out += render.If(m.Rocket.Booster(), buildBooster)
	out += render.If(m.Rocket.Spacecraft(), buildSpacecraft)

	specs := render.If(d.Length, measure("Length", "m")) +
		render.If(d.Diameter, measure("Diameter", "m")) +
		render.If(d.LaunchMass, measure("Launch Mass", "tons")) +
		render.If(d.LaunchCost, func(s string) string { return line("Launch Cost", esc(s)) }) +
		render.If(d.CapacityLEO, measure("LEO Capacity", "kg")) +
		render.If(d.CapacityGTO, measure("GTO Capacity", "kg")) +
		render.If(d.ThrustTO, measure("Thrust at Liftoff", "kN"))
	out += render.If(specs, func(s string) string { return "<h3>Specifications</h3>\n" + paragraph(s) })

	out += buildRecord(d.Name, d.LaunchSuccessCount, d.LaunchFailedCount, d.LandingSuccessCount, d.LandingFailedCount)
	return out
}

func measure(label, unit string) func(*float64) string {
	return func(v *float64) string {
		return render.If(render.Number(*v), func(n string) string { return line(label, n+" "+unit) })
	}
}

func buildBooster(b *launch.LauncherStage) string {
	serial := render.If(b.Launcher, func(l *launch.Launcher) string {
		return render.If(l.SerialNumber.String(), func(s string) string { return line("Serial Number", esc(s)) })
	})
	reused := render.If(b.Reused.Ptr(), func(r *bool) string {
		value := "No"
		if *r {
			value = "Yes"
		}
		value += render.If(b.LauncherFlightNumber.Ptr(), func(n *int) string {
			return " (flight #" + strconv.Itoa(*n) + ")"
		})
		return line("Reused", value)
	})
	return "<h3>Booster</h3>\n" + paragraph(serial+reused)
}

func buildSpacecraft(s *launch.SpacecraftStage) string {
	craft := render.If(s.Spacecraft, func(sc *launch.Spacecraft) string {
		return render.If(sc.Name.String(), func(n string) string { return line("Name", esc(n)) })
	})
	destination := render.If(s.Destination.String(), func(v string) string { return line("Destination", esc(v)) })
	landing := render.If(s.Landing, func(l *launch.Landing) string {
		value := LandingOutcome(l, "Planned")
		value += render.If(l.Location, func(loc *launch.LandingLocation) string {
			return render.If(loc.Name.String(), func(n string) string { return " at " + esc(n) })
		})
		return line("Landing", value) + render.If(l.Description.String(), func(v string) string {
			return "<em>" + esc(v) + "</em><br />\n"
		})
	})
	details := render.If(s.Spacecraft, func(sc *launch.Spacecraft) string {
		capability := render.If(sc.SpacecraftConfig, func(c *launch.SpacecraftConfig) string {
			return render.If(c.Capability.String(), func(v string) string { return line("Capability", esc(v)) })
		})
		return capability + render.If(sc.Description.String(), func(v string) string {
			return esc(render.Truncate(v, DescriptionLimit)) + "<br />\n"
		})
	})
	return "<h3>Spacecraft</h3>\n" + paragraph(craft+destination+landing+details)
}
