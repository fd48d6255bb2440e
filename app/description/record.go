package description

import (
	"strconv"

	"github.com/lysyi3m/apogee-rss/app/launch"
	"github.com/lysyi3m/apogee-rss/app/render"
)

// LandingOutcome collapses a landing into one label: "No attempt", the given
// pending label when the result is not known yet, "Successful" or "Failed".
// A nil landing yields "".
func LandingOutcome(l *launch.Landing, pending string) string {
	if l == nil {
		return ""
	}
	if !l.Attempt.True() {
		return "No attempt"
	}
	if !l.Success.Valid {
		return pending
	}
	if l.Success.Value {
		return "Successful"
	}
	return "Failed"
}

// buildRecord renders launch and landing history. A history without failures
// is shown as a single attempts line since successes then equal attempts.
// Counts that are absent upstream are left out, and so is the whole record
// when nothing is known.
func buildRecord(name string, launchSuccess, launchFailed, landingSuccess, landingFailed *int) string {
	lines := recordLines("Launch", "Launches", launchSuccess, launchFailed) +
		recordLines("Landing", "Landings", landingSuccess, landingFailed)

	return render.If(lines, func(s string) string {
		heading := render.If(name, func(n string) string { return esc(n) + " Launch Record" }, func() string { return "Launch Record" })
		return "<h3>" + heading + "</h3>\n" + paragraph(s)
	})
}

func recordLines(singular, plural string, success, failed *int) string {
	if failed == nil || *failed == 0 {
		return render.If(success, count(singular+" Attempts"))
	}
	return render.If(success, count("Successful "+plural)) + render.If(failed, count("Failed "+plural))
}

func count(label string) func(*int) string {
	return func(n *int) string { return line(label, strconv.Itoa(*n)) }
}
