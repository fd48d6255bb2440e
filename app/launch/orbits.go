package launch

// orbitDescriptions maps Launch Library orbit ids to a one-line explanation.
var orbitDescriptions = map[int]string{
	0:  "An elongated orbit around Earth.",
	1:  "Direct path to a fixed orbit 35,000 km above Earth.",
	2:  "Intermediate transfer orbit 35,000 km above Earth.",
	3:  "Fixed orbit 35,000 km above Earth.",
	4:  "Intermediate orbit transferring to geosynchronous orbit.",
	5:  "Stable point between Earth and Sun.",
	6:  "Orbit around the Sun.",
	7:  "Any orbit around Earth greater than 35,000 km.",
	8:  "Orbit up to 2,000 km above Earth.",
	9:  "Trajectory passing close to the Moon.",
	10: "Trajectory intended to impact the Moon.",
	11: "Orbit around the Moon, typically at 100 km.",
	12: "Orbit between 2,000 and 35,000 km above Earth.",
	13: "LEO passing over Earth's poles.",
	14: "Leaving the Solar System.",
	15: "Trajectory not achieving full orbit.",
	16: "Stable point 1.5 million km beyond Earth.",
	17: "LEO maintaining consistent sunlight.",
	18: "High-energy path to geostationary orbit.",
	19: "Orbit around Mars.",
	20: "Orbit around Venus.",
	21: "Orbit around an asteroid.",
	22: "Trajectory passing close to Venus.",
	23: "Trajectory passing close to Mars.",
	24: "Trajectory passing close to Mercury.",
	25: "Orbit not specified.",
	26: "Higher altitude geostationary transfer orbit.",
	27: "Orbit around Jupiter.",
}

// OrbitDescription returns the description for an orbit id, or "" when the id
// is unknown.
func OrbitDescription(id int) string {
	return orbitDescriptions[id]
}

func OrbitCount() int {
	return len(orbitDescriptions)
}
