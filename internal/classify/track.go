package classify

import "strings"

// Tracks reports which appointment tracks a set of position titles spans:
// teaching, research, and tenure_track. A person whose faculty positions
// span more than one track cannot be attributed to a single track for
// salary comparison and is excluded from parity statistics.
func Tracks(titles []string) []string {
	var hasTeaching, hasResearch, hasTenure bool

	for _, t := range titles {
		upper := strings.ToUpper(t)
		if strings.Contains(upper, "TCH") || strings.Contains(upper, "TEACHING") || strings.Contains(upper, "LECTURER") {
			hasTeaching = true
		}
		if strings.Contains(upper, "RES ") {
			hasResearch = true
		}
		if strings.Contains(upper, "PROF") &&
			!strings.Contains(upper, "TCH") &&
			!strings.Contains(upper, "RES") &&
			!strings.Contains(upper, "TEACHING") {
			hasTenure = true
		}
	}

	var tracks []string
	if hasTeaching {
		tracks = append(tracks, TypeTeaching)
	}
	if hasResearch {
		tracks = append(tracks, TypeResearch)
	}
	if hasTenure {
		tracks = append(tracks, TypeTenureTrack)
	}
	return tracks
}
