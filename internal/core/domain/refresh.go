package domain

import "strings"

// DefaultRefreshMarker is the display-name marker operators use for
// campaigns whose creatives were remade.
const DefaultRefreshMarker = "Re"

// RefreshDetector decides from a display name whether a campaign runs
// refreshed ("Re") creatives. Implementations must be pure.
type RefreshDetector interface {
	IsCreativeRefreshed(displayName string) bool
}

// MarkerDetector flags names containing Marker. The match is case sensitive.
type MarkerDetector struct {
	Marker string
}

// IsCreativeRefreshed implements RefreshDetector.
func (d MarkerDetector) IsCreativeRefreshed(displayName string) bool {
	marker := d.Marker
	if marker == "" {
		marker = DefaultRefreshMarker
	}
	return strings.Contains(displayName, marker)
}
