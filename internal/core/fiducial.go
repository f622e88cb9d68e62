package core

import "strings"

// Designators accepted as alignment marks when the caller does not pick
// explicit fiducials.
var (
	defaultMark1Refs = []string{"FID01", "FID1"}
	defaultMark2Refs = []string{"FID02", "FID2"}
)

// IsFiducial reports whether a reference designator names a board fiducial.
// Fiducials are vision alignment marks, never placed components.
func IsFiducial(ref string) bool {
	return strings.HasPrefix(strings.ToUpper(ref), "FID")
}

// IsDefaultMark1 reports whether ref is one of the designators used for
// alignment mark 1 by default.
func IsDefaultMark1(ref string) bool {
	return matchesAny(ref, defaultMark1Refs)
}

// IsDefaultMark2 reports whether ref is one of the designators used for
// alignment mark 2 by default.
func IsDefaultMark2(ref string) bool {
	return matchesAny(ref, defaultMark2Refs)
}

func matchesAny(ref string, candidates []string) bool {
	upper := strings.ToUpper(ref)
	for _, candidate := range candidates {
		if upper == candidate {
			return true
		}
	}
	return false
}
