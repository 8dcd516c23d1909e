package utils

import "time"

// ToWAT converts UTC time to West Africa Time, the deployment's home zone.
func ToWAT(t time.Time) time.Time {
	wat, err := time.LoadLocation("Africa/Douala")
	if err != nil {
		return t // Fallback to UTC if WAT is not available
	}
	return t.In(wat)
}
