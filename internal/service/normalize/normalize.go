// Package normalize converts absolute instants into calendar date and clock
// time in the fixed target timezone.
package normalize

import (
	"time"

	"appointment-intake-service/internal/models"
)

// TargetTimezone is the process-wide timezone all appointments are expressed
// in. It is a constant, not request-specific configuration.
const TargetTimezone = "Asia/Kolkata"

var targetLocation = mustLocation(TargetTimezone)

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("normalize: load target timezone: " + err.Error())
	}
	return loc
}

// Service is the normalization stage. Stateless; safe for concurrent use.
type Service struct{}

// New creates the normalization service.
func New() Service {
	return Service{}
}

// Normalize converts the instant into the target timezone and formats the
// local date as YYYY-MM-DD and the local time as zero-padded 24-hour HH:MM.
// Pure function: the same instant always yields the same result.
func (Service) Normalize(t time.Time) models.NormalizedDateTime {
	local := t.In(targetLocation)
	return models.NormalizedDateTime{
		Date: local.Format("2006-01-02"),
		Time: local.Format("15:04"),
		TZ:   TargetTimezone,
	}
}

// Location returns the target timezone location, for callers that need to
// resolve relative phrases in the same zone appointments are reported in.
func Location() *time.Location {
	return targetLocation
}
