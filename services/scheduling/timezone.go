package scheduling

import (
	"time"

	"tutorbase/utils"

	"go.uber.org/zap"
)

// ResolveTimezone resolves an IANA timezone identifier against the zone
// database. Unknown or malformed identifiers yield an *InvalidTimezoneError.
func ResolveTimezone(name string) (*time.Location, error) {
	if name == "" {
		return nil, &InvalidTimezoneError{Name: name}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &InvalidTimezoneError{Name: name}
	}
	return loc, nil
}

// ResolveTimezoneOrUTC resolves an IANA timezone identifier, falling back to
// UTC when it cannot. A bad timezone on a profile must never break a booking
// page; the accuracy defect is logged and display degrades to UTC.
//
// Every component in this engine obtains its working location through
// ResolveTimezone or ResolveTimezoneOrUTC, never from a raw profile string.
func ResolveTimezoneOrUTC(name string) *time.Location {
	loc, err := ResolveTimezone(name)
	if err != nil {
		utils.GetLogger().Warn("falling back to UTC for unresolvable timezone",
			zap.String("timezone", name))
		return time.UTC
	}
	return loc
}
