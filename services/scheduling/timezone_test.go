package scheduling

import (
	"errors"
	"testing"
	"time"
)

func TestResolveTimezone_Valid(t *testing.T) {
	loc, err := ResolveTimezone("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Fatalf("expected America/New_York, got %s", loc)
	}
}

func TestResolveTimezone_Invalid(t *testing.T) {
	for _, name := range []string{"", "Not/AZone", "EST5EDT-bogus"} {
		_, err := ResolveTimezone(name)
		var tzErr *InvalidTimezoneError
		if !errors.As(err, &tzErr) {
			t.Fatalf("expected *InvalidTimezoneError for %q, got %v", name, err)
		}
		if tzErr.Name != name {
			t.Fatalf("expected error to carry %q, got %q", name, tzErr.Name)
		}
	}
}

func TestResolveTimezoneOrUTC_FallsBack(t *testing.T) {
	if loc := ResolveTimezoneOrUTC("Mars/Olympus_Mons"); loc != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", loc)
	}
	if loc := ResolveTimezoneOrUTC("Europe/Madrid"); loc.String() != "Europe/Madrid" {
		t.Fatalf("expected Europe/Madrid, got %s", loc)
	}
}
