package report

import (
	"fmt"
	"strings"
)

type Status int

const (
	Unknown     Status = 0
	NeedsRepair Status = 1
	UnderRepair Status = 2
	Fixed       Status = 3
)

// Statuses lists the known statuses in display order.
var Statuses = []Status{NeedsRepair, UnderRepair, Fixed}

var labels = map[Status]string{
	NeedsRepair: "Needs Repair",
	UnderRepair: "Under Repair",
	Fixed:       "Fixed",
}

var idents = map[Status]string{
	NeedsRepair: "NeedsRepair",
	UnderRepair: "UnderRepair",
	Fixed:       "Fixed",
}

// String returns the display label, e.g. "Needs Repair".
func (s Status) String() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return "Unknown"
}

// Ident returns the identifier form, e.g. "NeedsRepair".
func (s Status) Ident() string {
	if id, ok := idents[s]; ok {
		return id
	}
	return "Unknown"
}

// Slug returns the URL form, e.g. "needs-repair".
func (s Status) Slug() string {
	return strings.ReplaceAll(strings.ToLower(s.String()), " ", "-")
}

func (s Status) Known() bool {
	_, ok := labels[s]
	return ok
}

// normalize lowercases and drops separators so that "Needs Repair",
// "NeedsRepair", "needs-repair" and "needs_repair" compare equal.
func normalize(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.ReplaceAll(v, "-", "")
	v = strings.ReplaceAll(v, "_", "")
	return strings.Join(strings.Fields(v), "")
}

// ParseStatus maps any accepted spelling of a status to the enum.
// Unrecognized input returns Unknown and false.
func ParseStatus(v string) (Status, bool) {
	n := normalize(v)
	if n == "" {
		return Unknown, false
	}
	for _, s := range Statuses {
		if n == normalize(s.Ident()) {
			return s, true
		}
	}
	return Unknown, false
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts "Unknown" so that aggregate markers round-trip.
func (s *Status) UnmarshalText(b []byte) error {
	if normalize(string(b)) == "unknown" {
		*s = Unknown
		return nil
	}
	p, ok := ParseStatus(string(b))
	if !ok {
		return fmt.Errorf("unknown status %q", string(b))
	}
	*s = p
	return nil
}
