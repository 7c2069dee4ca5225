package enums

import "fmt"

// StallStatus marks whether a stall is trading.
type StallStatus string

const (
	StallStatusActive   StallStatus = "active"
	StallStatusInactive StallStatus = "inactive"
)

var validStallStatuses = []StallStatus{
	StallStatusActive,
	StallStatusInactive,
}

// String implements fmt.Stringer.
func (s StallStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StallStatus.
func (s StallStatus) IsValid() bool {
	for _, candidate := range validStallStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStallStatus converts raw input into a StallStatus.
func ParseStallStatus(value string) (StallStatus, error) {
	for _, candidate := range validStallStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stall status %q", value)
}
