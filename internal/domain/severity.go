package domain

import (
	"fmt"
	"strings"
)

// Severity is the ordered alarm severity scale
type Severity int

const (
	SeverityIndeterminate Severity = iota
	SeverityWarning
	SeverityMinor
	SeverityMajor
	SeverityCritical
)

var severityNames = [...]string{
	SeverityIndeterminate: "INDETERMINATE",
	SeverityWarning:       "WARNING",
	SeverityMinor:         "MINOR",
	SeverityMajor:         "MAJOR",
	SeverityCritical:      "CRITICAL",
}

// ParseSeverity converts a severity name (any case) to a Severity
func ParseSeverity(s string) (Severity, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return SeverityIndeterminate, fmt.Errorf("unknown severity %q", s)
}

// String returns the canonical upper-case name
func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Valid reports whether s is one of the defined levels
func (s Severity) Valid() bool {
	return s >= SeverityIndeterminate && s <= SeverityCritical
}

// Escalate returns the next level up, clamped at CRITICAL
func (s Severity) Escalate() Severity {
	if s >= SeverityCritical {
		return SeverityCritical
	}
	return s + 1
}

// Attribute returns the lower-case form used in vertex attributes
func (s Severity) Attribute() string {
	return strings.ToLower(s.String())
}

// MarshalText implements encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
