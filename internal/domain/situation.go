package domain

import "fmt"

// PrimarySource is the source name given to the primary situation set
const PrimarySource = "primary"

// Situation is a group of correlated alarms
type Situation struct {
	ID             string   `json:"id"`
	CreationTime   int64    `json:"creation_time"`
	DiagnosticText string   `json:"diagnostic_text,omitempty"`
	AlarmIDs       []string `json:"alarms"`
}

// NewSituation creates a situation with duplicate member ids collapsed
func NewSituation(id string, creationTime int64, diagnosticText string, alarmIDs []string) Situation {
	return Situation{
		ID:             id,
		CreationTime:   creationTime,
		DiagnosticText: diagnosticText,
		AlarmIDs:       uniqueStrings(alarmIDs),
	}
}

// Validate checks the situation's identity
func (s Situation) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("situation id is required")
	}
	return nil
}

// SituationResultSet is the output of one correlation run
type SituationResultSet struct {
	Source     string      `json:"source"`
	Primary    bool        `json:"primary"`
	Situations []Situation `json:"situations"`
}

func uniqueStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
