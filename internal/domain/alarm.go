package domain

import "fmt"

// Alarm is one recorded state of an alarm. Records sharing an ID form the
// alarm's history; Time is epoch milliseconds.
type Alarm struct {
	ID                  string   `json:"id"`
	Time                int64    `json:"time"`
	Severity            Severity `json:"severity"`
	Clear               bool     `json:"clear"`
	InventoryObjectType string   `json:"inventory_object_type"`
	InventoryObjectID   string   `json:"inventory_object_id"`
	Summary             string   `json:"summary"`
	Description         string   `json:"description,omitempty"`
}

// InventoryKey returns the key of the inventory object the alarm is raised on
func (a Alarm) InventoryKey() ResourceKey {
	return InventoryKey(a.InventoryObjectType, a.InventoryObjectID)
}

// Validate checks the fields every alarm record must carry
func (a Alarm) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("alarm id is required")
	}
	if !a.Severity.Valid() {
		return fmt.Errorf("alarm %s: invalid severity %d", a.ID, int(a.Severity))
	}
	if a.InventoryObjectType == "" || a.InventoryObjectID == "" {
		return fmt.Errorf("alarm %s: inventory object type and id are required", a.ID)
	}
	return nil
}
