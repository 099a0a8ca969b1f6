package domain

import "strings"

const (
	keyTypeAlarm     = "alarm"
	keyTypeSituation = "situation"
)

// ResourceKey identifies a graph entity. It is comparable and used as a map key.
type ResourceKey struct {
	Type   string
	Source string
	ID     string
}

// InventoryKey returns the key for an inventory object
func InventoryKey(objectType, id string) ResourceKey {
	return ResourceKey{Type: objectType, ID: id}
}

// AlarmKey returns the key for an alarm
func AlarmKey(id string) ResourceKey {
	return ResourceKey{Type: keyTypeAlarm, ID: id}
}

// SituationKey returns the key for a situation from the named source
func SituationKey(source, id string) ResourceKey {
	return ResourceKey{Type: keyTypeSituation, Source: source, ID: id}
}

// String renders the key as key[type, source, id], omitting an empty source
func (k ResourceKey) String() string {
	parts := []string{k.Type}
	if k.Source != "" {
		parts = append(parts, k.Source)
	}
	parts = append(parts, k.ID)
	return "key[" + strings.Join(parts, ", ") + "]"
}
