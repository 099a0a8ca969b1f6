package domain

import "fmt"

// Ref points at another inventory object by (type, id)
type Ref struct {
	Type string `json:"type" yaml:"type"`
	ID   string `json:"id" yaml:"id"`
}

// Key returns the resource key of the referenced object
func (r Ref) Key() ResourceKey {
	return InventoryKey(r.Type, r.ID)
}

// InventoryObject is a managed network element
type InventoryObject struct {
	Type         string `json:"type"`
	ID           string `json:"id"`
	FriendlyName string `json:"friendly_name,omitempty"`
	ParentType   string `json:"parent_type,omitempty"`
	ParentID     string `json:"parent_id,omitempty"`
	Peers        []Ref  `json:"peers,omitempty"`
	Relatives    []Ref  `json:"relatives,omitempty"`
}

// Key returns the object's identity
func (o InventoryObject) Key() ResourceKey {
	return InventoryKey(o.Type, o.ID)
}

// Label returns the friendly name when set, the id otherwise
func (o InventoryObject) Label() string {
	if o.FriendlyName != "" {
		return o.FriendlyName
	}
	return o.ID
}

// Parent returns the parent reference and whether one is set
func (o InventoryObject) Parent() (Ref, bool) {
	if o.ParentType == "" || o.ParentID == "" {
		return Ref{}, false
	}
	return Ref{Type: o.ParentType, ID: o.ParentID}, true
}

// Validate checks that the identity is complete
func (o InventoryObject) Validate() error {
	if o.Type == "" || o.ID == "" {
		return fmt.Errorf("inventory object type and id are required (type=%q id=%q)", o.Type, o.ID)
	}
	return nil
}
