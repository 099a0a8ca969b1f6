package codec

import (
	"fmt"

	"go.uber.org/multierr"

	"alecviz/internal/domain"
)

// Wire records shared by the JSON and YAML codecs

type alarmsDocument struct {
	Alarms []alarmRecord `json:"alarms" yaml:"alarms"`
}

type alarmRecord struct {
	ID                  string `json:"id" yaml:"id"`
	Time                int64  `json:"time" yaml:"time"`
	Severity            string `json:"severity" yaml:"severity"`
	Clear               bool   `json:"clear,omitempty" yaml:"clear,omitempty"`
	InventoryObjectType string `json:"inventory_object_type" yaml:"inventory_object_type"`
	InventoryObjectID   string `json:"inventory_object_id" yaml:"inventory_object_id"`
	Summary             string `json:"summary" yaml:"summary"`
	Description         string `json:"description,omitempty" yaml:"description,omitempty"`
}

type inventoryDocument struct {
	Inventory []inventoryRecord `json:"inventory" yaml:"inventory"`
}

type inventoryRecord struct {
	Type         string       `json:"type" yaml:"type"`
	ID           string       `json:"id" yaml:"id"`
	FriendlyName string       `json:"friendly_name,omitempty" yaml:"friendly_name,omitempty"`
	ParentType   string       `json:"parent_type,omitempty" yaml:"parent_type,omitempty"`
	ParentID     string       `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Peers        []domain.Ref `json:"peers,omitempty" yaml:"peers,omitempty"`
	Relatives    []domain.Ref `json:"relatives,omitempty" yaml:"relatives,omitempty"`
}

type situationsDocument struct {
	Situations []situationRecord `json:"situations" yaml:"situations"`
}

type situationRecord struct {
	ID             string   `json:"id" yaml:"id"`
	CreationTime   int64    `json:"creation_time" yaml:"creation_time"`
	DiagnosticText string   `json:"diagnostic_text,omitempty" yaml:"diagnostic_text,omitempty"`
	Alarms         []string `json:"alarms" yaml:"alarms"`
}

// toAlarms converts records, collecting every invalid record's error
func (d alarmsDocument) toAlarms() ([]domain.Alarm, error) {
	var errs error
	alarms := make([]domain.Alarm, 0, len(d.Alarms))
	for i, rec := range d.Alarms {
		sev, err := domain.ParseSeverity(rec.Severity)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("alarm #%d (%s): %w", i, rec.ID, err))
			continue
		}
		a := domain.Alarm{
			ID:                  rec.ID,
			Time:                rec.Time,
			Severity:            sev,
			Clear:               rec.Clear,
			InventoryObjectType: rec.InventoryObjectType,
			InventoryObjectID:   rec.InventoryObjectID,
			Summary:             rec.Summary,
			Description:         rec.Description,
		}
		if err := a.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("alarm #%d: %w", i, err))
			continue
		}
		alarms = append(alarms, a)
	}
	if errs != nil {
		return nil, errs
	}
	return alarms, nil
}

func (d inventoryDocument) toInventory() ([]domain.InventoryObject, error) {
	var errs error
	objects := make([]domain.InventoryObject, 0, len(d.Inventory))
	for i, rec := range d.Inventory {
		io := domain.InventoryObject{
			Type:         rec.Type,
			ID:           rec.ID,
			FriendlyName: rec.FriendlyName,
			ParentType:   rec.ParentType,
			ParentID:     rec.ParentID,
			Peers:        rec.Peers,
			Relatives:    rec.Relatives,
		}
		if err := io.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("inventory #%d: %w", i, err))
			continue
		}
		objects = append(objects, io)
	}
	if errs != nil {
		return nil, errs
	}
	return objects, nil
}

func (d situationsDocument) toSituations() ([]domain.Situation, error) {
	var errs error
	situations := make([]domain.Situation, 0, len(d.Situations))
	for i, rec := range d.Situations {
		s := domain.NewSituation(rec.ID, rec.CreationTime, rec.DiagnosticText, rec.Alarms)
		if err := s.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("situation #%d: %w", i, err))
			continue
		}
		situations = append(situations, s)
	}
	if errs != nil {
		return nil, errs
	}
	return situations, nil
}
