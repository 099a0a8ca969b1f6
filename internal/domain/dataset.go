package domain

import "fmt"

// Dataset is a validated, immutable bundle of alarms, inventory and
// situation result sets. It must hold exactly one primary result set.
type Dataset struct {
	alarms     []Alarm
	inventory  []InventoryObject
	resultSets []SituationResultSet
	primary    int
}

// NewDataset validates the result sets and builds a dataset
func NewDataset(alarms []Alarm, inventory []InventoryObject, resultSets []SituationResultSet) (*Dataset, error) {
	primary := -1
	for i, rs := range resultSets {
		if !rs.Primary {
			continue
		}
		if primary >= 0 {
			return nil, fmt.Errorf("%w: found primary sets %q and %q",
				ErrInvalidPrimarySet, resultSets[primary].Source, rs.Source)
		}
		primary = i
	}
	if primary < 0 {
		return nil, fmt.Errorf("%w: none of %d sets is primary", ErrInvalidPrimarySet, len(resultSets))
	}

	return &Dataset{
		alarms:     append([]Alarm(nil), alarms...),
		inventory:  append([]InventoryObject(nil), inventory...),
		resultSets: append([]SituationResultSet(nil), resultSets...),
		primary:    primary,
	}, nil
}

// NewSingleSetDataset builds a dataset whose only result set is the primary one
func NewSingleSetDataset(alarms []Alarm, inventory []InventoryObject, situations []Situation) (*Dataset, error) {
	return NewDataset(alarms, inventory, []SituationResultSet{{
		Source:     PrimarySource,
		Primary:    true,
		Situations: situations,
	}})
}

// Alarms returns every alarm record
func (d *Dataset) Alarms() []Alarm {
	return d.alarms
}

// Inventory returns every inventory object
func (d *Dataset) Inventory() []InventoryObject {
	return d.inventory
}

// SituationResultSets returns all result sets, primary included
func (d *Dataset) SituationResultSets() []SituationResultSet {
	return d.resultSets
}

// PrimaryResultSet returns the primary result set
func (d *Dataset) PrimaryResultSet() SituationResultSet {
	return d.resultSets[d.primary]
}

// PrimarySituations returns the situations of the primary result set
func (d *Dataset) PrimarySituations() []Situation {
	return d.PrimaryResultSet().Situations
}

// SupplementalResultSets returns every non-primary result set in order
func (d *Dataset) SupplementalResultSets() []SituationResultSet {
	out := make([]SituationResultSet, 0, len(d.resultSets)-1)
	for i, rs := range d.resultSets {
		if i != d.primary {
			out = append(out, rs)
		}
	}
	return out
}
