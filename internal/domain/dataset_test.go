package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatasetPrimarySet(t *testing.T) {
	alarms := []Alarm{{ID: "a1", Time: 1, InventoryObjectType: "PORT", InventoryObjectID: "p1"}}

	t.Run("exactly one primary", func(t *testing.T) {
		ds, err := NewDataset(alarms, nil, []SituationResultSet{
			{Source: "other.situations.yaml"},
			{Source: PrimarySource, Primary: true, Situations: []Situation{{ID: "s1"}}},
		})
		require.NoError(t, err)
		assert.Equal(t, PrimarySource, ds.PrimaryResultSet().Source)
		assert.Len(t, ds.PrimarySituations(), 1)
		require.Len(t, ds.SupplementalResultSets(), 1)
		assert.Equal(t, "other.situations.yaml", ds.SupplementalResultSets()[0].Source)
		assert.Len(t, ds.SituationResultSets(), 2)
	})

	t.Run("no primary", func(t *testing.T) {
		_, err := NewDataset(alarms, nil, []SituationResultSet{{Source: "a"}})
		assert.True(t, errors.Is(err, ErrInvalidPrimarySet))
	})

	t.Run("no sets", func(t *testing.T) {
		_, err := NewDataset(alarms, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidPrimarySet)
	})

	t.Run("two primaries", func(t *testing.T) {
		_, err := NewDataset(alarms, nil, []SituationResultSet{
			{Source: "a", Primary: true},
			{Source: "b", Primary: true},
		})
		assert.ErrorIs(t, err, ErrInvalidPrimarySet)
	})
}

func TestNewSingleSetDataset(t *testing.T) {
	ds, err := NewSingleSetDataset(nil, nil, []Situation{{ID: "s1"}})
	require.NoError(t, err)
	assert.True(t, ds.PrimaryResultSet().Primary)
	assert.Empty(t, ds.SupplementalResultSets())
}

func TestNewSituationCollapsesDuplicates(t *testing.T) {
	s := NewSituation("s1", 10, "", []string{"a", "b", "a"})
	assert.Equal(t, []string{"a", "b"}, s.AlarmIDs)
}

func TestRecordValidation(t *testing.T) {
	assert.NoError(t, Alarm{ID: "a", InventoryObjectType: "PORT", InventoryObjectID: "p"}.Validate())
	assert.Error(t, Alarm{InventoryObjectType: "PORT", InventoryObjectID: "p"}.Validate())
	assert.Error(t, Alarm{ID: "a"}.Validate())
	assert.Error(t, Alarm{ID: "a", Severity: Severity(9), InventoryObjectType: "PORT", InventoryObjectID: "p"}.Validate())

	assert.NoError(t, InventoryObject{Type: "DEVICE", ID: "d"}.Validate())
	assert.Error(t, InventoryObject{Type: "DEVICE"}.Validate())

	assert.Error(t, Situation{}.Validate())
}

func TestInventoryObject(t *testing.T) {
	io := InventoryObject{Type: "PORT", ID: "p1", ParentType: "DEVICE", ParentID: "d1"}
	assert.Equal(t, "p1", io.Label())
	io.FriendlyName = "Port 1"
	assert.Equal(t, "Port 1", io.Label())

	parent, ok := io.Parent()
	require.True(t, ok)
	assert.Equal(t, InventoryKey("DEVICE", "d1"), parent.Key())

	_, ok = InventoryObject{Type: "DEVICE", ID: "d1", ParentType: "DEVICE"}.Parent()
	assert.False(t, ok)
}
