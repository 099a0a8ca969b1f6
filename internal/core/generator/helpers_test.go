package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"alecviz/internal/domain"
)

const (
	minute = int64(60 * 1000)
	hour   = 60 * minute
)

func alarm(id string, ts int64, sev domain.Severity, ioType, ioID string) domain.Alarm {
	return domain.Alarm{
		ID:                  id,
		Time:                ts,
		Severity:            sev,
		InventoryObjectType: ioType,
		InventoryObjectID:   ioID,
		Summary:             "alarm " + id,
	}
}

func cleared(a domain.Alarm) domain.Alarm {
	a.Clear = true
	return a
}

func newDataset(t *testing.T, alarms []domain.Alarm, inventory []domain.InventoryObject, sets ...domain.SituationResultSet) *domain.Dataset {
	t.Helper()
	ds, err := domain.NewDataset(alarms, inventory, sets)
	require.NoError(t, err)
	return ds
}

func primary(situations ...domain.Situation) domain.SituationResultSet {
	return domain.SituationResultSet{Source: domain.PrimarySource, Primary: true, Situations: situations}
}

func supplemental(source string, situations ...domain.Situation) domain.SituationResultSet {
	return domain.SituationResultSet{Source: source, Situations: situations}
}

func view(t *testing.T, ts int64, radius int, focal string, prune bool) domain.GraphView {
	t.Helper()
	v, err := domain.NewGraphView(domain.ViewParams{
		Timestamp:                   &ts,
		Radius:                      &radius,
		FocalPoint:                  focal,
		RemoveInventoryWithNoAlarms: prune,
	})
	require.NoError(t, err)
	return v
}

func inventoryKey(ioType, id string) string {
	return domain.InventoryKey(ioType, id).String()
}

func alarmKey(id string) string {
	return domain.AlarmKey(id).String()
}

func situationKey(source, id string) string {
	return domain.SituationKey(source, id).String()
}

// switchInventory is a device with two ports and a peer device
func switchInventory() []domain.InventoryObject {
	return []domain.InventoryObject{
		{Type: "DEVICE", ID: "sw1", Peers: []domain.Ref{{Type: "DEVICE", ID: "sw2"}}},
		{Type: "PORT", ID: "sw1:p1", FriendlyName: "Port 1", ParentType: "DEVICE", ParentID: "sw1"},
		{Type: "PORT", ID: "sw1:p2", ParentType: "DEVICE", ParentID: "sw1",
			Relatives: []domain.Ref{{Type: "PORT", ID: "missing"}}},
		{Type: "DEVICE", ID: "sw2"},
	}
}
