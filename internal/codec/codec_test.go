package codec

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"alecviz/internal/domain"
)

const alarmsYAML = `
alarms:
  - id: "1"
    time: 1000
    severity: major
    inventory_object_type: PORT
    inventory_object_id: "sw1: p1"
    summary: Port Down
    description: Port Down due to Oper Status down
  - id: "1"
    time: 2000
    severity: indeterminate
    clear: true
    inventory_object_type: PORT
    inventory_object_id: "sw1: p1"
    summary: Port Down
`

const inventoryYAML = `
inventory:
  - type: DEVICE
    id: sw1
    friendly_name: Switch 1
    peers:
      - {type: DEVICE, id: sw2}
  - type: PORT
    id: "sw1: p1"
    parent_type: DEVICE
    parent_id: sw1
    relatives:
      - {type: PORT, id: "sw2: p1"}
`

const situationsYAML = `
situations:
  - id: "42"
    creation_time: 1500
    diagnostic_text: Port flap
    alarms: ["1", "2", "1"]
`

func TestImporterFor(t *testing.T) {
	tests := []struct {
		name   string
		format string
	}{
		{"alec.alarms.yaml", "yaml"},
		{"alec.alarms.YML", "yaml"},
		{"alec.alarms.json", "json"},
	}
	for _, tt := range tests {
		imp, err := ImporterFor(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.format, imp.Format())
	}

	_, err := ImporterFor("alec.alarms.xml")
	assert.Error(t, err)
}

func TestExporterFor(t *testing.T) {
	exp, err := ExporterFor("")
	require.NoError(t, err)
	assert.Equal(t, "json", exp.Format())

	exp, err = ExporterFor("YAML")
	require.NoError(t, err)
	assert.Equal(t, "yaml", exp.Format())

	_, err = ExporterFor("xml")
	assert.Error(t, err)
}

func TestYAMLParseAlarms(t *testing.T) {
	alarms, err := NewYAMLCodec().ParseAlarms(strings.NewReader(alarmsYAML))
	require.NoError(t, err)
	require.Len(t, alarms, 2)

	assert.Equal(t, domain.Alarm{
		ID:                  "1",
		Time:                1000,
		Severity:            domain.SeverityMajor,
		InventoryObjectType: "PORT",
		InventoryObjectID:   "sw1: p1",
		Summary:             "Port Down",
		Description:         "Port Down due to Oper Status down",
	}, alarms[0])
	assert.True(t, alarms[1].Clear)
	assert.Equal(t, domain.SeverityIndeterminate, alarms[1].Severity)
}

func TestYAMLParseInventory(t *testing.T) {
	objects, err := NewYAMLCodec().ParseInventory(strings.NewReader(inventoryYAML))
	require.NoError(t, err)
	require.Len(t, objects, 2)

	assert.Equal(t, "Switch 1", objects[0].FriendlyName)
	assert.Equal(t, []domain.Ref{{Type: "DEVICE", ID: "sw2"}}, objects[0].Peers)
	parent, ok := objects[1].Parent()
	require.True(t, ok)
	assert.Equal(t, "sw1", parent.ID)
	assert.Equal(t, []domain.Ref{{Type: "PORT", ID: "sw2: p1"}}, objects[1].Relatives)
}

func TestYAMLParseSituations(t *testing.T) {
	situations, err := NewYAMLCodec().ParseSituations(strings.NewReader(situationsYAML))
	require.NoError(t, err)
	require.Len(t, situations, 1)

	assert.Equal(t, "42", situations[0].ID)
	assert.Equal(t, int64(1500), situations[0].CreationTime)
	assert.Equal(t, "Port flap", situations[0].DiagnosticText)
	assert.Equal(t, []string{"1", "2"}, situations[0].AlarmIDs)
}

func TestParseEmptyDocument(t *testing.T) {
	alarms, err := NewYAMLCodec().ParseAlarms(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, alarms)

	situations, err := NewJSONCodec().ParseSituations(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, situations)
}

func TestParseAggregatesRecordErrors(t *testing.T) {
	doc := `
alarms:
  - {id: "1", time: 1, severity: loud, inventory_object_type: PORT, inventory_object_id: p}
  - {id: "",  time: 1, severity: major, inventory_object_type: PORT, inventory_object_id: p}
  - {id: "3", time: 1, severity: major, inventory_object_type: PORT, inventory_object_id: p}
`
	_, err := NewYAMLCodec().ParseAlarms(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alarm #0")
	assert.Contains(t, err.Error(), "alarm #1")
	assert.NotContains(t, err.Error(), "alarm #2")
}

func TestJSONParse(t *testing.T) {
	doc := `{"alarms":[{"id":"7","time":5,"severity":"CRITICAL","inventory_object_type":"DEVICE","inventory_object_id":"d","summary":"down"}]}`
	alarms, err := NewJSONCodec().ParseAlarms(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, alarms, 1)
	assert.Equal(t, domain.SeverityCritical, alarms[0].Severity)

	_, err = NewJSONCodec().ParseInventory(strings.NewReader(`{"inventory": [`))
	assert.Error(t, err)
}

func sampleGraph() *domain.Graph {
	return &domain.Graph{
		Metadata: domain.GraphMetadata{ID: "0", Label: "ALEC", TimeRange: domain.TimeRange{StartMs: 1, EndMs: 2}},
		Vertices: []domain.Vertex{{ID: "v", Label: "V", Type: "alarm", LayerID: domain.LayerAlarms,
			Attributes: map[string]string{"id": "1"}}},
		Edges:  []domain.Edge{domain.NewEdge(domain.EdgeTypeAlarmToIO, "v", "w")},
		Layers: domain.Layers(),
	}
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec().Export(sampleGraph(), &buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	vertex := decoded["vertices"].([]any)[0].(map[string]any)
	assert.Equal(t, "alarms", vertex["layer_id"])
	edge := decoded["edges"].([]any)[0].(map[string]any)
	assert.Equal(t, "v", edge["source_id"])
	assert.Equal(t, "w", edge["target_id"])
	meta := decoded["metadata"].(map[string]any)
	assert.Equal(t, float64(1), meta["timeRange"].(map[string]any)["startMs"])
}

func TestYAMLExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLCodec().Export(sampleGraph(), &buf))

	var decoded domain.Graph
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleGraph().Vertices, decoded.Vertices)
	assert.Len(t, decoded.Layers, 3)
}
