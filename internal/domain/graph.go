package domain

// Layer identifiers
const (
	LayerInventory  = "inventory"
	LayerAlarms     = "alarms"
	LayerSituations = "situations"
)

// Vertex types that are not inventory object types
const (
	VertexTypeAlarm     = "alarm"
	VertexTypeSituation = "situation"
)

// Edge types
const (
	EdgeTypeParent           = "parent"
	EdgeTypePeer             = "peer"
	EdgeTypeRelative         = "relative"
	EdgeTypeAlarmToIO        = "alarm-to-io"
	EdgeTypeSituationToAlarm = "situation-to-alarm"
)

// Vertex attribute keys
const (
	AttrID             = "id"
	AttrSeverity       = "severity"
	AttrUpdatedMs      = "updatedms"
	AttrCreatedMs      = "createdms"
	AttrNumAlarms      = "numalarms"
	AttrSource         = "source"
	AttrInventoryID    = "ioid"
	AttrInventoryType  = "iotype"
	AttrDescription    = "descr"
	AttrMatchesPrimary = "matchesprimary"
)

// Vertex is a node of a generated graph
type Vertex struct {
	ID         string            `json:"id" yaml:"id"`
	Label      string            `json:"label" yaml:"label"`
	Type       string            `json:"type" yaml:"type"`
	LayerID    string            `json:"layer_id" yaml:"layer_id"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
}

// Edge is a directed link of a generated graph
type Edge struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Type     string `json:"type" yaml:"type"`
	SourceID string `json:"source_id" yaml:"source_id"`
	TargetID string `json:"target_id" yaml:"target_id"`
}

// EdgeID returns the identifier of an edge of the given type between two vertices
func EdgeID(edgeType, sourceID, targetID string) string {
	return "edge-" + edgeType + "-" + sourceID + "-" + targetID
}

// NewEdge builds an edge with its derived identifier
func NewEdge(edgeType, sourceID, targetID string) Edge {
	return Edge{
		ID:       EdgeID(edgeType, sourceID, targetID),
		Type:     edgeType,
		SourceID: sourceID,
		TargetID: targetID,
	}
}

// Layer groups vertices for rendering
type Layer struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Order       int    `json:"order" yaml:"order"`
}

// Layers returns the three fixed layers in rendering order
func Layers() []Layer {
	return []Layer{
		{ID: LayerInventory, Label: "Inventory", Description: "ALEC Inventory", Order: 0},
		{ID: LayerAlarms, Label: "Alarms", Description: "ALEC Alarms", Order: 1},
		{ID: LayerSituations, Label: "Situations", Description: "ALEC Situations", Order: 2},
	}
}

// TimeRange is the span of recorded activity in epoch milliseconds
type TimeRange struct {
	StartMs int64 `json:"startMs" yaml:"startMs"`
	EndMs   int64 `json:"endMs" yaml:"endMs"`
}

// Annotation marks a notable instant on the time axis
type Annotation struct {
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
	Label     string `json:"label" yaml:"label"`
}

// GraphMetadata describes a dataset's graph independently of any view
type GraphMetadata struct {
	ID          string       `json:"id" yaml:"id"`
	Label       string       `json:"label" yaml:"label"`
	Description string       `json:"description" yaml:"description"`
	TimeRange   TimeRange    `json:"timeRange" yaml:"timeRange"`
	Annotations []Annotation `json:"annotations" yaml:"annotations"`
}

// Graph is one generated point-in-time view
type Graph struct {
	Metadata GraphMetadata `json:"metadata" yaml:"metadata"`
	Vertices []Vertex      `json:"vertices" yaml:"vertices"`
	Edges    []Edge        `json:"edges" yaml:"edges"`
	Layers   []Layer       `json:"layers" yaml:"layers"`
}

// VerticesInLayer returns the vertices assigned to the given layer
func (g *Graph) VerticesInLayer(layerID string) []Vertex {
	var out []Vertex
	for _, v := range g.Vertices {
		if v.LayerID == layerID {
			out = append(out, v)
		}
	}
	return out
}

// EdgesOfType returns the edges with the given type
func (g *Graph) EdgesOfType(edgeType string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Type == edgeType {
			out = append(out, e)
		}
	}
	return out
}
