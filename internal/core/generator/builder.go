package generator

import (
	"sort"
	"strconv"
	"strings"

	"alecviz/internal/domain"
	"alecviz/internal/graph"
)

// MaxFocalSituations caps the default focal points and the annotations
const MaxFocalSituations = 10

// Graph is the working graph the pipeline operates on
type Graph = graph.Directed[domain.Vertex, domain.Edge]

// BuildResult is the full, unfiltered graph at an instant
type BuildResult struct {
	Graph             *Graph
	ActiveSituations  []domain.Situation
	SeverityByAlarmID map[string]domain.Severity
	// AlarmToSituation maps an alarm vertex id to the primary situation
	// vertex that claimed it last.
	AlarmToSituation map[string]string
	FocalPoints      []string
}

// Builder assembles graphs from a dataset
type Builder struct {
	dataset  *domain.Dataset
	resolver *Resolver
}

// NewBuilder creates a builder for the dataset
func NewBuilder(ds *domain.Dataset) *Builder {
	return &Builder{dataset: ds, resolver: NewResolver(ds)}
}

// Build constructs the full graph at ts. When focalPoint is non-empty the
// focal vertices are those whose label contains it (case-insensitive);
// otherwise the largest active primary situations are used.
func (b *Builder) Build(ts int64, focalPoint string) *BuildResult {
	g := graph.New[domain.Vertex, domain.Edge]()

	b.addInventory(g)

	active := b.resolver.ActiveAlarmsAt(ts)
	severities := make(map[string]domain.Severity, len(active))
	for _, a := range active {
		addAlarm(g, a)
		severities[a.ID] = a.Severity
	}

	situations := b.resolver.activeSituations(ts, alarmIDSet(active))
	alarmToSituation := make(map[string]string)
	for _, s := range situations {
		v := situationVertex(s, domain.PrimarySource, severities, nil)
		g.AddVertex(v.ID, v)
		for _, alarmID := range s.AlarmIDs {
			alarmVertexID := domain.AlarmKey(alarmID).String()
			if !g.HasVertex(alarmVertexID) {
				continue
			}
			addEdge(g, domain.EdgeTypeSituationToAlarm, v.ID, alarmVertexID)
			alarmToSituation[alarmVertexID] = v.ID
		}
	}

	var focal []string
	if focalPoint != "" {
		focal = matchLabels(g, focalPoint)
	} else {
		focal = largestSituations(g, situations)
	}

	b.addSupplementalSituations(g, severities, alarmToSituation)

	return &BuildResult{
		Graph:             g,
		ActiveSituations:  situations,
		SeverityByAlarmID: severities,
		AlarmToSituation:  alarmToSituation,
		FocalPoints:       focal,
	}
}

func (b *Builder) addInventory(g *Graph) {
	for _, io := range b.dataset.Inventory() {
		id := io.Key().String()
		g.AddVertex(id, domain.Vertex{
			ID:         id,
			Label:      io.Label(),
			Type:       io.Type,
			LayerID:    domain.LayerInventory,
			Attributes: map[string]string{},
		})
	}

	for _, io := range b.dataset.Inventory() {
		id := io.Key().String()
		if parent, ok := io.Parent(); ok {
			addEdge(g, domain.EdgeTypeParent, id, parent.Key().String())
		}
		for _, peer := range io.Peers {
			addEdge(g, domain.EdgeTypePeer, id, peer.Key().String())
		}
		for _, rel := range io.Relatives {
			addEdge(g, domain.EdgeTypeRelative, id, rel.Key().String())
		}
	}
}

// addEdge adds a typed edge when both endpoints exist; unresolved
// references are dropped.
func addEdge(g *Graph, edgeType, source, target string) {
	e := domain.NewEdge(edgeType, source, target)
	g.AddEdge(e.ID, source, target, e)
}

func addAlarm(g *Graph, a domain.Alarm) {
	attrs := map[string]string{
		domain.AttrID:            a.ID,
		domain.AttrSeverity:      a.Severity.Attribute(),
		domain.AttrUpdatedMs:     strconv.FormatInt(a.Time, 10),
		domain.AttrInventoryType: a.InventoryObjectType,
		domain.AttrInventoryID:   a.InventoryObjectID,
	}
	if a.Description != "" {
		attrs[domain.AttrDescription] = a.Description
	}

	id := domain.AlarmKey(a.ID).String()
	g.AddVertex(id, domain.Vertex{
		ID:         id,
		Label:      a.Summary,
		Type:       domain.VertexTypeAlarm,
		LayerID:    domain.LayerAlarms,
		Attributes: attrs,
	})
	addEdge(g, domain.EdgeTypeAlarmToIO, id, a.InventoryKey().String())
}

// SituationSeverity is one level above the most severe active member
// alarm, clamped at CRITICAL. Inactive members count as INDETERMINATE.
func SituationSeverity(s domain.Situation, severities map[string]domain.Severity) domain.Severity {
	highest := domain.SeverityIndeterminate
	for _, id := range s.AlarmIDs {
		if sev, ok := severities[id]; ok && sev > highest {
			highest = sev
		}
	}
	return highest.Escalate()
}

func situationVertex(s domain.Situation, source string, severities map[string]domain.Severity, extra map[string]string) domain.Vertex {
	attrs := make(map[string]string, len(extra)+6)
	for k, v := range extra {
		attrs[k] = v
	}
	attrs[domain.AttrID] = s.ID
	attrs[domain.AttrSeverity] = SituationSeverity(s, severities).Attribute()
	attrs[domain.AttrCreatedMs] = strconv.FormatInt(s.CreationTime, 10)
	attrs[domain.AttrNumAlarms] = strconv.Itoa(len(s.AlarmIDs))
	attrs[domain.AttrSource] = source
	if s.DiagnosticText != "" {
		attrs[domain.AttrDescription] = s.DiagnosticText
	}

	id := domain.SituationKey(source, s.ID).String()
	return domain.Vertex{
		ID:         id,
		Label:      "situation #" + s.ID,
		Type:       domain.VertexTypeSituation,
		LayerID:    domain.LayerSituations,
		Attributes: attrs,
	}
}

// addSupplementalSituations renders situations from non-primary result
// sets next to the primary ones, linked to the alarms already on the graph.
func (b *Builder) addSupplementalSituations(g *Graph, severities map[string]domain.Severity, alarmToSituation map[string]string) {
	for _, rs := range b.dataset.SupplementalResultSets() {
		for _, s := range rs.Situations {
			var alarmVertices []string
			for _, alarmID := range s.AlarmIDs {
				id := domain.AlarmKey(alarmID).String()
				if v, ok := g.Vertex(id); ok && v.LayerID == domain.LayerAlarms {
					alarmVertices = append(alarmVertices, id)
				}
			}
			if len(alarmVertices) == 0 {
				continue
			}

			matches := matchesPrimary(g, alarmVertices, alarmToSituation)
			v := situationVertex(s, rs.Source, severities, map[string]string{
				domain.AttrMatchesPrimary: strconv.FormatBool(matches),
			})
			if !g.AddVertex(v.ID, v) {
				continue
			}
			for _, alarmVertexID := range alarmVertices {
				addEdge(g, domain.EdgeTypeSituationToAlarm, v.ID, alarmVertexID)
			}
		}
	}
}

// matchesPrimary reports whether every alarm belongs to one and the same
// primary situation and that situation has no other alarms on the graph.
func matchesPrimary(g *Graph, alarmVertices []string, alarmToSituation map[string]string) bool {
	primary := ""
	for _, id := range alarmVertices {
		sit, ok := alarmToSituation[id]
		if !ok {
			return false
		}
		if primary != "" && sit != primary {
			return false
		}
		primary = sit
	}
	if !g.HasVertex(primary) {
		return false
	}
	return len(g.Neighbors(primary)) == len(alarmVertices)
}

func matchLabels(g *Graph, substring string) []string {
	needle := strings.ToLower(substring)
	var out []string
	for _, v := range g.Vertices() {
		if strings.Contains(strings.ToLower(v.Label), needle) {
			out = append(out, v.ID)
		}
	}
	return out
}

// largestSituations ranks situations by active member count, then newest
// first, and returns the vertex ids of the top MaxFocalSituations.
func largestSituations(g *Graph, situations []domain.Situation) []string {
	type ranked struct {
		vertexID string
		active   int
		created  int64
	}
	rows := make([]ranked, 0, len(situations))
	for _, s := range situations {
		n := 0
		for _, id := range s.AlarmIDs {
			if g.HasVertex(domain.AlarmKey(id).String()) {
				n++
			}
		}
		rows = append(rows, ranked{
			vertexID: domain.SituationKey(domain.PrimarySource, s.ID).String(),
			active:   n,
			created:  s.CreationTime,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].active != rows[j].active {
			return rows[i].active > rows[j].active
		}
		return rows[i].created > rows[j].created
	})

	var out []string
	for i := 0; i < len(rows) && i < MaxFocalSituations; i++ {
		if g.HasVertex(rows[i].vertexID) {
			out = append(out, rows[i].vertexID)
		}
	}
	return out
}
