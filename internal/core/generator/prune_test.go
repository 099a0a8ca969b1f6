package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alecviz/internal/domain"
	"alecviz/internal/graph"
)

type pruneFixture struct {
	g *Graph
}

func newPruneFixture() *pruneFixture {
	return &pruneFixture{g: graph.New[domain.Vertex, domain.Edge]()}
}

func (f *pruneFixture) inventory(ids ...string) *pruneFixture {
	for _, id := range ids {
		f.g.AddVertex(id, domain.Vertex{ID: id, Type: "NODE", LayerID: domain.LayerInventory})
	}
	return f
}

func (f *pruneFixture) alarm(id, on string) *pruneFixture {
	f.g.AddVertex(id, domain.Vertex{ID: id, Type: domain.VertexTypeAlarm, LayerID: domain.LayerAlarms})
	return f.edge(domain.EdgeTypeAlarmToIO, id, on)
}

func (f *pruneFixture) edge(edgeType, source, target string) *pruneFixture {
	e := domain.NewEdge(edgeType, source, target)
	f.g.AddEdge(e.ID, source, target, e)
	return f
}

func TestPruneComponentWithoutAlarms(t *testing.T) {
	f := newPruneFixture().
		inventory("root", "child", "lonely").
		edge(domain.EdgeTypeParent, "child", "root")

	assert.True(t, Prune(f.g))
	assert.Zero(t, f.g.VertexCount())
}

func TestPruneKeepsAlarmBearingAndRoots(t *testing.T) {
	// root <- a <- b, root <- c; alarm on b
	f := newPruneFixture().
		inventory("root", "a", "b", "c").
		edge(domain.EdgeTypeParent, "a", "root").
		edge(domain.EdgeTypeParent, "b", "a").
		edge(domain.EdgeTypeParent, "c", "root").
		alarm("alarm", "b")

	assert.True(t, Prune(f.g))
	assert.True(t, f.g.HasVertex("root"), "root stays")
	assert.True(t, f.g.HasVertex("b"), "alarm-bearing stays")
	assert.True(t, f.g.HasVertex("a"), "two incident edges")
	assert.False(t, f.g.HasVertex("c"), "leaf without alarms goes")
	assert.True(t, f.g.HasVertex("alarm"), "non-inventory vertices are never pruned")
}

func TestPruneSinglePass(t *testing.T) {
	// root <- a <- b <- c with the alarm on root; only c is removable at first,
	// after which b would be, but it is not revisited.
	f := newPruneFixture().
		inventory("root", "a", "b", "c").
		edge(domain.EdgeTypeParent, "a", "root").
		edge(domain.EdgeTypeParent, "b", "a").
		edge(domain.EdgeTypeParent, "c", "b").
		alarm("alarm", "root")

	assert.True(t, Prune(f.g))
	assert.ElementsMatch(t, []string{"root", "a", "b", "alarm"}, f.g.VertexIDs())
}

func TestPruneNothingToRemove(t *testing.T) {
	f := newPruneFixture().
		inventory("root", "port").
		edge(domain.EdgeTypeParent, "port", "root").
		alarm("alarm", "port")

	assert.False(t, Prune(f.g))
	assert.Equal(t, 3, f.g.VertexCount())
}

func TestPruneNeverRemovesAlarmBearing(t *testing.T) {
	f := newPruneFixture().
		inventory("d1", "p1", "p2", "d2", "p3").
		edge(domain.EdgeTypeParent, "p1", "d1").
		edge(domain.EdgeTypeParent, "p2", "d1").
		edge(domain.EdgeTypeParent, "p3", "d2").
		edge(domain.EdgeTypePeer, "p1", "p3").
		alarm("x", "p2").
		alarm("y", "p3")

	Prune(f.g)
	assert.True(t, f.g.HasVertex("p2"))
	assert.True(t, f.g.HasVertex("p3"))
	for _, e := range f.g.Edges() {
		assert.True(t, f.g.HasVertex(e.SourceID))
		assert.True(t, f.g.HasVertex(e.TargetID))
	}
}
