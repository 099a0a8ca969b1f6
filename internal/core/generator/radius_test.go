package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alecviz/internal/graph"
)

// threeVertexGraph is v1 -> v2 -> v3
func threeVertexGraph() *graph.Directed[string, string] {
	g := graph.New[string, string]()
	for _, id := range []string{"v1", "v2", "v3"} {
		g.AddVertex(id, id)
	}
	g.AddEdge("e1", "v1", "v2", "e1")
	g.AddEdge("e2", "v2", "v3", "e2")
	return g
}

func TestExtractRadiusZero(t *testing.T) {
	g := threeVertexGraph()
	sub := Extract(g, []string{"v2"}, 0)
	assert.Equal(t, []string{"v2"}, sub.VertexIDs())
	assert.Empty(t, sub.EdgeIDs())

	assert.Zero(t, Extract(g, nil, 0).VertexCount())
	assert.Zero(t, Extract(g, nil, 5).VertexCount())
}

func TestExtractIgnoresEdgeDirection(t *testing.T) {
	g := graph.New[string, string]()
	g.AddVertex("v1", "v1")
	g.AddVertex("v2", "v2")
	g.AddEdge("e1", "v1", "v2", "e1")

	for _, focal := range []string{"v1", "v2"} {
		sub := Extract(g, []string{focal}, 1)
		assert.Equal(t, 2, sub.VertexCount(), "from %s", focal)
		assert.Equal(t, 1, sub.EdgeCount(), "from %s", focal)
	}
}

func TestExtractRadius(t *testing.T) {
	g := threeVertexGraph()

	tests := []struct {
		name     string
		focal    []string
		radius   int
		vertices []string
		edges    []string
	}{
		{"one hop from end", []string{"v1"}, 1, []string{"v1", "v2"}, []string{"e1"}},
		{"two hops from end", []string{"v1"}, 2, []string{"v1", "v2", "v3"}, []string{"e1", "e2"}},
		{"one hop from middle", []string{"v2"}, 1, []string{"v1", "v2", "v3"}, []string{"e1", "e2"}},
		{"radius beyond graph", []string{"v3"}, 10, []string{"v1", "v2", "v3"}, []string{"e1", "e2"}},
		{"two focal points", []string{"v1", "v3"}, 0, []string{"v1", "v3"}, nil},
		{"unknown focal point", []string{"nope"}, 2, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := Extract(g, tt.focal, tt.radius)
			assert.ElementsMatch(t, tt.vertices, sub.VertexIDs())
			assert.ElementsMatch(t, tt.edges, sub.EdgeIDs())
		})
	}
}

func TestExtractOrderIndependent(t *testing.T) {
	g := threeVertexGraph()
	g.AddVertex("v4", "v4")
	g.AddEdge("e3", "v4", "v1", "e3")

	a := Extract(g, []string{"v3", "v4"}, 1)
	b := Extract(g, []string{"v4", "v3", "v4"}, 1)
	assert.Equal(t, a.VertexIDs(), b.VertexIDs())
	assert.Equal(t, a.EdgeIDs(), b.EdgeIDs())
}

func TestExtractLeavesSourceUntouched(t *testing.T) {
	g := threeVertexGraph()
	Extract(g, []string{"v1"}, 0)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}
