package graph

type vertexEntry[V any] struct {
	value V
	seq   int
	out   []string
	in    []string
}

type edgeEntry[E any] struct {
	value  E
	seq    int
	source string
	target string
}

type orderKey struct {
	id  string
	seq int
}

// Directed is a directed multigraph. It is not safe for concurrent mutation.
type Directed[V any, E any] struct {
	vertices    map[string]*vertexEntry[V]
	edges       map[string]*edgeEntry[E]
	vertexOrder []orderKey
	edgeOrder   []orderKey
	seq         int
}

// New creates an empty graph
func New[V any, E any]() *Directed[V, E] {
	return &Directed[V, E]{
		vertices: make(map[string]*vertexEntry[V]),
		edges:    make(map[string]*edgeEntry[E]),
	}
}

// AddVertex adds a vertex. It returns false when the id is already present.
func (g *Directed[V, E]) AddVertex(id string, value V) bool {
	if _, ok := g.vertices[id]; ok {
		return false
	}
	g.seq++
	g.vertices[id] = &vertexEntry[V]{value: value, seq: g.seq}
	g.vertexOrder = append(g.vertexOrder, orderKey{id: id, seq: g.seq})
	return true
}

// AddEdge adds an edge between two existing vertices. It returns false when
// the edge id is taken or either endpoint is missing.
func (g *Directed[V, E]) AddEdge(id, source, target string, value E) bool {
	if _, ok := g.edges[id]; ok {
		return false
	}
	src, ok := g.vertices[source]
	if !ok {
		return false
	}
	dst, ok := g.vertices[target]
	if !ok {
		return false
	}
	g.seq++
	g.edges[id] = &edgeEntry[E]{value: value, seq: g.seq, source: source, target: target}
	g.edgeOrder = append(g.edgeOrder, orderKey{id: id, seq: g.seq})
	src.out = append(src.out, id)
	dst.in = append(dst.in, id)
	return true
}

// HasVertex reports whether the vertex exists
func (g *Directed[V, E]) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the payload of a vertex
func (g *Directed[V, E]) Vertex(id string) (V, bool) {
	v, ok := g.vertices[id]
	if !ok {
		var zero V
		return zero, false
	}
	return v.value, true
}

// Edge returns the payload and endpoints of an edge
func (g *Directed[V, E]) Edge(id string) (value E, source, target string, ok bool) {
	e, ok := g.edges[id]
	if !ok {
		return value, "", "", false
	}
	return e.value, e.source, e.target, true
}

// VertexCount returns the number of vertices
func (g *Directed[V, E]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges
func (g *Directed[V, E]) EdgeCount() int { return len(g.edges) }

// VertexIDs returns vertex ids in insertion order
func (g *Directed[V, E]) VertexIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for _, k := range g.vertexOrder {
		if v, ok := g.vertices[k.id]; ok && v.seq == k.seq {
			ids = append(ids, k.id)
		}
	}
	return ids
}

// EdgeIDs returns edge ids in insertion order
func (g *Directed[V, E]) EdgeIDs() []string {
	ids := make([]string, 0, len(g.edges))
	for _, k := range g.edgeOrder {
		if e, ok := g.edges[k.id]; ok && e.seq == k.seq {
			ids = append(ids, k.id)
		}
	}
	return ids
}

// Vertices returns vertex payloads in insertion order
func (g *Directed[V, E]) Vertices() []V {
	ids := g.VertexIDs()
	out := make([]V, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.vertices[id].value)
	}
	return out
}

// Edges returns edge payloads in insertion order
func (g *Directed[V, E]) Edges() []E {
	ids := g.EdgeIDs()
	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.edges[id].value)
	}
	return out
}

// OutEdges returns the ids of edges leaving the vertex
func (g *Directed[V, E]) OutEdges(id string) []string {
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}
	return append([]string(nil), v.out...)
}

// InEdges returns the ids of edges entering the vertex
func (g *Directed[V, E]) InEdges(id string) []string {
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}
	return append([]string(nil), v.in...)
}

// IncidentEdges returns outgoing then incoming edge ids. A self-loop appears twice.
func (g *Directed[V, E]) IncidentEdges(id string) []string {
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(v.out)+len(v.in))
	out = append(out, v.out...)
	return append(out, v.in...)
}

// Degree returns the number of incident edges
func (g *Directed[V, E]) Degree(id string) int {
	v, ok := g.vertices[id]
	if !ok {
		return 0
	}
	return len(v.out) + len(v.in)
}

// Successors returns the distinct targets of outgoing edges
func (g *Directed[V, E]) Successors(id string) []string {
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}
	return g.endpoints(v.out, func(e *edgeEntry[E]) string { return e.target })
}

// Predecessors returns the distinct sources of incoming edges
func (g *Directed[V, E]) Predecessors(id string) []string {
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}
	return g.endpoints(v.in, func(e *edgeEntry[E]) string { return e.source })
}

// Neighbors returns the distinct vertices adjacent in either direction
func (g *Directed[V, E]) Neighbors(id string) []string {
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	add := func(n string) {
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	for _, eid := range v.out {
		add(g.edges[eid].target)
	}
	for _, eid := range v.in {
		add(g.edges[eid].source)
	}
	return out
}

func (g *Directed[V, E]) endpoints(edgeIDs []string, pick func(*edgeEntry[E]) string) []string {
	seen := make(map[string]struct{}, len(edgeIDs))
	out := make([]string, 0, len(edgeIDs))
	for _, eid := range edgeIDs {
		n := pick(g.edges[eid])
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// RemoveEdge deletes an edge. It returns false when the edge does not exist.
func (g *Directed[V, E]) RemoveEdge(id string) bool {
	e, ok := g.edges[id]
	if !ok {
		return false
	}
	delete(g.edges, id)
	if src, ok := g.vertices[e.source]; ok {
		src.out = removeString(src.out, id)
	}
	if dst, ok := g.vertices[e.target]; ok {
		dst.in = removeString(dst.in, id)
	}
	return true
}

// RemoveVertex deletes a vertex and every incident edge
func (g *Directed[V, E]) RemoveVertex(id string) bool {
	v, ok := g.vertices[id]
	if !ok {
		return false
	}
	for _, eid := range append(append([]string(nil), v.out...), v.in...) {
		g.RemoveEdge(eid)
	}
	delete(g.vertices, id)
	return true
}

// Subgraph returns a new graph with the given vertices and every edge whose
// endpoints are both kept. Ordering follows the receiver.
func (g *Directed[V, E]) Subgraph(keep map[string]struct{}) *Directed[V, E] {
	sub := New[V, E]()
	for _, id := range g.VertexIDs() {
		if _, ok := keep[id]; ok {
			sub.AddVertex(id, g.vertices[id].value)
		}
	}
	for _, id := range g.EdgeIDs() {
		e := g.edges[id]
		sub.AddEdge(id, e.source, e.target, e.value)
	}
	return sub
}

func removeString(in []string, s string) []string {
	for i, v := range in {
		if v == s {
			return append(in[:i], in[i+1:]...)
		}
	}
	return in
}
