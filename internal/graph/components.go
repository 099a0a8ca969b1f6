package graph

type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(id string) string {
	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[id] != root {
		next := uf.parent[id]
		uf.parent[id] = root
		id = next
	}
	return root
}

func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
}

// WeakComponents partitions the vertices into weakly connected components.
// Components are ordered by their first vertex; members keep insertion order.
func (g *Directed[V, E]) WeakComponents() [][]string {
	ids := g.VertexIDs()
	uf := newUnionFind(ids)
	for _, eid := range g.EdgeIDs() {
		e := g.edges[eid]
		uf.union(e.source, e.target)
	}

	index := make(map[string]int)
	var components [][]string
	for _, id := range ids {
		root := uf.find(id)
		i, ok := index[root]
		if !ok {
			i = len(components)
			index[root] = i
			components = append(components, nil)
		}
		components[i] = append(components[i], id)
	}
	return components
}
