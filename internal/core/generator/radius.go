package generator

import "alecviz/internal/graph"

// Extract returns the ego network of the focal vertices: every vertex
// within radius hops, following edges in either direction, and every edge
// whose endpoints are both kept. Unknown focal ids are ignored. The result
// keeps the source graph's ordering, so it does not depend on the order of
// focal.
func Extract[V any, E any](g *graph.Directed[V, E], focal []string, radius int) *graph.Directed[V, E] {
	keep := make(map[string]struct{}, len(focal))
	var frontier []string
	for _, id := range focal {
		if !g.HasVertex(id) {
			continue
		}
		if _, ok := keep[id]; ok {
			continue
		}
		keep[id] = struct{}{}
		frontier = append(frontier, id)
	}

	for hop := 0; hop < radius && len(frontier) > 0; hop++ {
		var next []string
		for _, id := range frontier {
			for _, n := range g.Neighbors(id) {
				if _, ok := keep[n]; ok {
					continue
				}
				keep[n] = struct{}{}
				next = append(next, n)
			}
		}
		frontier = next
	}

	return g.Subgraph(keep)
}
