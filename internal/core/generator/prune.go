package generator

import "alecviz/internal/domain"

// Prune removes inventory vertices that do not help explain an alarm and
// reports whether anything was removed.
//
// Within each weakly connected component: when no inventory vertex has an
// alarm attached, all of the component's inventory goes. Otherwise an
// inventory vertex survives when it has an alarm attached, is a root (no
// outgoing parent edge) or has at least two incident edges. Decisions for
// a component are taken before any of its vertices are removed and are
// not revisited.
func Prune(g *Graph) bool {
	removed := false
	for _, component := range g.WeakComponents() {
		var inventory []string
		for _, id := range component {
			if v, ok := g.Vertex(id); ok && v.LayerID == domain.LayerInventory {
				inventory = append(inventory, id)
			}
		}

		bearing := make(map[string]bool, len(inventory))
		for _, id := range inventory {
			bearing[id] = hasEdgeOfType(g, g.InEdges(id), domain.EdgeTypeAlarmToIO)
		}

		var doomed []string
		if !anyTrue(bearing) {
			doomed = inventory
		} else {
			for _, id := range inventory {
				if bearing[id] {
					continue
				}
				if !hasEdgeOfType(g, g.OutEdges(id), domain.EdgeTypeParent) {
					continue
				}
				if g.Degree(id) >= 2 {
					continue
				}
				doomed = append(doomed, id)
			}
		}

		for _, id := range doomed {
			if g.RemoveVertex(id) {
				removed = true
			}
		}
	}
	return removed
}

func hasEdgeOfType(g *Graph, edgeIDs []string, edgeType string) bool {
	for _, eid := range edgeIDs {
		if e, _, _, ok := g.Edge(eid); ok && e.Type == edgeType {
			return true
		}
	}
	return false
}

func anyTrue(m map[string]bool) bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}
