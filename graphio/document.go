package graphio

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dmmstp/core"
)

// EdgeMap is the raw on-disk adjacency shape: node → neighbor → weight.
type EdgeMap map[string]map[string]float64

// Document is one parsed graph description. DistanceEdges drives DM-MSTP;
// TravelTimeEdges is an optional secondary weighting that the loader carries
// but the core never consumes.
type Document struct {
	DistanceEdges   EdgeMap `yaml:"distance_edges" json:"distance_edges"`
	TravelTimeEdges EdgeMap `yaml:"travel_time_edges,omitempty" json:"travel_time_edges,omitempty"`
}

// HasTravelTimes reports whether the optional secondary weighting is present.
func (d *Document) HasTravelTimes() bool {
	return len(d.TravelTimeEdges) > 0
}

// DistanceGraph builds the core graph from DistanceEdges, feeding vertices
// in lexicographically sorted order (outer keys first, then each node's
// neighbor keys) so that index assignment is reproducible regardless of map
// iteration order.
//
// Errors: ErrNoDistanceEdges when the mapping is empty; core ingestion
// failures (negative or non-finite weights — YAML happily parses .inf and
// .nan) are wrapped with the offending pair.
//
// Complexity: O(V log V + E log E).
func (d *Document) DistanceGraph() (*core.Graph[string], error) {
	if len(d.DistanceEdges) == 0 {
		return nil, ErrNoDistanceEdges
	}

	return buildGraph(d.DistanceEdges)
}

// TravelTimeGraph builds a core graph from the secondary weighting, under
// the same deterministic ordering. Returns an empty graph when the document
// has no travel times.
func (d *Document) TravelTimeGraph() (*core.Graph[string], error) {
	if len(d.TravelTimeEdges) == 0 {
		return core.NewGraph[string](), nil
	}

	return buildGraph(d.TravelTimeEdges)
}

// buildGraph converts an EdgeMap into a core.Graph with sorted-key ordering.
func buildGraph(edges EdgeMap) (*core.Graph[string], error) {
	g := core.NewGraph[string]()

	nodes := make([]string, 0, len(edges))
	for node := range edges {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	for _, node := range nodes {
		// Register the node even when it only lists neighbors elsewhere;
		// isolated keys stay valid vertices.
		g.AddVertex(node)

		nbrs := edges[node]
		nbrKeys := make([]string, 0, len(nbrs))
		for nbr := range nbrs {
			nbrKeys = append(nbrKeys, nbr)
		}
		sort.Strings(nbrKeys)

		for _, nbr := range nbrKeys {
			if err := g.AddEdge(node, nbr, nbrs[nbr]); err != nil {
				return nil, errors.Wrapf(err, "graphio: edge %s—%s", node, nbr)
			}
		}
	}

	return g, nil
}

// merge folds src into dst: neighbor maps are unioned per node, with src
// weights overriding dst on collision. Used for directory loads.
func merge(dst, src EdgeMap) EdgeMap {
	if dst == nil {
		dst = make(EdgeMap, len(src))
	}
	for node, nbrs := range src {
		if dst[node] == nil {
			dst[node] = make(map[string]float64, len(nbrs))
		}
		for nbr, w := range nbrs {
			dst[node][nbr] = w
		}
	}

	return dst
}
