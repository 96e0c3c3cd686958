// Package graph builds the undirected collaboration graph connecting
// artists who share a track credit.
package graph

import (
	"sort"

	"chart-market-tools/internal/dataset"
)

// Graph is an undirected, unweighted graph stored as adjacency sets.
// Edges are deduplicated by construction and self-loops are never added.
type Graph struct {
	adj map[string]map[string]bool
}

func New() *Graph {
	return &Graph{adj: make(map[string]map[string]bool)}
}

// Build constructs the collaboration graph from a track table. Every track
// with more than one credited artist contributes an edge for each unordered
// pair in its artist list (k artists yield k*(k-1)/2 pairs). Solo tracks
// contribute nothing: an artist with no collaborations never appears, even
// as an isolated node.
func Build(tracks []dataset.Track) *Graph {
	g := New()
	for _, t := range tracks {
		if len(t.ArtistList) < 2 {
			continue
		}
		for i := 0; i < len(t.ArtistList); i++ {
			for j := i + 1; j < len(t.ArtistList); j++ {
				g.AddEdge(t.ArtistList[i], t.ArtistList[j])
			}
		}
	}
	return g
}

// AddEdge connects a and b. Self-loops are ignored.
func (g *Graph) AddEdge(a, b string) {
	if a == b {
		return
	}
	g.link(a, b)
	g.link(b, a)
}

func (g *Graph) link(from, to string) {
	neighbors, ok := g.adj[from]
	if !ok {
		neighbors = make(map[string]bool)
		g.adj[from] = neighbors
	}
	neighbors[to] = true
}

func (g *Graph) HasEdge(a, b string) bool {
	return g.adj[a][b]
}

// Nodes returns all artist names in the graph, sorted.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.adj))
	for n := range g.adj {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Edges returns every unordered pair once, with pair[0] < pair[1], sorted.
func (g *Graph) Edges() [][2]string {
	var edges [][2]string
	for a, neighbors := range g.adj {
		for b := range neighbors {
			if a < b {
				edges = append(edges, [2]string{a, b})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// Neighbors returns the artists directly connected to n, sorted.
func (g *Graph) Neighbors(n string) []string {
	neighbors := make([]string, 0, len(g.adj[n]))
	for b := range g.adj[n] {
		neighbors = append(neighbors, b)
	}
	sort.Strings(neighbors)
	return neighbors
}

func (g *Graph) NodeCount() int {
	return len(g.adj)
}

func (g *Graph) EdgeCount() int {
	total := 0
	for _, neighbors := range g.adj {
		total += len(neighbors)
	}
	return total / 2
}

// Degree is the number of distinct collaborators of n.
func (g *Graph) Degree(n string) int {
	return len(g.adj[n])
}
