// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"context"
	"fmt"
	"math"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue/heap"
)

// Path is a route through a graph and its total weight.
type Path struct {
	Vertices []string
	Distance float64
}

// Tree is a shortest path tree rooted at a single source vertex.
type Tree struct {
	Source    string
	Distances map[string]float64
	previous  map[string]string
}

// PathTo returns the shortest path from the tree's source to the
// specified vertex, or ErrNoRoute if it is not reachable.
func (t *Tree) PathTo(to string) (Path, error) {
	d, ok := t.Distances[to]
	if !ok {
		return Path{}, fmt.Errorf("%v -> %v: %w", t.Source, to, ErrNoRoute)
	}
	return Path{Vertices: walkBack(t.previous, t.Source, to), Distance: d}, nil
}

func walkBack(previous map[string]string, from, to string) []string {
	var rev []string
	for v := to; ; v = previous[v] {
		rev = append(rev, v)
		if v == from {
			break
		}
	}
	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}

// relax records d as the distance to v via u if it is an improvement,
// inserting v into the frontier with priority d+estimate or updating its
// existing priority.
func relax(frontier *heap.IndexedMin[string, string, float64], dist map[string]float64, prev map[string]string, u, v string, d, estimate float64) bool {
	if cur, ok := dist[v]; ok && d >= cur {
		return false
	}
	dist[v] = d
	prev[v] = u
	var err error
	if frontier.Contains(v) {
		err = frontier.ChangePriority(v, d+estimate)
	} else {
		err = frontier.Insert(v, d+estimate)
	}
	if err != nil {
		panic(err) // Contains and the frontier disagree.
	}
	return true
}

// ShortestPaths computes the shortest path tree from the specified
// vertex to all vertices reachable from it using Dijkstra's algorithm.
func ShortestPaths(ctx context.Context, g *Graph, from string) (*Tree, error) {
	if !g.Has(from) {
		return nil, fmt.Errorf("%q: %w", from, ErrUnknownVertex)
	}
	tree := &Tree{
		Source:    from,
		Distances: map[string]float64{from: 0},
		previous:  map[string]string{},
	}
	frontier := heap.NewIndexedMin[string, float64](heap.WithSliceCap[string](g.Len()))
	if err := frontier.Insert(from, 0); err != nil {
		return nil, err
	}
	settled, updates := 0, 0
	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		u, _ := frontier.ExtractMin()
		settled++
		for _, e := range g.Neighbours(u) {
			if relax(frontier, tree.Distances, tree.previous, u, e.To, tree.Distances[u]+e.Weight, 0) {
				updates++
			}
		}
	}
	ctxlog.Logger(ctx).Debug("shortest paths", "from", from, "settled", settled, "updates", updates)
	return tree, nil
}

// Heuristic estimates the remaining distance from v to target. Route
// returns optimal paths only if the heuristic never overestimates.
type Heuristic func(g *Graph, v, target string) float64

// Euclidean is a Heuristic that returns the straight line distance
// between two vertices, or zero if either has no position. It never
// overestimates, and hence Route finds shortest paths, only when every
// vertex has a position and Validate reports no errors.
func Euclidean(g *Graph, v, target string) float64 {
	a, ok := g.Position(v)
	if !ok {
		return 0
	}
	b, ok := g.Position(target)
	if !ok {
		return 0
	}
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

type routeOptions struct {
	heuristic Heuristic
	explicit  bool
}

// RouteOption represents an option to Route.
type RouteOption func(*routeOptions)

// WithHeuristic sets the heuristic used by Route. A nil heuristic makes
// Route equivalent to Dijkstra's algorithm terminated at the target.
// The default is Euclidean for graphs where every vertex has a position
// and Validate succeeds, and nil otherwise.
func WithHeuristic(h Heuristic) RouteOption {
	return func(o *routeOptions) {
		o.heuristic = h
		o.explicit = true
	}
}

func zeroHeuristic(*Graph, string, string) float64 { return 0 }

// Route finds the shortest path between two vertices using A* search.
func Route(ctx context.Context, g *Graph, from, to string, opts ...RouteOption) (Path, error) {
	var o routeOptions
	for _, fn := range opts {
		fn(&o)
	}
	for _, v := range []string{from, to} {
		if !g.Has(v) {
			return Path{}, fmt.Errorf("%q: %w", v, ErrUnknownVertex)
		}
	}
	logger := ctxlog.Logger(ctx)
	if !o.explicit && g.Positioned() {
		if err := g.Validate(); err != nil {
			logger.Debug("route: not using positions", "error", err)
		} else {
			o.heuristic = Euclidean
		}
	}
	if o.heuristic == nil {
		o.heuristic = zeroHeuristic
	}
	dist := map[string]float64{from: 0}
	prev := map[string]string{}
	frontier := heap.NewIndexedMin[string, float64]()
	if err := frontier.Insert(from, o.heuristic(g, from, to)); err != nil {
		return Path{}, err
	}
	expanded := 0
	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Path{}, err
		}
		u, _ := frontier.ExtractMin()
		if u == to {
			logger.Debug("route", "from", from, "to", to, "expanded", expanded, "distance", dist[to])
			return Path{Vertices: walkBack(prev, from, to), Distance: dist[to]}, nil
		}
		expanded++
		for _, e := range g.Neighbours(u) {
			relax(frontier, dist, prev, u, e.To, dist[u]+e.Weight, o.heuristic(g, e.To, to))
		}
	}
	logger.Debug("route", "from", from, "to", to, "expanded", expanded, "found", false)
	return Path{}, fmt.Errorf("%v -> %v: %w", from, to, ErrNoRoute)
}
