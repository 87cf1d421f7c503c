// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package graph provides weighted, directed graphs and shortest path
// searches over them that use an indexed heap (cloudeng.io/pqueue/heap)
// as their frontier.
package graph

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
)

var (
	ErrUnknownVertex   = errors.New("unknown vertex")
	ErrInvalidWeight   = errors.New("edge weights must be non-negative numbers")
	ErrNoRoute         = errors.New("no route")
	ErrDuplicateVertex = errors.New("duplicate vertex")
	ErrShortEdge       = errors.New("edge weight is less than the distance between its vertices")
)

// Position is the location of a vertex on a plane, it is used to
// estimate the remaining distance during a Route search.
type Position struct {
	X, Y float64
}

// Edge is a directed, weighted edge.
type Edge struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

type vertex struct {
	name     string
	position *Position
	edges    []Edge
}

// Graph is a weighted, directed graph with named vertices. It is not
// safe for concurrent modification, but may be searched concurrently
// once built.
type Graph struct {
	vertices map[string]*vertex
	order    []string
}

// New returns a new, empty, Graph.
func New() *Graph {
	return &Graph{vertices: map[string]*vertex{}}
}

// Len returns the number of vertices in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// Has returns true if the graph contains the named vertex.
func (g *Graph) Has(name string) bool {
	_, ok := g.vertices[name]
	return ok
}

// Vertices returns the names of all vertices in the order in which they
// were added.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.order...)
}

// AddVertex adds the named vertex, it has no effect if the vertex
// already exists.
func (g *Graph) AddVertex(name string) {
	g.vertex(name)
}

func (g *Graph) vertex(name string) *vertex {
	if v, ok := g.vertices[name]; ok {
		return v
	}
	v := &vertex{name: name}
	g.vertices[name] = v
	g.order = append(g.order, name)
	return v
}

// SetPosition records the position of the named vertex, adding the
// vertex if needed.
func (g *Graph) SetPosition(name string, pos Position) {
	g.vertex(name).position = &pos
}

// Position returns the position of the named vertex, if it has one.
func (g *Graph) Position(name string) (Position, bool) {
	v, ok := g.vertices[name]
	if !ok || v.position == nil {
		return Position{}, false
	}
	return *v.position, true
}

// AddEdge adds a directed edge, adding either vertex if needed. Weights
// must be non-negative and not NaN or infinite.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%v -> %v: %v: %w", from, to, weight, ErrInvalidWeight)
	}
	g.vertex(to)
	v := g.vertex(from)
	v.edges = append(v.edges, Edge{From: from, To: to, Weight: weight})
	return nil
}

// Neighbours returns the edges leaving the named vertex.
func (g *Graph) Neighbours(name string) []Edge {
	v, ok := g.vertices[name]
	if !ok {
		return nil
	}
	return v.edges
}

// Positioned returns true if every vertex in the graph has a position.
func (g *Graph) Positioned() bool {
	for _, v := range g.vertices {
		if v.position == nil {
			return false
		}
	}
	return len(g.vertices) > 0
}

// Validate reports every edge between two positioned vertices whose
// weight is less than the straight line distance between them. Such
// edges make the Euclidean heuristic overestimate. Invalid weights and
// unknown vertices are rejected by AddEdge and never reach the graph.
func (g *Graph) Validate() error {
	errs := errors.M{}
	for _, name := range g.order {
		v := g.vertices[name]
		if v.position == nil {
			continue
		}
		for _, e := range v.edges {
			to := g.vertices[e.To].position
			if to == nil {
				continue
			}
			d := math.Hypot(v.position.X-to.X, v.position.Y-to.Y)
			if d-e.Weight > 1e-9*math.Max(1, d) {
				errs.Append(fmt.Errorf("%v -> %v: weight %v, distance %v: %w", e.From, e.To, e.Weight, d, ErrShortEdge))
			}
		}
	}
	return errs.Err()
}
