// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"cloudeng.io/pqueue/graph"
)

func TestGraph(t *testing.T) {
	g := graph.New()
	g.AddVertex("a")
	g.AddVertex("a")
	if err := g.AddEdge("a", "b", 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("c", "a", 0); err != nil {
		t.Fatal(err)
	}
	if got, want := g.Vertices(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Neighbours("a"), []graph.Edge{{From: "a", To: "b", Weight: 1}}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := g.Neighbours("b"); len(got) != 0 {
		t.Errorf("unexpected edges: %v", got)
	}
	if got := g.Neighbours("missing"); got != nil {
		t.Errorf("unexpected edges: %v", got)
	}
	if _, ok := g.Position("a"); ok {
		t.Errorf("unexpected position")
	}
	g.SetPosition("d", graph.Position{X: 1, Y: 2})
	if p, ok := g.Position("d"); !ok || p != (graph.Position{X: 1, Y: 2}) {
		t.Errorf("got %v, %v", p, ok)
	}
	if !g.Has("d") || g.Has("e") {
		t.Errorf("wrong vertex membership")
	}

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		if err := g.AddEdge("a", "e", w); !errors.Is(err, graph.ErrInvalidWeight) {
			t.Errorf("%v: missing or wrong error: %v", w, err)
		}
	}
	if g.Has("e") {
		t.Errorf("invalid edge added a vertex")
	}
}

func TestValidate(t *testing.T) {
	g := graph.New()
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
	if g.Positioned() {
		t.Errorf("empty graph should not be positioned")
	}
	g.SetPosition("a", graph.Position{X: 0, Y: 0})
	g.SetPosition("b", graph.Position{X: 3, Y: 4})
	g.SetPosition("c", graph.Position{X: 10, Y: 0})
	for _, e := range []graph.Edge{
		{From: "a", To: "b", Weight: 5},
		{From: "b", To: "a", Weight: 6},
		{From: "a", To: "x", Weight: 0},
	} {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if g.Positioned() {
		t.Errorf("x has no position")
	}
	g.SetPosition("x", graph.Position{X: 0, Y: 0})
	if !g.Positioned() {
		t.Errorf("all vertices have positions")
	}

	if err := g.AddEdge("b", "c", 4); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("c", "a", 1); err != nil {
		t.Fatal(err)
	}
	err := g.Validate()
	if !errors.Is(err, graph.ErrShortEdge) {
		t.Fatalf("missing or wrong error: %v", err)
	}
	for _, msg := range []string{"b -> c: weight 4", "c -> a: weight 1, distance 10"} {
		if got := err.Error(); !strings.Contains(got, msg) {
			t.Errorf("%v does not contain %v", got, msg)
		}
	}
}
