// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// VertexSpec describes a vertex and its optional position.
type VertexSpec struct {
	Name     string    `yaml:"name" cmd:"name of the vertex"`
	Position []float64 `yaml:"position" cmd:"optional x, y position of the vertex"`
}

// Spec is the YAML representation of a graph, for example:
//
//	undirected: true
//	vertices:
//	  - name: a
//	    position: [0, 0]
//	  - name: b
//	    position: [3, 4]
//	edges:
//	  - [a, b, 5]
//	  - from: b
//	    to: c
//	    weight: 2.5
//
// Vertices that appear only in edges are added implicitly.
type Spec struct {
	Undirected bool         `yaml:"undirected" cmd:"if set, every edge is added in both directions"`
	Vertices   []VertexSpec `yaml:"vertices" cmd:"vertices, only needed for vertices with positions or no edges"`
	Edges      []Edge       `yaml:"edges" cmd:"edges, either as [from, to, weight] or as a mapping"`
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts edges as either
// a mapping or a flow sequence of the form [from, to, weight].
func (e *Edge) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		type plain Edge
		return value.Decode((*plain)(e))
	}
	if len(value.Content) != 3 {
		return fmt.Errorf("line %v: edge must be of the form [from, to, weight]", value.Line)
	}
	errs := errors.M{}
	errs.Append(value.Content[0].Decode(&e.From))
	errs.Append(value.Content[1].Decode(&e.To))
	errs.Append(value.Content[2].Decode(&e.Weight))
	return errs.Err()
}

// Build creates a Graph from the spec. All problems with the spec are
// reported together.
func (s Spec) Build() (*Graph, error) {
	g := New()
	errs := errors.M{}
	for _, v := range s.Vertices {
		if g.Has(v.Name) {
			errs.Append(fmt.Errorf("%q: %w", v.Name, ErrDuplicateVertex))
			continue
		}
		g.AddVertex(v.Name)
		switch len(v.Position) {
		case 0:
		case 2:
			g.SetPosition(v.Name, Position{X: v.Position[0], Y: v.Position[1]})
		default:
			errs.Append(fmt.Errorf("%q: position must be of the form [x, y]", v.Name))
		}
	}
	for _, e := range s.Edges {
		if len(e.From) == 0 || len(e.To) == 0 {
			errs.Append(fmt.Errorf("edge %q -> %q: missing vertex name", e.From, e.To))
			continue
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			errs.Append(err)
			continue
		}
		if s.Undirected && e.From != e.To {
			errs.Append(g.AddEdge(e.To, e.From, e.Weight))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// Parse parses a YAML graph specification, unknown fields are reported
// as errors.
func Parse(spec []byte) (*Graph, error) {
	var s Spec
	if err := cmdyaml.ParseConfigStrict(spec, &s); err != nil {
		return nil, err
	}
	return s.Build()
}

// Load reads and parses a YAML graph specification from filename.
func Load(ctx context.Context, filename string) (*Graph, error) {
	var s Spec
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &s); err != nil {
		return nil, err
	}
	g, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return g, nil
}
