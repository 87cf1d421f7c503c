// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue/graph"
)

func route(ctx context.Context, values any, args []string) error {
	fv := values.(*routeFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	g, err := graph.Load(ctx, args[0])
	if err != nil {
		return err
	}
	return printRoute(ctx, os.Stdout, g, args[1], args[2], !fv.NoHeuristic)
}

func distances(ctx context.Context, values any, args []string) error {
	fv := values.(*distancesFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	g, err := graph.Load(ctx, args[0])
	if err != nil {
		return err
	}
	return printDistances(ctx, os.Stdout, g, args[1])
}

func printRoute(ctx context.Context, out io.Writer, g *graph.Graph, from, to string, heuristic bool) error {
	var opts []graph.RouteOption
	if !heuristic {
		opts = append(opts, graph.WithHeuristic(nil))
	}
	path, err := graph.Route(ctx, g, from, to, opts...)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("route", "from", from, "to", to, "hops", len(path.Vertices)-1)
	fmt.Fprintf(out, "%v (%v)\n", strings.Join(path.Vertices, " -> "), path.Distance)
	return nil
}

// printDistances prints the distance to every reachable vertex in
// the order in which the vertices were defined.
func printDistances(ctx context.Context, out io.Writer, g *graph.Graph, from string) error {
	tree, err := graph.ShortestPaths(ctx, g, from)
	if err != nil {
		return err
	}
	unreachable := 0
	for _, v := range g.Vertices() {
		d, ok := tree.Distances[v]
		if !ok {
			unreachable++
			continue
		}
		fmt.Fprintf(out, "%v\t%v\n", v, d)
	}
	ctxlog.Logger(ctx).Info("distances", "from", from, "reachable", len(tree.Distances), "unreachable", unreachable)
	return nil
}
