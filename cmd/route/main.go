// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command route finds shortest routes through graphs described in YAML
// files, see cloudeng.io/pqueue/graph.Spec for the file format.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

type routeFlags struct {
	cmdutil.LoggingFlags
	NoHeuristic bool `subcmd:"no-heuristic,false,'ignore vertex positions and search without a distance estimate'"`
}

type distancesFlags struct {
	cmdutil.LoggingFlags
}

func init() {
	routeCmd := subcmd.NewCommand("route",
		subcmd.MustRegisteredFlagSet(&routeFlags{}),
		route, subcmd.ExactlyNumArguments(3))
	routeCmd.Document("print the shortest route between two vertices", "<graph.yaml> <from> <to>")

	distancesCmd := subcmd.NewCommand("distances",
		subcmd.MustRegisteredFlagSet(&distancesFlags{}),
		distances, subcmd.ExactlyNumArguments(2))
	distancesCmd.Document("print the shortest distance to every vertex reachable from a vertex", "<graph.yaml> <from>")

	cmdSet = subcmd.NewCommandSet(routeCmd, distancesCmd)
	cmdSet.Document(`find shortest routes through weighted, directed graphs.

Graphs are read from YAML files of the form:

  undirected: true
  vertices:
    - name: a
      position: [0, 0]
  edges:
    - [a, b, 5]
    - from: b
      to: c
      weight: 2.5

Routes between two vertices use A* search with a straight line distance
estimate when every vertex has a position and no edge is shorter than
the distance between its vertices, and Dijkstra's algorithm otherwise.
`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}
