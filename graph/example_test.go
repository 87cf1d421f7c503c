// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph_test

import (
	"context"
	"fmt"

	"cloudeng.io/pqueue/graph"
)

func ExampleRoute() {
	g, err := graph.Parse([]byte(`
undirected: true
edges:
  - [a, b, 4]
  - [a, c, 2]
  - [c, b, 1]
  - [b, d, 5]
`))
	if err != nil {
		panic(err)
	}
	path, err := graph.Route(context.Background(), g, "a", "d")
	if err != nil {
		panic(err)
	}
	fmt.Println(path.Vertices, path.Distance)
	// Output:
	// [a c b d] 8
}
