/*
Copyright 2016 The TensorFlow Authors. All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tensorflow

import (
	"fmt"
	"strings"

	"github.com/hdu-hh/tfgraph/internal/envconfig"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NameCollision selects what a Graph does when an operation is added under
// a name that is already taken.
type NameCollision int

const (
	// NameCollisionSuffix appends "_1", "_2", ... to the requested name,
	// using the first free suffix. Given the same sequence of requests the
	// resulting names are always the same.
	NameCollisionSuffix NameCollision = iota
	// NameCollisionFail rejects the operation with ErrDuplicateName.
	NameCollisionFail
)

func (nc NameCollision) String() string {
	if nc == NameCollisionFail {
		return "fail"
	}
	return "suffix"
}

// ParseNameCollision returns the policy for "suffix" or "fail".
func ParseNameCollision(s string) (NameCollision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "suffix":
		return NameCollisionSuffix, nil
	case "fail":
		return NameCollisionFail, nil
	}
	return 0, fmt.Errorf("%w: unknown name collision policy %q", ErrInvalidArgument, s)
}

// Graph represents a computation graph.
//
// A Graph owns its operations. Operations are only added through an
// OpBuilder (or Graph.AddOperation) and never removed. A Graph is not safe
// for concurrent modification.
type Graph struct {
	ops        *orderedmap.OrderedMap[string, *Operation]
	nameCounts map[string]int
	collision  NameCollision
}

// GraphOption configures a Graph created by NewGraph.
type GraphOption func(*Graph)

// WithNameCollision sets the policy for colliding operation names.
func WithNameCollision(nc NameCollision) GraphOption {
	return func(g *Graph) { g.collision = nc }
}

// NewGraph returns a new Graph. The name collision policy defaults to the
// TFGRAPH_NAME_COLLISION setting.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		ops:        orderedmap.New[string, *Operation](),
		nameCounts: map[string]int{},
	}
	if nc, err := ParseNameCollision(envconfig.NameCollision()); err == nil {
		g.collision = nc
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NameCollision returns the name collision policy of the graph.
func (g *Graph) NameCollision() NameCollision { return g.collision }

// Operation returns the Operation named name in the Graph, or nil if no such
// operation is present.
func (g *Graph) Operation(name string) *Operation {
	op, _ := g.ops.Get(name)
	return op
}

// Operations returns a list of all operations in the graph in the order
// they were added.
func (g *Graph) Operations() []*Operation {
	ops := make([]*Operation, 0, g.ops.Len())
	for pair := g.ops.Oldest(); pair != nil; pair = pair.Next() {
		ops = append(ops, pair.Value)
	}
	return ops
}

// NumOperations returns the number of operations in the graph.
func (g *Graph) NumOperations() int { return g.ops.Len() }

// resolveName returns the name under which an operation requested as name
// gets added. It must only be called right before insert.
func (g *Graph) resolveName(name string) (string, error) {
	if _, taken := g.ops.Get(name); !taken {
		return name, nil
	}
	if g.collision == NameCollisionFail {
		return "", fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	for {
		g.nameCounts[name]++
		candidate := fmt.Sprintf("%s_%d", name, g.nameCounts[name])
		if _, taken := g.ops.Get(candidate); !taken {
			return candidate, nil
		}
	}
}

func (g *Graph) insert(op *Operation) {
	g.ops.Set(op.name, op)
}
