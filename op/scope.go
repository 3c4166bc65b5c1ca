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

package op

import (
	"fmt"
	"slices"

	tf "github.com/hdu-hh/tfgraph"
)

// Scope encapsulates common operation properties when building a Graph.
//
// A Scope object (and its derivatives, e.g., obtained from Scope.SubScope)
// act as a builder for graphs. They allow common properties (such as
// a name prefix) to be specified for multiple operations being added
// to the graph.
//
// A Scope object and all its derivatives (e.g., obtained from Scope.SubScope)
// are not safe for concurrent use by multiple goroutines.
//
// Deriving a Scope never changes the properties of the Scope it was derived
// from; only the error state is shared.
type Scope struct {
	graph               *tf.Graph
	namemap             map[string]int
	namespace           string
	opName              string
	controlDependencies []*tf.Operation
	device              string
	colocation          []string
	err                 *scopeErr
}

// scopeErr is used to share errors between all derivatives of a root scope.
type scopeErr struct {
	err error
}

// NewScope creates a Scope initialized with an empty Graph.
func NewScope() *Scope {
	return NewScopeWithGraph(tf.NewGraph())
}

// NewScopeWithGraph creates a Scope initialized with the Graph thats passed in
func NewScopeWithGraph(g *tf.Graph) *Scope {
	return &Scope{graph: g, namemap: make(map[string]int), err: new(scopeErr)}
}

// Finalize returns the Graph on which this scope operates on and renders s
// unusable. If there was an error during graph construction, that error is
// returned instead.
func (s *Scope) Finalize() (*tf.Graph, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	s.err.err = fmt.Errorf("Scope has been finalized and is no longer usable")
	return s.graph, nil
}

// Graph returns the graph operations are added to.
func (s *Scope) Graph() *tf.Graph { return s.graph }

// Namespace returns the name prefix of the scope, "" for a root scope.
func (s *Scope) Namespace() string { return s.namespace }

// Device returns the device requested for operations of this scope.
func (s *Scope) Device() string { return s.device }

// Colocation returns the names of the operations that new operations are
// colocated with, sorted.
func (s *Scope) Colocation() []string { return slices.Clone(s.colocation) }

// AddOperation adds the operation to the Graph managed by s.
//
// If there is a name prefix associated with s (such as if s was created
// by a call to SubScope), then this prefix will be applied to the name
// of the operation being added. See also Graph.AddOperation.
func (s *Scope) AddOperation(args tf.OpSpec) (*tf.Operation, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	switch {
	case s.opName != "":
		args.Name = s.opName
	case args.Name == "":
		args.Name = args.Type
	}
	if s.namespace != "" {
		args.Name = s.namespace + "/" + args.Name
	}
	args.ControlDependencies = append(slices.Clone(args.ControlDependencies), s.controlDependencies...)
	if s.device != "" && args.Device == "" {
		args.Device = s.device
	}
	if len(s.colocation) > 0 {
		attrs := make(map[string]interface{}, len(args.Attrs)+1)
		for k, v := range args.Attrs {
			attrs[k] = v
		}
		attrs["_class"] = colocationClasses(s.colocation)
		args.Attrs = attrs
	}
	op, err := s.graph.AddOperation(args)
	if err != nil {
		s.UpdateErr(args.Type, err)
		return nil, err
	}
	return op, nil
}

// SubScope returns a new Scope which will cause all operations added to the
// graph to be namespaced with 'namespace'. If namespace collides with an
// existing namespace within the scope, then a suffix will be added.
func (s *Scope) SubScope(namespace string) *Scope {
	namespace = s.uniqueName(namespace)
	if s.namespace != "" {
		namespace = s.namespace + "/" + namespace
	}
	sub := s.derive()
	sub.namemap = make(map[string]int)
	sub.namespace = namespace
	sub.opName = ""
	return sub
}

// WithControlDependencies returns a new Scope which will cause all operations
// added to the graph to execute only after all the provided operations have
// executed first (in addition to any other control dependencies in s).
func (s *Scope) WithControlDependencies(ops ...*tf.Operation) *Scope {
	sub := s.derive()
	sub.controlDependencies = append(slices.Clone(s.controlDependencies), ops...)
	return sub
}

// WithDevice returns a new Scope which will cause all operations added to the
// graph to execute on devices that match the provided device specification.
//
// For example, WithDevice("/device:GPU:0") will cause operations added to
// the graph to execute on GPU #0.
//
// An empty string removes any device restrictions.
func (s *Scope) WithDevice(device string) *Scope {
	sub := s.derive()
	sub.device = device
	return sub
}

// ColocateWith returns a new Scope which places all operations added to the
// graph together with ops, in addition to the colocation constraints of s.
// The constraints are recorded in the "_class" attribute as "loc:@name".
func (s *Scope) ColocateWith(ops ...*tf.Operation) *Scope {
	sub := s.derive()
	sub.colocation = slices.Clone(s.colocation)
	for _, op := range ops {
		if op == nil {
			continue
		}
		sub.colocation = append(sub.colocation, op.Name())
	}
	slices.Sort(sub.colocation)
	sub.colocation = slices.Compact(sub.colocation)
	return sub
}

// WithOpName returns a new Scope whose next operations use name instead of
// their op type as base name. The namespace of s still applies, and the
// graph still makes colliding names unique.
func (s *Scope) WithOpName(name string) *Scope {
	sub := s.derive()
	sub.opName = name
	return sub
}

// Err returns the error, if any, encountered during the construction
// of the Graph managed by s.
//
// Once Err returns a non-nil error, all future calls will do the same,
// indicating that the scope should be discarded as the graph could not
// be constructed.
func (s *Scope) Err() error {
	return s.err.err
}

// UpdateErr is used to notify Scope of any graph construction errors
// while creating the operation op.
func (s *Scope) UpdateErr(op string, err error) {
	if s.err.err == nil {
		s.err.err = fmt.Errorf("failed to add operation %q: %w", op, err)
	}
}

func (s *Scope) derive() *Scope {
	sub := *s
	return &sub
}

func (s *Scope) uniqueName(name string) string {
	count := s.namemap[name]
	s.namemap[name]++
	if count == 0 {
		return name
	}
	return fmt.Sprint(name, "_", count)
}

func colocationClasses(names []string) []string {
	classes := make([]string, len(names))
	for i, name := range names {
		classes[i] = "loc:@" + name
	}
	return classes
}
