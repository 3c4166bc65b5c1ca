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
	"sync"

	"github.com/emirpasic/gods/v2/stacks/arraystack"
	tf "github.com/hdu-hh/tfgraph"
)

// The ambient scope is a stack of entered scopes above a default scope on
// tf.DefaultGraph(). It is meant to be used from one goroutine; the mutex
// only keeps concurrent misuse from corrupting the stack.
var ambient = struct {
	sync.Mutex
	stack *arraystack.Stack[*Scope]
	root  *Scope
}{stack: arraystack.New[*Scope]()}

// Current returns the innermost entered scope, or the default scope
// operating on tf.DefaultGraph() if no scope was entered.
func Current() *Scope {
	ambient.Lock()
	defer ambient.Unlock()
	if s, ok := ambient.stack.Peek(); ok {
		return s
	}
	return rootScopeLocked()
}

func rootScopeLocked() *Scope {
	if g := tf.DefaultGraph(); ambient.root == nil || ambient.root.graph != g {
		ambient.root = NewScopeWithGraph(g)
	}
	return ambient.root
}

// ResetDefaultScope replaces the default graph and the default scope
// with fresh ones and returns the new default scope. Entered scopes are
// not affected.
func ResetDefaultScope() *Scope {
	g := tf.ResetDefaultGraph()
	ambient.Lock()
	defer ambient.Unlock()
	ambient.root = NewScopeWithGraph(g)
	return ambient.root
}

// Enter makes s the current scope until the returned exit function is
// called. Scopes must be exited in reverse order of entering; calling exit
// more than once has no further effect.
//
//	exit := op.Enter(s.SubScope("input"))
//	defer exit()
func Enter(s *Scope) (exit func()) {
	ambient.Lock()
	ambient.stack.Push(s)
	depth := ambient.stack.Size()
	ambient.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			ambient.Lock()
			defer ambient.Unlock()
			if top, ok := ambient.stack.Peek(); !ok || top != s || ambient.stack.Size() != depth {
				panic("op: scopes exited out of order")
			}
			ambient.stack.Pop()
		})
	}
}

// within runs fn with s as current scope. The previous scope is restored
// when fn returns or panics.
func within(s *Scope, fn func(*Scope) error) error {
	exit := Enter(s)
	defer exit()
	return fn(s)
}

// WithNameScope runs fn with a sub scope of the current scope named name.
// Name prefixes of nested calls concatenate.
func WithNameScope(name string, fn func(s *Scope) error) error {
	return within(Current().SubScope(name), fn)
}

// WithGraph runs fn with a new root scope operating on g. Nothing of the
// current scope carries over into fn.
func WithGraph(g *tf.Graph, fn func(s *Scope) error) error {
	return within(NewScopeWithGraph(g), fn)
}

// WithColocation runs fn with a scope colocating new operations with ops,
// in addition to the colocation constraints of the current scope.
func WithColocation(ops []*tf.Operation, fn func(s *Scope) error) error {
	return within(Current().ColocateWith(ops...), fn)
}

// WithDeviceScope runs fn with a scope placing new operations on device.
func WithDeviceScope(device string, fn func(s *Scope) error) error {
	return within(Current().WithDevice(device), fn)
}
