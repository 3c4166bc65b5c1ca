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

// Package op defines functions for adding TensorFlow operations to a Graph.
//
// Functions for adding an operation to a graph take a Scope object as the
// first argument. The Scope object encapsulates a graph and a set of
// properties (such as a name prefix) for all operations being added
// to the graph. Code that doesn't want to pass scopes around can use
// Current together with WithNameScope, WithGraph and friends.
//
// WARNING: The API in this package has not been finalized and can
// change without notice.
package op

import (
	tf "github.com/hdu-hh/tfgraph"
)

// optionalAttr is an intentionally un-exported type to hide
// details of how optional attributes to operations are implemented.
type optionalAttr map[string]interface{}

func init() {
	tf.MustRegisterOpDef(tf.OpDef{
		Name:       "Placeholder",
		OutputArgs: []tf.ArgDef{{Name: "output", TypeAttr: "dtype"}},
		Attrs:      []tf.AttrDef{{Name: "dtype", Type: tf.AttrType}},
	})
	tf.MustRegisterOpDef(tf.OpDef{
		Name:       "Identity",
		InputArgs:  []tf.ArgDef{{Name: "input", TypeAttr: "T"}},
		OutputArgs: []tf.ArgDef{{Name: "output", TypeAttr: "T"}},
		Attrs:      []tf.AttrDef{{Name: "T", Type: tf.AttrType}},
	})
	tf.MustRegisterOpDef(tf.OpDef{Name: "NoOp"})
}

// Placeholder adds an operation whose value is fed at execution time.
func Placeholder(scope *Scope, dtype tf.DataType) (output tf.Output, err error) {
	op, err := scope.AddOperation(tf.OpSpec{
		Type: "Placeholder",
		Attrs: map[string]interface{}{
			"dtype": dtype,
		},
	})
	if err != nil {
		return
	}
	return op.Output(0), nil
}

// Identity returns a tensor with the same content as the input.
func Identity(scope *Scope, input tf.Output) (output tf.Output, err error) {
	op, err := scope.AddOperation(tf.OpSpec{
		Type:  "Identity",
		Input: []tf.Input{input},
	})
	if err != nil {
		return
	}
	return op.Output(0), nil
}

// NoOp does nothing. Only useful as a placeholder for control edges.
func NoOp(scope *Scope) (*tf.Operation, error) {
	return scope.AddOperation(tf.OpSpec{Type: "NoOp"})
}
