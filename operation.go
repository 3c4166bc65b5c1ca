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
	"slices"
	"sort"
)

// Operation that has been added to the graph.
//
// An Operation never changes after it was built.
type Operation struct {
	graph         *Graph
	name          string
	opType        string
	device        string
	inputs        []Input // Output or OutputList, in schema order
	controlInputs []*Operation
	attrs         map[string]any
	outTypes      []DataType
}

// Name returns the name of the operation.
func (op *Operation) Name() string { return op.name }

// Type returns the name of the operator used by this operation.
func (op *Operation) Type() string { return op.opType }

// Device returns the requested device of the operation, if any.
func (op *Operation) Device() string { return op.device }

// Graph returns the graph owning the operation.
func (op *Operation) Graph() *Graph { return op.graph }

// NumOutputs returns the number of outputs of op.
func (op *Operation) NumOutputs() int { return len(op.outTypes) }

// Output returns the i-th output of op.
func (op *Operation) Output(i int) Output {
	return Output{op, i}
}

// Outputs returns all outputs of op in schema order.
func (op *Operation) Outputs() []Output {
	outs := make([]Output, len(op.outTypes))
	for i := range outs {
		outs[i] = Output{op, i}
	}
	return outs
}

// NumInputs returns the number of tensor inputs of op, counting every
// element of an input list.
func (op *Operation) NumInputs() int { return len(op.Inputs()) }

// Inputs returns the tensor inputs of op with input lists flattened.
func (op *Operation) Inputs() []Output {
	var flat []Output
	for _, in := range op.inputs {
		switch in := in.(type) {
		case Output:
			flat = append(flat, in)
		case OutputList:
			flat = append(flat, in...)
		}
	}
	return flat
}

// InputLists returns the inputs grouped per schema slot.
// Single inputs are returned as lists with one element.
func (op *Operation) InputLists() []OutputList {
	groups := make([]OutputList, len(op.inputs))
	for i, in := range op.inputs {
		switch in := in.(type) {
		case Output:
			groups[i] = OutputList{in}
		case OutputList:
			groups[i] = slices.Clone(in)
		}
	}
	return groups
}

// ControlInputs returns the operations op has to wait for.
func (op *Operation) ControlInputs() []*Operation {
	return slices.Clone(op.controlInputs)
}

// Attr returns the value of an attribute of op. Numeric values use the
// canonical types int64 and float32; lists are returned as copies.
func (op *Operation) Attr(name string) (any, error) {
	v, ok := op.attrs[name]
	if !ok {
		return nil, fmt.Errorf("%w: operation %q has no attribute %q", ErrInvalidArgument, op.name, name)
	}
	return cloneAttr(v), nil
}

// AttrNames returns the names of all attributes of op in sorted order.
func (op *Operation) AttrNames() []string {
	names := make([]string, 0, len(op.attrs))
	for k := range op.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Output represents one of the outputs of an operation in the graph. Has a
// DataType. May be passed as an input argument to a function for adding
// operations to a graph.
type Output struct {
	// Op is the Operation that produces this Output.
	Op *Operation

	// Index specifies the index of the output within the Operation.
	Index int
}

// DataType returns the type of elements in the tensor produced by p.
func (p Output) DataType() DataType {
	if p.Op == nil || p.Index < 0 || p.Index >= len(p.Op.outTypes) {
		return 0
	}
	return p.Op.outTypes[p.Index]
}

// String returns the output as "name:index" as used in GraphDef inputs.
func (p Output) String() string {
	if p.Op == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s:%d", p.Op.name, p.Index)
}

func (p Output) canBeAnInput() {}

// Input is the interface for specifying inputs to an operation being added to
// a Graph.
//
// Operations can have multiple inputs, each of which could be either a tensor
// produced by another operation (an Output object), or a list of tensors
// produced by other operations (an OutputList). Thus, this interface is
// implemented by both Output and OutputList.
//
// See OpSpec.Input for more information.
type Input interface {
	// Unexported to preclude implementations outside this package.
	canBeAnInput()
}

// OutputList represents a list of Outputs that can be provided as input to
// another operation.
type OutputList []Output

func (l OutputList) canBeAnInput() {}
