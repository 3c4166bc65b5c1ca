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
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"
)

// OpSpec is the specification of an Operation to be added to a Graph
// (using Graph.AddOperation).
type OpSpec struct {
	// Type of the operation (e.g., "Add", "MatMul").
	Type string

	// Name by which the added operation will be referred to in the Graph.
	// If omitted, defaults to Type.
	Name string

	// Inputs to this operation, which in turn must be outputs
	// of other operations already added to the Graph.
	//
	// An operation may have multiple inputs with individual inputs being
	// either a single tensor produced by another operation or a list of
	// tensors produced by multiple operations. For example, the "Concat"
	// operation takes two inputs: (1) the dimension along which to
	// concatenate and (2) a list of tensors to concatenate. Thus, for
	// Concat, len(Input) must be 2, with the first element being an Output
	// and the second being an OutputList.
	Input []Input

	// Map from attribute name to its value that will be attached to this
	// operation.
	Attrs map[string]interface{}

	// Operations that must be executed before executing the operation
	// being added.
	ControlDependencies []*Operation

	// The device on which the operation should be executed.
	// If omitted, an appropriate device will automatically be selected.
	//
	// For example, if set of "/device:GPU:0", then the operation will
	// execute on GPU #0.
	Device string
}

// AddOperation adds an operation to g in a single builder session.
func (g *Graph) AddOperation(args OpSpec) (*Operation, error) {
	b := g.NewOperation(args.Type, args.Name)
	for _, in := range args.Input {
		switch in := in.(type) {
		case Output:
			b.AddInput(in)
		case OutputList:
			b.AddInputList(in)
		case nil:
			b.setErr(&InvalidArgumentError{Op: args.Type, Arg: "input", Msg: "nil input"})
		}
	}
	for name, value := range args.Attrs {
		b.SetAttr(name, value)
	}
	for _, ctrl := range args.ControlDependencies {
		b.AddControlInput(ctrl)
	}
	b.SetDevice(args.Device)
	return b.Build()
}

// OpBuilder collects the description of one operation and commits it to
// its graph with Build. Nothing is visible in the graph before Build
// succeeds, and a failed Build leaves the graph unchanged.
//
// The setters return the builder so calls can be chained. Errors found by
// the setters are reported by Build.
type OpBuilder struct {
	graph         *Graph
	opType        string
	name          string
	device        string
	inputs        []Input
	controlInputs []*Operation
	attrs         map[string]any
	err           error
	built         bool
}

// NewOperation starts building an operation of type opType named name.
// An empty name defaults to opType. If the name is taken the graph picks
// a unique one according to its NameCollision policy.
func (g *Graph) NewOperation(opType, name string) *OpBuilder {
	if name == "" {
		name = opType
	}
	return &OpBuilder{
		graph:  g,
		opType: opType,
		name:   name,
		attrs:  map[string]any{},
	}
}

func (b *OpBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *OpBuilder) checkOutput(arg string, out Output) error {
	switch {
	case out.Op == nil:
		return &InvalidArgumentError{Op: b.opType, Arg: arg, Msg: "output of a nil operation"}
	case out.Op.graph != b.graph:
		return &InvalidArgumentError{Op: b.opType, Arg: arg,
			Msg: fmt.Sprintf("%v belongs to a different graph", out)}
	case out.Index < 0 || out.Index >= out.Op.NumOutputs():
		return &InvalidArgumentError{Op: b.opType, Arg: arg,
			Msg: fmt.Sprintf("%q has no output %d", out.Op.name, out.Index)}
	}
	return nil
}

// AddInput appends a single tensor input.
func (b *OpBuilder) AddInput(out Output) *OpBuilder {
	if err := b.checkOutput(fmt.Sprintf("input %d", len(b.inputs)), out); err != nil {
		b.setErr(err)
		return b
	}
	b.inputs = append(b.inputs, out)
	return b
}

// AddInputList appends a list input. An empty list is valid.
func (b *OpBuilder) AddInputList(outs []Output) *OpBuilder {
	for i, out := range outs {
		if err := b.checkOutput(fmt.Sprintf("input %d[%d]", len(b.inputs), i), out); err != nil {
			b.setErr(err)
			return b
		}
	}
	b.inputs = append(b.inputs, OutputList(slices.Clone(nonNil(outs))))
	return b
}

// SetAttr sets the attribute name. Setting the same name again overwrites
// the previous value.
func (b *OpBuilder) SetAttr(name string, value any) *OpBuilder {
	b.attrs[name] = value
	return b
}

// AddControlInput makes the operation wait for op.
func (b *OpBuilder) AddControlInput(op *Operation) *OpBuilder {
	switch {
	case op == nil:
		b.setErr(&InvalidArgumentError{Op: b.opType, Arg: "control input", Msg: "nil operation"})
	case op.graph != b.graph:
		b.setErr(&InvalidArgumentError{Op: b.opType, Arg: "control input",
			Msg: fmt.Sprintf("%q belongs to a different graph", op.name)})
	default:
		b.controlInputs = append(b.controlInputs, op)
	}
	return b
}

// SetDevice requests a device for the operation.
func (b *OpBuilder) SetDevice(device string) *OpBuilder {
	b.device = device
	return b
}

var validNodeName = regexp.MustCompile(`^[A-Za-z0-9.][A-Za-z0-9_.\-/>]*$`)

// Build validates the collected description against the registered op
// schema and adds the operation to the graph. A builder can be built once.
func (b *OpBuilder) Build() (*Operation, error) {
	if b.built {
		return nil, &InvalidArgumentError{Op: b.opType, Arg: "builder", Msg: "already built"}
	}
	if b.err != nil {
		return nil, b.err
	}
	if !validNodeName.MatchString(b.name) {
		return nil, &InvalidArgumentError{Op: b.opType, Arg: "name",
			Msg: fmt.Sprintf("%q is not a valid node name", b.name)}
	}
	def, ok := LookupOpDef(b.opType)
	if !ok {
		return nil, schemaErrorf(b.opType, "op type is not registered")
	}
	attrs, err := b.checkAttrs(def)
	if err != nil {
		return nil, err
	}
	if err := b.checkInputs(def, attrs); err != nil {
		return nil, err
	}
	if err := completeAttrs(def, attrs); err != nil {
		return nil, err
	}
	outTypes := outputTypes(def, attrs)

	name, err := b.graph.resolveName(b.name)
	if err != nil {
		return nil, err
	}
	op := &Operation{
		graph:         b.graph,
		name:          name,
		opType:        b.opType,
		device:        b.device,
		inputs:        b.inputs,
		controlInputs: b.controlInputs,
		attrs:         attrs,
		outTypes:      outTypes,
	}
	b.graph.insert(op)
	b.built = true
	slog.Debug("added operation", "name", name, "type", b.opType,
		"inputs", len(b.inputs), "outputs", len(outTypes))
	return op, nil
}

// checkAttrs normalizes the attributes set on the builder. Attribute names
// starting with "_" are reserved for the engine and are not in op schemas.
func (b *OpBuilder) checkAttrs(def *OpDef) (map[string]any, error) {
	names := make([]string, 0, len(b.attrs))
	for name := range b.attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make(map[string]any, len(def.Attrs)+len(names))
	for _, name := range names {
		v, kind, err := normalizeAttr(b.attrs[name])
		if err != nil {
			return nil, schemaErrorf(def.Name, "attribute %q: %v", name, err)
		}
		if ad, ok := def.Attr(name); ok {
			if kind != ad.Type {
				return nil, schemaErrorf(def.Name, "attribute %q has kind %s, want %s", name, kind, ad.Type)
			}
		} else if !strings.HasPrefix(name, "_") {
			return nil, schemaErrorf(def.Name, "unknown attribute %q", name)
		}
		attrs[name] = v
	}
	return attrs, nil
}

// checkInputs matches the inputs against the schema and infers type
// attributes which were not set explicitly.
func (b *OpBuilder) checkInputs(def *OpDef, attrs map[string]any) error {
	if got, want := len(b.inputs), len(def.InputArgs); got != want {
		return schemaErrorf(def.Name, "got %d inputs, want %d", got, want)
	}
	for i, arg := range def.InputArgs {
		switch in := b.inputs[i].(type) {
		case Output:
			if arg.IsList() {
				return schemaErrorf(def.Name, "input %q takes a list of tensors", arg.Name)
			}
			dtype := in.DataType().DeRef()
			if arg.Type != 0 {
				if dtype != arg.Type {
					return schemaErrorf(def.Name, "input %q has dtype %v, want %v", arg.Name, dtype, arg.Type)
				}
				continue
			}
			if v, ok := attrs[arg.TypeAttr]; ok {
				if want := v.(DataType); dtype != want {
					return schemaErrorf(def.Name, "input %q has dtype %v, but %s=%v", arg.Name, dtype, arg.TypeAttr, want)
				}
			} else {
				attrs[arg.TypeAttr] = dtype
			}
		case OutputList:
			if !arg.IsList() {
				return schemaErrorf(def.Name, "input %q takes a single tensor", arg.Name)
			}
			dtypes := make([]DataType, len(in))
			for j, out := range in {
				dtypes[j] = out.DataType().DeRef()
			}
			v, ok := attrs[arg.TypeListAttr]
			if !ok {
				attrs[arg.TypeListAttr] = dtypes
				continue
			}
			// an empty list leaves the element types to the attribute
			if want := v.([]DataType); len(in) > 0 && !slices.Equal(dtypes, want) {
				return schemaErrorf(def.Name, "input %q has dtypes %v, but %s=%v", arg.Name, dtypes, arg.TypeListAttr, want)
			}
		}
	}
	return nil
}

// completeAttrs applies defaults and checks required attributes and
// allowed types.
func completeAttrs(def *OpDef, attrs map[string]any) error {
	for _, ad := range def.Attrs {
		v, ok := attrs[ad.Name]
		if !ok {
			if ad.Default == nil {
				return fmt.Errorf("%w: %s: attribute %q", ErrMissingAttribute, def.Name, ad.Name)
			}
			v = cloneAttr(ad.Default)
			attrs[ad.Name] = v
		}
		if len(ad.AllowedTypes) == 0 {
			continue
		}
		var dtypes []DataType
		switch v := v.(type) {
		case DataType:
			dtypes = []DataType{v}
		case []DataType:
			dtypes = v
		}
		for _, dt := range dtypes {
			if !slices.Contains(ad.AllowedTypes, dt) {
				return schemaErrorf(def.Name, "attribute %q: dtype %v is not one of %v", ad.Name, dt, ad.AllowedTypes)
			}
		}
	}
	return nil
}

// outputTypes returns one data type per output slot in schema order.
// List slots contribute one output per element.
func outputTypes(def *OpDef, attrs map[string]any) []DataType {
	var outTypes []DataType
	for _, arg := range def.OutputArgs {
		switch {
		case arg.Type != 0:
			outTypes = append(outTypes, arg.Type)
		case arg.TypeAttr != "":
			outTypes = append(outTypes, attrs[arg.TypeAttr].(DataType))
		case arg.TypeListAttr != "":
			outTypes = append(outTypes, attrs[arg.TypeListAttr].([]DataType)...)
		}
	}
	return outTypes
}
