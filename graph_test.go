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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphNameUniqueness(t *testing.T) {
	g := NewGraph(WithNameCollision(NameCollisionSuffix))
	var names []string
	for i := 0; i < 3; i++ {
		names = append(names, _Placeholder(g, "x", Float).Op.Name())
	}
	// an explicitly requested suffix is skipped by later collisions
	names = append(names, _Placeholder(g, "y_1", Float).Op.Name())
	names = append(names, _Placeholder(g, "y", Float).Op.Name())
	names = append(names, _Placeholder(g, "y", Float).Op.Name())

	assert.Equal(t, []string{"x", "x_1", "x_2", "y_1", "y", "y_2"}, names)
	assert.Equal(t, 6, g.NumOperations())
	for _, name := range names {
		assert.NotNil(t, g.Operation(name), name)
	}
}

func TestGraphNameCollisionFail(t *testing.T) {
	g := NewGraph(WithNameCollision(NameCollisionFail))
	_Placeholder(g, "x", Float)
	_, err := g.AddOperation(OpSpec{Type: "Placeholder", Name: "x", Attrs: map[string]interface{}{"dtype": Float}})
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, g.NumOperations())
}

func TestParseNameCollision(t *testing.T) {
	for input, want := range map[string]NameCollision{
		"":       NameCollisionSuffix,
		"suffix": NameCollisionSuffix,
		" FAIL ": NameCollisionFail,
		"fail":   NameCollisionFail,
		"Suffix": NameCollisionSuffix,
	} {
		got, err := ParseNameCollision(input)
		if err != nil {
			t.Errorf("ParseNameCollision(%q): %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseNameCollision(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseNameCollision("rename"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestGraphNameCollisionFromEnv(t *testing.T) {
	t.Setenv("TFGRAPH_NAME_COLLISION", "fail")
	assert.Equal(t, NameCollisionFail, NewGraph().NameCollision())
	t.Setenv("TFGRAPH_NAME_COLLISION", "")
	assert.Equal(t, NameCollisionSuffix, NewGraph().NameCollision())
}

func TestGraphOperationsInInsertionOrder(t *testing.T) {
	g := NewGraph()
	var (
		x = _Placeholder(g, "x", Int32)
		y = _Placeholder(g, "y", Int32)
		z = _Add(g, "z", x, y)
		_ = _Neg(g, "neg", z)
	)
	var got []string
	for _, op := range g.Operations() {
		got = append(got, op.Name())
	}
	assert.Equal(t, []string{"x", "y", "z", "neg"}, got)
	assert.Nil(t, g.Operation("missing"))
}

func TestBuildFailureLeavesGraphUnchanged(t *testing.T) {
	g := NewGraph()
	x := _Placeholder(g, "x", Int32)
	f := _Placeholder(g, "f", Float)
	other := _Placeholder(NewGraph(), "other", Int32)

	tests := []struct {
		name string
		spec OpSpec
		want error
	}{
		{"missing attribute", OpSpec{Type: "Placeholder"}, ErrMissingAttribute},
		{"unregistered type", OpSpec{Type: "NoSuchOp"}, ErrSchemaViolation},
		{"unknown attribute", OpSpec{Type: "NoOp", Attrs: map[string]interface{}{"x": 1}}, ErrSchemaViolation},
		{"wrong attribute kind", OpSpec{Type: "Placeholder", Attrs: map[string]interface{}{"dtype": "float"}}, ErrSchemaViolation},
		{"unsupported attribute value", OpSpec{Type: "Placeholder", Attrs: map[string]interface{}{"dtype": struct{}{}}}, ErrSchemaViolation},
		{"too few inputs", OpSpec{Type: "Add", Input: []Input{x}}, ErrSchemaViolation},
		{"mismatched input types", OpSpec{Type: "Add", Input: []Input{x, f}}, ErrSchemaViolation},
		{"list for single input", OpSpec{Type: "Neg", Input: []Input{OutputList{x}}}, ErrSchemaViolation},
		{"single for list input", OpSpec{Type: "IdentityN", Input: []Input{x}}, ErrSchemaViolation},
		{"disallowed type", OpSpec{Type: "Neg", Input: []Input{_Placeholder(g, "s", String)}}, ErrSchemaViolation},
		{"cross graph input", OpSpec{Type: "Neg", Input: []Input{other}}, ErrInvalidArgument},
		{"output out of range", OpSpec{Type: "Neg", Input: []Input{x.Op.Output(1)}}, ErrInvalidArgument},
		{"nil input", OpSpec{Type: "Neg", Input: []Input{nil}}, ErrInvalidArgument},
		{"cross graph control input", OpSpec{Type: "NoOp", ControlDependencies: []*Operation{other.Op}}, ErrInvalidArgument},
		{"invalid name", OpSpec{Type: "NoOp", Name: "/bad"}, ErrInvalidArgument},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := g.NumOperations()
			op, err := g.AddOperation(test.spec)
			require.ErrorIs(t, err, test.want)
			assert.Nil(t, op)
			assert.Equal(t, before, g.NumOperations())
		})
	}
}

func TestOpBuilder(t *testing.T) {
	g := NewGraph()
	x := _Placeholder(g, "x", Float)
	y := _Placeholder(g, "y", Int64)
	ctrl, err := g.NewOperation("NoOp", "").Build()
	require.NoError(t, err)
	assert.Equal(t, "NoOp", ctrl.Name())

	b := g.NewOperation("IdentityN", "ids").
		AddInputList([]Output{x, y}).
		AddControlInput(ctrl).
		SetDevice("/device:CPU:0").
		SetAttr("_class", []string{"loc:@x"})
	op, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "ids", op.Name())
	assert.Equal(t, "IdentityN", op.Type())
	assert.Equal(t, "/device:CPU:0", op.Device())
	assert.Same(t, g, op.Graph())
	assert.Equal(t, []*Operation{ctrl}, op.ControlInputs())
	assert.Equal(t, []Output{x, y}, op.Inputs())
	assert.Equal(t, []OutputList{{x, y}}, op.InputLists())
	assert.Equal(t, 2, op.NumInputs())
	require.Equal(t, 2, op.NumOutputs())
	assert.Equal(t, Float, op.Output(0).DataType())
	assert.Equal(t, Int64, op.Output(1).DataType())
	assert.Equal(t, []string{"T", "_class"}, op.AttrNames())

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrInvalidArgument, "second build")
	assert.Equal(t, 4, g.NumOperations())
}

func TestOpBuilderEmptyInputList(t *testing.T) {
	g := NewGraph()
	op, err := g.NewOperation("IdentityN", "").
		AddInputList(nil).
		SetAttr("T", []DataType{}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 0, op.NumOutputs())
	assert.Equal(t, []OutputList{{}}, op.InputLists())
}

func TestOperationAttr(t *testing.T) {
	g := NewGraph()
	x := _Placeholder(g, "x", Int32)
	op, err := g.AddOperation(OpSpec{
		Type:  "AsString",
		Input: []Input{x},
		Attrs: map[string]interface{}{"precision": 3},
	})
	require.NoError(t, err)

	for name, want := range map[string]any{
		"T":          Int32,
		"precision":  int64(3),
		"scientific": false,
		"fill":       "",
	} {
		got, err := op.Attr(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err = op.Attr("width")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, String, op.Output(0).DataType())
}

func TestOperationAttrIsACopy(t *testing.T) {
	g := NewGraph()
	x := _Placeholder(g, "x", Int32)
	types := []DataType{Int32}
	op, err := g.AddOperation(OpSpec{
		Type:  "IdentityN",
		Input: []Input{OutputList{x}},
		Attrs: map[string]interface{}{"T": types},
	})
	require.NoError(t, err)
	types[0] = Float

	v, err := op.Attr("T")
	require.NoError(t, err)
	v.([]DataType)[0] = Double

	again, err := op.Attr("T")
	require.NoError(t, err)
	assert.Equal(t, []DataType{Int32}, again)
}

func TestOutputString(t *testing.T) {
	g := NewGraph()
	x := _Placeholder(g, "x", Float)
	if got, want := x.String(), "x:0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := (Output{}).DataType(); got != 0 {
		t.Errorf("zero Output has dtype %v", got)
	}
	if got := x.Op.Output(5).DataType(); got != 0 {
		t.Errorf("out of range Output has dtype %v", got)
	}
}

func TestReservedAttributesBypassSchema(t *testing.T) {
	g := NewGraph()
	x := _Placeholder(g, "x", Int32)
	op, err := g.NewOperation("Neg", "neg").
		AddInput(x).
		SetAttr("_T", 3).
		SetAttr("_class", []string{"loc:@x"}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, Int32, op.Output(0).DataType())
	v, err := op.Attr("_T")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	// declared attributes are kind checked
	_, err = g.NewOperation("Neg", "").AddInput(x).SetAttr("T", 3).Build()
	assert.ErrorIs(t, err, ErrSchemaViolation)
}
