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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterOpDef(t *testing.T) {
	def := OpDef{
		Name:       "TestRegisterOpDef",
		InputArgs:  []ArgDef{{Name: "x", TypeAttr: "T"}},
		OutputArgs: []ArgDef{{Name: "y", Type: Bool}},
		Attrs: []AttrDef{
			{Name: "T", Type: AttrType},
			{Name: "dims", Type: AttrIntList, Default: []int{1, 2}},
		},
	}
	require.NoError(t, RegisterOpDef(def))
	assert.ErrorIs(t, RegisterOpDef(def), ErrDuplicateOpDef)

	got, ok := LookupOpDef("TestRegisterOpDef")
	require.True(t, ok)
	attr, ok := got.Attr("dims")
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, attr.Default, "defaults are normalized")
	// the registry keeps its own copy
	assert.Equal(t, []int{1, 2}, def.Attrs[1].Default)

	var names []string
	for _, d := range OpDefs() {
		names = append(names, d.Name)
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "TestRegisterOpDef")
}

func TestRegisterOpDefInvalid(t *testing.T) {
	for name, def := range map[string]OpDef{
		"no name": {},
		"duplicate attribute": {Name: "TestDupAttr", Attrs: []AttrDef{
			{Name: "a", Type: AttrInt}, {Name: "a", Type: AttrInt}}},
		"bad default": {Name: "TestBadDefault", Attrs: []AttrDef{
			{Name: "a", Type: AttrInt, Default: "one"}}},
		"unknown type attribute": {Name: "TestUnknownTypeAttr",
			OutputArgs: []ArgDef{{Name: "y", TypeAttr: "T"}}},
		"list attribute of wrong kind": {Name: "TestWrongListAttr",
			OutputArgs: []ArgDef{{Name: "y", TypeListAttr: "T"}},
			Attrs:      []AttrDef{{Name: "T", Type: AttrType}}},
		"two type sources": {Name: "TestTwoTypeSources",
			OutputArgs: []ArgDef{{Name: "y", Type: Float, TypeAttr: "T"}},
			Attrs:      []AttrDef{{Name: "T", Type: AttrType}}},
		"no type source": {Name: "TestNoTypeSource",
			InputArgs: []ArgDef{{Name: "x"}}},
		"reserved attribute name": {Name: "TestReservedAttr",
			OutputArgs: []ArgDef{{Name: "y", TypeAttr: "_T"}},
			Attrs:      []AttrDef{{Name: "_T", Type: AttrType}}},
		"empty attribute name": {Name: "TestEmptyAttr",
			Attrs: []AttrDef{{Name: "", Type: AttrInt}}},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, RegisterOpDef(def), ErrInvalidArgument)
			_, ok := LookupOpDef(def.Name)
			assert.False(t, ok)
		})
	}
}

func TestGradientRegistry(t *testing.T) {
	grad := func(op *Operation, grads []Output) ([]Output, error) { return grads, nil }

	require.NoError(t, NotDifferentiable("TestNotDiff"))
	require.NoError(t, NotDifferentiable("TestNotDiff"), "marking twice is a no-op")
	fn, registered := LookupGradient("TestNotDiff")
	assert.True(t, registered)
	assert.Nil(t, fn)
	assert.False(t, IsDifferentiable("TestNotDiff"))
	assert.ErrorIs(t, RegisterGradient("TestNotDiff", grad), ErrDuplicateGradient)

	require.NoError(t, RegisterGradient("TestDiff", grad))
	assert.True(t, IsDifferentiable("TestDiff"))
	assert.ErrorIs(t, RegisterGradient("TestDiff", grad), ErrDuplicateGradient)
	assert.ErrorIs(t, NotDifferentiable("TestDiff"), ErrDuplicateGradient)

	assert.ErrorIs(t, RegisterGradient("TestNilGrad", nil), ErrInvalidArgument)
	_, registered = LookupGradient("TestNeverRegistered")
	assert.False(t, registered)
}

func TestDefaultGraph(t *testing.T) {
	g := DefaultGraph()
	if g != DefaultGraph() {
		t.Fatal("DefaultGraph returned different graphs")
	}
	_Placeholder(g, "x", Float)
	fresh := ResetDefaultGraph()
	if fresh == g || DefaultGraph() != fresh {
		t.Fatal("ResetDefaultGraph did not install a new graph")
	}
	if got := fresh.NumOperations(); got != 0 {
		t.Errorf("new default graph has %d operations", got)
	}
	if g.Operation("x") == nil {
		t.Error("operations of the previous default graph are gone")
	}
}
