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

// Op schemas used by the tests of this package. The op package registers
// the real ones; it is not linked into these tests.
func init() {
	MustRegisterOpDef(OpDef{
		Name:       "Placeholder",
		OutputArgs: []ArgDef{{Name: "output", TypeAttr: "dtype"}},
		Attrs:      []AttrDef{{Name: "dtype", Type: AttrType}},
	})
	MustRegisterOpDef(OpDef{
		Name:       "Neg",
		InputArgs:  []ArgDef{{Name: "x", TypeAttr: "T"}},
		OutputArgs: []ArgDef{{Name: "y", TypeAttr: "T"}},
		Attrs: []AttrDef{{Name: "T", Type: AttrType,
			AllowedTypes: []DataType{Float, Double, Int32, Int64}}},
	})
	MustRegisterOpDef(OpDef{
		Name:       "Add",
		InputArgs:  []ArgDef{{Name: "x", TypeAttr: "T"}, {Name: "y", TypeAttr: "T"}},
		OutputArgs: []ArgDef{{Name: "z", TypeAttr: "T"}},
		Attrs:      []AttrDef{{Name: "T", Type: AttrType}},
	})
	MustRegisterOpDef(OpDef{
		Name:       "IdentityN",
		InputArgs:  []ArgDef{{Name: "input", TypeListAttr: "T"}},
		OutputArgs: []ArgDef{{Name: "output", TypeListAttr: "T"}},
		Attrs:      []AttrDef{{Name: "T", Type: AttrTypeList}},
	})
	MustRegisterOpDef(OpDef{
		Name:       "AsString",
		InputArgs:  []ArgDef{{Name: "input", TypeAttr: "T"}},
		OutputArgs: []ArgDef{{Name: "output", Type: String}},
		Attrs: []AttrDef{
			{Name: "T", Type: AttrType},
			{Name: "precision", Type: AttrInt, Default: -1},
			{Name: "scientific", Type: AttrBool, Default: false},
			{Name: "fill", Type: AttrString, Default: ""},
		},
	})
	MustRegisterOpDef(OpDef{Name: "NoOp"})
}

func _Placeholder(g *Graph, name string, dt DataType) Output {
	op, err := g.AddOperation(OpSpec{
		Type: "Placeholder",
		Name: name,
		Attrs: map[string]interface{}{
			"dtype": dt,
		},
	})
	if err != nil {
		panic(err)
	}
	return op.Output(0)
}

func _Neg(g *Graph, name string, port Output) Output {
	op, err := g.AddOperation(OpSpec{
		Type:  "Neg",
		Name:  name,
		Input: []Input{port},
	})
	if err != nil {
		panic(err)
	}
	return op.Output(0)
}

func _Add(g *Graph, name string, x, y Output) Output {
	op, err := g.AddOperation(OpSpec{
		Type:  "Add",
		Name:  name,
		Input: []Input{x, y},
	})
	if err != nil {
		panic(err)
	}
	return op.Output(0)
}
