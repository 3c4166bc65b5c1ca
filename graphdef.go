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
	"io"

	"github.com/hdu-hh/tfgraph/internal/envconfig"
	"github.com/hdu-hh/tfgraph/pbs"
)

// ToGraphDef returns the GraphDef message describing g, with nodes in the
// order they were added.
func (g *Graph) ToGraphDef() *pbs.GraphDef {
	gd := &pbs.GraphDef{
		Versions: &pbs.VersionDef{Producer: int32(envconfig.GraphDefProducer())},
	}
	for _, op := range g.Operations() {
		gd.Node = append(gd.Node, op.toNodeDef())
	}
	return gd
}

// WriteTo writes out a serialized representation of g to w.
//
// Implements the io.WriterTo interface.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	b, err := pbs.Marshal(g.ToGraphDef())
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

func (op *Operation) toNodeDef() *pbs.NodeDef {
	nd := &pbs.NodeDef{
		Name:   op.name,
		Op:     op.opType,
		Device: op.device,
		Attr:   make(map[string]*pbs.AttrValue, len(op.attrs)),
	}
	for _, in := range op.Inputs() {
		nd.Input = append(nd.Input, inputName(in))
	}
	for _, ctrl := range op.controlInputs {
		nd.Input = append(nd.Input, "^"+ctrl.name)
	}
	for k, v := range op.attrs {
		nd.Attr[k] = attrValueProto(v)
	}
	return nd
}

// inputName follows the GraphDef convention of omitting ":0".
func inputName(out Output) string {
	if out.Index == 0 {
		return out.Op.name
	}
	return out.String()
}

func attrValueProto(value any) *pbs.AttrValue {
	switch v := value.(type) {
	case bool:
		return &pbs.AttrValue{Value: &pbs.AttrValue_B{B: v}}
	case int64:
		return &pbs.AttrValue{Value: &pbs.AttrValue_I{I: v}}
	case float32:
		return &pbs.AttrValue{Value: &pbs.AttrValue_F{F: v}}
	case string:
		return &pbs.AttrValue{Value: &pbs.AttrValue_S{S: []byte(v)}}
	case DataType:
		return &pbs.AttrValue{Value: &pbs.AttrValue_Type{Type: int32(v)}}
	}
	list := &pbs.ListValue{}
	switch v := value.(type) {
	case []bool:
		list.B = v
	case []int64:
		list.I = v
	case []float32:
		list.F = v
	case []string:
		for _, s := range v {
			list.S = append(list.S, []byte(s))
		}
	case []DataType:
		for _, dt := range v {
			list.Type = append(list.Type, int32(dt))
		}
	}
	return &pbs.AttrValue{Value: &pbs.AttrValue_List{List: list}}
}
