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

// Package pbs holds the protocol buffer messages exchanged with the
// execution engine (GraphDef, NodeDef, AttrValue) and helpers to encode them.
//
// The messages are generated from graph.proto, a subset of
// tensorflow/core/framework/{graph,node_def,attr_value,versions}.proto with
// the engine's field numbers.
package pbs

//go:generate protoc -I.. --go_out=.. --go_opt=paths=source_relative ../pbs/graph.proto

// NodeByName returns the node named name, or nil.
func (x *GraphDef) NodeByName(name string) *NodeDef {
	for _, n := range x.GetNode() {
		if n.GetName() == name {
			return n
		}
	}
	return nil
}
