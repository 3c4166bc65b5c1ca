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

import "sync"

var defaultGraph struct {
	sync.Mutex
	g *Graph
}

// DefaultGraph returns the process wide default graph.
// It is created on first use.
func DefaultGraph() *Graph {
	defaultGraph.Lock()
	defer defaultGraph.Unlock()
	if defaultGraph.g == nil {
		defaultGraph.g = NewGraph()
	}
	return defaultGraph.g
}

// ResetDefaultGraph replaces the default graph with a new empty one and
// returns it. Operations of the previous default graph stay valid.
func ResetDefaultGraph() *Graph {
	defaultGraph.Lock()
	defer defaultGraph.Unlock()
	defaultGraph.g = NewGraph()
	return defaultGraph.g
}
