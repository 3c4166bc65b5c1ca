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
)

// AttrKind names the type of an attribute value the way op schemas do.
type AttrKind string

// Attribute kinds supported when building operations.
const (
	AttrBool       AttrKind = "bool"
	AttrInt        AttrKind = "int"
	AttrFloat      AttrKind = "float"
	AttrString     AttrKind = "string"
	AttrType       AttrKind = "type"
	AttrBoolList   AttrKind = "list(bool)"
	AttrIntList    AttrKind = "list(int)"
	AttrFloatList  AttrKind = "list(float)"
	AttrStringList AttrKind = "list(string)"
	AttrTypeList   AttrKind = "list(type)"
)

// IsList reports whether values of this kind are homogeneous sequences.
func (k AttrKind) IsList() bool {
	switch k {
	case AttrBoolList, AttrIntList, AttrFloatList, AttrStringList, AttrTypeList:
		return true
	}
	return false
}

// normalizeAttr converts a Go value into the canonical attribute
// representation: bool, int64, float32, string, DataType or a slice of one
// of those. Slices are always copied.
func normalizeAttr(value any) (any, AttrKind, error) {
	switch v := value.(type) {
	case bool:
		return v, AttrBool, nil
	case int:
		return int64(v), AttrInt, nil
	case int32:
		return int64(v), AttrInt, nil
	case int64:
		return v, AttrInt, nil
	case float32:
		return v, AttrFloat, nil
	case float64:
		return float32(v), AttrFloat, nil
	case string:
		return v, AttrString, nil
	case DataType:
		return v, AttrType, nil
	case []bool:
		return slices.Clone(nonNil(v)), AttrBoolList, nil
	case []int:
		return convertSlice(v, func(x int) int64 { return int64(x) }), AttrIntList, nil
	case []int32:
		return convertSlice(v, func(x int32) int64 { return int64(x) }), AttrIntList, nil
	case []int64:
		return slices.Clone(nonNil(v)), AttrIntList, nil
	case []float32:
		return slices.Clone(nonNil(v)), AttrFloatList, nil
	case []float64:
		return convertSlice(v, func(x float64) float32 { return float32(x) }), AttrFloatList, nil
	case []string:
		return slices.Clone(nonNil(v)), AttrStringList, nil
	case []DataType:
		return slices.Clone(nonNil(v)), AttrTypeList, nil
	}
	return nil, "", fmt.Errorf("unsupported attribute value type %T", value)
}

// cloneAttr returns a copy of a canonical attribute value so that callers
// can't mutate the value stored in an operation.
func cloneAttr(value any) any {
	switch v := value.(type) {
	case []bool:
		return slices.Clone(v)
	case []int64:
		return slices.Clone(v)
	case []float32:
		return slices.Clone(v)
	case []string:
		return slices.Clone(v)
	case []DataType:
		return slices.Clone(v)
	}
	return value
}

func convertSlice[S ~[]E, E, T any](s S, conv func(E) T) []T {
	out := make([]T, len(s))
	for i, x := range s {
		out[i] = conv(x)
	}
	return out
}

func nonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
