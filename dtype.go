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
	"strings"
)

// DataType holds the type for a scalar value. E.g., one element in a tensor.
//
// The numeric values match the DataType enum of the engine's protobuf schema,
// so a DataType can be written into a GraphDef unchanged.
type DataType int32

// Types of scalar values in the TensorFlow type system.
const (
	Float        DataType = 1
	Double       DataType = 2
	Int32        DataType = 3
	Uint8        DataType = 4
	Int16        DataType = 5
	Int8         DataType = 6
	String       DataType = 7
	Complex64    DataType = 8
	Int64        DataType = 9
	Bool         DataType = 10
	Qint8        DataType = 11
	Quint8       DataType = 12
	Qint32       DataType = 13
	Bfloat16     DataType = 14
	Qint16       DataType = 15
	Quint16      DataType = 16
	Uint16       DataType = 17
	Complex128   DataType = 18
	Half         DataType = 19
	Resource     DataType = 20
	Variant      DataType = 21
	Uint32       DataType = 22
	Uint64       DataType = 23
	Float8e5m2   DataType = 24
	Float8e4m3fn DataType = 25

	Complex = Complex64
)

var dtype2name = map[DataType]string{
	Double: "double", Float: "float", Half: "half",
	Bfloat16: "bfloat16", Float8e5m2: "f8e5m2", Float8e4m3fn: "f8e4m3fn",
	Int64: "int64", Int32: "int32", Int16: "int16", Int8: "int8",
	Uint64: "uint64", Uint32: "uint32", Uint16: "uint16", Uint8: "uint8",
	Qint32: "qint32", Qint16: "qint16", Qint8: "qint8",
	Quint16: "quint16", Quint8: "quint8",
	Bool: "bool", Complex128: "complex128", Complex64: "complex64",
	String: "string", Variant: "variant", Resource: "resource",
}

var name2dtype map[string]DataType

func init() {
	name2dtype = make(map[string]DataType, len(dtype2name)+2)
	for k, v := range dtype2name {
		name2dtype[v] = k
	}
	name2dtype["float32"] = Float
	name2dtype["float64"] = Double
}

// String returns the corresponding tensorflow python dtype name
func (dtype DataType) String() string {
	if n, ok := dtype2name[dtype]; ok {
		return n
	}
	return fmt.Sprintf("DataType(%d)", int32(dtype))
}

// ParseDataType returns the data type for a python dtype name like "int32".
// The aliases "float32" and "float64" are accepted as well.
func ParseDataType(name string) (DataType, error) {
	dtype, ok := name2dtype[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown dtype name %q", ErrInvalidArgument, name)
	}
	return dtype, nil
}

var dtype2bytesize = map[DataType]int{
	Double: 8, Float: 4, Half: 2,
	Bfloat16: 2, Float8e5m2: 1, Float8e4m3fn: 1,
	Int64: 8, Int32: 4, Int16: 2, Int8: 1,
	Uint64: 8, Uint32: 4, Uint16: 2, Uint8: 1,
	Qint32: 4, Qint16: 2, Qint8: 1,
	Quint16: 2, Quint8: 1,
	Bool: 1, Complex128: 16, Complex64: 8,
}

// ByteSize returns the byte size of one raw element of that dtype.
// It returns 0 for types without a fixed size (string, resource, variant).
func (dtype DataType) ByteSize() int {
	return dtype2bytesize[dtype.DeRef()]
}

// IsFixedSize reports whether elements of dtype have a fixed byte size.
func (dtype DataType) IsFixedSize() bool {
	return dtype.ByteSize() > 0
}

// DeRef returns the underlying data type of a reference type
func (dtype DataType) DeRef() DataType {
	const RefOffset = 100
	if n := int(dtype); n >= RefOffset {
		dtype = DataType(n - RefOffset)
	}
	return dtype
}
