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

package op

import (
	"fmt"
	"slices"

	tf "github.com/hdu-hh/tfgraph"
)

// Types accepted by the out_type attribute of DecodeRaw.
var decodeRawTypes = []tf.DataType{
	tf.Half, tf.Float, tf.Double, tf.Int32, tf.Uint16, tf.Uint8, tf.Int16,
	tf.Int8, tf.Int64, tf.Complex64, tf.Complex128, tf.Bool, tf.Bfloat16,
}

// Types accepted by the out_type attribute of StringToNumber.
var numberTypes = []tf.DataType{tf.Float, tf.Double, tf.Int32, tf.Int64}

// Column types accepted by DecodeCSV.
var csvTypes = []tf.DataType{tf.Float, tf.Double, tf.Int32, tf.Int64, tf.String}

var compressionTypes = []string{"", "ZLIB", "GZIP"}

func init() {
	for _, def := range []tf.OpDef{
		{
			Name:       "SerializeTensor",
			InputArgs:  []tf.ArgDef{{Name: "tensor", TypeAttr: "T"}},
			OutputArgs: []tf.ArgDef{{Name: "serialized", Type: tf.String}},
			Attrs:      []tf.AttrDef{{Name: "T", Type: tf.AttrType}},
		},
		{
			Name:       "ParseTensor",
			InputArgs:  []tf.ArgDef{{Name: "serialized", Type: tf.String}},
			OutputArgs: []tf.ArgDef{{Name: "output", TypeAttr: "out_type"}},
			Attrs:      []tf.AttrDef{{Name: "out_type", Type: tf.AttrType}},
		},
		{
			Name:       "DecodeRaw",
			InputArgs:  []tf.ArgDef{{Name: "bytes", Type: tf.String}},
			OutputArgs: []tf.ArgDef{{Name: "output", TypeAttr: "out_type"}},
			Attrs: []tf.AttrDef{
				{Name: "out_type", Type: tf.AttrType, AllowedTypes: decodeRawTypes},
				{Name: "little_endian", Type: tf.AttrBool, Default: true},
			},
		},
		{
			Name: "DecodeCSV",
			InputArgs: []tf.ArgDef{
				{Name: "records", Type: tf.String},
				{Name: "record_defaults", TypeListAttr: "OUT_TYPE"},
			},
			OutputArgs: []tf.ArgDef{{Name: "output", TypeListAttr: "OUT_TYPE"}},
			Attrs: []tf.AttrDef{
				{Name: "OUT_TYPE", Type: tf.AttrTypeList, AllowedTypes: csvTypes},
				{Name: "field_delim", Type: tf.AttrString, Default: ","},
				{Name: "use_quote_delim", Type: tf.AttrBool, Default: true},
				{Name: "na_value", Type: tf.AttrString, Default: ""},
				{Name: "select_cols", Type: tf.AttrIntList, Default: []int64{}},
			},
		},
		{
			Name:       "StringToNumber",
			InputArgs:  []tf.ArgDef{{Name: "string_tensor", Type: tf.String}},
			OutputArgs: []tf.ArgDef{{Name: "output", TypeAttr: "out_type"}},
			Attrs: []tf.AttrDef{
				{Name: "out_type", Type: tf.AttrType, Default: tf.Float, AllowedTypes: numberTypes},
			},
		},
		{
			Name:       "DecodeJSONExample",
			InputArgs:  []tf.ArgDef{{Name: "json_examples", Type: tf.String}},
			OutputArgs: []tf.ArgDef{{Name: "binary_examples", Type: tf.String}},
		},
		{
			Name:       "DecodeCompressed",
			InputArgs:  []tf.ArgDef{{Name: "bytes", Type: tf.String}},
			OutputArgs: []tf.ArgDef{{Name: "output", Type: tf.String}},
			Attrs:      []tf.AttrDef{{Name: "compression_type", Type: tf.AttrString, Default: ""}},
		},
	} {
		tf.MustRegisterOpDef(def)
		if err := tf.NotDifferentiable(def.Name); err != nil {
			panic(err)
		}
	}
}

// requireString fails if x is not a string tensor.
func requireString(opType, arg string, x tf.Output) error {
	if x.Op == nil {
		return &tf.InvalidArgumentError{Op: opType, Arg: arg, Msg: "output of a nil operation"}
	}
	if got := x.DataType().DeRef(); got != tf.String {
		return &tf.InvalidArgumentError{Op: opType, Arg: arg, Got: got, Want: tf.String}
	}
	return nil
}

// Encode transforms a tensor into a serialized TensorProto proto.
//
// Arguments:
//
//	tensor: A tensor of any type.
//
// Returns A serialized TensorProto proto of the input tensor.
func Encode(scope *Scope, tensor tf.Output) (serialized tf.Output, err error) {
	if tensor.Op == nil {
		return serialized, &tf.InvalidArgumentError{Op: "SerializeTensor", Arg: "tensor", Msg: "output of a nil operation"}
	}
	op, err := scope.AddOperation(tf.OpSpec{
		Type:  "SerializeTensor",
		Input: []tf.Input{tensor},
	})
	if err != nil {
		return
	}
	return op.Output(0), nil
}

// Decode transforms a serialized tensorflow.TensorProto proto into a Tensor.
//
// Arguments:
//
//	serialized: A scalar string containing a serialized TensorProto proto.
//	outType: The type of the serialized tensor.  The provided type must match the
//
// type of the serialized tensor and no implicit conversion will take place.
//
// Returns A Tensor of type `outType`.
func Decode(scope *Scope, serialized tf.Output, outType tf.DataType) (output tf.Output, err error) {
	if err = requireString("ParseTensor", "serialized", serialized); err != nil {
		return
	}
	op, err := scope.AddOperation(tf.OpSpec{
		Type:  "ParseTensor",
		Input: []tf.Input{serialized},
		Attrs: map[string]interface{}{"out_type": outType},
	})
	if err != nil {
		return
	}
	return op.Output(0), nil
}

// DecodeRawAttr is an optional argument to DecodeRaw.
type DecodeRawAttr func(optionalAttr)

// DecodeRawLittleEndian sets the optional little_endian attribute to value.
//
// value: Whether the input `bytes` are in little-endian order.
// Ignored for `out_type` values that are stored in a single byte like
// `uint8`.
// If not specified, defaults to true
func DecodeRawLittleEndian(value bool) DecodeRawAttr {
	return func(m optionalAttr) {
		m["little_endian"] = value
	}
}

// DecodeRaw reinterprets the bytes of a string as a vector of numbers.
//
// Arguments:
//
//	bytes: All the elements must have the same length.
//	outType: A fixed size element type.
//
// Returns A Tensor with one more dimension than the input `bytes`.  The
// added dimension will have size equal to the length of the elements
// of `bytes` divided by the number of bytes to represent `outType`.
func DecodeRaw(scope *Scope, bytes tf.Output, outType tf.DataType, optional ...DecodeRawAttr) (output tf.Output, err error) {
	if err = requireString("DecodeRaw", "bytes", bytes); err != nil {
		return
	}
	if !slices.Contains(decodeRawTypes, outType) {
		return output, &tf.InvalidArgumentError{Op: "DecodeRaw", Arg: "out_type",
			Msg: fmt.Sprintf("dtype %v is not one of %v", outType, decodeRawTypes)}
	}
	attrs := map[string]interface{}{"out_type": outType}
	for _, a := range optional {
		a(attrs)
	}
	op, err := scope.AddOperation(tf.OpSpec{
		Type:  "DecodeRaw",
		Input: []tf.Input{bytes},
		Attrs: attrs,
	})
	if err != nil {
		return
	}
	return op.Output(0), nil
}

// DecodeCSVAttr is an optional argument to DecodeCSV.
type DecodeCSVAttr func(optionalAttr)

// DecodeCSVFieldDelim sets the optional field_delim attribute to value.
//
// value: char delimiter to separate fields in a record.
// If not specified, defaults to ","
func DecodeCSVFieldDelim(value string) DecodeCSVAttr {
	return func(m optionalAttr) {
		m["field_delim"] = value
	}
}

// DecodeCSVUseQuoteDelim sets the optional use_quote_delim attribute to value.
//
// value: If false, treats double quotation marks as regular
// characters inside of the string fields (ignoring RFC 4180, Section 2,
// Bullet 5).
// If not specified, defaults to true
func DecodeCSVUseQuoteDelim(value bool) DecodeCSVAttr {
	return func(m optionalAttr) {
		m["use_quote_delim"] = value
	}
}

// DecodeCSVNaValue sets the optional na_value attribute to value.
//
// value: Additional string to recognize as NA/NaN.
// If not specified, defaults to ""
func DecodeCSVNaValue(value string) DecodeCSVAttr {
	return func(m optionalAttr) {
		m["na_value"] = value
	}
}

// DecodeCSVSelectCols sets the optional select_cols attribute to value.
// If not specified, defaults to []
func DecodeCSVSelectCols(value []int64) DecodeCSVAttr {
	return func(m optionalAttr) {
		m["select_cols"] = value
	}
}

// DecodeCSV converts CSV records to tensors. Each column maps to one tensor.
//
// RFC 4180 format is expected for the CSV records.
// (https://tools.ietf.org/html/rfc4180)
// Note that we allow leading and trailing spaces with int or float field.
//
// Arguments:
//
//	records: Each string is a record/row in the csv and all records should have
//
// the same format.
//
//	recordDefaults: One tensor per column of the input record, with either a
//
// scalar default value for that column or an empty vector if the column is
// required. May be empty, in which case outTypes alone defines the columns.
//
//	outTypes: The element type of each column.
//
// Returns Each tensor will have the same shape as records, one per entry of outTypes.
func DecodeCSV(scope *Scope, records tf.Output, recordDefaults []tf.Output, outTypes []tf.DataType, optional ...DecodeCSVAttr) (output []tf.Output, err error) {
	const opType = "DecodeCSV"
	if err = requireString(opType, "records", records); err != nil {
		return
	}
	if len(outTypes) == 0 {
		return nil, &tf.InvalidArgumentError{Op: opType, Arg: "OUT_TYPE", Msg: "no column types"}
	}
	for i, dtype := range outTypes {
		if !slices.Contains(csvTypes, dtype) {
			return nil, &tf.InvalidArgumentError{Op: opType, Arg: fmt.Sprintf("OUT_TYPE[%d]", i),
				Msg: fmt.Sprintf("dtype %v is not one of %v", dtype, csvTypes)}
		}
	}
	if len(recordDefaults) > 0 {
		if len(recordDefaults) != len(outTypes) {
			return nil, &tf.InvalidArgumentError{Op: opType, Arg: "record_defaults",
				Msg: fmt.Sprintf("got %d defaults for %d columns", len(recordDefaults), len(outTypes))}
		}
		for i, def := range recordDefaults {
			if def.Op == nil {
				return nil, &tf.InvalidArgumentError{Op: opType, Arg: fmt.Sprintf("record_defaults[%d]", i),
					Msg: "output of a nil operation"}
			}
			if got, want := def.DataType().DeRef(), outTypes[i]; got != want {
				return nil, &tf.InvalidArgumentError{Op: opType, Arg: fmt.Sprintf("record_defaults[%d]", i),
					Got: got, Want: want}
			}
		}
	}
	attrs := map[string]interface{}{"OUT_TYPE": outTypes}
	for _, a := range optional {
		a(attrs)
	}
	if delim, ok := attrs["field_delim"].(string); ok && len(delim) != 1 {
		return nil, &tf.InvalidArgumentError{Op: opType, Arg: "field_delim",
			Msg: fmt.Sprintf("delimiter %q is not a single character", delim)}
	}
	op, err := scope.AddOperation(tf.OpSpec{
		Type:  opType,
		Input: []tf.Input{records, tf.OutputList(recordDefaults)},
		Attrs: attrs,
	})
	if err != nil {
		return
	}
	return op.Outputs(), nil
}

// StringToNumber converts each string in the input Tensor to the specified numeric type.
//
// (Note that int32 overflow results in an error while float overflow
// results in a rounded value.)
//
// Arguments:
//
//	stringTensor: The strings to convert.
//	outType: The numeric type to interpret each string as.
//
// Returns A Tensor of the same shape as the input `stringTensor`.
func StringToNumber(scope *Scope, stringTensor tf.Output, outType tf.DataType) (output tf.Output, err error) {
	if err = requireString("StringToNumber", "string_tensor", stringTensor); err != nil {
		return
	}
	if !slices.Contains(numberTypes, outType) {
		return output, &tf.InvalidArgumentError{Op: "StringToNumber", Arg: "out_type",
			Msg: fmt.Sprintf("dtype %v is not one of %v", outType, numberTypes)}
	}
	op, err := scope.AddOperation(tf.OpSpec{
		Type:  "StringToNumber",
		Input: []tf.Input{stringTensor},
		Attrs: map[string]interface{}{"out_type": outType},
	})
	if err != nil {
		return
	}
	return op.Output(0), nil
}

// DecodeJSONExample converts JSON-encoded Example records to binary protocol buffer strings.
//
// This op translates a tensor containing Example records, encoded using
// the [standard JSON
// mapping](https://developers.google.com/protocol-buffers/docs/proto3#json),
// into a tensor containing the same records encoded as binary protocol
// buffers. The resulting tensor can then be fed to any of the other
// Example-parsing ops.
//
// Arguments:
//
//	jsonExamples: Each string is a JSON object serialized according to the JSON
//
// mapping of the Example proto.
//
// Returns Each string is a binary Example protocol buffer corresponding
// to the respective element of `jsonExamples`.
func DecodeJSONExample(scope *Scope, jsonExamples tf.Output) (binaryExamples tf.Output, err error) {
	if err = requireString("DecodeJSONExample", "json_examples", jsonExamples); err != nil {
		return
	}
	op, err := scope.AddOperation(tf.OpSpec{
		Type:  "DecodeJSONExample",
		Input: []tf.Input{jsonExamples},
	})
	if err != nil {
		return
	}
	return op.Output(0), nil
}

// DecodeCompressedAttr is an optional argument to DecodeCompressed.
type DecodeCompressedAttr func(optionalAttr)

// DecodeCompressedCompressionType sets the optional compression_type attribute to value.
//
// value: A scalar containing either (i) the empty string (no
// compression), (ii) "ZLIB", or (iii) "GZIP".
// If not specified, defaults to ""
func DecodeCompressedCompressionType(value string) DecodeCompressedAttr {
	return func(m optionalAttr) {
		m["compression_type"] = value
	}
}

// DecodeCompressed decompresses strings.
//
// This op decompresses each element of the `bytes` input `Tensor`, which
// is assumed to be compressed using the given `compression_type`.
//
// Returns A Tensor with the same shape as input `bytes`, uncompressed
// from bytes.
func DecodeCompressed(scope *Scope, bytes tf.Output, optional ...DecodeCompressedAttr) (output tf.Output, err error) {
	if err = requireString("DecodeCompressed", "bytes", bytes); err != nil {
		return
	}
	attrs := map[string]interface{}{}
	for _, a := range optional {
		a(attrs)
	}
	if ct, ok := attrs["compression_type"].(string); ok && !containsString(compressionTypes, ct) {
		return output, &tf.InvalidArgumentError{Op: "DecodeCompressed", Arg: "compression_type",
			Msg: fmt.Sprintf("%q is not one of %q", ct, compressionTypes)}
	}
	op, err := scope.AddOperation(tf.OpSpec{
		Type:  "DecodeCompressed",
		Input: []tf.Input{bytes},
		Attrs: attrs,
	})
	if err != nil {
		return
	}
	return op.Output(0), nil
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
