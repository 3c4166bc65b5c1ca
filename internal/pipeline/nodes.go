package pipeline

import (
	"sort"

	tf "github.com/hdu-hh/tfgraph"
	"github.com/hdu-hh/tfgraph/op"
)

// nodeSpec is the decoded body of one block type.
type nodeSpec interface {
	refs() []string
	add(s *op.Scope, resolve func(ref string) (tf.Output, error)) (*tf.Operation, error)
}

var kinds = map[string]func() nodeSpec{
	"placeholder":         func() nodeSpec { return &placeholderSpec{} },
	"encode":              func() nodeSpec { return &encodeSpec{} },
	"decode":              func() nodeSpec { return &decodeSpec{} },
	"decode_raw":          func() nodeSpec { return &decodeRawSpec{} },
	"decode_csv":          func() nodeSpec { return &decodeCSVSpec{} },
	"string_to_number":    func() nodeSpec { return &stringToNumberSpec{} },
	"decode_json_example": func() nodeSpec { return &decodeJSONExampleSpec{} },
	"decode_compressed":   func() nodeSpec { return &decodeCompressedSpec{} },
}

// Kinds returns the block types of pipeline files in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func newSpec(kind string) nodeSpec { return kinds[kind]() }

func parseTypes(names []string) ([]tf.DataType, error) {
	types := make([]tf.DataType, len(names))
	for i, name := range names {
		dtype, err := tf.ParseDataType(name)
		if err != nil {
			return nil, err
		}
		types[i] = dtype
	}
	return types, nil
}

type placeholderSpec struct {
	DType string `hcl:"dtype"`
}

func (*placeholderSpec) refs() []string { return nil }

func (spec *placeholderSpec) add(s *op.Scope, _ func(string) (tf.Output, error)) (*tf.Operation, error) {
	dtype, err := tf.ParseDataType(spec.DType)
	if err != nil {
		return nil, err
	}
	out, err := op.Placeholder(s, dtype)
	return out.Op, err
}

type encodeSpec struct {
	Input string `hcl:"input"`
}

func (spec *encodeSpec) refs() []string { return []string{spec.Input} }

func (spec *encodeSpec) add(s *op.Scope, resolve func(string) (tf.Output, error)) (*tf.Operation, error) {
	in, err := resolve(spec.Input)
	if err != nil {
		return nil, err
	}
	out, err := op.Encode(s, in)
	return out.Op, err
}

type decodeSpec struct {
	Input   string `hcl:"input"`
	OutType string `hcl:"out_type"`
}

func (spec *decodeSpec) refs() []string { return []string{spec.Input} }

func (spec *decodeSpec) add(s *op.Scope, resolve func(string) (tf.Output, error)) (*tf.Operation, error) {
	in, err := resolve(spec.Input)
	if err != nil {
		return nil, err
	}
	dtype, err := tf.ParseDataType(spec.OutType)
	if err != nil {
		return nil, err
	}
	out, err := op.Decode(s, in, dtype)
	return out.Op, err
}

type decodeRawSpec struct {
	Input        string `hcl:"input"`
	OutType      string `hcl:"out_type"`
	LittleEndian *bool  `hcl:"little_endian,optional"`
}

func (spec *decodeRawSpec) refs() []string { return []string{spec.Input} }

func (spec *decodeRawSpec) add(s *op.Scope, resolve func(string) (tf.Output, error)) (*tf.Operation, error) {
	in, err := resolve(spec.Input)
	if err != nil {
		return nil, err
	}
	dtype, err := tf.ParseDataType(spec.OutType)
	if err != nil {
		return nil, err
	}
	var opts []op.DecodeRawAttr
	if spec.LittleEndian != nil {
		opts = append(opts, op.DecodeRawLittleEndian(*spec.LittleEndian))
	}
	out, err := op.DecodeRaw(s, in, dtype, opts...)
	return out.Op, err
}

type decodeCSVSpec struct {
	Records        string   `hcl:"records"`
	RecordDefaults []string `hcl:"record_defaults,optional"`
	OutTypes       []string `hcl:"out_types"`
	FieldDelim     *string  `hcl:"field_delim,optional"`
	UseQuoteDelim  *bool    `hcl:"use_quote_delim,optional"`
	NaValue        *string  `hcl:"na_value,optional"`
	SelectCols     []int64  `hcl:"select_cols,optional"`
}

func (spec *decodeCSVSpec) refs() []string {
	return append([]string{spec.Records}, spec.RecordDefaults...)
}

func (spec *decodeCSVSpec) add(s *op.Scope, resolve func(string) (tf.Output, error)) (*tf.Operation, error) {
	records, err := resolve(spec.Records)
	if err != nil {
		return nil, err
	}
	defaults := make([]tf.Output, len(spec.RecordDefaults))
	for i, ref := range spec.RecordDefaults {
		if defaults[i], err = resolve(ref); err != nil {
			return nil, err
		}
	}
	types, err := parseTypes(spec.OutTypes)
	if err != nil {
		return nil, err
	}
	var opts []op.DecodeCSVAttr
	if spec.FieldDelim != nil {
		opts = append(opts, op.DecodeCSVFieldDelim(*spec.FieldDelim))
	}
	if spec.UseQuoteDelim != nil {
		opts = append(opts, op.DecodeCSVUseQuoteDelim(*spec.UseQuoteDelim))
	}
	if spec.NaValue != nil {
		opts = append(opts, op.DecodeCSVNaValue(*spec.NaValue))
	}
	if spec.SelectCols != nil {
		opts = append(opts, op.DecodeCSVSelectCols(spec.SelectCols))
	}
	outs, err := op.DecodeCSV(s, records, defaults, types, opts...)
	if err != nil {
		return nil, err
	}
	return outs[0].Op, nil
}

type stringToNumberSpec struct {
	Input   string `hcl:"input"`
	OutType string `hcl:"out_type,optional"`
}

func (spec *stringToNumberSpec) refs() []string { return []string{spec.Input} }

func (spec *stringToNumberSpec) add(s *op.Scope, resolve func(string) (tf.Output, error)) (*tf.Operation, error) {
	in, err := resolve(spec.Input)
	if err != nil {
		return nil, err
	}
	dtype := tf.Float
	if spec.OutType != "" {
		if dtype, err = tf.ParseDataType(spec.OutType); err != nil {
			return nil, err
		}
	}
	out, err := op.StringToNumber(s, in, dtype)
	return out.Op, err
}

type decodeJSONExampleSpec struct {
	Input string `hcl:"input"`
}

func (spec *decodeJSONExampleSpec) refs() []string { return []string{spec.Input} }

func (spec *decodeJSONExampleSpec) add(s *op.Scope, resolve func(string) (tf.Output, error)) (*tf.Operation, error) {
	in, err := resolve(spec.Input)
	if err != nil {
		return nil, err
	}
	out, err := op.DecodeJSONExample(s, in)
	return out.Op, err
}

type decodeCompressedSpec struct {
	Input           string  `hcl:"input"`
	CompressionType *string `hcl:"compression_type,optional"`
}

func (spec *decodeCompressedSpec) refs() []string { return []string{spec.Input} }

func (spec *decodeCompressedSpec) add(s *op.Scope, resolve func(string) (tf.Output, error)) (*tf.Operation, error) {
	in, err := resolve(spec.Input)
	if err != nil {
		return nil, err
	}
	var opts []op.DecodeCompressedAttr
	if spec.CompressionType != nil {
		opts = append(opts, op.DecodeCompressedCompressionType(*spec.CompressionType))
	}
	out, err := op.DecodeCompressed(s, in, opts...)
	return out.Op, err
}
