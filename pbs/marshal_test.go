package pbs

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestMarshalAttrValue(t *testing.T) {
	tests := []struct {
		name  string
		value *AttrValue
		want  []byte
	}{
		{"bool", &AttrValue{Value: &AttrValue_B{B: true}}, []byte{0x28, 0x01}},
		{"int", &AttrValue{Value: &AttrValue_I{I: 150}}, []byte{0x18, 0x96, 0x01}},
		{"type", &AttrValue{Value: &AttrValue_Type{Type: 7}}, []byte{0x30, 0x07}},
		{"string", &AttrValue{Value: &AttrValue_S{S: []byte(",")}}, []byte{0x12, 0x01, ','}},
		{"float", &AttrValue{Value: &AttrValue_F{F: 1}}, []byte{0x25, 0x00, 0x00, 0x80, 0x3f}},
		{"empty list", &AttrValue{Value: &AttrValue_List{List: &ListValue{}}}, []byte{0x0a, 0x00}},
		{"int list", &AttrValue{Value: &AttrValue_List{List: &ListValue{I: []int64{1, 2}}}},
			[]byte{0x0a, 0x04, 0x1a, 0x02, 0x01, 0x02}},
		{"type list", &AttrValue{Value: &AttrValue_List{List: &ListValue{Type: []int32{3, 1}}}},
			[]byte{0x0a, 0x04, 0x32, 0x02, 0x03, 0x01}},
	}
	for _, test := range tests {
		if got := MustMarshal(test.value); !bytes.Equal(got, test.want) {
			t.Errorf("%s: got % x, want % x", test.name, got, test.want)
		}
	}
}

func TestGraphDefRoundTrip(t *testing.T) {
	gd := &GraphDef{
		Versions: &VersionDef{Producer: 1882, MinConsumer: 12},
		Node: []*NodeDef{
			{Name: "records", Op: "Placeholder", Attr: map[string]*AttrValue{
				"dtype": {Value: &AttrValue_Type{Type: 7}},
			}},
			{
				Name:   "csv",
				Op:     "DecodeCSV",
				Input:  []string{"records", "defaults:1", "^init"},
				Device: "/device:CPU:0",
				Attr: map[string]*AttrValue{
					"OUT_TYPE":        {Value: &AttrValue_List{List: &ListValue{Type: []int32{3, 1}}}},
					"field_delim":     {Value: &AttrValue_S{S: []byte(";")}},
					"use_quote_delim": {Value: &AttrValue_B{B: true}},
					"select_cols":     {Value: &AttrValue_List{List: &ListValue{}}},
					"scale":           {Value: &AttrValue_F{F: -2.5}},
					"precision":       {Value: &AttrValue_I{I: -1}},
					"flags":           {Value: &AttrValue_List{List: &ListValue{B: []bool{true, false}}}},
					"weights":         {Value: &AttrValue_List{List: &ListValue{F: []float32{0.5, 4}}}},
					"names":           {Value: &AttrValue_List{List: &ListValue{S: [][]byte{[]byte("a"), []byte("")}}}},
				},
			},
		},
	}
	b := MustMarshal(gd)
	got := MustUnmarshal(b, &GraphDef{})
	if diff := cmp.Diff(gd, got, protocmp.Transform()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if again := MustMarshal(got); !bytes.Equal(b, again) {
		t.Error("re-encoding the decoded message changed the bytes")
	}
	if n := got.NodeByName("csv"); n == nil || n.Op != "DecodeCSV" {
		t.Errorf("NodeByName(csv) = %v", n)
	}
	if n := got.NodeByName("missing"); n != nil {
		t.Errorf("NodeByName(missing) = %v", n)
	}
}

func TestMarshalNilNode(t *testing.T) {
	b, err := Marshal(&GraphDef{Node: []*NodeDef{nil}})
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x0a, 0x00}; !bytes.Equal(b, want) {
		t.Errorf("got % x, want % x", b, want)
	}
	gd := MustUnmarshal(b, &GraphDef{})
	if len(gd.Node) != 1 || gd.Node[0].GetName() != "" {
		t.Errorf("decoded %v", gd)
	}
	if n := gd.NodeByName(""); n == nil {
		t.Error("NodeByName did not find the empty node")
	}
	if n := (&GraphDef{Node: []*NodeDef{nil}}).NodeByName("x"); n != nil {
		t.Errorf("NodeByName(x) = %v", n)
	}
}

func TestUnmarshalUnpackedAndUnknownFields(t *testing.T) {
	var list []byte
	// unpacked repeated int64
	list = protowire.AppendTag(list, 3, protowire.VarintType)
	list = protowire.AppendVarint(list, 4)
	list = protowire.AppendTag(list, 3, protowire.VarintType)
	list = protowire.AppendVarint(list, 5)
	// unknown field
	list = protowire.AppendTag(list, 9, protowire.VarintType)
	list = protowire.AppendVarint(list, 1)

	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, list)
	b = protowire.AppendTag(b, 15, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 42)

	var v AttrValue
	if err := Unmarshal(b, &v); err != nil {
		t.Fatal(err)
	}
	if got, want := v.GetList().GetI(), []int64{4, 5}; !cmp.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if unknown := v.GetList().ProtoReflect().GetUnknown(); len(unknown) != 0 {
		t.Errorf("unknown fields kept: % x", unknown)
	}
	// unknown fields are dropped, so the message re-encodes to the known part
	want := []byte{0x0a, 0x04, 0x1a, 0x02, 0x04, 0x05}
	if got := MustMarshal(&v); !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	for name, b := range map[string][]byte{
		"truncated tag":       {0x80},
		"truncated length":    {0x0a, 0x05, 0x01},
		"nested garbage node": {0x0a, 0x02, 0x0a, 0x05},
	} {
		if err := Unmarshal(b, &GraphDef{}); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	defer func() {
		if recover() == nil {
			t.Error("MustUnmarshal did not panic")
		}
	}()
	MustUnmarshal([]byte{0x80}, &GraphDef{})
}

func TestDescriptor(t *testing.T) {
	md := (&GraphDef{}).ProtoReflect().Descriptor()
	if got, want := string(md.FullName()), "tensorflow.GraphDef"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	attr := (&NodeDef{}).ProtoReflect().Descriptor().Fields().ByName("attr")
	if attr == nil || !attr.IsMap() || attr.MapValue().Message().FullName() != "tensorflow.AttrValue" {
		t.Errorf("NodeDef.attr is not a map to AttrValue: %v", attr)
	}
	if od := (&AttrValue{}).ProtoReflect().Descriptor().Oneofs().ByName("value"); od == nil || od.Fields().Len() != 6 {
		t.Errorf("AttrValue.value oneof: %v", od)
	}
}
