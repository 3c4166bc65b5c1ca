package pbs

import (
	"google.golang.org/protobuf/proto"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
)

var (
	marshalOptions   = proto.MarshalOptions{AllowPartial: true, Deterministic: true}
	unmarshalOptions = proto.UnmarshalOptions{AllowPartial: true, DiscardUnknown: true}
)

// Marshal returns the wire-format encoding of m.
// Map entries are written in sorted key order, so the encoding is deterministic.
func Marshal(m protoreflect.ProtoMessage) ([]byte, error) {
	return marshalOptions.Marshal(m)
}

// MustMarshal returns the wire-format encoding of m. It panics if this is not possible.
func MustMarshal(m protoreflect.ProtoMessage) []byte {
	b, err := Marshal(m)
	if err != nil {
		panic(err)
	}
	return b
}

// Unmarshal parses the wire-format message in b into m.
// Unknown fields are dropped.
func Unmarshal(b []byte, m protoreflect.ProtoMessage) error {
	return unmarshalOptions.Unmarshal(b, m)
}

// MustUnmarshal parses the wire-format message in b into m and also returns it.
// It panics if unmarshalling is not possible.
// To get e.g. a GraphDef from its byte encoding use
//
//	e.g. MustUnmarshal(b, &GraphDef{})
func MustUnmarshal[T protoreflect.ProtoMessage](b []byte, m T) T {
	if err := Unmarshal(b, m); err != nil {
		panic(err)
	}
	return m
}
