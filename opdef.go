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
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
)

// ArgDef describes one input or output slot of an op schema.
// Exactly one of Type, TypeAttr or TypeListAttr must be set.
type ArgDef struct {
	Name string

	// Type is the fixed data type of the slot.
	Type DataType
	// TypeAttr names a "type" attribute holding the data type of the slot.
	TypeAttr string
	// TypeListAttr names a "list(type)" attribute. The slot is a list
	// with one element per entry of the attribute.
	TypeListAttr string
}

// IsList reports whether the slot takes or produces a list of tensors.
func (arg ArgDef) IsList() bool { return arg.TypeListAttr != "" }

// AttrDef describes one attribute of an op schema.
type AttrDef struct {
	Name string
	Type AttrKind

	// Default is used when the attribute is not set. A nil Default makes
	// the attribute required.
	Default any

	// AllowedTypes restricts the values of "type" and "list(type)" attributes.
	AllowedTypes []DataType
}

// OpDef is the schema of an operation type: its inputs, outputs and attributes.
// It mirrors the op registry of the execution engine.
type OpDef struct {
	Name       string
	InputArgs  []ArgDef
	OutputArgs []ArgDef
	Attrs      []AttrDef
}

// Attr returns the attribute definition with the given name.
func (def *OpDef) Attr(name string) (*AttrDef, bool) {
	for i := range def.Attrs {
		if def.Attrs[i].Name == name {
			return &def.Attrs[i], true
		}
	}
	return nil, false
}

func (def *OpDef) validate() error {
	if def.Name == "" {
		return fmt.Errorf("%w: op definition without name", ErrInvalidArgument)
	}
	attrNames := map[string]bool{}
	for i, attr := range def.Attrs {
		if attr.Name == "" || strings.HasPrefix(attr.Name, "_") {
			return fmt.Errorf("%w: %s: attribute name %q is reserved", ErrInvalidArgument, def.Name, attr.Name)
		}
		if attrNames[attr.Name] {
			return fmt.Errorf("%w: %s: attribute %q defined twice", ErrInvalidArgument, def.Name, attr.Name)
		}
		attrNames[attr.Name] = true
		if attr.Default == nil {
			continue
		}
		v, kind, err := normalizeAttr(attr.Default)
		if err != nil || kind != attr.Type {
			return fmt.Errorf("%w: %s: default of attribute %q is not a %s",
				ErrInvalidArgument, def.Name, attr.Name, attr.Type)
		}
		def.Attrs[i].Default = v
	}
	for _, args := range [][]ArgDef{def.InputArgs, def.OutputArgs} {
		for _, arg := range args {
			n := 0
			if arg.Type != 0 {
				n++
			}
			if arg.TypeAttr != "" {
				n++
				if a, ok := def.Attr(arg.TypeAttr); !ok || a.Type != AttrType {
					return fmt.Errorf("%w: %s: arg %q refers to unknown type attribute %q",
						ErrInvalidArgument, def.Name, arg.Name, arg.TypeAttr)
				}
			}
			if arg.TypeListAttr != "" {
				n++
				if a, ok := def.Attr(arg.TypeListAttr); !ok || a.Type != AttrTypeList {
					return fmt.Errorf("%w: %s: arg %q refers to unknown type list attribute %q",
						ErrInvalidArgument, def.Name, arg.Name, arg.TypeListAttr)
				}
			}
			if n != 1 {
				return fmt.Errorf("%w: %s: arg %q needs exactly one type source",
					ErrInvalidArgument, def.Name, arg.Name)
			}
		}
	}
	return nil
}

var opRegistry = struct {
	sync.RWMutex
	defs map[string]*OpDef
}{defs: map[string]*OpDef{}}

// RegisterOpDef adds an op schema to the process wide registry.
// Registering the same op type twice fails with ErrDuplicateOpDef.
func RegisterOpDef(def OpDef) error {
	def.InputArgs = slices.Clone(def.InputArgs)
	def.OutputArgs = slices.Clone(def.OutputArgs)
	def.Attrs = slices.Clone(def.Attrs)
	if err := def.validate(); err != nil {
		return err
	}
	opRegistry.Lock()
	defer opRegistry.Unlock()
	if _, ok := opRegistry.defs[def.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateOpDef, def.Name)
	}
	opRegistry.defs[def.Name] = &def
	slog.Debug("registered op definition", "type", def.Name)
	return nil
}

// MustRegisterOpDef is like RegisterOpDef but panics on errors.
// It is meant for package initialization.
func MustRegisterOpDef(def OpDef) {
	if err := RegisterOpDef(def); err != nil {
		panic(err)
	}
}

// LookupOpDef returns the registered schema of an op type.
func LookupOpDef(opType string) (*OpDef, bool) {
	opRegistry.RLock()
	defer opRegistry.RUnlock()
	def, ok := opRegistry.defs[opType]
	return def, ok
}

// OpDefs returns all registered op schemas sorted by name.
func OpDefs() []*OpDef {
	opRegistry.RLock()
	defs := make([]*OpDef, 0, len(opRegistry.defs))
	for _, def := range opRegistry.defs {
		defs = append(defs, def)
	}
	opRegistry.RUnlock()
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}
