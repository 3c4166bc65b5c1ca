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
	"errors"
	"fmt"
)

// Errors returned while building graphs. Use errors.Is to classify them.
var (
	// ErrInvalidArgument is returned when a caller supplied value is rejected
	// before anything is added to a graph.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingAttribute is returned by a build when an attribute required
	// by the op schema was never set and has no default.
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrSchemaViolation is returned by a build when inputs or attributes
	// don't fit the op schema.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrDuplicateName is returned when a node name is already taken and
	// the graph is configured to reject collisions.
	ErrDuplicateName = errors.New("duplicate node name")

	// ErrDuplicateOpDef is returned when an op type is registered twice.
	ErrDuplicateOpDef = errors.New("duplicate op definition")

	// ErrDuplicateGradient is returned for conflicting gradient registrations.
	ErrDuplicateGradient = errors.New("duplicate gradient registration")
)

// InvalidArgumentError describes an input whose data type doesn't match
// the type an operation requires.
type InvalidArgumentError struct {
	Op   string   // operation type, e.g. "DecodeCSV"
	Arg  string   // name of the offending argument
	Got  DataType // actual data type, zero if not applicable
	Want DataType // expected data type, zero if not applicable
	Msg  string   // optional free form detail
}

func (e *InvalidArgumentError) Error() string {
	switch {
	case e.Msg != "":
		return fmt.Sprintf("%s: invalid argument %q: %s", e.Op, e.Arg, e.Msg)
	case e.Got != 0 || e.Want != 0:
		return fmt.Sprintf("%s: invalid argument %q: got dtype %v, want %v", e.Op, e.Arg, e.Got, e.Want)
	default:
		return fmt.Sprintf("%s: invalid argument %q", e.Op, e.Arg)
	}
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold.
func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

func schemaErrorf(opType, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrSchemaViolation, opType, fmt.Sprintf(format, args...))
}
