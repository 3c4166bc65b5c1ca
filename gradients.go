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
	"sync"
)

// GradFunc adds the gradient computation of op to op's graph. grads holds
// one gradient per output of op; the result holds one per input.
type GradFunc func(op *Operation, grads []Output) ([]Output, error)

// gradEntry with a nil fn marks a non-differentiable op type.
type gradEntry struct {
	fn GradFunc
}

var gradRegistry = struct {
	sync.RWMutex
	entries map[string]gradEntry
}{entries: map[string]gradEntry{}}

// RegisterGradient registers the gradient function of an op type.
// Registering a second function, or a function for an op type marked as
// not differentiable, fails with ErrDuplicateGradient.
func RegisterGradient(opType string, fn GradFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: nil gradient function for %q", ErrInvalidArgument, opType)
	}
	gradRegistry.Lock()
	defer gradRegistry.Unlock()
	if _, ok := gradRegistry.entries[opType]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateGradient, opType)
	}
	gradRegistry.entries[opType] = gradEntry{fn: fn}
	slog.Debug("registered gradient", "type", opType)
	return nil
}

// NotDifferentiable marks an op type as not taking part in automatic
// differentiation. Marking the same type again is a no-op; marking a type
// with a registered gradient function fails with ErrDuplicateGradient.
func NotDifferentiable(opType string) error {
	gradRegistry.Lock()
	defer gradRegistry.Unlock()
	if entry, ok := gradRegistry.entries[opType]; ok {
		if entry.fn != nil {
			return fmt.Errorf("%w: %q already has a gradient function", ErrDuplicateGradient, opType)
		}
		return nil
	}
	gradRegistry.entries[opType] = gradEntry{}
	slog.Debug("registered non-differentiable op", "type", opType)
	return nil
}

// LookupGradient returns the gradient function of an op type. registered
// is false if nothing was registered. A registered op type with a nil
// function is not differentiable.
func LookupGradient(opType string) (fn GradFunc, registered bool) {
	gradRegistry.RLock()
	defer gradRegistry.RUnlock()
	entry, ok := gradRegistry.entries[opType]
	return entry.fn, ok
}

// IsDifferentiable reports whether a gradient function is registered for opType.
func IsDifferentiable(opType string) bool {
	fn, _ := LookupGradient(opType)
	return fn != nil
}
