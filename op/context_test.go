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
	"errors"
	"testing"

	tf "github.com/hdu-hh/tfgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentDefaultScope(t *testing.T) {
	root := ResetDefaultScope()
	assert.Same(t, root, Current())
	assert.Same(t, tf.DefaultGraph(), Current().Graph())

	x, err := Placeholder(Current(), tf.String)
	require.NoError(t, err)
	assert.Same(t, tf.DefaultGraph(), x.Op.Graph())

	// the default scope follows a reset of the default graph
	g := tf.ResetDefaultGraph()
	assert.Same(t, g, Current().Graph())
	assert.NotSame(t, root, Current())
}

func TestWithNameScope(t *testing.T) {
	ResetDefaultScope()
	var names []string
	err := WithNameScope("input", func(s *Scope) error {
		assert.Same(t, s, Current())
		return WithNameScope("csv", func(s *Scope) error {
			records, err := Placeholder(Current(), tf.String)
			if err != nil {
				return err
			}
			names = append(names, records.Op.Name())
			return nil
		})
	})
	require.NoError(t, err)
	x, err := Placeholder(Current(), tf.String)
	require.NoError(t, err)
	names = append(names, x.Op.Name())

	assert.Equal(t, []string{"input/csv/Placeholder", "Placeholder"}, names)
}

func TestWithNameScopeRestoresOnError(t *testing.T) {
	before := ResetDefaultScope()
	failure := errors.New("failure")
	err := WithNameScope("outer", func(*Scope) error {
		return failure
	})
	assert.ErrorIs(t, err, failure)
	assert.Same(t, before, Current())
}

func TestWithNameScopeRestoresOnPanic(t *testing.T) {
	before := ResetDefaultScope()
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("panic was swallowed")
			}
		}()
		_ = WithNameScope("outer", func(*Scope) error {
			return WithNameScope("inner", func(*Scope) error {
				panic("boom")
			})
		})
	}()
	assert.Same(t, before, Current())
}

func TestWithGraph(t *testing.T) {
	ResetDefaultScope()
	g := tf.NewGraph()
	err := WithGraph(g, func(s *Scope) error {
		_, err := Placeholder(Current(), tf.Float)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumOperations())
	assert.Equal(t, 0, tf.DefaultGraph().NumOperations())
}

func TestWithGraphStartsFromRoot(t *testing.T) {
	ResetDefaultScope()
	g := tf.NewGraph()
	var names []string
	add := func() error {
		x, err := Placeholder(Current(), tf.String)
		if err != nil {
			return err
		}
		names = append(names, x.Op.Name())
		return nil
	}
	err := WithNameScope("outer", func(*Scope) error {
		err := WithDeviceScope("/device:CPU:0", func(*Scope) error {
			return WithGraph(g, func(*Scope) error {
				return WithNameScope("inner", func(*Scope) error {
					assert.Same(t, g, Current().Graph())
					return add()
				})
			})
		})
		if err != nil {
			return err
		}
		return add()
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"inner/Placeholder", "outer/Placeholder"}, names)
	require.NotNil(t, g.Operation("inner/Placeholder"))
	assert.Equal(t, "", g.Operation("inner/Placeholder").Device())
	assert.NotNil(t, tf.DefaultGraph().Operation("outer/Placeholder"))
}

func TestWithColocationAndDevice(t *testing.T) {
	ResetDefaultScope()
	x, err := Placeholder(Current().WithOpName("x"), tf.String)
	require.NoError(t, err)
	err = WithColocation([]*tf.Operation{x.Op}, func(*Scope) error {
		return WithDeviceScope("/device:CPU:0", func(*Scope) error {
			y, err := DecodeJSONExample(Current(), x)
			if err != nil {
				return err
			}
			assert.Equal(t, "/device:CPU:0", y.Op.Device())
			class, err := y.Op.Attr("_class")
			assert.NoError(t, err)
			assert.Equal(t, []string{"loc:@x"}, class)
			return nil
		})
	})
	require.NoError(t, err)
}

func TestEnterExitOrder(t *testing.T) {
	root := ResetDefaultScope()
	a := NewScope()
	b := NewScope()
	exitA := Enter(a)
	exitB := Enter(b)
	assert.Same(t, b, Current())
	assert.Panics(t, exitA, "exiting out of order")
	exitB()
	exitB() // no-op
	assert.Same(t, a, Current())
	// the first call of exitA panicked, so it can't be used again
	exitA()
	assert.Same(t, a, Current())

	// clean up the stack for the other tests
	ambient.Lock()
	ambient.stack.Clear()
	ambient.Unlock()
	assert.Same(t, root, Current())
}
