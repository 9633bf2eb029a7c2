/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"github.com/fentec-project/gotoy/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Array is an n-dimensional array of float64 values stored in
// row-major order. A set of n samples from a d-dimensional
// distribution is an Array of shape (n, d).
type Array struct {
	shape  []int
	values []float64
}

// NewArray returns a new Array of the given shape holding a copy of
// values. It returns ErrShapeMismatch if the shape is empty, has an
// extent smaller than 1, or does not account for exactly len(values)
// elements.
func NewArray(values []float64, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		return nil, errors.Wrap(internal.ErrShapeMismatch, "array shape must not be empty")
	}

	size := 1
	for _, s := range shape {
		if s < 1 {
			return nil, errors.Wrapf(internal.ErrShapeMismatch, "invalid array shape %v", shape)
		}
		size *= s
	}
	if size != len(values) {
		return nil, errors.Wrapf(internal.ErrShapeMismatch,
			"shape %v needs %d values, got %d", shape, size, len(values))
	}

	a := &Array{
		shape:  append([]int(nil), shape...),
		values: make([]float64, len(values)),
	}
	copy(a.values, values)

	return a, nil
}

// NewConstantArray returns a new Array of the given shape with all
// elements set to constant c.
func NewConstantArray(c float64, shape ...int) (*Array, error) {
	size := 1
	for _, s := range shape {
		size *= s
	}
	if size < 1 {
		size = 0
	}

	return NewArray(NewConstantVector(size, c), shape...)
}

// Shape returns the extent of each dimension of a.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Rank returns the number of dimensions of a.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Len returns the total number of elements in a.
func (a *Array) Len() int {
	return len(a.values)
}

// Values returns a copy of the elements of a in row-major order.
func (a *Array) Values() []float64 {
	return append([]float64(nil), a.values...)
}

// Dense returns the rank-2 array a as a gonum dense matrix. The
// returned matrix shares storage with a and must not be modified.
func (a *Array) Dense() (*mat.Dense, error) {
	if err := a.checkRank2(); err != nil {
		return nil, err
	}

	return mat.NewDense(a.shape[0], a.shape[1], a.values), nil
}

func (a *Array) checkRank2() error {
	if len(a.shape) != 2 {
		return errors.Wrapf(internal.ErrShapeMismatch,
			"expected an array of rank 2, got rank %d", len(a.shape))
	}

	return nil
}
