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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fentec-project/gotoy/internal"
	"github.com/fentec-project/gotoy/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance holding a copy
// of the provided coordinates.
func NewVector(coordinates []float64) Vector {
	vec := make(Vector, len(coordinates))
	copy(vec, coordinates)

	return vec
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
func NewRandomVector(len int, sampler sample.Sampler) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample()
	}

	return vec
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make(Vector, len)
	for i := range vec {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	return NewVector(v)
}

// CheckLen returns ErrShapeMismatch if v does not hold
// exactly n elements.
func (v Vector) CheckLen(n int) error {
	if len(v) != n {
		return errors.Wrapf(internal.ErrShapeMismatch,
			"expected vector of length %d, got %d", n, len(v))
	}

	return nil
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := v.Copy()
	floats.Scale(x, res)

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// Error is returned if v and other have different lengths.
func (v Vector) Add(other Vector) (Vector, error) {
	if err := other.CheckLen(len(v)); err != nil {
		return nil, err
	}

	return floats.AddTo(make(Vector, len(v)), v, other), nil
}

// Sub subtracts other from v.
// The result is returned in a new Vector.
// Error is returned if v and other have different lengths.
func (v Vector) Sub(other Vector) (Vector, error) {
	if err := other.CheckLen(len(v)); err != nil {
		return nil, err
	}

	return floats.SubTo(make(Vector, len(v)), v, other), nil
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if err := other.CheckLen(len(v)); err != nil {
		return 0, err
	}

	return floats.Dot(v, other), nil
}

func (v Vector) reciprocal() Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = 1 / vi
	}

	return res
}

// IsFinite reports whether all elements of v are neither NaN nor ±Inf.
func (v Vector) IsFinite() bool {
	for _, vi := range v {
		if math.IsNaN(vi) || math.IsInf(vi, 0) {
			return false
		}
	}

	return true
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, vi := range v {
		parts[i] = strconv.FormatFloat(vi, 'g', -1, 64)
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
