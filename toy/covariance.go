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

package toy

import (
	"math"

	"github.com/fentec-project/gotoy/data"
	"github.com/pkg/errors"
)

// symmetryTol is the relative tolerance used when checking that a
// full covariance matrix is symmetric.
const symmetryTol = 1e-12

// Covariance is the covariance argument of NewNormal. It is either
// a Diagonal or a Full matrix; both are resolved to a dense d x d
// matrix when the distribution is constructed.
type Covariance interface {
	resolve(d int) (data.Matrix, error)
}

// Diagonal holds the variances of a covariance matrix whose
// off-diagonal elements are zero.
type Diagonal []float64

// Full is a complete covariance matrix given row by row.
type Full [][]float64

func (c Diagonal) resolve(d int) (data.Matrix, error) {
	if len(c) != d {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"diagonal covariance has length %d, expected %d", len(c), d)
	}
	for i, v := range c {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrInvalidArgument,
				"variance %d must be positive and finite, got %v", i, v)
		}
	}

	return data.NewDiagMatrix(data.Vector(c)), nil
}

func (c Full) resolve(d int) (data.Matrix, error) {
	if len(c) != d {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"covariance has %d rows, expected %d", len(c), d)
	}

	m := make(data.Matrix, d)
	for i, row := range c {
		if len(row) != d {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"covariance row %d has %d columns, expected %d", i, len(row), d)
		}
		m[i] = data.NewVector(row)
		if !m[i].IsFinite() {
			return nil, errors.Wrapf(ErrInvalidArgument,
				"covariance row %d is not finite", i)
		}
	}
	if !m.IsSymmetric(symmetryTol) {
		return nil, errors.Wrap(ErrInvalidArgument, "covariance must be symmetric")
	}

	return m, nil
}
