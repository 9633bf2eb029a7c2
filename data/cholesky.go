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
	"math"

	"github.com/fentec-project/gotoy/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Cholesky holds the factorization A = L * L^T of a symmetric
// positive-definite matrix A. It is immutable once created.
//
// Diagonal matrices are factorized elementwise, so their inverse,
// log-determinant and factor are exact up to a single rounding per
// element.
type Cholesky struct {
	n int
	// diag holds the diagonal of A when A is diagonal, nil otherwise
	diag Vector
	chol mat.Cholesky
}

// Factorize computes the Cholesky factorization of the symmetric
// positive-definite matrix m. Only the upper triangle of m is read,
// so callers that care about symmetry should check it first.
//
// It returns ErrShapeMismatch if m is empty or not square and
// ErrNotPositiveDefinite if the factorization fails.
func Factorize(m Matrix) (*Cholesky, error) {
	sym, err := m.Sym()
	if err != nil {
		return nil, err
	}

	c := &Cholesky{n: m.Rows()}
	if diag, ok := m.Diag(); ok {
		for i, v := range diag {
			if !(v > 0) {
				return nil, errors.Wrapf(internal.ErrNotPositiveDefinite,
					"diagonal element %d is %v", i, v)
			}
		}
		c.diag = diag

		return c, nil
	}

	if ok := c.chol.Factorize(sym); !ok {
		return nil, errors.Wrapf(internal.ErrNotPositiveDefinite,
			"cannot factorize %dx%d matrix", c.n, c.n)
	}

	return c, nil
}

// LogDet returns the natural logarithm of the determinant of the
// factorized matrix.
func (c *Cholesky) LogDet() float64 {
	if c.diag != nil {
		logDet := 0.0
		for _, v := range c.diag {
			logDet += math.Log(v)
		}
		return logDet
	}

	return c.chol.LogDet()
}

// Inverse returns the inverse of the factorized matrix.
// An error wrapping ErrNotPositiveDefinite is returned when the
// matrix is too ill-conditioned for the inverse to be trusted.
func (c *Cholesky) Inverse() (Matrix, error) {
	if c.diag != nil {
		return NewDiagMatrix(c.diag.reciprocal()), nil
	}

	var inv mat.SymDense
	if err := c.chol.InverseTo(&inv); err != nil {
		return nil, errors.Wrapf(internal.ErrNotPositiveDefinite,
			"cannot invert matrix: %v", err)
	}

	return NewMatrixFromGonum(&inv), nil
}

// Lower returns the lower triangular factor L.
func (c *Cholesky) Lower() Matrix {
	if c.diag != nil {
		l := make(Vector, len(c.diag))
		for i, v := range c.diag {
			l[i] = math.Sqrt(v)
		}
		return NewDiagMatrix(l)
	}

	var l mat.TriDense
	c.chol.LTo(&l)

	return NewMatrixFromGonum(&l)
}
