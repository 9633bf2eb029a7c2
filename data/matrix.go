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

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance holding copies of them.
// It returns ErrShapeMismatch if not all the vectors have the same
// number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.Wrap(internal.ErrShapeMismatch,
				"all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	res := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		res[i] = NewConstantVector(cols, c)
	}

	return res
}

// NewDiagMatrix returns a square Matrix with the elements of
// diag on its diagonal and zeros elsewhere.
func NewDiagMatrix(diag Vector) Matrix {
	res := NewConstantMatrix(len(diag), len(diag), 0)
	for i, d := range diag {
		res[i][i] = d
	}

	return res
}

// NewIdentityMatrix returns the n x n identity matrix.
func NewIdentityMatrix(n int) Matrix {
	return NewDiagMatrix(NewConstantVector(n, 1))
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// IsSquare reports whether m has as many rows as columns
// and none of its rows is ragged.
func (m Matrix) IsSquare() bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether m is square and |m[i][j] - m[j][i]| is
// within tol scaled by the larger magnitude of the two entries.
func (m Matrix) IsSymmetric(tol float64) bool {
	if !m.IsSquare() {
		return false
	}
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			a, b := m[i][j], m[j][i]
			scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
			if math.Abs(a-b) > tol*scale {
				return false
			}
		}
	}

	return true
}

// Diag returns the diagonal of m and true if m is square and all of
// its off-diagonal elements are zero.
func (m Matrix) Diag() (Vector, bool) {
	if !m.IsSquare() {
		return nil, false
	}

	diag := make(Vector, len(m))
	for i, row := range m {
		for j, v := range row {
			if i != j && v != 0 {
				return nil, false
			}
		}
		diag[i] = row[i]
	}

	return diag, true
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i < 0 || i >= m.Cols() {
		return nil, errors.Wrapf(internal.ErrShapeMismatch,
			"column index %d exceeds matrix dimensions", i)
	}

	column := make(Vector, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return column, nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make(Matrix, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	return transposed
}

// Copy returns a deep copy of m.
func (m Matrix) Copy() Matrix {
	res := make(Matrix, len(m))
	for i, v := range m {
		res[i] = v.Copy()
	}

	return res
}

// Mul multiplies matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if the number of columns of m differs from the
// number of rows of other.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, errors.Wrap(internal.ErrShapeMismatch, "cannot multiply matrices")
	}

	otherT := other.Transpose()
	prod := make(Matrix, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		prod[i] = make(Vector, other.Cols())
		for j := 0; j < other.Cols(); j++ {
			prod[i][j], _ = m[i].Dot(otherT[j])
		}
	}

	return prod, nil
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if the number of columns of m differs from the number
// of elements of v.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, errors.Wrapf(internal.ErrShapeMismatch,
			"cannot multiply %dx%d matrix by a vector of length %d", m.Rows(), m.Cols(), len(v))
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		res[i], _ = row.Dot(v)
	}

	return res, nil
}

// MulXMatY calculates the function x^T * m * y, where x and y are
// vectors.
func (m Matrix) MulXMatY(x, y Vector) (float64, error) {
	t, err := m.MulVec(y)
	if err != nil {
		return 0, err
	}

	return t.Dot(x)
}

// Trace returns the sum of the diagonal elements of the square matrix m.
func (m Matrix) Trace() (float64, error) {
	if !m.IsSquare() {
		return 0, errors.Wrap(internal.ErrShapeMismatch, "trace of a non-square matrix")
	}

	tr := 0.0
	for i := range m {
		tr += m[i][i]
	}

	return tr, nil
}

// Sym returns a copy of the symmetric matrix m as a gonum symmetric
// matrix. Only the upper triangle of m is read.
func (m Matrix) Sym() (*mat.SymDense, error) {
	if !m.IsSquare() || m.Rows() == 0 {
		return nil, errors.Wrapf(internal.ErrShapeMismatch,
			"expected a non-empty square matrix, got %dx%d", m.Rows(), m.Cols())
	}

	n := m.Rows()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, m[i][j])
		}
	}

	return s, nil
}

// NewMatrixFromGonum copies a gonum matrix into a new Matrix.
func NewMatrixFromGonum(a mat.Matrix) Matrix {
	r, c := a.Dims()
	res := make(Matrix, r)
	for i := 0; i < r; i++ {
		res[i] = make(Vector, c)
		for j := 0; j < c; j++ {
			res[i][j] = a.At(i, j)
		}
	}

	return res
}
