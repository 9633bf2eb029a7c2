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

// Normal is a multivariate Gaussian log-density with a given mean and
// covariance. It is immutable once constructed and safe for concurrent
// use; everything derived from the covariance is computed up front.
type Normal struct {
	mean data.Vector
	cov  data.Matrix
	// precision is the inverse of cov
	precision data.Matrix
	// lower is the Cholesky factor of cov, used for sampling
	lower     data.Matrix
	logDetCov float64
	// norm is -0.5*(d*log(2*pi) + logDetCov)
	norm float64
}

// NewNormal returns a Normal with the given mean and covariance.
// The number of parameters is len(mean).
//
// It returns ErrShapeMismatch if the covariance does not describe a
// len(mean) x len(mean) matrix, ErrInvalidArgument if any element is
// not finite, a variance is not positive or a full covariance is not
// symmetric, and ErrNotPositiveDefinite if the covariance cannot be
// factorized. An asymmetric full covariance is never repaired by
// reading only one of its triangles.
func NewNormal(mean []float64, cov Covariance) (*Normal, error) {
	d := len(mean)
	if d == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "mean must not be empty")
	}
	mu := data.NewVector(mean)
	if !mu.IsFinite() {
		return nil, errors.Wrap(ErrInvalidArgument, "mean must be finite")
	}
	if cov == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "covariance is missing")
	}

	sigma, err := cov.resolve(d)
	if err != nil {
		return nil, err
	}
	chol, err := data.Factorize(sigma)
	if err != nil {
		return nil, errors.Wrap(err, "invalid covariance")
	}
	precision, err := chol.Inverse()
	if err != nil {
		return nil, errors.Wrap(err, "invalid covariance")
	}

	logDet := chol.LogDet()

	return &Normal{
		mean:      mu,
		cov:       sigma,
		precision: precision,
		lower:     chol.Lower(),
		logDetCov: logDet,
		norm:      -0.5 * (float64(d)*math.Log(2*math.Pi) + logDet),
	}, nil
}

// NParameters returns the dimension of the distribution.
func (n *Normal) NParameters() int {
	return len(n.mean)
}

// Mean returns a copy of the mean vector.
func (n *Normal) Mean() data.Vector {
	return n.mean.Copy()
}

// Covariance returns a copy of the dense covariance matrix.
func (n *Normal) Covariance() data.Matrix {
	return n.cov.Copy()
}

// Precision returns a copy of the inverse of the covariance matrix.
func (n *Normal) Precision() data.Matrix {
	return n.precision.Copy()
}

// LogDetCovariance returns the natural logarithm of the determinant
// of the covariance matrix.
func (n *Normal) LogDetCovariance() float64 {
	return n.logDetCov
}

// Evaluate returns the log-density at x.
// It returns ErrShapeMismatch if len(x) differs from NParameters().
func (n *Normal) Evaluate(x []float64) (float64, error) {
	l, _, err := n.evaluate(x)

	return l, err
}

// EvaluateS1 returns the log-density at x together with its gradient
// with respect to x, which is -precision * (x - mean).
// It returns ErrShapeMismatch if len(x) differs from NParameters().
func (n *Normal) EvaluateS1(x []float64) (float64, data.Vector, error) {
	l, pd, err := n.evaluate(x)
	if err != nil {
		return 0, nil, err
	}

	return l, pd.MulScalar(-1), nil
}

// evaluate returns the log-density at x and precision * (x - mean).
func (n *Normal) evaluate(x []float64) (float64, data.Vector, error) {
	v := data.Vector(x)
	if err := v.CheckLen(n.NParameters()); err != nil {
		return 0, nil, errors.Wrap(err, "cannot evaluate log-density")
	}

	diff, _ := v.Sub(n.mean)
	pd, _ := n.precision.MulVec(diff)
	q, _ := pd.Dot(diff)

	return n.norm - 0.5*q, pd, nil
}
