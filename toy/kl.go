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
	"github.com/fentec-project/gotoy/data"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// KLDivergence estimates how far a set of samples is from this
// distribution. The samples are summarized by their empirical mean
// m and unbiased covariance S, and the result is the closed-form
// Kullback-Leibler divergence of N(m, S) from this distribution:
//
//	0.5 * (tr(P*S) + (mu-m)^T * P * (mu-m) - d + log|C| - log|S|)
//
// where mu, C and P are the mean, covariance and precision of n.
// The value approaches zero as the samples converge to n, but is only
// an estimate: for few samples it may be slightly negative.
//
// samples must have shape (count, NParameters()) with count >= 2;
// ErrShapeMismatch is returned for any other rank or trailing extent
// and ErrInvalidArgument for fewer than two samples. A degenerate
// sample covariance yields ErrNotPositiveDefinite.
func (n *Normal) KLDivergence(samples *data.Array) (float64, error) {
	if samples == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "samples are missing")
	}

	d := n.NParameters()
	shape := samples.Shape()
	if len(shape) != 2 {
		return 0, errors.Wrapf(ErrShapeMismatch,
			"samples must have rank 2, got shape %v", shape)
	}
	if shape[1] != d {
		return 0, errors.Wrapf(ErrShapeMismatch,
			"samples must have %d columns, got shape %v", d, shape)
	}
	if shape[0] < 2 {
		return 0, errors.Wrapf(ErrInvalidArgument,
			"at least 2 samples are needed, got %d", shape[0])
	}

	x, err := samples.Dense()
	if err != nil {
		return 0, err
	}

	m := make(data.Vector, d)
	col := make([]float64, shape[0])
	for j := range m {
		m[j] = stat.Mean(mat.Col(col, j, x), nil)
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)
	s := data.NewMatrixFromGonum(&cov)
	chol, err := data.Factorize(s)
	if err != nil {
		return 0, errors.Wrap(err, "degenerate sample covariance")
	}

	ps, _ := n.precision.Mul(s)
	tr, _ := ps.Trace()
	diff, _ := n.mean.Sub(m)
	q, _ := n.precision.MulXMatY(diff, diff)

	return 0.5 * (tr + q - float64(d) + n.logDetCov - chol.LogDet()), nil
}

// Distance is an alias of KLDivergence.
func (n *Normal) Distance(samples *data.Array) (float64, error) {
	return n.KLDivergence(samples)
}
