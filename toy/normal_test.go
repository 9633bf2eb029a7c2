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

package toy_test

import (
	"math"
	"testing"

	"github.com/fentec-project/gotoy/data"
	"github.com/fentec-project/gotoy/toy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormal(t *testing.T) {
	x := []float64{1, 2, 3}

	f, err := toy.NewNormal(x, toy.Diagonal{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, len(x), f.NParameters())
	_, err = f.Evaluate(x)
	assert.NoError(t, err)

	f, err = toy.NewNormal(x, toy.Full{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, len(x), f.NParameters())
	_, err = f.Evaluate(x)
	assert.NoError(t, err)
}

func TestNormal_ShapeErrors(t *testing.T) {
	_, err := toy.NewNormal([]float64{1, 2, 3}, toy.Full{{1, 2}, {3, 4}})
	assert.ErrorIs(t, err, toy.ErrShapeMismatch)

	_, err = toy.NewNormal([]float64{1, 2, 3}, toy.Diagonal{1, 2, 3, 4})
	assert.ErrorIs(t, err, toy.ErrShapeMismatch)

	_, err = toy.NewNormal([]float64{1, 2}, toy.Full{{1, 0}, {0}})
	assert.ErrorIs(t, err, toy.ErrShapeMismatch)

	_, err = toy.NewNormal([]float64{1, 2}, toy.Full{{1, 0, 0}, {0, 1, 0}})
	assert.ErrorIs(t, err, toy.ErrShapeMismatch)

	_, err = toy.NewNormal(nil, toy.Diagonal{})
	assert.ErrorIs(t, err, toy.ErrShapeMismatch)
}

func TestNormal_InvalidCovariance(t *testing.T) {
	_, err := toy.NewNormal([]float64{0, 0}, toy.Diagonal{1, 0})
	assert.ErrorIs(t, err, toy.ErrInvalidArgument)

	_, err = toy.NewNormal([]float64{0, 0}, toy.Diagonal{1, math.Inf(1)})
	assert.ErrorIs(t, err, toy.ErrInvalidArgument)

	_, err = toy.NewNormal([]float64{-5, 3}, toy.Full{{3, -0.5}, {0.5, 2}})
	assert.ErrorIs(t, err, toy.ErrInvalidArgument)

	_, err = toy.NewNormal([]float64{math.NaN(), 0}, toy.Diagonal{1, 1})
	assert.ErrorIs(t, err, toy.ErrInvalidArgument)

	_, err = toy.NewNormal([]float64{0, 0}, nil)
	assert.ErrorIs(t, err, toy.ErrInvalidArgument)

	_, err = toy.NewNormal([]float64{0, 0}, toy.Full{{1, 2}, {2, 1}})
	assert.ErrorIs(t, err, toy.ErrNotPositiveDefinite)
}

func TestNormal_Accessors(t *testing.T) {
	f, err := toy.NewNormal([]float64{1, -1}, toy.Diagonal{2, 4})
	require.NoError(t, err)

	assert.Equal(t, data.Vector{1, -1}, f.Mean())
	assert.Equal(t, data.Matrix{{2, 0}, {0, 4}}, f.Covariance())
	assert.InDelta(t, math.Log(8), f.LogDetCovariance(), 1e-12)

	assert.Equal(t, data.Matrix{{0.5, 0}, {0, 0.25}}, f.Precision())

	// returned values are copies
	m := f.Mean()
	m[0] = 100
	assert.Equal(t, data.Vector{1, -1}, f.Mean())
}

func TestNormal_Sensitivity(t *testing.T) {
	// 1d normal
	f1, err := toy.NewNormal([]float64{0}, toy.Diagonal{1})
	require.NoError(t, err)
	L, dL, err := f1.EvaluateS1([]float64{2})
	require.NoError(t, err)
	assert.InDelta(t, -2.918938533204673, L, 1e-12)
	assert.Equal(t, -2.0, dL[0])

	// 2d normal
	f2, err := toy.NewNormal([]float64{0, 0}, toy.Full{{1, 0}, {0, 1}})
	require.NoError(t, err)
	L, dL, err = f2.EvaluateS1([]float64{2, 1})
	require.NoError(t, err)
	assert.InDelta(t, -4.337877066409345, L, 1e-12)
	assert.Equal(t, data.Vector{-2, -1}, dL)

	// 3d normal
	f3, err := toy.NewNormal([]float64{1, 2, 3}, toy.Full{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}})
	require.NoError(t, err)
	L, dL, err = f3.EvaluateS1([]float64{0.5, -5, -3})
	require.NoError(t, err)
	assert.InDelta(t, -25.10903637045394, L, 1e-12)
	assert.Equal(t, data.Vector{0.25, 3.5, 3.0}, dL)

	// the plain evaluation agrees with the sensitivity
	l, err := f3.Evaluate([]float64{0.5, -5, -3})
	require.NoError(t, err)
	assert.Equal(t, L, l)
}

func TestNormal_GradientFiniteDifference(t *testing.T) {
	f, err := toy.NewNormal([]float64{-5, 3}, toy.Full{{3, 0.5}, {0.5, 2}})
	require.NoError(t, err)

	x := []float64{-2.5, 1.5}
	_, dL, err := f.EvaluateS1(x)
	require.NoError(t, err)

	h := 1e-5
	for i := range x {
		xp := append([]float64(nil), x...)
		xm := append([]float64(nil), x...)
		xp[i] += h
		xm[i] -= h
		lp, err := f.Evaluate(xp)
		require.NoError(t, err)
		lm, err := f.Evaluate(xm)
		require.NoError(t, err)
		assert.InDelta(t, (lp-lm)/(2*h), dL[i], 1e-6)
	}
}

func TestNormal_EvaluateShapeMismatch(t *testing.T) {
	f, err := toy.NewNormal([]float64{0, 0}, toy.Diagonal{1, 1})
	require.NoError(t, err)

	_, err = f.Evaluate([]float64{1})
	assert.ErrorIs(t, err, toy.ErrShapeMismatch)
	_, _, err = f.EvaluateS1([]float64{1, 2, 3})
	assert.ErrorIs(t, err, toy.ErrShapeMismatch)
}

func TestNormal_AsymmetricCovariance(t *testing.T) {
	// only the symmetric form of this covariance is accepted
	_, err := toy.NewNormal([]float64{-5, 3}, toy.Full{{3, -0.5}, {0.5, 2}})
	assert.ErrorIs(t, err, toy.ErrInvalidArgument)

	f, err := toy.NewNormal([]float64{-5, 3}, toy.Full{{3, 0.5}, {0.5, 2}})
	require.NoError(t, err)
	_, _, err = f.EvaluateS1([]float64{-2.5, 1.5})
	assert.NoError(t, err)
}
