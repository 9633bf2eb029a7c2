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

// Package toy implements synthetic log-densities with closed-form
// properties, used to check the output of sampling and optimization
// algorithms against ground truth.
//
// Normal is a multivariate Gaussian target. Its log-density, gradient
// and moments are known exactly, it can draw samples from itself and
// it can score a sample set by the KL divergence between the Gaussian
// fitted to the samples and itself.
package toy

import (
	"math/rand/v2"

	"github.com/fentec-project/gotoy/data"
	"github.com/fentec-project/gotoy/internal"
)

// Errors returned by this package. Match them with errors.Is.
var (
	ErrShapeMismatch       = internal.ErrShapeMismatch
	ErrInvalidArgument     = internal.ErrInvalidArgument
	ErrNotPositiveDefinite = internal.ErrNotPositiveDefinite
)

// LogPDF is a log-density that can be evaluated at a parameter vector.
type LogPDF interface {
	Evaluate(x []float64) (float64, error)
	NParameters() int
}

// LogPDFS1 is a LogPDF that also returns its gradient.
type LogPDFS1 interface {
	LogPDF
	EvaluateS1(x []float64) (float64, data.Vector, error)
}

// Target is a LogPDFS1 that can draw samples from itself and score
// sample sets against itself.
type Target interface {
	LogPDFS1
	Sample(n int, src rand.Source) (*data.Array, error)
	KLDivergence(samples *data.Array) (float64, error)
}

var _ Target = (*Normal)(nil)
