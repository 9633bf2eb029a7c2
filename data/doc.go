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

// Package data defines the dense real-valued vectors, matrices and
// n-dimensional arrays used across the library, together with the
// linear algebra they need.
//
// Matrices are stored row-major as slices of Vector. Heavier numerical
// work (Cholesky factorization, inversion, log-determinants) is
// delegated to gonum.
package data

import "github.com/fentec-project/gotoy/internal"

// Errors returned by this package. Match them with errors.Is.
var (
	ErrShapeMismatch       = internal.ErrShapeMismatch
	ErrInvalidArgument     = internal.ErrInvalidArgument
	ErrNotPositiveDefinite = internal.ErrNotPositiveDefinite
)
