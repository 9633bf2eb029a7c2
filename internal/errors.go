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

package internal

import (
	"errors"
	"fmt"
)

var mismatchStr = "do not match"

// ErrShapeMismatch reports any dimensional inconsistency between
// operands: vector lengths, matrix shapes or sample set shapes.
var ErrShapeMismatch = errors.New(fmt.Sprintf("dimensions %s", mismatchStr))

// ErrInvalidArgument reports a semantically invalid scalar or
// element value, e.g. a non-positive sample count.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotPositiveDefinite is returned when a matrix that should be
// symmetric positive-definite cannot be factorized.
var ErrNotPositiveDefinite = errors.New("matrix is not positive-definite")
