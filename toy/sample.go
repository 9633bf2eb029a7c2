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
	"math/rand/v2"

	"github.com/fentec-project/gotoy/data"
	"github.com/fentec-project/gotoy/sample"
	"github.com/pkg/errors"
)

// Sample draws count independent samples from the distribution and
// returns them as an Array of shape (count, NParameters()).
//
// All randomness comes from src, which is advanced by the call. A
// source must not be shared between goroutines calling Sample
// concurrently unless the caller synchronizes access to it.
//
// It returns ErrInvalidArgument if count < 1 or src is nil.
func (n *Normal) Sample(count int, src rand.Source) (*data.Array, error) {
	if count < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"number of samples must be at least 1, got %d", count)
	}
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "random source is missing")
	}

	d := n.NParameters()
	z := sample.NewStdNormal(src)
	values := make([]float64, 0, count*d)
	for i := 0; i < count; i++ {
		// x = mean + L * z with z ~ N(0, I)
		lz, _ := n.lower.MulVec(data.NewRandomVector(d, z))
		x, _ := lz.Add(n.mean)
		values = append(values, x...)
	}

	return data.NewArray(values, count, d)
}
