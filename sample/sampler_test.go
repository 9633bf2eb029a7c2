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

package sample_test

import (
	"math/rand/v2"
	"testing"

	"github.com/fentec-project/gotoy/sample"
	"github.com/stretchr/testify/assert"
)

func mean(vec []float64) float64 {
	sum := 0.0
	for _, v := range vec {
		sum += v
	}
	return sum / float64(len(vec))
}

func variance(vec []float64) float64 {
	m := mean(vec)
	sum := 0.0
	for _, v := range vec {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(vec)-1)
}

func draw(s sample.Sampler, n int) []float64 {
	vec := make([]float64, n)
	for i := range vec {
		vec[i] = s.Sample()
	}
	return vec
}

func TestSample_Normal(t *testing.T) {
	c := sample.NewNormal(3, 10, rand.NewPCG(1, 2))
	vec := draw(c, 10000)
	me, v := mean(vec), variance(vec)
	// me should be around 3 and v should be around 100
	assert.True(t, me < 3.5, "mean value of the normal distribution is too big")
	assert.True(t, me > 2.5, "mean value of the normal distribution is too small")
	assert.True(t, v < 110, "variance of the normal distribution is too big")
	assert.True(t, v > 90, "variance of the normal distribution is too small")

	c = sample.NewStdNormal(rand.NewPCG(3, 4))
	vec = draw(c, 10000)
	me, v = mean(vec), variance(vec)
	assert.InDelta(t, 0, me, 0.05)
	assert.InDelta(t, 1, v, 0.1)
}

func TestSample_NormalReproducible(t *testing.T) {
	a := draw(sample.NewStdNormal(rand.NewPCG(7, 7)), 100)
	b := draw(sample.NewStdNormal(rand.NewPCG(7, 7)), 100)
	assert.Equal(t, a, b)
}
