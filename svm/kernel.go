// SPDX-License-Identifier: MIT

package svm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// kernelFunc evaluates K(u, v) for the configured kernel.
func (c Config) kernelFunc() func(u, v []float64) float64 {
	if c.Kernel == RBF {
		gamma := c.Gamma
		return func(u, v []float64) float64 {
			var d2 float64
			for i := range u {
				d := u[i] - v[i]
				d2 += d * d
			}
			return math.Exp(-gamma * d2)
		}
	}

	return floats.Dot
}
