// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "math"

// Antoine-type law for ice: Psub = pA*exp(-pB/(T+273.15))
const (
	pA = 2.698e10 // [Torr]
	pB = 6144.96  // [K]
)

// Psub computes the equilibrium vapor pressure [Torr] over ice at the
// sublimation front temperature Tsub [°C]
func Psub(Tsub float64) float64 {
	return pA * math.Exp(-pB/(273.15+Tsub))
}

// Tsub computes the sublimation front temperature [°C] corresponding to an
// equilibrium vapor pressure P [Torr]. Inverse of Psub; P must be positive.
func Tsub(P float64) float64 {
	return -pB/math.Log(P/pA) - 273.15
}
