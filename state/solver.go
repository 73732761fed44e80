// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements the pseudo-steady energy balance at the
// sublimation front. Given the dried-cake thickness and the instantaneous
// controls, the front temperature is the root of
//
//   Qsub(Tsub) - Qsh(Tsub) = 0
//
// where Qsub is the heat consumed by sublimation through the cake and Qsh
// the heat supplied by the shelf through the vial bottom.
package state

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/LyoHUB/golyo/mdl"
)

// State holds the derived quantities at one instant. These are pure
// functions of (thickness, controls) and are never integrated.
type State struct {
	Tsub float64 // sublimation front temperature [°C]
	Tbot float64 // vial bottom temperature [°C]
	Dmdt float64 // per-vial sublimation rate [kg/hr]
	Flux float64 // sublimation flux [kg/hr/m²]
	Psub float64 // front vapor pressure [Torr]
	Kv   float64 // vial heat transfer coefficient [cal/s/K/cm²]
	Rp   float64 // cake resistance [cm²*hr*Torr/g]
}

// Solver solves the front energy balance for a fixed vial/product/heat
// transfer configuration. Solver carries no mutable solve state: the warm
// start guess is threaded explicitly by the caller, keeping Solve reentrant.
type Solver struct {
	Vial mdl.Vial
	Prod mdl.Product
	Ht   mdl.HeatTransfer
	Lpr0 float64 // initial fill height [cm]
}

// Init initialises this structure
func (o *Solver) Init(v mdl.Vial, p mdl.Product, h mdl.HeatTransfer) {
	o.Vial = v
	o.Prod = p
	o.Ht = h
	o.Lpr0 = p.FillHeight(v)
}

// Solve computes the state at cake thickness Lck [cm] under chamber
// pressure Pch [Torr] and shelf temperature Tsh [°C]. guess seeds the root
// search; use the previous step's front temperature, or Tsh on first call.
func (o *Solver) Solve(Lck, Pch, Tsh, guess float64) (s State, err error) {

	// reject degenerate inputs before attempting the root-find
	if Lck < 0 || Lck > o.Lpr0*(1.0+1e-9) {
		return s, chk.Err("state: cake thickness out of range: Lck=%g, Lpr0=%g", Lck, o.Lpr0)
	}
	if Pch <= 0 {
		return s, chk.Err("state: chamber pressure must be positive: Pch=%g", Pch)
	}
	Lck = math.Min(Lck, o.Lpr0)
	s.Kv = o.Ht.Kv(Pch)
	s.Rp = o.Prod.Rp(Lck)
	if s.Rp <= 0 {
		return s, chk.Err("state: non-positive cake resistance: Rp=%g at Lck=%g", s.Rp, Lck)
	}

	// residual of the pseudo-steady heat balance
	ffcn := func(T float64) (float64, error) {
		return o.balance(T, Lck, Pch, Tsh, s.Kv, s.Rp), nil
	}

	// bracket around the warm start, then solve with Brent's method
	xa, xb, err := bracket(func(T float64) float64 {
		return o.balance(T, Lck, Pch, Tsh, s.Kv, s.Rp)
	}, guess)
	if err != nil {
		return s, chk.Err("state: front temperature root not bracketed (Lck=%g, Pch=%g, Tsh=%g, guess=%g): %v", Lck, Pch, Tsh, guess, err)
	}
	var brent num.Brent
	brent.Init(ffcn)
	s.Tsub, err = brent.Solve(xa, xb, true)
	if err != nil {
		return s, chk.Err("state: front temperature root-find failed (Lck=%g, Pch=%g, Tsh=%g, guess=%g): %v", Lck, Pch, Tsh, guess, err)
	}

	o.finish(&s, Lck, Pch)
	return
}

// balance computes Qsub - Qsh [cal/s] at trial front temperature T
func (o *Solver) balance(T, Lck, Pch, Tsh, Kv, Rp float64) float64 {
	psub := mdl.Psub(T)
	qsub := mdl.DHs * (psub - Pch) * o.Vial.Ap / Rp / mdl.HrToS
	tbot := T + qsub/o.Vial.Ap/mdl.KIce*(o.Lpr0-Lck)
	qsh := Kv * o.Vial.Av * (Tsh - tbot)
	return qsub - qsh
}

// finish derives rate, flux and bottom temperature once Tsub is known
func (o *Solver) finish(s *State, Lck, Pch float64) {
	s.Psub = mdl.Psub(s.Tsub)
	s.Tbot = s.Tsub + (o.Lpr0-Lck)*(s.Psub-Pch)*mdl.DHs/s.Rp/mdl.HrToS/mdl.KIce
	s.Dmdt = o.Vial.Ap / s.Rp / mdl.KgToG * (s.Psub - Pch)
	if s.Dmdt < 0 {
		// driving force points the wrong way: legitimate no-sublimation
		// regime, not an input error
		s.Dmdt = 0
	}
	s.Flux = s.Dmdt / (o.Vial.Ap * mdl.CmToM * mdl.CmToM)
}

// bracket expands an interval around guess until f changes sign
func bracket(f func(float64) float64, guess float64) (xa, xb float64, err error) {
	const (
		tmin = -120.0 // [°C]
		tmax = 150.0  // [°C]
	)
	h := 2.0
	xa, xb = guess-h, guess+h
	fa, fb := f(xa), f(xb)
	for i := 0; i < 60; i++ {
		if fa*fb <= 0 {
			return
		}
		h *= 1.6
		xa = math.Max(xa-h, tmin)
		xb = math.Min(xb+h, tmax)
		fa, fb = f(xa), f(xb)
		if xa == tmin && xb == tmax && fa*fb > 0 {
			break
		}
	}
	return 0, 0, chk.Err("no sign change within [%g,%g]", tmin, tmax)
}
