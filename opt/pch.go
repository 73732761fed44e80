// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"github.com/cpmech/gosl/num"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/mdl"
	"github.com/LyoHUB/golyo/sched"
	"github.com/LyoHUB/golyo/state"
)

// PchCalc optimizes the chamber pressure at each step while the shelf
// temperature follows its own schedule unmodified. The vapor driving force
// shrinks as pressure rises, so the per-step program reduces to finding
// the lowest pressure the condenser can sustain, then checking the product
// temperature there.
type PchCalc struct {

	// configuration
	Sol state.Solver    // front energy balance solver
	Eq  mdl.Equipment   // equipment capability
	Tsh *sched.Schedule // shelf temperature schedule [°C]

	// bounds on the free control
	PchMin float64 // [Torr]
	PchMax float64 // [Torr]

	// options
	Dt   float64 // time step [hr]
	TMax float64 // maximum-time safety bound [hr]
}

// SetDefaults sets default options
func (o *PchCalc) SetDefaults() {
	o.PchMin = 0.05
	o.PchMax = 1000
	o.Dt = 0.01
	o.TMax = 14 * 24
}

// Run accumulates optimized steps until fully dried or a budget runs out
func (o *PchCalc) Run() (*drying.Trajectory, error) {
	return accumulate(&o.Sol, o, o.Dt, o.TMax)
}

func (o *PchCalc) expired(t float64) bool {
	return o.Tsh.Expired(t)
}

func (o *PchCalc) step(t, lck float64, w *warm) (pch, tsh float64, s state.State, err error) {

	tsh = o.Tsh.F(t)
	tcrit := o.Sol.Prod.TprCrit

	guess := tsh
	if w.ok {
		guess = w.tsub
	}
	eval := func(P float64) (state.State, error) {
		sv, e := o.Sol.Solve(lck, P, tsh, guess)
		if e == nil {
			guess = sv.Tsub
		}
		return sv, e
	}

	// lowest pressure maximizes the driving force; pull up only if the
	// condenser cannot keep pace there
	cand := o.PchMin
	sc, err := eval(cand)
	if err != nil {
		return
	}
	if o.Eq.Margin(cand, sc.Dmdt) < -tolMargin {
		smax, e := eval(o.PchMax)
		if e != nil {
			return pch, tsh, s, e
		}
		if o.Eq.Margin(o.PchMax, smax.Dmdt) < -tolMargin {
			return pch, tsh, s, &InfeasibleError{T: t, Lck: lck, Msg: "equipment capability exceeded over the whole pressure range"}
		}
		var brent num.Brent
		brent.Init(func(P float64) (float64, error) {
			sv, e := eval(P)
			if e != nil {
				return 0, e
			}
			return o.Eq.Margin(P, sv.Dmdt), nil
		})
		x, e := brent.Solve(o.PchMin, o.PchMax, true)
		if e != nil {
			return pch, tsh, s, e
		}
		cand = x
		if sc, err = eval(cand); err != nil {
			return
		}
	}

	// raising the pressure would only heat the product further
	if sc.Tbot > tcrit+tolTbot {
		return pch, tsh, s, &InfeasibleError{T: t, Lck: lck, Msg: "product temperature exceeds critical limit at the lowest sustainable pressure"}
	}
	return cand, tsh, sc, nil
}
