// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"math"

	"github.com/cpmech/gosl/num"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/mdl"
	"github.com/LyoHUB/golyo/sched"
	"github.com/LyoHUB/golyo/state"
)

// TshCalc optimizes the shelf temperature at each step while the chamber
// pressure follows its own schedule unmodified. The sublimation rate grows
// monotonically with shelf temperature, so the per-step program reduces to
// finding the highest shelf temperature at which neither the critical
// product temperature nor the equipment capability is violated.
type TshCalc struct {

	// configuration
	Sol state.Solver    // front energy balance solver
	Eq  mdl.Equipment   // equipment capability
	Pch *sched.Schedule // chamber pressure schedule [Torr]

	// bounds on the free control
	TshMin float64 // [°C]
	TshMax float64 // [°C]

	// options
	Dt   float64 // time step [hr]
	TMax float64 // maximum-time safety bound [hr]
}

// SetDefaults sets default options
func (o *TshCalc) SetDefaults() {
	o.TshMin = -45
	o.TshMax = 120
	o.Dt = 0.01
	o.TMax = 14 * 24
}

// Run accumulates optimized steps until fully dried or a budget runs out
func (o *TshCalc) Run() (*drying.Trajectory, error) {
	return accumulate(&o.Sol, o, o.Dt, o.TMax)
}

func (o *TshCalc) expired(t float64) bool {
	return o.Pch.Expired(t)
}

func (o *TshCalc) step(t, lck float64, w *warm) (pch, tsh float64, s state.State, err error) {

	pch = o.Pch.F(t)
	tcrit := o.Sol.Prod.TprCrit

	// warm-started front temperature guess threaded through the solves
	guess := tcrit
	if w.ok {
		guess = w.tsub
	}
	eval := func(T float64) (state.State, error) {
		sv, e := o.Sol.Solve(lck, pch, T, guess)
		if e == nil {
			guess = sv.Tsub
		}
		return sv, e
	}

	// start at the upper bound and pull back to active constraints
	cand := o.TshMax
	sc, err := eval(cand)
	if err != nil {
		return
	}

	// critical product temperature activation
	if sc.Tbot > tcrit+tolTbot {
		smin, e := eval(o.TshMin)
		if e != nil {
			return pch, tsh, s, e
		}
		if smin.Tbot > tcrit+tolTbot {
			return pch, tsh, s, &InfeasibleError{T: t, Lck: lck, Msg: "product temperature exceeds critical limit even at the lowest shelf temperature"}
		}
		var brent num.Brent
		brent.Init(func(T float64) (float64, error) {
			sv, e := eval(T)
			if e != nil {
				return 0, e
			}
			return sv.Tbot - tcrit, nil
		})
		x, e := brent.Solve(o.TshMin, o.TshMax, true)
		if e != nil {
			return pch, tsh, s, e
		}
		cand = math.Min(cand, x)
		if sc, err = eval(cand); err != nil {
			return
		}
	}

	// equipment capability activation
	if o.Eq.Margin(pch, sc.Dmdt) < -tolMargin {
		smin, e := eval(o.TshMin)
		if e != nil {
			return pch, tsh, s, e
		}
		if o.Eq.Margin(pch, smin.Dmdt) < -tolMargin {
			return pch, tsh, s, &InfeasibleError{T: t, Lck: lck, Msg: "equipment capability exceeded even at the lowest shelf temperature"}
		}
		var brent num.Brent
		brent.Init(func(T float64) (float64, error) {
			sv, e := eval(T)
			if e != nil {
				return 0, e
			}
			return o.Eq.Margin(pch, sv.Dmdt), nil
		})
		x, e := brent.Solve(o.TshMin, cand, true)
		if e != nil {
			return pch, tsh, s, e
		}
		cand = math.Min(cand, x)
		if sc, err = eval(cand); err != nil {
			return
		}
	}

	if !feasible(o.Eq, tcrit, pch, sc) {
		return pch, tsh, s, &InfeasibleError{T: t, Lck: lck, Msg: "no feasible shelf temperature within bounds"}
	}
	return pch, cand, sc, nil
}
