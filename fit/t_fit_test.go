// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/mdl"
	"github.com/LyoHUB/golyo/sched"
	"github.com/LyoHUB/golyo/state"
)

func exampleModels() (v mdl.Vial, p mdl.Product, h mdl.HeatTransfer) {
	v.Init(v.GetPrms(true))
	p.Init(p.GetPrms(true))
	h.Init(h.GetPrms(true))
	return
}

func Test_fitkv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fitkv01. KC from an experimental drying time")

	v, p, h := exampleModels()
	pch := sched.Constant(0.15)
	tsh := sched.Constant(-20)

	// manufacture the "experimental" drying time with a known KC, then
	// recover it starting from a perturbed model
	tExp, err := refDryTime(v, p, h, pch, tsh)
	if err != nil {
		tst.Errorf("reference run failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("experimental drying time = %g hr\n", tExp)
	}

	blind := h
	blind.KC = 1e-4 // wrong starting value; KP and KD assumed known
	kc, err := KvFromDryingTime(v, p, blind, pch, tsh, tExp, 1e-5, 1e-2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "KC recovered", 1e-6, kc, h.KC)
}

func Test_fitkv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fitkv02. bracket miss falls back to the nearer endpoint")

	v, p, h := exampleModels()
	pch := sched.Constant(0.15)
	tsh := sched.Constant(-20)

	// an absurdly short experimental time cannot be matched: drying is
	// faster with larger KC, so the upper endpoint is nearer
	kc, err := KvFromDryingTime(v, p, h, pch, tsh, 0.001, 1e-5, 1e-2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "fallback KC", 1e-15, kc, 1e-2)
}

func Test_fitrp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fitrp01. cake resistance from a bottom temperature trace")

	v, p, h := exampleModels()

	// synthesize the trace by forward solves with the known resistance law
	var sol state.Solver
	sol.Init(v, p, h)
	const (
		pch = 0.15
		tsh = -20.0
		dt  = 0.5
	)
	var data []TbotSample
	lck, t := 0.0, 0.0
	for lck < 0.9*sol.Lpr0 {
		s, err := sol.Solve(lck, pch, tsh, -30)
		if err != nil {
			tst.Errorf("synthesis failed: %v\n", err)
			return
		}
		data = append(data, TbotSample{T: t, Tbot: s.Tbot, Pch: pch, Tsh: tsh})
		lck += p.DLdt(s.Dmdt, v.Ap) * dt
		t += dt
	}
	if chk.Verbose {
		io.Pf("synthesized %d samples\n", len(data))
	}

	r0, a1, a2, err := RpFromTbot(v, p, h, data)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("R0=%g A1=%g A2=%g\n", r0, a1, a2)
	}

	// the fitted curve must reproduce the true resistance over the fill
	fitted := mdl.Product{CSolid: p.CSolid, R0: r0, A1: a1, A2: a2}
	for _, l := range []float64{0, 0.1, 0.2, 0.4, 0.6} {
		if math.Abs(fitted.Rp(l)-p.Rp(l)) > 0.05*p.Rp(l) {
			tst.Errorf("fitted resistance off at l=%g: %g vs %g\n", l, fitted.Rp(l), p.Rp(l))
			return
		}
	}
}

// refDryTime runs a plain drying simulation to manufacture test data
func refDryTime(v mdl.Vial, p mdl.Product, h mdl.HeatTransfer, pch, tsh *sched.Schedule) (float64, error) {
	var calc drying.Calc
	calc.Sol.Init(v, p, h)
	calc.Pch, calc.Tsh = pch, tsh
	calc.SetDefaults()
	traj, err := calc.Run()
	if err != nil {
		return 0, err
	}
	return traj.DryTime, nil
}
