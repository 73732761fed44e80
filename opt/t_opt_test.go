// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/mdl"
	"github.com/LyoHUB/golyo/sched"
)

func exampleModels() (v mdl.Vial, p mdl.Product, h mdl.HeatTransfer, e mdl.Equipment) {
	v.Init(v.GetPrms(true))
	p.Init(p.GetPrms(true))
	h.Init(h.GetPrms(true))
	e.Init(e.GetPrms(true))
	return
}

// fixedDryTime runs plain drying at constant set points for comparison
func fixedDryTime(tst *testing.T, pch, tsh float64) float64 {
	v, p, h, _ := exampleModels()
	var calc drying.Calc
	calc.Sol.Init(v, p, h)
	calc.SetDefaults()
	calc.Pch = sched.Constant(pch)
	calc.Tsh = sched.Constant(tsh)
	traj, err := calc.Run()
	if err != nil {
		tst.Fatalf("reference run failed: %v\n", err)
	}
	return traj.DryTime
}

func Test_opttsh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opttsh01. shelf temperature optimization")

	v, p, h, e := exampleModels()
	var o TshCalc
	o.Sol.Init(v, p, h)
	o.SetDefaults()
	o.Eq = e
	o.Pch = sched.Constant(0.15)

	traj, err := o.Run()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("optimized drying time = %g hr\n", traj.DryTime)
	}
	if traj.Status != drying.FullyDried {
		tst.Errorf("optimized run must dry fully: status=%v\n", traj.Status)
		return
	}

	// the product stays at or below the critical temperature throughout
	for i, s := range traj.Samples {
		if s.Tbot > p.TprCrit+0.5 {
			tst.Errorf("critical temperature violated at sample %d: Tbot=%g\n", i, s.Tbot)
			return
		}
		if s.Tsh < o.TshMin-1e-9 || s.Tsh > o.TshMax+1e-9 {
			tst.Errorf("shelf temperature out of bounds at sample %d: %g\n", i, s.Tsh)
			return
		}
		if e.Margin(s.Pch, s.Flux*o.Sol.Vial.Ap*mdl.CmToM*mdl.CmToM) < -1e-6 {
			tst.Errorf("equipment capability violated at sample %d\n", i)
			return
		}
	}

	// the product rides the critical temperature once the condenser
	// margin stops binding, which is over most of the run here
	if traj.MaxTbot() < p.TprCrit-0.5 {
		tst.Errorf("shelf never pushed the product to the critical temperature: max Tbot=%g\n", traj.MaxTbot())
		return
	}
	nAt := 0
	for _, s := range traj.Samples {
		if math.Abs(s.Tbot-p.TprCrit) <= 0.5 {
			nAt++
		}
	}
	if 2*nAt <= len(traj.Samples) {
		tst.Errorf("product must ride the critical temperature for most of the run: %d of %d samples\n", nAt, len(traj.Samples))
		return
	}

	// pushing the shelf to the constraint beats a conservative schedule
	ref := fixedDryTime(tst, 0.15, -20)
	if traj.DryTime >= ref {
		tst.Errorf("optimized run must dry faster: %g >= %g hr\n", traj.DryTime, ref)
	}
}

func Test_optpch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("optpch01. chamber pressure optimization")

	v, p, h, e := exampleModels()
	var o PchCalc
	o.Sol.Init(v, p, h)
	o.SetDefaults()
	o.Eq = e
	o.Tsh = sched.Constant(-20)

	traj, err := o.Run()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if traj.Status != drying.FullyDried {
		tst.Errorf("optimized run must dry fully: status=%v\n", traj.Status)
		return
	}
	for i, s := range traj.Samples {
		if s.Pch < o.PchMin-1e-12 || s.Pch > o.PchMax+1e-12 {
			tst.Errorf("pressure out of bounds at sample %d: %g\n", i, s.Pch)
			return
		}
		if s.Tbot > p.TprCrit+0.5 {
			tst.Errorf("critical temperature violated at sample %d: Tbot=%g\n", i, s.Tbot)
			return
		}
	}

	// the lowest feasible pressure maximizes the driving force
	ref := fixedDryTime(tst, 0.15, -20)
	if traj.DryTime > ref*1.01 {
		tst.Errorf("optimized run must not be slower than Pch=0.15: %g > %g hr\n", traj.DryTime, ref)
	}
}

func Test_optboth01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("optboth01. joint pressure and shelf optimization")

	v, p, h, e := exampleModels()
	var o BothCalc
	o.Sol.Init(v, p, h)
	o.SetDefaults()
	o.Eq = e
	o.Dt = 0.05 // the global search is expensive; coarser steps suffice here

	traj, err := o.Run()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("joint optimized drying time = %g hr\n", traj.DryTime)
	}
	if traj.Status != drying.FullyDried {
		tst.Errorf("optimized run must dry fully: status=%v\n", traj.Status)
		return
	}
	for i, s := range traj.Samples {
		if s.Tbot > p.TprCrit+0.5 {
			tst.Errorf("critical temperature violated at sample %d: Tbot=%g\n", i, s.Tbot)
			return
		}
		if s.Pch < o.PchMin-1e-9 || s.Pch > o.PchMax+1e-9 {
			tst.Errorf("pressure out of bounds at sample %d: %g\n", i, s.Pch)
			return
		}
		if s.Tsh < o.TshMin-1e-9 || s.Tsh > o.TshMax+1e-9 {
			tst.Errorf("shelf temperature out of bounds at sample %d: %g\n", i, s.Tsh)
			return
		}
	}

	// freeing both controls cannot be slower than freeing the shelf alone,
	// beyond the penalized search's tolerance
	var ref TshCalc
	ref.Sol.Init(v, p, h)
	ref.SetDefaults()
	ref.Eq = e
	ref.Pch = sched.Constant(0.15)
	rtraj, err := ref.Run()
	if err != nil {
		tst.Errorf("reference optimization failed: %v\n", err)
		return
	}
	if traj.DryTime > rtraj.DryTime*1.10 {
		tst.Errorf("joint optimization too slow: %g vs %g hr\n", traj.DryTime, rtraj.DryTime)
	}
}

func Test_optinfeasible01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("optinfeasible01. infeasible step detection")

	v, p, h, _ := exampleModels()

	// a single-vial condenser with no capacity at all
	var tiny mdl.Equipment
	tiny.A, tiny.B, tiny.NVial = -1e6, 0, 1

	var o TshCalc
	o.Sol.Init(v, p, h)
	o.SetDefaults()
	o.Eq = tiny
	o.Pch = sched.Constant(0.15)

	_, err := o.Run()
	if err == nil {
		tst.Errorf("run must fail with a hopeless condenser\n")
		return
	}
	if !IsInfeasible(err) {
		tst.Errorf("error must report infeasibility: %v\n", err)
	}
	if chk.Verbose {
		io.Pf("got expected error: %v\n", err)
	}
}
