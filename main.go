// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/dspace"
	"github.com/LyoHUB/golyo/freeze"
	"github.com/LyoHUB/golyo/inp"
	"github.com/LyoHUB/golyo/opt"
	"github.com/LyoHUB/golyo/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGolyo -- Vial-Scale Lyophilization Simulator\n")
		io.Pf("Copyright 2024 The Golyo Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save plots", "doplot", doplot,
		))
	}

	// simulation deck
	sim := inp.ReadSim(fnamepath)
	if err := os.MkdirAll(sim.DirOut, 0777); err != nil {
		chk.Panic("cannot create output directory %q", sim.DirOut)
	}

	switch sim.Data.Tool {

	// primary drying at fixed set points
	case "dry", "":
		var calc drying.Calc
		calc.Sol.Init(sim.Vial, sim.Prod, sim.Ht)
		calc.SetDefaults()
		calc.Dt, calc.TMax, calc.NOut = sim.Solver.Dt, sim.Solver.TMax, sim.Solver.NOut
		var err error
		if calc.Pch, err = sim.Pch.Schedule(); err != nil {
			chk.Panic("chamber pressure schedule: %v", err)
		}
		if calc.Tsh, err = sim.Tsh.Schedule(); err != nil {
			chk.Panic("shelf temperature schedule: %v", err)
		}
		traj, err := calc.Run()
		if err != nil {
			chk.Panic("drying run failed: %v", err)
		}
		finishDrying(sim, traj, verbose, doplot)

	// optimized shelf temperature under a pressure schedule
	case "opt-tsh":
		var calc opt.TshCalc
		calc.Sol.Init(sim.Vial, sim.Prod, sim.Ht)
		calc.SetDefaults()
		calc.Eq = sim.Equip
		calc.TshMin, calc.TshMax = sim.Bounds.TshMin, sim.Bounds.TshMax
		calc.Dt, calc.TMax = sim.Solver.Dt, sim.Solver.TMax
		var err error
		if calc.Pch, err = sim.Pch.Schedule(); err != nil {
			chk.Panic("chamber pressure schedule: %v", err)
		}
		traj, err := calc.Run()
		if err != nil {
			chk.Panic("shelf temperature optimization failed: %v", err)
		}
		finishDrying(sim, traj, verbose, doplot)

	// optimized chamber pressure under a shelf temperature schedule
	case "opt-pch":
		var calc opt.PchCalc
		calc.Sol.Init(sim.Vial, sim.Prod, sim.Ht)
		calc.SetDefaults()
		calc.Eq = sim.Equip
		calc.PchMin, calc.PchMax = sim.Bounds.PchMin, sim.Bounds.PchMax
		calc.Dt, calc.TMax = sim.Solver.Dt, sim.Solver.TMax
		var err error
		if calc.Tsh, err = sim.Tsh.Schedule(); err != nil {
			chk.Panic("shelf temperature schedule: %v", err)
		}
		traj, err := calc.Run()
		if err != nil {
			chk.Panic("chamber pressure optimization failed: %v", err)
		}
		finishDrying(sim, traj, verbose, doplot)

	// jointly optimized chamber pressure and shelf temperature
	case "opt-both":
		var calc opt.BothCalc
		calc.Sol.Init(sim.Vial, sim.Prod, sim.Ht)
		calc.SetDefaults()
		calc.Eq = sim.Equip
		calc.PchMin, calc.PchMax = sim.Bounds.PchMin, sim.Bounds.PchMax
		calc.TshMin, calc.TshMax = sim.Bounds.TshMin, sim.Bounds.TshMax
		calc.Dt, calc.TMax = sim.Solver.Dt, sim.Solver.TMax
		traj, err := calc.Run()
		if err != nil {
			chk.Panic("joint optimization failed: %v", err)
		}
		finishDrying(sim, traj, verbose, doplot)

	// design space generation
	case "dspace":
		opts := dspace.Opts{
			Vial: sim.Vial, Prod: sim.Prod, Ht: sim.Ht, Eq: sim.Equip,
			Pch: sim.Dspace.Pch, Tsh: sim.Dspace.Tsh,
			TshInit: sim.Dspace.TshInit, Ramp: sim.Dspace.Ramp,
			Dt: sim.Solver.Dt, Quiet: !verbose,
		}
		res, err := dspace.Generate(&opts)
		if err != nil {
			chk.Panic("design space generation failed: %v", err)
		}
		fn, err := out.WriteDspaceCsv(sim.DirOut, sim.Key, opts.Tsh, opts.Pch, res)
		if err != nil {
			chk.Panic("cannot write %q: %v", fn, err)
		}
		if verbose {
			io.Pf("file <%s> written\n", fn)
		}
		if doplot {
			out.PlotDspace(sim.DirOut, sim.Key, opts.Tsh, opts.Pch, res)
		}

	// freezing step
	case "freeze":
		opts := freeze.Opts{
			Vial: sim.Vial, CSolid: sim.Prod.CSolid,
			Tpr0: sim.Freeze.Tpr0, Tf: sim.Freeze.Tf, Tn: sim.Freeze.Tn, H: sim.Freeze.H,
			TshInit: sim.Tsh.Init, Setpts: sim.Tsh.Setpt, Holds: sim.Tsh.Hold, Ramp: sim.Tsh.Ramp,
			Dt: sim.Solver.Dt,
		}
		res, err := opts.Freeze()
		if err != nil {
			chk.Panic("freezing run failed: %v", err)
		}
		if verbose && res.Status != freeze.Complete {
			io.PfRed("freezing incomplete: %v\n", res.Status)
		}
		fn, err := out.WriteFreezeCsv(sim.DirOut, sim.Key, res)
		if err != nil {
			chk.Panic("cannot write %q: %v", fn, err)
		}
		if verbose {
			io.Pf("file <%s> written\n", fn)
		}
		if doplot {
			out.PlotFreeze(sim.DirOut, sim.Key, res)
		}

	default:
		chk.Panic("tool %q is not available; options are \"dry\", \"opt-tsh\", \"opt-pch\", \"opt-both\", \"dspace\" and \"freeze\"", sim.Data.Tool)
	}
}

func finishDrying(sim *inp.Simulation, traj *drying.Trajectory, verbose, doplot bool) {
	if verbose {
		out.PrintDrying(traj)
	}
	fn, err := out.WriteDryingCsv(sim.DirOut, sim.Key, traj)
	if err != nil {
		chk.Panic("cannot write %q: %v", fn, err)
	}
	if verbose {
		io.Pf("file <%s> written\n", fn)
	}
	if doplot {
		out.PlotDrying(sim.DirOut, sim.Key, traj)
	}
}
