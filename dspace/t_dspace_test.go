// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dspace

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/LyoHUB/golyo/mdl"
)

func exampleOpts() *Opts {
	var o Opts
	o.Vial.Init(o.Vial.GetPrms(true))
	o.Prod.Init(o.Prod.GetPrms(true))
	o.Ht.Init(o.Ht.GetPrms(true))
	o.Eq.Init(o.Eq.GetPrms(true))
	o.Pch = []float64{0.1, 0.15, 0.2}
	o.Tsh = []float64{-25, -15}
	o.TshInit = -35
	o.Ramp = 1.0
	o.Dt = 0.01
	o.Quiet = true
	return &o
}

func Test_dspace01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dspace01. design space sweep")

	o := exampleOpts()
	res, err := Generate(o)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if len(res.Shelf) != 2 || len(res.Shelf[0]) != 3 || len(res.Prod) != 2 || len(res.Equip) != 3 {
		tst.Errorf("wrong result dimensions\n")
		return
	}

	for i, row := range res.Shelf {
		for j, c := range row {
			if chk.Verbose {
				io.Pf("Tsh=%g Pch=%g: tdry=%g hr, Tmax=%g\n", o.Tsh[i], o.Pch[j], c.DryTime, c.TbotMax)
			}
			if c.DryTime <= 0 || c.FluxAvg <= 0 || c.FluxMax < c.FluxAvg {
				tst.Errorf("implausible cell at (%d,%d): %+v\n", i, j, c)
				return
			}
			if c.TbotMax <= o.Tsh[i]-40 || c.TbotMax >= o.Tsh[i]+5 {
				tst.Errorf("max product temperature out of range at (%d,%d): %g\n", i, j, c.TbotMax)
				return
			}
		}
	}

	// a warmer shelf always dries faster at the same pressure
	for j := range o.Pch {
		if res.Shelf[1][j].DryTime >= res.Shelf[0][j].DryTime {
			tst.Errorf("drying time must shrink with shelf temperature at Pch=%g\n", o.Pch[j])
			return
		}
	}

	// product isotherms bracket the pressure range
	chk.Scalar(tst, "first isotherm Pch", 1e-15, res.Prod[0].Pch, 0.1)
	chk.Scalar(tst, "last isotherm Pch", 1e-15, res.Prod[1].Pch, 0.2)
	for j, c := range res.Prod {
		if c.DryTime <= 0 || c.FluxAvg <= 0 || c.FluxMin > c.FluxAvg {
			tst.Errorf("implausible product isotherm %d: %+v\n", j, c)
			return
		}
	}

	// equipment capability grows with pressure
	for k := 1; k < len(res.Equip); k++ {
		if res.Equip[k].Flux <= res.Equip[k-1].Flux {
			tst.Errorf("capability flux must grow with pressure\n")
			return
		}
		if res.Equip[k].DryTime >= res.Equip[k-1].DryTime {
			tst.Errorf("capability drying time must shrink with pressure\n")
			return
		}
	}
}

func Test_dspace02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dspace02. input checks")

	o := exampleOpts()
	o.Pch = nil
	if _, err := Generate(o); err == nil {
		tst.Errorf("Generate must fail without pressure setpoints\n")
	}

	o = exampleOpts()
	o.Prod.TprCrit = -60 // colder than any sustainable front
	if _, err := Generate(o); err == nil {
		tst.Errorf("Generate must fail when the critical isotherm cannot sublime\n")
	}
}
