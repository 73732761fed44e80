// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/dspace"
	"github.com/LyoHUB/golyo/freeze"
)

// PlotDrying saves temperature and flux histories of a drying run
func PlotDrying(dirout, key string, traj *drying.Trajectory) {
	n := len(traj.Samples)
	t := make([]float64, n)
	tsub, tbot, tsh, flux := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i, s := range traj.Samples {
		t[i], tsub[i], tbot[i], tsh[i], flux[i] = s.T, s.Tsub, s.Tbot, s.Tsh, s.Flux
	}

	plt.Reset(true, &plt.A{Prop: 1.4})

	plt.Subplot(2, 1, 1)
	plt.Plot(t, tsh, &plt.A{C: "k", L: "shelf", NoClip: true})
	plt.Plot(t, tbot, &plt.A{C: "r", L: "vial bottom", NoClip: true})
	plt.Plot(t, tsub, &plt.A{C: "b", L: "front", NoClip: true})
	plt.Gll("$t$ [hr]", "$T$ [$^{\\circ}$C]", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(t, flux, &plt.A{C: "g", NoClip: true})
	plt.Gll("$t$ [hr]", "flux [kg/hr/m$^2$]", nil)

	plt.SaveD(dirout, key+".png")
}

// PlotFreeze saves the temperature history of a freezing run
func PlotFreeze(dirout, key string, res *freeze.Result) {
	n := len(res.Samples)
	t, tsh, tpr := make([]float64, n), make([]float64, n), make([]float64, n)
	for i, s := range res.Samples {
		t[i], tsh[i], tpr[i] = s.T, s.Tsh, s.Tpr
	}
	plt.Reset(true, nil)
	plt.Plot(t, tsh, &plt.A{C: "k", L: "shelf", NoClip: true})
	plt.Plot(t, tpr, &plt.A{C: "b", L: "product", NoClip: true})
	plt.Gll("$t$ [hr]", "$T$ [$^{\\circ}$C]", nil)
	plt.SaveD(dirout, key+"_freezing.png")
}

// PlotDspace saves the design-space flux chart: one shelf isotherm per
// setpoint, the product isotherm at the critical temperature and the
// equipment capability limit, all against chamber pressure
func PlotDspace(dirout, key string, tsh, pch []float64, res *dspace.Result) {
	plt.Reset(true, &plt.A{Prop: 1.2})
	for i, row := range res.Shelf {
		y := make([]float64, len(row))
		for j, c := range row {
			y[j] = c.FluxAvg
		}
		plt.Plot(pch, y, &plt.A{M: ".", L: io.Sf("$T_{sh}$ = %g", tsh[i]), NoClip: true})
	}
	if len(res.Prod) == 2 {
		x := []float64{res.Prod[0].Pch, res.Prod[1].Pch}
		y := []float64{res.Prod[0].FluxAvg, res.Prod[1].FluxAvg}
		plt.Plot(x, y, &plt.A{C: "r", Ls: "--", L: "product isotherm", NoClip: true})
	}
	y := make([]float64, len(res.Equip))
	for k, c := range res.Equip {
		y[k] = c.Flux
	}
	plt.Plot(pch, y, &plt.A{C: "k", Ls: ":", L: "equipment capability", NoClip: true})
	plt.Gll("$P_{ch}$ [Torr]", "flux [kg/hr/m$^2$]", nil)
	plt.SaveD(dirout, key+"_dspace.png")
}
