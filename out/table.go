// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements table, CSV and plot output for simulation results
package out

import (
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/maseology/mmio"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/freeze"
	"github.com/LyoHUB/golyo/mdl"
)

// header of the primary-drying table. Chamber pressure is reported in mTorr.
var dryingHeader = []string{
	"Time [hr]",
	"Sublimation Front Temperature [degC]",
	"Vial Bottom Temperature [degC]",
	"Shelf Temperature [degC]",
	"Chamber Pressure [mTorr]",
	"Sublimation Flux [kg/hr/m^2]",
	"Fraction Dried [-]",
}

// dryingRows formats a trajectory as CSV lines
func dryingRows(traj *drying.Trajectory) (lines []string) {
	lines = append(lines, io.Sf("%s", joinCsv(dryingHeader)))
	for _, s := range traj.Samples {
		lines = append(lines, io.Sf("%g,%g,%g,%g,%g,%g,%g",
			s.T, s.Tsub, s.Tbot, s.Tsh, s.Pch*mdl.TorrToMtorr, s.Flux, s.DryFrac))
	}
	return
}

// WriteDryingCsv writes a primary-drying trajectory to dirout/<key>.csv
func WriteDryingCsv(dirout, key string, traj *drying.Trajectory) (fn string, err error) {
	fn = filepath.Join(dirout, key+".csv")
	err = mmio.WriteLines(fn, dryingRows(traj))
	return
}

// PrintDrying prints a primary-drying trajectory to stdout
func PrintDrying(traj *drying.Trajectory) {
	io.Pf("%10s%12s%12s%12s%12s%14s%10s\n", "t [hr]", "Tsub [C]", "Tbot [C]", "Tsh [C]", "Pch [mTorr]", "flux", "dried")
	for _, s := range traj.Samples {
		io.Pf("%10.4f%12.3f%12.3f%12.3f%12.1f%14.5f%10.4f\n",
			s.T, s.Tsub, s.Tbot, s.Tsh, s.Pch*mdl.TorrToMtorr, s.Flux, s.DryFrac)
	}
	io.Pf("drying time = %g hr (%s)\n", traj.DryTime, traj.Status)
}

// WriteFreezeCsv writes a freezing run to dirout/<key>_freezing.csv
func WriteFreezeCsv(dirout, key string, res *freeze.Result) (fn string, err error) {
	lines := []string{"Time [hr],Shelf Temperature [degC],Product Temperature [degC]"}
	for _, s := range res.Samples {
		lines = append(lines, io.Sf("%g,%g,%g", s.T, s.Tsh, s.Tpr))
	}
	fn = filepath.Join(dirout, key+"_freezing.csv")
	err = mmio.WriteLines(fn, lines)
	return
}

func joinCsv(cols []string) (l string) {
	for i, c := range cols {
		if i > 0 {
			l += ","
		}
		l += c
	}
	return
}
