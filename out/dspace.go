// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/maseology/mmio"

	"github.com/LyoHUB/golyo/dspace"
)

// WriteDspaceCsv writes a design-space sweep to dirout/<key>_dspace.csv.
// The shelf isotherm grid comes first, then the product-temperature
// isotherms and the equipment capability curve.
func WriteDspaceCsv(dirout, key string, tsh, pch []float64, res *dspace.Result) (fn string, err error) {

	lines := []string{
		"Shelf Temperature [degC],Chamber Pressure [Torr],Max Product Temperature [degC],Drying Time [hr],Avg Flux [kg/hr/m^2],Max Flux [kg/hr/m^2],End Flux [kg/hr/m^2]",
	}
	for i, row := range res.Shelf {
		for j, c := range row {
			lines = append(lines, io.Sf("%g,%g,%g,%g,%g,%g,%g",
				tsh[i], pch[j], c.TbotMax, c.DryTime, c.FluxAvg, c.FluxMax, c.FluxEnd))
		}
	}

	lines = append(lines, "",
		"Product Isotherm: Chamber Pressure [Torr],Drying Time [hr],Avg Flux [kg/hr/m^2],Min Flux [kg/hr/m^2],End Flux [kg/hr/m^2]")
	for _, c := range res.Prod {
		lines = append(lines, io.Sf("%g,%g,%g,%g,%g", c.Pch, c.DryTime, c.FluxAvg, c.FluxMin, c.FluxEnd))
	}

	lines = append(lines, "",
		"Equipment Capability: Chamber Pressure [Torr],Flux [kg/hr/m^2],Drying Time [hr],Max Product Temperature [degC]")
	for _, c := range res.Equip {
		lines = append(lines, io.Sf("%g,%g,%g,%g", c.Pch, c.Flux, c.DryTime, c.TbotMax))
	}

	fn = filepath.Join(dirout, key+"_dspace.csv")
	err = mmio.WriteLines(fn, lines)
	return
}
