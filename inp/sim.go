// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/LyoHUB/golyo/mdl"
	"github.com/LyoHUB/golyo/sched"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Tool    string `json:"tool"`    // "dry", "opt-tsh", "opt-pch", "opt-both", "dspace" or "freeze"
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/golyo
}

// MatRefs names the materials a simulation uses
type MatRefs struct {
	Vial      string `json:"vial"`      // vial geometry
	Product   string `json:"product"`   // formulation
	HeatTrans string `json:"ht"`        // vial heat transfer fit
	Equipment string `json:"equipment"` // lyophilizer capability
}

// SchedData holds a ramp-and-hold control program. Without setpoints the
// control is held constant at the initial value.
type SchedData struct {
	Init  float64   `json:"init"`  // initial value
	Setpt []float64 `json:"setpt"` // setpoint values
	Hold  []float64 `json:"hold"`  // per-setpoint hold durations [min]
	Ramp  float64   `json:"ramp"`  // ramp rate [unit/min]
}

// Schedule builds the control schedule
func (o SchedData) Schedule() (*sched.Schedule, error) {
	if len(o.Setpt) == 0 {
		return sched.Constant(o.Init), nil
	}
	return sched.New(o.Init, o.Setpt, o.Hold, o.Ramp)
}

// BoundsData holds the control bounds for the optimization tools
type BoundsData struct {
	PchMin float64 `json:"pchmin"` // [Torr]
	PchMax float64 `json:"pchmax"` // [Torr]
	TshMin float64 `json:"tshmin"` // [°C]
	TshMax float64 `json:"tshmax"` // [°C]
}

// SetDefault sets default values
func (o *BoundsData) SetDefault() {
	o.PchMin = 0.05
	o.PchMax = 1000
	o.TshMin = -45
	o.TshMax = 120
}

// SolverData holds time stepping and output options
type SolverData struct {
	Dt   float64 `json:"dt"`   // time step [hr]
	TMax float64 `json:"tmax"` // maximum-time safety bound [hr]
	NOut int     `json:"nout"` // number of output samples
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Dt = 0.01
	o.TMax = 14 * 24
	o.NOut = 100
}

// DspaceData holds the design-space grid
type DspaceData struct {
	Pch     []float64 `json:"pch"`     // chamber pressure setpoints [Torr]
	Tsh     []float64 `json:"tsh"`     // shelf temperature setpoints [°C]
	TshInit float64   `json:"tshinit"` // initial shelf temperature [°C]
	Ramp    float64   `json:"ramp"`    // shelf ramp rate [°C/min]
}

// FreezeData holds the freezing-step inputs
type FreezeData struct {
	Tpr0 float64 `json:"tpr0"` // initial product temperature [°C]
	Tf   float64 `json:"tf"`   // equilibrium freezing temperature [°C]
	Tn   float64 `json:"tn"`   // nucleation temperature [°C]
	H    float64 `json:"h"`    // vial heat transfer coefficient [W/m²/K]
}

// Simulation holds one simulation deck
type Simulation struct {

	// input
	Data   Data       `json:"data"`
	Mats   MatRefs    `json:"materials"`
	Pch    SchedData  `json:"pch"`
	Tsh    SchedData  `json:"tsh"`
	Bounds BoundsData `json:"bounds"`
	Solver SolverData `json:"solver"`
	Dspace DspaceData `json:"dspace"`
	Freeze FreezeData `json:"freeze"`

	// derived
	Key    string // simulation key = fnkey
	DirOut string // output directory
	Mdb    *MatDb // materials database

	// derived models
	Vial  mdl.Vial
	Prod  mdl.Product
	Ht    mdl.HeatTransfer
	Equip mdl.Equipment
}

// ReadSim reads a simulation deck and its materials file. Panics on any
// input error; the deck is the outermost user boundary.
func ReadSim(simfilepath string) *Simulation {

	// new sim
	var o Simulation
	o.Bounds.SetDefault()
	o.Solver.SetDefault()

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q: %v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = filepath.Join("/tmp/golyo", o.Key)
	}

	// materials
	o.Mdb, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		chk.Panic("ReadSim: cannot read materials file %q: %v", o.Data.Matfile, err)
	}
	if m := o.Mdb.Get(o.Mats.Vial); m == nil {
		chk.Panic("ReadSim: cannot find vial material %q", o.Mats.Vial)
	} else if err = o.Vial.Init(m.Prms); err != nil {
		chk.Panic("ReadSim: vial material %q: %v", m.Name, err)
	}
	if m := o.Mdb.Get(o.Mats.Product); m == nil {
		chk.Panic("ReadSim: cannot find product material %q", o.Mats.Product)
	} else if err = o.Prod.Init(m.Prms); err != nil {
		chk.Panic("ReadSim: product material %q: %v", m.Name, err)
	}
	if m := o.Mdb.Get(o.Mats.HeatTrans); m == nil {
		chk.Panic("ReadSim: cannot find heat transfer material %q", o.Mats.HeatTrans)
	} else if err = o.Ht.Init(m.Prms); err != nil {
		chk.Panic("ReadSim: heat transfer material %q: %v", m.Name, err)
	}
	if o.Mats.Equipment != "" {
		if m := o.Mdb.Get(o.Mats.Equipment); m == nil {
			chk.Panic("ReadSim: cannot find equipment material %q", o.Mats.Equipment)
		} else if err = o.Equip.Init(m.Prms); err != nil {
			chk.Panic("ReadSim: equipment material %q: %v", m.Name, err)
		}
	}
	return &o
}
