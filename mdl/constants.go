// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements material, vial and equipment models for vial-scale
// freeze-drying. Internal units are cm, mL, g, hr, °C and Torr; output
// tables convert pressures to mTorr.
package mdl

// unit conversion factors
const (
	KgToG       = 1000.0 // [g/kg]
	CmToM       = 1.0e-2 // [m/cm]
	HrToS       = 3600.0 // [s/hr]
	HrToMin     = 60.0   // [min/hr]
	MinToS      = 60.0   // [s/min]
	TorrToMtorr = 1000.0 // [mTorr/Torr]
	CalToJ      = 4.184  // [J/cal]
)

// physical constants
const (
	RhoIce      = 0.918 // density of ice [g/mL]
	RhoSolute   = 1.5   // density of solute [g/mL]
	RhoSolution = 1.0   // density of solution [g/mL]

	DHs  = 678.0  // latent heat of sublimation [cal/g]
	KIce = 0.0059 // thermal conductivity of ice [cal/cm/s/K]
	DHf  = 79.7   // latent heat of fusion [cal/g]

	CpIce      = 2030.0 // specific heat of ice [J/kg/K]
	CpSolution = 4000.0 // specific heat of water [J/kg/K]
)
