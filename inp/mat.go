// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Material holds one named parameter set from a .mat file
type Material struct {
	Name string     `json:"name"` // name of material
	Type string     `json:"type"` // "vial", "product", "ht" or "equipment"
	Desc string     `json:"desc"` // description
	Prms fun.Params `json:"prms"` // model parameters
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived subsets
	Vials    map[string]*Material
	Products map[string]*Material
	Hts      map[string]*Material
	Equips   map[string]*Material
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Vials = make(map[string]*Material)
	mdb.Products = make(map[string]*Material)
	mdb.Hts = make(map[string]*Material)
	mdb.Equips = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "vial":
			mdb.Vials[m.Name] = m
		case "product":
			mdb.Products[m.Name] = m
		case "ht":
			mdb.Hts[m.Name] = m
		case "equipment":
			mdb.Equips[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"vial\", \"product\", \"ht\" and \"equipment\"", m.Type)
		}
	}
	return
}

// Get returns a material by name or nil if not found
func (o MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}
