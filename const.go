// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package phiconst

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	PI = math.Pi // Pi
	E  = math.E  // Napier's constant
)

// Golden ratio (1+sqrt(5))/2
var PHI = (1 + math.Sqrt(5)) / 2

const (
	Version   = "62"          // Version tag of the derivation set
	Reference = "CODATA 2022" // Source of the experimental values

	Repository = "https://github.com/Insightful-Calculations/lexis-heart321" // Home of the derivation set
	DOI        = "10.5281/zenodo.18676606"
)

// Symbols of the experimental values
const (
	SymAlpha    = "alpha"       // Fine structure constant
	SymInvAlpha = "inv_alpha"   // 1/alpha
	SymMu       = "mu"          // m_p/m_e
	SymG        = "G"           // Gravitational constant [m^3/kg/s^2]
	SymMe       = "m_e_MeV"     // Electron mass [MeV/c^2]
	SymDeltaM   = "delta_m_MeV" // m_n - m_p [MeV/c^2]
)

var ErrUnknownConstant = errors.New("unknown constant")

// CODATA 2022 recommended values
var codata2022 = map[string]float64{
	SymAlpha:    0.0072973525643,
	SymInvAlpha: 137.035999177,
	SymMu:       1836.15267343,
	SymG:        6.67430e-11,
	SymMe:       0.51099895069,
	SymDeltaM:   1.29333236,
}

// Codata is a read-only table of experimental values
type Codata struct {
	v map[string]float64
}

func NewCodata() *Codata {
	return &Codata{v: maps.Clone(codata2022)}
}

// Get returns the value of the symbol.
// An undefined symbol is an error naming the symbol.
func (c *Codata) Get(sym string) (float64, error) {
	v, ok := c.v[sym]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownConstant, sym)
	}
	return v, nil
}

// Sorted list of defined symbols
func (c *Codata) Symbols() []string {
	s := maps.Keys(c.v)
	slices.Sort(s)
	return s
}

func (c *Codata) Len() int {
	return len(c.v)
}
