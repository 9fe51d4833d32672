// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package phiconst

// Intermediate value of a formula (for display only)
type Component struct {
	Label   string
	Value   float64
	Integer bool // Displayed without a fractional part
}

func F(label string, v float64) Component {
	return Component{Label: label, Value: v}
}

func I(label string, n int) Component {
	return Component{Label: label, Value: float64(n), Integer: true}
}

// Result of a derivation
type Result struct {
	Name       string
	Symbol     string
	Formula    string
	Predicted  float64
	Reference  float64
	Integral   bool   // Predicted and Reference are exact integers
	IntRef     bool   // Reference alone is an exact integer
	Note       string // Empty if none
	Components []Component

	// Set by Finalize
	ErrorPPB       float64
	ErrorFormatted string
}

// Finalize returns a copy of the result with the error fields filled in.
func (r Result) Finalize() Result {
	r.Components = append([]Component(nil), r.Components...)
	r.ErrorPPB = ComputeError(r.Predicted, r.Reference)
	r.ErrorFormatted = FormatError(r.ErrorPPB)
	return r
}

func (r *Result) HasNote() bool {
	return len(r.Note) > 0
}
