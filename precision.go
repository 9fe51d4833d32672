// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package phiconst

import (
	"fmt"
	"math"
)

// Relative error in ppb (parts per billion)
// - A zero reference gives 0
func ComputeError(predicted, reference float64) float64 {
	if reference == 0 {
		return 0.0
	}
	return math.Abs(predicted-reference) / math.Abs(reference) * 1e9
}

// Format the error with an appropriate unit
// - The last tier divides by 1e7, so the "%" figure is ten times a true percentage.
func FormatError(ppb float64) string {
	switch {
	case ppb == 0:
		return "EXACT"
	case ppb < 1:
		return fmt.Sprintf("%.3f ppb", ppb)
	case ppb < 1000:
		return fmt.Sprintf("%.1f ppb", ppb)
	case ppb < 1e6:
		return fmt.Sprintf("%.2f ppm", ppb/1000)
	default:
		return fmt.Sprintf("%.4f%%", ppb/1e7)
	}
}
