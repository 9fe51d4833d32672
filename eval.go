// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package phiconst

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrNonFinite = errors.New("non-finite value")

// Options for evaluation
type EvalOpt struct {
	Parallel bool // Evaluate derivations concurrently
	MaxProcs int  // Limit of concurrent derivations (0: no limit)
}

func NewEvalOpt() *EvalOpt {
	return &EvalOpt{
		Parallel: false,
		MaxProcs: 0,
	}
}

// Evaluate runs every derivation of reg and returns finalized results in registry order.
func Evaluate(ctx context.Context, c *Codata, reg []Derivation, opt *EvalOpt) ([]Result, error) {
	if opt == nil {
		opt = NewEvalOpt()
	}
	res := make([]Result, len(reg))

	if !opt.Parallel {
		for i, d := range reg {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := evalOne(c, d)
			if err != nil {
				return nil, err
			}
			res[i] = r
		}
		return res, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if opt.MaxProcs > 0 {
		g.SetLimit(opt.MaxProcs)
	}
	for i, d := range reg {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := evalOne(c, d)
			if err != nil {
				return err
			}
			res[i] = r // Each goroutine owns its own slot
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func evalOne(c *Codata, d Derivation) (Result, error) {
	r, err := d.Fn(c)
	if err != nil {
		return Result{}, fmt.Errorf("derivation %s: %w", d.ID, err)
	}
	if !IsFinite(r.Predicted) || !IsFinite(r.Reference) {
		return Result{}, fmt.Errorf("derivation %s: %w (predicted=%v, reference=%v)", d.ID, ErrNonFinite, r.Predicted, r.Reference)
	}
	r = r.Finalize()
	logger.Debug("derivation evaluated",
		zap.String("id", d.ID),
		zap.Float64("predicted", r.Predicted),
		zap.Float64("reference", r.Reference),
		zap.Float64("error_ppb", r.ErrorPPB))
	return r, nil
}
