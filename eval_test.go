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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEvaluateAll(t *testing.T) {
	reg := Registry()
	res, err := Evaluate(context.Background(), NewCodata(), reg, nil)
	require.NoError(t, err)
	require.Len(t, res, 11)

	names := []string{
		"Proton-electron mass ratio",
		"Gravitational constant",
		"Fine structure constant (ratio)",
		"Fine structure constant (quadratic)",
		"Nuclear stiffness",
		"Neutron-proton mass difference",
		"GL parameter ratio",
		"Golden Mirror symmetry",
		"Fermat-E8-Milnor identity",
		"Lucas number identity",
		"Stiffness minimal polynomial",
	}
	for i, r := range res {
		assert.Equal(t, names[i], r.Name)
		assert.GreaterOrEqual(t, r.ErrorPPB, 0.0, r.Name)
		assert.Equal(t, FormatError(r.ErrorPPB), r.ErrorFormatted, r.Name)
	}
}

func TestEvaluateParallelKeepsOrder(t *testing.T) {
	c := NewCodata()
	serial, err := Evaluate(context.Background(), c, Registry(), NewEvalOpt())
	require.NoError(t, err)

	for _, procs := range []int{0, 1, 3} {
		opt := NewEvalOpt()
		opt.Parallel = true
		opt.MaxProcs = procs
		par, err := Evaluate(context.Background(), c, Registry(), opt)
		require.NoError(t, err)
		if diff := cmp.Diff(serial, par); diff != "" {
			t.Fatalf("parallel (procs=%d) differs from serial (-serial +parallel):\n%s", procs, diff)
		}
	}
}

func TestEvaluateUnknownConstant(t *testing.T) {
	empty := &Codata{v: map[string]float64{}}
	for _, parallel := range []bool{false, true} {
		opt := NewEvalOpt()
		opt.Parallel = parallel
		_, err := Evaluate(context.Background(), empty, Registry(), opt)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownConstant))
		assert.Contains(t, err.Error(), "derivation ")
	}
}

func TestEvaluateNonFinite(t *testing.T) {
	reg := []Derivation{
		{ID: "ok", Fn: VerifyE8Identity},
		{ID: "nan", Fn: func(c *Codata) (Result, error) {
			return Result{Name: "nan", Predicted: math.NaN(), Reference: 1}, nil
		}},
		{ID: "inf", Fn: func(c *Codata) (Result, error) {
			return Result{Name: "inf", Predicted: 1, Reference: math.Inf(1)}, nil
		}},
	}
	_, err := Evaluate(context.Background(), NewCodata(), reg, nil)
	require.ErrorIs(t, err, ErrNonFinite)
	assert.Contains(t, err.Error(), "derivation nan")

	_, err = Evaluate(context.Background(), NewCodata(), reg[2:], nil)
	require.ErrorIs(t, err, ErrNonFinite)
	assert.Contains(t, err.Error(), "derivation inf")
}

func TestEvaluateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Evaluate(ctx, NewCodata(), Registry(), nil)
	assert.ErrorIs(t, err, context.Canceled)

	opt := NewEvalOpt()
	opt.Parallel = true
	_, err = Evaluate(ctx, NewCodata(), Registry(), opt)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateLogsEachDerivation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	_, err := Evaluate(context.Background(), NewCodata(), Registry(), nil)
	require.NoError(t, err)

	entries := logs.FilterMessage("derivation evaluated").All()
	require.Len(t, entries, 11)
	assert.Equal(t, "mass-ratio", entries[0].ContextMap()["id"])
	assert.Equal(t, "stiffness-polynomial", entries[10].ContextMap()["id"])
}
