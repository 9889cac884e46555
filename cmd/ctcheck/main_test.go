package main

import (
	"testing"

	"github.com/mpcith/banquet/field"
	"github.com/mpcith/banquet/params"
	"github.com/stretchr/testify/require"
)

func TestWelch(t *testing.T) {
	tStat, err := welch([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Zero(t, tStat)

	tStat, err = welch([]float64{10, 11, 10, 11}, []float64{1, 2, 1, 2})
	require.NoError(t, err)
	require.Greater(t, tStat, 10.0)

	tStat, err = welch([]float64{3, 3}, []float64{3, 3})
	require.NoError(t, err)
	require.Zero(t, tStat)

	_, err = welch(nil, []float64{1})
	require.Error(t, err)
}

func TestSelectParameterSets(t *testing.T) {
	sets, err := selectParameterSets("all")
	require.NoError(t, err)
	require.Equal(t, params.All(), sets)

	sets, err = selectParameterSets("Banquet_L1_Param4")
	require.NoError(t, err)
	require.Equal(t, []params.ParameterSet{params.L1Param4}, sets)

	_, err = selectParameterSets("nope")
	require.ErrorIs(t, err, params.ErrInvalidParameterSet)
}

func TestMeasure(t *testing.T) {
	prng, err := newPRNG("measure")
	require.NoError(t, err)
	f := field.MustNewField(5)

	res, err := measure(params.L1Param3, f, field.NewUniformSampler(prng, f), 16, 8)
	require.NoError(t, err)
	require.Len(t, res.fixed, 16)
	require.Len(t, res.random, 16)
	require.NoError(t, report(res))
}

func TestNewPRNG(t *testing.T) {
	p0, err := newPRNG("42")
	require.NoError(t, err)
	p1, err := newPRNG("42")
	require.NoError(t, err)

	f := field.MustNewField(6)
	v0, err := field.NewUniformSampler(p0, f).ReadVector(32)
	require.NoError(t, err)
	v1, err := field.NewUniformSampler(p1, f).ReadVector(32)
	require.NoError(t, err)
	require.Equal(t, v0, v1)

	p2, err := newPRNG("")
	require.NoError(t, err)
	_, err = field.NewUniformSampler(p2, f).ReadVector(32)
	require.NoError(t, err)
}
