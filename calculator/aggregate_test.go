package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	in := sampleInput()
	d, err := Derive(in)
	require.NoError(t, err)
	s, err := Integrate(in, d)
	require.NoError(t, err)

	r, err := Aggregate(in, d, s)
	require.NoError(t, err)
	assert.Equal(t, 3600*in.Density*d.QCH, r.Productivity)
	assert.Equal(t, s.Temperatures[s.Len()-1], r.FinalTemp)
	assert.Equal(t, s.Viscosities[s.Len()-1], r.FinalViscosity)
	assert.Equal(t, s.Len()-1, r.StepsCount)
	assert.Equal(t, d.QGamma, r.ViscousHeat)
}

func TestAggregateRejectsBadSeries(t *testing.T) {
	in := sampleInput()
	d, err := Derive(in)
	require.NoError(t, err)

	_, err = Aggregate(in, d, Series{})
	assert.ErrorIs(t, err, ErrProgramming)

	_, err = Aggregate(in, d, Series{
		Positions:    []float64{0, 1},
		Temperatures: []float64{1, math.NaN()},
		Viscosities:  []float64{1, 1},
	})
	assert.ErrorIs(t, err, ErrNumericDomain)
}

func TestDeriveSample(t *testing.T) {
	d, err := Derive(sampleInput())
	require.NoError(t, err)
	assert.InDelta(t, 130.0, d.AvgTemp, 1e-12)
	assert.InDelta(t, 91.6, d.C2, 1e-12)
	assert.InEpsilon(t, 17.44*51.6/91.6, d.C1, 1e-12)
	assert.InEpsilon(t, d.C1/(91.6+110), d.B, 1e-12)
	assert.InEpsilon(t, 2.346875e-5, d.QCH, 1e-12)
}

func TestDeriveZeroSensitivity(t *testing.T) {
	in := sampleInput()
	in.FirstConstantWLF = 0
	_, err := Derive(in)
	assert.ErrorIs(t, err, ErrNumericDomain)
}

func TestDeriveZeroBDenominator(t *testing.T) {
	in := sampleInput()
	// C2 + (Tavg - Tr) = C2g - Tg + Tavg = 0
	in.MeltingTemp = 0
	in.GlassTransitionTemp = -100
	in.SecondConstantWLF = -100
	d, err := Derive(in)
	require.Error(t, err, "%+v", d)
	assert.ErrorIs(t, err, ErrNumericDomain)
}

func TestStepCount(t *testing.T) {
	in := sampleInput()
	n, err := StepCount(in)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	in.Step = 0.3
	n, err = StepCount(in)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	in.Step = 1e-300
	_, err = StepCount(in)
	assert.ErrorIs(t, err, ErrProgramming)
}
