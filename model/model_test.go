package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 请求体字段名与前端保持一致
func TestSimulationInputFieldNames(t *testing.T) {
	payload := `{
		"width": 0.1, "depth": 0.01, "length": 1.0,
		"density": 1200, "heatCapacity": 2000, "glassTransitionTemp": -20, "meltingTemp": 180,
		"coverSpeed": 0.05, "coverTemp": 190,
		"mu0": 1000, "firstConstantVLF": 17.44, "secondConstantVLF": 51.6,
		"castingTemp": 20, "flowIndex": 0.3, "heatTransfer": 50,
		"step": 0.1
	}`
	var in SimulationInput
	require.NoError(t, json.Unmarshal([]byte(payload), &in))
	assert.Equal(t, SimulationInput{
		Width: 0.1, Depth: 0.01, Length: 1.0,
		Density: 1200, HeatCapacity: 2000, GlassTransitionTemp: -20, MeltingTemp: 180,
		CoverSpeed: 0.05, CoverTemp: 190,
		Mu0: 1000, FirstConstantWLF: 17.44, SecondConstantWLF: 51.6,
		CastingTemp: 20, FlowIndex: 0.3, HeatTransfer: 50,
		Step: 0.1,
	}, in)
}

func TestSimulationResultFieldNames(t *testing.T) {
	data, err := json.Marshal(SimulationResult{StepsCount: 1, Positions: []float64{0, 1}})
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, name := range []string{
		"F", "QCH", "gamma", "qGamma", "qAlpha", "N",
		"productivity", "finalTemperature", "finalViscosity",
		"positions", "temperatures", "viscosities",
	} {
		assert.Contains(t, fields, name)
	}
	assert.Len(t, fields, 12)
}
