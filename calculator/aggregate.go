package calculator

import (
	"flowsim/model"
	"gonum.org/v1/gonum/floats"
)

// 汇总计算结果
func Aggregate(in model.SimulationInput, d Derived, s Series) (model.SimulationResult, error) {
	if s.Len() == 0 || len(s.Temperatures) != s.Len() || len(s.Viscosities) != s.Len() {
		return model.SimulationResult{}, programmingError("aggregate", "series is empty or misaligned")
	}
	if floats.HasNaN(s.Temperatures) || floats.HasNaN(s.Viscosities) {
		return model.SimulationResult{}, domainError("aggregate", -1, "series contains NaN")
	}

	last := s.Len() - 1
	return model.SimulationResult{
		ShapeFactor:    d.F,
		FlowRate:       d.QCH,
		ShearRate:      d.Gamma,
		ViscousHeat:    d.QGamma,
		HeatFlux:       d.QAlpha,
		StepsCount:     last,
		Productivity:   3600 * in.Density * d.QCH, // m³/s -> kg/h
		FinalTemp:      s.Temperatures[last],
		FinalViscosity: s.Viscosities[last],
		Positions:      s.Positions,
		Temperatures:   s.Temperatures,
		Viscosities:    s.Viscosities,
	}, nil
}
