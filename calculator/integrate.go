package calculator

import (
	"fmt"
	"math"

	"flowsim/model"
)

// 沿通道长度方向的温度、粘度分布
type Series struct {
	Positions    []float64
	Temperatures []float64
	Viscosities  []float64
}

func (s Series) Len() int {
	return len(s.Positions)
}

// 计算步数 N = round(L / Δz)
func StepCount(in model.SimulationInput) (int, error) {
	if !(in.Step > 0) || math.IsInf(in.Step, 0) {
		return 0, validationError("steps", "step must be a finite value > 0")
	}
	if !isFinite(in.Length) {
		return 0, validationError("steps", "length must be finite")
	}
	n := math.Round(in.Length / in.Step)
	if n < 0 || n >= math.MaxInt32 {
		return 0, programmingError("steps", fmt.Sprintf("step count out of range: %v", n))
	}
	return int(n), nil
}

// 解析解中与位置无关的部分
type profile struct {
	step float64
	tr   float64
	t0   float64
	b    float64
	mu0  float64

	part1Coef    float64 // numerator1 / denominator1
	denominator1 float64
	denominator2 float64 // ρ·c·Q_CH
	inner2       float64 // W·((1/b + Tr)·αu − q_α)
	shearTerm    float64 // γ^(n−1)
}

func newProfile(in model.SimulationInput, d Derived) (*profile, error) {
	if d.B == 0 {
		return nil, domainError("integrate", -1, "sensitivity coefficient b is zero")
	}
	numerator1 := d.B*d.QGamma + in.Width*in.HeatTransfer
	denominator1 := in.Width*(1+d.B*in.CastingTemp)*in.HeatTransfer - d.B*d.QAlpha
	if denominator1 == 0 {
		return nil, domainError("integrate", -1, "denominator W(1+b·Tr)αu - b·qα is zero")
	}
	denominator2 := in.Density * in.HeatCapacity * d.QCH
	if denominator2 == 0 {
		return nil, domainError("integrate", -1, "ρ·c·QCH is zero")
	}
	return &profile{
		step:         in.Step,
		tr:           in.CastingTemp,
		t0:           in.MeltingTemp,
		b:            d.B,
		mu0:          in.Mu0,
		part1Coef:    numerator1 / denominator1,
		denominator1: denominator1,
		denominator2: denominator2,
		inner2:       in.Width * ((1/d.B+in.CastingTemp)*in.HeatTransfer - d.QAlpha),
		shearTerm:    math.Pow(d.Gamma, in.FlowIndex-1),
	}, nil
}

// 第 i 个计算点，各点之间相互独立
func (p *profile) point(i int) (z, t, eta float64, err *Error) {
	z = float64(i) * p.step

	exp1 := math.Exp(-p.denominator1 * z / p.denominator2)
	part1 := p.part1Coef * (1 - exp1)
	numerator2 := p.inner2 * z
	exp2 := math.Exp(p.b * (p.t0 - p.tr - numerator2/p.denominator2))
	chi := part1 + exp2
	if !(chi > 0) || math.IsInf(chi, 0) {
		return z, 0, 0, domainError("integrate", i, "χ = %v, logarithm undefined", chi)
	}

	t = p.tr + (1/p.b)*math.Log(chi)
	eta = p.mu0 * math.Exp(-p.b*(t-p.tr)) * p.shearTerm
	if !isFinite(t) || !isFinite(eta) {
		return z, t, eta, domainError("integrate", i, "non-finite result T = %v, η = %v", t, eta)
	}
	return z, t, eta, nil
}

// 在 [start, end) 区间内计算，结果写入对应下标
func (p *profile) fill(s Series, t task) *Error {
	for i := t.start; i < t.end; i++ {
		z, temp, eta, err := p.point(i)
		if err != nil {
			return err
		}
		s.Positions[i] = z
		s.Temperatures[i] = temp
		s.Viscosities[i] = eta
	}
	return nil
}

func newSeries(points int) Series {
	return Series{
		Positions:    make([]float64, points),
		Temperatures: make([]float64, points),
		Viscosities:  make([]float64, points),
	}
}

// 顺序计算全部 N+1 个点
func Integrate(in model.SimulationInput, d Derived) (Series, error) {
	return integrate(in, d, nil)
}

func integrate(in model.SimulationInput, d Derived, e *executor) (Series, error) {
	n, err := StepCount(in)
	if err != nil {
		return Series{}, err
	}
	p, err := newProfile(in, d)
	if err != nil {
		return Series{}, err
	}

	s := newSeries(n + 1)
	whole := task{start: 0, end: n + 1}
	var pointErr *Error
	if e == nil || !e.worthSplitting(whole) {
		pointErr = p.fill(s, whole)
	} else {
		pointErr = e.dispatch(whole, func(t task) *Error {
			return p.fill(s, t)
		})
	}
	if pointErr != nil {
		return Series{}, pointErr
	}
	return s, nil
}
