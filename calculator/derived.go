package calculator

import (
	"math"

	"flowsim/model"
)

// 由输入参数推导出的中间量
type Derived struct {
	F       float64 // 通道形状系数
	QCH     float64 // 体积流量, m³/s
	Gamma   float64 // 剪切速率, 1/s
	QGamma  float64 // 粘性耗散热, W/m
	QAlpha  float64 // 盖板热流, W/m
	AvgTemp float64 // WLF 线性化的平均温度
	C1      float64
	C2      float64
	B       float64 // 粘度的温度敏感系数
}

// 按固定顺序计算中间量，调用前须通过 Validate
func Derive(in model.SimulationInput) (Derived, error) {
	var d Derived
	ratio := in.Depth / in.Width
	d.F = 0.125*math.Pow(ratio, 2) - 0.625*ratio + 1
	d.QCH = (in.Depth * in.Width * in.CoverSpeed / 2) * d.F
	d.Gamma = in.CoverSpeed / in.Depth
	d.QGamma = in.Depth * in.Width * in.Mu0 * math.Pow(d.Gamma, in.FlowIndex+1)
	d.QAlpha = in.Width * in.HeatTransfer * in.CoverTemp
	d.AvgTemp = (in.MeltingTemp + (in.GlassTransitionTemp + 100)) / 2

	d.C2 = in.SecondConstantWLF + in.CastingTemp - in.GlassTransitionTemp
	if d.C2 == 0 {
		return Derived{}, domainError("derive", -1, "C2 = C2g + Tr - Tg is zero")
	}
	d.C1 = (in.FirstConstantWLF * in.SecondConstantWLF) / d.C2

	bDenominator := d.C2 + (d.AvgTemp - in.CastingTemp)
	if bDenominator == 0 {
		return Derived{}, domainError("derive", -1, "C2 + (Tavg - Tr) is zero")
	}
	d.B = d.C1 / bDenominator
	if d.B == 0 {
		return Derived{}, domainError("derive", -1, "sensitivity coefficient b is zero")
	}

	for _, v := range [...]struct {
		name  string
		value float64
	}{
		{"F", d.F}, {"QCH", d.QCH}, {"gamma", d.Gamma}, {"qGamma", d.QGamma},
		{"qAlpha", d.QAlpha}, {"C1", d.C1}, {"b", d.B},
	} {
		if !isFinite(v.value) {
			return Derived{}, domainError("derive", -1, "%s is not finite: %v", v.name, v.value)
		}
	}
	return d, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
