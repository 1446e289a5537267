package model

// 单位约定
// 1. 长度 m，速度 m/s
// 2. 温度 °C
// 3. 密度 kg/m³，比热容 J/(kg·°C)
// 4. 换热系数 W/(m²·°C)

// 计算输入参数
type SimulationInput struct {
	// 通道几何参数
	Width  float64 `json:"width" validate:"gt=0"`  // W
	Depth  float64 `json:"depth" validate:"gt=0"`  // H
	Length float64 `json:"length" validate:"gt=0"` // L

	// 物性参数
	Density             float64 `json:"density"`             // ρ
	HeatCapacity        float64 `json:"heatCapacity"`        // c
	GlassTransitionTemp float64 `json:"glassTransitionTemp"` // Tg
	MeltingTemp         float64 `json:"meltingTemp"`         // T0

	// 工艺参数
	CoverSpeed float64 `json:"coverSpeed" validate:"gt=0"` // Vu
	CoverTemp  float64 `json:"coverTemp" validate:"gt=0"`  // Tu

	// 经验系数
	Mu0               float64 `json:"mu0"`               // 稠度系数 μ0
	FirstConstantWLF  float64 `json:"firstConstantVLF"`  // C1,g
	SecondConstantWLF float64 `json:"secondConstantVLF"` // C2,g
	CastingTemp       float64 `json:"castingTemp"`       // 参考温度 Tr
	FlowIndex         float64 `json:"flowIndex"`         // n
	HeatTransfer      float64 `json:"heatTransfer"`      // αu

	// 计算步长 Δz
	Step float64 `json:"step"`
}

// 计算结果，生成后不再修改
type SimulationResult struct {
	ShapeFactor    float64 `json:"F"`
	FlowRate       float64 `json:"QCH"`
	ShearRate      float64 `json:"gamma"`
	ViscousHeat    float64 `json:"qGamma"`
	HeatFlux       float64 `json:"qAlpha"`
	StepsCount     int     `json:"N"`
	Productivity   float64 `json:"productivity"`     // Q, kg/h
	FinalTemp      float64 `json:"finalTemperature"` // Tp
	FinalViscosity float64 `json:"finalViscosity"`   // ηp

	Positions    []float64 `json:"positions"`    // z
	Temperatures []float64 `json:"temperatures"` // T(z)
	Viscosities  []float64 `json:"viscosities"`  // η(z)
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Id      string `json:"id,omitempty"`
	Content string `json:"content"`
}

// 按材料编号发起计算的请求，几何参数和工艺参数缺省时使用配置值
type MaterialReqData struct {
	Material   string  `json:"material"`
	Width      float64 `json:"width"`
	Depth      float64 `json:"depth"`
	Length     float64 `json:"length"`
	CoverSpeed float64 `json:"coverSpeed"`
	CoverTemp  float64 `json:"coverTemp"`
	Step       float64 `json:"step"`
}

// 错误回复
type ErrorContent struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
