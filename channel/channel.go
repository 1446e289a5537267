package channel

import (
	"flowsim/material"
	"flowsim/model"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// 通道的规格 + 盖板工艺参数配置
// 单位: m, m/s, °C

type Channel struct {
	Width  float64 // 宽度 W
	Depth  float64 // 深度 H
	Length float64 // 长度 L
}

type Cover struct {
	Speed       float64 // 盖板速度 Vu
	Temperature float64 // 盖板温度 Tu
}

// 通道及工艺配置
type Setup struct {
	Channel Channel
	Cover   Cover
	Step    float64 // 计算步长 Δz
}

func DefaultSetup() Setup {
	return Setup{
		Channel: Channel{Width: 0.1, Depth: 0.01, Length: 1.0},
		Cover:   Cover{Speed: 0.05, Temperature: 190},
		Step:    0.1,
	}
}

func LoadSetup(file *ini.File) Setup {
	def := DefaultSetup()
	section := file.Section("channel")
	s := Setup{
		Channel: Channel{
			Width:  section.Key("Width").MustFloat64(def.Channel.Width),
			Depth:  section.Key("Depth").MustFloat64(def.Channel.Depth),
			Length: section.Key("Length").MustFloat64(def.Channel.Length),
		},
		Cover: Cover{
			Speed:       section.Key("CoverSpeed").MustFloat64(def.Cover.Speed),
			Temperature: section.Key("CoverTemp").MustFloat64(def.Cover.Temperature),
		},
		Step: section.Key("Step").MustFloat64(def.Step),
	}
	log.WithFields(log.Fields{
		"width":  s.Channel.Width,
		"depth":  s.Channel.Depth,
		"length": s.Channel.Length,
		"step":   s.Step,
	}).Debug("channel setup")
	return s
}

// 非零字段覆盖当前配置
func (s Setup) Override(req model.MaterialReqData) Setup {
	if req.Width != 0 {
		s.Channel.Width = req.Width
	}
	if req.Depth != 0 {
		s.Channel.Depth = req.Depth
	}
	if req.Length != 0 {
		s.Channel.Length = req.Length
	}
	if req.CoverSpeed != 0 {
		s.Cover.Speed = req.CoverSpeed
	}
	if req.CoverTemp != 0 {
		s.Cover.Temperature = req.CoverTemp
	}
	if req.Step != 0 {
		s.Step = req.Step
	}
	return s
}

// 组合通道、工艺和材料参数
func Compose(s Setup, m material.Material) model.SimulationInput {
	return model.SimulationInput{
		Width:  s.Channel.Width,
		Depth:  s.Channel.Depth,
		Length: s.Channel.Length,

		Density:             m.Properties.Density,
		HeatCapacity:        m.Properties.HeatCapacity,
		GlassTransitionTemp: m.Properties.GlassTransitionTemp,
		MeltingTemp:         m.Properties.MeltingTemp,

		CoverSpeed: s.Cover.Speed,
		CoverTemp:  s.Cover.Temperature,

		Mu0:               m.Coefficients.Mu0,
		FirstConstantWLF:  m.Coefficients.FirstConstantWLF,
		SecondConstantWLF: m.Coefficients.SecondConstantWLF,
		CastingTemp:       m.Coefficients.CastingTemp,
		FlowIndex:         m.Coefficients.FlowIndex,
		HeatTransfer:      m.Coefficients.HeatTransfer,

		Step: s.Step,
	}
}
