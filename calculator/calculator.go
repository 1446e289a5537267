package calculator

import (
	"flowsim/model"
	log "github.com/sirupsen/logrus"
)

// 非等温流动计算器，不保存任何计算状态，可被多个 goroutine 同时使用
type Calculator struct {
	e *executor
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{
		e: newExecutor(cfg.Workers, cfg.ParallelThreshold),
	}
}

var defaultCalculator = NewCalculator(Config{Workers: 1})

// 顺序计算
func RunSimulation(in model.SimulationInput) (model.SimulationResult, error) {
	return defaultCalculator.Run(in)
}

// 校验 -> 中间量 -> 沿程分布 -> 汇总，任一步失败则不返回部分结果
func (c *Calculator) Run(in model.SimulationInput) (result model.SimulationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = model.SimulationResult{}, programmingError("run", r)
		}
	}()

	if err := Validate(in); err != nil {
		return model.SimulationResult{}, err
	}
	d, err := Derive(in)
	if err != nil {
		return model.SimulationResult{}, err
	}
	log.WithFields(log.Fields{
		"F":   d.F,
		"QCH": d.QCH,
		"b":   d.B,
	}).Debug("derived quantities")

	s, err := integrate(in, d, c.e)
	if err != nil {
		return model.SimulationResult{}, err
	}
	return Aggregate(in, d, s)
}
