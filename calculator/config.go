package calculator

import (
	"runtime"

	"gopkg.in/ini.v1"
)

type Config struct {
	// 并行计算的 worker 数量
	Workers int
	// 计算点数达到该值时才并行计算
	ParallelThreshold int
}

func DefaultConfig() Config {
	return Config{
		Workers:           runtime.NumCPU(),
		ParallelThreshold: 4096,
	}
}

func LoadConfig(file *ini.File) Config {
	def := DefaultConfig()
	section := file.Section("calculator")
	return Config{
		Workers:           section.Key("Workers").MustInt(def.Workers),
		ParallelThreshold: section.Key("ParallelThreshold").MustInt(def.ParallelThreshold),
	}
}
