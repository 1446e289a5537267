package material

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const sectionPrefix = "material."

var ErrNotFound = errors.New("material: not found")

// 物性参数
type Properties struct {
	Density             float64 // 密度 ρ, kg/m³
	HeatCapacity        float64 // 比热容 c, J/(kg·°C)
	GlassTransitionTemp float64 // 玻璃化温度 Tg, °C
	MeltingTemp         float64 // 熔融温度 T0, °C
}

// 经验系数
type Coefficients struct {
	Mu0               float64 // 稠度系数 μ0, Pa·s^n
	FirstConstantWLF  float64 // C1,g
	SecondConstantWLF float64 // C2,g, °C
	CastingTemp       float64 // 参考温度 Tr, °C
	FlowIndex         float64 // 流动指数 n
	HeatTransfer      float64 // 盖板换热系数 αu, W/(m²·°C)
}

type Material struct {
	Key          string
	Name         string
	Type         string
	Properties   Properties
	Coefficients Coefficients
}

// 材料库，加载后只读
type Catalog struct {
	materials map[string]Material
}

func NewCatalog(materials ...Material) *Catalog {
	c := &Catalog{materials: make(map[string]Material, len(materials))}
	for _, m := range materials {
		c.materials[m.Key] = m
	}
	return c
}

// 从配置文件中所有 [material.<key>] 段加载材料
func Load(file *ini.File) (*Catalog, error) {
	c := NewCatalog()
	for _, section := range file.Sections() {
		if !strings.HasPrefix(section.Name(), sectionPrefix) {
			continue
		}
		m, err := parseSection(section)
		if err != nil {
			return nil, err
		}
		c.materials[m.Key] = m
		log.WithFields(log.Fields{
			"key":  m.Key,
			"name": m.Name,
		}).Debug("material loaded")
	}
	return c, nil
}

func parseSection(section *ini.Section) (Material, error) {
	key := strings.TrimPrefix(section.Name(), sectionPrefix)
	if key == "" {
		return Material{}, fmt.Errorf("material: empty key in section %q", section.Name())
	}

	values := make(map[string]float64)
	for _, name := range []string{
		"Density", "HeatCapacity", "GlassTransitionTemp", "MeltingTemp",
		"Mu0", "FirstConstantVLF", "SecondConstantVLF", "CastingTemp", "FlowIndex", "HeatTransfer",
	} {
		if !section.HasKey(name) {
			return Material{}, fmt.Errorf("material %s: missing %s", key, name)
		}
		v, err := section.Key(name).Float64()
		if err != nil {
			return Material{}, fmt.Errorf("material %s: %s: %w", key, name, err)
		}
		values[name] = v
	}

	return Material{
		Key:  key,
		Name: section.Key("Name").MustString(key),
		Type: section.Key("Type").String(),
		Properties: Properties{
			Density:             values["Density"],
			HeatCapacity:        values["HeatCapacity"],
			GlassTransitionTemp: values["GlassTransitionTemp"],
			MeltingTemp:         values["MeltingTemp"],
		},
		Coefficients: Coefficients{
			Mu0:               values["Mu0"],
			FirstConstantWLF:  values["FirstConstantVLF"],
			SecondConstantWLF: values["SecondConstantVLF"],
			CastingTemp:       values["CastingTemp"],
			FlowIndex:         values["FlowIndex"],
			HeatTransfer:      values["HeatTransfer"],
		},
	}, nil
}

func (c *Catalog) Get(key string) (Material, error) {
	m, ok := c.materials[key]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return m, nil
}

// 按字典序返回所有材料编号
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.materials))
	for k := range c.materials {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Catalog) Len() int {
	return len(c.materials)
}
