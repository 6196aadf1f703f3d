package tools

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/GregMSThompson/tool-agent/internal/dto"
)

//go:embed weather_conditions.yaml
var weatherConditionsYAML []byte

const (
	defaultLocation = "your area"
	weatherUnit     = "Celsius"
	weatherNote     = "Simulated weather for demo"
)

var (
	fallbackRange = IntRange{Min: 10, Max: 25}
	humidityRange = IntRange{Min: 35, Max: 95}
	windRange     = IntRange{Min: 0, Max: 50}
)

type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type WeatherCatalog struct {
	Conditions        []string            `yaml:"conditions"`
	TemperatureRanges map[string]IntRange `yaml:"temperature_ranges"`
}

// TemperatureRange returns the range for condition, or the fallback range
// when the condition has none.
func (c WeatherCatalog) TemperatureRange(condition string) IntRange {
	if r, ok := c.TemperatureRanges[condition]; ok {
		return r
	}
	return fallbackRange
}

// LoadWeatherCatalog parses the embedded condition table.
func LoadWeatherCatalog() (WeatherCatalog, error) {
	var catalog WeatherCatalog
	if err := yaml.Unmarshal(weatherConditionsYAML, &catalog); err != nil {
		return WeatherCatalog{}, fmt.Errorf("parse weather conditions: %w", err)
	}
	if len(catalog.Conditions) == 0 {
		return WeatherCatalog{}, fmt.Errorf("parse weather conditions: no conditions defined")
	}
	for name, r := range catalog.TemperatureRanges {
		if r.Min > r.Max {
			return WeatherCatalog{}, fmt.Errorf("parse weather conditions: %s has min %d above max %d", name, r.Min, r.Max)
		}
	}
	return catalog, nil
}

// RandomSource must be safe for concurrent use when shared across requests.
type RandomSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type weatherArgs struct {
	Location string `mapstructure:"location"`
}

type weatherTool struct {
	catalog WeatherCatalog
	rng     RandomSource
}

// NewWeatherTool builds a simulated weather tool. A nil rng uses the
// process-wide generator.
func NewWeatherTool(rng RandomSource) (*weatherTool, error) {
	catalog, err := LoadWeatherCatalog()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = globalRand{}
	}
	return &weatherTool{catalog: catalog, rng: rng}, nil
}

func (t *weatherTool) Execute(_ context.Context, _ string, params map[string]any) (dto.ToolResult, error) {
	args, err := decodeParams[weatherArgs](params)
	if err != nil {
		return nil, err
	}
	location := args.Location
	if location == "" {
		location = defaultLocation
	}

	condition := t.catalog.Conditions[t.rng.IntN(len(t.catalog.Conditions))]
	return &dto.WeatherResult{
		Success:      true,
		Location:     strings.TrimSpace(location),
		Condition:    condition,
		Temperature:  t.between(t.catalog.TemperatureRange(condition)),
		Humidity:     t.between(humidityRange),
		WindSpeedKmh: t.between(windRange),
		Unit:         weatherUnit,
		Note:         weatherNote,
	}, nil
}

// between draws uniformly from the closed range r.
func (t *weatherTool) between(r IntRange) int {
	return r.Min + t.rng.IntN(r.Max-r.Min+1)
}
