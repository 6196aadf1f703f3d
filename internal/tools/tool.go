// Package tools holds the stateless tools an intent can be dispatched to and
// the registry that binds them to names.
package tools

import (
	"context"

	"github.com/mitchellh/mapstructure"

	"github.com/GregMSThompson/tool-agent/internal/dto"
)

const (
	CalculatorName = "calculator"
	TimeName       = "time"
	WeatherName    = "weather"
)

// Tool runs a single intent. A structured failure is reported through the
// result; a returned error means the tool could not run at all.
type Tool interface {
	Execute(ctx context.Context, query string, params map[string]any) (dto.ToolResult, error)
}

func decodeParams[T any](params map[string]any) (T, error) {
	var out T
	if len(params) == 0 {
		return out, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, err
	}
	if err := decoder.Decode(params); err != nil {
		return out, err
	}
	return out, nil
}
