package services

import (
	"fmt"
	"strings"

	"github.com/GregMSThompson/tool-agent/internal/dto"
)

const fallbackReply = "I'm not sure how to help with that. Try asking about math, time, or weather."

func renderResponse(result dto.ToolResult, query string) string {
	switch r := result.(type) {
	case *dto.CalculatorResult:
		if !r.Success {
			return fmt.Sprintf("I couldn't calculate that: %s.", orDefault(r.Error, "invalid expression"))
		}
		if r.Natural != "" {
			return r.Natural
		}
		return fmt.Sprintf("The result of %s is %s.", orDefault(r.Expression, query), r.Result)

	case *dto.TimeResult:
		if !r.Success {
			return fmt.Sprintf("Time query failed: %s.", orDefault(r.Error, "unknown error"))
		}
		return fmt.Sprintf("The current time is %s (local).", r.Time)

	case *dto.WeatherResult:
		if !r.Success {
			return fmt.Sprintf("Weather query failed: %s.", orDefault(r.Error, "unknown error"))
		}
		return fmt.Sprintf("The weather in %s is %s with a temperature of %d°%s.",
			orDefault(r.Location, "your area"),
			orDefault(r.Condition, "unknown"),
			r.Temperature,
			unitSymbol(r.Unit))

	default:
		return fallbackReply
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func unitSymbol(unit string) string {
	unit = orDefault(strings.TrimSpace(unit), "Celsius")
	return unit[:1]
}
