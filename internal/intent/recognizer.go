// Package intent classifies free-text queries into calculator, time or
// weather intents using keyword and pattern heuristics.
package intent

import (
	"regexp"
	"strings"

	"github.com/GregMSThompson/tool-agent/internal/dto"
)

const (
	symbolicMathConfidence = 0.98
	lexicalMathConfidence  = 0.90
	fallbackMathConfidence = 0.60
	timeConfidence         = 0.90
	weatherConfidence      = 0.85
)

type operatorWord struct {
	pattern *regexp.Regexp
	symbol  string
}

// Applied in order; "multiplied by" and "divided by" must stay whole phrases.
var operatorWords = []operatorWord{
	{regexp.MustCompile(`\bplus\b`), "+"},
	{regexp.MustCompile(`\bminus\b`), "-"},
	{regexp.MustCompile(`\btimes\b`), "*"},
	{regexp.MustCompile(`\bmultiplied by\b`), "*"},
	{regexp.MustCompile(`\bdivided by\b`), "/"},
	{regexp.MustCompile(`\bover\b`), "/"},
}

var (
	symbolicMathPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?\s*[+\-*/]\s*-?\d+(?:\.\d+)?`)
	lexicalMathPattern  = regexp.MustCompile(`\d+\s*[+\-*/]\s*\d+`)
	nonExpressionChars  = regexp.MustCompile(`[^0-9.+\-*/()\s]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
)

var mathWords = []string{"plus", "minus", "times", "multiplied", "divided", "over"}

// Matched as substrings, so "time" already covers the longer phrases.
var timeKeywords = []string{"time", "what time", "current time", "now"}

var weatherKeywords = []string{"weather", "forecast", "temperature", "temp", "rain", "sunny", "cloudy"}

type Recognizer struct{}

func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// Recognize returns the first matching intent in priority order: symbolic
// math, spelled-out math, time, weather, unknown.
func (r *Recognizer) Recognize(query string) dto.Intent {
	q := strings.TrimSpace(query)
	lower := strings.ToLower(q)
	normalized := normalizeOperators(lower)

	if expression := symbolicMathPattern.FindString(normalized); expression != "" {
		return calculatorIntent(expression, symbolicMathConfidence)
	}

	if containsAny(lower, mathWords) {
		candidate := nonExpressionChars.ReplaceAllLiteralString(normalized, " ")
		candidate = strings.TrimSpace(whitespaceRun.ReplaceAllLiteralString(candidate, " "))
		if expression := lexicalMathPattern.FindString(candidate); expression != "" {
			return calculatorIntent(expression, lexicalMathConfidence)
		}
		return calculatorIntent(q, fallbackMathConfidence)
	}

	if containsAny(lower, timeKeywords) {
		return dto.Intent{
			Type:       dto.IntentTime,
			Tool:       string(dto.IntentTime),
			Parameters: map[string]any{},
			Confidence: timeConfidence,
		}
	}

	if containsAny(lower, weatherKeywords) {
		return dto.Intent{
			Type:       dto.IntentWeather,
			Tool:       string(dto.IntentWeather),
			Parameters: map[string]any{"location": ExtractLocation(lower)},
			Confidence: weatherConfidence,
		}
	}

	return dto.Intent{
		Type:       dto.IntentUnknown,
		Parameters: map[string]any{},
		Confidence: 0,
	}
}

func calculatorIntent(expression string, confidence float64) dto.Intent {
	return dto.Intent{
		Type:       dto.IntentCalculator,
		Tool:       string(dto.IntentCalculator),
		Parameters: map[string]any{"expression": expression},
		Confidence: confidence,
	}
}

func normalizeOperators(text string) string {
	for _, w := range operatorWords {
		text = w.pattern.ReplaceAllLiteralString(text, w.symbol)
	}
	return text
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
