package dto

type IntentType string

const (
	IntentCalculator IntentType = "calculator"
	IntentTime       IntentType = "time"
	IntentWeather    IntentType = "weather"
	IntentUnknown    IntentType = "unknown"
)

// Intent is the classification of a single query. Tool is empty when no
// tool applies.
type Intent struct {
	Type       IntentType     `json:"type"`
	Tool       string         `json:"tool,omitempty"`
	Parameters map[string]any `json:"parameters"`
	Confidence float64        `json:"confidence"`
}
