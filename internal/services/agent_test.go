package services

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/GregMSThompson/tool-agent/internal/dto"
	"github.com/GregMSThompson/tool-agent/internal/errs"
	"github.com/GregMSThompson/tool-agent/internal/intent"
	"github.com/GregMSThompson/tool-agent/internal/tools"
	"github.com/GregMSThompson/tool-agent/pkg/helpers"
)

type stubRecognizer struct {
	called bool
	intent dto.Intent
}

func (s *stubRecognizer) Recognize(_ string) dto.Intent {
	s.called = true
	return s.intent
}

type stubRegistry struct {
	names        []string
	invokeCalled bool
	result       dto.ToolResult
	err          error
	panicWith    any
}

func (s *stubRegistry) Has(name string) bool { return slices.Contains(s.names, name) }

func (s *stubRegistry) Invoke(_ context.Context, _ string, _ map[string]any, _ string) (dto.ToolResult, error) {
	s.invokeCalled = true
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	return s.result, s.err
}

func (s *stubRegistry) List() []string { return s.names }

func newTestService(t *testing.T) *agentService {
	t.Helper()
	fixed := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)
	registry, err := tools.NewDefaultRegistry(func() time.Time { return fixed }, nil)
	if err != nil {
		t.Fatalf("NewDefaultRegistry returned error: %v", err)
	}
	return NewAgentService(intent.NewRecognizer(), registry)
}

func TestAgentQueryCalculator(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(helpers.TestCtx(), "  12 + 5 ")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if resp.Query != "12 + 5" || resp.Intent != dto.IntentCalculator || resp.Confidence != 0.98 {
		t.Fatalf("unexpected response header: %+v", resp)
	}
	if resp.ToolUsed == nil || *resp.ToolUsed != "calculator" {
		t.Fatalf("ToolUsed = %v, want calculator", resp.ToolUsed)
	}
	out, ok := resp.ToolOutput.(*dto.CalculatorResult)
	if !ok || out.Result != "17" {
		t.Fatalf("unexpected tool output: %#v", resp.ToolOutput)
	}
	if resp.Response != "12 + 5 = 17" {
		t.Fatalf("Response = %q", resp.Response)
	}
}

func TestAgentQuerySpelledOutMath(t *testing.T) {
	resp, err := newTestService(t).Query(helpers.TestCtx(), "what is 5 plus 3")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	out := resp.ToolOutput.(*dto.CalculatorResult)
	if out.Expression != "5 + 3" || out.Result != "8" {
		t.Fatalf("unexpected tool output: %+v", out)
	}
}

func TestAgentQueryDivisionByZero(t *testing.T) {
	resp, err := newTestService(t).Query(helpers.TestCtx(), "10 / 0")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	out := resp.ToolOutput.(*dto.CalculatorResult)
	if out.Success || !strings.Contains(strings.ToLower(out.Error), "division by zero") {
		t.Fatalf("unexpected tool output: %+v", out)
	}
	if resp.Response != "I couldn't calculate that: Division by zero." {
		t.Fatalf("Response = %q", resp.Response)
	}
}

func TestAgentQueryTime(t *testing.T) {
	resp, err := newTestService(t).Query(helpers.TestCtx(), "what time is it")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if resp.Intent != dto.IntentTime || resp.Confidence != 0.9 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	out := resp.ToolOutput.(*dto.TimeResult)
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`).MatchString(out.Time) {
		t.Fatalf("Time = %q, want HH:MM:SS", out.Time)
	}
	if resp.Response != "The current time is 09:30:00 (local)." {
		t.Fatalf("Response = %q", resp.Response)
	}
}

func TestAgentQueryWeather(t *testing.T) {
	resp, err := newTestService(t).Query(helpers.TestCtx(), "weather in Tokyo")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if resp.Intent != dto.IntentWeather || resp.Confidence != 0.85 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	out := resp.ToolOutput.(*dto.WeatherResult)
	if !out.Success || out.Location != "tokyo" {
		t.Fatalf("unexpected tool output: %+v", out)
	}
	catalog, _ := tools.LoadWeatherCatalog()
	if !slices.Contains(catalog.Conditions, out.Condition) {
		t.Fatalf("unexpected condition %q", out.Condition)
	}
	r := catalog.TemperatureRange(out.Condition)
	if out.Temperature < r.Min || out.Temperature > r.Max {
		t.Fatalf("temperature %d outside %+v", out.Temperature, r)
	}
	if !strings.HasPrefix(resp.Response, "The weather in tokyo is "+out.Condition) || !strings.HasSuffix(resp.Response, "°C.") {
		t.Fatalf("Response = %q", resp.Response)
	}
}

func TestAgentQueryUnknown(t *testing.T) {
	registry := &stubRegistry{names: []string{"calculator"}}
	svc := NewAgentService(intent.NewRecognizer(), registry)

	resp, err := svc.Query(helpers.TestCtx(), "asdkfj random text")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if resp.Intent != dto.IntentUnknown || resp.Confidence != 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ToolUsed != nil || resp.ToolOutput != nil {
		t.Fatalf("unknown intent should not use a tool: %+v", resp)
	}
	if resp.Response != unknownIntentHelp {
		t.Fatalf("Response = %q", resp.Response)
	}
	if registry.invokeCalled {
		t.Fatalf("registry should not be invoked")
	}
}

func TestAgentQueryEmpty(t *testing.T) {
	recognizer := &stubRecognizer{}
	svc := NewAgentService(recognizer, &stubRegistry{})

	for _, q := range []string{"", "   \t\n"} {
		_, err := svc.Query(helpers.TestCtx(), q)
		var valErr *errs.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("Query(%q) error = %v, want ValidationError", q, err)
		}
		if valErr.Message != "Query cannot be empty" {
			t.Fatalf("Message = %q", valErr.Message)
		}
	}
	if recognizer.called {
		t.Fatalf("recognizer should not run for empty queries")
	}
}

func TestAgentQueryToolNotAvailable(t *testing.T) {
	recognizer := &stubRecognizer{intent: dto.Intent{Type: dto.IntentWeather, Tool: "weather", Confidence: 0.85}}
	registry := &stubRegistry{names: []string{"calculator"}}

	resp, err := NewAgentService(recognizer, registry).Query(helpers.TestCtx(), "weather in Oslo")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if resp.Response != "Detected intent 'weather', but the tool 'weather' is not available." {
		t.Fatalf("Response = %q", resp.Response)
	}
	if resp.ToolUsed != nil || resp.ToolOutput != nil || resp.Confidence != 0.85 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if registry.invokeCalled {
		t.Fatalf("registry should not be invoked")
	}
}

func TestAgentQueryToolFault(t *testing.T) {
	recognizer := &stubRecognizer{intent: dto.Intent{Type: dto.IntentTime, Tool: "time", Confidence: 0.9}}

	tests := []struct {
		name     string
		registry *stubRegistry
		message  string
	}{
		{"error", &stubRegistry{names: []string{"time"}, err: errors.New("clock unavailable")}, "clock unavailable"},
		{"panic", &stubRegistry{names: []string{"time"}, panicWith: "boom"}, "boom"},
		{"nil result", &stubRegistry{names: []string{"time"}}, "tool returned no result"},
	}
	for _, tt := range tests {
		resp, err := NewAgentService(recognizer, tt.registry).Query(helpers.TestCtx(), "time")
		if err != nil {
			t.Fatalf("%s: Query returned error: %v", tt.name, err)
		}
		if resp.ToolUsed == nil || *resp.ToolUsed != "time" {
			t.Fatalf("%s: ToolUsed = %v", tt.name, resp.ToolUsed)
		}
		fault, ok := resp.ToolOutput.(*dto.FaultResult)
		if !ok || fault.Error != tt.message {
			t.Fatalf("%s: ToolOutput = %#v", tt.name, resp.ToolOutput)
		}
		if resp.Response != "Tool execution failed: "+tt.message {
			t.Fatalf("%s: Response = %q", tt.name, resp.Response)
		}
	}
}

func TestAgentStatus(t *testing.T) {
	status := newTestService(t).Status(context.Background())
	if status.Status != "running" || status.Message != "Tool-Using Agent API is active" {
		t.Fatalf("unexpected status: %+v", status)
	}
	if !slices.Equal(status.AvailableTools, []string{"calculator", "time", "weather"}) {
		t.Fatalf("AvailableTools = %v", status.AvailableTools)
	}
}
