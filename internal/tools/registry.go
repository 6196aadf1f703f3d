package tools

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/GregMSThompson/tool-agent/internal/dto"
	"github.com/GregMSThompson/tool-agent/internal/errs"
)

type Binding struct {
	Name string
	Tool Tool
}

// Registry maps tool names to tools. It is built once and never modified,
// so it is safe to share between requests.
type Registry struct {
	names []string
	tools map[string]Tool
}

func NewRegistry(bindings ...Binding) (*Registry, error) {
	r := &Registry{
		names: make([]string, 0, len(bindings)),
		tools: make(map[string]Tool, len(bindings)),
	}
	for _, b := range bindings {
		if b.Name == "" || b.Tool == nil {
			return nil, fmt.Errorf("invalid tool binding %q", b.Name)
		}
		if _, ok := r.tools[b.Name]; ok {
			return nil, fmt.Errorf("tool %q registered twice", b.Name)
		}
		r.names = append(r.names, b.Name)
		r.tools[b.Name] = b.Tool
	}
	return r, nil
}

// NewDefaultRegistry registers the calculator, time and weather tools.
func NewDefaultRegistry(clockNow func() time.Time, rng RandomSource) (*Registry, error) {
	weather, err := NewWeatherTool(rng)
	if err != nil {
		return nil, err
	}
	return NewRegistry(
		Binding{Name: CalculatorName, Tool: NewCalculatorTool()},
		Binding{Name: TimeName, Tool: NewTimeTool(clockNow)},
		Binding{Name: WeatherName, Tool: weather},
	)
}

func (r *Registry) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// Invoke runs the named tool. Callers are expected to check Has first.
func (r *Registry) Invoke(ctx context.Context, name string, params map[string]any, query string) (dto.ToolResult, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Tool '%s' is not registered.", name))
	}
	if params == nil {
		params = map[string]any{}
	}
	return tool.Execute(ctx, query, params)
}

// List returns tool names in registration order.
func (r *Registry) List() []string {
	return slices.Clone(r.names)
}
