package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/GregMSThompson/tool-agent/internal/dto"
	"github.com/GregMSThompson/tool-agent/internal/errs"
	"github.com/GregMSThompson/tool-agent/pkg/helpers"
	"github.com/GregMSThompson/tool-agent/pkg/logger"
)

const (
	statusRunning = "running"
	statusMessage = "Tool-Using Agent API is active"

	emptyQueryMessage = "Query cannot be empty"
	unknownIntentHelp = "I couldn't detect an intent. Try asking about math, the current time, or the weather " +
		"(e.g., '12 + 5', 'what time is it', 'weather in Tokyo')."
)

type intentRecognizer interface {
	Recognize(query string) dto.Intent
}

type toolRegistry interface {
	Has(name string) bool
	Invoke(ctx context.Context, name string, params map[string]any, query string) (dto.ToolResult, error)
	List() []string
}

type agentService struct {
	recognizer intentRecognizer
	registry   toolRegistry
}

func NewAgentService(recognizer intentRecognizer, registry toolRegistry) *agentService {
	return &agentService{
		recognizer: recognizer,
		registry:   registry,
	}
}

// Query classifies the query, runs the matching tool and renders a reply.
// Only an empty query is reported as an error; every other outcome is a
// QueryResponse.
func (s *agentService) Query(ctx context.Context, query string) (dto.QueryResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return dto.QueryResponse{}, errs.NewValidationError(emptyQueryMessage)
	}

	intent := s.recognizer.Recognize(query)
	log, ctx := logger.With(ctx, "intent", intent.Type, "confidence", intent.Confidence)

	resp := dto.QueryResponse{
		Query:      query,
		Intent:     intent.Type,
		Confidence: intent.Confidence,
	}

	if intent.Type == dto.IntentUnknown {
		log.Info("no intent detected")
		resp.Confidence = 0
		resp.Response = unknownIntentHelp
		return resp, nil
	}

	if !s.registry.Has(intent.Tool) {
		log.Warn("tool not available", "tool", intent.Tool)
		resp.Response = fmt.Sprintf("Detected intent '%s', but the tool '%s' is not available.", intent.Type, intent.Tool)
		return resp, nil
	}

	resp.ToolUsed = helpers.Ptr(intent.Tool)
	result, err := s.invoke(ctx, intent, query)
	if err != nil {
		log.Warn("tool execution failed", "tool", intent.Tool, "error", err)
		resp.ToolOutput = &dto.FaultResult{Error: err.Error()}
		resp.Response = "Tool execution failed: " + err.Error()
		return resp, nil
	}

	resp.ToolOutput = result
	resp.Response = renderResponse(result, query)
	log.Info("query answered", "tool", intent.Tool, "success", result.Succeeded())
	return resp, nil
}

func (s *agentService) Status(_ context.Context) dto.StatusResponse {
	return dto.StatusResponse{
		Status:         statusRunning,
		Message:        statusMessage,
		AvailableTools: s.registry.List(),
	}
}

// invoke converts tool panics and nil results into errors so they never
// reach the transport.
func (s *agentService) invoke(ctx context.Context, intent dto.Intent, query string) (result dto.ToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error("tool panicked", "tool", intent.Tool, "panic", r)
			result, err = nil, errs.NewToolFaultError(intent.Tool, r)
		}
	}()

	result, err = s.registry.Invoke(ctx, intent.Tool, intent.Parameters, query)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errs.NewToolFaultError(intent.Tool, "tool returned no result")
	}
	return result, nil
}
