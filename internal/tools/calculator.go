package tools

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/GregMSThompson/tool-agent/internal/dto"
	"github.com/GregMSThompson/tool-agent/internal/expr"
)

const resultPrecision = 6

var (
	disallowedChars = regexp.MustCompile(`[^0-9.+\-*/()\s]`)
	operatorChar    = regexp.MustCompile(`[+\-*/]`)
	allowedOnly     = regexp.MustCompile(`^[0-9.+\-*/()\s]+$`)
)

type calculatorArgs struct {
	Expression string `mapstructure:"expression"`
}

type calculatorTool struct{}

func NewCalculatorTool() *calculatorTool {
	return &calculatorTool{}
}

func (c *calculatorTool) Execute(_ context.Context, query string, params map[string]any) (dto.ToolResult, error) {
	args, err := decodeParams[calculatorArgs](params)
	if err != nil {
		return nil, err
	}
	expression := args.Expression
	if expression == "" {
		expression = query
	}
	return Calculate(expression), nil
}

// Calculate evaluates the arithmetic left in expression once everything but
// digits, operators, parentheses and whitespace has been stripped.
func Calculate(expression string) *dto.CalculatorResult {
	cleaned := strings.TrimSpace(disallowedChars.ReplaceAllLiteralString(expression, ""))
	if !operatorChar.MatchString(cleaned) {
		return calculatorFailure(expression, "No arithmetic operation found")
	}
	if !allowedOnly.MatchString(cleaned) {
		return calculatorFailure(expression, "Unsafe characters in expression")
	}

	value, err := expr.Eval(cleaned)
	if errors.Is(err, expr.ErrDivisionByZero) {
		return calculatorFailure(expression, "Division by zero")
	}
	if err != nil {
		return calculatorFailure(expression, "Evaluation error: "+err.Error())
	}

	value = value.Round(resultPrecision)
	return &dto.CalculatorResult{
		Success:          true,
		Expression:       expression,
		ParsedExpression: cleaned,
		Result:           value.Number(),
		Natural:          cleaned + " = " + value.String(),
	}
}

func calculatorFailure(expression, message string) *dto.CalculatorResult {
	return &dto.CalculatorResult{
		Success:    false,
		Expression: expression,
		Error:      message,
	}
}
