package tools

import (
	"context"
	"time"

	"github.com/GregMSThompson/tool-agent/internal/dto"
)

type timeTool struct {
	clockNow func() time.Time
}

func NewTimeTool(clockNow func() time.Time) *timeTool {
	if clockNow == nil {
		clockNow = time.Now
	}
	return &timeTool{clockNow: clockNow}
}

func (t *timeTool) Execute(_ context.Context, _ string, _ map[string]any) (dto.ToolResult, error) {
	now := t.clockNow()
	return &dto.TimeResult{
		Success:      true,
		Time:         now.Format("15:04:05"),
		Time12h:      now.Format("03:04:05 PM"),
		Date:         now.Format("2006-01-02"),
		FullDatetime: now.Format("2006-01-02 15:04:05"),
		DayOfWeek:    now.Weekday().String(),
	}, nil
}
