package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/tool-agent/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	AgentSvc        AgentService
}
