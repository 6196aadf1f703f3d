package bootstrap

import (
	"log/slog"
	"time"

	"github.com/GregMSThompson/tool-agent/internal/config"
	"github.com/GregMSThompson/tool-agent/internal/intent"
	"github.com/GregMSThompson/tool-agent/internal/tools"
	"github.com/GregMSThompson/tool-agent/pkg/logger"
)

type Bootstrap struct {
	Log        *slog.Logger
	Recognizer *intent.Recognizer
	Registry   *tools.Registry
}

// Run builds the process-wide collaborators. The registry is populated here
// once and is read-only afterwards.
func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.ForFormat(cfg.LogFormat))
	bs.Recognizer = intent.NewRecognizer()
	bs.Registry, err = tools.NewDefaultRegistry(time.Now, nil)
	if err != nil {
		return bs, err
	}

	bs.Log.Debug("tools registered", "tools", bs.Registry.List())
	return bs, nil
}
