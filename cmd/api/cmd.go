package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/GregMSThompson/tool-agent/internal/bootstrap"
	"github.com/GregMSThompson/tool-agent/internal/config"
	"github.com/GregMSThompson/tool-agent/internal/handlers"
	"github.com/GregMSThompson/tool-agent/internal/response"
	"github.com/GregMSThompson/tool-agent/internal/router"
	"github.com/GregMSThompson/tool-agent/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// flags
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// config
	cfg, err := config.Load(opts.Config)
	exitOnError("config load failed", err, slog.Default())
	opts.apply(cfg)
	exitOnError("invalid config", cfg.Validate(), slog.Default())

	// bootstrap
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// services
	agentSvc := services.NewAgentService(bs.Recognizer, bs.Registry)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.AgentSvc = agentSvc

	// router
	r := router.NewRouter(deps)

	if cfg.Banner {
		printBanner(cfg.Addr())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = serve(ctx, newServer(cfg.Addr(), r), cfg.ShutdownTimeout, bs.Log)
	exitOnError("server stopped", err, bs.Log)
}
