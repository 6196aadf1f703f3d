package main

import (
	"github.com/GregMSThompson/tool-agent/internal/config"
)

// options are parsed by github.com/jessevdk/go-flags; set values override
// the loaded config.
type options struct {
	Config   string `short:"c" long:"config" description:"YAML or JSON config file"`
	Host     string `long:"host" description:"interface to listen on"`
	Port     int    `short:"p" long:"port" description:"port to listen on"`
	LogLevel string `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"minimum log level"`
	NoBanner bool   `long:"no-banner" description:"skip the startup banner"`
}

func (o *options) apply(cfg *config.Config) {
	if o.Host != "" {
		cfg.Host = o.Host
	}
	if o.Port != 0 {
		cfg.Port = o.Port
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.NoBanner {
		cfg.Banner = false
	}
}
