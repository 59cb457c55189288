package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/moonkev/loadtarget/internal/common/config"
	"github.com/moonkev/loadtarget/internal/loader/yaml"
	"github.com/moonkev/loadtarget/internal/model"
	"github.com/moonkev/loadtarget/internal/server"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("loadtarget failed", "error", err)
		os.Exit(1)
	}
}

// run parses args, logs to stdout and serves until the listener fails.
func run(args []string, stdout io.Writer) error {

	var port = config.DefaultPort
	var logLevel = config.LogLevelFlag(slog.LevelInfo)
	var routesFile = ""

	fs := flag.NewFlagSet("loadtarget", flag.ContinueOnError)
	fs.IntVar(&port, "port", port, "HTTP listen port")
	fs.Var(&logLevel, "log-level", "log level: debug, info, warn, error (default: info)")
	fs.StringVar(&routesFile, "routes-file", "", "path to YAML route list (default: /common, /average, /rare)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// Configure structured logging
	logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: logLevel.Level()}))
	slog.SetDefault(logger)

	if err := config.ValidatePort(port); err != nil {
		return fmt.Errorf("invalid -port: %w", err)
	}

	routes := model.DefaultRouteTable()
	if routesFile != "" {
		var err error
		routes, err = yaml.LoadConfig(yaml.Config{ConfigPath: routesFile})
		if err != nil {
			return fmt.Errorf("failed to load routes file: %w", err)
		}
	}

	srv := server.New(server.Config{
		Port:   port,
		Routes: routes,
		Logger: logger,
	})
	return srv.ListenAndServe()
}
