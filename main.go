// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sentriefraud/ruleengine/cmd"
	"github.com/sentriefraud/ruleengine/constants"
	"github.com/sentriefraud/ruleengine/otel"
)

var version = constants.APPVERSION

func main() {
	ctx := context.Background()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, os.Kill)
	defer stop()

	// set an exit code
	exitCode := 0

	// setup logger
	logger := setupDefaultLogger()
	slog.SetDefault(logger)

	if otelCleanup, err := setupOTel(ctx); err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	} else if otelCleanup != nil {
		defer func() { _ = otelCleanup(context.WithoutCancel(ctx)) }()
	}

	cli := cmd.Setup(ctx, version)
	if err := cmd.Execute(ctx, cli, os.Args); err != nil {
		// print the error as `Error: <error>`
		fmt.Printf("Error: %s\n", err)
		exitCode = 1
	}
	os.Exit(exitCode)
}

// setupOTel bootstraps OpenTelemetry around the CLI process only (the
// engine library itself never logs or traces), gated by RULEENGINE_OTEL_*
// environment variables — the same-shaped knobs the teacher's `serve`
// command exposed as flags, promoted to ambient env vars now that the
// devtool CLI is a one-shot command rather than a long-running server.
func setupOTel(ctx context.Context) (otel.ShutdownFn, error) {
	enabled, _ := strconv.ParseBool(os.Getenv(constants.EnvOtelEnabled))
	if !enabled {
		return nil, nil
	}

	traceExecution, _ := strconv.ParseBool(os.Getenv(constants.EnvOtelTraceExecution))

	endpoint := os.Getenv(constants.EnvOtelEndpoint)
	if endpoint == "" {
		endpoint = "http://localhost:4317"
	}
	protocol := os.Getenv(constants.EnvOtelProtocol)
	if protocol == "" {
		protocol = "grpc"
	}

	return otel.InitProvider(ctx, otel.OTelConfig{
		Enabled:        true,
		Endpoint:       endpoint,
		Protocol:       protocol,
		ServiceName:    constants.APPNAME,
		ServiceVersion: version,
		TraceExecution: traceExecution,
	})
}

func setupDefaultLogger() *slog.Logger {
	logLevel := slog.LevelVar{}
	if _, ok := os.LookupEnv(constants.EnvDebug); ok {
		// force debug log if we are running in DEBUG mode
		os.Setenv(constants.EnvLogLevel, "DEBUG")
	}
	// set log level from env
	switch strings.ToUpper(os.Getenv(constants.EnvLogLevel)) { // DEBUG, INFO, WARN, ERROR
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "INFO":
		logLevel.Set(slog.LevelInfo)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	attrs := []slog.Attr{
		slog.String("app", constants.APPNAME),
		slog.String("version", version),

		// generate a unique instance id - so that we may track logs from a separate instances (if at all)
		slog.String("instance", uuid.NewString()),
	}
	if _, ok := os.LookupEnv(constants.EnvDebug); ok {
		attrs = append(
			attrs,
			slog.Bool("debug", true),
			slog.Any("args", os.Args),
		)
		if exec, err := os.Executable(); err == nil {
			attrs = append(attrs, slog.String("executable", exec))
		}
	}

	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     &logLevel,
	}).WithAttrs(attrs)

	logger := slog.New(logHandler)

	return logger
}
