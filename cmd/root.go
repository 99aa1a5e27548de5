/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	config "github.com/tupyy/fpintro/configuration"
	httpClient "github.com/tupyy/fpintro/internal/client/http"
	"github.com/tupyy/fpintro/internal/forum"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile   string
	logLevel     string
	baseURL      string
	subreddit    string
	outputFormat string
	timeout      time.Duration
	trace        bool

	shutdownTracing func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:          "fpintro",
	Short:        "Functional programming idioms, one command per chapter",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfiguration(cmd, configFile); err != nil {
			return err
		}

		logger := setupLogger(config.GetLogLevel())
		zap.ReplaceGlobals(logger)

		if config.GetTraceEnabled() {
			shutdown, err := setupTracing()
			if err != nil {
				return fmt.Errorf("cannot setup tracing '%w'", err)
			}
			shutdownTracing = shutdown
		}

		return nil
	},
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := execute(ctx); err != nil {
		zap.S().Errorw("command failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

// execute runs the root command and flushes traces and logs whatever the outcome.
func execute(ctx context.Context) error {
	defer flush()

	return rootCmd.ExecuteContext(ctx)
}

func flush() {
	if shutdownTracing != nil {
		if err := shutdownTracing(context.Background()); err != nil {
			zap.S().Warnw("cannot flush traces", "error", err)
		}
		shutdownTracing = nil
	}
	_ = zap.L().Sync()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "https://www.reddit.com", "base url of the forum api")
	rootCmd.PersistentFlags().StringVar(&subreddit, "subreddit", "subreddit", "subreddit used by the posts command")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "output format: json, yaml or table")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "http request timeout")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "print http traces on stderr")

	rootCmd.AddCommand(sortCmd, postsCmd, parseCmd, commentsCmd, profileCmd)
}

func setupLogger(level string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		// stdout is kept for the command results
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(level)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}

	return plain
}

func setupTracing() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

func newForumService() (*forum.Service, error) {
	opts := []httpClient.Option{
		httpClient.WithTimeout(config.GetHttpRequestTimeout()),
		httpClient.WithUserAgent(config.GetUserAgent()),
	}
	if config.GetTraceEnabled() {
		opts = append(opts, httpClient.WithTracing())
	}

	// httpClient is a wrapper around http client which fetches json documents from the forum api.
	client, err := httpClient.New(config.GetBaseURL(), opts...)
	if err != nil {
		return nil, err
	}

	return forum.New(client, config.GetSubreddit()), nil
}
