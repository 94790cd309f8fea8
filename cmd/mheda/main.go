package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/crimson-sun/mheda/internal/api"
	"github.com/crimson-sun/mheda/internal/assets"
	"github.com/crimson-sun/mheda/internal/config"
	"github.com/crimson-sun/mheda/internal/engine"
	"github.com/crimson-sun/mheda/internal/engine/classifier"
	"github.com/crimson-sun/mheda/internal/engine/labels"
	"github.com/crimson-sun/mheda/internal/engine/normalizer"
	"github.com/crimson-sun/mheda/internal/engine/vectorizer"
	"github.com/crimson-sun/mheda/internal/history"
	"github.com/crimson-sun/mheda/internal/httpclient"
	"github.com/crimson-sun/mheda/internal/logging"
	"github.com/crimson-sun/mheda/internal/tips"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mheda",
		Short: "Emotion-aware journaling service",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config, wires logging and builds the analysis engine.
func setup() (*config.Config, *engine.Engine, *classifier.ONNXClassifier, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logging.Init(cfg.Server.LogFormat, logging.ParseLevel(cfg.Server.LogLevel))

	sw := normalizer.NewStopwords(cfg.Stopwords.Path, cfg.Stopwords.URL, httpclient.New(""))

	vec, err := vectorizer.New(cfg.Model.VocabPath, cfg.Model.IDFPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create vectorizer: %w", err)
	}

	cls, err := classifier.New(cfg.Model.ClassifierPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create classifier: %w", err)
	}

	eng, err := engine.New(sw, vec, cls)
	if err != nil {
		cls.Close()
		return nil, nil, nil, fmt.Errorf("create engine: %w", err)
	}

	return cfg, eng, cls, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the journaling HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, eng, cls, err := setup()
			if err != nil {
				return err
			}
			defer cls.Close()

			log := history.NewLog()

			var fetcher *assets.Fetcher
			if cfg.Assets.Enabled {
				fetcher = assets.NewFetcher(httpclient.New(""), assets.DefaultAnimations)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(cfg.Server.Port, api.NewRouter(eng, log, fetcher))
			slog.Info("starting server", "port", cfg.Server.Port)
			if err := srv.Run(ctx); err != nil {
				return fmt.Errorf("server: %w", err)
			}
			return nil
		},
	}
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text]",
		Short: "Classify a single entry and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, eng, cls, err := setup()
			if err != nil {
				return err
			}
			defer cls.Close()

			text := strings.Join(args, " ")
			analysis, err := eng.Analyze(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			out := struct {
				Emotion         string  `json:"emotion"`
				Score           float32 `json:"score"`
				Color           string  `json:"color"`
				Tip             string  `json:"tip"`
				CrisisResources string  `json:"crisis_resources,omitempty"`
			}{
				Emotion: analysis.Emotion,
				Score:   analysis.Score,
				Color:   labels.Color(analysis.Emotion),
				Tip:     tips.For(analysis.Emotion),
			}
			if tips.NeedsCrisisResources(analysis.Emotion) {
				out.CrisisResources = tips.CrisisURL
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
