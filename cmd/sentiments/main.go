package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"quant-sentiment/internal/handler"
	"quant-sentiment/internal/provider"
	"quant-sentiment/internal/service"
	"quant-sentiment/pkg/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace/noop"
)

type options struct {
	baseURL  string
	timeout  time.Duration
	offline  bool
	pretty   bool
	logLevel string
}

// newRootCmd prints the same JSON document the HTTP endpoint serves.
func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sentiments SYMBOL [SYMBOL...]",
		Short: "Compute daily quant sentiment series for equity symbols",
		Long: `Compute the rolling confidence, reputation, narrative and projections
for each symbol. Symbols may be given as separate arguments or comma-separated.
Example: sentiments AAPL,MSFT --pretty`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(opts.logLevel, "console")
			return run(cmd.Context(), out, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.baseURL, "base-url", provider.DefaultYahooBaseURL, "Chart API base URL")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-request fetch timeout")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Skip the network and use synthetic histories")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent JSON output")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options, args []string) error {
	symbols, err := handler.ParseSymbols(strings.Join(args, ","))
	if err != nil {
		return err
	}

	tracer := noop.NewTracerProvider().Tracer("sentiments-cli")

	var closes service.DailyCloseProvider
	if !opts.offline {
		closes = provider.NewYahooChartProvider(tracer, provider.YahooOptions{
			BaseURL: opts.baseURL,
			Timeout: opts.timeout,
		})
	}

	history := service.NewHistoryService(tracer, closes, nil, 0)
	data := service.NewSentimentService(tracer, history).ComputeSentiments(ctx, symbols)
	resp := handler.NewSentimentsResponse(time.Now().UnixMilli(), data)

	enc := json.NewEncoder(out)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("sentiments failed")
		os.Exit(1)
	}
}
