package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/litinoveweedle/SmartIR/internal/metrics"
	"github.com/litinoveweedle/SmartIR/pkg/irpulse"
)

var (
	rootCmd = &cobra.Command{
		Use:   "irpulse-decode [command]",
		Short: "Decode infrared remote commands into pulse durations",
		Long:  "irpulse-decode converts raw pulse lists and base64 Broadlink IR packets into signed mark/space durations.",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listFormats {
				for _, name := range irpulse.Formats() {
					fmt.Println(name)
				}
				return nil
			}
			opts := irpulse.DecodeOptions{Logger: logrus.StandardLogger()}
			if metricsAddr != "" {
				opts.Recorder = metrics.NewMetrics(nil)
				serveMetrics(metricsAddr)
			}
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx, opts)
			}
			return runDecode(ctx, opts, args[0])
		},
	}

	debug       bool
	listFormats bool
	units       bool
	metricsAddr string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log decoding diagnostics")
	rootCmd.PersistentFlags().BoolVar(&listFormats, "formats", false, "list supported command formats in detection order and exit")
	rootCmd.PersistentFlags().BoolVar(&units, "units", false, "print Broadlink units (269/8192 ms) instead of ticks")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9464)")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("metrics server stopped")
		}
	}()
	logrus.WithField("addr", addr).Info("serving metrics")
}

func runInteractive(ctx context.Context, opts irpulse.DecodeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	logrus.Info("irpulse decode mode. Paste a command and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(ctx, opts, line); err != nil {
			logrus.WithError(err).WithField("kind", irpulse.KindOf(err)).Error("failed to decode command")
		}
	}
	return scanner.Err()
}

func runDecode(ctx context.Context, opts irpulse.DecodeOptions, command string) error {
	result, err := irpulse.DecodeWithOptions(ctx, command, opts)
	if err != nil {
		return err
	}
	if units {
		fmt.Println(result.Pulses.Units())
		return nil
	}
	fmt.Println(result.String())
	return nil
}
