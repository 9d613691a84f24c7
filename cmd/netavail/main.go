/*
 * Copyright 2026 The Traffic Network.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TheTrafficNetwork/netavail/pkg/availability"
	"github.com/TheTrafficNetwork/netavail/pkg/cli"
	"github.com/TheTrafficNetwork/netavail/pkg/config"
	"github.com/TheTrafficNetwork/netavail/pkg/logger"
	"github.com/TheTrafficNetwork/netavail/pkg/models"
)

var (
	errFailedToLoadConfig = fmt.Errorf("failed to load config")
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/netavail/netavail.json", "Path to config file")
	concurrency := flag.Int("concurrency", 0, "Override the collection concurrency bound")
	plain := flag.Bool("plain", false, "Disable the progress UI and print an unstyled report")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Step 1: Load configuration
	cfgLoader := config.NewConfig(nil)

	var cfg availability.Config

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	if *concurrency > 0 {
		cfg.Concurrency = *concurrency
	}

	// Step 2: Create logger from loaded config
	runLogger, err := logger.New(ctx, cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	defer func() {
		if err := logger.ShutdownOTel(context.Background()); err != nil {
			log.Printf("Failed to shut down OTel log pipeline: %v", err)
		}
	}()

	runner := availability.NewRunner(&cfg, runLogger)

	devices, err := runner.Devices(ctx)
	if err != nil {
		return err
	}

	var report models.AggregateReport

	if *plain {
		report = collectPlain(ctx, runner, devices, runLogger)
		fmt.Println(cli.RenderPlainReport(&report))

		return ctx.Err()
	}

	report, err = collectWithProgress(ctx, runner, devices)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderReport(&report))

	if ctx.Err() != nil {
		runLogger.Warn().Msg("Run interrupted, report covers completed devices only")
	}

	return nil
}

// collectPlain runs the collection with per-device log lines instead of
// the interactive progress bar.
func collectPlain(ctx context.Context, runner *availability.Runner, devices []models.Device, runLogger logger.Logger) models.AggregateReport {
	total := len(devices)

	var completed atomic.Int64

	runner.Collector.OnProgress = func() {
		runLogger.Debug().
			Int64("completed", completed.Add(1)).
			Int("total", total).
			Msg("Device fetch finished")
	}

	return runner.Collect(ctx, devices)
}

// collectWithProgress runs the collection behind a bubbletea progress bar.
// Interrupting the UI cancels dispatch; fetches already in flight drain
// before the report is computed.
func collectWithProgress(ctx context.Context, runner *availability.Runner, devices []models.Device) (models.AggregateReport, error) {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(cli.NewProgress(len(devices), cancel))

	runner.Collector.OnProgress = func() {
		program.Send(cli.TickMsg{})
	}

	reportCh := make(chan models.AggregateReport, 1)

	go func() {
		reportCh <- runner.Collect(cctx, devices)
		program.Send(cli.DoneMsg{})
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		<-reportCh

		return models.AggregateReport{}, fmt.Errorf("progress display failed: %w", err)
	}

	return <-reportCh, nil
}
