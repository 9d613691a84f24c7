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

// Package availability wires the inventory, collector, and aggregator into
// one collection run.
package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/TheTrafficNetwork/netavail/pkg/aggregate"
	"github.com/TheTrafficNetwork/netavail/pkg/collector"
	"github.com/TheTrafficNetwork/netavail/pkg/inventory/netbox"
	"github.com/TheTrafficNetwork/netavail/pkg/librenms"
	"github.com/TheTrafficNetwork/netavail/pkg/logger"
	"github.com/TheTrafficNetwork/netavail/pkg/models"
)

// ErrNoDevices indicates the inventory answered but matched zero devices.
// The run cannot proceed meaningfully.
var ErrNoDevices = errors.New("inventory returned no devices")

// DeviceLister supplies the device population for a run. Implemented by
// netbox.Client.
type DeviceLister interface {
	ListDevices(ctx context.Context) ([]models.Device, error)
}

// Runner executes one collection run: inventory, bounded fan-out over the
// monitoring API, then aggregation.
type Runner struct {
	Inventory DeviceLister
	Collector *collector.Collector

	logger logger.Logger
	runID  string
}

// NewRunner builds a Runner and its collaborators from the configuration.
func NewRunner(cfg *Config, log logger.Logger) *Runner {
	fetcher := librenms.NewClient(&cfg.LibreNMS, log)

	return &Runner{
		Inventory: netbox.NewClient(&cfg.Netbox, log),
		Collector: collector.New(fetcher, cfg.Concurrency, log),
		logger:    log.WithComponent("runner"),
		runID:     uuid.New().String(),
	}
}

// RunID identifies this run in logs.
func (r *Runner) RunID() string {
	return r.runID
}

// Devices queries the inventory, exactly once per run, before any
// collection work starts. An inventory failure or an empty device list is
// terminal.
func (r *Runner) Devices(ctx context.Context) ([]models.Device, error) {
	devices, err := r.Inventory.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory query failed: %w", err)
	}

	if len(devices) == 0 {
		return nil, ErrNoDevices
	}

	r.logger.Info().
		Str("run_id", r.runID).
		Int("devices", len(devices)).
		Msg("Starting availability collection")

	return devices, nil
}

// Collect fans out over the device set and reduces the results into the
// aggregate report. Devices with no data or failed fetches are excluded
// before aggregation; a window left with zero contributors comes back
// marked invalid rather than as a bogus number.
func (r *Runner) Collect(ctx context.Context, devices []models.Device) models.AggregateReport {
	records := r.Collector.Collect(ctx, devices)

	r.logger.Info().
		Str("run_id", r.runID).
		Int("devices", len(devices)).
		Int("records", len(records)).
		Int("excluded", len(devices)-len(records)).
		Msg("Collection finished")

	return aggregate.Reduce(records)
}
