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

// Package collector drives per-device availability fetches across the full
// device set under a bounded worker pool.
package collector

import (
	"context"
	"errors"
	"sync"

	"github.com/TheTrafficNetwork/netavail/pkg/librenms"
	"github.com/TheTrafficNetwork/netavail/pkg/logger"
	"github.com/TheTrafficNetwork/netavail/pkg/models"
)

// Fetcher retrieves the availability record for one device. Implemented by
// librenms.Client.
type Fetcher interface {
	Availability(ctx context.Context, device models.Device) (*models.DeviceAvailability, error)
}

// Collector fans fetches out over a fixed pool of workers. A failed or
// empty device never aborts the run; it is logged and excluded from the
// results.
type Collector struct {
	fetcher     Fetcher
	concurrency int
	logger      logger.Logger

	// OnProgress, when set, is invoked exactly once per device after its
	// fetch completes, whatever the outcome. It may be called from
	// multiple workers concurrently.
	OnProgress func()
}

// New creates a Collector. A concurrency bound below 1 is treated as 1.
func New(fetcher Fetcher, concurrency int, log logger.Logger) *Collector {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Collector{
		fetcher:     fetcher,
		concurrency: concurrency,
		logger:      log.WithComponent("collector"),
	}
}

// Collect fetches availability for every device and returns the records of
// the devices that produced data. Output order is not input order. Once
// ctx is canceled no further devices are dispatched; fetches already in
// flight drain before Collect returns.
func (c *Collector) Collect(ctx context.Context, devices []models.Device) []models.DeviceAvailability {
	if len(devices) == 0 {
		return nil
	}

	workers := c.concurrency
	if workers > len(devices) {
		workers = len(devices)
	}

	jobs := make(chan models.Device)
	results := make(chan *models.DeviceAvailability, len(devices))

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for device := range jobs {
				c.fetchDevice(ctx, device, results)
			}
		}()
	}

dispatch:
	for _, device := range devices {
		select {
		case <-ctx.Done():
			c.logger.Warn().Err(ctx.Err()).Msg("Collection canceled, no further devices dispatched")
			break dispatch
		case jobs <- device:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)

	records := make([]models.DeviceAvailability, 0, len(devices))
	for record := range results {
		records = append(records, *record)
	}

	return records
}

// fetchDevice runs one fetch and sorts its outcome: success feeds the
// results channel, no-data and failures are logged and dropped. The
// progress tick fires on every path.
func (c *Collector) fetchDevice(ctx context.Context, device models.Device, results chan<- *models.DeviceAvailability) {
	defer c.tick()

	record, err := c.fetcher.Availability(ctx, device)

	switch {
	case err == nil:
		results <- record
	case errors.Is(err, librenms.ErrNoData):
		c.logger.Warn().Str("device", device.Name).Msg("No availability data for device")
	default:
		c.logger.Warn().Str("device", device.Name).Err(err).Msg("Availability fetch failed")
	}
}

func (c *Collector) tick() {
	if c.OnProgress != nil {
		c.OnProgress()
	}
}
