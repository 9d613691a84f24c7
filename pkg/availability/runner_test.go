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

package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheTrafficNetwork/netavail/pkg/logger"
	"github.com/TheTrafficNetwork/netavail/pkg/models"
)

var errInventoryDown = errors.New("inventory down")

type listerFunc func(ctx context.Context) ([]models.Device, error)

func (f listerFunc) ListDevices(ctx context.Context) ([]models.Device, error) {
	return f(ctx)
}

func TestDevices_InventoryFailureIsTerminal(t *testing.T) {
	runner := &Runner{
		Inventory: listerFunc(func(context.Context) ([]models.Device, error) {
			return nil, errInventoryDown
		}),
		logger: logger.NewTestLogger(),
	}

	_, err := runner.Devices(context.Background())
	require.ErrorIs(t, err, errInventoryDown)
}

func TestDevices_EmptyInventoryIsTerminal(t *testing.T) {
	runner := &Runner{
		Inventory: listerFunc(func(context.Context) ([]models.Device, error) {
			return nil, nil
		}),
		logger: logger.NewTestLogger(),
	}

	_, err := runner.Devices(context.Background())
	require.ErrorIs(t, err, ErrNoDevices)
}

// newTestServers starts a fake NetBox and a fake LibreNMS. The LibreNMS
// handler serves per-address availability bodies; addresses absent from
// the map answer with an empty availability list.
func newTestServers(t *testing.T, addrs []string, bodies map[string]string) (netboxURL, librenmsURL string) {
	t.Helper()

	netboxSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		results := make([]any, 0, len(addrs))
		for i, addr := range addrs {
			results = append(results, map[string]any{
				"id":          i + 1,
				"name":        fmt.Sprintf("sw-%02d", i+1),
				"primary_ip4": map[string]any{"id": i + 1, "address": addr + "/24"},
			})
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"count":   len(addrs),
			"next":    nil,
			"results": results,
		})
	}))
	t.Cleanup(netboxSrv.Close)

	librenmsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for addr, body := range bodies {
			if r.URL.Path == "/"+addr+"/availability" {
				_, _ = w.Write([]byte(body))
				return
			}
		}

		_, _ = w.Write([]byte(`{"availability": [], "status": "ok"}`))
	}))
	t.Cleanup(librenmsSrv.Close)

	return netboxSrv.URL, librenmsSrv.URL
}

func availabilityBody(day, week string) string {
	return fmt.Sprintf(`{
		"availability": [
			{"availability_perc": "%s", "duration": 86400},
			{"availability_perc": "%s", "duration": 604800}
		],
		"status": "ok"
	}`, day, week)
}

func TestRunner_EndToEnd(t *testing.T) {
	netboxURL, librenmsURL := newTestServers(t,
		[]string{"10.0.0.1", "10.0.0.2", "10.0.0.3"},
		map[string]string{
			"10.0.0.1": availabilityBody("100.000000", "99.500000"),
			"10.0.0.2": availabilityBody("99.000000", "100.000000"),
			// 10.0.0.3 has no data and must be excluded.
		})

	cfg := &Config{Concurrency: 2}
	cfg.Netbox.Endpoint = netboxURL
	cfg.Netbox.APIToken = "nb-token"
	cfg.LibreNMS.Endpoint = librenmsURL
	cfg.LibreNMS.APIToken = "lnms-token"

	runner := NewRunner(cfg, logger.NewTestLogger())
	require.NotEmpty(t, runner.RunID())

	devices, err := runner.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 3)

	var ticks atomic.Int64

	runner.Collector.OnProgress = func() { ticks.Add(1) }

	report := runner.Collect(context.Background(), devices)

	require.Equal(t, int64(3), ticks.Load())

	require.Equal(t, 2, report.Day.Devices)
	require.InDelta(t, 99.5, report.Day.Mean, 1e-9)

	require.Equal(t, 2, report.Week.Devices)
	require.InDelta(t, 99.75, report.Week.Mean, 1e-9)

	// No device reported the month or year windows.
	require.False(t, report.Month.Valid())
	require.False(t, report.Year.Valid())
}

func TestRunner_BoundOneAndBoundEightAgree(t *testing.T) {
	addrs := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}
	bodies := map[string]string{
		"10.0.0.1": availabilityBody("100.000000", "99.125000"),
		"10.0.0.2": availabilityBody("98.500000", "99.875000"),
		"10.0.0.3": availabilityBody("99.999000", "100.000000"),
		"10.0.0.4": availabilityBody("97.000000", "98.000000"),
	}

	netboxURL, librenmsURL := newTestServers(t, addrs, bodies)

	run := func(concurrency int) models.AggregateReport {
		cfg := &Config{Concurrency: concurrency}
		cfg.Netbox.Endpoint = netboxURL
		cfg.Netbox.APIToken = "nb-token"
		cfg.LibreNMS.Endpoint = librenmsURL
		cfg.LibreNMS.APIToken = "lnms-token"

		runner := NewRunner(cfg, logger.NewTestLogger())

		devices, err := runner.Devices(context.Background())
		require.NoError(t, err)

		return runner.Collect(context.Background(), devices)
	}

	require.Equal(t, run(1), run(8))
}
