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

// Package librenms fetches per-device availability percentages from the
// LibreNMS API.
package librenms

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/TheTrafficNetwork/netavail/pkg/logger"
	"github.com/TheTrafficNetwork/netavail/pkg/models"
)

const defaultTimeout = 30 * time.Second

var (
	// ErrNoData marks a device LibreNMS knows nothing about: the API
	// answered, but with zero availability windows. Distinct from
	// transport and decode failures.
	ErrNoData = errors.New("no availability data for device")

	errUnexpectedStatusCode = errors.New("unexpected status code")
	errUnknownWindow        = errors.New("unknown availability window")
	errInvalidPercentage    = errors.New("invalid availability percentage")
)

// Client fetches availability from a LibreNMS instance.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a LibreNMS client from the given configuration.
func NewClient(config *Config, log logger.Logger) *Client {
	timeout := time.Duration(config.Timeout)
	if timeout == 0 {
		timeout = defaultTimeout
	}

	//nolint:gosec // Verification bypass is an explicit operator opt-in.
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: config.InsecureSkipVerify,
			},
		},
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     log.WithComponent("librenms"),
	}
}

// Availability fetches the availability percentages for one device.
// device.Addr must be a bare IP or hostname. An empty availability list
// returns ErrNoData; transport and decode failures return distinct errors
// so the scheduler can tell them apart.
func (c *Client) Availability(ctx context.Context, device models.Device) (*models.DeviceAvailability, error) {
	url := strings.TrimRight(c.config.Endpoint, "/") + "/" + device.Addr + "/availability"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Auth-Token", c.config.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("librenms request for %s failed: %w", device.Name, err)
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn().Err(cerr).Msg("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatusCode, resp.StatusCode)
	}

	var body availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode availability response for %s: %w", device.Name, err)
	}

	if len(body.Availability) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, device.Name)
	}

	samples, err := parseSamples(body.Availability)
	if err != nil {
		return nil, fmt.Errorf("device %s: %w", device.Name, err)
	}

	return &models.DeviceAvailability{
		DeviceName: device.Name,
		Samples:    samples,
	}, nil
}

// parseSamples validates each entry against the four known windows and
// converts the percentage strings. Any structural mismatch is a decode
// failure, never silently dropped.
func parseSamples(entries []availabilityEntry) (map[int]float64, error) {
	samples := make(map[int]float64, len(entries))

	for _, entry := range entries {
		if !knownWindow(entry.Duration) {
			return nil, fmt.Errorf("%w: %d", errUnknownWindow, entry.Duration)
		}

		perc, err := strconv.ParseFloat(entry.AvailabilityPerc, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidPercentage, entry.AvailabilityPerc)
		}

		if perc < 0 || perc > 100 {
			return nil, fmt.Errorf("%w: %q out of range", errInvalidPercentage, entry.AvailabilityPerc)
		}

		samples[entry.Duration] = perc
	}

	return samples, nil
}

func knownWindow(seconds int) bool {
	for _, w := range models.Windows() {
		if seconds == w {
			return true
		}
	}

	return false
}
