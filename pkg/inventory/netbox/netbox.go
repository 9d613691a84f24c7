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

// Package netbox queries the NetBox DCIM API for the monitored device
// population.
package netbox

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/TheTrafficNetwork/netavail/pkg/logger"
	"github.com/TheTrafficNetwork/netavail/pkg/models"
)

const (
	defaultStatus  = "active"
	defaultTimeout = 30 * time.Second
)

var (
	errUnexpectedStatusCode = errors.New("unexpected status code")
)

// defaultTags marks devices that are enrolled in LibreNMS.
var defaultTags = []string{"librenms"}

// Client lists devices from a NetBox instance.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a NetBox client from the given configuration.
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
		logger:     log.WithComponent("netbox"),
	}
}

// ListDevices returns the devices matching the configured status and tag
// filter, following pagination until the last page. Devices without a
// primary IPv4 address are skipped; CIDR suffixes are stripped so the
// returned addresses are bare IPs.
func (c *Client) ListDevices(ctx context.Context) ([]models.Device, error) {
	pageURL, err := c.firstPageURL()
	if err != nil {
		return nil, err
	}

	var devices []models.Device

	for pageURL != "" {
		page, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		for i := range page.Results {
			device := &page.Results[i]

			addr, ok := c.deviceAddr(device)
			if !ok {
				continue
			}

			devices = append(devices, models.Device{
				Name: device.Name,
				Addr: addr,
			})
		}

		pageURL = page.Next
	}

	c.logger.Info().Int("devices", len(devices)).Msg("Fetched device list from NetBox")

	return devices, nil
}

// firstPageURL builds the initial device list URL with the filter query.
func (c *Client) firstPageURL() (string, error) {
	base := strings.TrimRight(c.config.Endpoint, "/") + "/api/dcim/devices/"

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid NetBox endpoint: %w", err)
	}

	status := c.config.Status
	if status == "" {
		status = defaultStatus
	}

	tags := c.config.Tags
	if len(tags) == 0 {
		tags = defaultTags
	}

	q := u.Query()
	q.Set("status", status)

	for _, tag := range tags {
		q.Add("tag", tag)
	}

	u.RawQuery = q.Encode()

	return u.String(), nil
}

// fetchPage requests one page of the device list.
func (c *Client) fetchPage(ctx context.Context, pageURL string) (*DeviceResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Token "+c.config.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("netbox request failed: %w", err)
	}
	defer c.closeResponse(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatusCode, resp.StatusCode)
	}

	var page DeviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode netbox response: %w", err)
	}

	return &page, nil
}

// deviceAddr extracts the bare IP from a device's primary IPv4 address.
func (c *Client) deviceAddr(device *Device) (string, bool) {
	addr := device.PrimaryIP4.Address
	if addr == "" {
		c.logger.Debug().Str("device", device.Name).Msg("Skipping device without primary IPv4")
		return "", false
	}

	if !strings.Contains(addr, "/") {
		return addr, true
	}

	ip, _, err := net.ParseCIDR(addr)
	if err != nil {
		c.logger.Warn().Str("device", device.Name).Str("address", addr).Err(err).
			Msg("Skipping device with unparsable primary IPv4")

		return "", false
	}

	return ip.String(), true
}

// closeResponse closes the HTTP response body, logging any errors.
func (c *Client) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to close response body")
	}
}
