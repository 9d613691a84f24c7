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
	"errors"

	"github.com/TheTrafficNetwork/netavail/pkg/inventory/netbox"
	"github.com/TheTrafficNetwork/netavail/pkg/librenms"
	"github.com/TheTrafficNetwork/netavail/pkg/logger"
)

var (
	errNetboxEndpointRequired   = errors.New("netbox endpoint is required")
	errNetboxTokenRequired      = errors.New("netbox api token is required")
	errLibreNMSEndpointRequired = errors.New("librenms endpoint is required")
	errLibreNMSTokenRequired    = errors.New("librenms api token is required")
)

// Config is the full configuration for one collection run. It is built
// once at process entry and passed into the collaborators explicitly; no
// component reads the environment on its own.
type Config struct {
	Netbox      netbox.Config   `json:"netbox"`
	LibreNMS    librenms.Config `json:"librenms"`
	Concurrency int             `json:"concurrency"`
	Logging     *logger.Config  `json:"logging,omitempty"`
}

// Validate implements config.Validator. A missing concurrency bound
// defaults to 1, matching the historical fully sequential behavior.
func (c *Config) Validate() error {
	if c.Netbox.Endpoint == "" {
		return errNetboxEndpointRequired
	}

	if c.Netbox.APIToken == "" {
		return errNetboxTokenRequired
	}

	if c.LibreNMS.Endpoint == "" {
		return errLibreNMSEndpointRequired
	}

	if c.LibreNMS.APIToken == "" {
		return errLibreNMSTokenRequired
	}

	if c.Concurrency < 1 {
		c.Concurrency = 1
	}

	return nil
}
