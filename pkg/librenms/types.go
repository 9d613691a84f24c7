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

package librenms

import "github.com/TheTrafficNetwork/netavail/pkg/models"

// Config holds the LibreNMS API connection settings.
type Config struct {
	Endpoint           string          `json:"endpoint"`
	APIToken           string          `json:"api_token"`
	InsecureSkipVerify bool            `json:"insecure_skip_verify"`
	Timeout            models.Duration `json:"timeout"`
}

// availabilityEntry is one window in the availability response. LibreNMS
// reports the percentage as a decimal string.
type availabilityEntry struct {
	AvailabilityPerc string `json:"availability_perc"`
	Duration         int    `json:"duration"`
}

// availabilityResponse is the body of the per-device availability endpoint.
type availabilityResponse struct {
	Availability []availabilityEntry `json:"availability"`
	Status       string              `json:"status"`
}
