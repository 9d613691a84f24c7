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

package netbox

import "github.com/TheTrafficNetwork/netavail/pkg/models"

// Config holds the NetBox API connection settings and the device filter.
type Config struct {
	Endpoint           string          `json:"endpoint"`
	APIToken           string          `json:"api_token"`
	Status             string          `json:"status"`
	Tags               []string        `json:"tags"`
	InsecureSkipVerify bool            `json:"insecure_skip_verify"`
	Timeout            models.Duration `json:"timeout"`
}

// Device represents a NetBox device as returned by the API. Only the
// fields the collector needs are decoded.
type Device struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status struct {
		Value string `json:"value"`
		Label string `json:"label"`
	} `json:"status"`
	PrimaryIP4 struct {
		ID      int    `json:"id"`
		Address string `json:"address"`
	} `json:"primary_ip4"`
}

// DeviceResponse represents one page of the NetBox device list.
type DeviceResponse struct {
	Results  []Device `json:"results"`
	Count    int      `json:"count"`
	Next     string   `json:"next"`     // Pagination URL
	Previous string   `json:"previous"` // Pagination URL
}
