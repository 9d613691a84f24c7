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

// Package models defines the shared data types for the availability pipeline.
package models

// Observation windows reported by LibreNMS, in seconds.
const (
	WindowDay   = 86400
	WindowWeek  = 604800
	WindowMonth = 2592000
	WindowYear  = 31536000
)

// Windows returns the four standard observation windows in ascending order.
func Windows() []int {
	return []int{WindowDay, WindowWeek, WindowMonth, WindowYear}
}

// Device describes one monitored device from the inventory.
// Addr is a bare IP or hostname; any CIDR suffix has already been stripped
// by the inventory client.
type Device struct {
	Name string `json:"name"`
	Addr string `json:"addr"`
}

// DeviceAvailability holds the availability percentages reported for a
// single device, keyed by window seconds. The map may carry fewer than the
// four standard windows when the monitoring API omits one.
type DeviceAvailability struct {
	DeviceName string          `json:"device_name"`
	Samples    map[int]float64 `json:"samples"`
}

// WindowAverage is the network-wide mean for one observation window.
// Devices counts the records that contributed a sample; zero means the
// window had no data and Mean is meaningless.
type WindowAverage struct {
	Mean    float64 `json:"mean"`
	Devices int     `json:"devices"`
}

// Valid reports whether at least one device contributed to the window.
func (w WindowAverage) Valid() bool {
	return w.Devices > 0
}

// AggregateReport carries the network-wide availability averages for the
// four standard windows.
type AggregateReport struct {
	Day   WindowAverage `json:"day"`
	Week  WindowAverage `json:"week"`
	Month WindowAverage `json:"month"`
	Year  WindowAverage `json:"year"`
}

// Window returns the average for the given window seconds. Unknown window
// values return a zero WindowAverage, which is never valid.
func (r *AggregateReport) Window(seconds int) WindowAverage {
	switch seconds {
	case WindowDay:
		return r.Day
	case WindowWeek:
		return r.Week
	case WindowMonth:
		return r.Month
	case WindowYear:
		return r.Year
	default:
		return WindowAverage{}
	}
}

// SetWindow stores the average for the given window seconds.
func (r *AggregateReport) SetWindow(seconds int, avg WindowAverage) {
	switch seconds {
	case WindowDay:
		r.Day = avg
	case WindowWeek:
		r.Week = avg
	case WindowMonth:
		r.Month = avg
	case WindowYear:
		r.Year = avg
	}
}
