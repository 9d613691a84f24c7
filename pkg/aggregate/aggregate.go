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

// Package aggregate reduces per-device availability records into
// network-wide window averages.
package aggregate

import "github.com/TheTrafficNetwork/netavail/pkg/models"

// Reduce computes the arithmetic mean per observation window across all
// records carrying that window. A window with no contributing records
// yields an invalid WindowAverage (Devices == 0) instead of dividing by
// zero. Plain sum-then-divide keeps the result independent of record
// order.
func Reduce(records []models.DeviceAvailability) models.AggregateReport {
	var report models.AggregateReport

	for _, window := range models.Windows() {
		var (
			sum   float64
			count int
		)

		for i := range records {
			if value, ok := records[i].Samples[window]; ok {
				sum += value
				count++
			}
		}

		if count == 0 {
			continue
		}

		report.SetWindow(window, models.WindowAverage{
			Mean:    sum / float64(count),
			Devices: count,
		})
	}

	return report
}
