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

package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheTrafficNetwork/netavail/pkg/models"
)

func record(name string, samples map[int]float64) models.DeviceAvailability {
	return models.DeviceAvailability{DeviceName: name, Samples: samples}
}

func TestReduce_MeanPerWindow(t *testing.T) {
	records := []models.DeviceAvailability{
		record("sw-01", map[int]float64{models.WindowDay: 100.0}),
		record("sw-02", map[int]float64{models.WindowDay: 99.0}),
	}

	report := Reduce(records)

	require.True(t, report.Day.Valid())
	require.InDelta(t, 99.5, report.Day.Mean, 1e-9)
	require.Equal(t, 2, report.Day.Devices)
}

func TestReduce_PermutationInvariance(t *testing.T) {
	a := record("sw-01", map[int]float64{
		models.WindowDay:  100.0,
		models.WindowWeek: 98.5,
		models.WindowYear: 99.999,
	})
	b := record("sw-02", map[int]float64{
		models.WindowDay:  97.25,
		models.WindowWeek: 100.0,
		models.WindowYear: 99.875,
	})
	c := record("sw-03", map[int]float64{
		models.WindowDay: 99.125,
	})

	forward := Reduce([]models.DeviceAvailability{a, b, c})
	reversed := Reduce([]models.DeviceAvailability{c, b, a})

	require.Equal(t, forward, reversed)
}

func TestReduce_SubsetWindows(t *testing.T) {
	records := []models.DeviceAvailability{
		record("sw-01", map[int]float64{models.WindowDay: 100.0, models.WindowMonth: 99.0}),
		record("sw-02", map[int]float64{models.WindowDay: 98.0}),
	}

	report := Reduce(records)

	require.Equal(t, 2, report.Day.Devices)
	require.InDelta(t, 99.0, report.Day.Mean, 1e-9)

	require.Equal(t, 1, report.Month.Devices)
	require.InDelta(t, 99.0, report.Month.Mean, 1e-9)
}

func TestReduce_EmptyWindowMarkedInvalid(t *testing.T) {
	records := []models.DeviceAvailability{
		record("sw-01", map[int]float64{models.WindowDay: 100.0}),
		record("sw-02", map[int]float64{models.WindowDay: 99.0}),
	}

	report := Reduce(records)

	require.False(t, report.Week.Valid())
	require.False(t, report.Month.Valid())
	require.False(t, report.Year.Valid())
}

func TestReduce_NoRecords(t *testing.T) {
	report := Reduce(nil)

	for _, window := range models.Windows() {
		require.False(t, report.Window(window).Valid())
	}
}
