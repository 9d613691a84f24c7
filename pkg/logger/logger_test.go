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

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	config := &Config{
		Level:  "debug",
		Output: "stdout",
	}

	log, err := New(context.Background(), config)
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNew_InvalidLevel(t *testing.T) {
	config := &Config{Level: "chatty"}

	_, err := New(context.Background(), config)
	require.Error(t, err)
}

func TestNewWithOutput_EmitsJSON(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithOutput(&buf, zerolog.InfoLevel)
	log.Info().Str("device", "sw-01").Msg("fetched availability")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "fetched availability", entry["message"])
	require.Equal(t, "sw-01", entry["device"])
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithOutput(&buf, zerolog.InfoLevel).WithComponent("collector")
	log.Info().Msg("started")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "collector", entry["component"])
}

func TestNewTestLogger_Discards(t *testing.T) {
	log := NewTestLogger()
	log.Error().Msg("should go nowhere")
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.NotEmpty(t, config.Level)
	require.NotEmpty(t, config.Output)
	require.False(t, config.OTel.Enabled)
}
