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

// Package cli renders the progress display and the final availability
// report.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 80
	barPadding      = 4
)

// TickMsg advances the progress bar by one completed device.
type TickMsg struct{}

// DoneMsg tells the progress UI the collection has finished.
type DoneMsg struct{}

// ProgressModel is a bubbletea model showing one tick per completed
// device fetch against the device total.
type ProgressModel struct {
	bar    progress.Model
	done   int
	total  int
	cancel context.CancelFunc
}

// NewProgress creates the progress model. cancel is invoked when the user
// interrupts the run; the collection then stops dispatching new devices.
func NewProgress(total int, cancel context.CancelFunc) ProgressModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = defaultBarWidth

	return ProgressModel{
		bar:    bar,
		total:  total,
		cancel: cancel,
	}
}

func (ProgressModel) Init() tea.Cmd {
	return nil
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.cancel != nil {
				m.cancel()
			}

			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := msg.Width - barPadding
		if width > maxBarWidth {
			width = maxBarWidth
		}

		if width > 0 {
			m.bar.Width = width
		}
	case TickMsg:
		m.done++
		if m.done >= m.total {
			return m, tea.Quit
		}
	case DoneMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m ProgressModel) View() string {
	percent := 0.0
	if m.total > 0 {
		percent = float64(m.done) / float64(m.total)
	}

	return fmt.Sprintf("Requesting device availability... %d/%d\n%s\n",
		m.done, m.total, m.bar.ViewAs(percent))
}
