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

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TheTrafficNetwork/netavail/pkg/models"
)

// Dracula theme colors.
const (
	draculaCyan    = "#8BE9FD"
	draculaGreen   = "#50FA7B"
	draculaComment = "#6272A4"
)

var windowLabels = map[int]string{
	models.WindowDay:   "yesterday",
	models.WindowWeek:  "for the past week",
	models.WindowMonth: "for the past month",
	models.WindowYear:  "for the past year",
}

// RenderReport renders the aggregate report in a styled box. Windows with
// no contributing devices are marked "no data" instead of showing a
// misleading number.
func RenderReport(report *models.AggregateReport) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(draculaCyan)).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(draculaGreen))

	noDataStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(draculaComment)).
		Italic(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	var b strings.Builder

	b.WriteString(titleStyle.Render("Network Device Availability"))
	b.WriteString("\n")

	for _, window := range models.Windows() {
		avg := report.Window(window)
		label := windowLabels[window]

		if !avg.Valid() {
			b.WriteString(noDataStyle.Render(fmt.Sprintf("no data %s", label)))
		} else {
			b.WriteString(fmt.Sprintf("%s availability %s",
				valueStyle.Render(fmt.Sprintf("%.3f%%", avg.Mean)), label))
		}

		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderPlainReport renders the report as plain text for non-interactive
// use.
func RenderPlainReport(report *models.AggregateReport) string {
	var b strings.Builder

	rule := strings.Repeat("*", 40)

	b.WriteString(rule + "\n")
	b.WriteString("Network Device Availability\n")
	b.WriteString(rule + "\n")

	for _, window := range models.Windows() {
		avg := report.Window(window)
		label := windowLabels[window]

		if !avg.Valid() {
			b.WriteString(fmt.Sprintf("no data %s\n", label))
			continue
		}

		b.WriteString(fmt.Sprintf("%.3f%% availability %s\n", avg.Mean, label))
	}

	b.WriteString(rule)

	return b.String()
}
