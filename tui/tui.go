/*
Copyright © 2026 Red Hat, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package tui contains terminal front end of the calculator. The layout
// consists of display on top, key legend below it and history panel on the
// right side.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RedHatInsights/ccx-calculator/calculator"
)

const (
	displayWidth = 27
	historyWidth = 32
	keyWidth     = 5
	emptyDisplay = "0"
	emptyHistory = "No history yet"
	helpText     = "enter/= evaluate • backspace delete • esc clear • ctrl+l clear all • ctrl+c quit"
)

// keyLegend mirrors the key grid of calculator
var keyLegend = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", calculator.KeyEvaluate, "+"},
	{calculator.KeyBackspace, "%", calculator.KeyClear, calculator.KeyClearAll},
}

var (
	displayStyle = lipgloss.NewStyle().
			Width(displayWidth).
			Align(lipgloss.Right).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
	errorDisplayStyle = displayStyle.Foreground(lipgloss.Color("196"))
	keyStyle          = lipgloss.NewStyle().
				Width(keyWidth).
				Align(lipgloss.Center).
				Margin(0, 1, 0, 0).
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("238"))
	operatorKeyStyle = keyStyle.Foreground(lipgloss.Color("214"))
	historyStyle     = lipgloss.NewStyle().
				Width(historyWidth).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("241"))
	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is a bubbletea model driving one calculator session
type Model struct {
	session  *calculator.Session
	quitting bool
}

// New constructs new model for given session
func New(session *calculator.Session) Model {
	return Model{session: session}
}

// Run starts the terminal front end and blocks until user quits
func Run(session *calculator.Session) error {
	_, err := tea.NewProgram(New(session), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.session.Press(calculator.KeyEvaluate)
	case tea.KeyBackspace:
		m.session.Press(calculator.KeyBackspace)
	case tea.KeyEsc:
		m.session.Press(calculator.KeyClear)
	case tea.KeyCtrlL:
		m.session.Press(calculator.KeyClearAll)
	case tea.KeySpace:
		m.session.Press(" ")
	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			m.pressRune(r)
		}
	}

	return m, nil
}

// pressRune translates typed character into key press, unsupported
// characters are ignored
func (m Model) pressRune(r rune) {
	switch {
	case r == '=':
		m.session.Press(calculator.KeyEvaluate)
	case r >= '0' && r <= '9', strings.ContainsRune(".+-*/%()", r):
		m.session.Press(string(r))
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	calculatorPanel := lipgloss.JoinVertical(lipgloss.Left,
		m.renderDisplay(),
		renderKeys(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		calculatorPanel,
		" ",
		m.renderHistory(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, body, helpStyle.Render(helpText)) + "\n"
}

func (m Model) renderDisplay() string {
	display := m.session.Display()
	switch display {
	case "":
		return displayStyle.Render(emptyDisplay)
	case calculator.ErrorDisplay:
		return errorDisplayStyle.Render(display)
	default:
		return displayStyle.Render(display)
	}
}

func renderKeys() string {
	rows := make([]string, 0, len(keyLegend))
	for _, row := range keyLegend {
		keys := make([]string, 0, len(row))
		for _, key := range row {
			if strings.ContainsAny(key, "0123456789.") {
				keys = append(keys, keyStyle.Render(key))
			} else {
				keys = append(keys, operatorKeyStyle.Render(key))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderHistory() string {
	lines := m.session.History().Lines()

	var sb strings.Builder
	sb.WriteString(historyTitleStyle.Render("History"))
	sb.WriteString("\n")

	if len(lines) == 0 {
		sb.WriteString(helpStyle.Render(emptyHistory))
	} else {
		sb.WriteString(strings.Join(lines, "\n"))
	}

	return historyStyle.Render(sb.String())
}
