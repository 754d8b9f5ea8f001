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

package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/RedHatInsights/ccx-calculator/calculator"
	"github.com/RedHatInsights/ccx-calculator/tui"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// typeText sends all characters as one key message
func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func pressKey(m tea.Model, keyType tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: keyType})
}

func TestInitReturnsNoCommand(t *testing.T) {
	m := tui.New(calculator.NewSession(nil, nil, nil))
	assert.Nil(t, m.Init())
}

func TestTypingAndEvaluation(t *testing.T) {
	session := calculator.NewSession(nil, nil, nil)
	var m tea.Model = tui.New(session)

	m = typeText(m, "(1+2)*3")
	assert.Equal(t, "(1+2)*3", session.Display())

	m, _ = pressKey(m, tea.KeyEnter)
	assert.Equal(t, "9", session.Display())
	assert.Equal(t, []string{"(1+2)*3 = 9"}, session.History().Lines())

	view := m.View()
	assert.Contains(t, view, "(1+2)*3 = 9")
	assert.Contains(t, view, "History")
}

func TestEqualSignEvaluates(t *testing.T) {
	session := calculator.NewSession(nil, nil, nil)
	var m tea.Model = tui.New(session)

	typeText(m, "7%4=")
	assert.Equal(t, "3", session.Display())
}

func TestUnsupportedCharactersAreIgnored(t *testing.T) {
	session := calculator.NewSession(nil, nil, nil)
	var m tea.Model = tui.New(session)

	typeText(m, "1a+b2x^")
	assert.Equal(t, "1+2", session.Input())
}

func TestSpaceIsAccepted(t *testing.T) {
	session := calculator.NewSession(nil, nil, nil)
	var m tea.Model = tui.New(session)

	m = typeText(m, "1")
	m, _ = pressKey(m, tea.KeySpace)
	typeText(m, "+2")
	assert.Equal(t, "1 +2", session.Input())
}

func TestEditingKeys(t *testing.T) {
	session := calculator.NewSession(nil, nil, nil)
	var m tea.Model = tui.New(session)

	m = typeText(m, "12+3")
	m, _ = pressKey(m, tea.KeyBackspace)
	assert.Equal(t, "12+", session.Input())

	m, _ = pressKey(m, tea.KeyEsc)
	assert.Equal(t, "", session.Input())

	m = typeText(m, "2*2=")
	assert.Equal(t, 1, session.History().Len())

	_, _ = pressKey(m, tea.KeyCtrlL)
	assert.Equal(t, 0, session.History().Len())
	assert.Equal(t, "", session.Display())
}

func TestErrorIsDisplayed(t *testing.T) {
	session := calculator.NewSession(nil, nil, nil)
	var m tea.Model = tui.New(session)

	m = typeText(m, "(1+")
	m, _ = pressKey(m, tea.KeyEnter)

	assert.Equal(t, calculator.ErrorDisplay, session.Display())
	assert.Contains(t, m.View(), calculator.ErrorDisplay)
}

func TestEmptyViewShowsKeyLegend(t *testing.T) {
	m := tui.New(calculator.NewSession(nil, nil, nil))

	view := m.View()
	for _, key := range []string{"7", "/", "*", "-", "+", "%", calculator.KeyBackspace, calculator.KeyClearAll} {
		assert.Contains(t, view, key)
	}
	assert.Contains(t, view, "No history yet")
}

func TestQuit(t *testing.T) {
	var m tea.Model = tui.New(calculator.NewSession(nil, nil, nil))

	m, cmd := pressKey(m, tea.KeyCtrlC)
	assert.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", m.View())
}

func TestOtherMessagesAreIgnored(t *testing.T) {
	session := calculator.NewSession(nil, nil, nil)
	var m tea.Model = tui.New(session)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, "", session.Display())
}
