package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField describes one input of an entity form.
type formField struct {
	label       string
	placeholder string
}

// formModel edits one record as a column of text inputs. editingID is 0
// for a new record.
type formModel struct {
	title      string
	labels     []string
	inputs     []textinput.Model
	focus      int
	editingID  int64
	submitting bool
	err        string
}

func newFormModel(title string, fields []formField, values []string, editingID int64) formModel {
	m := formModel{
		title:     title,
		labels:    make([]string, len(fields)),
		inputs:    make([]textinput.Model, len(fields)),
		editingID: editingID,
	}
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Width = 50
		in.Prompt = ""
		if i < len(values) {
			in.SetValue(values[i])
		}
		m.labels[i] = f.label
		m.inputs[i] = in
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m formModel) values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

func (m *formModel) move(delta int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// update routes msg to the focused input. Navigation keys are handled by
// the caller.
func (m *formModel) update(msg tea.Msg) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m formModel) View() string {
	width := 0
	for _, l := range m.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%-*s [%s]\n", cursor, width+1, m.labels[i]+":", in.View())
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nsaving...\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc cancel  tab next field  enter save"))
	return overlayBoxStyle.Render(b.String())
}
