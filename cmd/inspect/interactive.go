package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bitpack/bitfield"
	"github.com/wippyai/bitpack/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	filename string
	records  []*bitfield.CompiledRecord
	result   string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type modelState int

const (
	stateSelectRecord modelState = iota
	stateInputFields
	stateShowPacked
)

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		state:    stateSelectRecord,
	}
}

type loadedMsg struct {
	err     error
	records []*bitfield.CompiledRecord
}

type packedMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadSchema
}

func (m *interactiveModel) loadSchema() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	records, err := schema.Compile(string(data))
	if err != nil {
		return loadedMsg{err: err}
	}
	if len(records) == 0 {
		return loadedMsg{err: fmt.Errorf("schema defines no records")}
	}

	return loadedMsg{records: records}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputFields || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectRecord && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectRecord && m.selected < len(m.records)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectRecord:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.packRecord
				}
				m.state = stateInputFields

			case stateInputFields:
				return m, m.packRecord

			case stateShowPacked:
				m.state = stateSelectRecord
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputFields && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputFields:
				m.state = stateSelectRecord
				m.inputs = nil
			case stateShowPacked:
				m.state = stateSelectRecord
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records

	case packedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowPacked
	}

	if m.state == stateInputFields {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	rec := m.records[m.selected]
	fields := rec.Fields()
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = placeholderFor(f.Spec)
		ti.Prompt = f.Name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func placeholderFor(spec bitfield.Specifier) string {
	switch s := spec.(type) {
	case *bitfield.Enum:
		names := make([]string, 0, len(s.Variants()))
		for _, v := range s.Variants() {
			names = append(names, v.Name)
		}
		return strings.Join(names, "|")
	default:
		if spec.Kind() == bitfield.KindBool {
			return "true|false"
		}
		return spec.String()
	}
}

// packRecord builds a fresh record, writes every field from its input, and
// formats the packed bytes plus a read-back of each field.
func (m *interactiveModel) packRecord() tea.Msg {
	rec := m.records[m.selected]
	r := bitfield.New(rec)

	for i, f := range rec.Fields() {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			continue // leave the zero value
		}
		if err := setField(r, f, raw); err != nil {
			return packedMsg{err: err}
		}
	}

	var b strings.Builder
	b.WriteString("bytes: ")
	for i, by := range r.Bytes() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", by)
	}
	b.WriteString("\n\n")

	for _, f := range rec.Fields() {
		val, err := readField(r, f)
		if err != nil {
			return packedMsg{err: err}
		}
		fmt.Fprintf(&b, "%s = %s\n", f.Name, val)
	}

	return packedMsg{result: b.String()}
}

func setField(r *bitfield.Record, f bitfield.CompiledField, raw string) error {
	switch f.Spec.Kind() {
	case bitfield.KindBool:
		return r.SetBool(f.Name, raw == "true" || raw == "1")
	case bitfield.KindEnum:
		return r.SetVariant(f.Name, raw)
	default:
		v, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		return r.SetUint(f.Name, v)
	}
}

func readField(r *bitfield.Record, f bitfield.CompiledField) (string, error) {
	switch f.Spec.Kind() {
	case bitfield.KindBool:
		v, err := r.Bool(f.Name)
		return strconv.FormatBool(v), err
	case bitfield.KindEnum:
		v, err := r.Variant(f.Name)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s (%d)", v.Name, v.Discriminant), nil
	default:
		v, err := r.Uint(f.Name)
		return strconv.FormatUint(v, 10), err
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowPacked {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.records) == 0 {
		return "Loading schema..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Bitpack Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectRecord:
		b.WriteString("Select a record to pack:\n\n")
		for i, rec := range m.records {
			line := m.formatRecord(rec)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter pack • q quit"))

	case stateInputFields:
		rec := m.records[m.selected]
		b.WriteString(fmt.Sprintf("Packing %s\n\n", recordStyle.Render(rec.Name())))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(rec.Fields()[i].Spec.String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter pack • esc back"))

	case stateShowPacked:
		rec := m.records[m.selected]
		b.WriteString(fmt.Sprintf("Packed %s:\n\n", recordStyle.Render(rec.Name())))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatRecord(rec *bitfield.CompiledRecord) string {
	var fields []string
	for _, f := range rec.Fields() {
		fields = append(fields, f.Name+": "+typeStyle.Render(f.Spec.String()))
	}
	size := fmt.Sprintf(" (%d bytes)", rec.ByteSize())
	return recordStyle.Render(rec.Name()) + "{" + strings.Join(fields, ", ") + "}" + size
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
