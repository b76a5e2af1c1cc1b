package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formInputs is a focus ring of text inputs shared by every form page.
type formInputs struct {
	inputs []textinput.Model
	focus  int
}

func newTextInput(placeholder string, charLimit int, masked bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	if masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newFormInputs(inputs ...textinput.Model) formInputs {
	f := formInputs{inputs: inputs}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *formInputs) value(i int) string {
	return f.inputs[i].Value()
}

func (f *formInputs) view(i int) string {
	return f.inputs[i].View()
}

func (f *formInputs) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formInputs) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formInputs) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

// update forwards msg to the focused input.
func (f *formInputs) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
