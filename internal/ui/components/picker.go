package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studium/internal/ui/theme"
)

// Picker is a horizontal single-choice selector cycled with left/right.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker over the given options.
func NewPicker(label string, options []string) Picker {
	return Picker{
		Label:   label,
		Options: options,
	}
}

// Update handles left/right cycling while the picker is focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected--
		if p.Selected < 0 {
			p.Selected = len(p.Options) - 1
		}
	case "right", "l":
		p.Selected++
		if p.Selected >= len(p.Options) {
			p.Selected = 0
		}
	}
	return p, nil
}

// Value returns the selected option.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders the picker as a labelled row of options.
func (p Picker) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if p.Focused {
		labelStyle = labelStyle.Foreground(theme.Text).Bold(true)
	}

	parts := make([]string, 0, len(p.Options))
	for i, opt := range p.Options {
		if i == p.Selected {
			if p.Focused {
				parts = append(parts, theme.PickerActive.Render(opt))
			} else {
				parts = append(parts, lipgloss.NewStyle().
					Foreground(theme.Primary).Bold(true).Padding(0, 1).Render(opt))
			}
		} else {
			parts = append(parts, theme.PickerInactive.Render(opt))
		}
	}

	return labelStyle.Render(p.Label+":") + "  " + strings.Join(parts, " ")
}
