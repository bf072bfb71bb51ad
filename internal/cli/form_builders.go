package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmarsden/mentorlog/internal/cli/formatter"
	"github.com/lmarsden/mentorlog/internal/service"
)

// mentorlogHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func mentorlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// sessionFormValues holds the string-typed form state before conversion.
type sessionFormValues struct {
	Group    string
	Category string
	Activity string
	Hours    string
	Minutes  string
}

// sessionForm builds the interactive session entry form. Pre-filled values
// (from flags or an existing session) become the form defaults.
func sessionForm(categories []string, v *sessionFormValues) *huh.Form {
	options := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		options = append(options, huh.NewOption(c, c))
	}
	if v.Category == "" && len(categories) > 0 {
		v.Category = categories[0]
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Group Name").
				Placeholder("Group 26").
				Value(&v.Group).
				Validate(validateRequired("group name")),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&v.Category),
			huh.NewInput().
				Title("Activity").
				Placeholder("Discussed sprint goals").
				Value(&v.Activity).
				Validate(validateRequired("activity")),
			huh.NewInput().
				Title("Hours").
				Placeholder("1").
				Value(&v.Hours).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Minutes").
				Placeholder("30").
				Value(&v.Minutes).
				Validate(validateNonNegativeInt),
		),
	).WithTheme(mentorlogHuhTheme()).WithShowHelp(false)
}

// toInput converts form values into a SessionInput. Empty numeric fields
// count as zero.
func (v *sessionFormValues) toInput() service.SessionInput {
	return service.SessionInput{
		GroupName:           v.Group,
		Category:            v.Category,
		ActivityDescription: v.Activity,
		Hours:               atoiOrZero(v.Hours),
		Minutes:             atoiOrZero(v.Minutes),
	}
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
