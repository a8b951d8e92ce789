package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("themebundle configuration"))
	b.WriteString("\n")
	if m.opts.Path != "" {
		b.WriteString(pathStyle.Render(m.opts.Path))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.screen {
	case screenMenu:
		b.WriteString(m.viewSummary())
		b.WriteString("\n\n")
		b.WriteString(m.viewMenu())
	case screenForm:
		if c := GetCategoryByID(m.formCategory); c != nil {
			b.WriteString(cursorStyle.Render(c.Name))
			b.WriteString("\n\n")
		}
		b.WriteString(m.form.View())
	case screenManifestWarning:
		b.WriteString(promptStyle.Render(fmt.Sprintf(
			"The manifest does not load:\n%v\n\nSave anyway?\n\n[y] Save  [n] Back", m.summary.Err)))
	case screenQuitConfirm:
		b.WriteString(promptStyle.Render(fmt.Sprintf(
			"Unsaved changes in %s.\n\nSave before quitting?\n\n[y] Save  [n] Discard  [c] Cancel",
			strings.Join(m.changedNames(), ", "))))
	case screenSaved:
		msg := "Configuration saved."
		if m.opts.Path != "" {
			msg = "Configuration saved to " + m.opts.Path
		}
		b.WriteString(okStyle.Render(msg))
		b.WriteString("\n\nPress any key to exit.")
	case screenFailed:
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\nPress any key to exit.")
	}

	return b.String()
}

func (m Model) viewSummary() string {
	s := m.summary
	row := func(label, value string) string {
		return labelStyle.Render(label) + value + "\n"
	}

	var b strings.Builder
	b.WriteString(row("Manifest", s.Manifest))
	if s.Err != nil {
		b.WriteString(row("", errStyle.Render(s.Err.Error())))
	} else {
		b.WriteString(row("", fmt.Sprintf("%d outputs, %d namespaces", s.Outputs, s.Namespaces)))
	}
	b.WriteString(row("Project dir", s.ProjectDir))

	maps := "off"
	if s.SourceMaps {
		maps = "on"
	}
	if s.ManifestOverride {
		maps += hintStyle.Render(" (set by manifest)")
	}
	b.WriteString(row("Source maps", maps))

	return summaryStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m Model) viewMenu() string {
	var b strings.Builder

	for i, c := range Categories {
		b.WriteString(m.menuLine(i, c.Name, m.values.Changed(c.ID, m.baseline)))
		if i == m.cursor {
			b.WriteString(hintStyle.Render("  " + c.Description))
		}
		b.WriteString("\n")
	}

	save := "Save"
	if changed := len(m.ChangedCategories()); changed > 0 {
		save = fmt.Sprintf("Save (%d changed)", changed)
	}
	b.WriteString("\n")
	b.WriteString(m.menuLine(m.saveEntry(), save, false))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("↑/↓ move • enter edit • r reset • s save • q quit"))

	return b.String()
}

func (m Model) menuLine(index int, label string, changed bool) string {
	line := "  " + itemStyle.Render(label)
	if index == m.cursor {
		line = cursorStyle.Render("> " + label)
	}
	if changed {
		line += changedStyle.Render(" ●")
	}
	return line
}

func (m Model) changedNames() []string {
	ids := m.ChangedCategories()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if c := GetCategoryByID(id); c != nil {
			names = append(names, c.Name)
		}
	}
	return names
}
