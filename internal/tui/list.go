package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	items   []models.Account
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	signIn  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

func (m listModel) current() (models.Account, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Account{}, false
	}
	return m.items[m.idx], true
}

// setItems replaces the rows and keeps the cursor on focusID when it is
// listed, otherwise clamps it.
func (m *listModel) setItems(items []models.Account, focusID int64) {
	m.items = items

	if focusID != 0 {
		for i, a := range items {
			if a.ID == focusID {
				m.idx = i
				return
			}
		}
	}

	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View() string {
	header := "ACCOUNTS"
	if m.loading {
		header += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.items == nil:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No accounts loaded. Press f to find one by id or a to load all.")
	default:
		for i, a := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%-6d %-32s %s\n", cursor, a.ID, fitText(a.Email, 32), fitText(a.Name, 24))
		}
	}

	if m.signIn != "" {
		b.WriteString("\n" + m.signIn)
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage(header, strings.TrimRight(b.String(), "\n"),
		"enter open  f find  a load all  n new  e edit  d delete  c copy email  l logout  q quit")
}
