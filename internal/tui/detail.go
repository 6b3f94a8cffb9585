package tui

import (
	"fmt"

	"github.com/MKhiriev/go-account-keeper/models"
)

type detailModel struct {
	item   models.Account
	status string
}

func (m detailModel) View() string {
	out := fmt.Sprintf("ID:       %d\n", m.item.ID)
	out += fmt.Sprintf("Name:     %s\n", valueOrDash(m.item.Name))
	out += fmt.Sprintf("Email:    %s\n", valueOrDash(m.item.Email))
	out += fmt.Sprintf("Created:  %s\n", formatTime(m.item.CreatedAt))
	out += fmt.Sprintf("Updated:  %s", formatTime(m.item.UpdatedAt))

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return renderPage(m.item.Email, out, "e edit  d delete  c copy email  esc back")
}
