package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type findModel struct {
	input textinput.Model
}

func newFindModel() findModel {
	in := textinput.New()
	in.Placeholder = "account id"
	in.CharLimit = 19
	in.Width = 20
	in.Focus()
	return findModel{input: in}
}

func (m findModel) id() (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(m.input.Value()), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (m findModel) View() string {
	return renderPage("FIND ACCOUNT", "ID: ["+m.input.View()+"]", "enter find  esc back")
}
