package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-account-keeper/internal/validators"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

type formAccountModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	original   models.Account
	submitting bool
}

// newFormAccountModel opens an empty form, or an edit form prefilled from
// item. The password is never prefilled; leaving it empty keeps the old one.
func newFormAccountModel(item *models.Account) formAccountModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldName].Placeholder = "name"
	inputs[fieldEmail].Placeholder = "email"
	inputs[fieldPassword].Placeholder = "password"
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldName].Focus()

	m := formAccountModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.original = *item
	m.inputs[fieldName].SetValue(item.Name)
	m.inputs[fieldEmail].SetValue(item.Email)
	return m
}

func (m formAccountModel) toAccount() models.Account {
	account := models.Account{
		Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
		Email:    strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Password: m.inputs[fieldPassword].Value(),
	}
	if m.editing {
		account.Base = m.original.Base
	}
	return account
}

// validate applies the client rules: name and email always, a strong
// password on create and on edit when one is typed.
func (m formAccountModel) validate(ctx context.Context, v validators.Validator, account models.Account) error {
	fields := []string{validators.FieldName, validators.FieldEmail}
	if !m.editing || account.Password != "" {
		fields = append(fields, validators.FieldPasswordStrength)
	}
	return v.Validate(ctx, account, fields...)
}

func (m formAccountModel) focusNext() formAccountModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formAccountModel) focusPrev() formAccountModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formAccountModel) View() string {
	title := "NEW ACCOUNT"
	passwordHint := ""
	if m.editing {
		title = "EDIT: " + m.original.Email
		passwordHint = "  (empty keeps the current one)"
	}

	out := "Name:     [" + m.inputs[fieldName].View() + "]\n"
	out += "Email:    [" + m.inputs[fieldEmail].View() + "]\n"
	out += "Password: [" + m.inputs[fieldPassword].View() + "]" + passwordHint
	if m.submitting {
		out += "\n\nSaving..."
	}

	return renderPage(title, out, "tab next field  enter save  esc cancel")
}
