package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/bridge"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/validators"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenForm
	screenFind
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	accounts  *bridge.Bridge[models.Account]
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	currentScreen screen
	signedIn      bool

	login  loginModel
	list   listModel
	detail detailModel
	form   formAccountModel
	find   findModel

	// focusID is the account the list cursor jumps to on the next snapshot.
	focusID int64

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
	showBuildInfo bool
}

func newAppModel(
	ctx context.Context,
	auth service.ClientAuthService,
	accounts *bridge.Bridge[models.Account],
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
	signedIn bool,
) appModel {
	m := appModel{
		ctx:           ctx,
		auth:          auth,
		accounts:      accounts,
		validator:     validators.NewAccountValidator(),
		buildInfo:     buildInfo,
		logger:        logger,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		list:          newListModel(),
	}

	if signedIn {
		m.currentScreen = screenList
		m.list.loading = true
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.cmdWaitForChanges()}
	if m.currentScreen == screenList {
		cmds = append(cmds, m.cmdMount(), m.list.spinner.Tick)
	} else {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.login = newLoginModel()
		m.currentScreen = screenList
		m.list.loading = true
		m.list.items = nil
		return m, tea.Batch(m.cmdMount(), m.list.spinner.Tick)
	case mountedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.signedIn = true
		m.list.signIn = m.signInLine()
		if items, ok := m.accounts.Snapshot(); ok {
			m.list.setItems(items, 0)
		}
		return m, nil
	case snapshotChangedMsg:
		if items, ok := m.accounts.Snapshot(); ok {
			m.list.setItems(items, m.focusID)
			m.focusID = 0
			m.refreshDetail()
		}
		return m, m.cmdWaitForChanges()
	case fetchDoneMsg:
		m.list.loading = false
		if msg.err != nil {
			m.focusID = 0
			m.showErrorf(msg.err)
			return m, nil
		}
		if msg.id != 0 {
			if account, ok := m.accounts.Store().Get(msg.id); ok {
				m.detail = detailModel{item: account}
				m.currentScreen = screenDetail
			}
		}
		return m, nil
	case accountSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.detail = detailModel{item: msg.account}
		m.currentScreen = screenDetail
		return m, nil
	case accountDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.pendingDelete = 0
		m.currentScreen = screenList
		m.list.status = fmt.Sprintf("Account %d deleted", msg.id)
		return m, cmdClearStatus()
	case loggedOutMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("server logout failed, local session cleared")
		}
		m.signedIn = false
		m.list = newListModel()
		m.login = newLoginModel()
		m.currentScreen = screenLogin
		return m, nil
	case copiedMsg:
		m.detail.status = "Copied!"
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenFind:
		return m.updateFind(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	case screenFind:
		body = m.find.View()
	}

	if m.showBuildInfo {
		body = renderBuildInfoWindow(m.buildInfo)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(err error) {
	m.showError = true
	m.errorOverlay.message = humanizeError(err)
}

func (m appModel) signInLine() string {
	if id, ok := m.auth.AccountID(); ok {
		return fmt.Sprintf("Signed in as account %d", id)
	}
	return ""
}

// refreshDetail keeps the open detail view in step with the mirror.
func (m *appModel) refreshDetail() {
	if m.currentScreen != screenDetail {
		return
	}
	if account, ok := m.accounts.Store().Get(m.detail.item.ID); ok {
		m.detail.item = account
		return
	}
	m.currentScreen = screenList
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDelete == 0 {
			return m, nil
		}
		return m, m.cmdDelete(m.pendingDelete)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = 0
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(m.login.credentials())
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if item, ok := m.list.current(); ok {
			m.detail = detailModel{item: item}
			m.currentScreen = screenDetail
		}
	case key.Matches(keyMsg, keys.find):
		m.find = newFindModel()
		m.currentScreen = screenFind
	case key.Matches(keyMsg, keys.loadAll):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.cmdFetchAll(), m.list.spinner.Tick)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormAccountModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		if item, ok := m.list.current(); ok {
			m.form = newFormAccountModel(&item)
			m.currentScreen = screenForm
		}
	case key.Matches(keyMsg, keys.delete):
		if item, ok := m.list.current(); ok {
			m.askDelete(item)
		}
	case key.Matches(keyMsg, keys.copy):
		if item, ok := m.list.current(); ok {
			return m, cmdCopyToClipboard(item.Email)
		}
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		item := m.detail.item
		m.form = newFormAccountModel(&item)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.askDelete(m.detail.item)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.item.Email)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			account := m.form.toAccount()
			if err := m.form.validate(m.ctx, m.validator, account); err != nil {
				m.showErrorf(fmt.Errorf("%w: %w", service.ErrValidation, err))
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSave(account, m.form.editing)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFind(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			id, err := m.find.id()
			if err != nil {
				m.showErrorf(err)
				return m, nil
			}
			m.focusID = id
			m.currentScreen = screenList
			m.list.loading = true
			return m, tea.Batch(m.cmdFetchByID(id), m.list.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.find.input, cmd = m.find.input.Update(msg)
	return m, cmd
}

func (m *appModel) askDelete(item models.Account) {
	m.showConfirm = true
	m.confirm.message = item.Email
	m.pendingDelete = item.ID
}

func (m appModel) cmdWaitForChanges() tea.Cmd {
	ctx := m.ctx
	changes := m.accounts.Changes()
	return func() tea.Msg {
		select {
		case <-changes:
			return snapshotChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m appModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		return loginDoneMsg{err: auth.Login(ctx, credentials)}
	}
}

func (m appModel) cmdMount() tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts
	return func() tea.Msg {
		return mountedMsg{err: accounts.Mount(ctx)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	accounts := m.accounts
	return func() tea.Msg {
		err := auth.Logout(ctx)
		accounts.Unmount()
		accounts.Store().Clear()
		if errors.Is(err, service.ErrNotLoggedIn) {
			err = nil
		}
		return loggedOutMsg{err: err}
	}
}

func (m appModel) cmdFetchAll() tea.Cmd {
	ctx := m.ctx
	store := m.accounts.Store()
	return func() tea.Msg {
		return fetchDoneMsg{err: store.FetchAll(ctx, nil)}
	}
}

func (m appModel) cmdFetchByID(id int64) tea.Cmd {
	ctx := m.ctx
	store := m.accounts.Store()
	return func() tea.Msg {
		return fetchDoneMsg{id: id, err: store.FetchByID(ctx, id)}
	}
}

func (m appModel) cmdSave(account models.Account, editing bool) tea.Cmd {
	ctx := m.ctx
	store := m.accounts.Store()
	return func() tea.Msg {
		var (
			saved models.Account
			err   error
		)
		if editing {
			saved, err = store.Update(ctx, account)
		} else {
			saved, err = store.Add(ctx, account)
		}
		return accountSavedMsg{account: saved, err: err}
	}
}

func (m appModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	store := m.accounts.Store()
	return func() tea.Msg {
		_, err := store.Delete(ctx, id)
		return accountDeletedMsg{id: id, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return accountSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
