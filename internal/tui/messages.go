package tui

import "github.com/MKhiriev/go-account-keeper/models"

type loginDoneMsg struct {
	err error
}

type mountedMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

// snapshotChangedMsg is produced whenever the bridge signals a new snapshot.
type snapshotChangedMsg struct{}

type fetchDoneMsg struct {
	id  int64 // 0 for "load all"
	err error
}

type accountSavedMsg struct {
	account models.Account
	err     error
}

type accountDeletedMsg struct {
	id  int64
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
