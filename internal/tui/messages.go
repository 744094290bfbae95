package tui

import "github.com/MKhiriev/go-pos-client/models"

// viewUpdatedMsg carries a models.PageView[T] of the tab at index tab.
// closed is set once the synchronizer stopped publishing.
type viewUpdatedMsg struct {
	tab    int
	view   any
	closed bool
}

type mutationDoneMsg struct {
	tab    int
	action string
	err    error
}

type refreshDoneMsg struct {
	tab int
	err error
}

type copiedMsg struct {
	tab int
	id  int64
	err error
}

type summaryMsg struct {
	summary models.Summary
	err     error
}

type clearStatusMsg struct {
	tab int
	seq int
}
