// Package control models the UI control that a submission marks busy.
package control

import "sync"

// DefaultID identifies the submit control of the reviewer page.
const DefaultID = "download-btn"

// DefaultBusyLabel is shown while a submission is in flight.
const DefaultBusyLabel = "Submitting..."

// Control is a labelled control that can be disabled.
type Control interface {
	Label() string
	SetLabel(label string)
	Disabled() bool
	SetDisabled(disabled bool)
}

// Button is an in-memory Control.
type Button struct {
	id       string
	mux      sync.RWMutex
	label    string
	disabled bool
}

// ID returns the button id.
func (b *Button) ID() string { return b.id }

func (b *Button) Label() string {
	b.mux.RLock()
	defer b.mux.RUnlock()
	return b.label
}

func (b *Button) SetLabel(label string) {
	b.mux.Lock()
	b.label = label
	b.mux.Unlock()
}

func (b *Button) Disabled() bool {
	b.mux.RLock()
	defer b.mux.RUnlock()
	return b.disabled
}

func (b *Button) SetDisabled(disabled bool) {
	b.mux.Lock()
	b.disabled = disabled
	b.mux.Unlock()
}

// NewButton creates an enabled button.
func NewButton(id, label string) *Button {
	if id == "" {
		id = DefaultID
	}
	return &Button{id: id, label: label}
}

// Acquire disables ctrl and shows busyLabel. The returned release restores
// the label and disabled state seen at acquisition; calling it more than
// once has no further effect. A nil ctrl yields a no-op release.
func Acquire(ctrl Control, busyLabel string) (release func()) {
	if ctrl == nil {
		return func() {}
	}
	if busyLabel == "" {
		busyLabel = DefaultBusyLabel
	}
	label, disabled := ctrl.Label(), ctrl.Disabled()
	ctrl.SetDisabled(true)
	ctrl.SetLabel(busyLabel)
	var once sync.Once
	return func() {
		once.Do(func() {
			ctrl.SetDisabled(disabled)
			ctrl.SetLabel(label)
		})
	}
}
