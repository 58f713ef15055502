// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/service"
)

type formStatus int

const (
	statusIdle formStatus = iota
	statusLoading
	statusSuccess
	statusError
)

// formState is the lifecycle every view goes through per action. A form in
// statusLoading accepts no new submission, so there is at most one call in
// flight per form.
type formState struct {
	status  formStatus
	message string
	spinner spinner.Model
}

func newFormState() formState {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return formState{spinner: s}
}

func (f *formState) busy() bool {
	return f.status == statusLoading
}

// start switches to statusLoading and returns the spinner tick.
func (f *formState) start() tea.Cmd {
	f.status = statusLoading
	f.message = ""
	return f.spinner.Tick
}

// update animates the spinner while a call is in flight.
func (f *formState) update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !f.busy() {
		return nil
	}
	var cmd tea.Cmd
	f.spinner, cmd = f.spinner.Update(tick)
	return cmd
}

func (f *formState) succeed(message string) {
	f.status = statusSuccess
	f.message = message
}

func (f *formState) fail(message string) {
	f.status = statusError
	f.message = message
}

// finish records the outcome of a call. Errors are collapsed to text that
// is safe to show, fallback being used for anything unexpected.
func (f *formState) finish(err error, success, fallback string) {
	if err != nil {
		f.fail(service.UserMessage(err, fallback))
		return
	}
	f.succeed(success)
}

func (f *formState) reset() {
	f.status = statusIdle
	f.message = ""
}

func (f formState) View() string {
	switch f.status {
	case statusLoading:
		return f.spinner.View() + " working..."
	case statusSuccess:
		if f.message == "" {
			return ""
		}
		return successStyle.Render("OK: " + f.message)
	case statusError:
		return errorStyle.Render("Error: " + f.message)
	default:
		return ""
	}
}
