package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cred-keeper/internal/mock"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlL = tea.KeyMsg{Type: tea.KeyCtrlL}
	keyCtrlT = tea.KeyMsg{Type: tea.KeyCtrlT}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlN = tea.KeyMsg{Type: tea.KeyCtrlN}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type testDeps struct {
	auth        *mock.MockClientAuthService
	credentials *mock.MockClientCredentialService
	issuers     *mock.MockClientIssuerService
}

func newTestDeps(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	return testDeps{
		auth:        mock.NewMockClientAuthService(ctrl),
		credentials: mock.NewMockClientCredentialService(ctrl),
		issuers:     mock.NewMockClientIssuerService(ctrl),
	}
}

// drain runs cmd and every command batched into it, returning the produced
// messages. Commands that block longer than a short timeout (timers) are
// dropped.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(200 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// find returns the first message of type T.
func find[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

var testCtx = context.Background()
