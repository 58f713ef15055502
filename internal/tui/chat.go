package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
)

const chatHistoryLimit = 12

type chatLine struct {
	fromUser bool
	text     string
}

// ChatModel is the assistant window. The assistant is optional; without a
// configured client every question gets the unreachable reply.
type ChatModel struct {
	ctx    context.Context
	client adapter.ChatClient

	input   textinput.Model
	history []chatLine
	form    formState
}

func NewChatModel(ctx context.Context, client adapter.ChatClient) *ChatModel {
	in := newInput("ask something", 500)
	in.Width = 64
	in.Focus()

	return &ChatModel{
		ctx:     ctx,
		client:  client,
		input:   in,
		history: []chatLine{{text: app.MsgChatGreeting}},
		form:    newFormState(),
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.form.reset()
		if msg.err != nil {
			m.push(chatLine{text: service.UserMessage(msg.err, app.MsgChatUnreachable)})
		} else {
			m.push(chatLine{text: msg.reply})
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.form.busy() {
				return m, nil
			}
			m.input.Reset()
			m.push(chatLine{fromUser: true, text: question})
			return m, tea.Batch(m.form.start(), m.cmdSend(question))
		}
	}

	if cmd := m.form.update(msg); cmd != nil {
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) push(line chatLine) {
	m.history = append(m.history, line)
	if len(m.history) > chatHistoryLimit {
		m.history = m.history[len(m.history)-chatHistoryLimit:]
	}
}

func (m *ChatModel) View() string {
	var b strings.Builder
	for _, line := range m.history {
		if line.fromUser {
			b.WriteString(selectedStyle.Render("You: "))
		} else {
			b.WriteString(helpStyle.Render("Assistant: "))
		}
		b.WriteString(line.text)
		b.WriteString("\n")
	}
	if v := m.form.View(); v != "" {
		b.WriteString(v)
		b.WriteString("\n")
	}
	b.WriteString("\n> ")
	b.WriteString(m.input.View())

	return renderPage("CHAT ASSISTANT", b.String(), "esc: back │ enter: send")
}

func (m *ChatModel) cmdSend(question string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if client == nil {
			return chatReplyMsg{err: errChatUnavailable}
		}
		reply, err := client.Send(ctx, question)
		return chatReplyMsg{reply: reply, err: err}
	}
}
