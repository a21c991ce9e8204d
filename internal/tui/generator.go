// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazypass/lazypass/internal/app"
	"github.com/lazypass/lazypass/internal/service"
)

const statusTTL = 3 * time.Second

// GeneratorModel is the Bubble Tea model of the password screen. The phrase
// is typed with masked echo, derivation runs in a tea.Cmd so the UI stays
// responsive, and the resulting password is masked until revealed.
type GeneratorModel struct {
	ctx       context.Context
	passwords service.PasswordService
	delivery  service.DeliveryService

	clearDelay time.Duration
	typeDelay  time.Duration
	// canCopy and canType are probed once; the c and t keys are hidden
	// without a backend.
	canCopy bool
	canType bool

	input    textinput.Model
	password string
	revealed bool
	busy     bool
	typing   bool
	// seq identifies the latest generate request; older results are dropped.
	seq int

	status    string
	statusSeq int
	overlay   *errorOverlayModel
}

// NewGeneratorModel creates a [GeneratorModel] with the phrase input focused.
func NewGeneratorModel(ctx context.Context, services *service.Services, clearDelay, typeDelay time.Duration) *GeneratorModel {
	input := textinput.New()
	input.Placeholder = "phrase"
	input.CharLimit = 1024
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &GeneratorModel{
		ctx:        ctx,
		passwords:  services.PasswordService,
		delivery:   services.DeliveryService,
		clearDelay: clearDelay,
		typeDelay:  typeDelay,
		canCopy:    services.DeliveryService.CanCopy(),
		canType:    services.DeliveryService.CanType(),
		input:      input,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *GeneratorModel) Init() tea.Cmd {
	return textinput.Blink
}

// editing reports whether key presses go to the phrase input.
func (m *GeneratorModel) editing() bool {
	return m.input.Focused() && m.overlay == nil
}

// Update implements [tea.Model].
func (m *GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.password = msg.password
		m.revealed = false
		m.input.Blur()
		return m, m.setStatus("password ready")

	case copiedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		return m, m.setStatus(fmt.Sprintf("copied, clipboard clears in %s", m.clearDelay))

	case typeCountdownMsg:
		return m, m.tickTyping(msg.remaining)

	case typedMsg:
		m.typing = false
		if msg.err != nil {
			m.status = ""
			m.showError(msg.err)
			return m, nil
		}
		return m, m.setStatus("typed")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *GeneratorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.input.Focused() {
		switch {
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		case key.Matches(msg, keys.esc):
			if m.password == "" {
				return m, tea.Quit
			}
			m.input.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.copy):
		if !m.canCopy {
			return m, nil
		}
		return m, m.cmdCopy(m.password)
	case key.Matches(msg, keys.typeText):
		if !m.canType || m.typing || m.password == "" {
			return m, nil
		}
		m.typing = true
		return m, m.startTyping()
	case key.Matches(msg, keys.reveal):
		m.revealed = !m.revealed
		return m, nil
	case key.Matches(msg, keys.edit):
		m.password = ""
		m.revealed = false
		m.typing = false
		return m, m.input.Focus()
	case key.Matches(msg, keys.quit, keys.esc):
		return m, tea.Quit
	}
	return m, nil
}

func (m *GeneratorModel) startTyping() tea.Cmd {
	return m.tickTyping(int(m.typeDelay / time.Second))
}

func (m *GeneratorModel) tickTyping(remaining int) tea.Cmd {
	if !m.typing {
		return nil
	}
	if m.password == "" {
		m.typing = false
		return nil
	}
	if remaining <= 0 {
		m.status = "typing..."
		return m.cmdType(m.password)
	}
	m.status = fmt.Sprintf("typing in %ds, focus the target window", remaining)
	return countdown(remaining - 1)
}

func (m *GeneratorModel) submit() tea.Cmd {
	if m.busy {
		return nil
	}
	phrase := m.input.Value()
	if phrase == "" {
		return m.setStatus("enter a phrase first")
	}

	m.busy = true
	m.seq++
	m.password = ""
	m.revealed = false
	m.status = ""
	return m.cmdGenerate(m.seq, phrase)
}

func (m *GeneratorModel) showError(err error) {
	m.overlay = &errorOverlayModel{message: app.UserMessage(err)}
}

func (m *GeneratorModel) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// View implements [tea.Model].
func (m *GeneratorModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	var b strings.Builder
	if !m.passwords.Ready() {
		b.WriteString(warnStyle.Render("no pepper configured, derivation is unavailable"))
		b.WriteString("\n\n")
	}

	b.WriteString("Phrase   │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	b.WriteString("Password │ ")
	switch {
	case m.busy:
		b.WriteString("deriving...")
	case m.password == "":
		b.WriteString("-")
	case m.revealed:
		b.WriteString(passwordStyle.Render(m.password))
	default:
		b.WriteString(mask(m.password))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("LAZYPASS", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *GeneratorModel) hotKeys() string {
	if m.input.Focused() {
		if m.password != "" {
			return "enter: generate │ esc: back to password"
		}
		return "enter: generate │ esc: quit"
	}
	hints := make([]string, 0, 6)
	if m.canCopy {
		hints = append(hints, "c: copy")
	}
	if m.canType {
		hints = append(hints, "t: type")
	}
	hints = append(hints, "s: show/hide", "e: edit phrase", "v: about", "q: quit")
	return strings.Join(hints, " │ ")
}

func (m *GeneratorModel) cmdGenerate(seq int, phrase string) tea.Cmd {
	ctx := m.ctx
	passwords := m.passwords

	return func() tea.Msg {
		password, err := passwords.Generate(ctx, phrase)
		return generatedMsg{seq: seq, password: password, err: err}
	}
}

func (m *GeneratorModel) cmdCopy(password string) tea.Cmd {
	delivery := m.delivery

	return func() tea.Msg {
		return copiedMsg{err: delivery.Copy(password)}
	}
}

func (m *GeneratorModel) cmdType(password string) tea.Cmd {
	ctx := m.ctx
	delivery := m.delivery

	return func() tea.Msg {
		return typedMsg{err: delivery.Type(ctx, password)}
	}
}

func countdown(remaining int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return typeCountdownMsg{remaining: remaining}
	})
}
