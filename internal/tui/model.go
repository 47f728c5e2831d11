// Package tui is an interactive terminal front end for the generator: a
// length slider, class toggles, a strength meter and copy to clipboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vaultpass/passgen/internal/password"
)

const (
	MinSliderLength     = 4
	MaxSliderLength     = 64
	DefaultSliderLength = 16

	generateNoticeDuration = 3 * time.Second
	copyNoticeDuration     = 2 * time.Second
)

// Options configures a Model. Zero values select the defaults.
type Options struct {
	Length    int
	Selection password.Selection
	Source    password.Source
	// Copy writes to the clipboard. Defaults to the system clipboard.
	Copy func(string) error
}

// Model is the bubbletea model of the generator screen.
type Model struct {
	length   int
	sel      password.Selection
	src      password.Source
	copyFn   func(string) error
	password string
	tier     password.Tier

	notice    string
	noticeErr bool
	noticeSeq int

	keys keyMap
	bar  progress.Model
}

type noticeExpiredMsg struct{ seq int }

type copiedMsg struct{ err error }

// New builds the model and generates the first password.
func New(opts Options) Model {
	m := Model{
		length: clampLength(opts.Length),
		sel:    opts.Selection,
		src:    opts.Source,
		copyFn: opts.Copy,
		keys:   defaultKeyMap(),
		bar: progress.New(
			progress.WithSolidFill(string(colorRed)),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
	}
	if m.sel.IsEmpty() {
		m.sel = password.AllSelected()
	}
	if m.copyFn == nil {
		m.copyFn = clipboard.WriteAll
	}
	m, _ = m.generate()
	return m
}

func clampLength(n int) int {
	switch {
	case n == 0:
		return DefaultSliderLength
	case n < MinSliderLength:
		return MinSliderLength
	case n > MaxSliderLength:
		return MaxSliderLength
	}
	return n
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m.notify("Copy failed: "+msg.err.Error(), true, copyNoticeDuration)
		}
		return m.notify("Password copied!", false, copyNoticeDuration)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Shorter):
		return m.setLength(m.length - 1)
	case key.Matches(msg, m.keys.Longer):
		return m.setLength(m.length + 1)
	case key.Matches(msg, m.keys.Upper):
		return m.toggle(password.Uppercase)
	case key.Matches(msg, m.keys.Lower):
		return m.toggle(password.Lowercase)
	case key.Matches(msg, m.keys.Digits):
		return m.toggle(password.Digit)
	case key.Matches(msg, m.keys.Symbols):
		return m.toggle(password.Symbol)
	case key.Matches(msg, m.keys.Generate):
		return m.generate()
	case key.Matches(msg, m.keys.Copy):
		return m.copyPassword()
	}
	return m, nil
}

// setLength moves the slider and regenerates once a password is showing.
func (m Model) setLength(n int) (Model, tea.Cmd) {
	n = max(MinSliderLength, min(MaxSliderLength, n))
	if n == m.length {
		return m, nil
	}
	m.length = n
	if m.password == "" {
		return m, nil
	}
	return m.generate()
}

// toggle flips one class. Clearing the last class is refused.
func (m Model) toggle(c password.Class) (Model, tea.Cmd) {
	next := m.sel.Toggle(c)
	if next.IsEmpty() {
		return m.notify("Select at least one character class", true, generateNoticeDuration)
	}
	m.sel = next
	if m.password == "" {
		return m, nil
	}
	return m.generate()
}

func (m Model) generate() (Model, tea.Cmd) {
	pw, err := password.Generate(m.length, m.sel, m.src)
	if err != nil {
		return m.notify("Error: "+err.Error(), true, generateNoticeDuration)
	}
	m.password = pw
	m.tier = password.Score(pw)
	m.bar.FullColor = string(tierColor(m.tier.Class()))
	return m, nil
}

func (m Model) copyPassword() (Model, tea.Cmd) {
	if m.password == "" {
		return m.notify("No password to copy", true, copyNoticeDuration)
	}
	pw, copyFn := m.password, m.copyFn
	return m, func() tea.Msg {
		return copiedMsg{err: copyFn(pw)}
	}
}

// notify shows a message that clears itself after d. Newer notices
// supersede older ones, so only the latest expiry clears the line.
func (m Model) notify(text string, isErr bool, d time.Duration) (Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = text
	m.noticeErr = isErr
	seq := m.noticeSeq
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// Password returns the password currently displayed.
func (m Model) Password() string { return m.password }

// Length returns the slider value.
func (m Model) Length() int { return m.length }

// Selection returns the enabled classes.
func (m Model) Selection() password.Selection { return m.sel }

// Notice returns the active notification, if any.
func (m Model) Notice() string { return m.notice }

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Password generator"))
	b.WriteString("\n\n")

	if m.password == "" {
		b.WriteString(placeholderStyle.Render("Your password will appear here"))
	} else {
		b.WriteString(passwordStyle.Render(m.password))
	}
	b.WriteString("\n\n")

	fill := float64(m.tier+1) / 3
	if m.password == "" {
		fill = 0
	}
	b.WriteString(m.bar.ViewAs(fill))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render("Strength: "))
	b.WriteString(labelStyle.Foreground(tierColor(m.tier.Class())).Render(m.tier.Label()))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Length "))
	b.WriteString(renderSlider(m.length))
	b.WriteString(fmt.Sprintf(" %d\n\n", m.length))

	toggles := []struct {
		binding key.Binding
		class   password.Class
		label   string
	}{
		{m.keys.Upper, password.Uppercase, "Uppercase (A-Z)"},
		{m.keys.Lower, password.Lowercase, "Lowercase (a-z)"},
		{m.keys.Digits, password.Digit, "Numbers (0-9)"},
		{m.keys.Symbols, password.Symbol, "Symbols (!@#$)"},
	}
	for _, t := range toggles {
		box, style := "[ ]", uncheckedStyle
		if m.sel.Has(t.class) {
			box, style = "[x]", checkedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s  %s", t.binding.Help().Key, box, t.label)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.notice != "" {
		style := noticeStyle
		if m.noticeErr {
			style = noticeErrStyle
		}
		b.WriteString(style.Render(m.notice))
	}
	b.WriteString("\n")

	help := make([]string, 0, len(m.keys.bindings()))
	for _, k := range m.keys.bindings() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	b.WriteString("\n")

	return b.String()
}

const sliderWidth = 30

func renderSlider(n int) string {
	pos := (n - MinSliderLength) * (sliderWidth - 1) / (MaxSliderLength - MinSliderLength)
	return "[" + strings.Repeat("━", pos) + "●" + strings.Repeat("─", sliderWidth-1-pos) + "]"
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts)).Run()
	return err
}
