// Пакет tui - терминальная форма на bubbletea.
// Состояние формы живёт в memory.View; модель только отображает его и пересылает ввод.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/internal/ports"
	"github.com/Gunvolt24/myform/internal/view/memory"
)

// changedMsg - состояние формы изменилось (в том числе из горутины опроса).
type changedMsg struct{}

var labels = map[domain.Field]string{
	domain.FieldFio:   "ФИО",
	domain.FieldPhone: "Телефон",
	domain.FieldEmail: "Email",
}

var placeholders = map[domain.Field]string{
	domain.FieldFio:   "Иванов Иван Иванович",
	domain.FieldPhone: "+7(999)999-99-99",
	domain.FieldEmail: "name@yandex.ru",
}

// Model - форма из трёх полей и кнопки отправки.
type Model struct {
	form    *memory.View
	inputs  []textinput.Model
	focus   int // индекс поля; len(inputs) - кнопка
	changes chan struct{}
	snap    memory.Snapshot
	width   int
}

// New - модель поверх формы. Подписка на изменения формы создаётся здесь же.
func New(form *memory.View) *Model {
	m := &Model{
		form:    form,
		inputs:  make([]textinput.Model, len(domain.Fields)),
		changes: make(chan struct{}, 1),
	}

	for i, f := range domain.Fields {
		in := textinput.New()
		in.Placeholder = placeholders[f]
		in.CharLimit = 100
		in.Width = 40
		in.PromptStyle = promptStyle
		in.TextStyle = textStyle
		in.SetValue(form.Input(f).Value())
		m.inputs[i] = in
	}
	m.inputs[0].Focus()

	form.Subscribe(func() {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})
	m.snap = form.Snapshot()
	return m
}

// listen - ждёт следующего изменения формы.
func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return changedMsg{}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listen())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case changedMsg:
		m.sync()
		return m, m.listen()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "enter":
			if m.focus == len(m.inputs) {
				m.form.Click()
				return m, nil
			}
			return m, m.setFocus(m.focus + 1)
		case "ctrl+s":
			m.form.Click()
			return m, nil
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	f := domain.Fields[m.focus]
	if v := m.inputs[m.focus].Value(); v != m.form.Input(f).Value() {
		m.form.Input(f).SetValue(v)
	}
	return m, cmd
}

// sync - перечитывает форму; значения полей могли поменяться через SetData.
func (m *Model) sync() {
	m.snap = m.form.Snapshot()
	for i, f := range domain.Fields {
		if v := m.snap.Values[f]; v != m.inputs[i].Value() {
			m.inputs[i].SetValue(v)
		}
	}
}

func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs) + 1
	m.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Отправка формы"))
	b.WriteString("\n\n")

	for i, f := range domain.Fields {
		label := labelStyle
		if m.snap.InputHas(f, ports.ClassError) {
			label = errorLabelStyle
		}
		b.WriteString(label.Render(labels[f]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderButton())
	b.WriteString("\n\n")

	if out := m.renderResult(); out != "" {
		b.WriteString(out)
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("tab/shift+tab - переход • enter - отправить • esc - выход"))

	style := containerStyle
	if m.width > 0 {
		style = style.MaxWidth(m.width)
	}
	return style.Render(b.String())
}

func (m *Model) renderButton() string {
	switch {
	case m.snap.Disabled:
		return disabledButtonStyle.Render("Отправить")
	case m.focus == len(m.inputs):
		return focusedButtonStyle.Render("Отправить")
	default:
		return buttonStyle.Render("Отправить")
	}
}

func (m *Model) renderResult() string {
	switch {
	case m.snap.OutputHas(ports.ClassSuccess):
		return successStyle.Render(m.snap.Text)
	case m.snap.OutputHas(ports.ClassError):
		return errorStyle.Render(m.snap.Text)
	case m.snap.OutputHas(ports.ClassProgress):
		return progressStyle.Render("Ожидание ответа...")
	default:
		return m.snap.Text
	}
}
