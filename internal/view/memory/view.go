// Пакет memory - потокобезопасная реализация ports.FormView в памяти.
// Используется в CLI без интерфейса, в тестах и как хранилище состояния для TUI.
package memory

import (
	"sort"
	"sync"

	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/internal/ports"
)

type element struct {
	value   string
	classes map[string]struct{}
}

func newElement() *element {
	return &element{classes: make(map[string]struct{})}
}

func (e *element) classList() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// View - форма из трёх полей, кнопки и области вывода.
type View struct {
	mu       sync.Mutex
	inputs   map[domain.Field]*element
	output   *element
	disabled bool
	handlers []func()
	subs     []func()
}

var _ ports.FormView = (*View)(nil)

// New - пустая форма с включённой кнопкой.
func New() *View {
	v := &View{
		inputs: make(map[domain.Field]*element, len(domain.Fields)),
		output: newElement(),
	}
	for _, f := range domain.Fields {
		v.inputs[f] = newElement()
	}
	return v
}

// Subscribe - fn вызывается после каждого изменения состояния (вне блокировки).
func (v *View) Subscribe(fn func()) {
	v.mu.Lock()
	v.subs = append(v.subs, fn)
	v.mu.Unlock()
}

// Click - нажатие на кнопку отправки. Выключенная кнопка событие не порождает.
func (v *View) Click() bool {
	v.mu.Lock()
	if v.disabled {
		v.mu.Unlock()
		return false
	}
	handlers := append([]func(){}, v.handlers...)
	v.mu.Unlock()

	for _, h := range handlers {
		h()
	}
	return true
}

// Snapshot - копия состояния формы на текущий момент.
type Snapshot struct {
	Values        map[domain.Field]string
	InputClasses  map[domain.Field][]string
	Text          string
	OutputClasses []string
	Disabled      bool
}

// InputHas - есть ли у поля класс.
func (s Snapshot) InputHas(f domain.Field, class string) bool {
	return contains(s.InputClasses[f], class)
}

// OutputHas - есть ли у области вывода класс.
func (s Snapshot) OutputHas(class string) bool {
	return contains(s.OutputClasses, class)
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := Snapshot{
		Values:        make(map[domain.Field]string, len(v.inputs)),
		InputClasses:  make(map[domain.Field][]string, len(v.inputs)),
		Text:          v.output.value,
		OutputClasses: v.output.classList(),
		Disabled:      v.disabled,
	}
	for f, e := range v.inputs {
		s.Values[f] = e.value
		s.InputClasses[f] = e.classList()
	}
	return s
}

func (v *View) Input(field domain.Field) ports.InputHandle {
	return &elementHandle{v: v, el: v.input(field)}
}

func (v *View) Trigger() ports.TriggerHandle {
	return triggerHandle{v: v}
}

func (v *View) Output() ports.OutputHandle {
	return &elementHandle{v: v, el: v.output}
}

func (v *View) input(field domain.Field) *element {
	v.mu.Lock()
	defer v.mu.Unlock()
	el, ok := v.inputs[field]
	if !ok {
		el = newElement()
		v.inputs[field] = el
	}
	return el
}

// update - изменение под блокировкой и оповещение подписчиков.
func (v *View) update(fn func()) {
	v.mu.Lock()
	fn()
	subs := append([]func(){}, v.subs...)
	v.mu.Unlock()

	for _, s := range subs {
		s()
	}
}

func (v *View) read(fn func()) {
	v.mu.Lock()
	fn()
	v.mu.Unlock()
}

// elementHandle - поле ввода или область вывода.
type elementHandle struct {
	v  *View
	el *element
}

func (h *elementHandle) Value() string {
	var out string
	h.v.read(func() { out = h.el.value })
	return out
}

func (h *elementHandle) Text() string { return h.Value() }

func (h *elementHandle) SetValue(value string) {
	h.v.update(func() { h.el.value = value })
}

func (h *elementHandle) SetText(text string) { h.SetValue(text) }

func (h *elementHandle) AddClass(class string) {
	h.v.update(func() { h.el.classes[class] = struct{}{} })
}

func (h *elementHandle) RemoveClass(class string) {
	h.v.update(func() { delete(h.el.classes, class) })
}

type triggerHandle struct {
	v *View
}

func (t triggerHandle) OnSubmit(handler func()) {
	t.v.mu.Lock()
	t.v.handlers = append(t.v.handlers, handler)
	t.v.mu.Unlock()
}

func (t triggerHandle) Enable() {
	t.v.update(func() { t.v.disabled = false })
}

func (t triggerHandle) Disable() {
	t.v.update(func() { t.v.disabled = true })
}

func (t triggerHandle) Disabled() bool {
	var out bool
	t.v.read(func() { out = t.v.disabled })
	return out
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
