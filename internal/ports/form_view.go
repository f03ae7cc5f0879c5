package ports

import "github.com/Gunvolt24/myform/internal/domain"

// Маркеры состояния, которые контроллер вешает на элементы представления.
const (
	ClassError    = "error"
	ClassProgress = "progress"
	ClassSuccess  = "success"
)

// FormView - слой представления формы (аналог DOM).
// Реализации должны быть потокобезопасными: опрос бэкенда меняет состояние из отдельной горутины.
type FormView interface {
	Input(field domain.Field) InputHandle
	Trigger() TriggerHandle
	Output() OutputHandle
}

// InputHandle - текстовое поле ввода.
type InputHandle interface {
	Value() string
	SetValue(value string)
	AddClass(class string)
	RemoveClass(class string)
}

// TriggerHandle - кнопка отправки.
type TriggerHandle interface {
	OnSubmit(handler func())
	Enable()
	Disable()
	Disabled() bool
}

// OutputHandle - область вывода результата.
type OutputHandle interface {
	SetText(text string)
	Text() string
	AddClass(class string)
	RemoveClass(class string)
}
