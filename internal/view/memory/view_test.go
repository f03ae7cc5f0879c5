package memory_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/internal/ports"
	"github.com/Gunvolt24/myform/internal/view/memory"
	"github.com/stretchr/testify/require"
)

func TestView_InputsAndClasses(t *testing.T) {
	v := memory.New()

	v.Input(domain.FieldFio).SetValue("a b c")
	v.Input(domain.FieldFio).AddClass(ports.ClassError)
	v.Input(domain.FieldFio).AddClass(ports.ClassError)
	v.Input(domain.FieldPhone).AddClass(ports.ClassError)
	v.Input(domain.FieldPhone).RemoveClass(ports.ClassError)

	s := v.Snapshot()
	require.Equal(t, "a b c", s.Values[domain.FieldFio])
	require.Equal(t, []string{ports.ClassError}, s.InputClasses[domain.FieldFio])
	require.True(t, s.InputHas(domain.FieldFio, ports.ClassError))
	require.False(t, s.InputHas(domain.FieldPhone, ports.ClassError))
	require.Equal(t, "a b c", v.Input(domain.FieldFio).Value())
}

func TestView_Output(t *testing.T) {
	v := memory.New()
	out := v.Output()

	out.SetText("Success")
	out.AddClass(ports.ClassSuccess)
	out.AddClass(ports.ClassProgress)
	out.RemoveClass(ports.ClassProgress)

	require.Equal(t, "Success", out.Text())
	s := v.Snapshot()
	require.Equal(t, "Success", s.Text)
	require.Equal(t, []string{ports.ClassSuccess}, s.OutputClasses)
	require.True(t, s.OutputHas(ports.ClassSuccess))
}

func TestView_ClickRespectsDisabledTrigger(t *testing.T) {
	v := memory.New()
	var clicks int
	v.Trigger().OnSubmit(func() { clicks++ })

	require.True(t, v.Click())
	v.Trigger().Disable()
	require.True(t, v.Trigger().Disabled())
	require.False(t, v.Click())
	v.Trigger().Enable()
	require.True(t, v.Click())

	require.Equal(t, 2, clicks)
}

func TestView_SubscribeNotifiesOnChange(t *testing.T) {
	v := memory.New()
	var n atomic.Int32
	v.Subscribe(func() {
		// подписчик может читать состояние без дедлока
		_ = v.Snapshot()
		n.Add(1)
	})

	v.Input(domain.FieldEmail).SetValue("a@ya.ru")
	v.Output().AddClass(ports.ClassError)
	v.Trigger().Disable()
	_ = v.Input(domain.FieldEmail).Value()

	require.Equal(t, int32(3), n.Load())
}

func TestView_ConcurrentAccess(t *testing.T) {
	v := memory.New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v.Output().AddClass(ports.ClassProgress)
				v.Output().SetText("x")
				_ = v.Snapshot()
				v.Trigger().Disable()
				v.Trigger().Enable()
			}
		}()
	}
	wg.Wait()
	require.False(t, v.Snapshot().Disabled)
}
