package service

// ─────────────────────────────────────────────────────────────
// ShortcutRegistrar — OS global-shortcut capability boundary
// ─────────────────────────────────────────────────────────────

// ShortcutRegistrar registers global keyboard accelerators with the OS.
// Actual registration is platform glue outside the core; the trigger
// service only needs this contract. Register reports whether the
// accelerator could be claimed.
type ShortcutRegistrar interface {
	Register(accelerator string, fire func()) bool
	UnregisterAll()
}

// NoopRegistrar is the default registrar on platforms without global
// shortcut support. Every registration silently fails.
type NoopRegistrar struct{}

func (NoopRegistrar) Register(string, func()) bool { return false }
func (NoopRegistrar) UnregisterAll()               {}

// MockRegistrar records registrations and lets tests fire them.
type MockRegistrar struct {
	Bindings map[string]func()
}

func NewMockRegistrar() *MockRegistrar {
	return &MockRegistrar{Bindings: map[string]func(){}}
}

func (m *MockRegistrar) Register(accelerator string, fire func()) bool {
	if _, taken := m.Bindings[accelerator]; taken {
		return false
	}
	m.Bindings[accelerator] = fire
	return true
}

func (m *MockRegistrar) UnregisterAll() {
	m.Bindings = map[string]func(){}
}

// Fire triggers a registered accelerator, if present.
func (m *MockRegistrar) Fire(accelerator string) {
	if fn, ok := m.Bindings[accelerator]; ok {
		fn()
	}
}
