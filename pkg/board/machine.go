package board

// Notifier receives the blocking full-calendar signal.
type Notifier interface {
	CalendarFull()
}

// NotifierFunc adapts a func to Notifier.
type NotifierFunc func()

func (f NotifierFunc) CalendarFull() { f() }

// Observer sees every event and its outcome after it is applied.
type Observer func(ev Event, out Outcome)

// Machine holds the live state and applies events to it in order. It is not
// safe for concurrent use.
type Machine struct {
	state     State
	notifier  Notifier
	observers []Observer
}

// Option configures a Machine.
type Option func(*Machine)

// WithNotifier sets the full-calendar notifier.
func WithNotifier(n Notifier) Option {
	return func(m *Machine) { m.notifier = n }
}

// WithObserver appends an observer.
func WithObserver(o Observer) Option {
	return func(m *Machine) { m.observers = append(m.observers, o) }
}

// NewMachine starts a machine from s.
func NewMachine(s State, opts ...Option) *Machine {
	m := &Machine{state: s}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dispatch reduces ev against the current state.
func (m *Machine) Dispatch(ev Event) Outcome {
	next, out := Reduce(m.state, ev)
	m.state = next
	if out.Full && m.notifier != nil {
		m.notifier.CalendarFull()
	}
	for _, o := range m.observers {
		o(ev, out)
	}
	return out
}

// State returns a copy of the current state.
func (m *Machine) State() State { return m.state.Clone() }

// Gesture returns the current gesture.
func (m *Machine) Gesture() Gesture { return m.state.Gesture }

// Snapshot renders the current state.
func (m *Machine) Snapshot() Snapshot { return m.state.Snapshot() }
