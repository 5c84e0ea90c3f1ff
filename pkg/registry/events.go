package registry

// Event represents a simple progress notification during an install.
type Event struct {
	Phase string // resolving|downloading|dependencies|script|recording|done
	ID    string // package name
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}
