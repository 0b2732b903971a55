package history

// observerRegistry tracks state observers by handle so subscribers can
// detach independently
type observerRegistry struct {
	nextID    int
	observers map[int]func(State)
}

func newObserverRegistry() *observerRegistry {
	return &observerRegistry{observers: make(map[int]func(State))}
}

func (r *observerRegistry) add(observer func(State)) int {
	id := r.nextID
	r.nextID++
	r.observers[id] = observer
	return id
}

func (r *observerRegistry) remove(id int) {
	delete(r.observers, id)
}

// snapshot copies the current observer set so callers can invoke the
// observers without holding the manager lock
func (r *observerRegistry) snapshot() []func(State) {
	out := make([]func(State), 0, len(r.observers))
	for _, observer := range r.observers {
		out = append(out, observer)
	}
	return out
}
