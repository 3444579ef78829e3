package fsa

// Builder assembles an Automaton. The first state that is added becomes the
// start state unless Start is called.
type Builder struct {
	a *Automaton
}

// NewBuilder creates a builder for an automaton with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		a: &Automaton{
			name:  name,
			start: -1,
		},
	}
}

// State adds a non-final state.
func (b *Builder) State(name string) StateID {
	return b.add(state{name: name})
}

// Accept adds a final state that keeps the character that routed into it.
func (b *Builder) Accept(name string) StateID {
	return b.add(state{name: name, final: true})
}

// AcceptBefore adds a final state that gives the character that routed
// into it back to the stream. Transforms of transitions into this state are
// not applied.
func (b *Builder) AcceptBefore(name string) StateID {
	return b.add(state{name: name, final: true, rollback: true})
}

// Start designates the start state.
func (b *Builder) Start(id StateID) *Builder {
	b.a.start = id
	return b
}

// On adds a transition from one state to another, guarded by the given
// predicate. Without a transform, the character is appended to the output.
func (b *Builder) On(from StateID, accepts Predicate, to StateID, transform ...Transform) *Builder {
	t := Append
	if len(transform) > 0 && transform[0] != nil {
		t = transform[0]
	}
	b.a.states[from].transitions = append(b.a.states[from].transitions, transition{
		accepts:   accepts,
		next:      to,
		transform: t,
	})
	return b
}

// Build returns the assembled automaton. The builder must not be used
// afterwards.
func (b *Builder) Build() *Automaton {
	a := b.a
	b.a = nil
	return a
}

func (b *Builder) add(s state) StateID {
	b.a.states = append(b.a.states, s)
	id := StateID(len(b.a.states) - 1)
	if b.a.start < 0 {
		b.a.start = id
	}
	return id
}
