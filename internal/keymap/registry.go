package keymap

// Registry resolves key chords to commands. Context-specific bindings win
// over global ones; user overrides win over defaults.
type Registry struct {
	// bindings[context][key] = command
	bindings map[string]map[string]string
	// overrides[command] = key, applied on top of defaults
	overrides map[string]string
}

// NewRegistry builds a registry from the default bindings.
func NewRegistry() *Registry {
	r := &Registry{
		bindings:  make(map[string]map[string]string),
		overrides: make(map[string]string),
	}
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
	return r
}

// RegisterBinding adds or replaces a binding.
func (r *Registry) RegisterBinding(b Binding) {
	ctx := r.bindings[b.Context]
	if ctx == nil {
		ctx = make(map[string]string)
		r.bindings[b.Context] = ctx
	}
	ctx[b.Key] = b.Command
}

// SetUserOverride rebinds a command to a different key chord. The default
// chord for that command is removed in every context that had it.
func (r *Registry) SetUserOverride(command, key string) {
	for _, ctx := range r.bindings {
		var stale []string
		for k, cmd := range ctx {
			if cmd == command {
				stale = append(stale, k)
			}
		}
		for _, k := range stale {
			delete(ctx, k)
		}
		if len(stale) > 0 {
			ctx[key] = command
		}
	}
	r.overrides[command] = key
}

// ApplyOverrides installs all overrides from a config keymap block.
func (r *Registry) ApplyOverrides(overrides map[string]string) {
	for command, key := range overrides {
		r.SetUserOverride(command, key)
	}
}

// Lookup resolves a key chord in a context. Falls back to the global
// context when the specific context has no binding.
func (r *Registry) Lookup(context, key string) (string, bool) {
	if ctx, ok := r.bindings[context]; ok {
		if cmd, ok := ctx[key]; ok {
			return cmd, true
		}
	}
	if context != "global" {
		if cmd, ok := r.bindings["global"][key]; ok {
			return cmd, true
		}
	}
	return "", false
}

// KeyFor returns the chord currently bound to a command in a context, for
// footer hints. Empty string when unbound.
func (r *Registry) KeyFor(context, command string) string {
	for key, cmd := range r.bindings[context] {
		if cmd == command {
			return key
		}
	}
	return ""
}
