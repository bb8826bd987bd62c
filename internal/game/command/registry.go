package command

import "fmt"

// Registry maps menu codes to options while preserving display order.
type Registry struct {
	ordered []Option
	byCode  map[int]int // code -> index into ordered
}

// NewRegistry creates a Registry populated with the given options.
//
// Precondition: No two options may share a code or a handler.
// Postcondition: Returns a Registry or an error on collisions or empty labels.
func NewRegistry(opts []Option) (*Registry, error) {
	r := &Registry{
		ordered: make([]Option, 0, len(opts)),
		byCode:  make(map[int]int, len(opts)),
	}
	handlers := make(map[string]int, len(opts))

	for _, opt := range opts {
		if opt.Label == "" {
			return nil, fmt.Errorf("option %d has an empty label", opt.Code)
		}
		if opt.Code < 0 {
			return nil, fmt.Errorf("option %q has negative code %d", opt.Label, opt.Code)
		}
		if _, exists := r.byCode[opt.Code]; exists {
			return nil, fmt.Errorf("duplicate option code: %d", opt.Code)
		}
		if prev, exists := handlers[opt.Handler]; exists {
			return nil, fmt.Errorf("duplicate handler %q: used by codes %d and %d", opt.Handler, prev, opt.Code)
		}
		handlers[opt.Handler] = opt.Code
		r.byCode[opt.Code] = len(r.ordered)
		r.ordered = append(r.ordered, opt)
	}

	return r, nil
}

// DefaultRegistry creates a Registry with the built-in menu.
//
// Postcondition: Returns a Registry with every MenuOptions entry registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(MenuOptions())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up an option by code.
//
// Postcondition: Returns (option, true) if found, or (Option{}, false).
func (r *Registry) Resolve(code int) (Option, bool) {
	i, ok := r.byCode[code]
	if !ok {
		return Option{}, false
	}
	return r.ordered[i], true
}

// Options returns a copy of all options in display order.
func (r *Registry) Options() []Option {
	out := make([]Option, len(r.ordered))
	copy(out, r.ordered)
	return out
}
