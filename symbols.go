package calc

// Entry is the binding of a name: either a number or a built-in function.
type Entry struct {
	// Value is the number bound to the name. It is meaningful only if Func
	// is NoFunc.
	Value float64
	// Func is the built-in function bound to the name, or NoFunc.
	Func Func
}

// Number creates an Entry for a number.
func Number(v float64) Entry {
	return Entry{Value: v}
}

// Function creates an Entry for a built-in function.
func Function(f Func) Entry {
	return Entry{Func: f}
}

// IsFunc returns whether the entry is a function.
func (e Entry) IsFunc() bool {
	return e.Func != NoFunc
}

// Symbols is a symbol table shared by constants, functions, and variables.
// Names are case-sensitive. It is not safe to use a Symbols concurrently.
type Symbols struct {
	names map[string]Entry
}

// NewSymbols creates a symbol table holding the constants pi and e and the
// functions sin, cos, tan, abs, sqrt, and log.
func NewSymbols() *Symbols {
	return &Symbols{names: builtins()}
}

// Lookup returns the binding of name, if there is one.
func (s *Symbols) Lookup(name string) (Entry, bool) {
	e, ok := s.names[name]
	return e, ok
}

// Bind binds name to a number, replacing any previous binding including
// built-in ones. Returns s for chaining.
func (s *Symbols) Bind(name string, v float64) *Symbols {
	if s.names == nil {
		s.names = make(map[string]Entry)
	}
	s.names[name] = Number(v)
	return s
}

// Names returns the bound names in sorted order.
func (s *Symbols) Names() []string {
	names := make([]string, 0, len(s.names))
	for k := range s.names {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// Clone creates an independent copy of the table.
func (s *Symbols) Clone() *Symbols {
	n := Symbols{names: make(map[string]Entry, len(s.names))}
	for k, v := range s.names {
		n.names[k] = v
	}
	return &n
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
