package typeconv

import "slices"

// Enum describes an enumeration type: an ordered set of named constants.
// Go has no runtime enum reflection, so callers declare the members
// explicitly and reference the Enum from a [TypeInfo] of kind [KindEnum].
type Enum struct {
	Name    string
	Members []EnumMember
}

// EnumMember is one named constant of an [Enum]. Conversion to an enum type
// yields the matching member.
type EnumMember struct {
	Name  string
	Value any
}

// NewEnum builds an Enum from name/value pairs in declaration order.
func NewEnum(name string, members ...EnumMember) *Enum {
	return &Enum{Name: name, Members: members}
}

// IntBacked reports whether every member value is an integer, which enables
// conversion from numeric input.
func (e *Enum) IntBacked() bool {
	if len(e.Members) == 0 {
		return false
	}
	for _, m := range e.Members {
		if !isInteger(m.Value) {
			return false
		}
	}
	return true
}

// Member returns the member with exactly the given name.
func (e *Enum) Member(name string) (EnumMember, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m, true
		}
	}
	return EnumMember{}, false
}

func (e *Enum) has(member EnumMember) bool {
	for _, m := range e.Members {
		if m.Name == member.Name {
			return true
		}
	}
	return false
}

// memberNames returns member names sorted alphabetically, the order error
// messages list them in.
func (e *Enum) memberNames() []string {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.Name
	}
	slices.Sort(names)
	return names
}
