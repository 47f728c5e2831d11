// Package password implements password generation and strength scoring.
package password

import (
	"fmt"
	"strings"
)

// Class is a character class a password can draw from.
type Class uint8

const (
	Uppercase Class = iota
	Lowercase
	Digit
	Symbol
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// classOrder is the order alphabets are concatenated in.
var classOrder = [...]Class{Uppercase, Lowercase, Digit, Symbol}

// AllClasses returns every class in alphabet order. The slice is a copy.
func AllClasses() []Class {
	out := classOrder
	return out[:]
}

// Alphabet returns the characters belonging to the class.
func (c Class) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// ParseClass resolves a class name. Common plural and short aliases are accepted.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uppercase", "upper":
		return Uppercase, nil
	case "lowercase", "lower":
		return Lowercase, nil
	case "digit", "digits", "number", "numbers":
		return Digit, nil
	case "symbol", "symbols":
		return Symbol, nil
	}
	return 0, fmt.Errorf("unknown character class %q", name)
}

// Selection is a set of enabled classes. The zero value is empty.
type Selection uint8

// NewSelection returns a selection holding the given classes.
func NewSelection(classes ...Class) Selection {
	var s Selection
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// AllSelected returns a selection with every class enabled.
func AllSelected() Selection {
	return NewSelection(classOrder[:]...)
}

func (s Selection) Has(c Class) bool {
	return c <= Symbol && s&(1<<c) != 0
}

func (s Selection) With(c Class) Selection {
	if c > Symbol {
		return s
	}
	return s | 1<<c
}

func (s Selection) Without(c Class) Selection {
	if c > Symbol {
		return s
	}
	return s &^ (1 << c)
}

// Toggle flips a single class.
func (s Selection) Toggle(c Class) Selection {
	if s.Has(c) {
		return s.Without(c)
	}
	return s.With(c)
}

func (s Selection) IsEmpty() bool {
	return s.Len() == 0
}

// Len reports how many classes are selected.
func (s Selection) Len() int {
	n := 0
	for _, c := range classOrder {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Classes returns the selected classes in alphabet order.
func (s Selection) Classes() []Class {
	out := make([]Class, 0, len(classOrder))
	for _, c := range classOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Selection) String() string {
	names := make([]string, 0, len(classOrder))
	for _, c := range s.Classes() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}
