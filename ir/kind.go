package ir

import "fmt"

// Kind is the type tag of a decoded node.
type Kind int

const (
	IntegerKind Kind = iota
	StringKind
	ListKind
	DictionaryKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		IntegerKind:    "Integer",
		StringKind:     "String",
		ListKind:       "List",
		DictionaryKind: "Dictionary",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Integer":    IntegerKind,
		"String":     StringKind,
		"List":       ListKind,
		"Dictionary": DictionaryKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		IntegerKind,
		StringKind,
		ListKind,
		DictionaryKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ListKind, DictionaryKind:
		return false
	default:
		return true
	}
}
