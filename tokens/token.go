package tokens

import "fmt"

type Token struct {
	Kind  Kind
	Text  string
	Range Range
}

func (t Token) String() string {
	switch t.Kind {
	case Word:
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Range)
	default:
		return fmt.Sprintf("%s@%s", t.Kind, t.Range)
	}
}
