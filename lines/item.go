package lines

import "github.com/reusee/linelex/tokens"

// Line is one physical line with its terminator characters removed.
// Number is 1-based.
type Line struct {
	Text   string
	Number int
}

type ItemKind uint8

const (
	ItemInvalid ItemKind = iota
	ItemLine
	ItemTerminator
)

// Item is one element of the line-level stream: either a Line or a
// terminator token, depending on Kind.
type Item struct {
	Kind       ItemKind
	Line       Line
	Terminator tokens.Token
}

func LineItem(text string, number int) Item {
	return Item{
		Kind: ItemLine,
		Line: Line{
			Text:   text,
			Number: number,
		},
	}
}

func TerminatorItem(kind tokens.Kind, line int, column int) Item {
	symbol, _ := tokens.Symbol(kind)
	return Item{
		Kind: ItemTerminator,
		Terminator: tokens.Token{
			Kind: kind,
			Text: string(symbol),
			Range: tokens.Range{
				Line:        line,
				StartColumn: column,
				EndColumn:   column + 1,
			},
		},
	}
}
