package decoders

import (
	"iter"

	"github.com/reusee/linelex/lines"
	"github.com/reusee/linelex/tokens"
)

// Tokens is the pull form of the pipeline: it lazily maps a line-level
// stream to its token stream. An upstream error is yielded last, after all
// tokens derived from fully processed items.
func Tokens(items iter.Seq2[lines.Item, error]) iter.Seq2[tokens.Token, error] {
	return func(yield func(tokens.Token, error) bool) {
		for item, err := range items {
			if err != nil {
				yield(tokens.Token{}, err)
				return
			}
			switch item.Kind {
			case lines.ItemTerminator:
				if !yield(item.Terminator, nil) {
					return
				}
			case lines.ItemLine:
				for _, token := range ScanLine(item.Line.Text, item.Line.Number) {
					if !yield(token, nil) {
						return
					}
				}
			}
		}
	}
}
