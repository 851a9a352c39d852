package lines

import (
	"bufio"
	"io"
	"iter"

	"github.com/reusee/linelex/tokens"
)

// Splitter reads raw input and produces the line-level stream: one Line item
// per physical line, interleaved with terminator items in document order.
type Splitter struct {
	source *bufio.Reader
}

func NewSplitter(source io.Reader) *Splitter {
	return &Splitter{
		source: bufio.NewReader(source),
	}
}

// Items yields line and terminator items in document order, single pass.
// A \r\n pair yields two terminator items, carriage return then newline.
// The Line item for a physical line is yielded before its terminators.
// Read failures other than io.EOF end the sequence with a non-nil error.
func (s *Splitter) Items() iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		var buf []rune
		line := 1
		column := 1
		// lineDone is set once the current physical line's Line item has
		// been yielded, between a terminator and the start of the next line.
		lineDone := false

		startNextLine := func() {
			buf = buf[:0]
			line++
			column = 1
			lineDone = false
		}

		for {
			r, _, err := s.source.ReadRune()
			if err == io.EOF {
				// no Line item for a trailing empty line after the last
				// terminator
				if !lineDone && len(buf) > 0 {
					yield(LineItem(string(buf), line), nil)
				}
				return
			}
			if err != nil {
				yield(Item{}, wrap(err))
				return
			}

			switch r {

			case '\r':
				if lineDone {
					// lone \r terminated the previous line
					startNextLine()
				}
				if !yield(LineItem(string(buf), line), nil) {
					return
				}
				lineDone = true
				if !yield(TerminatorItem(tokens.CarriageReturn, line, column), nil) {
					return
				}
				column++

			case '\n':
				if !lineDone {
					if !yield(LineItem(string(buf), line), nil) {
						return
					}
					lineDone = true
				}
				if !yield(TerminatorItem(tokens.NewLine, line, column), nil) {
					return
				}
				startNextLine()

			default:
				if lineDone {
					startNextLine()
				}
				buf = append(buf, r)
				column++
			}
		}
	}
}
