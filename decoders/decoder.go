package decoders

import (
	"iter"

	"github.com/reusee/linelex/lines"
	"github.com/reusee/linelex/logs"
	"github.com/reusee/linelex/tokens"
)

// Decoder turns the line-level stream into a token stream, pushing each
// token to the attached listeners in document order. It holds no state
// across items beyond the listener set; each item is processed to
// completion before the next.
type Decoder struct {
	logger    logs.Logger
	listeners []func(tokens.Token)
	disposed  bool
}

// Subscribe attaches a listener. Listeners are invoked synchronously, in
// attachment order, once per emitted token.
func (d *Decoder) Subscribe(fn func(tokens.Token)) {
	d.listeners = append(d.listeners, fn)
}

// Feed processes one line-level item. A terminator item is forwarded
// unchanged; a line item is scanned and its tokens emitted in column order.
func (d *Decoder) Feed(item lines.Item) {
	if d.disposed {
		return
	}
	switch item.Kind {
	case lines.ItemTerminator:
		d.emit(item.Terminator)
	case lines.ItemLine:
		for _, token := range ScanLine(item.Line.Text, item.Line.Number) {
			if d.disposed {
				return
			}
			d.emit(token)
		}
	}
}

func (d *Decoder) emit(token tokens.Token) {
	for _, fn := range d.listeners {
		fn(token)
	}
}

// Dispose detaches the decoder from upstream: subsequent items are ignored
// and no further tokens are emitted.
func (d *Decoder) Dispose() {
	d.disposed = true
	d.listeners = nil
}

// Run drives the decoder from items until the sequence completes or fails.
// An upstream error ends the run and is returned verbatim; tokens emitted
// before the failure stand.
func (d *Decoder) Run(items iter.Seq2[lines.Item, error]) error {
	for item, err := range items {
		if err != nil {
			if d.logger != nil {
				d.logger.Debug("upstream failure",
					"error", err,
				)
			}
			return err
		}
		if d.disposed {
			return nil
		}
		d.Feed(item)
	}
	return nil
}
