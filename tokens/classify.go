package tokens

// symbols is the single source of truth for the well-known set. The stop
// character set used for word accumulation is derived from the same entries,
// so the two cannot diverge.
var symbols = [...]struct {
	Kind   Kind
	Symbol rune
}{
	{Space, ' '},
	{Tab, '\t'},
	{VerticalTab, '\v'},
	{FormFeed, '\f'},
	{LeftBracket, '['},
	{RightBracket, ']'},
	{LeftAngle, '<'},
	{RightAngle, '>'},
	{LeftParen, '('},
	{RightParen, ')'},
	{Colon, ':'},
	{Hash, '#'},
	{Dash, '-'},
	{Bang, '!'},
	{At, '@'},
}

var kindBySymbol [128]Kind

func init() {
	for _, entry := range symbols {
		if kindBySymbol[entry.Symbol] != Invalid {
			panic("duplicated symbol: " + string(entry.Symbol))
		}
		kindBySymbol[entry.Symbol] = entry.Kind
	}
}

// Classify returns the well-known kind whose symbol is r, if any.
func Classify(r rune) (Kind, bool) {
	if r >= 0 && r < 128 {
		if kind := kindBySymbol[r]; kind != Invalid {
			return kind, true
		}
	}
	return Invalid, false
}

// IsStopChar reports whether r ends a word run.
func IsStopChar(r rune) bool {
	_, ok := Classify(r)
	return ok
}

// Symbol returns the one-character text of a well-known or terminator kind.
func Symbol(kind Kind) (rune, bool) {
	switch kind {
	case CarriageReturn:
		return '\r', true
	case NewLine:
		return '\n', true
	}
	for _, entry := range symbols {
		if entry.Kind == kind {
			return entry.Symbol, true
		}
	}
	return 0, false
}
