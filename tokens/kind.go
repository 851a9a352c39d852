package tokens

type Kind uint8

const (
	Invalid Kind = iota

	// variable-length run of non-stop characters
	Word

	// line terminators, produced by the line source and forwarded as-is
	CarriageReturn
	NewLine

	// well-known single-character kinds
	Space
	Tab
	VerticalTab
	FormFeed
	LeftBracket
	RightBracket
	LeftAngle
	RightAngle
	LeftParen
	RightParen
	Colon
	Hash
	Dash
	Bang
	At
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case CarriageReturn:
		return "carriage-return"
	case NewLine:
		return "newline"
	case Space:
		return "space"
	case Tab:
		return "tab"
	case VerticalTab:
		return "vertical-tab"
	case FormFeed:
		return "form-feed"
	case LeftBracket:
		return "left-bracket"
	case RightBracket:
		return "right-bracket"
	case LeftAngle:
		return "left-angle"
	case RightAngle:
		return "right-angle"
	case LeftParen:
		return "left-paren"
	case RightParen:
		return "right-paren"
	case Colon:
		return "colon"
	case Hash:
		return "hash"
	case Dash:
		return "dash"
	case Bang:
		return "bang"
	case At:
		return "at"
	}
	return "invalid"
}

// IsTerminator reports whether k is a line-terminator kind.
func (k Kind) IsTerminator() bool {
	return k == CarriageReturn || k == NewLine
}

// IsWellKnown reports whether k is one of the fixed single-character kinds.
func (k Kind) IsWellKnown() bool {
	return k >= Space && k <= At
}
