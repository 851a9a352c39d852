package decoders

import "github.com/reusee/linelex/tokens"

// ScanLine splits one terminator-free line into tokens, left to right.
// Each stop character becomes its own single-character token; a maximal run
// of non-stop characters becomes one Word token. Every character of text is
// covered by exactly one token.
func ScanLine(text string, line int) []tokens.Token {
	runes := []rune(text)
	var ret []tokens.Token

	for i := 0; i < len(runes); {
		column := i + 1

		if kind, ok := tokens.Classify(runes[i]); ok {
			ret = append(ret, tokens.Token{
				Kind: kind,
				Text: string(runes[i]),
				Range: tokens.Range{
					Line:        line,
					StartColumn: column,
					EndColumn:   column + 1,
				},
			})
			i++
			continue
		}

		// the first character is known not to be a stop character, so the
		// run is never empty
		start := i
		for i < len(runes) && !tokens.IsStopChar(runes[i]) {
			i++
		}
		ret = append(ret, tokens.Token{
			Kind: tokens.Word,
			Text: string(runes[start:i]),
			Range: tokens.Range{
				Line:        line,
				StartColumn: column,
				EndColumn:   i + 1,
			},
		})
	}

	return ret
}
