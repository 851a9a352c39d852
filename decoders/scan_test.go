package decoders

import (
	"strings"
	"testing"

	"github.com/reusee/linelex/tokens"
)

func TestScanLine(t *testing.T) {
	type TokenInfo struct {
		Kind tokens.Kind
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "#hello world",
			tokens: []TokenInfo{
				{tokens.Hash, "#"},
				{tokens.Word, "hello"},
				{tokens.Space, " "},
				{tokens.Word, "world"},
			},
		},
		{
			input: "[a](b)",
			tokens: []TokenInfo{
				{tokens.LeftBracket, "["},
				{tokens.Word, "a"},
				{tokens.RightBracket, "]"},
				{tokens.LeftParen, "("},
				{tokens.Word, "b"},
				{tokens.RightParen, ")"},
			},
		},
		{
			input:  "",
			tokens: nil,
		},
		{
			input: "a@b",
			tokens: []TokenInfo{
				{tokens.Word, "a"},
				{tokens.At, "@"},
				{tokens.Word, "b"},
			},
		},
		{
			input: " \t\v\f",
			tokens: []TokenInfo{
				{tokens.Space, " "},
				{tokens.Tab, "\t"},
				{tokens.VerticalTab, "\v"},
				{tokens.FormFeed, "\f"},
			},
		},
		{
			input: "nostopshere",
			tokens: []TokenInfo{
				{tokens.Word, "nostopshere"},
			},
		},
		{
			input: "<!-->",
			tokens: []TokenInfo{
				{tokens.LeftAngle, "<"},
				{tokens.Bang, "!"},
				{tokens.Dash, "-"},
				{tokens.Dash, "-"},
				{tokens.RightAngle, ">"},
			},
		},
		{
			input: "foo:bar",
			tokens: []TokenInfo{
				{tokens.Word, "foo"},
				{tokens.Colon, ":"},
				{tokens.Word, "bar"},
			},
		},
	}

	for _, test := range tests {
		got := ScanLine(test.input, 1)
		if len(got) != len(test.tokens) {
			t.Fatalf("%q: got %d tokens, expecting %d: %v", test.input, len(got), len(test.tokens), got)
		}
		for i, info := range test.tokens {
			if got[i].Kind != info.Kind {
				t.Fatalf("%q token %d: got %v, expecting %v", test.input, i, got[i].Kind, info.Kind)
			}
			if got[i].Text != info.Text {
				t.Fatalf("%q token %d: got %q, expecting %q", test.input, i, got[i].Text, info.Text)
			}
		}
	}
}

func TestScanLineProperties(t *testing.T) {
	inputs := []string{
		"",
		"#hello world",
		"[a](b)",
		"a@b",
		"plain",
		"()[]<>:#-!@ \t\v\f",
		"  leading and trailing  ",
		"mixed: [text] with (all) kinds - of #stops!",
		"unicode 世界 and symbols @",
		strings.Repeat("ab ", 100),
	}

	for _, input := range inputs {
		runes := []rune(input)
		got := ScanLine(input, 7)

		// lossless reconstruction
		var rebuilt strings.Builder
		for _, token := range got {
			rebuilt.WriteString(token.Text)
		}
		if rebuilt.String() != input {
			t.Fatalf("%q: rebuilt %q", input, rebuilt.String())
		}

		// coverage without gaps or overlaps, columns strictly increasing
		next := 1
		for _, token := range got {
			if token.Range.Line != 7 {
				t.Fatalf("%q: line %d", input, token.Range.Line)
			}
			if token.Range.StartColumn != next {
				t.Fatalf("%q: start column %d, expecting %d", input, token.Range.StartColumn, next)
			}
			width := token.Range.EndColumn - token.Range.StartColumn
			if width != len([]rune(token.Text)) {
				t.Fatalf("%q: token %v width %d", input, token, width)
			}
			next = token.Range.EndColumn
		}
		if next != len(runes)+1 {
			t.Fatalf("%q: covered up to column %d, expecting %d", input, next, len(runes)+1)
		}

		// well-known tokens span exactly one character, no two adjacent words
		for i, token := range got {
			if token.Kind.IsWellKnown() && len([]rune(token.Text)) != 1 {
				t.Fatalf("%q: well-known token %v wider than one char", input, token)
			}
			if token.Kind == tokens.Word {
				if token.Text == "" {
					t.Fatalf("%q: empty word", input)
				}
				if i > 0 && got[i-1].Kind == tokens.Word {
					t.Fatalf("%q: adjacent words at %d", input, i)
				}
			}
		}
	}
}

func TestScanLineOnlyStops(t *testing.T) {
	got := ScanLine("###", 1)
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	for _, token := range got {
		if token.Kind != tokens.Hash {
			t.Fatalf("got %v", token)
		}
	}
}

func TestScanLineSingleWord(t *testing.T) {
	got := ScanLine("justoneword", 3)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0].Kind != tokens.Word || got[0].Text != "justoneword" {
		t.Fatalf("got %v", got[0])
	}
	if got[0].Range.StartColumn != 1 || got[0].Range.EndColumn != 12 {
		t.Fatalf("got %v", got[0].Range)
	}
}
