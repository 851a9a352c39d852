package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reusee/linelex/debugs"
	"github.com/reusee/linelex/decoders"
	"github.com/reusee/linelex/lines"
	"github.com/reusee/linelex/tokens"
)

func formatToken(token tokens.Token) string {
	if token.Kind == tokens.Word {
		return fmt.Sprintf("%s\t%s\t%q", token.Range, token.Kind, token.Text)
	}
	return fmt.Sprintf("%s\t%s", token.Range, token.Kind)
}

type tokenJSON struct {
	Kind        string `json:"kind"`
	Text        string `json:"text,omitempty"`
	Line        int    `json:"line"`
	StartColumn int    `json:"start_column"`
	EndColumn   int    `json:"end_column"`
}

// writeJSON emits one JSON object per token, pulling from the pipeline.
func writeJSON(
	w io.Writer,
	splitter *lines.Splitter,
	filter debugs.TokenFilter,
) error {
	encoder := json.NewEncoder(w)
	for token, err := range decoders.Tokens(splitter.Items()) {
		if err != nil {
			return err
		}
		keep, err := filter(token)
		if err != nil {
			return err
		}
		if !keep {
			continue
		}
		if err := encoder.Encode(tokenJSON{
			Kind:        token.Kind.String(),
			Text:        token.Text,
			Line:        token.Range.Line,
			StartColumn: token.Range.StartColumn,
			EndColumn:   token.Range.EndColumn,
		}); err != nil {
			return wrap(err)
		}
	}
	return nil
}
