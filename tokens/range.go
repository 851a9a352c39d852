package tokens

import "fmt"

// Range locates a token within its line. Columns are 1-based character
// offsets; EndColumn is one past the last character, so a token's width is
// EndColumn - StartColumn.
type Range struct {
	Line        int
	StartColumn int
	EndColumn   int
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d", r.Line, r.StartColumn, r.EndColumn)
}
