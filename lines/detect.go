package lines

import (
	"errors"

	"github.com/gabriel-vasile/mimetype"
)

var ErrBinaryInput = errors.New("binary input")

// IsTextContent reports whether content is text according to the mime
// detector, walking the type hierarchy up to text/plain.
func IsTextContent(content []byte) bool {
	if len(content) == 0 {
		return true
	}
	for mtype := mimetype.Detect(content); mtype != nil; mtype = mtype.Parent() {
		if mtype.Is("text/plain") {
			return true
		}
	}
	return false
}
