package lines

import (
	"bytes"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/linelex/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Open reads a file, rejects non-text content, and returns a Splitter over
// its bytes.
type Open func(path string) (*Splitter, error)

func (Module) Open(
	logger logs.Logger,
) Open {
	return func(path string) (*Splitter, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, wrap(err)
		}
		if !IsTextContent(content) {
			return nil, wrap(fmt.Errorf("%w: %s", ErrBinaryInput, path))
		}
		logger.Debug("open input",
			"path", path,
			"size", len(content),
		)
		return NewSplitter(bytes.NewReader(content)), nil
	}
}
