package decoders

import (
	"github.com/reusee/dscope"
	"github.com/reusee/linelex/lines"
	"github.com/reusee/linelex/logs"
)

type Module struct {
	dscope.Module
	Lines lines.Module
	Logs  logs.Module
}

type NewDecoder func() *Decoder

func (Module) NewDecoder(
	logger logs.Logger,
) NewDecoder {
	return func() *Decoder {
		return &Decoder{
			logger: logger,
		}
	}
}
