package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/linelex/debugs"
	"github.com/reusee/linelex/decoders"
	"github.com/reusee/linelex/lexconfigs"
)

type Module struct {
	dscope.Module
	Decoders decoders.Module
	Configs  lexconfigs.Module
	Debugs   debugs.Module
}
