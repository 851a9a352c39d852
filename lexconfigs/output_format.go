package lexconfigs

import (
	"github.com/reusee/linelex/cmds"
	"github.com/reusee/linelex/configs"
	"github.com/reusee/linelex/logs"
	"github.com/reusee/linelex/vars"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var _ configs.Configurable = OutputFormat("")

func (o OutputFormat) ConfigExpr() string {
	return "output_format"
}

var formatFlag = cmds.Var[string]("-format")

func (Module) OutputFormat(
	loader configs.Loader,
	logger logs.Logger,
) OutputFormat {
	var format OutputFormat
	format = OutputFormat(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, format.ConfigExpr()),
		string(FormatText),
	))
	switch format {
	case FormatText, FormatJSON:
	default:
		logger.Warn("unknown output format, using text",
			"format", format,
		)
		format = FormatText
	}
	return format
}
