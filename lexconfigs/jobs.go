package lexconfigs

import (
	"runtime"

	"github.com/reusee/linelex/cmds"
	"github.com/reusee/linelex/configs"
	"github.com/reusee/linelex/vars"
)

// Jobs bounds how many input files are lexed concurrently.
type Jobs int

var _ configs.Configurable = Jobs(0)

func (j Jobs) ConfigExpr() string {
	return "jobs"
}

var jobsFlag = cmds.Var[int]("-jobs")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	var jobs Jobs
	n := vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, jobs.ConfigExpr()),
		runtime.NumCPU(),
	)
	if n < 1 {
		n = 1
	}
	return Jobs(n)
}
