package debugs

import (
	"github.com/reusee/linelex/logs"
	"github.com/reusee/linelex/tokens"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// TokenFilter reports whether a token should be kept.
type TokenFilter func(token tokens.Token) (bool, error)

// NewTokenFilter compiles a starlark expression into a TokenFilter. The
// expression sees kind, text, line, column, end_column, and the full token
// as globals; its truth value decides.
type NewTokenFilter func(src string) (TokenFilter, error)

func (Module) NewTokenFilter(
	logger logs.Logger,
) NewTokenFilter {
	return func(src string) (TokenFilter, error) {
		expr, err := syntax.ParseExpr("filter", src, 0)
		if err != nil {
			return nil, err
		}
		logger.Debug("token filter",
			"expr", src,
		)
		return func(token tokens.Token) (bool, error) {
			thread := &starlark.Thread{
				Name: "filter",
			}
			env := starlark.StringDict{
				"kind":       starlark.String(token.Kind.String()),
				"text":       starlark.String(token.Text),
				"line":       starlark.MakeInt(token.Range.Line),
				"column":     starlark.MakeInt(token.Range.StartColumn),
				"end_column": starlark.MakeInt(token.Range.EndColumn),
				"token":      toStarlarkValue(token),
			}
			value, err := starlark.EvalExprOptions(
				&syntax.FileOptions{},
				thread,
				expr,
				env,
			)
			if err != nil {
				return false, err
			}
			return bool(value.Truth()), nil
		}, nil
	}
}
