package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/linelex/cmds"
	"github.com/reusee/linelex/debugs"
	"github.com/reusee/linelex/decoders"
	"github.com/reusee/linelex/lexconfigs"
	"github.com/reusee/linelex/lines"
	"github.com/reusee/linelex/logs"
	"github.com/reusee/linelex/modes"
	"github.com/reusee/linelex/syncs"
	"github.com/reusee/linelex/tokens"
	"github.com/reusee/linelex/vars"
)

var filterSrc = cmds.Var[string]("-filter")

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		open lines.Open,
		newDecoder decoders.NewDecoder,
		newFilter debugs.NewTokenFilter,
		format lexconfigs.OutputFormat,
		jobs lexconfigs.Jobs,
	) {
		ctx := context.Background()

		filter := debugs.TokenFilter(func(tokens.Token) (bool, error) {
			return true, nil
		})
		if src := vars.DerefOrZero(filterSrc); src != "" {
			var err error
			filter, err = newFilter(src)
			ce(err)
		}

		// stdin when no files given
		if len(files) == 0 {
			splitter := lines.NewSplitter(os.Stdin)
			ce(writeTokens(os.Stdout, splitter, newDecoder, filter, format))
			return
		}

		// each file gets its own decoder, fan-out bounded by jobs; output
		// stays in input order
		semaphore := syncs.NewSemaphore(int(jobs))
		outputs := make([]bytes.Buffer, len(files))
		errs := make([]error, len(files))
		var wg sync.WaitGroup
		for i, path := range files {
			wg.Add(1)
			go func() {
				defer wg.Done()
				semaphore.Acquire()
				defer semaphore.Release()
				fileCtx, _ := newSpan(ctx, "")
				logger.InfoContext(fileCtx, "lex",
					"path", path,
				)
				splitter, err := open(path)
				if err != nil {
					errs[i] = logs.WrapSpan(fileCtx, err)
					return
				}
				if err := writeTokens(&outputs[i], splitter, newDecoder, filter, format); err != nil {
					errs[i] = logs.WrapSpan(fileCtx, err)
				}
			}()
		}
		wg.Wait()

		for i, path := range files {
			if errs[i] != nil {
				logger.Error("lex failed",
					"path", path,
					"error", errs[i],
				)
				os.Exit(-1)
			}
			_, err := outputs[i].WriteTo(os.Stdout)
			ce(err)
		}

	})

}

func writeTokens(
	w io.Writer,
	splitter *lines.Splitter,
	newDecoder decoders.NewDecoder,
	filter debugs.TokenFilter,
	format lexconfigs.OutputFormat,
) error {

	if format == lexconfigs.FormatJSON {
		return writeJSON(w, splitter, filter)
	}

	decoder := newDecoder()
	defer decoder.Dispose()
	var emitErr error
	decoder.Subscribe(func(token tokens.Token) {
		if emitErr != nil {
			return
		}
		keep, err := filter(token)
		if err != nil {
			emitErr = err
			decoder.Dispose()
			return
		}
		if !keep {
			return
		}
		if _, err := io.WriteString(w, formatToken(token)+"\n"); err != nil {
			emitErr = wrap(err)
			decoder.Dispose()
		}
	})
	if err := decoder.Run(splitter.Items()); err != nil {
		return err
	}
	return emitErr
}
