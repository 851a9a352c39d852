package main

import (
	"os"
	"path/filepath"

	"github.com/reusee/linelex/cmds"
)

var files []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// not a pattern, use verbatim
			files = append(files, pattern)
			return
		}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.IsDir() {
				continue
			}
			files = append(files, path)
		}
	}).Desc("add matching files as input"))
}
