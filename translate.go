package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/programLyrique/analysr/ast"
	"github.com/programLyrique/analysr/builder"
	"github.com/programLyrique/analysr/reader"
	"github.com/programLyrique/analysr/simplify"
)

type unit struct {
	File string
	Expr ast.Expr
	Err  error
}

func isRSource(name string) bool {
	return strings.HasSuffix(name, ".R") || strings.HasSuffix(name, ".r")
}

// expandInputs replaces every directory argument by the R sources it holds.
func expandInputs(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && isRSource(e.Name()) {
				found = append(found, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	return files, nil
}

func translate(file string, s settings) (ast.Expr, error) {
	tree, err := reader.ReadFile(file, reader.Options{Rscript: s.Rscript})
	if err != nil {
		return nil, err
	}

	expr, err := builder.Build(tree)
	if err != nil {
		return nil, err
	}
	if s.Simplify {
		expr = simplify.Simplify(expr)
	}
	return expr, nil
}

// translateAll translates every file on its own tree, at most s.Jobs at a
// time. Results keep the order of files.
func translateAll(files []string, s settings) []unit {
	jobs := s.Jobs
	if jobs < 1 {
		jobs = 1
	}
	units := make([]unit, len(files))
	sem := make(chan struct{}, jobs)

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			plog.Debugf("translating %s", file)
			expr, err := translate(file, s)
			units[i] = unit{File: file, Expr: expr, Err: err}
		}(i, file)
	}
	wg.Wait()

	return units
}
