// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	wdf "github.com/cheminfo/wdf-parser"
)

type result struct {
	path   string
	report *report
	err    error
}

// decodeAll decodes paths with at most cfg.jobs files in flight. Results
// keep the order of paths.
func decodeAll(ctx context.Context, logger *slog.Logger, paths []string, cfg config) []result {
	results := make([]result, len(paths))
	in := newInputs()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for i, path := range paths {
		g.Go(func() error {
			results[i].path = path
			if err := ctx.Err(); err != nil {
				results[i].err = err
				return nil
			}

			start := time.Now()
			f, err := decodeFile(in, path)
			if err != nil {
				results[i].err = err
				return nil
			}
			logger.Debug("decoded", "path", path, "blocks", len(f.Blocks), "took", time.Since(start))

			results[i].report, results[i].err = newReport(path, f, cfg.spectra)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func decodeFile(in *inputs, path string) (*wdf.File, error) {
	r, closeFn, err := in.open(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return wdf.Decoder{}.Decode(r)
}
