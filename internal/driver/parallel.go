package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// CollectScenarios expands paths into a sorted, de-duplicated list of
// scenario files. Directories are walked for *.feel.toml files; plain files
// are taken as given.
func CollectScenarios(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, clean)
	}
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ScenarioSuffix) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckAll checks every scenario under paths in parallel, one resolver per
// scenario. Results keep the order of CollectScenarios. Files that cannot be
// read or decoded yield a result carrying the diagnostic; the returned error
// is reserved for cancellation and broken resolver invariants.
func CheckAll(ctx context.Context, paths []string, opts Options, sink ProgressSink) ([]*Result, error) {
	files, err := CollectScenarios(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	for _, path := range files {
		emit(sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			start := time.Now()

			emit(sink, Event{File: path, Stage: StageLoad, Status: StatusWorking})
			sc, err := LoadScenario(path)
			if err != nil {
				results[i] = failedResult(path, err, opts)
				emit(sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(start)})
				return nil
			}

			emit(sink, Event{File: path, Stage: StageResolve, Status: StatusWorking})
			res, err := Check(gctx, sc, opts)
			if err != nil {
				emit(sink, Event{File: path, Stage: StageResolve, Status: StatusError, Err: err, Elapsed: time.Since(start)})
				return err
			}
			results[i] = res

			status := StatusDone
			if res.Bag.HasErrors() {
				status = StatusError
			}
			emit(sink, Event{File: path, Stage: StageResolve, Status: status, Elapsed: time.Since(start)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
