// Package importer seeds stops and lines from a static GTFS feed.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/jamespfennell/gtfs"
)

// Store persists imported records. It is implemented by repository.Repository.
type Store interface {
	CreateStop(ctx context.Context, stop models.Stop) (models.Stop, error)
	CreateLine(ctx context.Context, line models.Line) (models.Line, error)
}

// Summary counts the outcome of an import.
type Summary struct {
	Stops        int // stops stored
	SkippedStops int // feed stops without coordinates
	Lines        int // lines stored
	Failed       int // records the store rejected
}

type Importer struct {
	store      Store
	log        *slog.Logger
	numWorkers int
}

// New creates an importer writing through store with numWorkers concurrent writers.
func New(store Store, log *slog.Logger, numWorkers int) *Importer {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Importer{store: store, log: log, numWorkers: numWorkers}
}

// Parse decodes a zipped static GTFS feed.
func Parse(content []byte) (*gtfs.Static, error) {
	static, err := gtfs.ParseStatic(content, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse GTFS feed: %w", err)
	}
	return static, nil
}

// Import stores every stop with coordinates, then every route as a line referencing
// the stops stored in the first pass. Records the store rejects are logged and counted.
func (im *Importer) Import(ctx context.Context, static *gtfs.Static) (Summary, error) {
	var summary Summary

	stops, skipped := convertStops(static)
	summary.SkippedStops = skipped

	im.log.InfoContext(ctx, "Importing stops", "stops", len(stops), "skipped", skipped, "num_workers", im.numWorkers)

	stored := make(map[string]int64, len(stops))
	var (
		mu      sync.Mutex
		failed  atomic.Int64
		created atomic.Int64
	)

	runPool(ctx, im.numWorkers, stops, func(ctx context.Context, idx int, fs feedStop) {
		stop, err := im.store.CreateStop(ctx, fs.stop)
		if err != nil {
			im.log.ErrorContext(ctx, "Failed to import stop", "worker", idx, "feed_id", fs.feedID, "error", err)
			failed.Add(1)
			return
		}
		mu.Lock()
		stored[fs.feedID] = stop.ID
		mu.Unlock()
		created.Add(1)
	})
	summary.Stops = int(created.Load())

	if err := ctx.Err(); err != nil {
		summary.Failed = int(failed.Load())
		return summary, fmt.Errorf("import interrupted: %w", err)
	}

	lines := convertLines(static)
	im.log.InfoContext(ctx, "Importing lines", "lines", len(lines))

	created.Store(0)
	runPool(ctx, im.numWorkers, lines, func(ctx context.Context, idx int, fl feedLine) {
		line := models.Line{Name: fl.name, StopIDs: make([]int64, 0, len(fl.stopIDs))}
		for _, feedID := range fl.stopIDs {
			if id, ok := stored[feedID]; ok {
				line.StopIDs = append(line.StopIDs, id)
			}
		}

		if _, err := im.store.CreateLine(ctx, line); err != nil {
			im.log.ErrorContext(ctx, "Failed to import line", "worker", idx, "feed_id", fl.feedID, "error", err)
			failed.Add(1)
			return
		}
		created.Add(1)
	})
	summary.Lines = int(created.Load())
	summary.Failed = int(failed.Load())

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("import interrupted: %w", err)
	}

	im.log.InfoContext(ctx, "Import finished",
		"stops", summary.Stops, "lines", summary.Lines, "skipped", summary.SkippedStops, "failed", summary.Failed)

	return summary, nil
}

// runPool feeds items to numWorkers goroutines and waits for all of them.
// Items not yet handed out when ctx is cancelled are dropped.
func runPool[T any](ctx context.Context, numWorkers int, items []T, fn func(ctx context.Context, idx int, item T)) {
	jobs := make(chan T)
	var wgr sync.WaitGroup

	for i := 1; i <= numWorkers; i++ {
		wgr.Add(1)
		go func(idx int) {
			defer wgr.Done()
			for item := range jobs {
				fn(ctx, idx, item)
			}
		}(i)
	}

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		jobs <- item
	}
	close(jobs)

	wgr.Wait()
}
