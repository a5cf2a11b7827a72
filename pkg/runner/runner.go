package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/prosechunk/pkg/chunk"
	"github.com/yaklabco/prosechunk/pkg/extract"
	"github.com/yaklabco/prosechunk/pkg/fsutil"
	"github.com/yaklabco/prosechunk/pkg/langdetect"
)

// Run discovers files under opts.Paths and extracts checkable chunks from
// them concurrently. It returns a deterministic collection of FileOutcome
// values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Processes files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func Run(ctx context.Context, opts Options) (*Result, error) {
	// Discover files.
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	// Create channels.
	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	// Start workers.
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, opts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect results.
	// Use a map to maintain order since workers may complete out of order.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	// Build result in deterministic order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	// Check for context error.
	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile reads a single file, classifies it, and extracts its
// checkable chunks.
func processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	text := string(fsutil.NormalizeNewlines(content))

	outcome.Kind = langdetect.DetectFile(path, content)

	switch outcome.Kind {
	case langdetect.KindRustSource:
		if !opts.DevComments {
			outcome.Skipped = true
			return outcome
		}
		outcome.Origin = chunk.OriginRustSourceFile(path)
		outcome.Chunks = extract.Chunks(text)

	case langdetect.KindCommonMark:
		// README skipping happens during discovery, so a README that
		// reaches this point was named explicitly and is processed.
		outcome.Origin = chunk.OriginCommonMarkFile(path)
		doc := chunk.FromCommonMark(text)
		if doc.Len() > 0 {
			outcome.Chunks = []*chunk.CheckableChunk{doc}
		}

	default:
		// Unrecognized content, nothing to extract.
		outcome.Skipped = true
	}

	return outcome
}
