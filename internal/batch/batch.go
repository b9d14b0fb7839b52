// Package batch translates many SUBSTR calls concurrently under one dialect rule.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlsubstr/pkg/substr"
)

// DefaultConcurrency is used when Translator.Concurrency is not positive.
const DefaultConcurrency = 4

// maxLineSize bounds a single input line read by ReadInputs.
const maxLineSize = 1 << 20

// Translator runs the substring pipeline over a list of inputs.
type Translator struct {
	Rule        *substr.Rule
	BufferSize  int
	Concurrency int
	Logger      *slog.Logger
}

// Result is the outcome of one input. Err is a *substr.Error for pipeline
// failures, or the context error for items never scheduled.
type Result struct {
	Index  int    `json:"index" yaml:"index"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Err    error  `json:"-" yaml:"-"`
}

// OK reports whether the item translated successfully.
func (r *Result) OK() bool { return r.Err == nil }

// Run holds the ordered results of one Translate call.
type Run struct {
	ID       string
	Results  []Result
	Failed   int
	Duration time.Duration
}

// Translate translates every input and returns results in input order.
// Item failures are recorded per result and never stop the batch; a
// cancelled context stops scheduling and is returned alongside the partial run.
func (t *Translator) Translate(ctx context.Context, inputs []string) (*Run, error) {
	if t.Rule == nil {
		return nil, fmt.Errorf("batch: %w", substr.ErrNullInput)
	}
	if t.BufferSize <= 0 {
		return nil, fmt.Errorf("batch: buffer size must be positive, got %d", t.BufferSize)
	}

	logger := t.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	limit := t.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	run := &Run{
		ID:      uuid.NewString(),
		Results: make([]Result, len(inputs)),
	}
	logger = logger.With("run_id", run.ID)
	logger.Debug("batch started",
		"items", len(inputs),
		"function", t.Rule.FunctionName,
		"concurrency", limit)
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(limit)

	var cancelErr error
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			cancelErr = err
			for j := i; j < len(inputs); j++ {
				run.Results[j] = Result{Index: j, Input: inputs[j], Err: err}
			}
			break
		}
		g.Go(func() error {
			run.Results[i] = t.translateOne(i, in)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	for i := range run.Results {
		if run.Results[i].Err != nil {
			run.Failed++
			logger.Debug("item failed", "index", i, "err", run.Results[i].Err)
		}
	}
	run.Duration = time.Since(start)

	logger.Debug("batch finished",
		"items", len(inputs),
		"failed", run.Failed,
		"duration", run.Duration)

	return run, cancelErr
}

func (t *Translator) translateOne(i int, input string) Result {
	dst := make([]byte, t.BufferSize)
	n, err := substr.TranslateCall(input, t.Rule, dst)
	if err != nil {
		return Result{Index: i, Input: input, Err: err}
	}
	return Result{Index: i, Input: input, Output: string(dst[:n])}
}

// ReadInputs reads one call per line, skipping blank lines and `--` comments.
func ReadInputs(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var inputs []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading inputs: %w", err)
	}
	return inputs, nil
}
