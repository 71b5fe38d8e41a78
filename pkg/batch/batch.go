// Package batch decodes many file IDs concurrently.
package batch

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"go.mau.fi/tgfileid/pkg/fileid"
)

// Mode decides what happens when an input fails to decode.
type Mode int

const (
	// BestEffort decodes every input and returns all failures combined.
	BestEffort Mode = iota
	// AllOrNothing stops at the first failure.
	AllOrNothing
)

func (m Mode) String() string {
	switch m {
	case BestEffort:
		return "best_effort"
	case AllOrNothing:
		return "all_or_nothing"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the output of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "best_effort", "":
		return BestEffort, nil
	case "all_or_nothing":
		return AllOrNothing, nil
	default:
		return 0, errors.Errorf("unknown batch mode %q", s)
	}
}

// Result is the outcome of decoding one input.
type Result struct {
	Input  string
	FileID fileid.FileID
	// Unique is nil if the file type has no unique ID.
	Unique   *fileid.UniqueID
	OwnerID  uint32
	HasOwner bool
	Warnings []fileid.Warning
	Err      error
}

// Processor decodes file IDs with a bounded number of goroutines and
// remembers recent results. It's safe for concurrent use.
type Processor struct {
	workers int
	mode    Mode
	log     zerolog.Logger
	cache   *lru.Cache[string, Result]
}

// Options configure a Processor.
type Options struct {
	Workers   int
	Mode      Mode
	CacheSize int
	Logger    zerolog.Logger
}

// New creates a processor. Workers defaults to 1 and a CacheSize of zero
// disables the cache.
func New(opts Options) (*Processor, error) {
	p := &Processor{
		workers: max(opts.Workers, 1),
		mode:    opts.Mode,
		log:     opts.Logger,
	}
	if opts.CacheSize > 0 {
		var err error
		p.cache, err = lru.New[string, Result](opts.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "create cache")
		}
	}
	return p, nil
}

func (p *Processor) Mode() Mode {
	return p.mode
}

// Process decodes inputs. Results are in the same order as inputs, entries
// that weren't processed because of a failure or cancellation are left empty.
//
// In BestEffort mode the returned error combines the errors of all failed
// results. In AllOrNothing mode it's the first failure.
func (p *Processor) Process(ctx context.Context, inputs []string) ([]Result, error) {
	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = p.Decode(input)
			if err := results[i].Err; err != nil && p.mode == AllOrNothing {
				return errors.Wrapf(err, "input %d", i+1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	var err error
	for i, res := range results {
		if res.Err != nil {
			multierr.AppendInto(&err, errors.Wrapf(res.Err, "input %d", i+1))
		}
	}
	return results, err
}

// Decode decodes a single input, using the cache if enabled.
func (p *Processor) Decode(input string) Result {
	if p.cache != nil {
		if res, ok := p.cache.Get(input); ok {
			return res
		}
	}
	res := Result{Input: input}
	logWarning := fileid.ZerologWarnings(p.log.With().Str("input", input).Logger())
	decoder := fileid.Decoder{OnWarning: func(w fileid.Warning) {
		res.Warnings = append(res.Warnings, w)
		logWarning(w)
	}}
	res.FileID, res.Err = decoder.FileID(input)
	if res.Err == nil {
		if unique, err := fileid.Project(res.FileID); err == nil {
			res.Unique = &unique
		}
		res.OwnerID, res.HasOwner = fileid.OwnerID(res.FileID)
	}
	if p.cache != nil {
		p.cache.Add(input, res)
	}
	return res
}
