package scan

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"

	"github.com/sentinel-ops/sentinel/internal/gateway"
)

// LogFetcher retrieves logs for an inclusive block range.
type LogFetcher interface {
	Logs(ctx context.Context, from, to uint64, addresses []string) ([]gateway.Log, error)
}

type Config struct {
	// Addresses is the watched address set, already checksummed.
	Addresses []string
	// Step is the maximum width of a single log request, bounded by the
	// upstream provider's per-call range limit.
	Step uint64
	// Throttle is the pause between consecutive log requests.
	Throttle time.Duration
	// Jitter, when non-zero, adds a random delay in [0, Jitter) to each pause.
	Jitter time.Duration
}

// Scanner walks the chain from a starting cursor up to a fixed head,
// accumulating every log the watched addresses emitted along the way.
type Scanner struct {
	logger  *logrus.Logger
	fetcher LogFetcher
	cfg     Config
}

func New(logger *logrus.Logger, fetcher LogFetcher, cfg Config) *Scanner {
	if cfg.Step == 0 {
		cfg.Step = 1
	}
	return &Scanner{
		logger:  logger,
		fetcher: fetcher,
		cfg:     cfg,
	}
}

// Run walks contiguous ranges of at most Step blocks starting at from and
// returns the accumulated batch along with the next unscanned block height.
// The head is captured once by the caller and never chased mid-run: blocks
// produced while scanning wait for the next run.
//
// A fetch failure aborts the run and discards the partial batch; since the
// caller only persists the cursor after sealing, nothing durable is lost.
func (s *Scanner) Run(ctx context.Context, from, head uint64) ([]gateway.Log, uint64, error) {
	if head <= from {
		s.logger.WithFields(logrus.Fields{
			"cursor": from,
			"head":   head,
		}).Debug("No new blocks to scan")
		return nil, from, nil
	}

	var batch []gateway.Log
	pointer := from

	// the timer paces requests; the first range goes out immediately
	timer := time.NewTimer(0)
	defer timer.Stop()
	for range chans.ReceiveOrDoneSeq(ctx, timer.C) {
		limit := min(pointer+s.cfg.Step-1, head)

		logs, err := s.fetcher.Logs(ctx, pointer, limit, s.cfg.Addresses)
		if err != nil {
			return nil, from, fmt.Errorf("scan range %d-%d: %w", pointer, limit, err)
		}
		batch = append(batch, logs...)
		rangesScanned.Inc()
		eventsObserved.Add(float64(len(logs)))

		s.logger.WithFields(logrus.Fields{
			"from":  pointer,
			"to":    limit,
			"total": len(batch),
		}).Info("Synced range")

		pointer = limit + 1
		if pointer >= head {
			break
		}
		timer.Reset(s.throttleDelay())
	}

	if pointer < head {
		// the loop can only end early when the context is done
		return nil, from, ctx.Err()
	}

	return batch, pointer, nil
}

func (s *Scanner) throttleDelay() time.Duration {
	delay := s.cfg.Throttle
	if s.cfg.Jitter > 0 {
		delay += rand.N(s.cfg.Jitter)
	}
	return delay
}
