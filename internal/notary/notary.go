package notary

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sentinel-ops/sentinel/internal/gateway"
	"github.com/sentinel-ops/sentinel/internal/seal"
)

// HeadReader reports the current chain head height.
type HeadReader interface {
	HeadNumber(ctx context.Context) (uint64, error)
}

// Scanner accumulates watched logs over contiguous ranges starting at from
// and returns the batch along with the next unscanned block height. The head
// block itself is scanned only when it falls inside the final range; when the
// scan lands exactly on it, it waits for the next run.
type Scanner interface {
	Run(ctx context.Context, from, head uint64) ([]gateway.Log, uint64, error)
}

// CursorStore persists the next-block-to-scan marker.
type CursorStore interface {
	Load() (uint64, error)
	Save(value uint64) error
}

// Sealer wraps a batch into a fingerprinted certificate.
type Sealer interface {
	Seal(batch []gateway.Log, from, to uint64) (*seal.Certificate, string, error)
}

// ArtifactStore writes a certificate to durable local storage.
type ArtifactStore interface {
	Persist(cert *seal.Certificate) (string, error)
}

// Publisher submits a persisted certificate to a content-addressed storage
// network and returns its content identifier.
type Publisher interface {
	Publish(ctx context.Context, path string) (string, error)
}

// Notary drives one scan-and-seal run. It owns the ordering invariant of the
// pipeline: the durable cursor is only advanced after a certificate covering
// the scanned ranges has been persisted, so the persisted cursor never runs
// ahead of sealed data. At most one certificate is sealed per run.
type Notary struct {
	logger    *logrus.Logger
	cursors   CursorStore
	head      HeadReader
	scanner   Scanner
	sealer    Sealer
	artifacts ArtifactStore
	publisher Publisher // may be nil; publication is best-effort
}

func New(logger *logrus.Logger, cursors CursorStore, head HeadReader, scanner Scanner, sealer Sealer, artifacts ArtifactStore, publisher Publisher) *Notary {
	return &Notary{
		logger:    logger,
		cursors:   cursors,
		head:      head,
		scanner:   scanner,
		sealer:    sealer,
		artifacts: artifacts,
		publisher: publisher,
	}
}

// Run performs a single notary cycle: resume from the persisted cursor, scan
// up to the head captured at entry, seal whatever was observed, persist the
// certificate, advance the cursor, and publish if a publisher is configured.
func (n *Notary) Run(ctx context.Context) error {
	from, err := n.cursors.Load()
	if err != nil {
		return fmt.Errorf("load cursor: %w", err)
	}

	head, err := n.head.HeadNumber(ctx)
	if err != nil {
		return fmt.Errorf("get chain head: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"cursor": from,
		"head":   head,
	}).Info("Notary session active")

	batch, next, err := n.scanner.Run(ctx, from, head)
	if err != nil {
		// nothing durable was lost: the cursor still points at the start of
		// this run, so the next run re-scans the whole range
		return fmt.Errorf("scan aborted, cursor held at %d: %w", from, err)
	}

	if len(batch) == 0 {
		if next > from {
			err = n.cursors.Save(next)
			if err != nil {
				return fmt.Errorf("save cursor after empty run: %w", err)
			}
		}
		n.logger.WithField("head", head).Info("No new events identified, standing by")
		return nil
	}

	cert, fingerprint, err := n.sealer.Seal(batch, from, next-1)
	if err != nil {
		return fmt.Errorf("seal batch: %w", err)
	}

	path, err := n.artifacts.Persist(cert)
	if err != nil {
		return fmt.Errorf("persist certificate: %w", err)
	}

	err = n.cursors.Save(next)
	if err != nil {
		// the certificate exists; a stale cursor only means the next run
		// re-scans and seals the same ranges again
		return fmt.Errorf("certificate persisted at %s but cursor save failed: %w", path, err)
	}
	certificatesSealed.Inc()

	n.logger.WithFields(logrus.Fields{
		"fingerprint": fingerprint,
		"events":      len(batch),
		"range":       cert.Attestation.Range,
		"path":        path,
	}).Info("Sealing complete")

	if n.publisher == nil {
		return nil
	}

	cid, err := n.publisher.Publish(ctx, path)
	if err != nil {
		publishFailures.Inc()
		n.logger.WithField("path", path).WithError(err).Warn("Publication failed, certificate retained locally")
		return nil
	}

	n.logger.WithFields(logrus.Fields{
		"cid":  cid,
		"path": path,
	}).Info("Certificate published")

	return nil
}
