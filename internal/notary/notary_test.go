package notary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinel-ops/sentinel/internal/gateway"
	"github.com/sentinel-ops/sentinel/internal/notary"
	"github.com/sentinel-ops/sentinel/internal/notary/mocks"
	"github.com/sentinel-ops/sentinel/internal/seal"
)

//go:generate moq -out mocks/head_reader.go -pkg mocks -skip-ensure . HeadReader
//go:generate moq -out mocks/scanner.go -pkg mocks -skip-ensure . Scanner
//go:generate moq -out mocks/cursor_store.go -pkg mocks -skip-ensure . CursorStore
//go:generate moq -out mocks/sealer.go -pkg mocks -skip-ensure . Sealer
//go:generate moq -out mocks/artifact_store.go -pkg mocks -skip-ensure . ArtifactStore
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure . Publisher

type fixture struct {
	cursors   *mocks.CursorStoreMock
	head      *mocks.HeadReaderMock
	scanner   *mocks.ScannerMock
	sealer    *mocks.SealerMock
	artifacts *mocks.ArtifactStoreMock
	publisher *mocks.PublisherMock
	steps     []string
}

func newFixture(cursor, head, next uint64, batch []gateway.Log) *fixture {
	f := &fixture{}
	f.cursors = &mocks.CursorStoreMock{
		LoadFunc: func() (uint64, error) { return cursor, nil },
		SaveFunc: func(value uint64) error {
			f.steps = append(f.steps, "save")
			return nil
		},
	}
	f.head = &mocks.HeadReaderMock{
		HeadNumberFunc: func(ctx context.Context) (uint64, error) { return head, nil },
	}
	f.scanner = &mocks.ScannerMock{
		RunFunc: func(ctx context.Context, from uint64, head uint64) ([]gateway.Log, uint64, error) {
			return batch, next, nil
		},
	}
	f.sealer = &mocks.SealerMock{
		SealFunc: func(batch []gateway.Log, from uint64, to uint64) (*seal.Certificate, string, error) {
			f.steps = append(f.steps, "seal")
			return &seal.Certificate{
				Attestation: seal.Attestation{Fingerprint: "FEEDBEEF", Range: "1000-1205"},
			}, "FEEDBEEF", nil
		},
	}
	f.artifacts = &mocks.ArtifactStoreMock{
		PersistFunc: func(cert *seal.Certificate) (string, error) {
			f.steps = append(f.steps, "persist")
			return "snapshots/SENTINEL_CERT_1_FEEDBEEF.json", nil
		},
	}
	f.publisher = &mocks.PublisherMock{
		PublishFunc: func(ctx context.Context, path string) (string, error) {
			f.steps = append(f.steps, "publish")
			return "QmFakeCID", nil
		},
	}
	return f
}

func (f *fixture) notary() *notary.Notary {
	return notary.New(logrus.New(), f.cursors, f.head, f.scanner, f.sealer, f.artifacts, f.publisher)
}

func testBatch(n int) []gateway.Log {
	batch := make([]gateway.Log, n)
	for i := range batch {
		batch[i] = gateway.Log{Raw: []byte(`{"address":"0xabc"}`)}
	}
	return batch
}

func TestRunSealsAndPublishes(t *testing.T) {
	f := newFixture(1000, 1205, 1206, testBatch(3))

	require.NoError(t, f.notary().Run(context.Background()))

	// head is captured once and handed to the scanner verbatim
	require.Len(t, f.scanner.RunCalls(), 1)
	assert.Equal(t, uint64(1000), f.scanner.RunCalls()[0].From)
	assert.Equal(t, uint64(1205), f.scanner.RunCalls()[0].Head)

	require.Len(t, f.sealer.SealCalls(), 1, "exactly one seal per run")
	assert.Len(t, f.sealer.SealCalls()[0].Batch, 3)
	assert.Equal(t, uint64(1000), f.sealer.SealCalls()[0].From)
	assert.Equal(t, uint64(1205), f.sealer.SealCalls()[0].To)

	require.Len(t, f.cursors.SaveCalls(), 1)
	assert.Equal(t, uint64(1206), f.cursors.SaveCalls()[0].Value)

	require.Len(t, f.publisher.PublishCalls(), 1)
	assert.Equal(t, "snapshots/SENTINEL_CERT_1_FEEDBEEF.json", f.publisher.PublishCalls()[0].Path)

	// the cursor may only advance once the certificate is durable
	assert.Equal(t, []string{"seal", "persist", "save", "publish"}, f.steps)
}

func TestRunEmptyBatchSkipsSealing(t *testing.T) {
	f := newFixture(1000, 1205, 1206, nil)

	require.NoError(t, f.notary().Run(context.Background()))

	assert.Empty(t, f.sealer.SealCalls(), "nothing to seal")
	assert.Empty(t, f.artifacts.PersistCalls())
	assert.Empty(t, f.publisher.PublishCalls())
	// scanned-but-empty ranges are safe to skip forever
	require.Len(t, f.cursors.SaveCalls(), 1)
	assert.Equal(t, uint64(1206), f.cursors.SaveCalls()[0].Value)
}

func TestRunNoNewBlocks(t *testing.T) {
	f := newFixture(1205, 1205, 1205, nil)

	require.NoError(t, f.notary().Run(context.Background()))

	assert.Empty(t, f.sealer.SealCalls())
	assert.Empty(t, f.cursors.SaveCalls(), "cursor untouched when the scan did not move")
	assert.Empty(t, f.publisher.PublishCalls())
}

func TestRunScanFailureHoldsCursor(t *testing.T) {
	f := newFixture(1000, 1205, 0, nil)
	scanErr := errors.New("gateway timeout")
	f.scanner.RunFunc = func(ctx context.Context, from uint64, head uint64) ([]gateway.Log, uint64, error) {
		return nil, from, scanErr
	}

	err := f.notary().Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, scanErr)
	assert.ErrorContains(t, err, "cursor held at 1000")
	assert.Empty(t, f.cursors.SaveCalls(), "cursor must not advance past unsealed data")
	assert.Empty(t, f.sealer.SealCalls())
	assert.Empty(t, f.artifacts.PersistCalls())
}

func TestRunPersistFailureHoldsCursor(t *testing.T) {
	f := newFixture(1000, 1205, 1206, testBatch(1))
	f.artifacts.PersistFunc = func(cert *seal.Certificate) (string, error) {
		return "", errors.New("disk full")
	}

	err := f.notary().Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "persist certificate")
	assert.Empty(t, f.cursors.SaveCalls())
	assert.Empty(t, f.publisher.PublishCalls())
}

func TestRunPublishFailureIsNotFatal(t *testing.T) {
	f := newFixture(1000, 1205, 1206, testBatch(2))
	f.publisher.PublishFunc = func(ctx context.Context, path string) (string, error) {
		return "", errors.New("ipfs daemon unreachable")
	}

	require.NoError(t, f.notary().Run(context.Background()), "local persistence already succeeded")
	require.Len(t, f.cursors.SaveCalls(), 1)
	require.Len(t, f.artifacts.PersistCalls(), 1)
}

func TestRunWithoutPublisher(t *testing.T) {
	f := newFixture(1000, 1205, 1206, testBatch(2))
	n := notary.New(logrus.New(), f.cursors, f.head, f.scanner, f.sealer, f.artifacts, nil)

	require.NoError(t, n.Run(context.Background()))
	require.Len(t, f.artifacts.PersistCalls(), 1)
	assert.Empty(t, f.publisher.PublishCalls())
}

func TestRunHeadFailure(t *testing.T) {
	f := newFixture(1000, 0, 0, nil)
	f.head.HeadNumberFunc = func(ctx context.Context) (uint64, error) {
		return 0, errors.New("rpc error -32000: node syncing")
	}

	err := f.notary().Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "get chain head")
	assert.Empty(t, f.scanner.RunCalls())
	assert.Empty(t, f.cursors.SaveCalls())
}
