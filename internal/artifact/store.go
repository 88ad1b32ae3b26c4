package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/sentinel-ops/sentinel/internal/seal"
)

// fingerprintPrefixLen is how much of the fingerprint makes it into the
// filename; combined with the timestamp it is collision-resistant in
// practice, not guaranteed.
const fingerprintPrefixLen = 8

// Store writes sealed certificates to a local snapshot directory.
type Store struct {
	logger *logrus.Logger
	dir    string
	prefix string
}

func NewStore(logger *logrus.Logger, dir, prefix string) *Store {
	return &Store{
		logger: logger,
		dir:    dir,
		prefix: prefix,
	}
}

// Persist writes the certificate as indented JSON under a name derived from
// its creation time and fingerprint, and returns the full path.
func (s *Store) Persist(cert *seal.Certificate) (string, error) {
	err := os.MkdirAll(s.dir, 0o755)
	if err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(cert, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal certificate: %w", err)
	}

	name := fmt.Sprintf("%s_%d_%s.json", s.prefix, cert.Attestation.UnixTS, shortFingerprint(cert.Attestation.Fingerprint))
	path := filepath.Join(s.dir, name)
	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return "", fmt.Errorf("write certificate file: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"path": path,
		"size": len(data),
	}).Debug("Certificate persisted")

	return path, nil
}

func shortFingerprint(fingerprint string) string {
	if len(fingerprint) <= fingerprintPrefixLen {
		return fingerprint
	}
	return fingerprint[:fingerprintPrefixLen]
}
