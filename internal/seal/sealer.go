package seal

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/sentinel-ops/sentinel/internal/gateway"
)

var (
	// ErrMalformedCertificate is returned by Verify when the input is not a
	// certificate produced by this system.
	ErrMalformedCertificate = errors.New("malformed certificate")
)

// Identity is the issuer identity embedded in every attestation.
type Identity struct {
	Tag          string
	Organization string
	Contact      string
}

type Attestation struct {
	Fingerprint string `json:"fingerprint"`
	NotarySeal  string `json:"notary_seal"`
	Authority   string `json:"authority,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Range       string `json:"range"`
	UnixTS      int64  `json:"unix_ts"`
}

// Certificate is the sealed output: attestation metadata plus the batch
// payload exactly as it was observed.
type Certificate struct {
	Attestation Attestation       `json:"attestation"`
	Payload     []json.RawMessage `json:"payload"`
}

// Sealer turns an accumulated batch into an attestation certificate.
// Sealing is pure with respect to the batch: the fingerprint depends only on
// the batch content, never on the range, the issuer, or the time of sealing.
type Sealer struct {
	identity Identity
	now      func() time.Time
}

func NewSealer(identity Identity) *Sealer {
	return &Sealer{
		identity: identity,
		now:      time.Now,
	}
}

// Seal fingerprints the batch and wraps it with attestation metadata for the
// scanned inclusive block range [from, to].
func (s *Sealer) Seal(batch []gateway.Log, from, to uint64) (*Certificate, string, error) {
	payload := make([]json.RawMessage, len(batch))
	for i, l := range batch {
		payload[i] = l.Raw
	}

	fingerprint, err := Fingerprint(payload)
	if err != nil {
		return nil, "", fmt.Errorf("fingerprint batch: %w", err)
	}

	cert := &Certificate{
		Attestation: Attestation{
			Fingerprint: fingerprint,
			NotarySeal:  s.identity.Tag,
			Authority:   s.identity.Organization,
			Contact:     s.identity.Contact,
			Range:       fmt.Sprintf("%d-%d", from, to),
			UnixTS:      s.now().Unix(),
		},
		Payload: payload,
	}

	return cert, fingerprint, nil
}

// Fingerprint computes the uppercase hex SHA-256 digest of the canonical
// encoding of the payload. Canonical means every JSON object is re-encoded
// with its keys sorted at every nesting level, so two structurally identical
// events fingerprint the same regardless of incidental field ordering.
// Event order within the payload is significant and preserved.
func Fingerprint(payload []json.RawMessage) (string, error) {
	canonical, err := canonicalize(payload)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256(canonical)
	return strings.ToUpper(hex.EncodeToString(digest[:])), nil
}

func canonicalize(payload []json.RawMessage) ([]byte, error) {
	items := make([]any, len(payload))
	for i, raw := range payload {
		// UseNumber keeps numeric literals verbatim through the round trip
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var item any
		err := dec.Decode(&item)
		if err != nil {
			return nil, fmt.Errorf("decode payload item %d: %w", i, err)
		}
		items[i] = item
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal canonical payload: %w", err)
	}

	return data, nil
}

// Verify recomputes the fingerprint of a serialized certificate's payload
// and reports whether it matches the attestation. It returns the recomputed
// fingerprint either way so mismatches can be reported precisely.
func Verify(data []byte) (string, bool, error) {
	if !gjson.ValidBytes(data) {
		return "", false, fmt.Errorf("%w: not valid JSON", ErrMalformedCertificate)
	}

	claimed := gjson.GetBytes(data, "attestation.fingerprint")
	if !claimed.Exists() {
		return "", false, fmt.Errorf("%w: missing attestation.fingerprint", ErrMalformedCertificate)
	}

	rawPayload := gjson.GetBytes(data, "payload")
	if !rawPayload.Exists() || !rawPayload.IsArray() {
		return "", false, fmt.Errorf("%w: missing payload array", ErrMalformedCertificate)
	}

	items := rawPayload.Array()
	payload := make([]json.RawMessage, len(items))
	for i, item := range items {
		payload[i] = json.RawMessage(item.Raw)
	}

	fingerprint, err := Fingerprint(payload)
	if err != nil {
		return "", false, fmt.Errorf("refingerprint payload: %w", err)
	}

	return fingerprint, fingerprint == claimed.String(), nil
}
