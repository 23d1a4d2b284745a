package crypto

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-secure-store/models"
)

const (
	recordSegments = 4
	gcmTagSize     = 16
)

// ParseRecord turns a persisted string into a typed [models.Record].
//
// A value without the versioned marker (see [models.HasRecordMarker]) is
// [models.LegacyPlaintext]. A value with the marker must be a complete v1
// record, otherwise [ErrFormat] is returned; such a value is never treated
// as plaintext.
func ParseRecord(raw string) (models.Record, error) {
	if !models.HasRecordMarker(raw) {
		return models.LegacyPlaintext(raw), nil
	}

	parts := strings.Split(raw, models.RecordDelimiter)
	if len(parts) != recordSegments {
		return nil, fmt.Errorf("%w: expected %d segments, got %d", ErrFormat, recordSegments, len(parts))
	}

	version, err := parseVersion(parts[1])
	if err != nil {
		return nil, err
	}
	if version != models.RecordVersion {
		return nil, fmt.Errorf("%w: v%d", ErrUnsupportedVersion, version)
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: decode nonce: %v", ErrFormat, err)
	}
	if len(nonce) != models.RecordNonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrFormat, len(nonce), models.RecordNonceSize)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %v", ErrFormat, err)
	}
	if len(ciphertext) < gcmTagSize {
		return nil, fmt.Errorf("%w: ciphertext shorter than authentication tag", ErrFormat)
	}

	return models.EncryptedRecord{
		Version:    version,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, nil
}

// ParseEncryptedRecord is [ParseRecord] for callers that require an
// encrypted value: legacy plaintext is reported as [ErrFormat].
func ParseEncryptedRecord(raw string) (models.EncryptedRecord, error) {
	rec, err := ParseRecord(raw)
	if err != nil {
		return models.EncryptedRecord{}, err
	}
	enc, ok := rec.(models.EncryptedRecord)
	if !ok {
		return models.EncryptedRecord{}, fmt.Errorf("%w: missing record marker", ErrFormat)
	}
	return enc, nil
}

func parseVersion(segment string) (int, error) {
	if !strings.HasPrefix(segment, "v") {
		return 0, fmt.Errorf("%w: bad version segment %q", ErrFormat, segment)
	}
	version, err := strconv.Atoi(strings.TrimPrefix(segment, "v"))
	if err != nil || version <= 0 {
		return 0, fmt.Errorf("%w: bad version segment %q", ErrFormat, segment)
	}
	return version, nil
}
