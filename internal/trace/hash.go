package trace

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix
// leaves room for algorithm migration without colliding with old IDs.
const (
	DomainRecord = "fourvec/record/v1"
	DomainRun    = "fourvec/run/v1"
)

// hashWithDomain computes SHA256(domain || 0x00 || data). The null
// separator keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RecordID computes the content-addressed ID of a record: the
// domain-separated hash of its canonical JSON. The same operation over
// the same operands and parameters always produces the same ID.
func RecordID(r Record) (string, error) {
	canonical, err := MarshalCanonical(r.canonicalValue())
	if err != nil {
		return "", fmt.Errorf("RecordID: %w", err)
	}
	return hashWithDomain(DomainRecord, canonical), nil
}

// MustRecordID is RecordID for inputs known to marshal, such as records
// built by the harness from evaluated operations.
func MustRecordID(r Record) string {
	id, err := RecordID(r)
	if err != nil {
		panic(err)
	}
	return id
}
