// Package trace records evaluated operations durably. Each record is a
// canonical-JSON document (RFC 8785 key order, NFC strings, no HTML
// escaping) content-addressed with a domain-separated SHA-256 hash, so
// the same operation over the same operands always produces the same
// record ID across runs and machines. Records are grouped into runs
// keyed by a random run token and persisted in SQLite.
package trace
