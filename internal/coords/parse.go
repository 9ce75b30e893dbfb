package coords

// ParseSignature inverts Signature.String: it resolves a hyphenated
// kind name like "xy", "rhophi-z" or "xy-eta-tau" back to the
// signature. Unknown or structurally invalid spellings come back as a
// ConfigurationError naming the offending parts.
func ParseSignature(kind string) (Signature, error) {
	for _, s := range AllSignatures() {
		if s.String() == kind {
			return s, nil
		}
	}
	return Signature{}, &ConfigurationError{
		Code:    ErrCodeUnknownField,
		Message: "name matches no coordinate signature",
		Fields:  []string{kind},
	}
}
