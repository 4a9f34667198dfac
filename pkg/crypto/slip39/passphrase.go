package slip39

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// defaultPassphrase is substituted whenever the caller supplies an
// empty passphrase, matching the reference implementation's plausible-
// deniability default.
const defaultPassphrase = "TREZOR"

// maxPassphraseCodepoints bounds the normalized passphrase length.
const maxPassphraseCodepoints = 1000

// normalizePassphrase applies NFKD to passphrase (or the default
// "TREZOR" literal when passphrase is empty) and validates it per
// spec.md §4.5. Two passphrases that normalize identically always
// produce the identical byte sequence here.
func normalizePassphrase(passphrase string) (string, error) {
	if passphrase == "" {
		passphrase = defaultPassphrase
	}
	normalized := norm.NFKD.String(passphrase)

	count := 0
	for _, r := range normalized {
		count++
		if count > maxPassphraseCodepoints {
			return "", newErr(ErrInvalidPassphrase, "passphrase exceeds %d code points", maxPassphraseCodepoints)
		}
		if !isAllowedPassphraseRune(r) {
			return "", newErr(ErrInvalidPassphrase, "passphrase contains forbidden control character %U", r)
		}
	}
	return normalized, nil
}

// isAllowedPassphraseRune accepts letters, digits, punctuation, symbols
// and the four whitespace characters tab/newline/CR/space; it rejects
// any other Control-category rune.
func isAllowedPassphraseRune(r rune) bool {
	switch r {
	case '\t', '\n', '\r', ' ':
		return true
	}
	if unicode.IsControl(r) {
		return false
	}
	return true
}
