package slip39

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/keyforge-io/slip39/pkg/secure"
)

// GroupConfiguration is one (T_i, N_i) entry of a group configuration:
// MemberThreshold members out of MemberCount are required to recover
// that group's share.
type GroupConfiguration struct {
	MemberThreshold byte
	MemberCount     byte
}

// SimpleConfiguration builds the single-group configuration for a
// plain T-of-N share set (GT=1, one group of threshold/count).
func SimpleConfiguration(threshold, count byte) []GroupConfiguration {
	return []GroupConfiguration{{MemberThreshold: threshold, MemberCount: count}}
}

// genOptions carries GenerateShares' optional randomness override.
type genOptions struct {
	rnd RandomSource
}

// GenOption configures GenerateShares.
type GenOption func(*genOptions)

// WithRandomSource overrides the default crypto/rand.Reader, letting
// tests inject a deterministic source to reproduce fixtures.
func WithRandomSource(r RandomSource) GenOption {
	return func(o *genOptions) { o.rnd = r }
}

func validateGroupConfiguration(groupThreshold byte, groups []GroupConfiguration) error {
	if len(groups) == 0 {
		return newErr(ErrInvalidConfiguration, "at least one group is required")
	}
	if len(groups) > 16 {
		return newErr(ErrInvalidConfiguration, "at most 16 groups allowed, got %d", len(groups))
	}
	if groupThreshold < 1 || int(groupThreshold) > len(groups) {
		return newErr(ErrInvalidConfiguration, "group threshold %d must be in [1,%d]", groupThreshold, len(groups))
	}
	for i, g := range groups {
		if g.MemberCount < 1 || g.MemberCount > 16 {
			return newErr(ErrInvalidConfiguration, "group %d: member count %d out of range [1,16]", i, g.MemberCount)
		}
		if g.MemberThreshold < 1 || g.MemberThreshold > g.MemberCount {
			return newErr(ErrInvalidConfiguration, "group %d: threshold %d out of range [1,%d]", i, g.MemberThreshold, g.MemberCount)
		}
		if g.MemberThreshold == 1 && g.MemberCount > 1 {
			return newErr(ErrInvalidConfiguration, "group %d: threshold 1 requires member count 1, got %d", i, g.MemberCount)
		}
	}
	return nil
}

func validateMasterSecret(ms []byte) error {
	if len(ms) < 16 {
		return newErr(ErrInvalidConfiguration, "master secret must be at least 16 bytes, got %d", len(ms))
	}
	if len(ms)%2 != 0 {
		return newErr(ErrInvalidConfiguration, "master secret length must be even, got %d", len(ms))
	}
	return nil
}

// GenerateMasterSecret draws a cryptographically random master secret
// of the given length (must be even and >= 16 bytes).
func GenerateMasterSecret(length int) ([]byte, error) {
	ms := make([]byte, length)
	if err := validateMasterSecret(ms); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand.Reader, ms); err != nil {
		return nil, wrapErr(ErrInvalidConfiguration, err, "failed to generate master secret")
	}
	return ms, nil
}

func generateIdentifier(rnd RandomSource) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(rnd, buf[:]); err != nil {
		return 0, wrapErr(ErrInvalidConfiguration, err, "failed to generate identifier")
	}
	return binary.BigEndian.Uint16(buf[:]) & 0x7FFF, nil
}

// GenerateShares runs the full two-level SLIP-0039 split (spec.md
// §4.9): it encrypts masterSecret into the EMS, splits the EMS across
// groupThreshold-of-len(groups) groups, then splits each group share
// across that group's (T_i, N_i). The result preserves
// (group index, member index) order.
func GenerateShares(
	groupThreshold byte,
	groups []GroupConfiguration,
	masterSecret []byte,
	passphrase string,
	iterationExponent byte,
	extendable bool,
	opts ...GenOption,
) ([][]Share, error) {
	o := genOptions{rnd: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateMasterSecret(masterSecret); err != nil {
		return nil, err
	}
	if err := validateGroupConfiguration(groupThreshold, groups); err != nil {
		return nil, err
	}
	if iterationExponent >= 16 {
		return nil, newErr(ErrInvalidConfiguration, "iteration exponent %d out of range [0,16)", iterationExponent)
	}

	normalizedPass, err := normalizePassphrase(passphrase)
	if err != nil {
		return nil, err
	}

	id, err := generateIdentifier(o.rnd)
	if err != nil {
		return nil, err
	}

	ems := feistelEncrypt(masterSecret, normalizedPass, iterationExponent, id, extendable)
	defer secure.Zero(ems)

	groupShares, err := sssSplit(groupThreshold, byte(len(groups)), ems, o.rnd)
	if err != nil {
		return nil, wrapErr(ErrInvalidConfiguration, err, "failed to split into groups")
	}

	result := make([][]Share, len(groups))
	for i, g := range groups {
		memberShares, err := sssSplit(g.MemberThreshold, g.MemberCount, groupShares[i], o.rnd)
		if err != nil {
			return nil, wrapErr(ErrInvalidConfiguration, err, "failed to split group %d", i)
		}
		secure.Zero(groupShares[i])

		result[i] = make([]Share, g.MemberCount)
		for j, mv := range memberShares {
			result[i][j] = Share{
				Identifier:        id,
				Extendable:        extendable,
				IterationExponent: iterationExponent,
				GroupIndex:        byte(i),
				GroupThreshold:    groupThreshold,
				GroupCount:        byte(len(groups)),
				MemberIndex:       byte(j),
				MemberThreshold:   g.MemberThreshold,
				ShareValue:        mv,
			}
		}
	}
	return result, nil
}
