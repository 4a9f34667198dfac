// Package slip39 implements SLIP-0039: Shamir's Secret-Sharing for
// Mnemonic Codes (https://github.com/satoshilabs/slips/blob/master/slip-0039.md).
//
// The package is a pure, synchronous library: GenerateShares and
// CombineShares never block on I/O, hold no mutable package state
// beyond the read-only GF(256)/wordlist/RS1024 tables built once at
// init, and are safe to call concurrently from any number of
// goroutines.
package slip39

import "fmt"

// DefaultIterationExponent gives 10000*2^1 = 20000 total PBKDF2
// iterations across the four Feistel rounds.
const DefaultIterationExponent = 1

// MinMasterSecretLength is the minimum allowed master secret size.
const MinMasterSecretLength = 16

// SplitMasterSecret is a convenience wrapper around GenerateShares that
// returns ready-to-transcribe mnemonics instead of Share values.
func SplitMasterSecret(
	masterSecret []byte,
	passphrase string,
	groupThreshold byte,
	groups []GroupConfiguration,
	iterationExponent byte,
	extendable bool,
) ([][]string, error) {
	shares, err := GenerateShares(groupThreshold, groups, masterSecret, passphrase, iterationExponent, extendable)
	if err != nil {
		return nil, err
	}

	mnemonics := make([][]string, len(shares))
	for i, group := range shares {
		mnemonics[i] = make([]string, len(group))
		for j := range group {
			m, err := group[j].ToMnemonic()
			if err != nil {
				return nil, wrapErr(ErrInvalidShare, err, "group %d share %d", i, j)
			}
			mnemonics[i][j] = m
		}
	}
	return mnemonics, nil
}

// RecoverMasterSecret parses a flat list of mnemonics and combines
// them into the master secret.
func RecoverMasterSecret(mnemonics []string, passphrase string) ([]byte, error) {
	if len(mnemonics) == 0 {
		return nil, newErr(ErrInvalidShareSet, "no mnemonics provided")
	}
	shares := make([]Share, len(mnemonics))
	for i, m := range mnemonics {
		s, err := ShareFromMnemonic(m)
		if err != nil {
			return nil, wrapErr(ErrInvalidShare, err, "mnemonic %d", i+1)
		}
		shares[i] = *s
	}
	return CombineShares(shares, passphrase)
}

// ValidateMnemonic reports whether mnemonic parses and checksums as a
// well-formed SLIP-0039 share.
func ValidateMnemonic(mnemonic string) error {
	_, err := ShareFromMnemonic(mnemonic)
	return err
}

// ShareInfo is the human-readable projection of a share's header
// fields, with group/member indices shown 1-based for display.
type ShareInfo struct {
	Identifier        uint16
	Extendable        bool
	IterationExponent byte
	GroupIndex        byte
	GroupThreshold    byte
	GroupCount        byte
	MemberIndex       byte
	MemberThreshold   byte
}

// GetShareInfo decodes mnemonic and returns its header fields without
// attempting any recovery.
func GetShareInfo(mnemonic string) (*ShareInfo, error) {
	s, err := ShareFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	return &ShareInfo{
		Identifier:        s.Identifier,
		Extendable:        s.Extendable,
		IterationExponent: s.IterationExponent,
		GroupIndex:        s.GroupIndex + 1,
		GroupThreshold:    s.GroupThreshold,
		GroupCount:        s.GroupCount,
		MemberIndex:       s.MemberIndex + 1,
		MemberThreshold:   s.MemberThreshold,
	}, nil
}

func (si *ShareInfo) String() string {
	iterations := (2500 << uint(si.IterationExponent)) * 4
	return fmt.Sprintf(
		"Share ID: %04X\nExtendable: %v\nPBKDF2 Iterations: %d\nGroup: %d of %d (threshold %d)\nMember: %d (threshold %d)",
		si.Identifier, si.Extendable, iterations,
		si.GroupIndex, si.GroupCount, si.GroupThreshold,
		si.MemberIndex, si.MemberThreshold,
	)
}
