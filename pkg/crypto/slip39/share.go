package slip39

import "strings"

// minMnemonicWords is the word count of the smallest possible share
// (L=16 bytes: 4 header + 13 padding-and-value + 3 checksum words = 20
// words, with 2 padding bits; see spec.md §4.7).
const minMnemonicWords = 20

// Share is the parsed form of a single SLIP-0039 mnemonic: one point on
// a member (or, before grouping, a group) polynomial plus the common
// header fields shared by every share in its set.
type Share struct {
	Identifier        uint16 // id, in [0, 2^15)
	Extendable        bool
	IterationExponent byte // e, in [0,16)
	GroupIndex        byte // GI, in [0,16)
	GroupThreshold    byte // GT, in [1,16]
	GroupCount        byte // G, in [1,16]
	MemberIndex       byte // I, in [0,16)
	MemberThreshold   byte // T, in [1,16]
	ShareValue        []byte
}

// Validate checks the field-range and logical-consistency invariants
// of spec.md §3. The member count of a group is not carried in the
// share encoding, so no I < N_i check is made here or in the Combiner.
func (s *Share) Validate() error {
	if s.Identifier >= 1<<15 {
		return newErr(ErrInvalidShare, "identifier %d exceeds 15 bits", s.Identifier)
	}
	if s.IterationExponent >= 16 {
		return newErr(ErrInvalidShare, "iteration exponent %d out of range [0,16)", s.IterationExponent)
	}
	if s.GroupIndex >= 16 {
		return newErr(ErrInvalidShare, "group index %d out of range [0,16)", s.GroupIndex)
	}
	if s.GroupThreshold < 1 || s.GroupThreshold > 16 {
		return newErr(ErrInvalidShare, "group threshold %d out of range [1,16]", s.GroupThreshold)
	}
	if s.GroupCount < 1 || s.GroupCount > 16 {
		return newErr(ErrInvalidShare, "group count %d out of range [1,16]", s.GroupCount)
	}
	if s.GroupThreshold > s.GroupCount {
		return newErr(ErrInvalidShare, "group threshold %d exceeds group count %d", s.GroupThreshold, s.GroupCount)
	}
	if s.GroupIndex >= s.GroupCount {
		return newErr(ErrInvalidShare, "group index %d out of range for group count %d", s.GroupIndex, s.GroupCount)
	}
	if s.MemberIndex >= 16 {
		return newErr(ErrInvalidShare, "member index %d out of range [0,16)", s.MemberIndex)
	}
	if s.MemberThreshold < 1 || s.MemberThreshold > 16 {
		return newErr(ErrInvalidShare, "member threshold %d out of range [1,16]", s.MemberThreshold)
	}
	if len(s.ShareValue) < 16 {
		return newErr(ErrInvalidShare, "share value length %d below minimum 16 bytes", len(s.ShareValue))
	}
	return nil
}

// ToMnemonic encodes the share into its canonical lowercase,
// space-separated mnemonic form.
func (s *Share) ToMnemonic() (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	words, err := encodeWords(s)
	if err != nil {
		return "", err
	}
	strs, err := indicesToWords(words)
	if err != nil {
		return "", err
	}
	return strings.Join(strs, " "), nil
}

// ShareFromMnemonic parses and checksum-verifies a mnemonic, returning
// its decoded Share. Leading/trailing whitespace and repeated internal
// whitespace are tolerated; word matching is case-insensitive.
func ShareFromMnemonic(mnemonic string) (*Share, error) {
	words := strings.Fields(mnemonic)
	if len(words) < minMnemonicWords {
		return nil, newErr(ErrInvalidShare, "mnemonic has %d words, need at least %d", len(words), minMnemonicWords)
	}
	indices, err := wordsToIndices(words)
	if err != nil {
		return nil, err
	}
	s, err := decodeWords(indices)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
