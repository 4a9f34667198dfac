package slip39

import "math/big"

// Bit layout (spec.md §4.7), all fields big-endian within the stream:
//
//	id(15) ext(1) e(4) GI(4) GT-1(4) G-1(4) I(4) T-1(4)   <- 40-bit header
//	padding(P, zero)                                       <- P in [0,10)
//	share_value(8*L)
//	checksum(30)
//
// W = ceil((40 + 8*L + 30) / 10) ten-bit words are produced; the first
// four words are always exactly the header, the last three are always
// exactly the checksum, regardless of L.

const headerWords = 4

// encodeWords packs s (with shareValue already set) into its W-word
// sequence, computing the RS1024 checksum over the header+padding+
// value words.
func encodeWords(s *Share) ([]uint16, error) {
	l := len(s.ShareValue)
	dataWordCount, padding, err := shareWordLayout(l)
	if err != nil {
		return nil, err
	}

	header := shareHeaderBits(s)

	val := new(big.Int).SetUint64(header)
	val.Lsh(val, uint(padding))
	val.Lsh(val, uint(8*l))
	val.Or(val, new(big.Int).SetBytes(s.ShareValue))

	dataBits := 10 * dataWordCount
	dataWords := bigIntToWords(val, dataBits/10)

	cs := customizationString(s.Extendable)
	checksum := rs1024CreateChecksum(cs, dataWords)

	out := make([]uint16, 0, dataWordCount+checksumWords)
	out = append(out, dataWords...)
	out = append(out, checksum[:]...)
	return out, nil
}

// decodeWords parses a W-word sequence into a Share, verifying the
// RS1024 checksum and the zero-padding invariant.
func decodeWords(words []uint16) (*Share, error) {
	if len(words) < headerWords+checksumWords {
		return nil, newErr(ErrInvalidShare, "share has %d words, need at least %d", len(words), headerWords+checksumWords)
	}

	header := wordsToUint64(words[:headerWords], 40)
	ext := (header>>24)&1 == 1

	cs := customizationString(ext)
	if !rs1024Verify(cs, words) {
		return nil, newErr(ErrInvalidChecksum, "RS1024 checksum verification failed")
	}

	dataWordCount := len(words) - checksumWords
	l, padding, err := solveShareValueLength(dataWordCount)
	if err != nil {
		return nil, err
	}

	valueWords := words[headerWords:dataWordCount]
	valueInt := wordsToBigInt(valueWords)
	valueBits := len(valueWords) * 10

	shareBits := 8 * l
	paddingVal := new(big.Int).Rsh(valueInt, uint(shareBits))
	if paddingVal.Sign() != 0 {
		return nil, newErr(ErrInvalidShare, "non-zero padding bits")
	}
	_ = valueBits - padding - shareBits // == 0, by construction of solveShareValueLength

	mask := new(big.Int).Lsh(big.NewInt(1), uint(shareBits))
	mask.Sub(mask, big.NewInt(1))
	shareInt := new(big.Int).And(valueInt, mask)

	shareValue := make([]byte, l)
	shareInt.FillBytes(shareValue)

	s := &Share{
		Identifier:        uint16((header >> 25) & 0x7FFF),
		Extendable:        ext,
		IterationExponent: byte((header >> 20) & 0xF),
		GroupIndex:        byte((header >> 16) & 0xF),
		GroupThreshold:    byte((header>>12)&0xF) + 1,
		GroupCount:        byte((header>>8)&0xF) + 1,
		MemberIndex:       byte((header >> 4) & 0xF),
		MemberThreshold:   byte(header&0xF) + 1,
		ShareValue:        shareValue,
	}
	return s, nil
}

// shareHeaderBits packs the 40-bit header into the low 40 bits of a
// uint64.
func shareHeaderBits(s *Share) uint64 {
	var h uint64
	h |= uint64(s.Identifier&0x7FFF) << 25
	if s.Extendable {
		h |= 1 << 24
	}
	h |= uint64(s.IterationExponent&0xF) << 20
	h |= uint64(s.GroupIndex&0xF) << 16
	h |= uint64((s.GroupThreshold-1)&0xF) << 12
	h |= uint64((s.GroupCount-1)&0xF) << 8
	h |= uint64(s.MemberIndex&0xF) << 4
	h |= uint64((s.MemberThreshold - 1) & 0xF)
	return h
}

// shareWordLayout returns the number of data words (header+padding+
// value, i.e. everything but the checksum) and the padding bit count
// for a share value of l bytes.
func shareWordLayout(l int) (dataWordCount, padding int, err error) {
	contentBits := 40 + 8*l + 30
	w := (contentBits + 9) / 10
	padding = 10*w - contentBits
	dataWordCount = w - checksumWords
	if padding < 0 || padding >= 10 {
		return 0, 0, newErr(ErrInvalidShare, "internal: padding %d out of range for share length %d", padding, l)
	}
	return dataWordCount, padding, nil
}

// solveShareValueLength inverts shareWordLayout: given the number of
// data words (total words minus the 3 checksum words), recover the
// share-value byte length and padding bit count. Per spec.md §4.7 /
// §9, content strictly increases with l so the mapping from word
// count to (l, padding) is unique; this iterates the (at most ten)
// admissible padding values rather than trusting a closed form.
func solveShareValueLength(dataWordCount int) (l, padding int, err error) {
	dataBits := 10 * dataWordCount
	for p := 0; p < 10; p++ {
		rem := dataBits - 40 - p
		if rem < 0 {
			continue
		}
		if rem%8 != 0 {
			continue
		}
		candidate := rem / 8
		if candidate >= 16 && candidate%2 == 0 {
			return candidate, p, nil
		}
	}
	return 0, 0, newErr(ErrInvalidShare, "cannot determine share-value length from %d data words", dataWordCount)
}

// bigIntToWords extracts the n most-significant 10-bit words of v,
// treating v as an (n*10)-bit big-endian bitstring.
func bigIntToWords(v *big.Int, n int) []uint16 {
	words := make([]uint16, n)
	tmp := new(big.Int).Set(v)
	mask := big.NewInt(0x3FF)
	for i := n - 1; i >= 0; i-- {
		w := new(big.Int).And(tmp, mask)
		words[i] = uint16(w.Uint64())
		tmp.Rsh(tmp, 10)
	}
	return words
}

// wordsToBigInt packs a sequence of 10-bit words into a single
// big-endian big.Int.
func wordsToBigInt(words []uint16) *big.Int {
	v := new(big.Int)
	for _, w := range words {
		v.Lsh(v, 10)
		v.Or(v, big.NewInt(int64(w)))
	}
	return v
}

// wordsToUint64 packs the first bits/10 words of words into the low
// bits bits of a uint64 (used only for the fixed 40-bit header, which
// always fits comfortably).
func wordsToUint64(words []uint16, bits int) uint64 {
	var v uint64
	for _, w := range words {
		v = v<<10 | uint64(w)
	}
	_ = bits
	return v
}
