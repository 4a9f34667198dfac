package slip39

import (
	"bytes"
	"testing"
)

func sampleShare(valueLen int) *Share {
	value := make([]byte, valueLen)
	for i := range value {
		value[i] = byte(i + 1)
	}
	return &Share{
		Identifier:        0x1234 & 0x7FFF,
		Extendable:        true,
		IterationExponent: 2,
		GroupIndex:        3,
		GroupThreshold:    4,
		GroupCount:        8,
		MemberIndex:       5,
		MemberThreshold:   6,
		ShareValue:        value,
	}
}

func TestEncodeDecodeRoundTripPreservesFields(t *testing.T) {
	for _, l := range []int{16, 32, 64} {
		s := sampleShare(l)
		words, err := encodeWords(s)
		if err != nil {
			t.Fatalf("encode(L=%d) failed: %v", l, err)
		}
		decoded, err := decodeWords(words)
		if err != nil {
			t.Fatalf("decode(L=%d) failed: %v", l, err)
		}
		if decoded.Identifier != s.Identifier ||
			decoded.Extendable != s.Extendable ||
			decoded.IterationExponent != s.IterationExponent ||
			decoded.GroupIndex != s.GroupIndex ||
			decoded.GroupThreshold != s.GroupThreshold ||
			decoded.GroupCount != s.GroupCount ||
			decoded.MemberIndex != s.MemberIndex ||
			decoded.MemberThreshold != s.MemberThreshold {
			t.Fatalf("header fields not preserved for L=%d: got %+v want %+v", l, decoded, s)
		}
		if !bytes.Equal(decoded.ShareValue, s.ShareValue) {
			t.Fatalf("share value not preserved for L=%d", l)
		}
	}
}

func TestMinimumShareIs20Words(t *testing.T) {
	s := sampleShare(16)
	words, err := encodeWords(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 20 {
		t.Fatalf("expected 20 words for a 16-byte share value, got %d", len(words))
	}
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	s := sampleShare(16)
	words, err := encodeWords(s)
	if err != nil {
		t.Fatal(err)
	}
	words[len(words)-1] ^= 1
	if _, err := decodeWords(words); err == nil {
		t.Fatal("expected checksum failure")
	}
}

func TestDecodeRejectsNonZeroPadding(t *testing.T) {
	s := sampleShare(16)
	words, err := encodeWords(s)
	if err != nil {
		t.Fatal(err)
	}
	// Word 4 is the first word after the 40-bit header and carries the
	// 2 padding bits in its high bits for a 16-byte share value.
	tampered := append([]uint16(nil), words...)
	tampered[4] |= 1 << 9
	cs := customizationString(s.Extendable)
	checksum := rs1024CreateChecksum(cs, tampered[:len(tampered)-checksumWords])
	copy(tampered[len(tampered)-checksumWords:], checksum[:])

	if _, err := decodeWords(tampered); err == nil {
		t.Fatal("expected error for non-zero padding bits")
	}
}
