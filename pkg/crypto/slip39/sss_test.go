package slip39

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestSSSSplitRecoverRoundTrip(t *testing.T) {
	lengths := []int{16, 32, 64}
	for _, l := range lengths {
		for threshold := byte(1); threshold <= 16; threshold++ {
			for count := threshold; count <= 16; count++ {
				secret := make([]byte, l)
				if _, err := rand.Read(secret); err != nil {
					t.Fatal(err)
				}

				shares, err := sssSplit(threshold, count, secret, rand.Reader)
				if err != nil {
					t.Fatalf("split(T=%d,N=%d,L=%d) failed: %v", threshold, count, l, err)
				}
				if len(shares) != int(count) {
					t.Fatalf("expected %d shares, got %d", count, len(shares))
				}

				pts := make([]point, 0, threshold)
				for i := byte(0); i < threshold; i++ {
					pts = append(pts, point{x: i, y: shares[i]})
				}
				recovered, err := sssRecover(threshold, pts)
				if err != nil {
					t.Fatalf("recover(T=%d,N=%d,L=%d) failed: %v", threshold, count, l, err)
				}
				if !bytes.Equal(recovered, secret) {
					t.Fatalf("recovered secret mismatch for T=%d N=%d L=%d", threshold, count, l)
				}
			}
		}
	}
}

func TestSSSCorruptedShareFailsDigest(t *testing.T) {
	secret := bytes.Repeat([]byte{0xAB}, 32)
	shares, err := sssSplit(3, 5, secret, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	corrupted := append([]byte(nil), shares[0]...)
	corrupted[0] ^= 0xFF

	pts := []point{
		{x: 0, y: corrupted},
		{x: 1, y: shares[1]},
		{x: 2, y: shares[2]},
	}
	if _, err := sssRecover(3, pts); err == nil {
		t.Fatal("expected digest mismatch error for corrupted share")
	}
}

func TestSSSThresholdOneReturnsSecretVerbatim(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 16)
	shares, err := sssSplit(1, 4, secret, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range shares {
		if !bytes.Equal(s, secret) {
			t.Fatal("threshold-1 shares must equal the secret exactly")
		}
	}
}

func TestInterpolateRejectsDuplicateX(t *testing.T) {
	pts := []point{
		{x: 1, y: []byte{1, 2}},
		{x: 1, y: []byte{3, 4}},
	}
	if _, err := interpolate(0, pts); err == nil {
		t.Fatal("expected error for duplicate x-coordinates")
	}
}

func TestInterpolateRejectsMismatchedLengths(t *testing.T) {
	pts := []point{
		{x: 1, y: []byte{1, 2}},
		{x: 2, y: []byte{3}},
	}
	if _, err := interpolate(0, pts); err == nil {
		t.Fatal("expected error for mismatched y lengths")
	}
}

func TestInterpolateRejectsEmpty(t *testing.T) {
	if _, err := interpolate(0, nil); err == nil {
		t.Fatal("expected error for empty points")
	}
}
