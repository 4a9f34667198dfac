package slip39

import (
	"bytes"
	"testing"
)

func TestFeistelEncryptDecryptRoundTrip(t *testing.T) {
	ms := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10}
	for _, ext := range []bool{false, true} {
		ems := feistelEncrypt(ms, "test", 0, 12345, ext)
		if bytes.Equal(ems, ms) {
			t.Fatalf("encryption was a no-op (ext=%v)", ext)
		}
		recovered := feistelDecrypt(ems, "test", 0, 12345, ext)
		if !bytes.Equal(recovered, ms) {
			t.Fatalf("decrypt(encrypt(ms)) != ms (ext=%v)", ext)
		}
	}
}

func TestFeistelIdentifierAffectsNonExtendableSaltOnly(t *testing.T) {
	ms := bytes.Repeat([]byte{0x42}, 16)

	a := feistelEncrypt(ms, "", 0, 1, false)
	b := feistelEncrypt(ms, "", 0, 2, false)
	if bytes.Equal(a, b) {
		t.Fatal("non-extendable encryption should depend on the identifier")
	}

	c := feistelEncrypt(ms, "", 0, 1, true)
	d := feistelEncrypt(ms, "", 0, 2, true)
	if !bytes.Equal(c, d) {
		t.Fatal("extendable encryption must not depend on the identifier")
	}
}

func TestFeistelPassphraseNormalizationEquivalence(t *testing.T) {
	ms := bytes.Repeat([]byte{0x99}, 16)

	nfc := "é" // "e" + combining acute accent
	nfd, err := normalizePassphrase(nfc)
	if err != nil {
		t.Fatal(err)
	}
	precomposed, err := normalizePassphrase("é") // "é"
	if err != nil {
		t.Fatal(err)
	}
	if nfd != precomposed {
		t.Fatalf("NFKD normalization did not equate combining and precomposed forms: %q vs %q", nfd, precomposed)
	}

	a := feistelEncrypt(ms, nfd, 0, 7, true)
	b := feistelEncrypt(ms, precomposed, 0, 7, true)
	if !bytes.Equal(a, b) {
		t.Fatal("equally-normalized passphrases produced different ciphertexts")
	}
}

func TestFeistelSaltPrefix(t *testing.T) {
	r := []byte{0xAA, 0xBB}
	salt := feistelSalt(r, 0x1234&0x7FFF, false)
	if string(salt[:6]) != "shamir" {
		t.Fatalf("expected salt prefix 'shamir', got %q", salt[:6])
	}
	if salt[6] != 0x12 || salt[7] != 0x34 {
		t.Fatalf("expected big-endian identifier bytes, got %x %x", salt[6], salt[7])
	}

	extSalt := feistelSalt(r, 0x1234, true)
	if !bytes.Equal(extSalt, r) {
		t.Fatal("extendable salt must be R with no prefix")
	}
}
