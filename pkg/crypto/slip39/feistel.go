package slip39

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/keyforge-io/slip39/pkg/secure"
	"golang.org/x/crypto/pbkdf2"
)

const feistelRounds = 4

// feistelRoundIterations returns the PBKDF2 iteration count for a
// single Feistel round: 2500 * 2^e, so that four rounds together spend
// 10000 * 2^e iterations per Generate/Combine call.
func feistelRoundIterations(e byte) int {
	return 2500 << uint(e)
}

// feistelEncrypt runs the four-round Feistel network that turns a
// master secret into its encrypted form (spec.md §4.4).
func feistelEncrypt(ms []byte, passphrase string, e byte, id uint16, ext bool) []byte {
	return feistelRun(ms, passphrase, e, id, ext, [4]int{0, 1, 2, 3})
}

// feistelDecrypt inverts feistelEncrypt by running the same rounds in
// reverse order.
func feistelDecrypt(ems []byte, passphrase string, e byte, id uint16, ext bool) []byte {
	return feistelRun(ems, passphrase, e, id, ext, [4]int{3, 2, 1, 0})
}

func feistelRun(input []byte, passphrase string, e byte, id uint16, ext bool, order [4]int) []byte {
	half := len(input) / 2
	l := append([]byte(nil), input[:half]...)
	r := append([]byte(nil), input[half:]...)

	for _, i := range order {
		f := feistelF(i, r, passphrase, e, id, ext, half)
		newL := r
		newR := make([]byte, half)
		for j := 0; j < half; j++ {
			newR[j] = l[j] ^ f[j]
		}
		secure.Zero(f)
		l, r = newL, newR
	}

	out := make([]byte, len(input))
	copy(out[:half], r)
	copy(out[half:], l)
	return out
}

// feistelF is the round function F(i, R): PBKDF2-HMAC-SHA256 keyed by
// the round index and passphrase, salted by an identifier-dependent
// prefix concatenated with R.
func feistelF(round int, r []byte, passphrase string, e byte, id uint16, ext bool, outLen int) []byte {
	salt := feistelSalt(r, id, ext)
	password := make([]byte, 1+len(passphrase))
	password[0] = byte(round)
	copy(password[1:], passphrase)
	return pbkdf2.Key(password, salt, feistelRoundIterations(e), outLen, sha256.New)
}

// feistelSalt builds "shamir" || id_be16 || R when not extendable, or
// just R when extendable (spec.md §4.4, §6).
func feistelSalt(r []byte, id uint16, ext bool) []byte {
	if ext {
		return r
	}
	salt := make([]byte, 6+2+len(r))
	copy(salt[:6], "shamir")
	binary.BigEndian.PutUint16(salt[6:8], id)
	copy(salt[8:], r)
	return salt
}
