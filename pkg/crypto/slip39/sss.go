package slip39

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"

	"github.com/keyforge-io/slip39/pkg/secure"
)

// RandomSource is the only non-pure input SSS.split and identifier
// generation need. Production code defaults to crypto/rand.Reader;
// tests may inject a deterministic fake to reproduce fixtures
// (spec.md §9, "Randomness boundary").
type RandomSource = io.Reader

// digestX and secretX are the two x-coordinates SLIP-0039 reserves on
// every polynomial: the digest point and the secret point. Group and
// member indices live in [0,15] and therefore never collide with
// either.
const (
	digestX byte = 254
	secretX byte = 255
)

type point struct {
	x byte
	y []byte
}

// interpolate evaluates the unique degree-(len(points)-1) polynomial
// through points at x, component-wise over GF(256) (Lagrange form).
func interpolate(x byte, points []point) ([]byte, error) {
	if len(points) == 0 {
		return nil, newErr(ErrInvalidShare, "interpolate: no points given")
	}
	l := len(points[0].y)
	seen := make(map[byte]bool, len(points))
	for _, p := range points {
		if len(p.y) != l {
			return nil, newErr(ErrInvalidShare, "interpolate: mismatched share-value lengths")
		}
		if seen[p.x] {
			return nil, newErr(ErrInvalidShare, "interpolate: duplicate x-coordinate %d", p.x)
		}
		seen[p.x] = true
	}

	result := make([]byte, l)
	for k := 0; k < l; k++ {
		var sum byte
		for i, pi := range points {
			num := byte(1)
			den := byte(1)
			for j, pj := range points {
				if i == j {
					continue
				}
				num = gfMul(num, gfSub(x, pj.x))
				den = gfMul(den, gfSub(pi.x, pj.x))
			}
			ratio, err := gfDiv(num, den)
			if err != nil {
				return nil, err
			}
			sum = gfAdd(sum, gfMul(pi.y[k], ratio))
		}
		result[k] = sum
	}
	return result, nil
}

// digest computes D = HMAC-SHA256(key=r, msg=secret)[0:4] || r.
func digest(secret, r []byte) []byte {
	h := hmac.New(sha256.New, r)
	h.Write(secret)
	tag := h.Sum(nil)[:4]
	out := make([]byte, 4+len(r))
	copy(out[:4], tag)
	copy(out[4:], r)
	return out
}

// verifyDigestValue checks the digest point D against the recovered
// secret: D[:4] must equal HMAC-SHA256(key=D[4:], msg=secret)[:4].
func verifyDigestValue(secret, d []byte) bool {
	if len(d) < 4 {
		return false
	}
	r := d[4:]
	h := hmac.New(sha256.New, r)
	h.Write(secret)
	expected := h.Sum(nil)[:4]
	return hmac.Equal(d[:4], expected)
}

// sssSplit splits secret into shareCount shares recoverable by any
// threshold of them, per spec.md §4.2.2.
func sssSplit(threshold, shareCount byte, secret []byte, rnd RandomSource) ([][]byte, error) {
	if threshold == 0 || threshold > shareCount {
		return nil, newErr(ErrInvalidConfiguration, "threshold %d invalid for %d shares", threshold, shareCount)
	}
	if len(secret) < 16 || len(secret)%2 != 0 {
		return nil, newErr(ErrInvalidConfiguration, "secret must be >= 16 bytes and even length, got %d", len(secret))
	}

	if threshold == 1 {
		shares := make([][]byte, shareCount)
		for i := range shares {
			shares[i] = append([]byte(nil), secret...)
		}
		return shares, nil
	}

	n := len(secret)
	r := make([]byte, n-4)
	defer secure.Zero(r)
	if _, err := io.ReadFull(rnd, r); err != nil {
		return nil, wrapErr(ErrInvalidConfiguration, err, "failed to draw random digest share")
	}
	d := digest(secret, r)
	defer secure.Zero(d)

	points := make([]point, 0, int(threshold))
	shares := make([][]byte, shareCount)
	for i := byte(0); i < threshold-2; i++ {
		y := make([]byte, n)
		if _, err := io.ReadFull(rnd, y); err != nil {
			return nil, wrapErr(ErrInvalidConfiguration, err, "failed to draw random share %d", i)
		}
		shares[i] = y
		points = append(points, point{x: i, y: y})
	}
	points = append(points, point{x: digestX, y: d}, point{x: secretX, y: secret})

	for i := threshold - 2; i < shareCount; i++ {
		y, err := interpolate(i, points)
		if err != nil {
			return nil, err
		}
		shares[i] = y
	}
	return shares, nil
}

// sssRecover recovers the length-L secret from threshold points
// {(x, y)}, verifying the embedded digest, per spec.md §4.2.3.
func sssRecover(threshold byte, pts []point) ([]byte, error) {
	if len(pts) < int(threshold) {
		return nil, newErr(ErrInvalidShareSet, "need %d shares, have %d", threshold, len(pts))
	}
	pts = pts[:threshold]

	if threshold == 1 {
		return append([]byte(nil), pts[0].y...), nil
	}

	secret, err := interpolate(secretX, pts)
	if err != nil {
		return nil, err
	}
	d, err := interpolate(digestX, pts)
	if err != nil {
		return nil, err
	}
	if !verifyDigestValue(secret, d) {
		return nil, newErr(ErrInvalidShare, "digest mismatch on recovery")
	}
	return secret, nil
}
