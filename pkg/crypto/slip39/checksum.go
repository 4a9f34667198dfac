package slip39

// RS1024: a Reed-Solomon-style checksum over GF(1024), ten-bit symbols,
// three checksum words, with a customization string that domain-
// separates the extendable and non-extendable share formats.

const checksumWords = 3

// rs1024Gen is the fixed ten-element generator table from the
// SLIP-0039 / bech32-family RS1024 construction.
var rs1024Gen = [10]uint32{
	0x0E0E040, 0x1C1C080, 0x3838100, 0x7070200, 0x0E0E0009,
	0x1C0C2412, 0x38086C24, 0x3090FC48, 0x21B1F890, 0x3F3F120,
}

func customizationString(extendable bool) string {
	if extendable {
		return "shamir_extendable"
	}
	return "shamir"
}

func rs1024Polymod(values []uint16) uint32 {
	chk := uint32(1)
	for _, v := range values {
		b := chk >> 20
		chk = (chk&0xFFFFF)<<10 ^ uint32(v)
		for i := 0; i < 10; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= rs1024Gen[i]
			}
		}
	}
	return chk
}

// rs1024CreateChecksum returns the three checksum words for data under
// the given customization string, in on-wire order (bits 20..29,
// 10..19, 0..9).
func rs1024CreateChecksum(cs string, data []uint16) [checksumWords]uint16 {
	values := make([]uint16, 0, len(cs)+len(data)+checksumWords)
	for _, c := range cs {
		values = append(values, uint16(c))
	}
	values = append(values, data...)
	values = append(values, 0, 0, 0)

	polymod := rs1024Polymod(values) ^ 1

	var out [checksumWords]uint16
	out[0] = uint16((polymod >> 20) & 0x3FF)
	out[1] = uint16((polymod >> 10) & 0x3FF)
	out[2] = uint16(polymod & 0x3FF)
	return out
}

// rs1024Verify reports whether words (data followed by its three
// checksum words) is valid under the given customization string.
func rs1024Verify(cs string, words []uint16) bool {
	values := make([]uint16, 0, len(cs)+len(words))
	for _, c := range cs {
		values = append(values, uint16(c))
	}
	values = append(values, words...)
	return rs1024Polymod(values) == 1
}
