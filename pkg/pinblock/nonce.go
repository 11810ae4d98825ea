package pinblock

import "github.com/pinlabs/pinblock/pkg/cryptoutils"

// padNibbleCount returns how many padding nibbles follow pinLen PIN
// digits in an 8-byte PIN field.
func padNibbleCount(pinLen int) int {
	return (BlockSize-1)*2 - pinLen
}

// fillPad writes padding nibble values (low 4 bits of each entry) into
// field after pinLen PIN digits, starting mid-byte when the PIN length
// is odd.
func fillPad(field []byte, pinLen int, nibbles []byte) {
	pos := 2 + pinLen
	for _, nb := range nibbles {
		if pos >= len(field)*2 {
			break
		}
		if pos&0x1 == 0 {
			field[pos>>1] = field[pos>>1]&0x0F | nb<<4
		} else {
			field[pos>>1] = field[pos>>1]&0xF0 | nb&0x0F
		}
		pos++
	}
}

// nonceNibbles reads need nibbles from the caller's nonce, consuming
// it from the last byte backward (high nibble first within each byte).
// A monotonically incrementing counter therefore contributes its
// fastest-varying bytes first, keeping successive blocks unique even
// when only the low bytes change.
func nonceNibbles(nonce []byte, need int) []byte {
	out := make([]byte, 0, need)
	for i := 0; len(out) < need; i++ {
		b := nonce[len(nonce)-1-i]
		out = append(out, b>>4)
		if len(out) < need {
			out = append(out, b&0x0F)
		}
	}

	return out
}

// randomPad fills the padding region of an 8-byte PIN field with
// CSPRNG nibbles.
func randomPad(field []byte, pinLen int) error {
	need := padNibbleCount(pinLen)
	buf, err := cryptoutils.RandomBytes((need + 1) / 2)
	if err != nil {
		return err
	}
	nibbles := make([]byte, 0, need+1)
	for _, b := range buf {
		nibbles = append(nibbles, b>>4, b&0x0F)
	}
	fillPad(field, pinLen, nibbles[:need])
	cryptoutils.Zeroize(buf)
	cryptoutils.Zeroize(nibbles)

	return nil
}

// randomPadAF fills the padding region of an 8-byte PIN field with
// CSPRNG nibbles restricted to 0xA-0xF, the format 3 alphabet that
// stays distinguishable from PIN digits after unmasking.
func randomPadAF(field []byte, pinLen int) error {
	nibbles, err := cryptoutils.RandomNibblesAF(padNibbleCount(pinLen))
	if err != nil {
		return err
	}
	fillPad(field, pinLen, nibbles)
	cryptoutils.Zeroize(nibbles)

	return nil
}
