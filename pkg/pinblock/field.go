package pinblock

// packPinField writes the control nibble, length nibble and PIN digits
// into field and sets every remaining nibble to fill. field is the
// 8-byte block for formats 0-3, or the first 8 bytes of a format 4 PIN
// field. Length validation is the codec's job; only the low 4 bits of
// the PIN length are encoded. See ISO 9564-1:2017 9.3.2.2.
func packPinField(format Format, pin []byte, fill byte, field []byte) {
	n := len(pin) & 0x0F
	fill &= 0x0F

	for i := range field {
		field[i] = fill<<4 | fill
	}

	field[0] = byte(format)<<4 | byte(n)
	for i := 0; i < n; i++ {
		if i&0x1 == 0 { // Even digit index
			// Most significant nibble
			field[(i>>1)+1] = pin[i] << 4
		} else { // Odd digit index
			// Least significant nibble
			field[(i>>1)+1] |= pin[i] & 0x0F
		}
	}

	// Restore the fill nibble clobbered by an odd final digit
	if n&0x1 == 1 {
		field[(n>>1)+1] |= fill
	}
}

// unpackPin reads n PIN digits starting at the second byte of field.
// Digits are not range-checked here; decoders that need it validate
// via checkField first.
func unpackPin(field []byte, n int) []byte {
	pin := make([]byte, n)
	for i := 0; i < n; i++ {
		if i&0x1 == 0 {
			pin[i] = field[(i>>1)+1] >> 4
		} else {
			pin[i] = field[(i>>1)+1] & 0x0F
		}
	}

	return pin
}

// panField packs the rightmost 12 PAN digits into field, right
// justified with zero fill on the left. The scan runs from the last
// PAN nibble leftward, skipping 0xF pad nibbles and the first non-pad
// nibble (the check digit). PANs with fewer than 12 remaining digits
// simply leave more leading zeros. See ISO 9564-1:2017 9.3.2.3 and 9.3.5.3.
func panField(pan []byte, field []byte) {
	for i := range field {
		field[i] = 0
	}

	panLen := len(pan)
	panIdx := 0
	fieldIdx := 0
	fieldPos := len(field) - 1
	checkDigitFound := false

	for panLen > 0 && fieldIdx < 12 {
		var digit byte
		if panIdx&0x1 == 0 { // Least significant nibble
			digit = pan[panLen-1] & 0x0F
		} else { // Most significant nibble
			digit = pan[panLen-1] >> 4
			panLen--
		}
		panIdx++

		if digit == 0x0F {
			continue
		}
		if !checkDigitFound {
			checkDigitFound = true
			continue
		}

		if fieldIdx&0x1 == 0 {
			field[fieldPos] = digit
		} else {
			field[fieldPos] |= digit << 4
			fieldPos--
		}
		fieldIdx++
	}
}

// panField128 builds the 16-byte format 4 PAN field. The leading
// nibble M records how many PAN digits beyond 12 are present; PANs of
// fewer than 13 digits go right justified into a 12-digit slot with
// M=0. Unlike the 8-byte field, the check digit is kept: only trailing
// 0xF pad nibbles are dropped. See ISO 9564-1:2017 9.4.2.
func panField128(pan []byte) ([]byte, error) {
	digits := make([]byte, 0, len(pan)*2)
	for _, b := range pan {
		digits = append(digits, b>>4, b&0x0F)
	}
	for len(digits) > 0 && digits[len(digits)-1] == 0x0F {
		digits = digits[:len(digits)-1]
	}
	if len(digits) == 0 || len(digits) > panMaxDigits {
		return nil, ErrInvalidPan
	}
	for _, d := range digits {
		if d > 9 {
			return nil, ErrInvalidPan
		}
	}

	field := make([]byte, BlockSize128)
	pos := 1 // nibble 0 is M
	if n := len(digits); n > 12 {
		field[0] = byte(n-12) << 4
	} else {
		pos += 12 - n
	}
	for _, d := range digits {
		if pos&0x1 == 0 {
			field[pos>>1] |= d << 4
		} else {
			field[pos>>1] |= d
		}
		pos++
	}

	return field, nil
}

// checkField validates a plaintext PIN field after any unmasking: PIN
// digits must be decimal and every padding nibble must satisfy fill.
// A failure means either a wrong PAN was supplied or the block was
// corrupted; the two causes cannot be told apart at this layer, since
// ISO 9564-1 specifies no authentication tag.
func checkField(field []byte, pinLen int, fill func(byte) bool) error {
	for i := 2; i < len(field)*2; i++ {
		var nb byte
		if i&0x1 == 0 {
			nb = field[i>>1] >> 4
		} else {
			nb = field[i>>1] & 0x0F
		}

		if i-2 < pinLen {
			if nb > 9 {
				return ErrIntegrityCheck
			}
		} else if !fill(nb) {
			return ErrIntegrityCheck
		}
	}

	return nil
}
