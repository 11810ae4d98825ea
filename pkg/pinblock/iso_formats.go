package pinblock

import "github.com/pinlabs/pinblock/pkg/cryptoutils"

func validatePin(pin []byte) error {
	if len(pin) == 0 {
		return ErrInvalidArgument
	}
	if len(pin) < minPinLen || len(pin) > maxPinLen {
		return ErrInvalidPinLength
	}

	return nil
}

func isFillF(nb byte) bool { return nb == 0x0F }

func isFillAF(nb byte) bool { return nb >= 0x0A }

func isFillA(nb byte) bool { return nb == 0x0A }

// EncodeFormat0 encodes pin as a format 0 PIN block: a 0xF-filled PIN
// field XORed with the PAN field. See ISO 9564-1:2017 9.3.2.
func EncodeFormat0(pin, pan []byte) ([]byte, error) {
	if err := validatePin(pin); err != nil {
		return nil, err
	}
	if len(pan) == 0 {
		return nil, ErrInvalidArgument
	}

	pinfield := make([]byte, BlockSize)
	panfield := make([]byte, BlockSize)
	defer cryptoutils.Zeroize(pinfield)
	defer cryptoutils.Zeroize(panfield)

	packPinField(Format0, pin, 0xF, pinfield)
	panField(pan, panfield)

	return cryptoutils.XORBytes(pinfield, panfield)
}

// DecodeFormat0 recovers the PIN from a format 0 PIN block using the
// same PAN it was encoded with. The post-unmask consistency checks
// (control and length byte unchanged, decimal PIN digits, 0xF fill)
// are the only defense against a wrong PAN or a corrupted block.
func DecodeFormat0(block, pan []byte) ([]byte, error) {
	if len(block) == 0 || len(pan) == 0 {
		return nil, ErrInvalidArgument
	}
	if len(block) != BlockSize {
		return nil, ErrUnsupportedSize
	}
	if Format(block[0]>>4) != Format0 {
		return nil, ErrWrongFormat
	}
	n := int(block[0] & 0x0F)
	if n < minPinLen || n > maxPinLen {
		return nil, ErrInvalidPinLength
	}

	panfield := make([]byte, BlockSize)
	defer cryptoutils.Zeroize(panfield)
	panField(pan, panfield)

	pinfield, err := cryptoutils.XORBytes(block, panfield)
	if err != nil {
		return nil, err
	}
	defer cryptoutils.Zeroize(pinfield)

	// The PAN field never overlaps the control and length nibbles.
	if pinfield[0] != block[0] {
		return nil, ErrIntegrityCheck
	}
	if err := checkField(pinfield, n, isFillF); err != nil {
		return nil, err
	}

	return unpackPin(pinfield, n), nil
}

// EncodeFormat1 encodes pin as a format 1 PIN block padded with unique
// transaction data. When nonce is empty, CSPRNG padding is generated.
// A caller-supplied nonce (for example a transaction counter) is
// consumed from its end backward and must cover the remaining block
// capacity. See ISO 9564-1:2017 9.3.3.
func EncodeFormat1(pin, nonce []byte) ([]byte, error) {
	if err := validatePin(pin); err != nil {
		return nil, err
	}

	block := make([]byte, BlockSize)
	packPinField(Format1, pin, 0x0, block)

	if len(nonce) > 0 {
		if len(nonce) < BlockSize-1-len(pin)/2 {
			cryptoutils.Zeroize(block)
			return nil, ErrNonceTooShort
		}
		fillPad(block, len(pin), nonceNibbles(nonce, padNibbleCount(len(pin))))
	} else if err := randomPad(block, len(pin)); err != nil {
		cryptoutils.Zeroize(block)
		return nil, err
	}

	return block, nil
}

// DecodeFormat1 recovers the PIN from a format 1 PIN block. The
// padding is arbitrary by construction, so beyond the control nibble
// and length field nothing can be validated.
func DecodeFormat1(block []byte) ([]byte, error) {
	if len(block) == 0 {
		return nil, ErrInvalidArgument
	}
	if len(block) != BlockSize {
		return nil, ErrUnsupportedSize
	}
	if Format(block[0]>>4) != Format1 {
		return nil, ErrWrongFormat
	}
	n := int(block[0] & 0x0F)
	if n < minPinLen || n > maxPinLen {
		return nil, ErrInvalidPinLength
	}

	return unpackPin(block, n), nil
}

// EncodeFormat2 encodes pin as a format 2 PIN block: 0xF fill, no
// masking. Intended for local offline use, such as submission to an
// ICC. See ISO 9564-1:2017 9.3.4.
func EncodeFormat2(pin []byte) ([]byte, error) {
	if err := validatePin(pin); err != nil {
		return nil, err
	}

	block := make([]byte, BlockSize)
	packPinField(Format2, pin, 0xF, block)

	return block, nil
}

// DecodeFormat2 recovers the PIN from a format 2 PIN block, verifying
// that the digits are decimal and the fill is 0xF.
func DecodeFormat2(block []byte) ([]byte, error) {
	if len(block) == 0 {
		return nil, ErrInvalidArgument
	}
	if len(block) != BlockSize {
		return nil, ErrUnsupportedSize
	}
	if Format(block[0]>>4) != Format2 {
		return nil, ErrWrongFormat
	}
	n := int(block[0] & 0x0F)
	if n < minPinLen || n > maxPinLen {
		return nil, ErrInvalidPinLength
	}
	if err := checkField(block, n, isFillF); err != nil {
		return nil, err
	}

	return unpackPin(block, n), nil
}

// EncodeFormat3 encodes pin as a format 3 PIN block: random 0xA-0xF
// fill digits, then XORed with the PAN field. See ISO 9564-1:2017 9.3.5.
func EncodeFormat3(pin, pan []byte) ([]byte, error) {
	if err := validatePin(pin); err != nil {
		return nil, err
	}
	if len(pan) == 0 {
		return nil, ErrInvalidArgument
	}

	pinfield := make([]byte, BlockSize)
	panfield := make([]byte, BlockSize)
	defer cryptoutils.Zeroize(pinfield)
	defer cryptoutils.Zeroize(panfield)

	packPinField(Format3, pin, 0x0, pinfield)
	if err := randomPadAF(pinfield, len(pin)); err != nil {
		return nil, err
	}
	panField(pan, panfield)

	return cryptoutils.XORBytes(pinfield, panfield)
}

// DecodeFormat3 recovers the PIN from a format 3 PIN block using the
// same PAN it was encoded with. After unmasking, the PIN digits must
// be decimal and every fill digit must fall in 0xA-0xF.
func DecodeFormat3(block, pan []byte) ([]byte, error) {
	if len(block) == 0 || len(pan) == 0 {
		return nil, ErrInvalidArgument
	}
	if len(block) != BlockSize {
		return nil, ErrUnsupportedSize
	}
	if Format(block[0]>>4) != Format3 {
		return nil, ErrWrongFormat
	}
	n := int(block[0] & 0x0F)
	if n < minPinLen || n > maxPinLen {
		return nil, ErrInvalidPinLength
	}

	panfield := make([]byte, BlockSize)
	defer cryptoutils.Zeroize(panfield)
	panField(pan, panfield)

	pinfield, err := cryptoutils.XORBytes(block, panfield)
	if err != nil {
		return nil, err
	}
	defer cryptoutils.Zeroize(pinfield)

	if pinfield[0] != block[0] {
		return nil, ErrIntegrityCheck
	}
	if err := checkField(pinfield, n, isFillAF); err != nil {
		return nil, err
	}

	return unpackPin(pinfield, n), nil
}

// EncodeFormat4PINField builds the plaintext 16-byte format 4 PIN
// field: control and length nibbles, PIN digits, 0xA fill up to the
// eighth byte and CSPRNG filler beyond it. The caller enciphers this
// together with the PAN field from EncodeFormat4PANField; the cipher
// step is outside this package. See ISO 9564-1:2017 9.4.2.
func EncodeFormat4PINField(pin []byte) ([]byte, error) {
	if err := validatePin(pin); err != nil {
		return nil, err
	}

	field := make([]byte, BlockSize128)
	packPinField(Format4, pin, 0xA, field[:BlockSize])

	rnd, err := cryptoutils.RandomBytes(BlockSize)
	if err != nil {
		cryptoutils.Zeroize(field)
		return nil, err
	}
	copy(field[BlockSize:], rnd)
	cryptoutils.Zeroize(rnd)

	return field, nil
}

// EncodeFormat4PANField builds the 16-byte format 4 PAN field with the
// embedded length indicator M. Unlike formats 0 and 3, the check digit
// is part of the field.
func EncodeFormat4PANField(pan []byte) ([]byte, error) {
	if len(pan) == 0 {
		return nil, ErrInvalidArgument
	}

	return panField128(pan)
}

// DecodeFormat4PINField recovers the PIN from a deciphered plaintext
// format 4 PIN field. The 0xA fill between the last PIN digit and the
// random filler half is verified; the random half cannot be.
func DecodeFormat4PINField(field []byte) ([]byte, error) {
	if len(field) == 0 {
		return nil, ErrInvalidArgument
	}
	if len(field) != BlockSize128 {
		return nil, ErrUnsupportedSize
	}
	if Format(field[0]>>4) != Format4 {
		return nil, ErrWrongFormat
	}
	n := int(field[0] & 0x0F)
	if n < minPinLen || n > maxPinLen {
		return nil, ErrInvalidPinLength
	}
	if err := checkField(field[:BlockSize], n, isFillA); err != nil {
		return nil, err
	}

	return unpackPin(field, n), nil
}
