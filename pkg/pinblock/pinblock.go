// Package pinblock implements ISO 9564-1:2017 PIN block formats 0 to 4.
//
// The package only produces and consumes the plaintext PIN block
// structures; enciphering them is the caller's responsibility. For
// format 4 the caller enciphers the PIN field together with the PAN
// field and hands the deciphered plaintext PIN field back for decoding.
//
// PINs are passed as one digit value per byte (0-9), 4 to 12 digits.
// PANs are passed in compressed numeric form (EMV format "cn": nibble
// per digit, left justified, padded with trailing 0xF nibbles), the
// same layout as EMV field 5A.
package pinblock

import "errors"

// Format identifies an ISO 9564-1:2017 PIN block format.
type Format int

// PIN block formats. See ISO 9564-1:2017 9.3.
const (
	Format0 Format = iota // PAN-masked, 0xF fill
	Format1               // unique nonce padding, unmasked
	Format2               // 0xF fill, unmasked
	Format3               // PAN-masked, random 0xA-0xF fill
	Format4               // 128-bit PIN field for AES encipherment
)

// PIN block sizes in bytes.
const (
	BlockSize    = 8  // formats 0 to 3
	BlockSize128 = 16 // format 4 PIN field and PAN field
)

const (
	minPinLen    = 4
	maxPinLen    = 12
	panMaxDigits = 19
)

var (
	ErrInvalidArgument   = errors.New("pinblock: nil or empty argument")
	ErrInvalidPinLength  = errors.New("pinblock: pin must be 4 to 12 digits")
	ErrInvalidPan        = errors.New("pinblock: invalid pan")
	ErrUnsupportedSize   = errors.New("pinblock: unsupported pin block size")
	ErrWrongFormat       = errors.New("pinblock: wrong pin block format")
	ErrUnsupportedFormat = errors.New("pinblock: unsupported pin block format")
	ErrIntegrityCheck    = errors.New("pinblock: pin block integrity check failed")
	ErrNonceTooShort     = errors.New("pinblock: nonce shorter than padding capacity")
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case Format0:
		return "ISO-0"
	case Format1:
		return "ISO-1"
	case Format2:
		return "ISO-2"
	case Format3:
		return "ISO-3"
	case Format4:
		return "ISO-4"
	default:
		return "unknown"
	}
}

// GetFormat reports the format of a PIN block from its size and the
// control field in the first four bits. See ISO 9564-1:2017 9.3.1.
// Formats 0-3 occupy 8 bytes, format 4 fields occupy 16 bytes; any
// other size is rejected before the control nibble is inspected.
func GetFormat(block []byte) (Format, error) {
	switch len(block) {
	case BlockSize:
		switch f := Format(block[0] >> 4); f {
		case Format0, Format1, Format2, Format3:
			return f, nil
		}
	case BlockSize128:
		if Format(block[0]>>4) == Format4 {
			return Format4, nil
		}
	default:
		return 0, ErrUnsupportedSize
	}

	return 0, ErrUnsupportedFormat
}

// Decode determines the format of block and routes to the matching
// format decoder. other carries the PAN for formats 0 and 3 and is
// ignored by formats 1, 2 and 4. For format 4, block must be the
// deciphered plaintext PIN field. The returned PIN is a fresh buffer
// owned by the caller, who should zeroize it after use.
func Decode(block, other []byte) (Format, []byte, error) {
	format, err := GetFormat(block)
	if err != nil {
		return 0, nil, err
	}

	var pin []byte
	switch format {
	case Format0:
		pin, err = DecodeFormat0(block, other)
	case Format1:
		pin, err = DecodeFormat1(block)
	case Format2:
		pin, err = DecodeFormat2(block)
	case Format3:
		pin, err = DecodeFormat3(block, other)
	case Format4:
		pin, err = DecodeFormat4PINField(block)
	}
	if err != nil {
		return 0, nil, err
	}

	return format, pin, nil
}
