package pinblock

import "fmt"

// ParsePIN converts a decimal PIN string into one digit value per byte.
// Length is validated by the codecs, not here.
func ParsePIN(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidArgument
	}
	pin := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("pin contains non-digit characters: %w", ErrInvalidArgument)
		}
		pin[i] = s[i] - '0'
	}

	return pin, nil
}

// ParsePAN converts a PAN digit string into compressed numeric form:
// two digits per byte, left justified, a trailing 0xF pad nibble when
// the digit count is odd.
func ParsePAN(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidArgument
	}
	if len(s) > panMaxDigits {
		return nil, ErrInvalidPan
	}
	pan := make([]byte, (len(s)+1)/2)
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("pan contains non-digit characters: %w", ErrInvalidPan)
		}
		d := s[i] - '0'
		if i&0x1 == 0 {
			pan[i>>1] = d << 4
		} else {
			pan[i>>1] |= d
		}
	}
	if len(s)&0x1 == 1 {
		pan[len(pan)-1] |= 0x0F
	}

	return pan, nil
}

// PINString renders PIN digit values as a decimal string.
func PINString(pin []byte) string {
	out := make([]byte, len(pin))
	for i, d := range pin {
		out[i] = '0' + d
	}

	return string(out)
}
