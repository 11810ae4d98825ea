// Package cryptoutils provides the binary primitives shared by the PIN
// block codecs: XOR combination, buffer zeroization and cryptographically
// secure random material.
package cryptoutils

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// XORBytes returns a^b for equal-length slices. Returns error if lengths differ.
func XORBytes(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, errors.New("xor: length mismatch")
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}

	return out, nil
}

// Zeroize overwrites b with zeros. Every buffer that held PIN digits or
// PAN-derived field data is cleared with this before it goes out of scope.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate random data: %w", err)
	}

	return buf, nil
}

// RandomNibblesAF returns n nibble values in the range 0xA to 0xF, one
// random byte consumed per nibble. The alphabet stays disjoint from
// decimal PIN digits so a decoded padding region remains verifiable.
func RandomNibblesAF(n int) ([]byte, error) {
	buf, err := RandomBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = byte(int(b)*6/256) + 0xA
	}

	return out, nil
}
