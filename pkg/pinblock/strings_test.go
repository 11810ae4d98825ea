// nolint:all // test package
package pinblock

import (
	"bytes"
	"errors"
	"testing"
)

func TestParsePIN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr error
	}{
		{name: "four digits", in: "1234", want: []byte{1, 2, 3, 4}},
		{name: "twelve digits", in: "123456789012", want: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2}},
		{name: "empty", in: "", wantErr: ErrInvalidArgument},
		{name: "non digit", in: "12a4", wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePIN(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePIN() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePIN() unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ParsePIN() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePAN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr error
	}{
		{
			name: "odd digit count gets pad nibble",
			in:   "4012345678909",
			want: []byte{0x40, 0x12, 0x34, 0x56, 0x78, 0x90, 0x9F},
		},
		{
			name: "even digit count",
			in:   "4111111111111111",
			want: []byte{0x41, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11},
		},
		{name: "empty", in: "", wantErr: ErrInvalidArgument},
		{name: "non digit", in: "4012x45678909", wantErr: ErrInvalidPan},
		{name: "twenty digits", in: "41111111111111111111", wantErr: ErrInvalidPan},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePAN(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePAN() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePAN() unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ParsePAN() = %X, want %X", got, tt.want)
			}
		})
	}
}

func TestPINString(t *testing.T) {
	t.Parallel()

	if got := PINString([]byte{1, 2, 3, 4, 5}); got != "12345" {
		t.Errorf("PINString() = %q, want %q", got, "12345")
	}
}
