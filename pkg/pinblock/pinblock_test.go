// nolint:all // test package
package pinblock

import (
	"bytes"
	"errors"
	"testing"
)

func TestGetFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		block   []byte
		want    Format
		wantErr error
	}{
		{
			name:  "format 0",
			block: []byte{0x04, 0x12, 0x74, 0xED, 0xCB, 0xA9, 0x87, 0x6F},
			want:  Format0,
		},
		{
			name:  "format 1",
			block: []byte{0x15, 0x12, 0x34, 0x5E, 0xDC, 0xBA, 0x98, 0x76},
			want:  Format1,
		},
		{
			name:  "format 2",
			block: []byte{0x25, 0x34, 0x56, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF},
			want:  Format2,
		},
		{
			name:  "format 3",
			block: []byte{0x35, 0x12, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			want:  Format3,
		},
		{
			name: "format 4",
			block: []byte{
				0x44, 0x12, 0x34, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			want: Format4,
		},
		{
			name:    "short block",
			block:   []byte{0x04, 0x12, 0x74, 0xED, 0xCB, 0xA9, 0x87},
			wantErr: ErrUnsupportedSize,
		},
		{
			name:    "unknown control nibble",
			block:   []byte{0x94, 0x12, 0x74, 0xED, 0xCB, 0xA9, 0x87, 0x6F},
			wantErr: ErrUnsupportedFormat,
		},
		{
			name: "format 4 nibble in an 8 byte block",
			block: []byte{
				0x44, 0x12, 0x34, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA,
			},
			wantErr: ErrUnsupportedFormat,
		},
		{
			name: "8 byte nibble in a 16 byte block",
			block: []byte{
				0x04, 0x12, 0x34, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			wantErr: ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := GetFormat(tt.block)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetFormat() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetFormat() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeDispatch(t *testing.T) {
	t.Parallel()

	pin := []byte{1, 2, 3, 4, 5, 6}

	encoders := []struct {
		name   string
		format Format
		encode func() ([]byte, error)
	}{
		{"format 0", Format0, func() ([]byte, error) { return EncodeFormat0(pin, testPan) }},
		{"format 1", Format1, func() ([]byte, error) { return EncodeFormat1(pin, nil) }},
		{"format 2", Format2, func() ([]byte, error) { return EncodeFormat2(pin) }},
		{"format 3", Format3, func() ([]byte, error) { return EncodeFormat3(pin, testPan) }},
		{"format 4", Format4, func() ([]byte, error) { return EncodeFormat4PINField(pin) }},
	}

	for _, tt := range encoders {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			block, err := tt.encode()
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			format, got, err := Decode(block, testPan)
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if format != tt.format {
				t.Errorf("Decode() format = %v, want %v", format, tt.format)
			}
			if !bytes.Equal(got, pin) {
				t.Errorf("Decode() pin = %v, want %v", got, pin)
			}
		})
	}
}

func TestDecodeUnsupported(t *testing.T) {
	t.Parallel()

	if _, _, err := Decode(make([]byte, 7), nil); !errors.Is(err, ErrUnsupportedSize) {
		t.Errorf("Decode() error = %v, want %v", err, ErrUnsupportedSize)
	}
	block := []byte{0x74, 0x12, 0x34, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if _, _, err := Decode(block, nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode() error = %v, want %v", err, ErrUnsupportedFormat)
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		want   string
	}{
		{Format0, "ISO-0"},
		{Format1, "ISO-1"},
		{Format2, "ISO-2"},
		{Format3, "ISO-3"},
		{Format4, "ISO-4"},
		{Format(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.format), got, tt.want)
		}
	}
}
