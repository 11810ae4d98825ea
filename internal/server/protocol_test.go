package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pinlabs/pinblock/internal/errorcodes"
)

func TestExecuteEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  string
		wantBody string
		wantCode errorcodes.ResponseError
	}{
		{
			name:     "format 0 with pan",
			payload:  "0041234" + "4012345678909",
			wantBody: "041274EDCBA9876F",
			wantCode: errorcodes.Err00,
		},
		{
			name:     "format 1 with nonce",
			payload:  "10512345" + "9A33C56F87A9CBED",
			wantBody: "1512345EDCBA9876",
			wantCode: errorcodes.Err00,
		},
		{
			name:     "format 2",
			payload:  "20534567",
			wantBody: "2534567FFFFFFFFF",
			wantCode: errorcodes.Err00,
		},
		{
			name:     "unknown format",
			payload:  "90412344012345678909",
			wantCode: errorcodes.Err23,
		},
		{
			name:     "missing pan for format 0",
			payload:  "0041234",
			wantCode: errorcodes.Err22,
		},
		{
			name:     "pin shorter than declared",
			payload:  "01212",
			wantCode: errorcodes.Err80,
		},
		{
			name:     "pin outside 4 to 12 digits",
			payload:  "003123" + "4012345678909",
			wantCode: errorcodes.Err24,
		},
		{
			name:     "truncated payload",
			payload:  "0",
			wantCode: errorcodes.Err80,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			body, code := execute("EB", []byte(tt.payload))
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode == errorcodes.Err00 {
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestExecuteEncodeFormat4(t *testing.T) {
	t.Parallel()

	body, code := execute("EB", []byte("4041234"+"4111111111111111"))
	assert.Equal(t, errorcodes.Err00, code)
	// PIN field hex plus PAN field hex.
	assert.Len(t, body, 64)
	assert.Equal(t, "441234", string(body[:6]))
	assert.Equal(t, "44111111111111111000000000000000", string(body[32:]))
}

func TestExecuteDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  string
		wantBody string
		wantCode errorcodes.ResponseError
	}{
		{
			name:     "format 0 with pan",
			payload:  "16" + "041274EDCBA9876F" + "4012345678909",
			wantBody: "0041234",
			wantCode: errorcodes.Err00,
		},
		{
			name:     "format 2",
			payload:  "16" + "2534567FFFFFFFFF",
			wantBody: "20534567",
			wantCode: errorcodes.Err00,
		},
		{
			name:     "wrong pan",
			payload:  "16" + "041274EDCBA9876F" + "4022345678909",
			wantCode: errorcodes.Err20,
		},
		{
			name:     "unsupported length field",
			payload:  "14" + "041274EDCBA987",
			wantCode: errorcodes.Err80,
		},
		{
			name:     "bad hex",
			payload:  "16" + "ZZ1274EDCBA9876F",
			wantCode: errorcodes.Err15,
		},
		{
			name:     "unknown control nibble",
			payload:  "16" + "941274EDCBA9876F",
			wantCode: errorcodes.Err23,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			body, code := execute("DB", []byte(tt.payload))
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode == errorcodes.Err00 {
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestExecuteFormat(t *testing.T) {
	t.Parallel()

	body, code := execute("QB", []byte("16"+"2534567FFFFFFFFF"))
	assert.Equal(t, errorcodes.Err00, code)
	assert.Equal(t, "2", string(body))

	_, code = execute("QB", []byte("14"+"2534567FFFFFFF"))
	assert.Equal(t, errorcodes.Err80, code)
}

func TestExecuteUnknownCommand(t *testing.T) {
	t.Parallel()

	_, code := execute("ZZ", nil)
	assert.Equal(t, errorcodes.Err68, code)
}

func TestIncrementCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EC", incrementCode("EB"))
	assert.Equal(t, "DC", incrementCode("DB"))
	assert.Equal(t, "ZA", incrementCode("ZZ"))
	assert.Equal(t, "E", incrementCode("E"))
}
