package server

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pinlabs/pinblock/internal/errorcodes"
	"github.com/pinlabs/pinblock/pkg/cryptoutils"
	"github.com/pinlabs/pinblock/pkg/pinblock"
)

// Host command layout. All fields are ASCII.
//
//	EB: encode a PIN block.
//	    <format 0-4><pin length NN><pin digits>[<pan digits> | <nonce hex>]
//	    response body: pin block in uppercase hex; format 4 appends the
//	    PAN field hex when pan digits were supplied.
//	DB: decode a PIN block.
//	    <hex length NN, 16 or 32><pin block hex>[<pan digits>]
//	    response body: <format digit><pin length NN><pin digits>
//	QB: report the format of a PIN block.
//	    <hex length NN, 16 or 32><pin block hex>
//	    response body: <format digit>
func execute(cmd string, payload []byte) ([]byte, errorcodes.ResponseError) {
	switch cmd {
	case "EB":
		return executeEncode(payload)
	case "DB":
		return executeDecode(payload)
	case "QB":
		return executeFormat(payload)
	default:
		return nil, errorcodes.Err68
	}
}

// parseDec2 reads a two-digit decimal field.
func parseDec2(b []byte) (int, bool) {
	if len(b) < 2 || b[0] < '0' || b[0] > '9' || b[1] < '0' || b[1] > '9' {
		return 0, false
	}

	return int(b[0]-'0')*10 + int(b[1]-'0'), true
}

func executeEncode(payload []byte) ([]byte, errorcodes.ResponseError) {
	if len(payload) < 3 {
		return nil, errorcodes.Err80
	}
	if payload[0] < '0' || payload[0] > '4' {
		return nil, errorcodes.Err23
	}
	format := pinblock.Format(payload[0] - '0')

	pinLen, ok := parseDec2(payload[1:3])
	if !ok {
		return nil, errorcodes.Err15
	}
	if len(payload) < 3+pinLen {
		return nil, errorcodes.Err80
	}

	pin, err := pinblock.ParsePIN(string(payload[3 : 3+pinLen]))
	if err != nil {
		return nil, errorcodes.FromError(err)
	}
	defer cryptoutils.Zeroize(pin)
	rest := string(payload[3+pinLen:])

	var block []byte
	switch format {
	case pinblock.Format0, pinblock.Format3:
		if rest == "" {
			return nil, errorcodes.Err22
		}
		pan, perr := pinblock.ParsePAN(rest)
		if perr != nil {
			return nil, errorcodes.FromError(perr)
		}
		if format == pinblock.Format0 {
			block, err = pinblock.EncodeFormat0(pin, pan)
		} else {
			block, err = pinblock.EncodeFormat3(pin, pan)
		}
	case pinblock.Format1:
		var nonce []byte
		if rest != "" {
			nonce, err = hex.DecodeString(rest)
			if err != nil {
				return nil, errorcodes.Err15
			}
		}
		block, err = pinblock.EncodeFormat1(pin, nonce)
	case pinblock.Format2:
		block, err = pinblock.EncodeFormat2(pin)
	case pinblock.Format4:
		block, err = pinblock.EncodeFormat4PINField(pin)
		if err == nil && rest != "" {
			var pan, panfield []byte
			pan, err = pinblock.ParsePAN(rest)
			if err == nil {
				panfield, err = pinblock.EncodeFormat4PANField(pan)
				block = append(block, panfield...)
			}
		}
	}
	if err != nil {
		return nil, errorcodes.FromError(err)
	}
	defer cryptoutils.Zeroize(block)

	return []byte(strings.ToUpper(hex.EncodeToString(block))), errorcodes.Err00
}

func executeDecode(payload []byte) ([]byte, errorcodes.ResponseError) {
	hexLen, ok := parseDec2(payload)
	if !ok {
		return nil, errorcodes.Err15
	}
	if hexLen != pinblock.BlockSize*2 && hexLen != pinblock.BlockSize128*2 {
		return nil, errorcodes.Err80
	}
	if len(payload) < 2+hexLen {
		return nil, errorcodes.Err80
	}

	block, err := hex.DecodeString(string(payload[2 : 2+hexLen]))
	if err != nil {
		return nil, errorcodes.Err15
	}
	defer cryptoutils.Zeroize(block)

	var pan []byte
	if rest := string(payload[2+hexLen:]); rest != "" {
		pan, err = pinblock.ParsePAN(rest)
		if err != nil {
			return nil, errorcodes.FromError(err)
		}
	}

	format, pin, err := pinblock.Decode(block, pan)
	if err != nil {
		return nil, errorcodes.FromError(err)
	}
	defer cryptoutils.Zeroize(pin)

	body := fmt.Sprintf("%c%02d%s", '0'+int(format), len(pin), pinblock.PINString(pin))

	return []byte(body), errorcodes.Err00
}

func executeFormat(payload []byte) ([]byte, errorcodes.ResponseError) {
	hexLen, ok := parseDec2(payload)
	if !ok {
		return nil, errorcodes.Err15
	}
	if len(payload) < 2+hexLen {
		return nil, errorcodes.Err80
	}

	block, err := hex.DecodeString(string(payload[2 : 2+hexLen]))
	if err != nil {
		return nil, errorcodes.Err15
	}

	format, err := pinblock.GetFormat(block)
	if err != nil {
		return nil, errorcodes.FromError(err)
	}

	return []byte{byte('0' + int(format))}, errorcodes.Err00
}
