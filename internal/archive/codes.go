package archive

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ndewijer/numfmt/internal/apperrors"
)

// SerializeCodes writes the code table as
//
//	u8 count | count × (u8 symbol, u8 codeLen, u8 byteLen, byteLen bytes)
//
// where the trailing bytes hold the code as a big-endian integer. A full table of 256
// entries is written with count 0, which is unambiguous because an empty table has no body.
// Codes longer than 255 bits do not fit the length byte and fail with
// apperrors.ErrEntryTooLarge.
func SerializeCodes(codes CodeTable) ([]byte, error) {
	symbols := make([]byte, 0, len(codes))
	for s := range codes {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	out := []byte{byte(len(codes))}
	for _, s := range symbols {
		code := codes[s]
		if len(code) > math.MaxUint8 {
			return nil, fmt.Errorf("%w: code for symbol %d is %d bits, limit is %d",
				apperrors.ErrEntryTooLarge, s, len(code), math.MaxUint8)
		}
		packed := packCode(code)
		out = append(out, s, byte(len(code)), byte(len(packed)))
		out = append(out, packed...)
	}
	return out, nil
}

// DeserializeCodes reads a code table written by SerializeCodes and returns it with the
// number of bytes consumed. A truncated table yields the entries read so far.
func DeserializeCodes(data []byte) (CodeTable, int) {
	codes := make(CodeTable)
	if len(data) == 0 {
		return codes, 0
	}

	count := int(data[0])
	if count == 0 && len(data) > 1 {
		count = 256
	}

	pos := 1
	for j := 0; j < count; j++ {
		if pos+3 > len(data) {
			break
		}
		symbol, codeLen, byteLen := data[pos], int(data[pos+1]), int(data[pos+2])
		pos += 3

		if pos+byteLen > len(data) {
			break
		}
		codes[symbol] = unpackCode(data[pos:pos+byteLen], codeLen)
		pos += byteLen
	}
	return codes, pos
}

// packCode stores a bit string right-aligned in the fewest whole bytes.
func packCode(code string) []byte {
	n := (len(code) + 7) / 8
	packed := make([]byte, n)
	for i, c := range []byte(code) {
		if c != '1' {
			continue
		}
		pos := len(code) - 1 - i
		packed[n-1-pos/8] |= 1 << uint(pos%8)
	}
	return packed
}

// unpackCode reads codeLen low-order bits from packed, zero-filling on the left.
func unpackCode(packed []byte, codeLen int) string {
	var sb strings.Builder
	sb.Grow(codeLen)
	for i := 0; i < codeLen; i++ {
		pos := codeLen - 1 - i
		idx := len(packed) - 1 - pos/8
		if idx >= 0 && packed[idx]>>uint(pos%8)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
