package sourcemap

import (
	"fmt"
	"strings"
)

const (
	vlqAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	vlqBaseShift     = 5
	vlqBaseMask      = 1<<vlqBaseShift - 1
	vlqContinuation  = 1 << vlqBaseShift
	segmentSeparator = ","
	lineSeparator    = ";"
)

var vlqDecodeTable = func() [256]int {
	var table [256]int
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(vlqAlphabet); i++ {
		table[vlqAlphabet[i]] = i
	}
	return table
}()

// EncodeVLQ appends the base64 VLQ encoding of value to sb
func EncodeVLQ(sb *strings.Builder, value int) {
	var vlq int
	if value < 0 {
		vlq = (-value)<<1 | 1
	} else {
		vlq = value << 1
	}

	for {
		digit := vlq & vlqBaseMask
		vlq >>= vlqBaseShift
		if vlq > 0 {
			digit |= vlqContinuation
		}
		sb.WriteByte(vlqAlphabet[digit])
		if vlq == 0 {
			return
		}
	}
}

// DecodeVLQ decodes one value from s and returns it with the number of
// bytes consumed
func DecodeVLQ(s string) (int, int, error) {
	var (
		result int
		shift  uint
	)
	for i := 0; i < len(s); i++ {
		digit := vlqDecodeTable[s[i]]
		if digit < 0 {
			return 0, 0, fmt.Errorf("invalid VLQ character %q at offset %d", s[i], i)
		}
		result += (digit & vlqBaseMask) << shift
		if digit&vlqContinuation == 0 {
			value := result >> 1
			if result&1 == 1 {
				value = -value
			}
			return value, i + 1, nil
		}
		shift += vlqBaseShift
		if shift > 60 {
			return 0, 0, fmt.Errorf("VLQ value overflows at offset %d", i)
		}
	}
	return 0, 0, fmt.Errorf("unterminated VLQ value %q", s)
}

// DecodeMappings splits a mappings string into line groups of segments,
// each segment holding the raw delta values it encodes
func DecodeMappings(mappings string) ([][][]int, error) {
	if mappings == "" {
		return nil, nil
	}

	lines := strings.Split(mappings, lineSeparator)
	groups := make([][][]int, len(lines))
	for li, line := range lines {
		if line == "" {
			continue
		}
		for _, segment := range strings.Split(line, segmentSeparator) {
			var values []int
			for rest := segment; rest != ""; {
				v, n, err := DecodeVLQ(rest)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", li, err)
				}
				values = append(values, v)
				rest = rest[n:]
			}
			groups[li] = append(groups[li], values)
		}
	}
	return groups, nil
}
