package token

import "math"

const maxNegMag = uint64(math.MaxInt64) + 1

// ParseInt parses the canonical minimal encoding of a signed 64-bit
// integer: an optional '-' followed by either a single '0' or a digit
// run with no leading zero. The sign is only permitted for nonzero
// magnitudes. This is the textual form between 'i' and 'e' in a
// bencoded integer, and also what the arena stores as an integer span.
func ParseInt(d []byte) (int64, error) {
	if len(d) == 0 {
		return 0, ErrInvalidDigit
	}
	neg := d[0] == '-'
	num := d
	if neg {
		num = d[1:]
	}
	if len(num) == 0 {
		return 0, ErrInvalidDigit
	}
	if num[0] == '0' && len(num) > 1 {
		return 0, ErrLeadingZero
	}
	var mag uint64
	for _, c := range num {
		if c < '0' || c > '9' {
			return 0, ErrInvalidDigit
		}
		dig := uint64(c - '0')
		if mag > (math.MaxUint64-dig)/10 {
			return 0, ErrIntegerOverflow
		}
		mag = mag*10 + dig
	}
	if neg {
		if mag == 0 {
			return 0, ErrNegativeZero
		}
		if mag > maxNegMag {
			return 0, ErrIntegerOverflow
		}
		return -int64(mag - 1) - 1, nil
	}
	if mag > math.MaxInt64 {
		return 0, ErrIntegerOverflow
	}
	return int64(mag), nil
}
