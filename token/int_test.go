package token

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

type parseIntTest struct {
	in string
	v  int64
	e  error
}

func TestParseInt(t *testing.T) {
	tests := []parseIntTest{
		{in: "0", v: 0},
		{in: "42", v: 42},
		{in: "-42", v: -42},
		{in: "9223372036854775807", v: math.MaxInt64},
		{in: "-9223372036854775808", v: math.MinInt64},
		{in: "9223372036854775808", e: ErrIntegerOverflow},
		{in: "-9223372036854775809", e: ErrIntegerOverflow},
		{in: "18446744073709551616", e: ErrIntegerOverflow},
		{in: "-0", e: ErrNegativeZero},
		{in: "-00", e: ErrLeadingZero},
		{in: "00", e: ErrLeadingZero},
		{in: "042", e: ErrLeadingZero},
		{in: "-042", e: ErrLeadingZero},
		{in: "", e: ErrInvalidDigit},
		{in: "-", e: ErrInvalidDigit},
		{in: "+42", e: ErrInvalidDigit},
		{in: " 42", e: ErrInvalidDigit},
		{in: "4x2", e: ErrInvalidDigit},
	}
	for _, tc := range tests {
		v, err := ParseInt([]byte(tc.in))
		if tc.e != nil {
			if !errors.Is(err, tc.e) {
				t.Errorf("%q: got %v, want %v", tc.in, err, tc.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if v != tc.v {
			t.Errorf("%q: got %d, want %d", tc.in, v, tc.v)
		}
	}
}

func TestParseIntRoundTrip(t *testing.T) {
	for n := int64(-100000); n <= 100000; n++ {
		v, err := ParseInt([]byte(strconv.FormatInt(n, 10)))
		if err != nil {
			t.Fatalf("%d: %v", n, err)
		}
		if v != n {
			t.Fatalf("%d: got %d", n, v)
		}
	}
}
