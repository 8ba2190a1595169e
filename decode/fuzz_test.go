package decode

import (
	"bytes"
	"testing"

	"github.com/bencode-format/go-bencode/encode"
)

func FuzzDecode(f *testing.F) {
	seeds := []string{
		// Integers
		`i0e`,
		`i42e`,
		`i-42e`,
		`i9223372036854775807e`,
		`i-9223372036854775808e`,

		// Strings
		`0:`,
		`4:spam`,
		`3:i1e`,

		// Lists
		`le`,
		`l4:spam4:eggse`,
		`li0ei1ei2ee`,
		`lllleeee`,

		// Dictionaries
		`de`,
		`d3:cow3:moo4:spam4:eggse`,
		`d1:ad1:bi1e1:c4:abcde1:di3ee`,
		"d8:announce36:https://tracker.example.org/announce4:infod6:lengthi170917888e4:name8:blob.bin12:piece lengthi262144eee",

		// Near-miss rejections
		`i-0e`,
		`i01e`,
		`3:ab`,
		`d1:b1:x1:a1:ye`,
		`lex`,
		`l`,
		`e`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := Decode(data)
		if err != nil {
			// errors are expected for random input, but they
			// must carry an in-range offset
			off, ok := OffsetOf(err)
			if !ok {
				t.Fatalf("error without offset: %v", err)
			}
			if off < 0 || off > len(data) {
				t.Fatalf("offset %d out of range for %d bytes", off, len(data))
			}
			return
		}
		// canonical form is a bijection: re-encoding a decoded
		// document must reproduce the input exactly
		out := encode.Bytes(doc, doc.Root())
		if !bytes.Equal(out, data) {
			t.Fatalf("round trip %q -> %q", data, out)
		}
		if _, err := Decode(out); err != nil {
			t.Fatalf("re-decode: %v", err)
		}
	})
}
