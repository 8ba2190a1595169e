package encode

import (
	"bytes"
	"testing"

	"github.com/bencode-format/go-bencode/decode"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	ins := []string{
		`i0e`,
		`i42e`,
		`i-42e`,
		`i-9223372036854775808e`,
		`4:spam`,
		`0:`,
		`le`,
		`de`,
		`l4:spam4:eggse`,
		`d3:cow3:moo4:spam4:eggse`,
		`d1:ad1:bi1e1:c4:abcde1:dli3ei4eee`,
		"d8:announce36:https://tracker.example.org/announce4:infod6:lengthi170917888e4:name8:blob.bin12:piece lengthi262144eee",
	}
	for _, in := range ins {
		doc, err := decode.Decode([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		out := Bytes(doc, doc.Root())
		if !bytes.Equal(out, []byte(in)) {
			t.Errorf("round trip %q -> %q", in, out)
		}
		var buf bytes.Buffer
		if err := Encode(doc, doc.Root(), &buf); err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if !bytes.Equal(buf.Bytes(), []byte(in)) {
			t.Errorf("writer round trip %q -> %q", in, buf.Bytes())
		}
	}
}

// Re-encoding any node must reproduce its span bytes, not just the root's.
func TestSubtreeRoundTrip(t *testing.T) {
	in := []byte(`d4:infod6:lengthi170917888e4:name8:blob.bine4:spaml4:eggsi-7eee`)
	doc, err := decode.Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	for id := doc.Root(); int(id) < doc.NumNodes(); id++ {
		if diff := cmp.Diff(string(doc.Raw(id)), string(Bytes(doc, id))); diff != "" {
			t.Errorf("node %d: (-raw +encoded)\n%s", id, diff)
		}
	}
}

func TestDump(t *testing.T) {
	doc, err := decode.Decode([]byte(`d3:cow3:moo5:happyli1ei2ee3:raw2:` + "\x00\x01" + `e`))
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "cow": "moo",
  "happy": [
    1,
    2
  ],
  "raw": "\x00\x01"
}`
	got := MustDumpString(doc, doc.Root())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestDumpEmpty(t *testing.T) {
	doc, err := decode.Decode([]byte(`d1:alee`))
	if err != nil {
		t.Fatal(err)
	}
	if got := MustDumpString(doc, doc.Root()); got != "{\n  \"a\": []\n}" {
		t.Errorf("got %q", got)
	}
}
