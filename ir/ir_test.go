package ir_test

import (
	"sync"
	"testing"

	"github.com/bencode-format/go-bencode/decode"
	"github.com/bencode-format/go-bencode/ir"

	"github.com/google/go-cmp/cmp"
)

func mustDecode(t *testing.T, in string) *ir.Doc {
	t.Helper()
	doc, err := decode.Decode([]byte(in))
	if err != nil {
		t.Fatalf("%q: %v", in, err)
	}
	return doc
}

func TestChildrenOrderAndRestart(t *testing.T) {
	doc := mustDecode(t, `l4:spaml4:eggsei42ed1:ai1eee`)
	root := doc.Root()
	collect := func() []ir.NodeID {
		ids := []ir.NodeID{}
		for c := range doc.Children(root) {
			ids = append(ids, c)
		}
		return ids
	}
	first := collect()
	if len(first) != 4 {
		t.Fatalf("children %v", first)
	}
	kinds := []ir.Kind{}
	for _, id := range first {
		kinds = append(kinds, doc.Kind(id))
	}
	wantKinds := []ir.Kind{ir.StringKind, ir.ListKind, ir.IntegerKind, ir.DictionaryKind}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
	// navigation is a pure read: repeated traversals are identical
	for range 3 {
		if diff := cmp.Diff(first, collect()); diff != "" {
			t.Fatalf("(-first +again)\n%s", diff)
		}
	}
}

func TestChildrenEarlyStop(t *testing.T) {
	doc := mustDecode(t, `li0ei1ei2ee`)
	n := 0
	for range doc.Children(doc.Root()) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("yielded %d", n)
	}
}

func TestPairs(t *testing.T) {
	doc := mustDecode(t, `d3:cow3:moo4:spam4:eggse`)
	got := map[string]string{}
	for k, v := range doc.Pairs(doc.Root()) {
		got[string(doc.StringBytes(k))] = string(doc.StringBytes(v))
	}
	want := map[string]string{"cow": "moo", "spam": "eggs"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	// enough keys that the binary search takes both branches
	doc := mustDecode(t, `d1:ai1e1:bi2e1:ci3e1:di4e1:ei5e1:fi6e1:gi7ee`)
	root := doc.Root()
	for key, want := range map[string]int64{
		"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7,
	} {
		v, ok := doc.Lookup(root, []byte(key))
		if !ok {
			t.Fatalf("%q absent", key)
		}
		if got := doc.Int64(v); got != want {
			t.Fatalf("%q: got %d, want %d", key, got, want)
		}
	}
	for _, key := range []string{"", "0", "aa", "h", "zzz"} {
		if _, ok := doc.Lookup(root, []byte(key)); ok {
			t.Fatalf("%q present", key)
		}
	}
}

func TestLookupSkipsSubtrees(t *testing.T) {
	// values with their own children must not derail the pair hops
	doc := mustDecode(t, `d1:ad1:xi1ee1:bl1:y1:ze1:ci9ee`)
	root := doc.Root()
	v, ok := doc.Lookup(root, []byte("c"))
	if !ok || doc.Int64(v) != 9 {
		t.Fatal("c lookup")
	}
	v, ok = doc.Lookup(root, []byte("b"))
	if !ok || doc.Kind(v) != ir.ListKind {
		t.Fatal("b lookup")
	}
}

func TestRawAndSpans(t *testing.T) {
	in := `d4:infod6:lengthi42eee`
	doc := mustDecode(t, in)
	info, ok := doc.Lookup(doc.Root(), []byte("info"))
	if !ok {
		t.Fatal("info absent")
	}
	if got := string(doc.Raw(info)); got != `d6:lengthi42ee` {
		t.Fatalf("raw %q", got)
	}
	if got := string(doc.Raw(doc.Root())); got != in {
		t.Fatalf("root raw %q", got)
	}
	sp := doc.Span(info)
	if string(doc.Buf()[sp.Off:sp.End()]) != `d6:lengthi42ee` {
		t.Fatalf("span %s", sp)
	}
}

func TestConcurrentReaders(t *testing.T) {
	doc := mustDecode(t, `d3:cow3:moo4:spaml4:eggsi42eee`)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				v, ok := doc.Lookup(doc.Root(), []byte("cow"))
				if !ok || string(doc.StringBytes(v)) != "moo" {
					t.Error("cow lookup")
					return
				}
				for k, v := range doc.Pairs(doc.Root()) {
					_ = doc.StringBytes(k)
					_ = doc.Raw(v)
				}
			}
		}()
	}
	wg.Wait()
}

func TestKindStrings(t *testing.T) {
	for _, k := range ir.Kinds() {
		txt, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back ir.Kind
		if err := back.UnmarshalText(txt); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Fatalf("%s round trip", k)
		}
	}
}

func TestAccessorPreconditionPanics(t *testing.T) {
	doc := mustDecode(t, `l4:spame`)
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s did not panic", name)
			}
		}()
		f()
	}
	root := doc.Root()
	mustPanic("Int64", func() { doc.Int64(root) })
	mustPanic("StringBytes", func() { doc.StringBytes(root) })
	mustPanic("Pairs", func() { doc.Pairs(root) })
	mustPanic("Lookup", func() { doc.Lookup(root, nil) })
	str := root + 1
	mustPanic("Children", func() { doc.Children(str) })
	mustPanic("Count", func() { doc.Count(str) })
}
