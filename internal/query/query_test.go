package query

import "testing"

func TestParseEmptyString(t *testing.T) {
	q := Parse("")
	if q.Has("anything") {
		t.Fatal("empty query string should have no keys")
	}
}

func TestParseSubresourceKeyWithNoValue(t *testing.T) {
	q := Parse("acl")
	if !q.Has("acl") {
		t.Fatal("bare key should be observable via Has")
	}
	if q.Get("acl") != "" {
		t.Fatalf("bare key should have empty value, got %q", q.Get("acl"))
	}
}

func TestParseKeyValuePairs(t *testing.T) {
	q := Parse("prefix=foo&max-keys=10")
	if q.Get("prefix") != "foo" {
		t.Fatalf("got %q", q.Get("prefix"))
	}
	if q.Get("max-keys") != "10" {
		t.Fatalf("got %q", q.Get("max-keys"))
	}
}

func TestParsePercentDecodesKeysAndValues(t *testing.T) {
	q := Parse("prefix=a%20b%2Fc")
	if q.Get("prefix") != "a b/c" {
		t.Fatalf("got %q", q.Get("prefix"))
	}
	if !Parse("a%2Db=1").Has("a-b") {
		t.Fatal("percent-encoded key a%2Db not decoded to a-b")
	}
}

func TestParsePlusDecodesAsSpace(t *testing.T) {
	q := Parse("prefix=a+b")
	if q.Get("prefix") != "a b" {
		t.Fatalf("got %q", q.Get("prefix"))
	}
}

func TestGetExact(t *testing.T) {
	q := Parse("list-type=2")
	if !q.GetExact("list-type", "2") {
		t.Fatal("expected exact match")
	}
	if q.GetExact("list-type", "1") {
		t.Fatal("expected no match for a different value")
	}
}

func TestAllReturnsEveryDuplicateKeyValue(t *testing.T) {
	q := Parse("tag=a&tag=b&tag=c")
	all := q.All("tag")
	want := []string{"a", "b", "c"}
	if len(all) != len(want) {
		t.Fatalf("got %v", all)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Fatalf("got %v, want %v", all, want)
		}
	}
}

func TestPairsPreservesWireOrder(t *testing.T) {
	q := Parse("z=1&a=2&m=3")
	pairs := q.Pairs()
	want := []string{"z", "a", "m"}
	for i, p := range pairs {
		if p.Key != want[i] {
			t.Fatalf("got order %v, want %v", pairs, want)
		}
	}
}

func TestSortedOrdersByKeyThenValue(t *testing.T) {
	q := Parse("b=2&a=2&a=1")
	sorted := q.Sorted()
	if len(sorted) != 3 {
		t.Fatalf("got %d pairs", len(sorted))
	}
	if sorted[0].Key != "a" || sorted[0].Value != "1" {
		t.Fatalf("got first pair %+v", sorted[0])
	}
	if sorted[1].Key != "a" || sorted[1].Value != "2" {
		t.Fatalf("got second pair %+v", sorted[1])
	}
	if sorted[2].Key != "b" {
		t.Fatalf("got third pair %+v", sorted[2])
	}
}
