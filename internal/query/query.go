// Package query implements the order-preserving query-string multimap
// the router and SigV4 canonicalizer both depend on (spec section 3,
// component C3).
package query

import (
	"sort"
	"strings"
)

// Pair is one key/value entry from a raw query string, in wire order.
type Pair struct {
	Key   string
	Value string
}

// OrderedQs is an insertion-ordered list of query parameters. Duplicate
// keys are permitted and preserved; Has/Get operate on the first match,
// which is what S3's subresource dispatch and typed-field extraction need.
type OrderedQs struct {
	pairs []Pair
}

// Parse decomposes a raw query string (without the leading '?') into an
// OrderedQs, percent-decoding keys and values. A key with no '=' is
// recorded with an empty value so subresource keys like "?acl" are
// observable via Has.
func Parse(raw string) OrderedQs {
	var qs OrderedQs
	if raw == "" {
		return qs
	}
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		qs.pairs = append(qs.pairs, Pair{
			Key:   queryUnescape(key),
			Value: queryUnescape(value),
		})
	}
	return qs
}

// queryUnescape decodes a query component, treating '+' as space per the
// application/x-www-form-urlencoded convention HTTP query strings follow.
func queryUnescape(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			if hi, ok := hexDigit(s[i+1]); ok {
				if lo, ok := hexDigit(s[i+2]); ok {
					b.WriteByte(hi<<4 | lo)
					i += 2
					continue
				}
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Has reports whether key appears at least once, regardless of value —
// the predicate the router uses for subresource keys like "uploads".
func (q OrderedQs) Has(key string) bool {
	for _, p := range q.pairs {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Get returns the first value bound to key, or "" if absent.
func (q OrderedQs) Get(key string) string {
	for _, p := range q.pairs {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// GetExact reports whether key is present with exactly value.
func (q OrderedQs) GetExact(key, value string) bool {
	for _, p := range q.pairs {
		if p.Key == key && p.Value == value {
			return true
		}
	}
	return false
}

// All returns every value bound to key, in wire order.
func (q OrderedQs) All(key string) []string {
	var out []string
	for _, p := range q.pairs {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}
	return out
}

// Pairs returns the underlying pairs in wire order. Callers must not
// mutate the returned slice's backing array through index assignment.
func (q OrderedQs) Pairs() []Pair {
	return q.pairs
}

// Sorted returns the pairs sorted by key then by value, as SigV4
// canonicalization requires (spec section 4.6).
func (q OrderedQs) Sorted() []Pair {
	sorted := make([]Pair, len(q.pairs))
	copy(sorted, q.pairs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Key != sorted[j].Key {
			return sorted[i].Key < sorted[j].Key
		}
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}
