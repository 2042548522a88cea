// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Reserved bytes of the fingerprint encoding. Leaf values containing any of
// them are escaped, so the encoding of a value tree is injective.
const (
	absentMarker byte = 0x00
	nestOpen     byte = 0x0e
	nestClose    byte = 0x0f
	escapeMarker byte = 0x10
)

// dividers[n] separates the fields of a level-n structure; dividers[n+1]
// separates members of collections inside it.
var dividers = [...]byte{0x01, 0x02, 0x03, 0x04, 0x05}

// Structure levels.
const (
	levelQuery = iota
	levelOperator
	levelComparator
	levelCondition
)

// fingerprinter is implemented by every value that can be nested in a
// fingerprint: filters, comparators and queries.
type fingerprinter interface {
	Fingerprint() string
}

// encodeFields serializes fields in the given order. Unordered collections
// are sorted first and absent values become a sentinel distinct from "".
func encodeFields(level int, fields ...any) string {
	outer, inner := dividers[level], dividers[level+1]

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(outer)
		}
		writeValue(&b, inner, f)
	}
	return b.String()
}

func writeValue(b *strings.Builder, div byte, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteByte(absentMarker)
	case string:
		writeEscaped(b, t)
	case *string:
		if t == nil {
			b.WriteByte(absentMarker)
			return
		}
		writeEscaped(b, *t)
	case bool:
		b.WriteString(strconv.FormatBool(t))
	case *bool:
		if t == nil {
			b.WriteByte(absentMarker)
			return
		}
		b.WriteString(strconv.FormatBool(*t))
	case int:
		b.WriteString(strconv.Itoa(t))
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case *int64:
		if t == nil {
			b.WriteByte(absentMarker)
			return
		}
		b.WriteString(strconv.FormatInt(*t, 10))
	case *time.Time:
		if t == nil {
			b.WriteByte(absentMarker)
			return
		}
		b.WriteString(t.UTC().Format(time.RFC3339Nano))
	case []string:
		if t == nil {
			b.WriteByte(absentMarker)
			return
		}
		for i, s := range slices.Sorted(slices.Values(t)) {
			if i > 0 {
				b.WriteByte(div)
			}
			writeEscaped(b, s)
		}
	case []Comparator:
		if t == nil {
			b.WriteByte(absentMarker)
			return
		}
		// sort order is significant, keep it
		for i, c := range t {
			if i > 0 {
				b.WriteByte(div)
			}
			writeNested(b, c)
		}
	case []Filter:
		if t == nil {
			b.WriteByte(absentMarker)
			return
		}
		sorted := slices.Clone(t)
		slices.SortFunc(sorted, CompareFilters)
		for i, f := range sorted {
			if i > 0 {
				b.WriteByte(div)
			}
			writeNested(b, f)
		}
	case fingerprinter:
		writeNested(b, t)
	default:
		writeEscaped(b, fmt.Sprint(t))
	}
}

func writeNested(b *strings.Builder, f fingerprinter) {
	if f == nil {
		b.WriteByte(absentMarker)
		return
	}
	b.WriteByte(nestOpen)
	b.WriteString(f.Fingerprint())
	b.WriteByte(nestClose)
}

func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isReserved(c) {
			b.WriteByte(escapeMarker)
		}
		b.WriteByte(c)
	}
}

func isReserved(c byte) bool {
	switch c {
	case absentMarker, nestOpen, nestClose, escapeMarker:
		return true
	}
	return slices.Contains(dividers[:], c)
}

// optional maps the zero string to an absent field. Empty strings are never
// sent on the wire, so the two cannot be told apart by the server either.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// optionalList is optional for list fields: nil and empty lists are both
// omitted on the wire and encode as absent.
func optionalList[T any](list []T) any {
	if len(list) == 0 {
		return nil
	}
	return list
}
