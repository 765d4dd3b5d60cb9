// tokenizer.go: Raw argument tokenizer for the GreyBook command language
//
// Splits a raw argument string into a preamble (the leading text before any
// recognized prefix) and one ordered list of raw values per prefix. Values
// are only segmented here, never parsed or validated; duplicate occurrences
// are preserved so later validation phases can reject them with a precise
// error instead of silently dropping input.
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"sort"
	"strings"
	"unicode"
)

// rawArguments is the tokenizer output for a single parse call: the trimmed
// preamble plus every raw value segment keyed by its prefix, in input order.
// It is owned by the parse call that produced it and discarded afterwards.
type rawArguments struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first recognized prefix,
// or the whole trimmed input when no prefix occurs.
func (ra *rawArguments) Preamble() string { return ra.preamble }

// AllValues returns the raw value segments of prefix in input order.
// The returned slice is nil when the prefix never occurred.
func (ra *rawArguments) AllValues(prefix Prefix) []string { return ra.values[prefix] }

// Present reports whether prefix occurred at least once in the input.
func (ra *rawArguments) Present(prefix Prefix) bool { return len(ra.values[prefix]) > 0 }

// occurrence is one recognized prefix hit inside the raw argument string.
type occurrence struct {
	prefix Prefix
	pos    int // index of the first byte of the prefix token
}

// tokenize scans raw for every registered prefix and segments it into a
// rawArguments. A prefix token is recognized only at a token boundary: the
// start of the string or right after a whitespace rune. Each value runs from
// the end of its prefix token to the start of the next recognized occurrence
// of any prefix, trimmed of surrounding whitespace. Tokenization is a pure
// function of its inputs; empty preambles and empty value lists are valid.
func tokenize(raw string, prefixes ...Prefix) *rawArguments {
	occurrences := findOccurrences(raw, prefixes)

	result := &rawArguments{
		preamble: strings.TrimSpace(raw),
		values:   make(map[Prefix][]string, len(prefixes)),
	}
	if len(occurrences) == 0 {
		return result
	}

	result.preamble = strings.TrimSpace(raw[:occurrences[0].pos])
	for i, occ := range occurrences {
		valueStart := occ.pos + len(occ.prefix)
		valueEnd := len(raw)
		if i+1 < len(occurrences) {
			valueEnd = occurrences[i+1].pos
		}
		value := strings.TrimSpace(raw[valueStart:valueEnd])
		result.values[occ.prefix] = append(result.values[occ.prefix], value)
	}
	return result
}

// findOccurrences locates every boundary-anchored prefix occurrence in raw,
// ordered by position. When two prefixes match at the same position (one
// token being a prefix of the other) the longer token wins, so "pr/" is
// never misread as "p/" followed by stray text.
func findOccurrences(raw string, prefixes []Prefix) []occurrence {
	var occurrences []occurrence
	for _, prefix := range prefixes {
		token := string(prefix)
		if token == "" {
			continue
		}
		for start := 0; ; {
			idx := strings.Index(raw[start:], token)
			if idx < 0 {
				break
			}
			pos := start + idx
			if atTokenBoundary(raw, pos) {
				occurrences = append(occurrences, occurrence{prefix: prefix, pos: pos})
			}
			start = pos + 1
		}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		if occurrences[i].pos != occurrences[j].pos {
			return occurrences[i].pos < occurrences[j].pos
		}
		return len(occurrences[i].prefix) > len(occurrences[j].prefix)
	})

	// Collapse same-position matches to the longest token.
	deduped := occurrences[:0]
	for _, occ := range occurrences {
		if len(deduped) > 0 && deduped[len(deduped)-1].pos == occ.pos {
			continue
		}
		deduped = append(deduped, occ)
	}
	return deduped
}

// atTokenBoundary reports whether pos starts a token: the beginning of the
// string, or a position directly after a whitespace rune.
func atTokenBoundary(raw string, pos int) bool {
	if pos == 0 {
		return true
	}
	return unicode.IsSpace(rune(raw[pos-1]))
}
