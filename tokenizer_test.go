// tokenizer_test.go - Tests for the raw argument tokenizer
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

import (
	"reflect"
	"testing"
)

func TestTokenize_NoPrefixes(t *testing.T) {
	raw := tokenize("  some preamble text  ", PrefixName, PrefixPhone)

	if raw.Preamble() != "some preamble text" {
		t.Errorf("Expected trimmed whole input as preamble, got %q", raw.Preamble())
	}
	if raw.Present(PrefixName) || raw.Present(PrefixPhone) {
		t.Errorf("Expected no prefix values, got %v", raw.values)
	}
}

func TestTokenize_PreambleAndValues(t *testing.T) {
	raw := tokenize("1 n/Alice Pauline p/999", PrefixName, PrefixPhone)

	if raw.Preamble() != "1" {
		t.Errorf("Expected preamble %q, got %q", "1", raw.Preamble())
	}
	if got := raw.AllValues(PrefixName); !reflect.DeepEqual(got, []string{"Alice Pauline"}) {
		t.Errorf("Expected name value [Alice Pauline], got %v", got)
	}
	if got := raw.AllValues(PrefixPhone); !reflect.DeepEqual(got, []string{"999"}) {
		t.Errorf("Expected phone value [999], got %v", got)
	}
}

func TestTokenize_PrefixAtStartOfInput(t *testing.T) {
	raw := tokenize("n/Alice", PrefixName)

	if raw.Preamble() != "" {
		t.Errorf("Expected empty preamble, got %q", raw.Preamble())
	}
	if got := raw.AllValues(PrefixName); !reflect.DeepEqual(got, []string{"Alice"}) {
		t.Errorf("Expected [Alice], got %v", got)
	}
}

func TestTokenize_PrefixInsideValueNotRecognized(t *testing.T) {
	// "n/" embedded in the phone value is not preceded by whitespace,
	// so it must stay part of that value.
	raw := tokenize("p/abn/cd n/Bob", PrefixName, PrefixPhone)

	if got := raw.AllValues(PrefixPhone); !reflect.DeepEqual(got, []string{"abn/cd"}) {
		t.Errorf("Expected phone value [abn/cd], got %v", got)
	}
	if got := raw.AllValues(PrefixName); !reflect.DeepEqual(got, []string{"Bob"}) {
		t.Errorf("Expected name value [Bob], got %v", got)
	}
}

func TestTokenize_DuplicateOccurrencesPreserved(t *testing.T) {
	raw := tokenize("t/vip t/exec t/vip", PrefixTag)

	want := []string{"vip", "exec", "vip"}
	if got := raw.AllValues(PrefixTag); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v in input order, got %v", want, got)
	}
}

func TestTokenize_EmptyValues(t *testing.T) {
	raw := tokenize("1 pr/", PrefixPresent)

	if got := raw.AllValues(PrefixPresent); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("Expected one empty value, got %v", got)
	}
}

func TestTokenize_LongerPrefixWinsAtSamePosition(t *testing.T) {
	// "pr/" must not be segmented as if it were "p/" with value "r/...".
	raw := tokenize("1 pr/ p/123", PrefixPhone, PrefixPresent)

	if !raw.Present(PrefixPresent) {
		t.Fatalf("Expected pr/ occurrence, got %v", raw.values)
	}
	if got := raw.AllValues(PrefixPhone); !reflect.DeepEqual(got, []string{"123"}) {
		t.Errorf("Expected phone value [123], got %v", got)
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	input := "3 n/Alice p/999 t/vip t/exec"
	first := tokenize(input, PrefixName, PrefixPhone, PrefixTag)

	for i := 0; i < 10; i++ {
		again := tokenize(input, PrefixName, PrefixPhone, PrefixTag)
		if again.Preamble() != first.Preamble() || !reflect.DeepEqual(again.values, first.values) {
			t.Fatalf("Tokenization not deterministic: %v vs %v", again, first)
		}
	}
}
