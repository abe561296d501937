package huffman

import (
	"testing"
)

func makeTextbookFreq() FrequencyTable[string] {
	return FrequencyTable[string]{"a": 5, "b": 9, "c": 12, "d": 13, "e": 16, "f": 45}
}

func makeTextbookCoder(t *testing.T) *Coder[string] {
	t.Helper()
	c, err := New(makeTextbookFreq())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func mustParseBits(t *testing.T, str string) Bits {
	t.Helper()
	b, err := ParseBits(str)
	if err != nil {
		t.Fatalf("ParseBits(%q) failed: %v", str, err)
	}
	return b
}

func splitString(str string) []string {
	out := make([]string, 0, len(str))
	for _, ch := range str {
		out = append(out, string(ch))
	}
	return out
}
