package huffman

import (
	"errors"
	"strings"
	"testing"

	logging "github.com/op/go-logging"
)

func TestBuildTree(t *testing.T) {
	root, err := BuildTree(makeTextbookFreq())
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Node{\n",
		"\t\"\" = * (100)\n",
		"\t\t\"0\" = f (45)\n",
		"\t\t\"1\" = * (55)\n",
		"\t\t\t\"10\" = * (25)\n",
		"\t\t\t\t\"100\" = c (12)\n",
		"\t\t\t\t\"101\" = d (13)\n",
		"\t\t\t\"11\" = * (30)\n",
		"\t\t\t\t\"110\" = * (14)\n",
		"\t\t\t\t\t\"1100\" = a (5)\n",
		"\t\t\t\t\t\"1101\" = b (9)\n",
		"\t\t\t\t\"111\" = e (16)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = root.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	if root.Depth() != 4 {
		t.Errorf("expected depth 4, got %d", root.Depth())
	}
	if root.Leaves() != 6 {
		t.Errorf("expected 6 leaves, got %d", root.Leaves())
	}
}

func TestBuildTree_FrequencyConservation(t *testing.T) {
	testData := []FrequencyTable[int]{
		{1: 1},
		{1: 0, 2: 0},
		{1: 3, 2: 3, 3: 3, 4: 3},
		{10: 100, 20: 1, 30: 7, 40: 0, 50: 64, 60: 2, 70: 2},
	}
	for _, freq := range testData {
		root, err := BuildTree(freq)
		if err != nil {
			t.Fatalf("BuildTree(%v) failed: %v", freq, err)
		}
		if expect, actual := freq.Total(), root.Freq(); expect != actual {
			t.Errorf("BuildTree(%v): expected root frequency %d, got %d", freq, expect, actual)
		}
		if expect, actual := len(freq), root.Leaves(); expect != actual {
			t.Errorf("BuildTree(%v): expected %d leaves, got %d", freq, expect, actual)
		}
	}
}

func TestBuildTree_DebugDisabled(t *testing.T) {
	saved := logging.GetLevel("huffman")
	logging.SetLevel(logging.WARNING, "huffman")
	defer logging.SetLevel(saved, "huffman")

	if log.IsEnabledFor(logging.DEBUG) {
		t.Fatalf("debug logging still enabled")
	}
	root, err := BuildTree(makeTextbookFreq())
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if root.Freq() != 100 {
		t.Errorf("expected root frequency 100, got %d", root.Freq())
	}
}

func TestBuildTree_Empty(t *testing.T) {
	root, err := BuildTree(FrequencyTable[string]{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if root != nil {
		t.Errorf("expected no tree, got %v", root)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root, err := BuildTree(FrequencyTable[string]{"x": 7})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if !root.IsLeaf() {
		t.Fatalf("expected a lone leaf")
	}
	if symbol, ok := root.Symbol(); !ok || symbol != "x" {
		t.Errorf("expected leaf x, got (%q, %v)", symbol, ok)
	}
	if root.Freq() != 7 {
		t.Errorf("expected frequency 7, got %d", root.Freq())
	}
	if root.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", root.Depth())
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	// Equal frequencies merge in symbol order, lower symbol on the left.
	root, err := BuildTree(FrequencyTable[byte]{'a': 1, 'b': 1, 'c': 1, 'd': 1})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	table, _ := DeriveTable(root)

	expect := map[byte]string{'a': `"00"`, 'b': `"01"`, 'c': `"10"`, 'd': `"11"`}
	for symbol, expectCode := range expect {
		hc, _ := table.Lookup(symbol)
		if actual := hc.String(); actual != expectCode {
			t.Errorf("symbol %c: expected %s, got %s", symbol, expectCode, actual)
		}
	}
}

func TestFrequencyTable(t *testing.T) {
	freq := CountFrequencies([]rune("abracadabra"))

	expect := FrequencyTable[rune]{'a': 5, 'b': 2, 'c': 1, 'd': 1, 'r': 2}
	if len(freq) != len(expect) {
		t.Errorf("expected %d symbols, got %d", len(expect), len(freq))
	}
	for symbol, count := range expect {
		if freq[symbol] != count {
			t.Errorf("symbol %c: expected %d, got %d", symbol, count, freq[symbol])
		}
	}
	if actual := string(freq.Symbols()); actual != "abcdr" {
		t.Errorf("wrong symbol order: %s", actual)
	}
	if freq.Total() != 11 {
		t.Errorf("expected total 11, got %d", freq.Total())
	}
}
