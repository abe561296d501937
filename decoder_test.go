package huffman

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	c := makeTextbookCoder(t)

	type testRow struct {
		input   string
		expect  string
		pending int
	}

	testData := [...]testRow{
		{input: "", expect: ""},
		{input: "0", expect: "f"},
		{input: "11001101", expect: "ab"},
		{input: "01100100111", expect: "face"},
		{input: "1100110111", expect: "ab", pending: 2},
		{input: "01", expect: "f", pending: 1},
		{input: "110", expect: "", pending: 3},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			output, err := Decode(mustParseBits(t, row.input), c.Root())
			if row.pending == 0 {
				if err != nil {
					t.Errorf("Decode failed: %v", err)
				}
			} else {
				var ice *IncompleteCodeError
				if !errors.As(err, &ice) || !errors.Is(err, ErrIncompleteCode) {
					t.Fatalf("expected *IncompleteCodeError, got %v", err)
				}
				if ice.Pending != row.pending {
					t.Errorf("expected %d pending bits, got %d", row.pending, ice.Pending)
				}
			}
			if actual := strings.Join(output, ""); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestDecode_SingleSymbol(t *testing.T) {
	c, err := New(FrequencyTable[string]{"x": 7})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	bits, err := c.Encode([]string{"x", "x", "x"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if actual := bits.String(); actual != "000" {
		t.Errorf("wrong encoding:\n\texpect: %s\n\tactual: %s", "000", actual)
	}

	output, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if actual := strings.Join(output, ","); actual != "x,x,x" {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", "x,x,x", actual)
	}

	output, err = c.Decode(Bits{})
	if err != nil || len(output) != 0 {
		t.Errorf("expected no symbols and no error, got %v, %v", output, err)
	}
}

func TestDecode_SingleSymbolOneBit(t *testing.T) {
	c, err := New(FrequencyTable[string]{"x": 7})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, row := range []struct {
		input  string
		expect string
	}{
		{input: "1", expect: ""},
		{input: "111", expect: ""},
		{input: "001", expect: "xx"},
	} {
		t.Run(row.input, func(t *testing.T) {
			output, err := c.Decode(mustParseBits(t, row.input))
			if !errors.Is(err, ErrInvalidCode) {
				t.Errorf("expected ErrInvalidCode, got %v", err)
			}
			if actual := strings.Join(output, ""); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestDecode_NoTree(t *testing.T) {
	if _, err := Decode(mustParseBits(t, "0101"), (*Node[string])(nil)); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 50; iter++ {
		numSymbols := 1 + rng.Intn(300)
		freq := make(FrequencyTable[uint16])
		for i := 0; i < numSymbols; i++ {
			freq[uint16(rng.Intn(1<<16))] = uint64(1 + rng.Intn(500))
		}
		symbols := freq.Symbols()

		input := make([]uint16, rng.Intn(2000))
		for i := range input {
			input[i] = symbols[rng.Intn(len(symbols))]
		}

		c, err := New(freq)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		bits, err := c.Encode(input)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		output, err := c.Decode(bits)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if len(output) != len(input) {
			t.Fatalf("iteration %d: expected %d symbols, got %d", iter, len(input), len(output))
		}
		for i := range input {
			if input[i] != output[i] {
				t.Fatalf("iteration %d, index %d: expected %d, got %d", iter, i, input[i], output[i])
			}
		}
	}
}
