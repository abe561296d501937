package huffman

// Encode concatenates the codes for each symbol, in order, most significant
// bit first.
//
// If a symbol has no code in the table, Encode returns an
// *UnknownSymbolError identifying it and no output.  A nil table yields
// ErrEmptyInput.
func Encode[S Symbol](symbols []S, table *Table[S]) (Bits, error) {
	if table == nil {
		return Bits{}, ErrEmptyInput
	}

	var out Bits
	for index, symbol := range symbols {
		hc, found := table.codes[symbol]
		if !found {
			return Bits{}, &UnknownSymbolError[S]{Index: index, Symbol: symbol}
		}
		out.AppendBits(hc.bits)
	}
	return out, nil
}
