package chess

// Perft counts pseudo-legal move sequences of the given depth. Each
// trial application snapshots the board with Clone first; the core has
// no undo. Counts diverge from classical perft beyond depth two
// because no king-safety filter is applied.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range GeneratePseudoLegal(b, b.turn) {
		child := b.Clone()
		child.Play(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// PerftDivide returns the number of leaf nodes reachable from each
// root move at the given depth. Useful for debugging the generator.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range GeneratePseudoLegal(b, b.turn) {
		child := b.Clone()
		child.Play(m)
		result[m] = Perft(child, depth-1)
	}
	return result
}
