package board

// Perft counts the leaf positions reachable in exactly depth plies. Depth 0
// counts the position itself.
func Perft(p Position, depth int) uint64 {
	if depth < 1 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(p.WithMove(m), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move.
func PerftDivide(p Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.LegalMoves() {
		result[m] = Perft(p.WithMove(m), depth-1)
	}
	return result
}
