package nnue

import "chesscore/internal/board"

// Network holds the quantized feature-transformer and output weights.
type Network struct {
	// FeatureWeight is shared by both perspectives: FeatureIndexWhite and
	// FeatureIndexBlack both map into the same "own pieces in bucket 0,
	// square oriented towards the mover" index space, so a single matrix
	// serves either side to move without a second transposed copy.
	FeatureWeight [Input][Hidden]int16
	FeatureBias   [Hidden]int16

	// OutWeight concatenates the side-to-move half (indices [0,Hidden)) and
	// the not-side-to-move half (indices [Hidden,2*Hidden)).
	OutWeight [2 * Hidden]int16
	OutBias   int32
}

// NewNetwork returns a Network with zero weights; LoadWeights must be
// called before Forward produces a meaningful evaluation.
func NewNetwork() *Network {
	return &Network{}
}

// Forward computes the evaluation in centipawns from the perspective of
// sideToMove, given an already-maintained accumulator. The own-perspective
// half occupies OutWeight[0:Hidden], the other-perspective half occupies
// OutWeight[Hidden:2*Hidden], per spec.md §4.6's Flatten layout.
func (n *Network) Forward(acc *Accumulator, sideToMove board.Color) int32 {
	var own, other *[Hidden]int16
	if sideToMove == board.White {
		own, other = &acc.White, &acc.Black
	} else {
		own, other = &acc.Black, &acc.White
	}

	var output int32
	for i := 0; i < Hidden; i++ {
		output += int32(ClippedReLU(own[i]+n.FeatureBias[i])) * int32(n.OutWeight[i])
	}
	for i := 0; i < Hidden; i++ {
		output += int32(ClippedReLU(other[i]+n.FeatureBias[i])) * int32(n.OutWeight[Hidden+i])
	}

	return (output + n.OutBias) * Scale / QAB
}
