package nnue

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"chesscore/internal/board"
)

func TestClippedReLUClampsToRange(t *testing.T) {
	require.Equal(t, int16(0), ClippedReLU(-50))
	require.Equal(t, int16(0), ClippedReLU(0))
	require.Equal(t, int16(100), ClippedReLU(100))
	require.Equal(t, int16(QA), ClippedReLU(QA))
	require.Equal(t, int16(QA), ClippedReLU(QA+500))
}

// Forward must read OutWeight[0:Hidden] against the side-to-move's own
// accumulator half and OutWeight[Hidden:2*Hidden] against the other half,
// per spec.md §4.6's Flatten layout — swapping sideToMove swaps which half
// of OutWeight pairs with which accumulator array.
func TestForwardUsesSideToMoveHalfOrdering(t *testing.T) {
	net := NewNetwork()
	for i := 0; i < Hidden; i++ {
		net.OutWeight[i] = 10        // own-perspective half
		net.OutWeight[Hidden+i] = 1 // other-perspective half
	}

	var acc Accumulator
	for i := 0; i < Hidden; i++ {
		acc.White[i] = int16(i % 4)
		acc.Black[i] = int16(i % 2)
	}

	whiteToMove := net.Forward(&acc, board.White)
	blackToMove := net.Forward(&acc, board.Black)

	// Both sides read the same two accumulator arrays, just swapped between
	// the "own" (weight 10) and "other" (weight 1) halves. White's array sums
	// to 384 and Black's to 128, so the two evaluations differ.
	require.NotEqual(t, whiteToMove, blackToMove)
}

func TestForwardIsDeterministic(t *testing.T) {
	net := deterministicNetwork()
	pos, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	var acc Accumulator
	acc.Refresh(pos, net)

	a := net.Forward(&acc, board.White)
	b := net.Forward(&acc, board.White)
	require.Equal(t, a, b)
}

// Network.LoadWeights/SaveWeights round-trips within one quantization unit:
// SaveWeights dequantizes by dividing by the same constant LoadWeights
// later multiplies back in, so float rounding can shift a value by at most
// 1 in the reloaded int16/int32 fields.
func TestWeightsRoundTripThroughQuantization(t *testing.T) {
	net := deterministicNetwork()

	dir := t.TempDir()
	path := dir + "/weights.json"
	require.NoError(t, net.SaveWeights(path))

	reloaded := NewNetwork()
	require.NoError(t, reloaded.LoadWeights(path))

	for i := 0; i < Input; i++ {
		for j := 0; j < Hidden; j++ {
			require.InDelta(t, net.FeatureWeight[i][j], reloaded.FeatureWeight[i][j], 1)
		}
	}
	for j := 0; j < Hidden; j++ {
		require.InDelta(t, net.FeatureBias[j], reloaded.FeatureBias[j], 1)
	}
	for i := 0; i < 2*Hidden; i++ {
		require.InDelta(t, net.OutWeight[i], reloaded.OutWeight[i], 1)
	}
	require.InDelta(t, net.OutBias, reloaded.OutBias, 1)
}

func TestLoadWeightsRejectsWrongShape(t *testing.T) {
	net := NewNetwork()
	dir := t.TempDir()
	path := dir + "/bad.json"

	badJSON := `{"ft.weight": [], "ft.bias": [], "out.weight": [], "out.bias": []}`
	require.NoError(t, os.WriteFile(path, []byte(badJSON), 0o644))
	require.Error(t, net.LoadWeights(path))
}
