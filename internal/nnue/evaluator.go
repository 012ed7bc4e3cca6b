package nnue

import "chesscore/internal/board"

// Evaluator couples a Network with an AccumulatorStack and implements
// board.NNUEAccumulator, so Board.MoveNNUE can drive it directly without
// board importing this package (the dependency only runs this direction).
type Evaluator struct {
	net   *Network
	stack *AccumulatorStack
}

// NewEvaluator loads weights from weightsFile and returns an Evaluator
// with an empty, unrefreshed accumulator stack. Call Refresh once the
// board is at its starting position before the first Evaluate.
func NewEvaluator(weightsFile string) (*Evaluator, error) {
	net := NewNetwork()
	if err := net.LoadWeights(weightsFile); err != nil {
		return nil, err
	}
	return &Evaluator{net: net, stack: NewAccumulatorStack()}, nil
}

// Activate implements board.NNUEAccumulator.
func (e *Evaluator) Activate(pt board.PieceType, c board.Color, sq board.Square) {
	e.stack.Current().Activate(pt, c, sq, e.net)
}

// Deactivate implements board.NNUEAccumulator.
func (e *Evaluator) Deactivate(pt board.PieceType, c board.Color, sq board.Square) {
	e.stack.Current().Deactivate(pt, c, sq, e.net)
}

// Push advances the accumulator stack by one ply, ahead of a Board.MoveNNUE
// call. Callers own the pairing: one Push per MoveNNUE, one Pop per UndoMove.
func (e *Evaluator) Push() {
	e.stack.Push()
}

// Pop reverts the accumulator stack by one ply, after a Board.UndoMove call.
func (e *Evaluator) Pop() {
	e.stack.Pop()
}

// Refresh recomputes the current ply's accumulator from scratch against
// pos. Needed once at search root, and as a correctness check against the
// incrementally-maintained accumulator (property P5).
func (e *Evaluator) Refresh(pos *board.Position) {
	e.stack.Current().Refresh(pos, e.net)
}

// Reset returns the accumulator stack to ply 0.
func (e *Evaluator) Reset() {
	e.stack.Reset()
}

// Evaluate returns the network's evaluation in centipawns from the
// perspective of sideToMove, using the current ply's accumulator.
func (e *Evaluator) Evaluate(sideToMove board.Color) int32 {
	return e.net.Forward(e.stack.Current(), sideToMove)
}
