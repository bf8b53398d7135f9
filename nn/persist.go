package nn

import (
	"encoding/gob"
	"fmt"
	"os"

	"gorgonia.org/tensor"
)

// checkpoint is the on-disk parameter set. One file per checkpoint; a
// file is only loadable into a network with matching architecture
// hyperparameters.
type checkpoint struct {
	InputDim   int
	HiddenDim  int
	NumActions int

	W1, B1 []float32
	W2, B2 []float32
	WP, BP []float32
	WV, BV []float32
}

func params(t *tensor.Dense) []float32 {
	return t.Data().([]float32)
}

// Save serializes the full parameter set to path.
func (n *PolicyValueNet) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating checkpoint: %w", err)
	}
	defer f.Close()

	ck := checkpoint{
		InputDim:   n.inputDim,
		HiddenDim:  n.hiddenDim,
		NumActions: n.numActions,
		W1:         params(n.w1), B1: params(n.b1),
		W2: params(n.w2), B2: params(n.b2),
		WP: params(n.wp), BP: params(n.bp),
		WV: params(n.wv), BV: params(n.bv),
	}
	if err := gob.NewEncoder(f).Encode(&ck); err != nil {
		return fmt.Errorf("encoding checkpoint: %w", err)
	}
	return nil
}

// Load reconstructs a predictor with the default architecture
// hyperparameters and restores its parameters from path. The instance
// is ready for inference immediately; a shape mismatch is fatal to the
// load and no partially-initialized predictor escapes.
func Load(path string) (*PolicyValueNet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening checkpoint: %w", err)
	}
	defer f.Close()

	var ck checkpoint
	if err := gob.NewDecoder(f).Decode(&ck); err != nil {
		return nil, fmt.Errorf("decoding checkpoint: %w", err)
	}

	n := NewPolicyValueNet(DefaultInputDim, DefaultHiddenDim, DefaultNumActions)
	if ck.InputDim != n.inputDim || ck.HiddenDim != n.hiddenDim || ck.NumActions != n.numActions {
		return nil, fmt.Errorf("checkpoint architecture %dx%dx%d does not match %dx%dx%d",
			ck.InputDim, ck.HiddenDim, ck.NumActions, n.inputDim, n.hiddenDim, n.numActions)
	}

	for _, p := range []struct {
		dst  *tensor.Dense
		src  []float32
		name string
	}{
		{n.w1, ck.W1, "w1"}, {n.b1, ck.B1, "b1"},
		{n.w2, ck.W2, "w2"}, {n.b2, ck.B2, "b2"},
		{n.wp, ck.WP, "wp"}, {n.bp, ck.BP, "bp"},
		{n.wv, ck.WV, "wv"}, {n.bv, ck.BV, "bv"},
	} {
		dst := params(p.dst)
		if len(p.src) != len(dst) {
			return nil, fmt.Errorf("checkpoint %s has %d parameters, want %d", p.name, len(p.src), len(dst))
		}
		copy(dst, p.src)
	}
	return n, nil
}
