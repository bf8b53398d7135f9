// Package nn implements the policy-value predictor: a two-stage MLP
// mapping an encoded observation to an action-probability distribution
// and a scalar value estimate in [-1, 1].
package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/solitairelab/klondike/bridge"
	"github.com/solitairelab/klondike/move"
)

// Default architecture hyperparameters. The input dimension tracks the
// engine's observation length and the action head tracks the single
// action-space constant, so the three cannot drift apart.
const (
	DefaultInputDim   = bridge.ObservationLen
	DefaultHiddenDim  = 256
	DefaultNumActions = move.NbActions
)

// PolicyValueNet holds the network parameters. Inference never mutates
// them, so repeated Predict calls on the same input are deterministic.
type PolicyValueNet struct {
	inputDim   int
	hiddenDim  int
	numActions int

	w1, b1 *tensor.Dense
	w2, b2 *tensor.Dense
	wp, bp *tensor.Dense
	wv, bv *tensor.Dense
}

// NewPolicyValueNet constructs a network with Xavier-uniform weights
// and zero biases.
func NewPolicyValueNet(inputDim, hiddenDim, numActions int) *PolicyValueNet {
	return &PolicyValueNet{
		inputDim:   inputDim,
		hiddenDim:  hiddenDim,
		numActions: numActions,
		w1:         xavierUniform(inputDim, hiddenDim),
		b1:         zeros(hiddenDim),
		w2:         xavierUniform(hiddenDim, hiddenDim),
		b2:         zeros(hiddenDim),
		wp:         xavierUniform(hiddenDim, numActions),
		bp:         zeros(numActions),
		wv:         xavierUniform(hiddenDim, 1),
		bv:         zeros(1),
	}
}

func xavierUniform(fanIn, fanOut int) *tensor.Dense {
	limit := math.Sqrt(6.0 / float64(fanIn+fanOut))
	u := distuv.Uniform{Min: -limit, Max: limit}
	data := make([]float32, fanIn*fanOut)
	for i := range data {
		data[i] = float32(u.Rand())
	}
	return tensor.New(tensor.WithShape(fanIn, fanOut), tensor.WithBacking(data))
}

func zeros(n int) *tensor.Dense {
	return tensor.New(tensor.WithShape(1, n), tensor.WithBacking(make([]float32, n)))
}

// linear computes x*w + b for a batch-of-one row vector.
func linear(x, w, b *tensor.Dense) (*tensor.Dense, error) {
	y, err := tensor.MatMul(x, w)
	if err != nil {
		return nil, err
	}
	z, err := tensor.Add(y, b)
	if err != nil {
		return nil, err
	}
	return z.(*tensor.Dense), nil
}

func reluInPlace(t *tensor.Dense) {
	data := t.Data().([]float32)
	for i, v := range data {
		if v < 0 {
			data[i] = 0
		}
	}
}

// Predict runs inference on a single unbatched observation, internally
// treating it as a batch of one. It returns a probability vector of
// length numActions summing to 1 and a value in [-1, 1].
func (n *PolicyValueNet) Predict(obs []uint8) ([]float32, float64, error) {
	if len(obs) != n.inputDim {
		return nil, 0, fmt.Errorf("observation length %d, want %d", len(obs), n.inputDim)
	}
	xdata := make([]float32, n.inputDim)
	for i, v := range obs {
		xdata[i] = float32(v)
	}
	x := tensor.New(tensor.WithShape(1, n.inputDim), tensor.WithBacking(xdata))

	h, err := linear(x, n.w1, n.b1)
	if err != nil {
		return nil, 0, err
	}
	reluInPlace(h)
	h, err = linear(h, n.w2, n.b2)
	if err != nil {
		return nil, 0, err
	}
	reluInPlace(h)

	logitsT, err := linear(h, n.wp, n.bp)
	if err != nil {
		return nil, 0, err
	}
	valueT, err := linear(h, n.wv, n.bv)
	if err != nil {
		return nil, 0, err
	}

	policy := softmax(logitsT.Data().([]float32))
	value := math.Tanh(float64(valueT.Data().([]float32)[0]))
	return policy, value, nil
}

// softmax is numerically stabilized by shifting by the max logit.
func softmax(logits []float32) []float32 {
	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}
	probs := make([]float32, len(logits))
	var sum float64
	for i, v := range logits {
		e := math.Exp(float64(v - maxLogit))
		probs[i] = float32(e)
		sum += e
	}
	for i := range probs {
		probs[i] = float32(float64(probs[i]) / sum)
	}
	return probs
}
