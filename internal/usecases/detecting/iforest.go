package detecting

import (
	"math"
	"math/rand"
	"sort"
)

// Parâmetros do detector
const (
	Contamination = 0.1
	Trees         = 100
	Seed          = 42
	MaxSamples    = 256

	eulerGamma = 0.5772156649
)

// IsolationForest isola valores de uma dimensão com árvores de partição aleatória.
// Valores que exigem menos partições para ficarem sozinhos são mais anômalos.
type IsolationForest struct {
	Trees         int
	MaxSamples    int
	Contamination float64
	Seed          int64
}

func NewIsolationForest() *IsolationForest {
	return &IsolationForest{
		Trees:         Trees,
		MaxSamples:    MaxSamples,
		Contamination: Contamination,
		Seed:          Seed,
	}
}

type node struct {
	split       float64
	left, right *node
	size        int
}

// Score ajusta a floresta aos valores e retorna, para cada um, o score (menor é mais
// anômalo) e se ele foi rotulado como anomalia.
func (f *IsolationForest) Score(values []float64) ([]float64, []bool) {
	n := len(values)
	if n == 0 {
		return nil, nil
	}

	samples := f.MaxSamples
	if samples <= 0 || samples > n {
		samples = n
	}
	depthLimit := int(math.Ceil(math.Log2(math.Max(float64(samples), 2))))

	rng := rand.New(rand.NewSource(f.Seed))
	trees := make([]*node, 0, f.Trees)
	for i := 0; i < f.Trees; i++ {
		perm := rng.Perm(n)[:samples]
		subset := make([]float64, samples)
		for j, idx := range perm {
			subset[j] = values[idx]
		}
		trees = append(trees, buildTree(rng, subset, 0, depthLimit))
	}

	norm := averagePathLength(samples)
	scores := make([]float64, n)
	for i, v := range values {
		total := 0.0
		for _, tree := range trees {
			total += pathLength(tree, v, 0)
		}
		mean := total / float64(len(trees))

		if norm == 0 {
			scores[i] = -1
			continue
		}
		scores[i] = -math.Pow(2, -mean/norm)
	}

	threshold := percentile(scores, f.Contamination*100)
	labels := make([]bool, n)
	for i, s := range scores {
		labels[i] = s < threshold
	}

	return scores, labels
}

func buildTree(rng *rand.Rand, values []float64, depth, limit int) *node {
	if depth >= limit || len(values) <= 1 {
		return &node{size: len(values)}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return &node{size: len(values)}
	}

	split := lo + rng.Float64()*(hi-lo)
	var left, right []float64
	for _, v := range values {
		if v < split {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	return &node{
		split: split,
		left:  buildTree(rng, left, depth+1, limit),
		right: buildTree(rng, right, depth+1, limit),
		size:  len(values),
	}
}

func pathLength(n *node, v float64, depth int) float64 {
	if n.left == nil && n.right == nil {
		return float64(depth) + averagePathLength(n.size)
	}
	if v < n.split {
		return pathLength(n.left, v, depth+1)
	}
	return pathLength(n.right, v, depth+1)
}

// averagePathLength é o comprimento médio de uma busca sem sucesso em uma árvore binária com n nós
func averagePathLength(n int) float64 {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	}
	fn := float64(n)
	return 2*(math.Log(fn-1)+eulerGamma) - 2*(fn-1)/fn
}

// percentile usa interpolação linear entre os vizinhos mais próximos
func percentile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}
