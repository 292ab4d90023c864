package huffpack

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func makeTestFrequencies() Frequencies {
	var freq Frequencies
	copy(freq[:], []uint64{5, 9, 12, 13, 16, 45})
	freq[EOF] = 1
	return freq
}

func TestBuildTree(t *testing.T) {
	tree := BuildTree(makeTestFrequencies())

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tLen() = 13\n",
		"\tWeight(Root()) = 101\n",
		"\t\"0\": 5 (weight 45)\n",
		"\t\"100\": 2 (weight 12)\n",
		"\t\"101\": 3 (weight 13)\n",
		"\t\"11000\": 256 (weight 1)\n",
		"\t\"11001\": 0 (weight 5)\n",
		"\t\"1101\": 1 (weight 9)\n",
		"\t\"111\": 4 (weight 16)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	if n := tree.NumLeaves(); n != 7 {
		t.Errorf("NumLeaves: expected 7, got %d", n)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	var freq Frequencies
	freq[0x41] = 1000
	freq[EOF] = 1
	tree := BuildTree(freq)

	root := tree.Root()
	if tree.IsLeaf(root) {
		t.Fatalf("root is a leaf")
	}
	left, right := tree.Left(root), tree.Right(root)
	if !tree.IsLeaf(left) || tree.Symbol(left) != EOF {
		t.Errorf("expected EOF on the left")
	}
	if !tree.IsLeaf(right) || tree.Symbol(right) != 0x41 {
		t.Errorf("expected 0x41 on the right")
	}
	if w := tree.Weight(root); w != 1001 {
		t.Errorf("Weight(Root()): expected 1001, got %d", w)
	}
	if n := tree.NumLeaves(); n != 2 {
		t.Errorf("NumLeaves: expected 2, got %d", n)
	}
}

func TestBuildTree_OnlyEOF(t *testing.T) {
	var freq Frequencies
	freq[EOF] = 1
	tree := BuildTree(freq)

	leaves := tree.Leaves()
	if len(leaves) != 2 || leaves[0] != 0 || leaves[1] != EOF {
		t.Errorf("expected placeholder 0 and EOF, got %v", leaves)
	}
	if w := tree.Weight(tree.Left(tree.Root())); w != 0 {
		t.Errorf("placeholder weight: expected 0, got %d", w)
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var freq Frequencies
	for symbol := range freq {
		// Few distinct values, so that ties are common.
		freq[symbol] = uint64(rng.Intn(4))
	}
	freq[EOF] = 1

	var first, second strings.Builder
	_, _ = BuildTree(freq).Dump(&first)
	_, _ = BuildTree(freq).Dump(&second)
	if first.String() != second.String() {
		t.Errorf("BuildTree is not deterministic:\n\tfirst:  %s\n\tsecond: %s", first.String(), second.String())
	}
}

// optimalCost computes the cost of a Huffman code by repeatedly summing the
// two smallest weights.  The cost is the same for every optimal tree.
func optimalCost(freq Frequencies) uint64 {
	var weights []uint64
	for _, n := range freq {
		if n != 0 {
			weights = append(weights, n)
		}
	}
	var cost uint64
	for len(weights) > 1 {
		sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
		sum := weights[0] + weights[1]
		cost += sum
		weights = append(weights[2:], sum)
	}
	return cost
}

func TestBuildTree_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		var freq Frequencies
		for symbol := 0; symbol < AlphabetSize; symbol++ {
			if rng.Intn(3) == 0 {
				freq[symbol] = uint64(rng.Intn(1000))
			}
		}
		freq[EOF] = 1

		ct := DeriveCodes(BuildTree(freq))
		if expect, actual := optimalCost(freq), ct.Cost(freq); expect != actual {
			t.Errorf("iteration %d: expected cost %d, got %d", i, expect, actual)
		}
	}
}
