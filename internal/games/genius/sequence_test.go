package genius

import (
	"math/rand"
	"testing"
)

func TestSequenceCheck(t *testing.T) {
	seq := Sequence{3, 0, 3, 8}

	tests := []struct {
		name     string
		taps     []int
		expected Verdict
	}{
		{"no taps", nil, VerdictPending},
		{"first tap right", []int{3}, VerdictPending},
		{"prefix of three", []int{3, 0, 3}, VerdictPending},
		{"full sequence", []int{3, 0, 3, 8}, VerdictComplete},
		{"first tap wrong", []int{1}, VerdictWrong},
		{"diverges at last", []int{3, 0, 3, 7}, VerdictWrong},
		{"diverges in middle", []int{3, 0, 4}, VerdictWrong},
		{"too many taps", []int{3, 0, 3, 8, 1}, VerdictWrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seq.Check(tt.taps); got != tt.expected {
				t.Errorf("Check(%v) = %v, want %v", tt.taps, got, tt.expected)
			}
		})
	}
}

func TestSequencePrefixesNeverFail(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seq := NewSequence(rng)
	for rep := 0; rep < 30; rep++ {
		seq = seq.Extend(rng)
	}

	for n := 0; n < len(seq); n++ {
		if got := seq.Check(seq[:n]); got != VerdictPending {
			t.Fatalf("prefix of length %d = %v, want pending", n, got)
		}
	}
	if got := seq.Check(seq); got != VerdictComplete {
		t.Errorf("full sequence = %v, want complete", got)
	}
}

func TestNewSequenceHasOneTileInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for rep := 0; rep < 200; rep++ {
		seq := NewSequence(rng)
		if len(seq) != 1 {
			t.Fatalf("NewSequence length = %d, want 1", len(seq))
		}
		if seq[0] < 0 || seq[0] >= TileCount {
			t.Fatalf("tile %d out of range", seq[0])
		}
	}
}

func TestSequenceExtendAppendsWithoutAliasing(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	base := Sequence{1, 2}

	a := base.Extend(rng)
	b := base.Extend(rng)

	if len(base) != 2 {
		t.Fatalf("Extend must not modify the receiver, got %v", base)
	}
	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("Extend should add exactly one tile: %v, %v", a, b)
	}
	if a[0] != 1 || a[1] != 2 || b[0] != 1 || b[1] != 2 {
		t.Errorf("Extend should keep the prefix: %v, %v", a, b)
	}

	a[0] = 8
	if b[0] != 1 || base[0] != 1 {
		t.Error("extended sequences must not share storage")
	}
}

func TestSequenceClone(t *testing.T) {
	if Sequence(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}

	seq := Sequence{4, 5}
	clone := seq.Clone()
	clone[0] = 0
	if seq[0] != 4 {
		t.Error("Clone should not share storage")
	}
}

func TestVerdictString(t *testing.T) {
	if VerdictWrong.String() != "wrong" {
		t.Errorf("VerdictWrong.String() = %q", VerdictWrong.String())
	}
	if Verdict(42).String() != "unknown" {
		t.Error("unknown verdict should stringify as unknown")
	}
}
