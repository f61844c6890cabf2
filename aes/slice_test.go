package aes

import (
	"bytes"
	"testing"
)

// Slicing must be self-inverse for both backends over arbitrary byte
// inputs, per spec's testable property 3.
func TestNarrowSliceSelfInverse(t *testing.T) {
	inputs := [][]byte{
		bytes.Repeat([]byte{0x00}, 16),
		bytes.Repeat([]byte{0xff}, 16),
		[]byte("0123456789abcdef"),
		{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10},
	}

	for _, in := range inputs {
		bs := sliceNarrow(in)
		out := make([]byte, 16)
		unsliceNarrowBytes(bs, out)
		if !bytes.Equal(in, out) {
			t.Fatalf("narrow slice/unslice mismatch: in=%x out=%x", in, out)
		}
	}
}

func TestWideSliceSelfInverse(t *testing.T) {
	in := make([]byte, 128)
	for i := range in {
		in[i] = byte(i*7 + 3)
	}

	bs := sliceWide(in)
	out := make([]byte, 128)
	unsliceWide(bs, out)
	if !bytes.Equal(in, out) {
		t.Fatalf("wide slice/unslice mismatch: in=%x out=%x", in, out)
	}
}

func TestWideSliceZeroAndAllOnes(t *testing.T) {
	for _, fill := range []byte{0x00, 0xff} {
		in := bytes.Repeat([]byte{fill}, 128)
		bs := sliceWide(in)
		out := make([]byte, 128)
		unsliceWide(bs, out)
		if !bytes.Equal(in, out) {
			t.Fatalf("wide slice/unslice mismatch for fill %#x: out=%x", fill, out)
		}
	}
}

// The key schedule must be deterministic across repeated runs, and the
// wide backend's per-round-key bit-slicing must replicate the exact same
// four words into every one of the eight parallel block slots (spec
// §4.7's "Key bit-slicing" rationale: the same round key affects every
// parallel block).
func TestKeyScheduleDeterministicAndReplicated(t *testing.T) {
	key := bytes.Repeat([]byte{0x2b}, 16)

	wordsA, roundsA, err := expandRoundKeys(key, false)
	if err != nil {
		t.Fatal(err)
	}
	wordsB, roundsB, err := expandRoundKeys(key, false)
	if err != nil {
		t.Fatal(err)
	}
	if roundsA != roundsB {
		t.Fatalf("round count mismatch: %d vs %d", roundsA, roundsB)
	}
	for i := range wordsA {
		if wordsA[i] != wordsB[i] {
			t.Fatalf("round key %d differs between runs: %v vs %v", i, wordsA[i], wordsB[i])
		}
	}

	wide := wideSchedule(wordsA)
	for i := range wide {
		blocks := bitTranspose(wide[i].planes()).planes()
		for b := 1; b < 8; b++ {
			if blocks[b] != blocks[0] {
				t.Fatalf("round key %d: block slot %d not replicated: %v vs %v", i, b, blocks[b], blocks[0])
			}
		}
	}
}
