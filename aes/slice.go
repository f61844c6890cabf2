package aes

import "encoding/binary"

// sliceNarrow packs one 16-byte block, read as four little-endian 32-bit
// words in column-major order, into a Bs8[lane16]: bit `bit` of plane x is
// the `bit`-th bit of word `col`, placed at position 4*row+col where row
// is which byte of the word it came from.
func sliceNarrow(block []byte) Bs8[lane16] {
	words := [4]uint32{
		binary.LittleEndian.Uint32(block[0:4]),
		binary.LittleEndian.Uint32(block[4:8]),
		binary.LittleEndian.Uint32(block[8:12]),
		binary.LittleEndian.Uint32(block[12:16]),
	}
	return sliceNarrowWords(words)
}

func sliceNarrowWords(w [4]uint32) Bs8[lane16] {
	pb := func(x uint32, bit, shift uint) lane16 {
		return lane16(((x >> bit) & 1)) << shift
	}
	construct := func(bit uint) lane16 {
		return pb(w[0], bit, 0) | pb(w[1], bit, 1) | pb(w[2], bit, 2) | pb(w[3], bit, 3) |
			pb(w[0], bit+8, 4) | pb(w[1], bit+8, 5) | pb(w[2], bit+8, 6) | pb(w[3], bit+8, 7) |
			pb(w[0], bit+16, 8) | pb(w[1], bit+16, 9) | pb(w[2], bit+16, 10) | pb(w[3], bit+16, 11) |
			pb(w[0], bit+24, 12) | pb(w[1], bit+24, 13) | pb(w[2], bit+24, 14) | pb(w[3], bit+24, 15)
	}
	var p [8]lane16
	for i := uint(0); i < 8; i++ {
		p[i] = construct(i)
	}
	return bs8FromPlanes(p)
}

func unsliceNarrow(bs Bs8[lane16]) [4]uint32 {
	planes := bs.planes()
	pb := func(x lane16, bit uint, shift uint) uint32 {
		return uint32((x>>bit)&1) << shift
	}
	deconstruct := func(bit uint) uint32 {
		var v uint32
		for i := 0; i < 8; i++ {
			v |= pb(planes[i], bit, uint(i))
			v |= pb(planes[i], bit+4, uint(i)+8)
			v |= pb(planes[i], bit+8, uint(i)+16)
			v |= pb(planes[i], bit+12, uint(i)+24)
		}
		return v
	}
	return [4]uint32{deconstruct(0), deconstruct(1), deconstruct(2), deconstruct(3)}
}

func unsliceNarrowBytes(bs Bs8[lane16], out []byte) {
	w := unsliceNarrow(bs)
	binary.LittleEndian.PutUint32(out[0:4], w[0])
	binary.LittleEndian.PutUint32(out[4:8], w[1])
	binary.LittleEndian.PutUint32(out[8:12], w[2])
	binary.LittleEndian.PutUint32(out[12:16], w[3])
}

// wideBitMasks holds, at index i, the word with bit i of every byte set —
// the fixed masks the wide slice/unslice butterfly ANDs against after
// rotating each block's word into alignment (block k's contribution is
// kept by mask k).
var wideBitMasks = [8]uint32{
	0x01010101, 0x02020202, 0x04040404, 0x08080808,
	0x10101010, 0x20202020, 0x40404040, 0x80808080,
}

// sliceWide packs eight 16-byte blocks into a Bs8[lane32x4]: plane `bit`,
// row `r`, byte `c`, bit `blk` holds bit `bit` of state byte (r, c) of
// block `blk` — i.e. every plane keeps one block's byte layout but swaps
// in "which of the eight blocks" for "which bit of the byte".
func sliceWide(data []byte) Bs8[lane32x4] {
	var t [8]lane32x4
	for blk := 0; blk < 8; blk++ {
		t[blk] = readRowMajor(data[blk*16 : blk*16+16])
	}
	return bitTranspose(t)
}

// sliceWideFill bit-slices a single round key's four words by filling all
// eight parallel block slots with the same word quartet — used when
// building the wide backend's round key schedule, which otherwise carries
// identical round keys in every lane.
func sliceWideFill(a, b, c, d uint32) Bs8[lane32x4] {
	w := [4]uint32{a, b, c, d}
	var buf [16]byte
	for c, x := range w {
		binary.LittleEndian.PutUint32(buf[4*c:], x)
	}
	var t [8]lane32x4
	for i := range t {
		t[i] = readRowMajor(buf[:])
	}
	return bitTranspose(t)
}

// bitTranspose is the shared butterfly both sliceWide and unsliceWide use:
// it is its own inverse, since XOR-ing in bit k of block i and extracting
// it again are the same masked-rotate operation run in either direction.
func bitTranspose(t [8]lane32x4) Bs8[lane32x4] {
	var p [8]lane32x4
	for bit := 0; bit < 8; bit++ {
		var acc lane32x4
		for blk := 0; blk < 8; blk++ {
			shift := blk - bit
			rotated := rotateLeftEach(t[blk], shift)
			mask := fillWord(wideBitMasks[blk])
			acc = acc.Xor(rotated.And(mask))
		}
		p[bit] = acc
	}
	return bs8FromPlanes(p)
}

func unsliceWide(bs Bs8[lane32x4], out []byte) {
	blocks := bitTranspose(bs.planes()).planes()
	for blk := 0; blk < 8; blk++ {
		writeRowMajor(blocks[blk], out[blk*16:blk*16+16])
	}
}
