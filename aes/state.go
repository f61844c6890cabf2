package aes

// Bs8 is the bit-sliced AES state: eight lanes x0..x7, one per bit
// position within a byte, each carrying that bit across every byte the
// backend processes in parallel (16 bytes for the narrow backend, 128 for
// the wide one).
type Bs8[T Lane[T]] struct {
	x0, x1, x2, x3, x4, x5, x6, x7 T
}

func (a Bs8[T]) planes() [8]T {
	return [8]T{a.x0, a.x1, a.x2, a.x3, a.x4, a.x5, a.x6, a.x7}
}

func bs8FromPlanes[T Lane[T]](p [8]T) Bs8[T] {
	return Bs8[T]{p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7]}
}

// toPair splits the flat 8-plane state into the nested Bs4 pair (hi*w+lo)
// Itoh-Tsujii inversion needs, and fromPair rebuilds it. Which planes land
// in hi/lo/hi-of-hi/etc is an internal convention: basis.go derives A2X,
// X2A, S2X and X2S by running this exact split through this exact mul(),
// so any consistent, invertible convention here is self-consistent with
// the derived matrices.
func (a Bs8[T]) toPair() (hi, lo Bs4[T]) {
	lo = Bs4[T]{hi: Bs2[T]{hi: a.x3, lo: a.x2}, lo: Bs2[T]{hi: a.x1, lo: a.x0}}
	hi = Bs4[T]{hi: Bs2[T]{hi: a.x7, lo: a.x6}, lo: Bs2[T]{hi: a.x5, lo: a.x4}}
	return hi, lo
}

func bs8FromPair[T Lane[T]](hi, lo Bs4[T]) Bs8[T] {
	return Bs8[T]{
		x0: lo.lo.lo, x1: lo.lo.hi, x2: lo.hi.lo, x3: lo.hi.hi,
		x4: hi.lo.lo, x5: hi.lo.hi, x6: hi.hi.lo, x7: hi.hi.hi,
	}
}

// inv is GF(2^8) inversion via Itoh-Tsujii: a^-1 = conj(a)*(a*conj(a))^-1,
// where a = hi*w+lo and conj(a) = hi*w+(hi+lo), because the two roots of
// w^2+w+Φ sum to 1.
func (a Bs8[T]) inv() Bs8[T] {
	hi, lo := a.toPair()
	delta := hi.sq().timesPhi().add(hi.mul(lo)).add(lo.sq())
	deltaInv := delta.inv()
	outHi := hi.mul(deltaInv)
	outLo := hi.add(lo).mul(deltaInv)
	return bs8FromPair(outHi, outLo)
}

// mul is general GF(2^8) multiplication in the tower representation. Round
// processing never needs it (MixColumns is expressed as pure bit-plane
// XOR/rotation, and SubBytes needs only inv()); it exists for basis.go,
// which must evaluate polynomials and compute discrete logarithms over the
// tower field while deriving the basis-change matrices.
func (a Bs8[T]) mul(b Bs8[T]) Bs8[T] {
	ah, al := a.toPair()
	bh, bl := b.toPair()
	hh := ah.mul(bh)
	hi := hh.add(ah.mul(bl)).add(al.mul(bh))
	lo := hh.timesPhi().add(al.mul(bl))
	return bs8FromPair(hi, lo)
}

// rebase applies an 8x8 GF(2) basis-change matrix to every plane at once —
// a fixed XOR-of-subsets rewiring, never a data-dependent lookup.
func (a Bs8[T]) rebase(m basisMatrix) Bs8[T] {
	return bs8FromPlanes(changeBasis(a.planes(), m))
}

// xorX63 applies the AES S-box's additive affine constant 0x63, one XOR
// per plane whose bit is set.
func (a Bs8[T]) xorX63() Bs8[T] {
	const c = 0x63
	p := a.planes()
	for i := 0; i < 8; i++ {
		if c&(1<<uint(i)) != 0 {
			p[i] = p[i].Not()
		}
	}
	return bs8FromPlanes(p)
}

func (a Bs8[T]) SubBytes() Bs8[T] {
	nb := a.rebase(matrixA2X)
	inv := nb.inv()
	return inv.rebase(matrixX2S).xorX63()
}

func (a Bs8[T]) InvSubBytes() Bs8[T] {
	t := a.xorX63()
	nb := t.rebase(matrixS2X)
	inv := nb.inv()
	return inv.rebase(matrixX2A)
}

func (a Bs8[T]) ShiftRows() Bs8[T] {
	p := a.planes()
	for i := range p {
		p[i] = p[i].ShiftRow()
	}
	return bs8FromPlanes(p)
}

func (a Bs8[T]) InvShiftRows() Bs8[T] {
	p := a.planes()
	for i := range p {
		p[i] = p[i].InvShiftRow()
	}
	return bs8FromPlanes(p)
}

// MixColumns and InvMixColumns are the Käsper-Schwabe and Azad closed-form
// XOR formulas for AES's column-mixing matrix, expressed directly over
// bit-planes and their Ror1/Ror2/Ror3 rotations — no GF(2^8) multiply
// needed at this level.
func (a Bs8[T]) MixColumns() Bs8[T] {
	x0, x1, x2, x3, x4, x5, x6, x7 := a.x0, a.x1, a.x2, a.x3, a.x4, a.x5, a.x6, a.x7

	x0out := x7.Xor(x7.Ror1()).Xor(x0.Ror1()).Xor(x0.Xor(x0.Ror1()).Ror2())
	x1out := x0.Xor(x0.Ror1()).Xor(x7).Xor(x7.Ror1()).Xor(x1.Ror1()).Xor(x1.Xor(x1.Ror1()).Ror2())
	x2out := x1.Xor(x1.Ror1()).Xor(x2.Ror1()).Xor(x2.Xor(x2.Ror1()).Ror2())
	x3out := x2.Xor(x2.Ror1()).Xor(x7).Xor(x7.Ror1()).Xor(x3.Ror1()).Xor(x3.Xor(x3.Ror1()).Ror2())
	x4out := x3.Xor(x3.Ror1()).Xor(x7).Xor(x7.Ror1()).Xor(x4.Ror1()).Xor(x4.Xor(x4.Ror1()).Ror2())
	x5out := x4.Xor(x4.Ror1()).Xor(x5.Ror1()).Xor(x5.Xor(x5.Ror1()).Ror2())
	x6out := x5.Xor(x5.Ror1()).Xor(x6.Ror1()).Xor(x6.Xor(x6.Ror1()).Ror2())
	x7out := x6.Xor(x6.Ror1()).Xor(x7.Ror1()).Xor(x7.Xor(x7.Ror1()).Ror2())

	return Bs8[T]{x0out, x1out, x2out, x3out, x4out, x5out, x6out, x7out}
}

func (a Bs8[T]) InvMixColumns() Bs8[T] {
	x0, x1, x2, x3, x4, x5, x6, x7 := a.x0, a.x1, a.x2, a.x3, a.x4, a.x5, a.x6, a.x7

	x0out := x5.Xor(x6).Xor(x7).
		Xor(x5.Xor(x7).Xor(x0).Ror1()).
		Xor(x0.Xor(x5).Xor(x6).Ror2()).
		Xor(x5.Xor(x0).Ror3())
	x1out := x5.Xor(x0).
		Xor(x6.Xor(x5).Xor(x0).Xor(x7).Xor(x1).Ror1()).
		Xor(x1.Xor(x7).Xor(x5).Ror2()).
		Xor(x6.Xor(x5).Xor(x1).Ror3())
	x2out := x6.Xor(x0).Xor(x1).
		Xor(x7.Xor(x6).Xor(x1).Xor(x2).Ror1()).
		Xor(x0.Xor(x2).Xor(x6).Ror2()).
		Xor(x7.Xor(x6).Xor(x2).Ror3())
	x3out := x0.Xor(x5).Xor(x1).Xor(x6).Xor(x2).
		Xor(x0.Xor(x5).Xor(x2).Xor(x3).Ror1()).
		Xor(x0.Xor(x1).Xor(x3).Xor(x5).Xor(x6).Xor(x7).Ror2()).
		Xor(x0.Xor(x5).Xor(x7).Xor(x3).Ror3())
	x4out := x1.Xor(x5).Xor(x2).Xor(x3).
		Xor(x1.Xor(x6).Xor(x5).Xor(x3).Xor(x7).Xor(x4).Ror1()).
		Xor(x1.Xor(x2).Xor(x4).Xor(x5).Xor(x7).Ror2()).
		Xor(x1.Xor(x5).Xor(x6).Xor(x4).Ror3())
	x5out := x2.Xor(x6).Xor(x3).Xor(x4).
		Xor(x2.Xor(x7).Xor(x6).Xor(x4).Xor(x5).Ror1()).
		Xor(x2.Xor(x3).Xor(x5).Xor(x6).Ror2()).
		Xor(x2.Xor(x6).Xor(x7).Xor(x5).Ror3())
	x6out := x3.Xor(x7).Xor(x4).Xor(x5).
		Xor(x3.Xor(x7).Xor(x5).Xor(x6).Ror1()).
		Xor(x3.Xor(x4).Xor(x6).Xor(x7).Ror2()).
		Xor(x3.Xor(x7).Xor(x6).Ror3())
	x7out := x4.Xor(x5).Xor(x6).
		Xor(x4.Xor(x6).Xor(x7).Ror1()).
		Xor(x4.Xor(x5).Xor(x7).Ror2()).
		Xor(x4.Xor(x7).Ror3())

	return Bs8[T]{x0out, x1out, x2out, x3out, x4out, x5out, x6out, x7out}
}

func (a Bs8[T]) AddRoundKey(rk Bs8[T]) Bs8[T] {
	return Bs8[T]{
		a.x0.Xor(rk.x0), a.x1.Xor(rk.x1), a.x2.Xor(rk.x2), a.x3.Xor(rk.x3),
		a.x4.Xor(rk.x4), a.x5.Xor(rk.x5), a.x6.Xor(rk.x6), a.x7.Xor(rk.x7),
	}
}

func encryptCore[T Lane[T]](state Bs8[T], sk []Bs8[T]) Bs8[T] {
	last := len(sk) - 1
	tmp := state.AddRoundKey(sk[0])
	for _, subkey := range sk[1:last] {
		tmp = tmp.SubBytes()
		tmp = tmp.ShiftRows()
		tmp = tmp.MixColumns()
		tmp = tmp.AddRoundKey(subkey)
	}
	tmp = tmp.SubBytes()
	tmp = tmp.ShiftRows()
	tmp = tmp.AddRoundKey(sk[last])
	return tmp
}

func decryptCore[T Lane[T]](state Bs8[T], sk []Bs8[T]) Bs8[T] {
	last := len(sk) - 1
	tmp := state.AddRoundKey(sk[last])
	for i := last - 1; i > 0; i-- {
		tmp = tmp.InvSubBytes()
		tmp = tmp.InvShiftRows()
		tmp = tmp.InvMixColumns()
		tmp = tmp.AddRoundKey(sk[i])
	}
	tmp = tmp.InvSubBytes()
	tmp = tmp.InvShiftRows()
	tmp = tmp.AddRoundKey(sk[0])
	return tmp
}
