package aes

// This file derives the basis-change matrices the S-box needs to move a
// byte between AES's own GF(2^8) representation (with reduction polynomial
// x^8+x^4+x^3+x+1) and the composite tower GF(2^8) = GF(2^4)[w]/(w^2+w+Φ)
// over GF(2^4) = GF(2^2)[z]/(z^2+z+Λ) over GF(2^2) = GF(2)[y]/(y^2+y+1)
// that gf.go and state.go compute in.
//
// Rather than transcribe Canright's published matrices (easy to get wrong
// from memory, and unverifiable without running them), this package finds
// a generator of AES's own field and a root of that generator's minimal
// polynomial inside the tower field — guaranteed to exist, since both are
// *the* field of order 256 — and builds the isomorphism between them by
// matching discrete logarithms. A basis-change matrix is just that
// isomorphism's action on the eight standard-basis bytes, recorded as one
// column per input bit; applying it to a bit-sliced state is then pure
// bit-plane XOR (changeBasis), never a table lookup.

// basisMatrix is an 8x8 matrix over GF(2), stored as eight columns: column
// i is the image of the byte with only bit i set.
type basisMatrix [8]byte

// scalarBit is a single GF(2) element, used only to instantiate Bs8 over a
// plain byte instead of a wide bit-plane register while deriving the
// matrices below. None of its rotations are ever exercised: the S-box
// derivation only adds, multiplies and inverts.
type scalarBit uint8

func (a scalarBit) Xor(b scalarBit) scalarBit { return a ^ b }
func (a scalarBit) And(b scalarBit) scalarBit { return a & b }
func (a scalarBit) Not() scalarBit            { return (a ^ 1) & 1 }
func (a scalarBit) Ror1() scalarBit           { return a }
func (a scalarBit) Ror2() scalarBit           { return a }
func (a scalarBit) Ror3() scalarBit           { return a }
func (a scalarBit) ShiftRow() scalarBit       { return a }
func (a scalarBit) InvShiftRow() scalarBit    { return a }

func byteToTower(b byte) Bs8[scalarBit] {
	var p [8]scalarBit
	for i := 0; i < 8; i++ {
		p[i] = scalarBit((b >> uint(i)) & 1)
	}
	return bs8FromPlanes(p)
}

func towerToByte(a Bs8[scalarBit]) byte {
	p := a.planes()
	var b byte
	for i := 0; i < 8; i++ {
		b |= byte(p[i]) << uint(i)
	}
	return b
}

// stdXtime and stdMul implement AES's own GF(2^8) arithmetic (reduction
// polynomial 0x11B) directly on a byte, used only to find a generator and
// its minimal polynomial at init time.
func stdXtime(a byte) byte {
	hi := a & 0x80
	a <<= 1
	if hi != 0 {
		a ^= 0x1b
	}
	return a
}

func stdMul(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			result ^= a
		}
		b >>= 1
		a = stdXtime(a)
	}
	return result
}

func stdPow(a byte, n int) byte {
	result := byte(1)
	base := a
	for n > 0 {
		if n&1 != 0 {
			result = stdMul(result, base)
		}
		base = stdMul(base, base)
		n >>= 1
	}
	return result
}

// findGeneratorStd finds the smallest byte whose multiplicative order is
// 255, i.e. a generator of AES's field. 255 = 3*5*17, so it suffices to
// rule out the three proper subgroup orders.
func findGeneratorStd() byte {
	for g := 2; g < 256; g++ {
		ok := true
		for _, p := range [3]int{3, 5, 17} {
			if stdPow(byte(g), 255/p) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return byte(g)
		}
	}
	panic("aes: no generator found in GF(2^8), arithmetic is broken")
}

// minimalPolynomialStd returns the minimal polynomial of g over GF(2), as
// coefficients low-degree first, by multiplying out (x+c) for every
// distinct Frobenius conjugate of g.
func minimalPolynomialStd(g byte) []byte {
	var conjugates []byte
	seen := make(map[byte]bool)
	c := g
	for !seen[c] {
		seen[c] = true
		conjugates = append(conjugates, c)
		c = stdMul(c, c)
	}

	poly := []byte{1}
	for _, root := range conjugates {
		next := make([]byte, len(poly)+1)
		for i, coef := range poly {
			next[i] ^= stdMul(coef, root)
			next[i+1] ^= coef
		}
		poly = next
	}
	for _, coef := range poly {
		if coef != 0 && coef != 1 {
			panic("aes: minimal polynomial has a non-F2 coefficient, arithmetic is broken")
		}
	}
	return poly
}

func evalPolyInTower(poly []byte, x Bs8[scalarBit]) Bs8[scalarBit] {
	acc := byteToTower(poly[len(poly)-1])
	for i := len(poly) - 2; i >= 0; i-- {
		acc = acc.mul(x).AddRoundKey(byteToTower(poly[i]))
	}
	return acc
}

// findRootInTower finds a root of poly inside the tower field. Since both
// the standard field and the tower are *the* field of order 256, poly
// (irreducible over GF(2), with a root in the standard field by
// construction) splits completely in the tower too.
func findRootInTower(poly []byte) Bs8[scalarBit] {
	var zero Bs8[scalarBit]
	for b := 1; b < 256; b++ {
		if evalPolyInTower(poly, byteToTower(byte(b))) == zero {
			return byteToTower(byte(b))
		}
	}
	panic("aes: minimal polynomial has no root in the tower field, arithmetic is broken")
}

func applyMatrixToByte(m basisMatrix, v byte) byte {
	var out byte
	for col := 0; col < 8; col++ {
		if v&(1<<uint(col)) != 0 {
			out ^= m[col]
		}
	}
	return out
}

func composeMatrices(outer, inner basisMatrix) basisMatrix {
	var out basisMatrix
	for col := 0; col < 8; col++ {
		out[col] = applyMatrixToByte(outer, inner[col])
	}
	return out
}

// invertMatrix inverts an 8x8 GF(2) matrix by Gaussian elimination,
// augmenting each row with the identity and reducing the left half to it.
func invertMatrix(m basisMatrix) basisMatrix {
	var rows [8]uint16
	for r := 0; r < 8; r++ {
		var left byte
		for c := 0; c < 8; c++ {
			if m[c]&(1<<uint(r)) != 0 {
				left |= 1 << uint(c)
			}
		}
		rows[r] = uint16(left) | uint16(1)<<uint(8+r)
	}

	for col := 0; col < 8; col++ {
		pivot := -1
		for r := col; r < 8; r++ {
			if rows[r]&(1<<uint(col)) != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			panic("aes: basis matrix is not invertible")
		}
		rows[col], rows[pivot] = rows[pivot], rows[col]
		for r := 0; r < 8; r++ {
			if r != col && rows[r]&(1<<uint(col)) != 0 {
				rows[r] ^= rows[col]
			}
		}
	}

	var inv basisMatrix
	for c := 0; c < 8; c++ {
		var col byte
		for r := 0; r < 8; r++ {
			if rows[r]&(uint16(1)<<uint(8+c)) != 0 {
				col |= 1 << uint(r)
			}
		}
		inv[c] = col
	}
	return inv
}

// affineMatrixL is the linear part of the AES S-box's output affine
// transform: output bit i is the XOR of input bits (i+0), (i+4), (i+5),
// (i+6) and (i+7) mod 8 (FIPS-197 5.1.1, before the 0x63 constant).
func affineMatrixL() basisMatrix {
	shifts := [5]int{0, 4, 5, 6, 7}
	var m basisMatrix
	for col := 0; col < 8; col++ {
		var c byte
		for row := 0; row < 8; row++ {
			for _, k := range shifts {
				if (col-row+8)%8 == k {
					c |= 1 << uint(row)
				}
			}
		}
		m[col] = c
	}
	return m
}

var (
	matrixA2X basisMatrix // standard GF(2^8) -> tower
	matrixX2A basisMatrix // tower -> standard GF(2^8)
	matrixS2X basisMatrix // post-affine-inverse standard basis -> tower
	matrixX2S basisMatrix // tower -> pre-affine standard basis
)

func init() {
	gStd := findGeneratorStd()
	poly := minimalPolynomialStd(gStd)
	gTow := findRootInTower(poly)

	// Discrete logs of gStd's powers in the standard field.
	var dlogStd [256]int
	cur := byte(1)
	for i := 0; i < 255; i++ {
		dlogStd[cur] = i
		cur = stdMul(cur, gStd)
	}

	// Powers of gTow in the tower field, and their discrete logs.
	var towerPowers [255]byte
	var dlogTow [256]int
	curT := byteToTower(1)
	for i := 0; i < 255; i++ {
		towerPowers[i] = towerToByte(curT)
		dlogTow[towerPowers[i]] = i
		curT = curT.mul(gTow)
	}

	for i := 0; i < 8; i++ {
		unit := byte(1) << uint(i)
		matrixA2X[i] = towerPowers[dlogStd[unit]]
		matrixX2A[i] = stdPow(gStd, dlogTow[unit])
	}

	l := affineMatrixL()
	linv := invertMatrix(l)
	matrixS2X = composeMatrices(matrixA2X, linv)
	matrixX2S = composeMatrices(l, matrixX2A)
}

// changeBasis applies an 8x8 GF(2) matrix to eight bit-planes: output
// plane `row` is the XOR of every input plane whose column has bit `row`
// set. This is the only way a basis-change matrix ever touches data — a
// fixed rewiring of XORs, the same for every byte the lanes carry.
func changeBasis[T Lane[T]](p [8]T, m basisMatrix) [8]T {
	var out [8]T
	for col := 0; col < 8; col++ {
		for row := 0; row < 8; row++ {
			if m[col]&(1<<uint(row)) != 0 {
				out[row] = out[row].Xor(p[col])
			}
		}
	}
	return out
}
