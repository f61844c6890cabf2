package aes

// Bs2 and Bs4 are the subfield states Canright's composite-field S-box
// recurses through. They never appear in round processing — only inside
// the S-box inverse, and inside basis.go while deriving the matrices that
// carry a byte between AES's own field and this tower.
//
// Bs2 represents one element of GF(2^2) = GF(2)[y]/(y^2+y+1) as its two
// coefficients (hi*y + lo), each an arbitrary-width lane so the whole
// tower operates on every bit position a Lane carries at once.
type Bs2[T Lane[T]] struct {
	hi, lo T
}

func (a Bs2[T]) add(b Bs2[T]) Bs2[T] {
	return Bs2[T]{hi: a.hi.Xor(b.hi), lo: a.lo.Xor(b.lo)}
}

// mul multiplies two GF(2^2) elements: (a1 y+a0)(b1 y+b0) reduced by
// y^2 = y+1.
func (a Bs2[T]) mul(b Bs2[T]) Bs2[T] {
	t := a.lo.And(b.lo)
	hi := a.lo.Xor(a.hi).And(b.lo.Xor(b.hi)).Xor(t)
	lo := t.Xor(a.hi.And(b.hi))
	return Bs2[T]{hi: hi, lo: lo}
}

// mulY multiplies by the field generator y = (hi=1, lo=0) itself.
func (a Bs2[T]) mulY() Bs2[T] {
	return Bs2[T]{hi: a.lo.Xor(a.hi), lo: a.hi}
}

func (a Bs2[T]) sq() Bs2[T] {
	return Bs2[T]{hi: a.hi, lo: a.lo.Xor(a.hi)}
}

// inv is GF(2^2) inversion. GF(2^2)* has order 3, so x^2 = x^-1 for every
// nonzero x, and squaring a zero element stays zero — inversion and
// squaring are the same function.
func (a Bs2[T]) inv() Bs2[T] {
	return a.sq()
}

// timesLambda multiplies by Λ, the fixed GF(2^2) element GF(2^4) is built
// over (GF(2^4) = GF(2^2)[z]/(z^2+z+Λ)). Λ is the fixed constant (1,1),
// i.e. y+1; this closed form is the general mul() formula specialized to it.
func (a Bs2[T]) timesLambda() Bs2[T] {
	return Bs2[T]{hi: a.lo, lo: a.lo.Xor(a.hi)}
}

// Bs4 represents one element of GF(2^4) = GF(2^2)[z]/(z^2+z+Λ) as its two
// GF(2^2) coefficients (hi*z + lo).
type Bs4[T Lane[T]] struct {
	hi, lo Bs2[T]
}

func (a Bs4[T]) add(b Bs4[T]) Bs4[T] {
	return Bs4[T]{hi: a.hi.add(b.hi), lo: a.lo.add(b.lo)}
}

func (a Bs4[T]) mul(b Bs4[T]) Bs4[T] {
	hh := a.hi.mul(b.hi)
	hi := hh.add(a.hi.mul(b.lo)).add(a.lo.mul(b.hi))
	lo := hh.timesLambda().add(a.lo.mul(b.lo))
	return Bs4[T]{hi: hi, lo: lo}
}

func (a Bs4[T]) sq() Bs4[T] {
	hh := a.hi.sq()
	return Bs4[T]{hi: hh, lo: hh.timesLambda().add(a.lo.sq())}
}

// inv is Itoh-Tsujii inversion: a^-1 = conj(a) * (a*conj(a))^-1, where
// conj(a1 z+a0) = a1 z+(a1+a0) since the two roots of z^2+z+Λ sum to 1.
func (a Bs4[T]) inv() Bs4[T] {
	delta := a.hi.sq().timesLambda().add(a.hi.mul(a.lo)).add(a.lo.sq())
	deltaInv := delta.inv()
	hi := a.hi.mul(deltaInv)
	lo := a.hi.add(a.lo).mul(deltaInv)
	return Bs4[T]{hi: hi, lo: lo}
}

// timesPhi multiplies by Φ = Y·z (Y the GF(2^2) generator), the fixed
// GF(2^4) element GF(2^8) is built over (GF(2^8) = GF(2^4)[w]/(w^2+w+Φ)).
// Φ is a fixed constant; this closed form distributes a*(Y*z) using
// Bs2.mulY/timesLambda directly: (a1 z+a0)(Y z) = a1*Y*(z+Λ) + a0*Y*z
// = (a1+a0)*Y*z + a1*Y*Λ.
func (a Bs4[T]) timesPhi() Bs4[T] {
	hi := a.hi.add(a.lo).mulY()
	lo := a.hi.mulY().timesLambda()
	return Bs4[T]{hi: hi, lo: lo}
}
