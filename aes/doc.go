// Package aes implements AES entirely in software without table lookups or
// other timing-dependent mechanisms. Both a narrow backend (one block at a
// time, 16-bit bit-planes) and a wide backend (eight blocks in parallel,
// 128-bit bit-planes over four 32-bit lanes) are provided; they share the
// same round structure, key schedule, and S-box algebra.
//
// Most software AES implementations substitute bytes via a 256-entry lookup
// table, and that table lookup is not constant time: an address that was
// recently touched is fetched faster than one that was not, which lets a
// careful adversary recover key material by timing repeated encryptions.
// This package never indexes memory with key- or plaintext-derived data.
// Instead it bit-slices the state — regrouping bit 0 of every byte into one
// register, bit 1 into a second, and so on — so that the entire cipher,
// including the nonlinear S-box, reduces to bitwise XOR, AND, NOT, and
// rotation. The cost of computing one S-box output is amortized across
// every bit position the register holds, which is what makes the wide
// backend roughly eight times faster than the narrow one.
//
// The S-box itself is derived with Canright's composite-field construction:
// GF(2^8) is represented as a tower GF(2^8) = GF(2^4)[w]/(w^2+w+Φ) over
// GF(2^4) = GF(2^2)[z]/(z^2+z+Λ) over GF(2^2) = GF(2)[y]/(y^2+y+1), in which
// inversion reduces to a handful of multiplies, squarings, and one
// genuinely trivial GF(2^2) inversion (squaring and inversion coincide in a
// field of three nonzero elements). The basis-change matrices that carry a
// byte between AES's own GF(2^8) representation and this tower are not
// transcribed from the paper; they are derived once, at package
// initialization, from first principles — see basis.go.
//
// This package aims to be clear to read against the algorithm it
// implements, not maximally fast; its protection against cache and branch
// timing comes from never branching on or indexing memory by key- or
// plaintext-derived data.
package aes
