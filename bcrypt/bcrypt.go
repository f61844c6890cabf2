package bcrypt

import "golang.org/x/crypto/blowfish"

// magicCipherText is "OrpheanBeholderScryDoubt" — the fixed 192-bit block
// bcrypt encrypts 64 times, three 64-bit halves at a time. Its bytes are
// exactly the six big-endian 32-bit words from the original cipher's
// constant table; writing it as the ASCII string is equivalent and is how
// the reference Blowfish-based implementations in the wild spell it.
var magicCipherText = []byte("OrpheanBeholderScryDoubt")

// SaltLen and the password length bounds bound the arguments Hash accepts.
const (
	SaltLen        = 16
	MinPasswordLen = 1
	MaxPasswordLen = 72
	OutputLen      = 24
)

// eksBlowfishSetup runs the expensive key-setup step of bcrypt: one salted
// key expansion, then 2^cost rounds alternating a plain re-key on the
// password and on the salt. Each expand_key call is a full Blowfish key
// schedule (P-array and S-boxes), not a single round.
func eksBlowfishSetup(cost uint, salt, password []byte) (*blowfish.Cipher, error) {
	c, err := blowfish.NewSaltedCipher(password, salt)
	if err != nil {
		return nil, err
	}
	rounds := uint64(1) << cost
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(password, c)
		blowfish.ExpandKey(salt, c)
	}
	return c, nil
}

// Hash runs bcrypt's key-derivation loop: EksBlowfishSetup followed by 64
// ECB rounds of Blowfish block encryption over each 64-bit half of the
// fixed "OrpheanBeholderScryDoubt" plaintext, writing the 24-byte result
// into output. It is deterministic and depends only on (cost, salt,
// password).
//
// Preconditions are enforced by panic, matching spec's "fatal assertion at
// entry": salt must be exactly 16 bytes, password must be 1 to 72 bytes,
// and output must be exactly 24 bytes. cost must be in [0, 31].
func Hash(cost uint, salt, password, output []byte) {
	if len(salt) != SaltLen {
		panic("bcrypt: salt must be 16 bytes")
	}
	if len(password) < MinPasswordLen || len(password) > MaxPasswordLen {
		panic("bcrypt: password must be 1 to 72 bytes")
	}
	if len(output) != OutputLen {
		panic("bcrypt: output must be 24 bytes")
	}
	if cost > 31 {
		panic("bcrypt: cost must be in [0, 31]")
	}

	c, err := eksBlowfishSetup(cost, salt, password)
	if err != nil {
		// blowfish.NewSaltedCipher only fails on a key that is too short or
		// too long for Blowfish itself; password's [1,72] bound above and
		// the 16-byte salt bound keep this unreachable.
		panic("bcrypt: " + err.Error())
	}

	ctext := append([]byte(nil), magicCipherText...)
	for i := 0; i < len(ctext); i += blowfish.BlockSize {
		block := ctext[i : i+blowfish.BlockSize]
		for round := 0; round < 64; round++ {
			c.Encrypt(block, block)
		}
	}
	copy(output, ctext)
}
