package aes

const BlockSize = 16

// Block is the narrow backend: it processes one 128-bit block per call.
// The zero value is not usable — build one with NewEncrypter or
// NewDecrypter.
type Block struct {
	schedule []Bs8[lane16]
	rounds   int
}

// BlockX8 is the wide backend: it processes eight 128-bit blocks per call,
// sharing the S-box and round-key work across all eight. Build one with
// NewEncrypterX8 or NewDecrypterX8.
type BlockX8 struct {
	schedule []Bs8[lane32x4]
	rounds   int
}

func narrowSchedule(words [][4]uint32) []Bs8[lane16] {
	sk := make([]Bs8[lane16], len(words))
	for i, w := range words {
		sk[i] = sliceNarrowWords(w)
	}
	return sk
}

func wideSchedule(words [][4]uint32) []Bs8[lane32x4] {
	sk := make([]Bs8[lane32x4], len(words))
	for i, w := range words {
		sk[i] = sliceWideFill(w[0], w[1], w[2], w[3])
	}
	return sk
}

// NewEncrypter builds a narrow-backend AES encrypter from a 16, 24 or
// 32-byte key, selecting AES-128, AES-192 or AES-256 accordingly.
func NewEncrypter(key []byte) (*Block, error) {
	words, rounds, err := expandRoundKeys(key, false)
	if err != nil {
		return nil, err
	}
	return &Block{schedule: narrowSchedule(words), rounds: rounds}, nil
}

// NewDecrypter builds a narrow-backend AES decrypter from a 16, 24 or
// 32-byte key.
func NewDecrypter(key []byte) (*Block, error) {
	words, rounds, err := expandRoundKeys(key, true)
	if err != nil {
		return nil, err
	}
	return &Block{schedule: narrowSchedule(words), rounds: rounds}, nil
}

// NewEncrypterX8 builds a wide-backend AES encrypter that processes eight
// blocks per call from a 16, 24 or 32-byte key.
func NewEncrypterX8(key []byte) (*BlockX8, error) {
	words, rounds, err := expandRoundKeys(key, false)
	if err != nil {
		return nil, err
	}
	return &BlockX8{schedule: wideSchedule(words), rounds: rounds}, nil
}

// NewDecrypterX8 builds a wide-backend AES decrypter that processes eight
// blocks per call from a 16, 24 or 32-byte key.
func NewDecrypterX8(key []byte) (*BlockX8, error) {
	words, rounds, err := expandRoundKeys(key, true)
	if err != nil {
		return nil, err
	}
	return &BlockX8{schedule: wideSchedule(words), rounds: rounds}, nil
}

// EncryptBlock encrypts src into dst, 16 bytes each. src and dst may fully
// overlap but must not partially overlap.
func (b *Block) EncryptBlock(dst, src []byte) {
	if len(src) != BlockSize || len(dst) != BlockSize {
		panic("aes: block must be 16 bytes")
	}
	out := encryptCore(sliceNarrow(src), b.schedule)
	unsliceNarrowBytes(out, dst)
}

// DecryptBlock decrypts src into dst, 16 bytes each.
func (b *Block) DecryptBlock(dst, src []byte) {
	if len(src) != BlockSize || len(dst) != BlockSize {
		panic("aes: block must be 16 bytes")
	}
	out := decryptCore(sliceNarrow(src), b.schedule)
	unsliceNarrowBytes(out, dst)
}

// EncryptBlockX8 encrypts eight 16-byte blocks (128 bytes) from src into
// dst in parallel.
func (b *BlockX8) EncryptBlockX8(dst, src []byte) {
	if len(src) != BlockSize*8 || len(dst) != BlockSize*8 {
		panic("aes: wide block must be 128 bytes")
	}
	out := encryptCore(sliceWide(src), b.schedule)
	unsliceWide(out, dst)
}

// DecryptBlockX8 decrypts eight 16-byte blocks (128 bytes) from src into
// dst in parallel.
func (b *BlockX8) DecryptBlockX8(dst, src []byte) {
	if len(src) != BlockSize*8 || len(dst) != BlockSize*8 {
		panic("aes: wide block must be 128 bytes")
	}
	out := decryptCore(sliceWide(src), b.schedule)
	unsliceWide(out, dst)
}
