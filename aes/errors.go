package aes

import "errors"

// ErrInvalidKeyLength is returned by NewEncrypter, NewDecrypter and their
// x8 counterparts when the key is not 16, 24 or 32 bytes long.
var ErrInvalidKeyLength = errors.New("aes: invalid key length, must be 16, 24 or 32 bytes")
