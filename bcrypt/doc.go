// Package bcrypt implements the EksBlowfishSetup key-derivation loop and
// the "OrpheanBeholderScryDoubt" ECB self-iteration bcrypt is built from,
// on top of golang.org/x/crypto/blowfish. It does not implement Blowfish
// itself — that package is the external collaborator spec'd at the
// boundary — and it does not implement the passphrase-to-bcrypt-string
// textual encoding ($2a$... framing); callers that need that should
// layer it on top of Hash.
package bcrypt
