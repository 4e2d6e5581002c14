package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// SnapshotSealer protects persisted session blobs at rest. It knows nothing
// about sessions or storage; it only turns plaintext into an opaque string
// and back.
//
// Blob layout (base64, standard encoding):
//
//	salt (16 bytes) ‖ nonce (24 bytes) ‖ ciphertext
//
// The key is derived from the configured passphrase and the salt with
// Argon2id, and the payload is sealed with XChaCha20-Poly1305.
type SnapshotSealer interface {
	// Seal encrypts plaintext and returns the encoded blob.
	Seal(plaintext []byte) (string, error)

	// Open decodes and decrypts a blob produced by Seal. It returns
	// [ErrSealedBlobInvalid] for malformed input and [ErrSealedBlobTampered]
	// when authentication fails (wrong passphrase or modified data).
	Open(blob string) ([]byte, error)
}
