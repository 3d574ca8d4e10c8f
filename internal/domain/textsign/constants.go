package textsign

// KeySize is the key length in bytes for every format: the BLAKE3 key, the ChaCha20-Poly1305 key,
// the Ed25519 seed and the Ed25519 public key.
const KeySize = 32

// Blake3DigestSize is the length of a BLAKE3 keyed hash
const Blake3DigestSize = 32

// Ed25519SignatureSize is the length of an Ed25519 signature
const Ed25519SignatureSize = 64

// NonceSize is the ChaCha20-Poly1305 nonce length carried at the tail of an envelope
const NonceSize = 12

// TagSize is the Poly1305 authentication tag length
const TagSize = 16

// KeyTypePrivate represents the secret half of a key pair
const KeyTypePrivate = "private"

// KeyTypePublic represents the public half of a key pair
const KeyTypePublic = "public"

// KeyTypeSymmetric represents a shared secret key
const KeyTypeSymmetric = "symmetric"
