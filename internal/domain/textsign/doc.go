// Package textsign defines the signing formats, capability interfaces and error kinds shared by
// the text signing engine: a BLAKE3 keyed hash, Ed25519 signatures and ChaCha20-Poly1305
// authenticated encryption used as a signature mechanism.
//
// Signatures are raw bytes inside this package and its implementations. Base64 text only appears
// at the service boundary.
package textsign
