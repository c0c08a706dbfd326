package p256k1

import (
	"crypto/rand"
)

// ECSeckeyVerify verifies that a 32-byte array is a valid secret key
func ECSeckeyVerify(seckey []byte) bool {
	if len(seckey) != 32 {
		return false
	}

	var scalar Scalar
	return scalar.setB32Seckey(seckey)
}

// ECSeckeyGenerate generates a new random secret key
func ECSeckeyGenerate() ([]byte, error) {
	seckey := make([]byte, 32)
	for {
		if _, err := rand.Read(seckey); err != nil {
			return nil, err
		}

		if ECSeckeyVerify(seckey) {
			return seckey, nil
		}
	}
}

// ECKeyPairGenerate generates a new key pair (private key and public key),
// deriving the public key via ctx's precomputed generator table.
func ECKeyPairGenerate(ctx *BigMultContext) (seckey []byte, pubkey *PublicKey, err error) {
	seckey, err = ECSeckeyGenerate()
	if err != nil {
		return nil, nil, err
	}

	pubkey = &PublicKey{}
	if err := ECPubkeyCreate(ctx, pubkey, seckey); err != nil {
		return nil, nil, err
	}

	return seckey, pubkey, nil
}
