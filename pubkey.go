package p256k1

// PublicKey is a parsed secp256k1 public key: a point on the curve, never
// the point at infinity.
type PublicKey struct {
	point GroupElementAffine
}

// tagPubkeyEven, tagPubkeyOdd and tagPubkeyUncompressed are the SEC1 prefix
// bytes distinguishing compressed-even, compressed-odd and uncompressed
// public key encodings.
const (
	tagPubkeyEven         = 0x02
	tagPubkeyOdd          = 0x03
	tagPubkeyUncompressed = 0x04
)

// ECPubkeyCreate derives the public key for seckey using ctx's precomputed
// generator table.
func ECPubkeyCreate(ctx *BigMultContext, pubkey *PublicKey, seckey []byte) error {
	var sec Scalar
	if !sec.setB32Seckey(seckey) {
		return ErrInvalidKey
	}

	var j GroupElementJacobian
	ctx.Mul(&j, &sec)
	if j.isInfinity() {
		return ErrInvalidKey
	}

	pubkey.point.setGEJ(&j)
	return nil
}

// Serialize encodes pubkey in SEC1 form: 33 bytes compressed, or 65 bytes
// uncompressed.
func (pubkey *PublicKey) Serialize(compressed bool) []byte {
	var x, y FieldElement
	x = pubkey.point.x
	y = pubkey.point.y
	x.normalize()
	y.normalize()

	if compressed {
		out := make([]byte, 33)
		if y.isOdd() {
			out[0] = tagPubkeyOdd
		} else {
			out[0] = tagPubkeyEven
		}
		x.getB32(out[1:33])
		return out
	}

	out := make([]byte, 65)
	out[0] = tagPubkeyUncompressed
	x.getB32(out[1:33])
	y.getB32(out[33:65])
	return out
}

// ParsePublicKey decodes a SEC1-encoded public key (compressed or
// uncompressed).
func ParsePublicKey(data []byte) (*PublicKey, error) {
	switch {
	case len(data) == 33 && (data[0] == tagPubkeyEven || data[0] == tagPubkeyOdd):
		var x FieldElement
		x.setB32(data[1:33])

		var pt GroupElementAffine
		if !pt.setXOVar(&x, data[0] == tagPubkeyOdd) {
			return nil, ErrInvalidKey
		}
		return &PublicKey{point: pt}, nil

	case len(data) == 65 && data[0] == tagPubkeyUncompressed:
		var pt GroupElementAffine
		pt.fromBytes(data[1:65])
		if pt.isInfinity() || !pt.isValid() {
			return nil, ErrInvalidKey
		}
		return &PublicKey{point: pt}, nil

	default:
		return nil, ErrInvalidArgument
	}
}

// PubkeyCreateSerialized derives the public key for seckey and returns its
// SEC1 encoding directly. For deriving many keys at once, prefer
// PubkeyCreateSerializedBatch, which amortizes the Jacobian-to-affine field
// inversion across the whole batch instead of paying one per key.
func PubkeyCreateSerialized(ctx *BigMultContext, seckey []byte, compressed bool) ([]byte, error) {
	var pk PublicKey
	if err := ECPubkeyCreate(ctx, &pk, seckey); err != nil {
		return nil, err
	}
	return pk.Serialize(compressed), nil
}
