package p256k1

// Scratch holds the reusable buffers a batched public-key derivation needs:
// one Jacobian point and two field elements (its Z and Z's inverse) per key
// in flight. Reusing a
// Scratch across calls avoids reallocating these slices for every batch.
type Scratch struct {
	jac  []GroupElementJacobian
	z    []FieldElement
	zinv []FieldElement
}

// NewScratch allocates a Scratch sized for up to capacity keys per batch.
func NewScratch(capacity int) (*Scratch, error) {
	if capacity <= 0 {
		return nil, ErrInvalidArgument
	}
	return &Scratch{
		jac:  make([]GroupElementJacobian, capacity),
		z:    make([]FieldElement, capacity),
		zinv: make([]FieldElement, capacity),
	}, nil
}

// Destroy clears the scratch buffers. The Scratch must not be used
// afterwards.
func (s *Scratch) Destroy() {
	if s == nil {
		return
	}
	for i := range s.jac {
		s.jac[i].clear()
		s.z[i].clear()
		s.zinv[i].clear()
	}
	s.jac = nil
	s.z = nil
	s.zinv = nil
}

// PubkeyCreateSerializedBatch derives SEC1-encoded public keys for every
// private key in seckeys, reusing scratch's buffers and reducing the whole
// batch's Jacobian-to-affine conversion to a single field inversion via
// batchInverse (Montgomery's trick), instead of one inversion per key.
//
// On return, out[i] is nil if seckeys[i] was invalid or produced the point
// at infinity; other slots hold the SEC1 encoding.
func (ctx *BigMultContext) PubkeyCreateSerializedBatch(scratch *Scratch, seckeys [][]byte, compressed bool) ([][]byte, error) {
	n := len(seckeys)
	if n == 0 {
		return nil, ErrInvalidArgument
	}
	if n > len(scratch.jac) {
		return nil, ErrInvalidArgument
	}

	valid := make([]bool, n)

	for i, sk := range seckeys {
		var sec Scalar
		if !sec.setB32Seckey(sk) {
			scratch.jac[i].setInfinity()
			scratch.z[i].setInt(1)
			continue
		}

		ctx.Mul(&scratch.jac[i], &sec)
		if scratch.jac[i].isInfinity() {
			scratch.z[i].setInt(1)
			continue
		}

		valid[i] = true
		scratch.z[i] = scratch.jac[i].z
	}

	batchInverse(scratch.zinv[:n], scratch.z[:n])

	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		if !valid[i] {
			out[i] = nil
			continue
		}

		var aff GroupElementAffine
		aff.setGEJWithZInv(&scratch.jac[i], &scratch.zinv[i])

		pk := PublicKey{point: aff}
		out[i] = pk.Serialize(compressed)
	}

	return out, nil
}
