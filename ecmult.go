package p256k1

// EcmultVar performs variable-time scalar multiplication of an arbitrary
// point: r = k*P. This is the double-and-add fallback used when no
// BigMultContext table is available for the base in question (BigMultContext
// only precomputes multiples of the generator).
func EcmultVar(r *GroupElementJacobian, k *Scalar, p *GroupElementAffine) {
	if k.isZero() || p.infinity {
		r.setInfinity()
		return
	}

	r.setInfinity()
	for i := 255; i >= 0; i-- {
		r.double(r)
		if k.getBits(uint(i), 1) != 0 {
			r.addGE(r, p)
		}
	}
}

// ecmultGenFallback computes k*G by double-and-add over the generator,
// without any precomputed table. BigMultContext.Mul is the fast path;
// this exists for scalars needed before a table has been built, and as a
// reference implementation to check table-based results against.
func ecmultGenFallback(r *GroupElementJacobian, k *Scalar) {
	EcmultVar(r, k, &GeneratorAffine)
}
