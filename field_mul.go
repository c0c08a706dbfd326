package p256k1

import "math/bits"

// mul multiplies two field elements: r = a * b
func (r *FieldElement) mul(a, b *FieldElement) {
	// Normalize inputs if magnitude is too high
	var aNorm, bNorm FieldElement
	aNorm = *a
	bNorm = *b

	if aNorm.magnitude > 8 {
		aNorm.normalizeWeak()
	}
	if bNorm.magnitude > 8 {
		bNorm.normalizeWeak()
	}

	// Full 5x52 multiplication implementation
	// Compute all cross products: sum(i,j) a[i] * b[j] * 2^(52*(i+j))

	var t [10]uint64 // Temporary array for intermediate results

	// Compute all cross products
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			hi, lo := bits.Mul64(aNorm.n[i], bNorm.n[j])
			k := i + j

			// Add lo to t[k]
			var carry uint64
			t[k], carry = bits.Add64(t[k], lo, 0)

			// Propagate carry and add hi
			if k+1 < 10 {
				t[k+1], carry = bits.Add64(t[k+1], hi, carry)
				// Propagate any remaining carry
				for l := k + 2; l < 10 && carry != 0; l++ {
					t[l], carry = bits.Add64(t[l], 0, carry)
				}
			}
		}
	}

	// Reduce modulo field prime using the fact that 2^256 ≡ 2^32 + 977 (mod p)
	// The field prime is p = 2^256 - 2^32 - 977
	r.reduceFromWide(t)
}

// reduceFromWide reduces a 520-bit (10 limb) value modulo the field prime
func (r *FieldElement) reduceFromWide(t [10]uint64) {
	// The field prime is p = 2^256 - 2^32 - 977 = 0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F
	// We use the fact that 2^256 ≡ 2^32 + 977 (mod p)

	// First, handle the upper limbs (t[5] through t[9])
	// Each represents a multiple of 2^(52*i) where i >= 5

	// Reduction constant for secp256k1: 2^32 + 977 = 0x1000003D1
	const M = uint64(0x1000003D1)

	// Start from the highest limb and work down
	for i := 9; i >= 5; i-- {
		if t[i] == 0 {
			continue
		}

		// t[i] * 2^(52*i) ≡ t[i] * 2^(52*(i-5)) * 2^(52*5) ≡ t[i] * 2^(52*(i-5)) * 2^260
		// Since 2^256 ≡ M (mod p), we have 2^260 ≡ 2^4 * M ≡ 16 * M (mod p)

		// For i=5: 2^260 ≡ 16*M (mod p)
		// For i=6: 2^312 ≡ 2^52 * 16*M ≡ 2^56 * M (mod p)
		// etc.

		shift := uint(52*(i-5) + 4) // Additional 4 bits for the 16 factor

		// Multiply t[i] by the appropriate power of M
		var carry uint64
		if shift < 64 {
			// Simple case: can multiply directly
			factor := M << shift
			hi, lo := bits.Mul64(t[i], factor)

			// Add to appropriate position
			pos := 0
			t[pos], carry = bits.Add64(t[pos], lo, 0)
			if pos+1 < 10 {
				t[pos+1], carry = bits.Add64(t[pos+1], hi, carry)
			}

			// Propagate carry
			for j := pos + 2; j < 10 && carry != 0; j++ {
				t[j], carry = bits.Add64(t[j], 0, carry)
			}
		} else {
			// Need to handle larger shifts by distributing across limbs
			hi, lo := bits.Mul64(t[i], M)
			limbShift := shift / 52
			bitShift := shift % 52

			if bitShift == 0 {
				// Aligned to limb boundary
				if limbShift < 10 {
					t[limbShift], carry = bits.Add64(t[limbShift], lo, 0)
					if limbShift+1 < 10 {
						t[limbShift+1], carry = bits.Add64(t[limbShift+1], hi, carry)
					}
				}
			} else {
				// Need to split across limbs
				loShifted := lo << bitShift
				hiShifted := (lo >> (64 - bitShift)) | (hi << bitShift)

				if limbShift < 10 {
					t[limbShift], carry = bits.Add64(t[limbShift], loShifted, 0)
					if limbShift+1 < 10 {
						t[limbShift+1], carry = bits.Add64(t[limbShift+1], hiShifted, carry)
					}
				}
			}

			// Propagate any remaining carry
			for j := int(limbShift) + 2; j < 10 && carry != 0; j++ {
				t[j], carry = bits.Add64(t[j], 0, carry)
			}
		}

		t[i] = 0 // Clear the processed limb
	}

	// Now we have a value in t[0..4] that may still be >= p
	// Convert to 5x52 format and normalize
	r.n[0] = t[0] & limb0Max
	r.n[1] = ((t[0] >> 52) | (t[1] << 12)) & limb0Max
	r.n[2] = ((t[1] >> 40) | (t[2] << 24)) & limb0Max
	r.n[3] = ((t[2] >> 28) | (t[3] << 36)) & limb0Max
	r.n[4] = ((t[3] >> 16) | (t[4] << 48)) & limb4Max

	r.magnitude = 1
	r.normalized = false

	// Final reduction if needed
	if r.n[4] == limb4Max && r.n[3] == limb0Max && r.n[2] == limb0Max &&
		r.n[1] == limb0Max && r.n[0] >= fieldModulusLimb0 {
		r.reduce()
	}
}

// sqr squares a field element: r = a^2
func (r *FieldElement) sqr(a *FieldElement) {
	// Squaring can be optimized compared to general multiplication
	// For now, use multiplication
	r.mul(a, a)
}

// inv computes the modular inverse of a field element using Fermat's little theorem:
// a^(-1) = a^(p-2) mod p. The addition chain below is the standard one for the
// secp256k1 field prime p = 2^256 - 2^32 - 977 (222 squarings and 11 multiplies build
// the x223 rung, then a final sliding-window pass spends 23+5+3+2 squarings to reach p-2).
func (r *FieldElement) inv(a *FieldElement) {
	var x2, x3, x6, x9, x11, x22, x44, x88, x176, x220, x223, t1 FieldElement

	x2.sqr(a)
	x2.mul(&x2, a)

	x3.sqr(&x2)
	x3.mul(&x3, a)

	x6 = x3
	for j := 0; j < 3; j++ {
		x6.sqr(&x6)
	}
	x6.mul(&x6, &x3)

	x9 = x6
	for j := 0; j < 3; j++ {
		x9.sqr(&x9)
	}
	x9.mul(&x9, &x3)

	x11 = x9
	for j := 0; j < 2; j++ {
		x11.sqr(&x11)
	}
	x11.mul(&x11, &x2)

	x22 = x11
	for j := 0; j < 11; j++ {
		x22.sqr(&x22)
	}
	x22.mul(&x22, &x11)

	x44 = x22
	for j := 0; j < 22; j++ {
		x44.sqr(&x44)
	}
	x44.mul(&x44, &x22)

	x88 = x44
	for j := 0; j < 44; j++ {
		x88.sqr(&x88)
	}
	x88.mul(&x88, &x44)

	x176 = x88
	for j := 0; j < 88; j++ {
		x176.sqr(&x176)
	}
	x176.mul(&x176, &x88)

	x220 = x176
	for j := 0; j < 44; j++ {
		x220.sqr(&x220)
	}
	x220.mul(&x220, &x44)

	x223 = x220
	for j := 0; j < 3; j++ {
		x223.sqr(&x223)
	}
	x223.mul(&x223, &x3)

	t1 = x223
	for j := 0; j < 23; j++ {
		t1.sqr(&t1)
	}
	t1.mul(&t1, &x22)
	for j := 0; j < 5; j++ {
		t1.sqr(&t1)
	}
	t1.mul(&t1, a)
	for j := 0; j < 3; j++ {
		t1.sqr(&t1)
	}
	t1.mul(&t1, &x2)
	for j := 0; j < 2; j++ {
		t1.sqr(&t1)
	}
	r.mul(a, &t1)

	r.normalize()
}

// sqrt computes the square root of a field element if it exists, using that
// p ≡ 3 (mod 4) so a square root is a^((p+1)/4). Shares the x2..x223 rungs
// with inv, then spends a shorter tail to land on (p+1)/4 instead of p-2.
func (r *FieldElement) sqrt(a *FieldElement) bool {
	var aNorm FieldElement
	aNorm = *a
	aNorm.normalize()

	if aNorm.isZero() {
		r.setInt(0)
		return true
	}

	var x2, x3, x6, x9, x11, x22, x44, x88, x176, x220, x223, t1 FieldElement

	x2.sqr(&aNorm)
	x2.mul(&x2, &aNorm)

	x3.sqr(&x2)
	x3.mul(&x3, &aNorm)

	x6 = x3
	for j := 0; j < 3; j++ {
		x6.sqr(&x6)
	}
	x6.mul(&x6, &x3)

	x9 = x6
	for j := 0; j < 3; j++ {
		x9.sqr(&x9)
	}
	x9.mul(&x9, &x3)

	x11 = x9
	for j := 0; j < 2; j++ {
		x11.sqr(&x11)
	}
	x11.mul(&x11, &x2)

	x22 = x11
	for j := 0; j < 11; j++ {
		x22.sqr(&x22)
	}
	x22.mul(&x22, &x11)

	x44 = x22
	for j := 0; j < 22; j++ {
		x44.sqr(&x44)
	}
	x44.mul(&x44, &x22)

	x88 = x44
	for j := 0; j < 44; j++ {
		x88.sqr(&x88)
	}
	x88.mul(&x88, &x44)

	x176 = x88
	for j := 0; j < 88; j++ {
		x176.sqr(&x176)
	}
	x176.mul(&x176, &x88)

	x220 = x176
	for j := 0; j < 44; j++ {
		x220.sqr(&x220)
	}
	x220.mul(&x220, &x44)

	x223 = x220
	for j := 0; j < 3; j++ {
		x223.sqr(&x223)
	}
	x223.mul(&x223, &x3)

	t1 = x223
	for j := 0; j < 23; j++ {
		t1.sqr(&t1)
	}
	t1.mul(&t1, &x22)
	for j := 0; j < 6; j++ {
		t1.sqr(&t1)
	}
	t1.mul(&t1, &x2)
	t1.sqr(&t1)
	r.sqr(&t1)

	// Verify the result by squaring; a may not have been a quadratic residue.
	var check FieldElement
	check.sqr(r)
	check.normalize()
	return check.equal(&aNorm)
}

// half computes r = a/2 mod p.
// This follows the C secp256k1_fe_impl_half implementation: conditionally add p
// (which is odd) when a is odd so the sum is even, then shift right by one bit
// across all five limbs, carrying the low bit of each limb into the one below it.
func (r *FieldElement) half(a *FieldElement) {
	t0, t1, t2, t3, t4 := a.n[0], a.n[1], a.n[2], a.n[3], a.n[4]

	mask := -(t0 & 1) >> 12

	t0 += fieldModulusLimb0 & mask
	t1 += mask
	t2 += mask
	t3 += mask
	t4 += mask >> 4

	r.n[0] = (t0 >> 1) + ((t1 & 1) << 51)
	r.n[1] = (t1 >> 1) + ((t2 & 1) << 51)
	r.n[2] = (t2 >> 1) + ((t3 & 1) << 51)
	r.n[3] = (t3 >> 1) + ((t4 & 1) << 51)
	r.n[4] = t4 >> 1

	r.magnitude = a.magnitude/2 + 1
	r.normalized = false
}
