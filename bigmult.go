package p256k1

// BigMultContext holds a precomputed fixed-base multiplication table for the
// generator point G, built for a chosen window width w. Larger w trades
// memory (and build time) for fewer point additions per scalar
// multiplication: a 256-bit scalar needs 256/w table lookups plus one final
// carry lookup, instead of 256 doublings.
//
// The table covers windows = 256/w + 1 positions along the scalar. Window i
// (for i < 256/w) holds the 2^(w-1) positive multiples 1..2^(w-1) of
// 2^(i*w)*G; the last window holds the 2^(256 mod w) positive multiples of
// 2^((256/w)*w)*G needed to absorb the remaining high bits and the carry out
// of the last regular window.
type BigMultContext struct {
	w      uint
	rows   [][]GroupElementStorage
	inited bool
}

// MinBigMultWindow and MaxBigMultWindow bound the window width a caller may
// request. Below 4 the table no longer amortizes away meaningful work;
// above 62 a single window's row would need more entries than fit
// comfortably in a uint64 carry budget used by recodeWindows.
const (
	MinBigMultWindow = 4
	MaxBigMultWindow = 62
)

// NewBigMultContext builds a fixed-base table for G with window width w.
func NewBigMultContext(w uint) (*BigMultContext, error) {
	if w < MinBigMultWindow || w > MaxBigMultWindow {
		return nil, ErrInvalidArgument
	}

	full := int(256 / w)
	rem := 256 % w
	windows := full + 1
	rowWidth := 1 << (w - 1)
	lastRowWidth := 1 << rem

	if rowWidth <= 0 || lastRowWidth <= 0 {
		return nil, ErrAllocationFailed
	}

	bases, err := buildBases(windows, w)
	if err != nil {
		return nil, err
	}

	rows := make([][]GroupElementStorage, windows)

	// Flat accumulation buffers for the single batch inversion that converts
	// every table entry (across every window) from Jacobian to affine.
	type pending struct {
		window, slot int
		jac          GroupElementJacobian
	}
	total := full*rowWidth + lastRowWidth
	items := make([]pending, 0, total)
	zs := make([]FieldElement, 0, total)

	for i := 0; i < windows; i++ {
		width := rowWidth
		if i == windows-1 {
			width = lastRowWidth
		}
		rows[i] = make([]GroupElementStorage, width)

		var acc GroupElementJacobian
		acc.setGE(&bases[i])
		items = append(items, pending{i, 0, acc})
		zs = append(zs, acc.z)

		for k := 1; k < width; k++ {
			var next GroupElementJacobian
			next.addGE(&acc, &bases[i])
			acc = next
			items = append(items, pending{i, k, acc})
			zs = append(zs, acc.z)
		}
	}

	zinv := make([]FieldElement, len(zs))
	batchInverse(zinv, zs)

	for idx, it := range items {
		var aff GroupElementAffine
		aff.setGEJWithZInv(&it.jac, &zinv[idx])
		aff.toStorage(&rows[it.window][it.slot])
	}

	return &BigMultContext{w: w, rows: rows, inited: true}, nil
}

// buildBases computes bases[i] = 2^(i*w) * G in affine form for i in
// [0, windows), using a single batch inversion to convert the whole ladder
// at once instead of inverting after each doubling.
func buildBases(windows int, w uint) ([]GroupElementAffine, error) {
	if windows <= 0 {
		return nil, ErrInvalidArgument
	}

	jac := make([]GroupElementJacobian, windows)
	jac[0].setGE(&GeneratorAffine)
	for i := 1; i < windows; i++ {
		cur := jac[i-1]
		for j := uint(0); j < w; j++ {
			var doubled GroupElementJacobian
			doubled.double(&cur)
			cur = doubled
		}
		jac[i] = cur
	}

	zs := make([]FieldElement, windows)
	for i := range jac {
		zs[i] = jac[i].z
	}
	zinv := make([]FieldElement, windows)
	batchInverse(zinv, zs)

	bases := make([]GroupElementAffine, windows)
	for i := range jac {
		bases[i].setGEJWithZInv(&jac[i], &zinv[i])
	}
	return bases, nil
}

// Destroy clears the table's contents. The context must not be used
// afterwards.
func (ctx *BigMultContext) Destroy() {
	if ctx == nil {
		return
	}
	for _, row := range ctx.rows {
		for i := range row {
			row[i] = GroupElementStorage{}
		}
	}
	ctx.rows = nil
	ctx.inited = false
}

// Mul sets r = k*G using the precomputed table. Variable-time: table indices
// and point additions branch on the (secret) scalar's digits, as is standard
// for fixed-base generator multiplication in this kind of engine.
func (ctx *BigMultContext) Mul(r *GroupElementJacobian, k *Scalar) {
	digits := k.recodeWindows(ctx.w)

	r.setInfinity()
	for i, d := range digits {
		if d == 0 {
			continue
		}

		idx := d
		neg := false
		if idx < 0 {
			idx = -idx
			neg = true
		}

		var entry GroupElementAffine
		entry.fromStorage(&ctx.rows[i][idx-1])
		if neg {
			entry.negate(&entry)
		}

		if r.isInfinity() {
			r.setGE(&entry)
		} else {
			r.addGE(r, &entry)
		}
	}
}
