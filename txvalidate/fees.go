package txvalidate

// addUint64 and mulUint64 are checked 64-bit arithmetic helpers: overflow
// is reported rather than silently wrapped, exactly the discipline of the
// teacher's consensus/util.go addUint64/subUint64. Phase-1 validation never
// panics and never wraps on lovelace arithmetic.

func addUint64(a, b uint64) (sum uint64, overflow bool) {
	sum = a + b
	return sum, sum < a
}

func subUint64(a, b uint64) (diff uint64, underflow bool) {
	if b > a {
		return 0, true
	}
	return a - b, false
}

func mulUint64(a, b uint64) (product uint64, overflow bool) {
	if a == 0 {
		return 0, false
	}
	product = a * b
	return product, product/a != b
}

// sumLovelace totals a set of outputs' lovelace amounts with checked
// addition, used by R5 to compute both the resolved-input total and the
// output total.
func sumLovelace(outs []TxOut) (total uint64, overflow bool) {
	for _, o := range outs {
		total, overflow = addUint64(total, o.Lovelace)
		if overflow {
			return 0, true
		}
	}
	return total, false
}
