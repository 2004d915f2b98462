package ring

import "rlwekex/internal/xerrors"

// Power computes x^y mod q by binary exponentiation. A negative exponent
// is a programmer error — the protocol never requires one — and is
// reported rather than panicking.
func Power(x, y, q int32) (int32, error) {
	if y < 0 {
		return 0, xerrors.ErrExponentNegative
	}
	return power64(x, int64(y), q), nil
}

// power64 is the panic-free core used once the exponent is known
// non-negative (ring construction calls this directly with exponents
// it derives itself, never from untrusted input).
func power64(x int32, y int64, q int32) int32 {
	result := int64(1)
	base := int64(x) % int64(q)
	if base < 0 {
		base += int64(q)
	}
	for y > 0 {
		if y&1 == 1 {
			result = (result * base) % int64(q)
		}
		base = (base * base) % int64(q)
		y >>= 1
	}
	return int32(result)
}

// inverse returns the multiplicative inverse of x in Z_q by linear scan.
// Acceptable because q is small (<= 40961) and this only runs at ring
// construction time, never in the NTT hot loop.
func inverse(x, q int32) int32 {
	x = ((x % q) + q) % q
	for candidate := int32(1); candidate < q; candidate++ {
		if int64(x)*int64(candidate)%int64(q) == 1 {
			return candidate
		}
	}
	return 0
}

// primitiveNthRoot finds z in [1, q) with z^n = 1 and z^k != 1 for
// 0 < k < n, by exhaustive search. Acceptable given the small q used
// by the Medium/High presets.
func primitiveNthRoot(n, q int32) (int32, bool) {
	for z := int32(2); z < q; z++ {
		if power64(z, int64(n), q) != 1 {
			continue
		}
		if hasOrder(z, n, q) {
			return z, true
		}
	}
	return 0, false
}

// primitive2NthRoot finds psi with psi^2 equal to the primitive n-th
// root z and psi^n = q-1 (i.e. -1 mod q), by exhaustive search over
// psi ascending from 2. Searching for a square root of z (rather than
// independently searching for an order-2n element) is what pins down
// one of the two candidate square roots as canonical: z always has two
// square roots mod q, and both satisfy psi^n = q-1, so the tie is
// broken by taking the smaller one found first.
func primitive2NthRoot(n, q int32) (int32, bool) {
	z, ok := primitiveNthRoot(n, q)
	if !ok {
		return 0, false
	}
	for psi := int32(2); psi < q; psi++ {
		if power64(psi, 2, q) != z {
			continue
		}
		if power64(psi, int64(n), q) != q-1 {
			continue
		}
		return psi, true
	}
	return 0, false
}

// hasOrder reports whether z has exact multiplicative order n modulo q,
// i.e. z^n == 1 and no smaller divisor of n also yields 1. Both n and
// 2n in this module are powers of two, so only the power-of-two
// divisors need checking.
func hasOrder(z, n, q int32) bool {
	for k := n / 2; k >= 1; k /= 2 {
		if power64(z, int64(k), q) == 1 {
			return false
		}
		if k == 1 {
			break
		}
	}
	return true
}
