// Package rand implements the RLWE key exchange's seeded random source:
// a hand-rolled ChaCha20 block function (RFC 7539) driving a refillable
// word buffer. The domain needs raw 16-word block output, not a
// stream-cipher byte reader, so this is grounded directly on RFC 7539
// and the original Rust source's quarter-round rather than wired to
// golang.org/x/crypto/chacha20 (see DESIGN.md).
package rand

// chachaState is the canonical 16-word ChaCha20 layout: 4 constant
// words, 8 key words, 1 counter word, 3 nonce words.
type chachaState [16]uint32

var chachaConstants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// newChachaState assembles the initial state from a 256-bit key (as
// eight u32 words), a 32-bit block counter, and a 96-bit nonce (as
// three u32 words), per RFC 7539 section 2.3.
func newChachaState(key [8]uint32, counter uint32, nonce [3]uint32) chachaState {
	var s chachaState
	s[0], s[1], s[2], s[3] = chachaConstants[0], chachaConstants[1], chachaConstants[2], chachaConstants[3]
	for i := 0; i < 8; i++ {
		s[4+i] = key[i]
	}
	s[12] = counter
	s[13], s[14], s[15] = nonce[0], nonce[1], nonce[2]
	return s
}

func rotl32(x uint32, n uint32) uint32 {
	return (x << n) | (x >> (32 - n))
}

// quarterRound applies the RFC 7539 quarter round to state indices a, b,
// c, d in place.
func (s *chachaState) quarterRound(a, b, c, d int) {
	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = rotl32(s[d], 16)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = rotl32(s[b], 12)

	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = rotl32(s[d], 8)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = rotl32(s[b], 7)
}

// block runs the 20-round (10 double-round) ChaCha20 permutation and
// adds the original input back in, per RFC 7539 section 2.3. The
// column rounds operate on the four columns of the state viewed as a
// 4x4 matrix, the diagonal rounds on its four diagonals.
func (s chachaState) block() chachaState {
	working := s
	for round := 0; round < 10; round++ {
		working.quarterRound(0, 4, 8, 12)
		working.quarterRound(1, 5, 9, 13)
		working.quarterRound(2, 6, 10, 14)
		working.quarterRound(3, 7, 11, 15)

		working.quarterRound(0, 5, 10, 15)
		working.quarterRound(1, 6, 11, 12)
		working.quarterRound(2, 7, 8, 13)
		working.quarterRound(3, 4, 9, 14)
	}
	var out chachaState
	for i := range out {
		out[i] = working[i] + s[i]
	}
	return out
}
