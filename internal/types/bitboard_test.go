/*
 * Lucena - UCI chess engine in GO
 *
 * MIT License
 *
 * Copyright (c) 2023-2026 The Lucena Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardBasics(t *testing.T) {
	assert.Equal(t, Bitboard(1), SqH1.Bb())
	assert.Equal(t, Bitboard(0x80), SqA1.Bb())
	assert.Equal(t, Bitboard(1)<<63, SqA8.Bb())

	b := BbZero
	b.PushSquare(SqE4)
	b.PushSquare(SqD5)
	assert.Equal(t, 2, b.PopCount())
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
	b.PopSquare(SqE4)
	assert.Equal(t, 1, b.PopCount())
	assert.False(t, b.Has(SqE4))
}

func TestBitboardLsbMsb(t *testing.T) {
	b := SqE4.Bb() | SqA8.Bb() | SqH1.Bb()
	assert.Equal(t, SqH1, b.Lsb())
	assert.Equal(t, SqA8, b.Msb())

	assert.Equal(t, SqH1, b.PopLsb())
	assert.Equal(t, SqE4, b.PopLsb())
	assert.Equal(t, SqA8, b.PopLsb())
	assert.Equal(t, SqNone, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestFileRankBb(t *testing.T) {
	assert.Equal(t, FileH_Bb, FileH.Bb())
	assert.Equal(t, FileA_Bb, FileA.Bb())
	assert.Equal(t, Rank1_Bb, Rank1.Bb())
	assert.Equal(t, Rank8_Bb, Rank8.Bb())
	assert.True(t, FileE.Bb().Has(SqE4))
	assert.True(t, Rank4.Bb().Has(SqE4))
}

func TestShiftBitboard(t *testing.T) {
	assert.Equal(t, SqE5.Bb(), ShiftBitboard(SqE4.Bb(), North))
	assert.Equal(t, SqE3.Bb(), ShiftBitboard(SqE4.Bb(), South))
	assert.Equal(t, SqF4.Bb(), ShiftBitboard(SqE4.Bb(), East))
	assert.Equal(t, SqD4.Bb(), ShiftBitboard(SqE4.Bb(), West))
	assert.Equal(t, SqF5.Bb(), ShiftBitboard(SqE4.Bb(), Northeast))
	assert.Equal(t, SqD5.Bb(), ShiftBitboard(SqE4.Bb(), Northwest))

	// no wrap around the board edges
	assert.Equal(t, BbZero, ShiftBitboard(SqH4.Bb(), East))
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bb(), West))
	assert.Equal(t, BbZero, ShiftBitboard(SqH2.Bb(), Northeast))
	assert.Equal(t, BbZero, ShiftBitboard(SqA2.Bb(), Northwest))
	assert.Equal(t, BbZero, ShiftBitboard(Rank8_Bb, North))
	assert.Equal(t, BbZero, ShiftBitboard(Rank1_Bb, South))
}

func TestIntermediate(t *testing.T) {
	// file
	expected := SqH2.Bb() | SqH3.Bb() | SqH4.Bb() | SqH5.Bb() | SqH6.Bb() | SqH7.Bb()
	assert.Equal(t, expected, Intermediate(SqH1, SqH8))
	assert.Equal(t, expected, Intermediate(SqH8, SqH1))

	// diagonal
	expected = SqB2.Bb() | SqC3.Bb() | SqD4.Bb() | SqE5.Bb() | SqF6.Bb() | SqG7.Bb()
	assert.Equal(t, expected, Intermediate(SqA1, SqH8))

	// rank
	expected = SqB4.Bb() | SqC4.Bb() | SqD4.Bb()
	assert.Equal(t, expected, Intermediate(SqA4, SqE4))

	// adjacent and non collinear squares have no intermediate
	assert.Equal(t, BbZero, Intermediate(SqE4, SqE5))
	assert.Equal(t, BbZero, Intermediate(SqE4, SqF6))
}

func TestPawnAttacks(t *testing.T) {
	assert.Equal(t, SqD5.Bb()|SqF5.Bb(), GetPawnAttacks(White, SqE4))
	assert.Equal(t, SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(Black, SqE4))
	// edge pawns only attack one square
	assert.Equal(t, SqB3.Bb(), GetPawnAttacks(White, SqA2))
	assert.Equal(t, SqG3.Bb(), GetPawnAttacks(White, SqH2))
	assert.Equal(t, SqB6.Bb(), GetPawnAttacks(Black, SqA7))
}

func TestKnightAttacks(t *testing.T) {
	// knight on g1 - the file wrap to a-file squares must be masked out
	expected := SqE2.Bb() | SqF3.Bb() | SqH3.Bb()
	assert.Equal(t, expected, GetAttacksBb(Knight, SqG1, BbZero))

	// knight in the center
	expected = SqD6.Bb() | SqF6.Bb() | SqC5.Bb() | SqG5.Bb() |
		SqC3.Bb() | SqG3.Bb() | SqD2.Bb() | SqF2.Bb()
	assert.Equal(t, expected, GetAttacksBb(Knight, SqE4, BbZero))
}

func TestKingAttacks(t *testing.T) {
	expected := SqG1.Bb() | SqG2.Bb() | SqH2.Bb()
	assert.Equal(t, expected, GetAttacksBb(King, SqH1, BbZero))
	assert.Equal(t, 8, GetAttacksBb(King, SqE4, BbZero).PopCount())
}

func TestSliderAttacksWithBlockers(t *testing.T) {
	// rook on a1 with own pawn on a3 - file blocked beyond a3
	occ := SqA1.Bb() | SqA3.Bb()
	expected := SqA2.Bb() | SqA3.Bb() |
		SqB1.Bb() | SqC1.Bb() | SqD1.Bb() | SqE1.Bb() | SqF1.Bb() | SqG1.Bb() | SqH1.Bb()
	assert.Equal(t, expected, GetAttacksBb(Rook, SqA1, occ))

	// bishop on c1 with blocker on e3
	occ = SqC1.Bb() | SqE3.Bb()
	expected = SqB2.Bb() | SqA3.Bb() | SqD2.Bb() | SqE3.Bb()
	assert.Equal(t, expected, GetAttacksBb(Bishop, SqC1, occ))

	// queen is the union of rook and bishop attacks
	occ = SqD4.Bb() | SqD6.Bb() | SqF6.Bb()
	assert.Equal(t,
		GetAttacksBb(Rook, SqD4, occ)|GetAttacksBb(Bishop, SqD4, occ),
		GetAttacksBb(Queen, SqD4, occ))
}

// the magic lookups must return exactly the attack sets of a naive
// ray walk for any occupancy
func TestMagicAttacksAgainstNaive(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10_000; i++ {
		occ := Bitboard(r.Uint64() & r.Uint64())
		sq := Square(r.Intn(SqLength))
		assert.Equal(t, slidingAttack(&rookDirections, sq, occ),
			GetAttacksBb(Rook, sq, occ), "rook sq=%s occ=%d", sq.String(), occ)
		assert.Equal(t, slidingAttack(&bishopDirections, sq, occ),
			GetAttacksBb(Bishop, sq, occ), "bishop sq=%s occ=%d", sq.String(), occ)
	}
}

// mask bit counts from the magic construction: bishops 5-9 bits,
// rooks 10-12 bits
func TestMagicMaskBits(t *testing.T) {
	for sq := SqH1; sq <= SqA8; sq++ {
		bBits := bishopMagics[sq].Mask.PopCount()
		rBits := rookMagics[sq].Mask.PopCount()
		assert.True(t, bBits >= 5 && bBits <= 9, "bishop mask bits out of range on %s: %d", sq.String(), bBits)
		assert.True(t, rBits >= 10 && rBits <= 12, "rook mask bits out of range on %s: %d", sq.String(), rBits)
		assert.Equal(t, uint(64-rookMagics[sq].Mask.PopCount()), rookMagics[sq].Shift)
	}
}

func TestRays(t *testing.T) {
	assert.Equal(t, SqE5.Bb()|SqE6.Bb()|SqE7.Bb()|SqE8.Bb(), SqE4.Ray(N))
	assert.Equal(t, SqF4.Bb()|SqG4.Bb()|SqH4.Bb(), SqE4.Ray(E))
	assert.Equal(t, SqF5.Bb()|SqG6.Bb()|SqH7.Bb(), SqE4.Ray(NE))
	assert.Equal(t, SqD3.Bb()|SqC2.Bb()|SqB1.Bb(), SqE4.Ray(SW))
}

func TestGetCastlingRights(t *testing.T) {
	assert.Equal(t, CastlingWhite, GetCastlingRights(SqE1))
	assert.Equal(t, CastlingWhiteOO, GetCastlingRights(SqH1))
	assert.Equal(t, CastlingWhiteOOO, GetCastlingRights(SqA1))
	assert.Equal(t, CastlingBlack, GetCastlingRights(SqE8))
	assert.Equal(t, CastlingBlackOO, GetCastlingRights(SqH8))
	assert.Equal(t, CastlingBlackOOO, GetCastlingRights(SqA8))
	assert.Equal(t, CastlingNone, GetCastlingRights(SqE4))
}
