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

// Magic holds all magic bitboards relevant for a single square.
// The mask covers the rays of the slider without the board edges,
// the magic multiplier maps every occupancy subset of the mask
// to a unique index into the Attacks table.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// slider directions for the magic initialization
var (
	rookDirections   = [4]Direction{North, East, South, West}
	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
)

// initMagicBitboards computes all rook and bishop attack tables at
// startup. The table sizes are the sums of 2^popcount(mask) over all
// squares (fancy magic bitboards with per square table sizes).
func initMagicBitboards() {
	rookTable = make([]Bitboard, 0x19000, 0x19000)
	bishopTable = make([]Bitboard, 0x1480, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
}

// initMagics discovers a magic multiplier for every square and fills
// the attack table as a side effect of verifying it. Magic bitboards
// are used to look up attacks of sliding pieces in O(1). As a
// reference see https://www.chessprogramming.org/Magic_Bitboards -
// this is the so called "fancy" approach as used by Stockfish.
// Discovery is deterministic for a fixed seed set and must always
// succeed for orthodox chess - if it does not the engine cannot be
// constructed and we panic.
func initMagics(table *[]Bitboard, magics *[SqLength]Magic, directions *[4]Direction) {

	// PRNG seeds per rank to pick the magics in a short time
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	occupancy := [4096]Bitboard{}
	reference := [4096]Bitboard{}
	var edges, b Bitboard
	cnt := 0
	size := 0
	epoch := [4096]int{}

	for sq := SqH1; sq <= SqA8; sq++ {

		// Board edges are not considered in the relevant occupancies
		// as they can never block a ray beyond themselves
		edges = ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		// Given a square the mask is the bitboard of sliding attacks
		// computed on an empty board minus the edges. The table index
		// must be big enough to hold all attack sets for each possible
		// subset of the mask, hence 2^popcount(mask) entries and a
		// shift of 64 minus the mask bits.
		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		// Set the offset for the attacks table of the square. We have
		// individual table sizes for each square.
		if sq == SqH1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Use the Carry-Rippler trick to enumerate all subsets of the
		// mask and store the corresponding attack bitboard computed by
		// a naive ray walk in reference[].
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 { // do - while(b)
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		// Find a magic for the square picking up an (almost) random
		// sparse number until one passes the verification test: every
		// occupancy must map to an index holding the correct attack
		// set. The attacks table is built up as a side effect of the
		// verification. epoch[] avoids resetting the table after every
		// failed attempt.
		guard := 0
		for i := 0; i < size; {
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}
			if guard++; guard > 100_000_000 {
				panic("no magic multiplier found - cannot construct attack tables")
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack calculates sliding attacks along the given directions
// for the given square and board occupation with a naive ray walk.
// Too slow for move generation or search but fine for pre-computing.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			s = s.To(directions[i])
			if s == SqNone {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// index calculates the index into the attacks table
// for the given board occupation
//  occ &= mask, occ *= magic, occ >>= shift
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// PrnG is the xorshift64star pseudo random number generator used for
// the magic number discovery. Based on original code written and
// dedicated to the public domain by Sebastiano Vigna (2014). Period
// is 2^64 - 1, the internal state is a single 64-bit integer.
// For further analysis see
//   <http://vigna.di.unimi.it/ftp/papers/xorshift.pdf>
type PrnG struct {
	s uint64
}

// newPrnG creates a new instance of the pseudo random generator
func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Special generator used to fast init magic numbers.
// Output values only have 1/8th of their bits set on average.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
