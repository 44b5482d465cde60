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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucena-chess/lucena/internal/position"
)

// ///////////////////////////////////////////////////////////////
// Perft tests from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func runPerft(t *testing.T, fen string, expected []uint64) {
	p, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	perft := NewPerft()
	for depth := 1; depth <= len(expected); depth++ {
		nodes := perft.Perft(p, depth)
		assert.Equal(t, expected[depth-1], nodes, "fen: %s depth: %d", fen, depth)
	}
}

func TestPerftStartPosition(t *testing.T) {
	expected := []uint64{20, 400, 8_902, 197_281}
	if !testing.Short() {
		expected = append(expected, 4_865_609)
	}
	runPerft(t, position.StartFen, expected)
}

func TestPerftStartPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft skipped in short mode")
	}
	runPerft(t, position.StartFen, []uint64{20, 400, 8_902, 197_281, 4_865_609, 119_060_324})
}

func TestPerftKiwipete(t *testing.T) {
	expected := []uint64{48, 2_039, 97_862}
	if !testing.Short() {
		expected = append(expected, 4_085_603)
	}
	runPerft(t, kiwipeteFen, expected)
}

func TestPerftKiwipeteDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft skipped in short mode")
	}
	runPerft(t, kiwipeteFen, []uint64{48, 2_039, 97_862, 4_085_603, 193_690_690})
}

func TestPerftRookEndgame(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	expected := []uint64{14, 191, 2_812, 43_238, 674_624}
	if !testing.Short() {
		expected = append(expected, 11_030_083)
	}
	runPerft(t, fen, expected)
}

func TestPerftPinsAndPromotions(t *testing.T) {
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	expected := []uint64{6, 264, 9_467, 422_333}
	if !testing.Short() {
		expected = append(expected, 15_833_292)
	}
	runPerft(t, fen, expected)
}

func TestPerftSymmetricPins(t *testing.T) {
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	expected := []uint64{44, 1_486, 62_379, 2_103_487}
	if !testing.Short() {
		expected = append(expected, 89_941_194)
	}
	runPerft(t, fen, expected)
}

// the perft of a position reached by a move sequence must agree with
// its own divide breakdown and with its number of root moves
func TestPerftAfterMoves(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	for _, uci := range []string{"e2e4", "c7c5", "g1f3"} {
		m := mg.GetMoveFromUci(p, uci)
		require.True(t, m.IsValid(), "move %s not found", uci)
		p.DoMove(m)
	}

	perft := NewPerft()
	total := perft.Perft(p, 3)

	// the per move breakdown must sum up to the total
	counts, divideTotal := perft.Divide(p, 3)
	assert.Equal(t, total, divideTotal)
	sum := uint64(0)
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, total, sum)

	// the number of root moves must match the generated moves
	assert.Equal(t, mg.GenerateLegalMoves(p).Len(), len(counts))
}

// counter checks on the kiwipete position at depth 1: 48 moves
// of which 8 captures and 2 castles
func TestPerftCounters(t *testing.T) {
	p, err := position.NewPositionFen(kiwipeteFen)
	require.NoError(t, err)
	perft := NewPerft()
	nodes := perft.Perft(p, 1)
	assert.Equal(t, uint64(48), nodes)
	assert.Equal(t, uint64(8), perft.CaptureCounter)
	assert.Equal(t, uint64(2), perft.CastleCounter)
	assert.Equal(t, uint64(0), perft.EnpassantCounter)
	assert.Equal(t, uint64(0), perft.PromotionCounter)
}
