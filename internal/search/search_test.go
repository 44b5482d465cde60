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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucena-chess/lucena/internal/movegen"
	"github.com/lucena-chess/lucena/internal/position"
	. "github.com/lucena-chess/lucena/internal/types"
)

func runSearch(t *testing.T, fen string, depth int) Result {
	p, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	s := NewSearch()
	limits := NewSearchLimits()
	limits.Depth = depth
	s.StartSearch(*p, *limits)
	s.WaitWhileSearching()
	require.True(t, s.HasResult())
	return s.LastSearchResult()
}

func TestSearchReturnsLegalMove(t *testing.T) {
	result := runSearch(t, position.StartFen, 4)
	assert.True(t, result.BestMove.IsValid())

	// the move must be one of the legal moves of the position
	p := position.NewPosition()
	moves := movegen.NewMoveGen().GenerateLegalMoves(p)
	assert.True(t, moves.Contains(result.BestMove))
	assert.True(t, result.Nodes > 0)
}

func TestSearchFindsMateInOne(t *testing.T) {
	// back rank mate - Ra1a8#
	result := runSearch(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 3)
	assert.Equal(t, CreateMove(SqA1, SqA8, Normal, PtNone), result.BestMove)
	// mate in one is found at ply 1
	assert.Equal(t, ValueCheckMate-1, result.BestValue)
	assert.True(t, result.BestValue.IsCheckMateValue())
}

func TestSearchFindsMateInTwo(t *testing.T) {
	// a classic two rook ladder mate: Ra7 then Rb8#
	result := runSearch(t, "7k/8/8/8/8/8/R7/1R4K1 w - - 0 1", 4)
	assert.True(t, result.BestValue.IsCheckMateValue(),
		"expected a mate score, got %s", result.BestValue.String())
	assert.Equal(t, ValueCheckMate-3, result.BestValue)
}

func TestSearchMatedPosition(t *testing.T) {
	// black is checkmated - no legal moves, the root reports the mate
	result := runSearch(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", 3)
	assert.Equal(t, MoveNone, result.BestMove)
	assert.Equal(t, -ValueCheckMate, result.BestValue)
}

func TestSearchStalematePosition(t *testing.T) {
	result := runSearch(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", 3)
	assert.Equal(t, MoveNone, result.BestMove)
	assert.Equal(t, ValueDraw, result.BestValue)
}

func TestSearchTakesHangingQueen(t *testing.T) {
	// white queen can capture the undefended black queen
	result := runSearch(t, "3q2k1/8/8/8/8/8/8/3Q2K1 w - - 0 1", 2)
	assert.Equal(t, CreateMove(SqD1, SqD8, Normal, PtNone), result.BestMove)
}

func TestSearchStop(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch()
	limits := NewSearchLimits()
	limits.Depth = 12
	s.StartSearch(*p, *limits)
	assert.True(t, s.IsSearching())
	s.StopSearch()
	assert.False(t, s.IsSearching())
	// a stopped search still reports a legal best move
	result := s.LastSearchResult()
	assert.True(t, result.BestMove.IsValid())
}

func TestMoveOrderValue(t *testing.T) {
	// in a capture position the capture of the most valuable piece
	// with the least valuable attacker sorts first
	p, err := position.NewPositionFen("3q2k1/8/8/8/8/2n5/1P6/3R2K1 w - - 0 1")
	require.NoError(t, err)

	capturePawn := CreateMove(SqB2, SqC3, Normal, PtNone)  // pawn takes knight
	captureRook := CreateMove(SqD1, SqD8, Normal, PtNone)  // rook takes queen
	quiet := CreateMove(SqG1, SqF1, Normal, PtNone)        // quiet king move

	assert.True(t, moveOrderValue(p, captureRook) > moveOrderValue(p, capturePawn))
	assert.True(t, moveOrderValue(p, capturePawn) > moveOrderValue(p, quiet))
}
