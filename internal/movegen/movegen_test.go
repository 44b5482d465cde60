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
	. "github.com/lucena-chess/lucena/internal/types"
)

func TestStartPositionMoves(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	moves := mg.GenerateLegalMoves(p)
	assert.Equal(t, 20, moves.Len())
}

func TestKiwipeteMoves(t *testing.T) {
	mg := NewMoveGen()
	p, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves := mg.GenerateLegalMoves(p)
	assert.Equal(t, 48, moves.Len())
}

func TestNoDuplicateMoves(t *testing.T) {
	mg := NewMoveGen()
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)
		moves := mg.GenerateLegalMoves(p)
		seen := map[Move]bool{}
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			assert.False(t, seen[m], "duplicate move %s on %s", m.StringUci(), fen)
			seen[m] = true
		}
	}
}

// every generated move must leave the own king unattacked and every
// move changes the side to move
func TestGeneratorSoundness(t *testing.T) {
	mg := NewMoveGen()
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)
		us := p.NextPlayer()
		moves := mg.GenerateLegalMoves(p).Clone()
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			p.DoMove(m)
			assert.Equal(t, us.Flip(), p.NextPlayer())
			assert.False(t, p.IsAttacked(p.KingSquare(us), us.Flip()),
				"move %s leaves own king attacked on %s", m.StringUci(), fen)
			p.UndoMove()
		}
	}
}

// in double check only king moves may be generated
func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	mg := NewMoveGen()
	// rook on e1 and knight on d6 both give check
	p, err := position.NewPositionFen("4k3/8/3N4/8/8/8/8/4RK2 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, 2, p.Checkers().PopCount())

	moves := mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.Equal(t, SqE8, moves.At(i).From(), "non king move in double check: %s", moves.At(i).StringUci())
	}
	// e8 escape squares: d7, d8 and f8 (the knight covers f7, the
	// rook covers e7)
	assert.Equal(t, 3, moves.Len())
}

// in single check every move must move the king, capture the checker
// or block the ray
func TestSingleCheckEvasions(t *testing.T) {
	mg := NewMoveGen()
	// white king e1 in check by the rook e8, white can block with
	// the bishop or rook or move the king
	p, err := position.NewPositionFen("4r1k1/8/8/8/8/8/2B2R2/4K3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, p.HasCheck())

	moves := mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == SqE1 {
			continue // king move
		}
		// non king moves must land between king and checker
		assert.True(t, m.To() == SqE4 || m.To() == SqE2 || m.To() == SqE5 ||
			m.To() == SqE6 || m.To() == SqE7 || m.To() == SqE3 || m.To() == SqE8,
			"move %s neither blocks nor captures", m.StringUci())
	}
	// Be4, Re2, king d1, d2, f1 (e2 is attacked by the rook, f2 holds
	// the own rook)
	// count: bishop c2-e4, rook f2-e2, king d1, d2, f1
	assert.Equal(t, 5, moves.Len())
}

// a pinned knight can never move
func TestPinnedKnight(t *testing.T) {
	mg := NewMoveGen()
	// knight e4 pinned by the rook e8 against the king e1
	p, err := position.NewPositionFen("4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, SqE4, moves.At(i).From(), "pinned knight moved: %s", moves.At(i).StringUci())
	}
}

// a pinned rook may slide along the pin ray and capture the pinner
func TestPinnedRookMoves(t *testing.T) {
	mg := NewMoveGen()
	// white rook e4 pinned by rook e8
	p, err := position.NewPositionFen("4r1k1/8/8/8/4R3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := mg.GenerateLegalMoves(p)
	rookMoves := 0
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() != SqE4 {
			continue
		}
		rookMoves++
		assert.Equal(t, FileE, m.To().FileOf(), "pinned rook left the e-file: %s", m.StringUci())
	}
	// e2, e3, e5, e6, e7 and the capture e8
	assert.Equal(t, 6, rookMoves)
}

// a diagonally pinned pawn may only capture the pinner
func TestPinnedPawn(t *testing.T) {
	mg := NewMoveGen()
	// white pawn d2 pinned by the bishop c3 - capturing the pinner
	// is the only pawn move that stays on the pin ray
	p, err := position.NewPositionFen("6k1/8/8/8/8/2b5/3P4/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := mg.GenerateLegalMoves(p)
	pawnMoves := 0
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() != SqD2 {
			continue
		}
		pawnMoves++
		assert.Equal(t, SqC3, m.To(), "pinned pawn move off the pin ray: %s", m.StringUci())
	}
	assert.Equal(t, 1, pawnMoves)
}

// the en passant capture is illegal when it uncovers a rook check
// along the shared rank of both pawns
func TestEnPassantDiscoveredCheck(t *testing.T) {
	mg := NewMoveGen()
	// black king a4, black pawn e4, white pawn just double pushed to
	// d4, white rook h4 - exd3 e.p. would expose the king on rank 4
	p, err := position.NewPositionFen("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	require.NoError(t, err)
	moves := mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, EnPassant, moves.At(i).MoveType(),
			"illegal en passant generated: %s", moves.At(i).StringUci())
	}
}

// the same structure without the rook allows the en passant capture
func TestEnPassantAllowed(t *testing.T) {
	mg := NewMoveGen()
	p, err := position.NewPositionFen("8/8/8/8/k2Pp3/8/8/4K3 b - d3 0 1")
	require.NoError(t, err)
	moves := mg.GenerateLegalMoves(p)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).MoveType() == EnPassant {
			found = true
			assert.Equal(t, SqE4, moves.At(i).From())
			assert.Equal(t, SqD3, moves.At(i).To())
		}
	}
	assert.True(t, found, "legal en passant not generated")
}

// when the checker is the double pushed pawn the en passant capture
// is a legal check evasion
func TestEnPassantCheckEvasion(t *testing.T) {
	mg := NewMoveGen()
	// black pawn just double pushed d7d5 giving check to the king on
	// c4 - white pawn c5 can capture it en passant
	p, err := position.NewPositionFen("4k3/8/8/2Pp4/2K5/8/8/8 w - d6 0 1")
	require.NoError(t, err)
	require.True(t, p.HasCheck())
	moves := mg.GenerateLegalMoves(p)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).MoveType() == EnPassant {
			found = true
		}
	}
	assert.True(t, found, "en passant check evasion not generated")
}

func TestCastlingGeneration(t *testing.T) {
	mg := NewMoveGen()

	// both sides may castle both ways
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves := mg.GenerateLegalMoves(p)
	castles := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).MoveType() == Castling {
			castles++
		}
	}
	assert.Equal(t, 2, castles)

	// a rook attacking f1 forbids the short castle but not the long
	p, err = position.NewPositionFen("r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves = mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.MoveType() == Castling {
			assert.Equal(t, SqC1, m.To(), "castling over an attacked square: %s", m.StringUci())
		}
	}

	// castling is not allowed while in check
	p, err = position.NewPositionFen("r3k2r/8/8/8/8/4r3/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.True(t, p.HasCheck())
	moves = mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, Castling, moves.At(i).MoveType())
	}

	// blocked long castle - the b1 square is occupied
	p, err = position.NewPositionFen("4k3/8/8/8/8/8/8/RN2K3 w Q - 0 1")
	require.NoError(t, err)
	moves = mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, Castling, moves.At(i).MoveType())
	}
}

func TestPromotionGeneration(t *testing.T) {
	mg := NewMoveGen()
	// pawn push and capture promotion
	p, err := position.NewPositionFen("6n1/5P2/8/8/8/7k/8/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := mg.GenerateLegalMoves(p)
	promotions := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).MoveType() == Promotion {
			promotions++
		}
	}
	// f8=Q/N/R/B and fxg8=Q/N/R/B
	assert.Equal(t, 8, promotions)
}

func TestHasLegalMove(t *testing.T) {
	mg := NewMoveGen()

	p := position.NewPosition()
	assert.True(t, mg.HasLegalMove(p))

	// checkmated - back rank mate
	p, err := position.NewPositionFen("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasCheck())
	assert.False(t, mg.HasLegalMove(p))

	// stalemate
	p, err = position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasCheck())
	assert.False(t, mg.HasLegalMove(p))
}

func TestGetMoveFromUci(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()

	m := mg.GetMoveFromUci(p, "e2e4")
	assert.Equal(t, CreateMove(SqE2, SqE4, Normal, PtNone), m)

	// a move printed and re-parsed yields the same move value
	moves := mg.GenerateLegalMoves(p).Clone()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		assert.Equal(t, m, mg.GetMoveFromUci(p, m.StringUci()))
	}

	// illegal and malformed moves
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, "e2e5"))
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, "xyz"))

	// promotions
	p, err := position.NewPositionFen("8/4P3/8/8/8/7k/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m = mg.GetMoveFromUci(p, "e7e8q")
	assert.Equal(t, CreateMove(SqE7, SqE8, Promotion, Queen), m)
	m = mg.GetMoveFromUci(p, "e7e8n")
	assert.Equal(t, CreateMove(SqE7, SqE8, Promotion, Knight), m)
}
