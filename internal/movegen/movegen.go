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

// Package movegen contains the legal move generator of the engine.
// Moves are generated strictly legal in a single pass - pins, check
// evasions, castling path safety and the en passant discovered check
// are resolved at generation time instead of making every move and
// testing the king afterwards.
package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/lucena-chess/lucena/internal/logging"
	"github.com/lucena-chess/lucena/internal/movelist"
	"github.com/lucena-chess/lucena/internal/position"
	. "github.com/lucena-chess/lucena/internal/types"
)

var log *logging.Logger

// Movegen is the data structure for the move generator. It holds the
// reusable move list to avoid allocations during search.
// Create a new instance via movegen.NewMoveGen().
type Movegen struct {
	legalMoves *movelist.MoveList

	// scratch state for the current generation run
	pinned  Bitboard
	pinRays [SqLength]Bitboard
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{
		legalMoves: movelist.NewMoveList(),
	}
}

// GenerateLegalMoves generates all strictly legal moves for the next
// player of the given position. The returned list is owned by the
// move generator and only valid until the next generation run.
func (mg *Movegen) GenerateLegalMoves(p *position.Position) *movelist.MoveList {
	mg.legalMoves.Clear()

	us := p.NextPlayer()
	them := us.Flip()
	friends := p.OccupiedBb(us)
	occ := p.OccupiedAll()
	ksq := p.KingSquare(us)
	checkers := p.Checkers()

	// king moves are always candidates - with the king removed from
	// the occupancy so it cannot hide behind itself on a slider ray
	mg.generateKingMoves(p, us, them, ksq, friends, occ, mg.legalMoves)

	// double check - only the king may move
	if checkers.PopCount() >= 2 {
		return mg.legalMoves
	}

	// in single check all other moves must capture the checker or
	// block the ray between checker and king
	checkMask := BbAll
	if checkers != BbZero {
		checkerSq := checkers.Lsb()
		checkMask = checkers | Intermediate(ksq, checkerSq)
	}

	mg.findPins(p, us, them, ksq, occ, friends)

	mg.generatePieceMoves(p, us, ksq, friends, occ, checkMask, mg.legalMoves)
	mg.generatePawnMoves(p, us, them, ksq, occ, checkMask, mg.legalMoves)
	mg.generateEnPassant(p, us, them, ksq, occ, checkers, checkMask, mg.legalMoves)
	if checkers == BbZero {
		mg.generateCastling(p, us, them, occ, mg.legalMoves)
	}

	return mg.legalMoves
}

// HasLegalMove determines if the next player has at least one legal
// move on the given position. An empty move list on a position in
// check is mate, otherwise stalemate.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	return mg.GenerateLegalMoves(p).Len() > 0
}

// Regex for UCI notation (UCI)
var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")

// GetMoveFromUci generates all legal moves and matches the given UCI
// move string against them. If there is a match the actual move is
// returned. Otherwise MoveNone is returned.
//
// As this uses string creation and comparison this is not very
// efficient. Use only when performance is not critical.
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}

	// get the parts from the pattern match
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 && matches[2] != "" {
		// we also accept upper case promotion letters
		// not really UCI but many input files have this wrong
		promotionPart = strings.ToLower(matches[2])
	}

	// check against all legal moves on the position
	moves := mg.GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.StringUci() == movePart+promotionPart {
			return m
		}
	}
	return MoveNone
}

// String returns a string representation of a MoveGen instance
func (mg *Movegen) String() string {
	return fmt.Sprintf("MoveGen: { %s }", mg.legalMoves.String())
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// generateKingMoves emits all legal king moves. A target square is
// only legal when it is not attacked by the opponent with the king
// itself removed from the occupancy - otherwise the king could
// step backwards along the ray of a sliding checker.
func (mg *Movegen) generateKingMoves(p *position.Position, us Color, them Color,
	ksq Square, friends Bitboard, occ Bitboard, ml *movelist.MoveList) {

	occWithoutKing := occ &^ ksq.Bb()
	targets := GetPseudoAttacks(King, ksq) &^ friends
	for targets != 0 {
		toSq := targets.PopLsb()
		if p.AttacksTo(toSq, them, occWithoutKing) == BbZero {
			ml.PushBack(CreateMove(ksq, toSq, Normal, PtNone))
		}
	}
}

// findPins computes the bitboard of all own pieces which are
// absolutely pinned to the own king and stores for every pinned
// piece the ray it is restricted to (the squares between king and
// pinning slider plus the pinner itself).
// A piece is pinned iff it is the only piece between the king and an
// enemy slider which would otherwise see the king.
func (mg *Movegen) findPins(p *position.Position, us Color, them Color,
	ksq Square, occ Bitboard, friends Bitboard) {

	mg.pinned = BbZero

	snipers := (GetPseudoAttacks(Rook, ksq) & (p.PiecesBb(them, Rook) | p.PiecesBb(them, Queen))) |
		(GetPseudoAttacks(Bishop, ksq) & (p.PiecesBb(them, Bishop) | p.PiecesBb(them, Queen)))

	for snipers != 0 {
		sniperSq := snipers.PopLsb()
		between := Intermediate(ksq, sniperSq) & occ
		if between.PopCount() == 1 && between&friends != 0 {
			pinnedSq := between.Lsb()
			mg.pinned.PushSquare(pinnedSq)
			mg.pinRays[pinnedSq] = Intermediate(ksq, sniperSq) | sniperSq.Bb()
		}
	}
}

// generatePieceMoves emits all legal queen, knight, bishop and rook
// moves. Targets are restricted to the check mask and - for pinned
// pieces - to the pin ray. A pinned knight can never move as no
// knight move stays on a line through the king.
func (mg *Movegen) generatePieceMoves(p *position.Position, us Color, ksq Square,
	friends Bitboard, occ Bitboard, checkMask Bitboard, ml *movelist.MoveList) {

	for pt := Queen; pt <= Rook; pt++ {
		pieces := p.PiecesBb(us, pt)
		for pieces != 0 {
			fromSq := pieces.PopLsb()
			targets := GetAttacksBb(pt, fromSq, occ) &^ friends & checkMask
			if mg.pinned.Has(fromSq) {
				targets &= mg.pinRays[fromSq]
			}
			for targets != 0 {
				toSq := targets.PopLsb()
				ml.PushBack(CreateMove(fromSq, toSq, Normal, PtNone))
			}
		}
	}
}

// generatePawnMoves emits all legal pawn pushes, double pushes and
// captures including promotions. Unpinned pawns are generated in
// bulk with bitboard shifts, pinned pawns are handled individually
// against their pin ray.
func (mg *Movegen) generatePawnMoves(p *position.Position, us Color, them Color,
	ksq Square, occ Bitboard, checkMask Bitboard, ml *movelist.MoveList) {

	myPawns := p.PiecesBb(us, Pawn)
	enemies := p.OccupiedBb(them)
	up := us.PawnPush()
	down := up.Reverse()
	promoRank := us.PromotionRankBb()

	freePawns := myPawns &^ mg.pinned

	// captures - shift the unpinned pawns into both capture
	// directions and AND with the opponent pieces
	var captureDirs [2]Direction
	if us == White {
		captureDirs = [2]Direction{Northeast, Northwest}
	} else {
		captureDirs = [2]Direction{Southeast, Southwest}
	}
	for _, dir := range captureDirs {
		targets := ShiftBitboard(freePawns, dir) & enemies & checkMask
		promoTargets := targets & promoRank
		targets &^= promoRank
		for promoTargets != 0 {
			toSq := promoTargets.PopLsb()
			fromSq := toSq.To(dir.Reverse())
			pushPromotions(fromSq, toSq, ml)
		}
		for targets != 0 {
			toSq := targets.PopLsb()
			fromSq := toSq.To(dir.Reverse())
			ml.PushBack(CreateMove(fromSq, toSq, Normal, PtNone))
		}
	}

	// single pushes - the intermediate result before the check mask
	// is needed for the double pushes
	singles := ShiftBitboard(freePawns, up) &^ occ
	doubles := ShiftBitboard(singles&us.PawnDoubleRank(), up) &^ occ & checkMask
	singles &= checkMask

	promoPushes := singles & promoRank
	singles &^= promoRank
	for promoPushes != 0 {
		toSq := promoPushes.PopLsb()
		pushPromotions(toSq.To(down), toSq, ml)
	}
	for singles != 0 {
		toSq := singles.PopLsb()
		ml.PushBack(CreateMove(toSq.To(down), toSq, Normal, PtNone))
	}
	for doubles != 0 {
		toSq := doubles.PopLsb()
		ml.PushBack(CreateMove(toSq.To(down).To(down), toSq, Normal, PtNone))
	}

	// pinned pawns can only move on their pin ray - a diagonally
	// pinned pawn may still capture the pinner, a vertically pinned
	// pawn may still push
	pinnedPawns := myPawns & mg.pinned
	for pinnedPawns != 0 {
		fromSq := pinnedPawns.PopLsb()
		ray := mg.pinRays[fromSq]

		captures := GetPawnAttacks(us, fromSq) & enemies & ray & checkMask
		for captures != 0 {
			toSq := captures.PopLsb()
			if promoRank.Has(toSq) {
				pushPromotions(fromSq, toSq, ml)
			} else {
				ml.PushBack(CreateMove(fromSq, toSq, Normal, PtNone))
			}
		}

		toSq := fromSq.To(up)
		if toSq != SqNone && !occ.Has(toSq) && ray.Has(toSq) {
			if checkMask.Has(toSq) {
				// a pinned pawn can never promote by pushing - the
				// pinner would have to be behind the promotion rank
				ml.PushBack(CreateMove(fromSq, toSq, Normal, PtNone))
			}
			if us.PawnHomeRank().Has(fromSq) {
				toSq2 := toSq.To(up)
				if !occ.Has(toSq2) && ray.Has(toSq2) && checkMask.Has(toSq2) {
					ml.PushBack(CreateMove(fromSq, toSq2, Normal, PtNone))
				}
			}
		}
	}
}

// generateEnPassant emits the legal en passant captures. Next to the
// pin and check restrictions this covers the discovered check where
// capturing pawn and captured pawn both leave the king's rank and
// uncover an enemy rook or queen - the only case where a legality
// test on the resulting occupancy is required.
func (mg *Movegen) generateEnPassant(p *position.Position, us Color, them Color,
	ksq Square, occ Bitboard, checkers Bitboard, checkMask Bitboard, ml *movelist.MoveList) {

	epSq := p.GetEnPassantSquare()
	if epSq == SqNone {
		return
	}
	capSq := epSq.To(us.Flip().PawnPush())

	// all own pawns which attack the en passant square
	candidates := GetPawnAttacks(them, epSq) & p.PiecesBb(us, Pawn)
	for candidates != 0 {
		fromSq := candidates.PopLsb()

		// in check the en passant capture is only legal if it removes
		// the checking pawn or the landing square blocks the check
		if checkers != BbZero && !checkers.Has(capSq) && !checkMask.Has(epSq) {
			continue
		}
		// a pinned pawn must stay on its pin ray
		if mg.pinned.Has(fromSq) && !mg.pinRays[fromSq].Has(epSq) {
			continue
		}
		// simulate the capture - both pawns leave the board, the
		// capturing pawn arrives on the en passant square
		occAfter := (occ &^ fromSq.Bb() &^ capSq.Bb()) | epSq.Bb()
		if GetAttacksBb(Rook, ksq, occAfter)&(p.PiecesBb(them, Rook)|p.PiecesBb(them, Queen)) != 0 {
			continue
		}
		if GetAttacksBb(Bishop, ksq, occAfter)&(p.PiecesBb(them, Bishop)|p.PiecesBb(them, Queen)) != 0 {
			continue
		}
		ml.PushBack(CreateMove(fromSq, epSq, EnPassant, PtNone))
	}
}

// generateCastling emits the legal castling moves. Only called when
// not in check. The squares between king and rook must be empty and
// the squares the king passes over must not be attacked. The rook
// pass-through square of the long castle (b-file) only needs to be
// empty.
func (mg *Movegen) generateCastling(p *position.Position, us Color, them Color,
	occ Bitboard, ml *movelist.MoveList) {

	cr := p.CastlingRights()
	if cr == CastlingNone {
		return
	}
	if us == White {
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occ == 0 &&
			!p.IsAttacked(SqF1, them) && !p.IsAttacked(SqG1, them) {
			ml.PushBack(CreateMove(SqE1, SqG1, Castling, PtNone))
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occ == 0 &&
			!p.IsAttacked(SqD1, them) && !p.IsAttacked(SqC1, them) {
			ml.PushBack(CreateMove(SqE1, SqC1, Castling, PtNone))
		}
	} else {
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occ == 0 &&
			!p.IsAttacked(SqF8, them) && !p.IsAttacked(SqG8, them) {
			ml.PushBack(CreateMove(SqE8, SqG8, Castling, PtNone))
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occ == 0 &&
			!p.IsAttacked(SqD8, them) && !p.IsAttacked(SqC8, them) {
			ml.PushBack(CreateMove(SqE8, SqC8, Castling, PtNone))
		}
	}
}

// pushPromotions emits the four promotion moves for the given from
// and to squares. Queen first as it is almost always the best choice.
func pushPromotions(fromSq Square, toSq Square, ml *movelist.MoveList) {
	ml.PushBack(CreateMove(fromSq, toSq, Promotion, Queen))
	ml.PushBack(CreateMove(fromSq, toSq, Promotion, Knight))
	ml.PushBack(CreateMove(fromSq, toSq, Promotion, Rook))
	ml.PushBack(CreateMove(fromSq, toSq, Promotion, Bishop))
}
