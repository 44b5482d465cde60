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
	"github.com/lucena-chess/lucena/internal/config"
	"github.com/lucena-chess/lucena/internal/position"
	. "github.com/lucena-chess/lucena/internal/types"
)

// rootSearch runs the alpha beta search over the root moves. Root
// moves are treated separately to track the best move next to the
// best value. The best move found so far survives a stop request.
func (s *Search) rootSearch(p *position.Position, depth int) Result {
	alpha := -ValueInf
	beta := ValueInf

	// own copy of the root moves as deeper plies reuse the
	// generators move lists
	rootMoves := s.mg[0].GenerateLegalMoves(p).Clone()

	// no legal moves at the root - checkmate or stalemate
	if rootMoves.Len() == 0 {
		result := Result{BestMove: MoveNone, Depth: depth}
		if p.HasCheck() {
			result.BestValue = -ValueCheckMate
		} else {
			result.BestValue = ValueDraw
		}
		return result
	}

	if config.Settings.Search.UseSortMoves {
		rootMoves.Sort(func(m Move) int { return moveOrderValue(p, m) })
	}

	bestMove := rootMoves.At(0)
	bestValue := -ValueInf

	for i := 0; i < rootMoves.Len(); i++ {
		m := rootMoves.At(i)
		p.DoMove(m)
		s.nodesVisited++
		value := -s.search(p, depth-1, 1, -beta, -alpha)
		p.UndoMove()

		// we want at least one fully searched root move before
		// the stop flag may discard values
		if s.stopConditions() && i > 0 {
			break
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
			}
		}
	}

	return Result{
		BestMove:  bestMove,
		BestValue: bestValue,
		Depth:     depth,
	}
}

// search is the recursive negamax search with alpha beta pruning
// after the root ply. Returns the value of the position from the
// view of the player to move.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value) Value {

	// check draw by repetition, the 50 moves rule or insufficient
	// material before anything else - these end the game
	if config.Settings.Search.UseDrawDetection &&
		(p.CheckRepetitions(1) || p.HalfMoveClock() >= 100 || p.HasInsufficientMaterial()) {
		return ValueDraw
	}

	// leaf node - static evaluation
	if depth == 0 || ply >= MaxDepth {
		return s.eval.Evaluate(p)
	}

	// when stopped return a static value - the root discards
	// unfinished move values anyway
	if s.stopConditions() {
		return s.eval.Evaluate(p)
	}

	moves := s.mg[ply].GenerateLegalMoves(p)

	// no legal moves - checkmate or stalemate. The mate value is
	// reduced by the ply so that shorter mates get better values.
	if moves.Len() == 0 {
		if p.HasCheck() {
			return -ValueCheckMate + Value(ply)
		}
		return ValueDraw
	}

	if config.Settings.Search.UseSortMoves {
		moves.Sort(func(m Move) int { return moveOrderValue(p, m) })
	}

	bestValue := -ValueInf

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		s.nodesVisited++
		value := -s.search(p, depth-1, ply+1, -beta, -alpha)
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
			}
		}
		// beta cutoff - the opponent will not allow this line
		if alpha >= beta {
			break
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	return bestValue
}

// moveOrderValue returns a sort value for a move on the given
// position: captures ordered by most valuable victim least valuable
// attacker (MVV-LVA), promotions by the promoted piece, quiet moves
// last in generation order.
func moveOrderValue(p *position.Position, m Move) int {
	value := 0
	captured := p.GetPiece(m.To())
	if captured != PieceNone {
		value += 10*int(captured.ValueOf()) - int(p.GetPiece(m.From()).ValueOf())
	}
	switch m.MoveType() {
	case Promotion:
		value += int(m.PromotionType().ValueOf())
	case EnPassant:
		value += 10 * int(Pawn.ValueOf())
	}
	return value
}
