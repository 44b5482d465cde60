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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lucena-chess/lucena/internal/position"
	. "github.com/lucena-chess/lucena/internal/types"
	"github.com/lucena-chess/lucena/internal/util"
)

var out = message.NewPrinter(language.English)

// Perft is a class to test the move generation of the chess engine
// by counting all leaf nodes of the legal move tree to a given
// depth. The resulting node counts are compared against the
// published reference counts.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine
// to stop the currently running perft test
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// Perft counts the leaf nodes of the legal move tree of the given
// position at the given depth without any output. Returns the
// number of leaf nodes.
func (perft *Perft) Perft(p *position.Position, depth int) uint64 {
	perft.stopFlag = false
	perft.resetCounter()
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}
	result := perft.miniMax(depth, p, mgList)
	perft.Nodes = result
	return result
}

// StartPerftMulti runs perft from the start depth to the end depth
// on the given fen. If this has been started in a goroutine it can
// be stopped via Stop()
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs a perft test on the given fen and depth and prints
// the results. If this has been started in a goroutine it can be
// stopped via Stop()
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false

	if depth <= 0 {
		depth = 1
	}

	perft.resetCounter()
	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Perft aborted. Invalid fen: %s\n", fen)
		return
	}
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, p, mgList)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
	out.Printf("NPS          : %d nps\n", util.Nps(perft.Nodes, elapsed))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// Divide counts the perft leaf nodes for every root move separately
// and returns the per move counts together with the total. This is
// the classic "divide" helper to narrow down move generation
// differences against a reference engine.
func (perft *Perft) Divide(p *position.Position, depth int) (map[Move]uint64, uint64) {
	perft.stopFlag = false
	perft.resetCounter()
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}
	counts := make(map[Move]uint64)
	total := uint64(0)
	moves := mgList[depth].GenerateLegalMoves(p).Clone()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		var nodes uint64
		if depth <= 1 {
			nodes = 1
		} else {
			p.DoMove(m)
			nodes = perft.miniMax(depth-1, p, mgList)
			p.UndoMove()
		}
		counts[m] = nodes
		total += nodes
	}
	perft.Nodes = total
	return counts, total
}

// StartDivide prints the per root move node counts for the given
// fen and depth.
func (perft *Perft) StartDivide(fen string, depth int) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Divide aborted. Invalid fen: %s\n", fen)
		return
	}
	counts, total := perft.Divide(p, depth)
	moves := NewMoveGen().GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		out.Printf("%s: %d\n", m.StringUci(), counts[m])
	}
	out.Printf("Total: %d\n", total)
}

func (perft *Perft) miniMax(depth int, p *position.Position, mgList []*Movegen) uint64 {
	if depth == 0 {
		return 1
	}
	totalNodes := uint64(0)
	// every depth has its own move generator instance as the move
	// list is owned by the generator
	mg := mgList[depth]
	moves := mg.GenerateLegalMoves(p)
	if depth == 1 {
		for i := 0; i < moves.Len(); i++ {
			if perft.stopFlag {
				return 0
			}
			move := moves.At(i)
			capture := p.GetPiece(move.To()) != PieceNone
			switch move.MoveType() {
			case EnPassant:
				perft.EnpassantCounter++
				perft.CaptureCounter++
			case Castling:
				perft.CastleCounter++
			case Promotion:
				perft.PromotionCounter++
				if capture {
					perft.CaptureCounter++
				}
			case Normal:
				if capture {
					perft.CaptureCounter++
				}
			}
			p.DoMove(move)
			if p.HasCheck() {
				perft.CheckCounter++
				if !mgList[0].HasLegalMove(p) {
					perft.CheckMateCounter++
				}
			}
			p.UndoMove()
			totalNodes++
		}
		return totalNodes
	}
	for i := 0; i < moves.Len(); i++ {
		if perft.stopFlag {
			return 0
		}
		p.DoMove(moves.At(i))
		totalNodes += perft.miniMax(depth-1, p, mgList)
		p.UndoMove()
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
