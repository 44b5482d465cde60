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

package position

import (
	. "github.com/lucena-chess/lucena/internal/types"
)

// zobrist is the helper data structure for the Zobrist keys of chess
// positions: one key per piece and square, one key per single
// castling right, one key per en passant file and one key for the
// side to move.
type zobrist struct {
	pieces         [PieceLength - 1][SqLength]Key
	castlingRights [CastlingLength]Key
	enPassantFile  [FileLength]Key
	nextPlayer     Key
}

var zobristBase = zobrist{}

func initZobrist() {
	// all keys are drawn from a PRNG with a fixed seed so the
	// table is a reproducible constant of the binary
	r := newRandom(1070372)
	for pc := WhiteKing; pc <= BlackPawn; pc++ {
		for sq := SqH1; sq <= SqA8; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := 0; cr < CastlingLength; cr++ {
		zobristBase.castlingRights[cr] = Key(r.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		zobristBase.enPassantFile[f] = Key(r.rand64())
	}
	zobristBase.nextPlayer = Key(r.rand64())
}

// castlingKey returns the combined key of all single castling right
// keys for the rights set in cr. XOR-ing the old combined key out
// and the new one in keeps the position hash incremental under any
// rights change.
func castlingKey(cr CastlingRights) Key {
	var key Key
	for i := 0; i < CastlingLength; i++ {
		if cr&(CastlingRights(1)<<i) != 0 {
			key ^= zobristBase.castlingRights[i]
		}
	}
	return key
}
