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

// Package types contains the basic data types for the chess engine:
// bitboards, squares, files, ranks, colors, pieces, moves and the
// pre-computed attack tables including the magic bitboards for the
// sliding pieces.
//
// The board mapping follows the little-endian file-mirrored convention:
// bit 0 is h1, bit 7 is a1, bit 8 is h2 and bit 63 is a8. Files run
// right to left within a rank.
package types

// SqLength number of squares on a chess board
const SqLength int = 64

// MaxMoves the maximum number of moves in a chess position
// (the known upper bound for legal moves in any reachable
// position is 218)
const MaxMoves = 256

// MaxDepth max search depth and max supported game length in plies
const MaxDepth = 128

// initialized protects the pre-computation from running twice
var initialized = false

// init initializes pre computed data structures e.g. bitboards,
// attack tables, magic bitboards, etc.
func init() {
	if !initialized {
		initBb()
		initialized = true
	}
}
