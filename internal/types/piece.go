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

// Piece is a set of constants for pieces in chess. The value of a
// piece doubles as the index into the twelve piece bitboards of a
// position, ordered white king first, black pawn last.
type Piece int8

// Constants for pieces
//noinspection GoVarAndConstTypeMayBeOmitted
const (
	WhiteKing   Piece = 0
	WhiteQueen  Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhitePawn   Piece = 5
	BlackKing   Piece = 6
	BlackQueen  Piece = 7
	BlackKnight Piece = 8
	BlackBishop Piece = 9
	BlackRook   Piece = 10
	BlackPawn   Piece = 11
	PieceNone   Piece = 12
	PieceLength int   = 13
)

// array of string labels for pieces
var pieceToString = string("KQNBRPkqnbrp-")

// String returns a string representation of a piece
func (p Piece) String() string {
	return string(pieceToString[p])
}

// array of unicode chess glyphs for pieces
var pieceToGlyph = [PieceLength]string{
	"♔", "♕", "♘", "♗", "♖", "♙",
	"♚", "♛", "♞", "♝", "♜", "♟", "."}

// Glyph returns the unicode chess glyph of a piece
func (p Piece) Glyph() string {
	return pieceToGlyph[p]
}

// MakePiece creates the piece given by color and piece type
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt))
}

// ColorOf returns the color of the given piece
func (p Piece) ColorOf() Color {
	if p < BlackKing {
		return White
	}
	return Black
}

// TypeOf returns the piece type of the given piece
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(p % 6)
}

// IsValid checks if p is a valid piece
func (p Piece) IsValid() bool {
	return p >= WhiteKing && p <= BlackPawn
}

// ValueOf returns the material value of the piece
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// PieceFromChar returns the Piece corresponding to the given character.
// If no piece can be determined PieceNone is returned.
func PieceFromChar(c string) Piece {
	for i := 0; i < len(pieceToString)-1; i++ {
		if string(pieceToString[i]) == c {
			return Piece(i)
		}
	}
	return PieceNone
}
