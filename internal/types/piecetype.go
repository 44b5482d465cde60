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

// PieceType is a set of constants for piece types in chess.
// The order King, Queen, Knight, Bishop, Rook, Pawn matches the
// layout of the twelve piece bitboards of a position.
type PieceType int8

// Constants for piece types
const (
	King     PieceType = 0
	Queen    PieceType = 1
	Knight   PieceType = 2
	Bishop   PieceType = 3
	Rook     PieceType = 4
	Pawn     PieceType = 5
	PtNone   PieceType = 6
	PtLength int       = 7
)

// array of string labels for piece types
var pieceTypeToString = [PtLength]string{"King", "Queen", "Knight", "Bishop", "Rook", "Pawn", "NoPiece"}

// String returns a string representation of a piece type
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

// array of char labels for piece types
var pieceTypeToChar = string("KQNBRP-")

// Char returns a single char string representation of a piece type
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// array of piece type values for material evaluation
var pieceTypeValue = [PtLength]Value{2000, 900, 320, 330, 500, 100, 0}

// ValueOf returns the material value of the piece type
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// IsValid check if pt is a valid piece type
func (pt PieceType) IsValid() bool {
	return pt >= King && pt <= Pawn
}

// PieceTypeFromChar returns the PieceType for the given character
// (upper case) or PtNone if the char does not map to a piece type
func PieceTypeFromChar(c string) PieceType {
	idx := -1
	for i := 0; i < len(pieceTypeToChar)-1; i++ {
		if string(pieceTypeToChar[i]) == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return PtNone
	}
	return PieceType(idx)
}
