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

import (
	"fmt"
	"strings"
)

// Move is a 16-bit unsigned int type for encoding chess moves
// as a primitive data type.
//  BITMAP 16-bit
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//              1 1 1 1 1 1          from
//  1 1 1 1 1 1                      to
//          1 1                      promotion piece type (N B R Q -> 0b00-0b11)
//      1 1                          move type
type Move uint16

const (
	// MoveNone empty non valid move
	MoveNone Move = 0
)

// MoveType is a set of constants for the four kinds of moves
type MoveType uint16

// Constants for the move types
const (
	Normal    MoveType = 0 // 0b00
	Castling  MoveType = 1 // 0b01
	EnPassant MoveType = 2 // 0b10
	Promotion MoveType = 3 // 0b11
)

// array of char labels for the move types
var moveTypeToChar = string("ncep")

// String returns a string representation of a move type
func (mt MoveType) String() string {
	return string(moveTypeToChar[mt])
}

// IsValid checks if mt is a valid move type
func (mt MoveType) IsValid() bool {
	return mt <= Promotion
}

// maps the two promotion bits to the promoted piece type
var promotionTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// maps a piece type to its two promotion bits
var promotionCode = [PtLength]Move{0, 3, 0, 1, 2, 0, 0}

// CreateMove returns an encoded Move instance. The promotion type
// is only encoded when the move type is Promotion and is ignored
// otherwise.
func CreateMove(from Square, to Square, t MoveType, promType PieceType) Move {
	var promBits Move
	if t == Promotion && promType.IsValid() {
		promBits = promotionCode[promType]
	}
	return Move(from) |
		Move(to)<<toShift |
		promBits<<promTypeShift |
		Move(t)<<typeShift
}

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square(m & fromMask)
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// PromotionType returns the PieceType considered for promotion when
// move type is also MoveType.Promotion.
// Must be ignored when move type is not MoveType.Promotion.
func (m Move) PromotionType() PieceType {
	return promotionTypes[(m&promTypeMask)>>promTypeShift]
}

// MoveType returns the type of the move as defined in MoveType
// Normal, Castling, EnPassant, Promotion
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// IsValid checks if the move has valid squares and is not MoveNone
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// String string representation of a move with details
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%1s  prom:%1s  (%d) }",
		m.StringUci(), m.MoveType().String(), m.PromotionType().Char(), m)
}

// StringUci string representation of a move which is UCI compatible.
// A castling move prints as the king's from-to (e.g. e1g1), the
// promotion letter is lower case (e.g. e7e8q).
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}

/* @formatter:off
   BITMAP 16-bit
   1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
   5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
   --------------------------------
               1 1 1 1 1 1          from
   1 1 1 1 1 1                      to
           1 1                      promotion piece type (N B R Q -> 0b00-0b11)
       1 1                          move type
*/ // @formatter:on

const (
	toShift       uint = 6
	promTypeShift uint = 12
	typeShift     uint = 14

	squareMask   Move = 0x3F
	fromMask          = squareMask
	toMask            = squareMask << toShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
)
