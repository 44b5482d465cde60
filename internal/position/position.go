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

// Package position represents data structures and functions for a chess
// board and its position. It uses an 8x8 piece board, twelve piece
// bitboards, a stack for undo moves, Zobrist keys for hashing and an
// always current bitboard of the pieces giving check.
//
// Create a new instance with NewPosition(...) with no parameters to get
// the chess start position.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/lucena-chess/lucena/internal/assert"
	myLogging "github.com/lucena-chess/lucena/internal/logging"
	. "github.com/lucena-chess/lucena/internal/types"
)

var log *logging.Logger

var initialized = false

// initialize package
func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

const (
	// StartFen is a string with the fen position for a standard chess game
	StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution
type Key uint64

// maxHistory limits how many moves can be undone. Generously above
// the longest real game plus the deepest search stack.
const maxHistory int = 1024

// Position
// This struct represents the chess board and its position.
// It uses an 8x8 piece board and twelve piece bitboards indexed by
// piece, a stack for undo moves, Zobrist keys for hashing and an
// always current checkers bitboard of the opponent pieces giving
// check to the next player.
//
// Needs to be created with NewPosition() or NewPositionFen(fen)
type Position struct {

	// The zobrist key to use as a hash key in transposition tables.
	// Updated incrementally every time one of the state variables
	// changes.
	zobristKey Key

	// Board State
	// unique chess position (exception is 3-fold repetition
	// which is also not represented in a FEN string)
	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	// Extended Board State
	// not necessary for a unique position
	// piece bitboards indexed by Piece (white king first, black pawn last)
	piecesBb [PieceLength - 1]Bitboard
	// occupied bitboards for each color
	occupiedBb [ColorLength]Bitboard
	// king squares for quick access
	kingSquare [ColorLength]Square
	// all opponent pieces giving check to the next player
	checkers Bitboard
	// half move number - the actual half move number to determine the full move number
	nextHalfMoveNumber int

	// Material value per color, always up to date
	material        [ColorLength]Value
	materialNonPawn [ColorLength]Value

	// history information for undo and repetition detection
	historyCounter int
	history        [maxHistory]historyState
}

type historyState struct {
	zobristKey      Key
	move            Move
	fromPiece       Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enpassantSquare Square
	halfMoveClock   int
	checkers        Bitboard
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewPosition creates a new position.
// When called without an argument the position will have the start position.
// When a fen string is given it will create a position based on this fen.
// Additional fens/strings are ignored
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		f, _ := NewPositionFen(StartFen)
		return f
	}
	f, _ := NewPositionFen(fen[0])
	return f
}

// NewPositionFen creates a new position with the given fen string
// as board position.
// It returns nil and an error if the fen was invalid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// DoMove commits a move to the board. Due to performance there is no
// check if this move is legal on the current position. Legality is
// guaranteed when the move has been created by the move generator on
// this position.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position DoMove: Invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "Position DoMove: No piece on %s for move %s", fromSq.String(), m.StringUci())
		assert.Assert(myColor == p.nextPlayer, "Position DoMove: Piece to move does not belong to next player %s", fromPc.String())
		assert.Assert(targetPc.TypeOf() != King, "Position DoMove: King cannot be captured")
	}

	// Save state of board for undo
	tmpHistoryCounter := p.historyCounter
	// update the existing history entry instead of creating a new one
	p.history[tmpHistoryCounter].zobristKey = p.zobristKey
	p.history[tmpHistoryCounter].move = m
	p.history[tmpHistoryCounter].fromPiece = fromPc
	p.history[tmpHistoryCounter].capturedPiece = targetPc
	p.history[tmpHistoryCounter].castlingRights = p.castlingRights
	p.history[tmpHistoryCounter].enpassantSquare = p.enPassantSquare
	p.history[tmpHistoryCounter].halfMoveClock = p.halfMoveClock
	p.history[tmpHistoryCounter].checkers = p.checkers
	p.historyCounter++

	// do move according to MoveType
	switch m.MoveType() {
	case Normal:
		p.doNormalMove(fromSq, toSq, targetPc, fromPc, myColor)
	case Promotion:
		p.doPromotionMove(m, fromPc, myColor, toSq, targetPc, fromSq)
	case EnPassant:
		p.doEnPassantMove(toSq, myColor, fromPc, fromSq)
	case Castling:
		p.doCastlingMove(fromPc, myColor, toSq, fromSq)
	}

	// update additional state info
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer

	// the side to move changed - the checkers bitboard needs to
	// reflect the attackers of the new king
	p.checkers = p.AttacksTo(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip(), p.OccupiedAll())
}

// UndoMove resets the position to the state before the last move was made
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "Position UndoMove: Cannot undo initial position")
	}

	// Restore state part 1
	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	tmpHistoryCounter := p.historyCounter
	move := p.history[p.historyCounter].move

	// undo piece move / restore board
	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if p.history[p.historyCounter].capturedPiece != PieceNone {
			p.putPiece(p.history[p.historyCounter].capturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if p.history[p.historyCounter].capturedPiece != PieceNone {
			p.putPiece(p.history[p.historyCounter].capturedPiece, move.To())
		}
	case EnPassant:
		// the zobrist key is restored via history
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.nextPlayer.Flip(), Pawn), move.To().To(p.nextPlayer.Flip().PawnPush()))
	case Castling:
		// castling rights are restored via history
		p.movePiece(move.To(), move.From()) // King
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1) // Rook
		case SqC1:
			p.movePiece(SqD1, SqA1) // Rook
		case SqG8:
			p.movePiece(SqF8, SqH8) // Rook
		case SqC8:
			p.movePiece(SqD8, SqA8) // Rook
		default:
			panic("Invalid castle move!")
		}
	}

	// restore state part 2
	p.castlingRights = p.history[tmpHistoryCounter].castlingRights
	p.enPassantSquare = p.history[tmpHistoryCounter].enpassantSquare
	p.halfMoveClock = p.history[tmpHistoryCounter].halfMoveClock
	p.checkers = p.history[tmpHistoryCounter].checkers
	p.zobristKey = p.history[tmpHistoryCounter].zobristKey
}

// AttacksTo determines all attacks of the given color to the given
// square on a board described by the occupied bitboard. The occupied
// bitboard does not need to match the current board - this is used
// to test king escape squares with the king removed from the board.
func (p *Position) AttacksTo(sq Square, by Color, occupied Bitboard) Bitboard {
	// to find the attackers of a square we do a reverse attack from the
	// target square and check if we hit a piece of the same kind
	return (GetPawnAttacks(by.Flip(), sq) & p.piecesBb[MakePiece(by, Pawn)]) |
		(GetAttacksBb(Knight, sq, occupied) & p.piecesBb[MakePiece(by, Knight)]) |
		(GetAttacksBb(King, sq, occupied) & p.piecesBb[MakePiece(by, King)]) |
		(GetAttacksBb(Bishop, sq, occupied) & (p.piecesBb[MakePiece(by, Bishop)] | p.piecesBb[MakePiece(by, Queen)])) |
		(GetAttacksBb(Rook, sq, occupied) & (p.piecesBb[MakePiece(by, Rook)] | p.piecesBb[MakePiece(by, Queen)]))
}

// IsAttacked checks if the given square is attacked by a piece
// of the given color on the current board.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return p.AttacksTo(sq, by, p.OccupiedAll()) != BbZero
}

// Checkers returns the bitboard of all opponent pieces giving check
// to the next player. Empty when the next player is not in check.
func (p *Position) Checkers() Bitboard {
	return p.checkers
}

// HasCheck returns true if the next player is in check
func (p *Position) HasCheck() bool {
	return p.checkers != BbZero
}

// CheckRepetitions checks if the current position has been repeated
// reps times before. Uses the full 64-bit zobrist keys of the
// position history. Every time the half move clock was reset the
// walk can stop as no earlier position can repeat after a pawn move
// or capture.
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	i := p.historyCounter - 2
	lastHalfMove := p.halfMoveClock
	for i >= 0 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.zobristKey == p.history[i].zobristKey {
			counter++
		}
		if counter >= reps {
			return true
		}
		i -= 2
	}
	return false
}

// HasInsufficientMaterial returns true if no side has enough material to
// force a mate (does not exclude combinations where a helpmate would be
// possible)
func (p *Position) HasInsufficientMaterial() bool {
	// both sides have a bare king
	if p.material[White]+p.material[Black] == 2*King.ValueOf() {
		return true
	}
	// no more pawns
	if p.piecesBb[WhitePawn] == BbZero && p.piecesBb[BlackPawn] == BbZero {
		whiteNonPawn := p.materialNonPawn[White]
		blackNonPawn := p.materialNonPawn[Black]
		// one side has a king and a minor piece against a bare king or
		// both sides have a king and a minor piece each
		if whiteNonPawn < 400 && blackNonPawn < 400 {
			return true
		}
		// the weaker side has a minor piece against two knights
		if (whiteNonPawn == 2*Knight.ValueOf() && blackNonPawn <= Bishop.ValueOf()) ||
			(blackNonPawn == 2*Knight.ValueOf() && whiteNonPawn <= Bishop.ValueOf()) {
			return true
		}
	}
	return false
}

// String returns a string representing the board instance. This
// includes the fen, a board matrix and the next player.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard(false))
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Next Player    : %s\n", p.nextPlayer.String()))
	os.WriteString(fmt.Sprintf("Material White : %d\n", p.material[White]))
	os.WriteString(fmt.Sprintf("Material Black : %d\n", p.material[Black]))
	return os.String()
}

// StringFen returns a string with the FEN of the current position
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns a visual matrix of the board and pieces.
// Rank 8 is printed first, empty squares print as dots. With
// unicode set the pieces are rendered as chess glyphs instead of
// FEN letters.
func (p *Position) StringBoard(unicode bool) string {
	var os strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank(r))]
			if pc == PieceNone {
				os.WriteString(".")
			} else if unicode {
				os.WriteString(pc.Glyph())
			} else {
				os.WriteString(pc.String())
			}
			if f < FileH {
				os.WriteString(" ")
			}
		}
		os.WriteString("\n")
	}
	return os.String()
}

// //////////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////////

func (p *Position) doNormalMove(fromSq Square, toSq Square, targetPc Piece, fromPc Piece, myColor Color) {
	// if we still have castling rights and the move touches castling
	// squares then invalidate the corresponding castling right
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.zobristKey ^= castlingKey(p.castlingRights) // out
			p.castlingRights.Remove(cr)
			p.zobristKey ^= castlingKey(p.castlingRights) // in
		}
	}
	p.clearEnPassant()
	if targetPc != PieceNone { // capture
		p.removePiece(toSq)
		p.halfMoveClock = 0 // reset half move clock because of capture
	} else if fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0                    // reset half move clock because of pawn move
		if SquareDistance(fromSq, toSq) == 2 { // pawn double - set en passant
			// set the en passant target unconditionally - always one
			// square "behind" the to square
			p.enPassantSquare = toSq.To(myColor.Flip().PawnPush())
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()] // in
		}
	} else {
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doCastlingMove(fromPc Piece, myColor Color, toSq Square, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, King), "Position DoMove: Move type castling but from piece not king")
	}
	switch toSq {
	case SqG1:
		p.movePiece(fromSq, toSq) // King
		p.movePiece(SqH1, SqF1)   // Rook
	case SqC1:
		p.movePiece(fromSq, toSq) // King
		p.movePiece(SqA1, SqD1)   // Rook
	case SqG8:
		p.movePiece(fromSq, toSq) // King
		p.movePiece(SqH8, SqF8)   // Rook
	case SqC8:
		p.movePiece(fromSq, toSq) // King
		p.movePiece(SqA8, SqD8)   // Rook
	default:
		panic("Invalid castle move!")
	}
	p.zobristKey ^= castlingKey(p.castlingRights) // out
	if myColor == White {
		p.castlingRights.Remove(CastlingWhite)
	} else {
		p.castlingRights.Remove(CastlingBlack)
	}
	p.zobristKey ^= castlingKey(p.castlingRights) // in
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) doEnPassantMove(toSq Square, myColor Color, fromPc Piece, fromSq Square) {
	capSq := toSq.To(myColor.Flip().PawnPush())
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: Move type en passant but from piece not pawn")
		assert.Assert(p.enPassantSquare != SqNone, "Position DoMove: EnPassant move type without en passant")
		assert.Assert(p.board[capSq] == MakePiece(myColor.Flip(), Pawn), "Position DoMove: Captured en passant piece invalid")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	// reset half move clock because of pawn move
	p.halfMoveClock = 0
}

func (p *Position) doPromotionMove(m Move, fromPc Piece, myColor Color, toSq Square, targetPc Piece, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: Move type promotion but from piece not pawn")
		assert.Assert(myColor.PromotionRankBb().Has(toSq), "Position DoMove: Promotion move but wrong rank")
	}
	if targetPc != PieceNone { // capture
		p.removePiece(toSq)
	}
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.zobristKey ^= castlingKey(p.castlingRights) // out
			p.castlingRights.Remove(cr)
			p.zobristKey ^= castlingKey(p.castlingRights) // in
		}
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0 // reset half move clock because of pawn move
}

func (p *Position) movePiece(fromSq Square, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "tried to put piece on an occupied square: %s", square.String())
		assert.Assert(!p.piecesBb[piece].Has(square), "tried to set bit on pieceBb which is already set: %s", square.String())
	}

	// update board
	p.board[square] = piece
	if piece.TypeOf() == King {
		p.kingSquare[color] = square
	}
	// update bitboards
	p.piecesBb[piece].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	// zobrist
	p.zobristKey ^= zobristBase.pieces[piece][square]
	// material
	p.material[color] += piece.ValueOf()
	if piece.TypeOf() != Pawn && piece.TypeOf() != King {
		p.materialNonPawn[color] += piece.ValueOf()
	}
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] != PieceNone, "tried to remove piece from an empty square: %s", square.String())
		assert.Assert(p.piecesBb[removed].Has(square), "tried to clear bit from pieceBb which is not set: %s", square.String())
	}

	// update board
	p.board[square] = PieceNone
	// update bitboards
	p.piecesBb[removed].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	// zobrist
	p.zobristKey ^= zobristBase.pieces[removed][square]
	// material
	p.material[color] -= removed.ValueOf()
	if removed.TypeOf() != Pawn && removed.TypeOf() != King {
		p.materialNonPawn[color] -= removed.ValueOf()
	}
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()] // out
		p.enPassantSquare = SqNone
	}
}

func (p *Position) fen() string {
	var fen strings.Builder
	// pieces
	for r := int(Rank8); r >= int(Rank1); r-- {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank(r))]
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r > int(Rank1) {
			fen.WriteString("/")
		}
	}
	// next player
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	// castling
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	// en passant
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	// half move clock
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	// full move number
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))

	return fen.String()
}

// regex for first part of fen (position of pieces)
var regexFenPos = regexp.MustCompile("^[0-8pPnNbBrRqQkK/]+$")

// regex for next player color in fen
var regexWorB = regexp.MustCompile("^[w|b]$")

// regex for castling rights in fen
var regexCastlingRights = regexp.MustCompile("^(K?Q?k?q?|-)$")

// regex for en passant square in fen
var regexEnPassant = regexp.MustCompile("^([a-h][36]|-)$")

// setupBoard sets up a board based on a fen. This is basically
// the only way to get a valid Position instance. Internal state
// will be set up. All struct data starts at its zero value except
// the square map, which is set to PieceNone before pieces are placed.
func (p *Position) setupBoard(fen string) error {

	// as the squares count down from a8 (63) to h1 (0) the fen
	// piece placement can be read as one monotonically decreasing
	// square index
	fen = strings.TrimSpace(fen)
	fenParts := strings.Fields(fen)

	if len(fenParts) == 0 {
		return errors.New("fen must not be empty")
	}

	// make sure only valid chars are used
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	// the zero value of Piece is WhiteKing - mark all squares empty
	for sq := range p.board {
		p.board[sq] = PieceNone
	}

	// fen string starts at a8 and runs to h1 with / jumping to the
	// next lower rank
	currentSquare := int(SqA8)

	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil { // is number
			currentSquare -= number
		} else if string(c) == "/" { // rank separator
			if (currentSquare+1)%8 != 0 {
				return errors.New("fen position has an incomplete rank")
			}
		} else { // find piece type
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			if currentSquare < 0 {
				return errors.New("fen position has too many squares")
			}
			p.putPiece(piece, Square(currentSquare))
			currentSquare--
		}
	}
	if currentSquare != -1 { // after h1 we need to have read exactly 64 squares
		return errors.New("not reached last square (h1) after reading fen")
	}

	// kingship - exactly one king per color
	if p.piecesBb[WhiteKing].PopCount() != 1 || p.piecesBb[BlackKing].PopCount() != 1 {
		return errors.New("fen position must have exactly one king per color")
	}

	// set defaults
	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	// everything below is optional as we can apply defaults

	// next player
	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen next player contains invalid characters")
		}
		switch fenParts[1] {
		case "w":
			p.nextPlayer = White
		case "b":
			p.nextPlayer = Black
			p.zobristKey ^= zobristBase.nextPlayer
			p.nextHalfMoveNumber++
		}
	}

	// castling rights
	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch string(c) {
				case "K":
					p.castlingRights.Add(CastlingWhiteOO)
				case "Q":
					p.castlingRights.Add(CastlingWhiteOOO)
				case "k":
					p.castlingRights.Add(CastlingBlackOO)
				case "q":
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.zobristKey ^= castlingKey(p.castlingRights)
	}

	// en passant
	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	// half move clock (50 moves rule)
	if len(fenParts) >= 5 {
		if number, e := strconv.Atoi(fenParts[4]); e == nil {
			p.halfMoveClock = number
		} else {
			return e
		}
	}

	// move number
	if len(fenParts) >= 6 {
		// game move number - to be converted into next half move number (ply)
		if moveNumber, e := strconv.Atoi(fenParts[5]); e == nil {
			if moveNumber == 0 {
				moveNumber = 1
			}
			p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
		} else {
			return e
		}
	}

	// the checkers bitboard is part of every valid position
	p.checkers = p.AttacksTo(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip(), p.OccupiedAll())

	return nil
}

// //////////////////////////////////////////////////////
// // Getter and Setter functions
// //////////////////////////////////////////////////////

// ZobristKey returns the current zobrist key for this position
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// NextPlayer returns the next player as Color for the position
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// GetPiece returns the piece on the given square. Empty
// squares are initialized with PieceNone and return the same.
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the Bitboard for the given piece type of the given color
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[MakePiece(c, pt)]
}

// PieceBb returns the Bitboard for the given piece
func (p *Position) PieceBb(pc Piece) Bitboard {
	return p.piecesBb[pc]
}

// OccupiedAll returns a Bitboard of all pieces currently on the board
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// OccupiedBb returns a Bitboard of all pieces of Color c
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// GetEnPassantSquare returns the en passant square or SqNone if not set
func (p *Position) GetEnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the castling rights of the position
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// KingSquare returns the current square of the king of color c
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the positions half move clock
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// Material returns the material value for the given color
// on this position
func (p *Position) Material(c Color) Value {
	return p.material[c]
}

// MaterialNonPawn returns the non pawn material value for
// the given color (kings not counted)
func (p *Position) MaterialNonPawn(c Color) Value {
	return p.materialNonPawn[c]
}

// LastMove returns the last move made on the position or
// MoveNone if the position has no history of earlier moves.
func (p *Position) LastMove() Move {
	if p.historyCounter <= 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// LastCapturedPiece returns the captured piece of the last
// move made on the position or PieceNone if the move was
// non-capturing or the position has no history of earlier moves.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter <= 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].capturedPiece
}

// WasCapturingMove returns true if the last move was
// a capturing move.
func (p *Position) WasCapturingMove() bool {
	return p.LastCapturedPiece() != PieceNone
}

// IsCapturingMove determines if a move on this position is a
// capturing move incl. en passant
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}
