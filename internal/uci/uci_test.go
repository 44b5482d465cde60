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

package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucena-chess/lucena/internal/position"
)

func TestUciCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("uci")
	assert.Contains(t, response, "id name Lucena")
	assert.Contains(t, response, "id author")
	assert.Contains(t, response, "option name Move Ordering")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(response), "uciok"))
}

func TestIsReadyCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("isready")
	assert.Contains(t, response, "readyok")
}

func TestPositionCommand(t *testing.T) {
	u := NewUciHandler()

	u.Command("position startpos")
	assert.Equal(t, position.StartFen, u.CurrentPosition().StringFen())

	u.Command("position startpos moves e2e4 c7c5 g1f3")
	assert.Equal(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		u.CurrentPosition().StringFen())

	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	u.Command("position fen " + fen)
	assert.Equal(t, fen, u.CurrentPosition().StringFen())

	// castling through the uci move e1g1
	u.Command("position fen " + fen + " moves e1g1")
	assert.Equal(t, "b", strings.Fields(u.CurrentPosition().StringFen())[1])

	// invalid moves leave the position untouched
	before := u.CurrentPosition().StringFen()
	response := u.Command("position startpos moves e2e5")
	assert.Contains(t, response, "info string")
	assert.Equal(t, before, u.CurrentPosition().StringFen())
}

func TestUciNewGameCommand(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos moves e2e4")
	u.Command("ucinewgame")
	assert.Equal(t, position.StartFen, u.CurrentPosition().StringFen())
}

func TestGoDepthCommand(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos")
	u.Command("go depth 3")
	u.WaitWhileSearching()
	result := u.mySearch.LastSearchResult()
	assert.True(t, result.BestMove.IsValid())
	assert.Equal(t, 3, result.Depth)
}

func TestGoMalformed(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("go depth")
	assert.Contains(t, response, "info string")
	response = u.Command("go depth x")
	assert.Contains(t, response, "info string")
}

func TestSetOptionCommand(t *testing.T) {
	u := NewUciHandler()
	u.Command("setoption name Move Ordering value false")
	assert.Equal(t, "false", uciOptions["Move Ordering"].CurrentValue)
	u.Command("setoption name Move Ordering value true")
	assert.Equal(t, "true", uciOptions["Move Ordering"].CurrentValue)

	response := u.Command("setoption name No Such Option value 1")
	assert.Contains(t, response, "No such option")
}

func TestPositionMalformed(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("position fen")
	assert.Contains(t, response, "info string")
	response = u.Command("position fen 8/8/8/8 w - - 0 1")
	assert.Contains(t, response, "info string")
}

func TestStopWithoutSearch(t *testing.T) {
	u := NewUciHandler()
	// must not block or panic
	u.Command("stop")
}
