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

// Package uci contains the UciHandler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/lucena-chess/lucena/internal/logging"
	"github.com/lucena-chess/lucena/internal/movegen"
	"github.com/lucena-chess/lucena/internal/position"
	"github.com/lucena-chess/lucena/internal/search"
	. "github.com/lucena-chess/lucena/internal/types"
	"github.com/lucena-chess/lucena/internal/version"
)

var log *logging.Logger

// UciHandler handles all communication with the chess ui via UCI
// and controls options and search.
// Create an instance with NewUciHandler()
type UciHandler struct {
	InIo       *bufio.Scanner
	OutIo      *bufio.Writer
	myMoveGen  *movegen.Movegen
	mySearch   *search.Search
	myPosition *position.Position
	myPerft    *movegen.Perft
	uciLog     *logging.Logger
}

// ///////////////////////////////////////////////////////////
// Public
// ///////////////////////////////////////////////////////////

// NewUciHandler creates a new UciHandler instance.
// Input / Output io can be replaced by changing the instance's
// InIo and OutIo members.
//  Example:
// 		u.InIo = bufio.NewScanner(os.Stdin)
//		u.OutIo = bufio.NewWriter(os.Stdout)
func NewUciHandler() *UciHandler {
	if log == nil {
		log = myLogging.GetLog()
	}
	u := &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		myMoveGen:  movegen.NewMoveGen(),
		mySearch:   search.NewSearch(),
		myPosition: position.NewPosition(),
		myPerft:    movegen.NewPerft(),
		uciLog:     myLogging.GetUciLog(),
	}
	u.mySearch.SetUciHandler(u)
	return u
}

// Loop starts the main loop to receive commands through the
// input stream (pipe or user). Returns nil after a clean "quit"
// and the scanner error after an input failure.
func (u *UciHandler) Loop() error {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			// quit command received
			return nil
		}
	}
	return u.InIo.Err()
}

// Command handles a single line of UCI protocol aka command.
// Returns the uci response as string output.
// Mostly useful for debugging and unit testing.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// WaitWhileSearching blocks until a started search has finished.
// Useful in tests which use Command("go ...").
func (u *UciHandler) WaitWhileSearching() {
	u.mySearch.WaitWhileSearching()
}

// CurrentPosition returns the current position of the handler
func (u *UciHandler) CurrentPosition() *position.Position {
	return u.myPosition
}

// SendReadyOk tells the UCI ui that the engine is ready
func (u *UciHandler) SendReadyOk() {
	u.send("readyok")
}

// SendInfoString sends an arbitrary string to the UCI user interface
func (u *UciHandler) SendInfoString(info string) {
	u.send(fmt.Sprintf("info string %s", info))
}

// SendSearchResultInfo sends the stats of the finished search to the UCI ui
func (u *UciHandler) SendSearchResultInfo(depth int, value Value, nodes uint64, nps uint64, searchTime time.Duration, pv string) {
	u.send(fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		depth, value.String(), nodes, nps, searchTime.Milliseconds(), pv))
}

// SendResult sends the search result to the UCI ui after the
// search has ended or has been stopped
func (u *UciHandler) SendResult(bestMove Move) {
	u.send("bestmove " + bestMove.StringUci())
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	log.Debugf("Received command: %s", cmd)
	u.uciLog.Infof("<< %s", cmd)
	// find command and execute by calling the command function
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.isReadyCommand()
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.stopCommand()
	case "perft":
		u.perftCommand(tokens)
	case "noop":
	default:
		log.Warningf("Error: Unknown command: %s", cmd)
	}
	log.Debugf("Processed command: %s", cmd)
	return false
}

// command handler when the "uci" cmd has been received.
// Responds with "id" and "options"
func (u *UciHandler) uciCommand() {
	u.send("id name " + version.Name + " " + version.Version)
	u.send("id author " + version.Author)
	for _, o := range uciOptionList {
		u.send(o.uciString())
	}
	u.send("uciok")
}

// the set option command reads the option name and the optional value
// and checks if the uci option exists. If it does its new value will
// be stored and its handler function will be called
func (u *UciHandler) setOptionCommand(tokens []string) {
	name := ""
	value := ""
	if len(tokens) > 1 && tokens[1] == "name" {
		i := 2
		for i < len(tokens) && tokens[i] != "value" {
			name += tokens[i] + " "
			i++
		}
		name = strings.TrimSpace(name)
		if len(tokens) > i+1 && tokens[i] == "value" {
			value = tokens[i+1]
		}
	} else {
		msg := "Command 'setoption' is malformed"
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	o, found := uciOptions[name]
	if found {
		o.CurrentValue = value
		o.HandlerFunc(u, o)
	} else {
		msg := fmt.Sprintf("Command 'setoption': No such option '%s'", name)
		u.SendInfoString(msg)
		log.Warning(msg)
	}
}

// requests the isready status from the engine
func (u *UciHandler) isReadyCommand() {
	u.SendReadyOk()
}

// sends a stop signal to search and perft
func (u *UciHandler) stopCommand() {
	u.mySearch.StopSearch()
	u.myPerft.Stop()
}

// starts a perft test with the given depth on the current position
func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4 // default
	var err error
	if len(tokens) > 1 {
		depth, err = strconv.Atoi(tokens[1])
		if err != nil {
			log.Warningf("Can't perft on depth='%s'", tokens[1])
			return
		}
	}
	go u.myPerft.StartPerft(u.myPosition.StringFen(), depth)
}

// starts a search after reading in the search limits provided
func (u *UciHandler) goCommand(tokens []string) {
	searchLimits, ok := u.readSearchLimits(tokens)
	if !ok {
		return
	}
	// start the search
	u.mySearch.StartSearch(*u.myPosition, *searchLimits)
}

// sets the current position as given by the uci command
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		msg := fmt.Sprintf("Command 'position' malformed. %s", tokens)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	// build initial position
	fen := position.StartFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(fenb.String())
		if len(fen) > 0 {
			break
		}
		// fen empty - fall through to err msg
		fallthrough
	default:
		msg := fmt.Sprintf("Command 'position' malformed. %s", tokens)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	newPosition, err := position.NewPositionFen(fen)
	if err != nil {
		msg := fmt.Sprintf("Command 'position' malformed. Invalid fen '%s' (%s)", fen, err)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}

	// check for moves to make - applied by matching against the
	// text representation of the generated legal moves
	if i < len(tokens) {
		if tokens[i] != "moves" {
			msg := fmt.Sprintf("Command 'position' malformed moves. %s", tokens)
			u.SendInfoString(msg)
			log.Warning(msg)
			return
		}
		i++
		for i < len(tokens) {
			move := u.myMoveGen.GetMoveFromUci(newPosition, tokens[i])
			if !move.IsValid() {
				msg := fmt.Sprintf("Command 'position' malformed. Invalid move '%s' (%s)", tokens[i], tokens)
				u.SendInfoString(msg)
				log.Warning(msg)
				return
			}
			newPosition.DoMove(move)
			i++
		}
	}
	u.myPosition = newPosition
	log.Debugf("New position: %s", u.myPosition.StringFen())
}

// Signals the search that a new game will be started. The position
// is reset to the standard starting position.
func (u *UciHandler) uciNewGameCommand() {
	u.mySearch.NewGame()
	u.myPosition = position.NewPosition()
}

func (u *UciHandler) readSearchLimits(tokens []string) (*search.Limits, bool) {
	searchLimits := search.NewSearchLimits()
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "depth":
			i++
			if i >= len(tokens) {
				msg := "Command 'go depth' is missing a depth"
				u.SendInfoString(msg)
				log.Warning(msg)
				return nil, false
			}
			depth, err := strconv.Atoi(tokens[i])
			if err != nil || depth <= 0 {
				msg := fmt.Sprintf("Command 'go depth' has an invalid depth '%s'", tokens[i])
				u.SendInfoString(msg)
				log.Warning(msg)
				return nil, false
			}
			searchLimits.Depth = depth
			i++
		case "infinite":
			searchLimits.Infinite = true
			i++
		default:
			// unknown limits (time controls etc.) are skipped - the
			// core search is depth limited only
			log.Warningf("Ignored 'go' parameter: %s", tokens[i])
			i++
		}
	}
	return searchLimits, true
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
