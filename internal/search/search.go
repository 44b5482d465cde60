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

// Package search implements the search driver of the engine: a
// negamax search with alpha-beta pruning at a fixed depth over the
// legal move tree. The search runs in its own goroutine and can be
// stopped between move loop iterations.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/lucena-chess/lucena/internal/config"
	"github.com/lucena-chess/lucena/internal/evaluator"
	myLogging "github.com/lucena-chess/lucena/internal/logging"
	"github.com/lucena-chess/lucena/internal/movegen"
	"github.com/lucena-chess/lucena/internal/position"
	. "github.com/lucena-chess/lucena/internal/types"
	"github.com/lucena-chess/lucena/internal/uciInterface"
	"github.com/lucena-chess/lucena/internal/util"
)

// Search represents the data structure for a chess engine search.
// Create a new instance with NewSearch()
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	eval *evaluator.Evaluator

	// previous search
	lastSearchResult *Result
	hasResult        bool

	// current search state
	stopFlag        bool
	startTime       time.Time
	currentPosition *position.Position
	searchLimits    *Limits
	nodesVisited    uint64
	mg              []*movegen.Movegen
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewSearch creates a new Search instance without a UCI handler.
// See SetUciHandler().
func NewSearch() *Search {
	s := &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		uciHandlerPtr: nil,
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		eval:          evaluator.NewEvaluator(),
	}
	return s
}

// SetUciHandler sets the UCI handler to communicate with the
// UCI user interface. If not set the result is only written to the
// search log and kept for LastSearchResult().
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// NewGame stops any running searches and resets the search state
// to be ready for a different game.
func (s *Search) NewGame() {
	s.StopSearch()
	s.lastSearchResult = nil
	s.hasResult = false
}

// StartSearch starts the search on the given position with the given
// search limits in a separate goroutine. The search can be stopped
// with StopSearch(). The given position is copied so the caller's
// instance stays untouched by the search.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	// acquire init phase lock
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	// run search in a separate goroutine
	go s.run(&p, &sl)
	// wait until search is running and initialization is done
	// before returning to the caller
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as soon as possible. The search
// stops between move loop iterations and still returns the best
// move found until then.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// IsSearching checks if the search is running
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching checks if the search is running and blocks
// until the search has stopped
func (s *Search) WaitWhileSearching() {
	// get and release the running semaphore - when we get it the
	// search is not running any more
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// LastSearchResult returns a copy of the last search result
func (s *Search) LastSearchResult() Result {
	if s.lastSearchResult == nil {
		return Result{}
	}
	return *s.lastSearchResult
}

// HasResult returns true if the search has a result from a
// previous run
func (s *Search) HasResult() bool {
	return s.hasResult
}

// NodesVisited returns the number of nodes visited in the
// last search
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// run is the mainline of a search started in its own goroutine.
// It initializes the search state, runs the fixed depth root
// search and reports the result.
func (s *Search) run(p *position.Position, sl *Limits) {
	// check if there is already a search running and block until
	// it has finished
	_ = s.isRunning.Acquire(context.TODO(), 1)
	defer s.isRunning.Release(1)

	// init search run
	s.stopFlag = false
	s.hasResult = false
	s.startTime = time.Now()
	s.nodesVisited = 0
	s.currentPosition = p
	s.searchLimits = sl

	depth := sl.Depth
	if sl.Infinite || depth <= 0 {
		depth = config.Settings.Search.DefaultDepth
	}
	if depth >= MaxDepth {
		depth = MaxDepth - 1
	}

	// one move generator per ply as the generated move list is
	// owned by its generator
	s.mg = make([]*movegen.Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		s.mg[i] = movegen.NewMoveGen()
	}

	// release the init phase lock - search is initialized
	s.initSemaphore.Release(1)

	s.log.Debugf("Search starting on position %s with %s", p.StringFen(), sl.String())

	result := s.rootSearch(p, depth)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodesVisited

	s.lastSearchResult = &result
	s.hasResult = true

	elapsed := result.SearchTime
	nps := util.Nps(s.nodesVisited, elapsed)
	s.slog.Infof("Search finished: %s", result.String())

	// report the result to the UCI ui
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendSearchResultInfo(result.Depth, result.BestValue,
			s.nodesVisited, nps, elapsed, result.BestMove.StringUci())
		s.uciHandlerPtr.SendResult(result.BestMove)
	}
}

// stopConditions checks if the search should be stopped.
// Checked between move loop iterations.
func (s *Search) stopConditions() bool {
	return s.stopFlag
}
