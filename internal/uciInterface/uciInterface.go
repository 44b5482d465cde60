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

// Package uciInterface defines the interface between the search and
// the UCI protocol handler. It decouples the two packages to avoid
// an import cycle - the search sends its results through this
// interface without knowing the UCI implementation.
package uciInterface

import (
	"time"

	. "github.com/lucena-chess/lucena/internal/types"
)

// UciDriver is the interface against which the search reports
// readiness, progress and results to the UCI user interface.
type UciDriver interface {

	// SendReadyOk tells the UCI ui that the engine is ready
	SendReadyOk()

	// SendInfoString sends an arbitrary info string to the UCI ui
	SendInfoString(info string)

	// SendSearchResultInfo sends the stats of a finished search
	// depth to the UCI ui
	SendSearchResultInfo(depth int, value Value, nodes uint64, nps uint64, time time.Duration, pv string)

	// SendResult sends the best move of the search to the UCI ui
	SendResult(bestMove Move)
}
