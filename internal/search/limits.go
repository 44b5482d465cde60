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

package search

import (
	"fmt"

	"github.com/lucena-chess/lucena/internal/config"
)

// Limits is a data structure to hold the limits for a search.
// The core search is depth limited - the depth defaults to the
// configured default depth when not set by the UCI "go" command.
type Limits struct {
	// Depth is the fixed depth the search will be run at
	Depth int

	// Infinite makes the search use the configured default depth in
	// place of Depth; the search ends when that depth is searched or
	// when it is stopped
	Infinite bool
}

// NewSearchLimits creates a new Limits instance with defaults
// from the configuration
func NewSearchLimits() *Limits {
	return &Limits{
		Depth:    config.Settings.Search.DefaultDepth,
		Infinite: false,
	}
}

// String returns a string representation of the limits
func (sl *Limits) String() string {
	return fmt.Sprintf("Limits: { Depth: %d, Infinite: %v }", sl.Depth, sl.Infinite)
}
