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

// Package movelist provides a fixed capacity list for chess moves.
// The capacity of 256 exceeds the known upper bound of ~218 legal
// moves in any legal chess position so the list never grows and
// never allocates after creation.
package movelist

import (
	"strings"

	. "github.com/lucena-chess/lucena/internal/types"
)

// MoveList is a fixed capacity array of moves with a length counter.
type MoveList struct {
	data [MaxMoves]Move
	len  int
}

// NewMoveList creates a new empty MoveList
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Len returns the number of moves currently stored in the list
func (ml *MoveList) Len() int {
	return ml.len
}

// Cap returns the fixed capacity of the list
func (ml *MoveList) Cap() int {
	return MaxMoves
}

// Clear removes all moves from the list without freeing memory
func (ml *MoveList) Clear() {
	ml.len = 0
}

// PushBack appends a move at the end of the list.
// Panics when the capacity is exceeded which cannot happen for
// moves generated on a legal chess position.
func (ml *MoveList) PushBack(m Move) {
	if ml.len >= MaxMoves {
		panic("MoveList: PushBack() called on full list")
	}
	ml.data[ml.len] = m
	ml.len++
}

// PopBack removes and returns the move from the back of the list.
// If the list is empty, the call panics.
func (ml *MoveList) PopBack() Move {
	if ml.len <= 0 {
		panic("MoveList: PopBack() called on empty list")
	}
	ml.len--
	return ml.data[ml.len]
}

// At returns the move at index i. Does not check bounds.
func (ml *MoveList) At(i int) Move {
	return ml.data[i]
}

// Set stores the move at index i. Does not check bounds.
func (ml *MoveList) Set(i int, m Move) {
	ml.data[i] = m
}

// Contains checks if the given move is in the list
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.len; i++ {
		if ml.data[i] == m {
			return true
		}
	}
	return false
}

// Equals checks if the other list has the same moves in the
// same order
func (ml *MoveList) Equals(other *MoveList) bool {
	if ml.len != other.len {
		return false
	}
	for i := 0; i < ml.len; i++ {
		if ml.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Clone copies the list into a newly created MoveList
func (ml *MoveList) Clone() *MoveList {
	clone := &MoveList{}
	*clone = *ml
	return clone
}

// ForEach calls the given function on each move index in order
func (ml *MoveList) ForEach(f func(i int)) {
	for i := 0; i < ml.len; i++ {
		f(i)
	}
}

// Sort sorts the list in place in descending order of the given
// score function. Uses insertion sort as the lists are small and
// mostly short.
func (ml *MoveList) Sort(score func(m Move) int) {
	for i := 1; i < ml.len; i++ {
		m := ml.data[i]
		s := score(m)
		j := i - 1
		for j >= 0 && score(ml.data[j]) < s {
			ml.data[j+1] = ml.data[j]
			j--
		}
		ml.data[j+1] = m
	}
}

// StringUci returns a string with all moves in UCI protocol format
// separated by a space
func (ml *MoveList) StringUci() string {
	var os strings.Builder
	for i := 0; i < ml.len; i++ {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(ml.data[i].StringUci())
	}
	return os.String()
}

// String returns a string representation of the move list
func (ml *MoveList) String() string {
	var os strings.Builder
	os.WriteString("MoveList: [")
	for i := 0; i < ml.len; i++ {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(ml.data[i].StringUci())
	}
	os.WriteString("]")
	return os.String()
}
