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
	"strconv"
)

// Value represents the positional value of a chess position
type Value int16

// Constants for values
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueInf                Value = 15000
	ValueNA                 Value = -ValueInf - 1
	ValueMax                Value = ValueInf
	ValueMin                Value = -ValueInf
	ValueCheckMate          Value = 10000
	ValueCheckMateThreshold Value = ValueCheckMate - Value(MaxDepth)
)

// IsValid checks if value is within the valid range
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue returns true if value is above the check mate threshold
// which means that a check mate has been found within MaxDepth of the
// current position
func (v Value) IsCheckMateValue() bool {
	return (v > ValueCheckMateThreshold && v <= ValueCheckMate) ||
		(v < -ValueCheckMateThreshold && v >= -ValueCheckMate)
}

// String returns a UCI compatible string representation of the value.
// Mate values are reported as "mate <moves>".
func (v Value) String() string {
	if v.IsCheckMateValue() {
		var moves int
		if v > 0 {
			moves = (int(ValueCheckMate-v) + 1) / 2
		} else {
			moves = -(int(ValueCheckMate+v) + 1) / 2
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return "cp " + strconv.Itoa(int(v))
}
