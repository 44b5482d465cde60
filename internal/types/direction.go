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

// Direction is a step from one square to a neighbouring square.
// As bit 0 is h1 and files run right to left within a rank, a step
// to the west is +1 and a step to the east is -1.
type Direction int8

// Constants for all directions
//noinspection ALL
const (
	North     Direction = 8
	West      Direction = 1
	South     Direction = -North
	East      Direction = -West
	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West
)

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return -d
}

// String returns a string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	case Northwest:
		return "NW"
	}
	return "-"
}

// Orientation is an index into the pre-computed ray tables.
type Orientation uint8

// Constants for all orientations
const (
	N Orientation = iota
	NE
	E
	SE
	S
	SW
	W
	NW
	OrientationLength int = 8
)

// orientation to direction mapping
var orientationDirections = [OrientationLength]Direction{
	North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// Direction returns the Direction of the Orientation
func (o Orientation) Direction() Direction {
	return orientationDirections[o]
}
