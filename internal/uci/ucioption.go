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
	"fmt"
	"strconv"

	"github.com/lucena-chess/lucena/internal/config"
)

// optionType is a set of constants for the UCI option types
type optionType int

const (
	check  optionType = iota
	spin   optionType = iota
	button optionType = iota
)

// uciOption defines a single UCI option with its handler function
// which is called when the UCI ui sets the option
type uciOption struct {
	NameID       string
	OptionType   optionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
	HandlerFunc  func(*UciHandler, *uciOption)
}

// all available UCI options by name
var uciOptions map[string]*uciOption

// display order of the options for the "uci" command
var uciOptionList []*uciOption

// init defines all available uci options and stores them into the
// uciOptions map
func init() {
	uciOptionList = []*uciOption{
		{NameID: "Move Ordering", HandlerFunc: useSortMoves, OptionType: check,
			DefaultValue: strconv.FormatBool(config.Settings.Search.UseSortMoves),
			CurrentValue: strconv.FormatBool(config.Settings.Search.UseSortMoves)},
		{NameID: "Draw Detection", HandlerFunc: useDrawDetection, OptionType: check,
			DefaultValue: strconv.FormatBool(config.Settings.Search.UseDrawDetection),
			CurrentValue: strconv.FormatBool(config.Settings.Search.UseDrawDetection)},
		{NameID: "Default Depth", HandlerFunc: defaultDepth, OptionType: spin,
			DefaultValue: strconv.Itoa(config.Settings.Search.DefaultDepth),
			CurrentValue: strconv.Itoa(config.Settings.Search.DefaultDepth),
			MinValue:     "1", MaxValue: "32"},
	}
	uciOptions = map[string]*uciOption{}
	for _, o := range uciOptionList {
		uciOptions[o.NameID] = o
	}
}

// uciString returns the UCI protocol representation of the option
// for the "uci" command response
func (o *uciOption) uciString() string {
	switch o.OptionType {
	case check:
		return fmt.Sprintf("option name %s type check default %s", o.NameID, o.DefaultValue)
	case spin:
		return fmt.Sprintf("option name %s type spin default %s min %s max %s",
			o.NameID, o.DefaultValue, o.MinValue, o.MaxValue)
	case button:
		return fmt.Sprintf("option name %s type button", o.NameID)
	}
	return ""
}

// ////////////////////////////////////////////////////////////////
// Handler functions
// ////////////////////////////////////////////////////////////////

func useSortMoves(u *UciHandler, o *uciOption) {
	v, err := strconv.ParseBool(o.CurrentValue)
	if err != nil {
		u.SendInfoString(fmt.Sprintf("Option '%s': invalid value '%s'", o.NameID, o.CurrentValue))
		return
	}
	config.Settings.Search.UseSortMoves = v
	log.Debugf("Set option %s = %v", o.NameID, v)
}

func useDrawDetection(u *UciHandler, o *uciOption) {
	v, err := strconv.ParseBool(o.CurrentValue)
	if err != nil {
		u.SendInfoString(fmt.Sprintf("Option '%s': invalid value '%s'", o.NameID, o.CurrentValue))
		return
	}
	config.Settings.Search.UseDrawDetection = v
	log.Debugf("Set option %s = %v", o.NameID, v)
}

func defaultDepth(u *UciHandler, o *uciOption) {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil || v < 1 {
		u.SendInfoString(fmt.Sprintf("Option '%s': invalid value '%s'", o.NameID, o.CurrentValue))
		return
	}
	config.Settings.Search.DefaultDepth = v
	log.Debugf("Set option %s = %v", o.NameID, v)
}
