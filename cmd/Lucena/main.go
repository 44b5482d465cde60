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

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lucena-chess/lucena/internal/config"
	"github.com/lucena-chess/lucena/internal/logging"
	"github.com/lucena-chess/lucena/internal/movegen"
	"github.com/lucena-chess/lucena/internal/position"
	"github.com/lucena-chess/lucena/internal/search"
	"github.com/lucena-chess/lucena/internal/uci"
	"github.com/lucena-chess/lucena/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen for perft and depth runs")
	perftDepth := flag.Int("perft", 0, "starts perft on the given fen with the given depth and exits")
	divide := flag.Bool("divide", false, "prints perft counts per root move instead of the totals")
	searchDepth := flag.Int("depth", 0, "searches the given fen at the given depth, prints the best move and exits")
	cpuProfile := flag.Bool("cpuprofile", false, "write cpu profile to the working directory")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	// read configuration
	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		if l, ok := config.LogLevelFromString(*logLvl); ok {
			config.LogLevel = l
		}
	}
	if *searchLogLvl != "" {
		if l, ok := config.LogLevelFromString(*searchLogLvl); ok {
			config.SearchLogLevel = l
		}
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	log := logging.GetLog()

	// perft mode
	if *perftDepth > 0 {
		printVersionInfo()
		perft := movegen.NewPerft()
		if *divide {
			perft.StartDivide(*fen, *perftDepth)
		} else {
			perft.StartPerft(*fen, *perftDepth)
		}
		return
	}

	// fixed depth search mode
	if *searchDepth > 0 {
		printVersionInfo()
		p, err := position.NewPositionFen(*fen)
		if err != nil {
			log.Errorf("Invalid fen: %s", *fen)
			os.Exit(1)
		}
		s := search.NewSearch()
		limits := search.NewSearchLimits()
		limits.Depth = *searchDepth
		s.StartSearch(*p, *limits)
		s.WaitWhileSearching()
		result := s.LastSearchResult()
		out.Printf("%s\n", result.String())
		out.Printf("bestmove %s\n", result.BestMove.StringUci())
		return
	}

	// default - the UCI protocol loop
	handler := uci.NewUciHandler()
	if err := handler.Loop(); err != nil {
		log.Criticalf("UCI input stream failed: %s", err)
		os.Exit(1)
	}
}

func printVersionInfo() {
	out.Printf("%s %s\n", version.Name, version.Version)
	out.Printf("Environment:\n")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}
