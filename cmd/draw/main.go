// seehuhn.de/go/draw - a turtle graphics language inspired by Forth and Logo
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command draw runs turtle graphics programs and writes the result as SVG.
//
// Usage:
//
//	draw [flags] [program.draw]
//
// The program is read from the named file, or from standard input if no
// file is given.  Diagnostics are printed to standard error.  With -i,
// program lines are entered interactively and the whole program is run
// again after every line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"seehuhn.de/go/draw"
	"seehuhn.de/go/draw/svg"
)

func main() {
	var (
		configPath  string
		outPath     string
		trace       bool
		interactive bool
		margin      float64
		strokeWidth float64
	)
	flag.StringVar(&configPath, "config", "", "read settings from this YAML file")
	flag.StringVar(&outPath, "o", "-", "write SVG output to this file (\"-\" for stdout)")
	flag.BoolVar(&trace, "trace", false, "enable trace logging from the start")
	flag.BoolVar(&interactive, "i", false, "interactive session")
	flag.Float64Var(&margin, "margin", 0, "margin around the drawing")
	flag.Float64Var(&strokeWidth, "stroke-width", 0, "line width")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = trace
		case "margin":
			cfg.Margin = margin
		case "stroke-width":
			cfg.StrokeWidth = strokeWidth
		}
	})
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "", 0)
	intp := draw.NewInterpreter(
		draw.WithLogf(logger.Printf),
		draw.WithLogBudget(cfg.LogBudget),
		draw.WithMaxCallDepth(cfg.MaxCallDepth),
		draw.WithTrace(cfg.Trace),
	)
	svgOpt := &svg.Options{
		Margin:      cfg.Margin,
		StrokeWidth: cfg.StrokeWidth,
	}

	if interactive {
		if outPath == "-" {
			outPath = ""
		}
		s := newSession(intp, os.Stdout, outPath, svgOpt)
		if err := s.interact(historyPath(cfg.History)); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		return
	}

	err = runFile(intp, flag.Arg(0), outPath, svgOpt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// runFile executes the program in the file inPath (or stdin, if inPath is
// empty or "-") and writes the drawing to outPath.
func runFile(intp *draw.Interpreter, inPath, outPath string, opt *svg.Options) error {
	var r io.Reader = os.Stdin
	if inPath != "" && inPath != "-" {
		fd, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer fd.Close()
		r = fd
	}
	d, err := intp.Execute(r)
	if err != nil {
		return err
	}
	return writeSVG(outPath, d.Path, opt)
}

// writeSVG writes p as an SVG document to the file at path.
// The path "-" denotes standard output.
func writeSVG(path string, p *draw.Path, opt *svg.Options) error {
	if path == "-" {
		return svg.Write(os.Stdout, p, opt)
	}
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	err = svg.Write(fd, p, opt)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	return err
}

// historyPath resolves a relative history file name against the
// user's home directory.  An empty name disables the history.
func historyPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, name)
}
