// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command violinplot renders a violin plot of one or more sample
// distributions as SVG.
//
// Each argument names a file of newline-separated numbers, one file
// per violin ("-" reads a single group from stdin). For example:
//
//	violinplot -legend -labels before,after old.txt new.txt > plot.svg
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-violin"
)

func main() {
	log.SetPrefix("violinplot: ")
	log.SetFlags(0)

	var (
		flagOut       = flag.String("o", "", "write SVG to `file` (default stdout)")
		flagSize      = flag.String("size", "640x480", "output size in pixels, `WxH`")
		flagBandwidth = flag.Float64("bandwidth", 0, "density estimator bandwidth (default automatic)")
		flagLabels    = flag.String("labels", "", "comma-separated group `names`")
		flagPositions = flag.String("positions", "", "comma-separated horizontal group `centers`")
		flagPoints    = flag.Float64("points", 0, "sample point `size` (default scales with group size)")
		flagNoPoints  = flag.Bool("nopoints", false, "suppress sample points")
		flagLegend    = flag.Bool("legend", false, "draw a legend for the mean/median bars")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file...\n\nEach file is one group of newline-separated numbers.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	width, height, err := parseSize(*flagSize)
	if err != nil {
		log.Fatal(err)
	}

	groups := make([][]float64, flag.NArg())
	for i, path := range flag.Args() {
		groups[i], err = readGroup(path)
		if err != nil {
			log.Fatal(err)
		}
	}

	o := &violin.Options{
		Bandwidth: *flagBandwidth,
		PointSize: *flagPoints,
		NoPoints:  *flagNoPoints,
		Legend:    *flagLegend,
	}
	if *flagLabels != "" {
		o.XLabels = strings.Split(*flagLabels, ",")
	}
	if *flagPositions != "" {
		for _, f := range strings.Split(*flagPositions, ",") {
			x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				log.Fatalf("bad -positions value %q: %v", f, err)
			}
			o.XPositions = append(o.XPositions, x)
		}
	}

	p, err := violin.New(groups, o)
	if p == nil {
		log.Fatal(err)
	}
	if err != nil {
		log.Print(err)
	}

	out := io.Writer(os.Stdout)
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := p.WriteSVG(out, width, height); err != nil {
		log.Fatal(err)
	}
}

func parseSize(s string) (w, h int, err error) {
	i := strings.IndexByte(s, 'x')
	if i < 0 {
		return 0, 0, fmt.Errorf("bad -size %q: want WxH", s)
	}
	w, err1 := strconv.Atoi(s[:i])
	h, err2 := strconv.Atoi(s[i+1:])
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad -size %q: want WxH", s)
	}
	return w, h, nil
}

// readGroup reads one group of newline-separated numbers from path,
// or from stdin if path is "-". Blank lines are skipped.
func readGroup(path string) ([]float64, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		xs = append(xs, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return xs, nil
}
