// seehuhn.de/go/grapher - a line graph rendering engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/grapher"
)

// readSamples reads one sample per line. Blank lines and lines containing
// only "-" are missing samples. Text after a '#' is ignored.
func readSamples(r io.Reader) (grapher.Values, error) {
	var values grapher.Values
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			if strings.TrimSpace(text[:i]) == "" {
				// comment lines are not samples
				continue
			}
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" || text == "-" {
			values = append(values, math.NaN())
			continue
		}
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if math.IsInf(x, 0) {
			return nil, fmt.Errorf("line %d: infinite sample", line)
		}
		values = append(values, x)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// dataRange returns the smallest range containing all present samples.
// The range is widened when all samples are equal, and invalid when there
// are no samples.
func dataRange(v grapher.Values) grapher.ValueRange {
	r := grapher.ValueRange{Min: math.Inf(1), Max: math.Inf(-1)}
	for i := range v.Count() {
		x, ok := v.Value(i)
		if !ok {
			continue
		}
		r.Min = min(r.Min, x)
		r.Max = max(r.Max, x)
	}
	if math.IsInf(r.Min, 1) {
		return grapher.ValueRange{}
	}
	if r.Min == r.Max {
		r.Min--
		r.Max++
	}
	return r
}
