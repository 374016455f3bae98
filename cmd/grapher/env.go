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
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"
)

// envString returns the value of the environment variable GRAPHER_<key>,
// or def if it is unset.
func envString(key, def string) string {
	if v, ok := os.LookupEnv("GRAPHER_" + key); ok {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv("GRAPHER_" + key)
	if !ok {
		return def
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring GRAPHER_%s: %v\n", key, err)
		return def
	}
	return x
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv("GRAPHER_" + key)
	if !ok {
		return def
	}
	x, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring GRAPHER_%s: %v\n", key, err)
		return def
	}
	return x
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv("GRAPHER_" + key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring GRAPHER_%s: %v\n", key, err)
		return def
	}
	return d
}

// parseColor parses colors of the form #rgb, #rrggbb and #rrggbbaa.
func parseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return nil, fmt.Errorf("invalid color %q", s)
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{
		R: uint8(x >> 24),
		G: uint8(x >> 16),
		B: uint8(x >> 8),
		A: uint8(x),
	}, nil
}
