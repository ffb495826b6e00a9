// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Matpow raises a random square matrix to an integer power. It is the
// workload timed by scaling runs.
//
// Usage:
//
//	matpow [-n rows] [-e exponent] [-seed seed]
//
// The matrix has entries drawn uniformly from [-0.5, 0.5). Matpow
// prints the dimensions of the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"gonum.org/v1/gonum/mat"
)

var exit = os.Exit // replaced during testing

var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("matpow: ")
	log.SetFlags(0)

	err := matpow(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, errUsage) {
		exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func matpow(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("matpow", flag.ContinueOnError)
	flags.SetOutput(wErr)
	n := flags.Int("n", 500, "number of rows and columns of the square matrix")
	e := flags.Int("e", 3, "matrix `exponent`")
	seed := flags.Int64("seed", 1234, "random `seed` for the matrix entries")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}
	if flags.NArg() != 0 || *n <= 0 || *e < 0 {
		fmt.Fprintf(wErr, "usage: matpow [-n rows] [-e exponent] [-seed seed]\n")
		flags.PrintDefaults()
		return errUsage
	}

	p := power(randomMatrix(*n, *seed), *e)
	r, c := p.Dims()
	fmt.Fprintf(w, "%d %d\n", r, c)
	return nil
}

// randomMatrix returns an n×n matrix with entries uniform in
// [-0.5, 0.5), reproducible for a given seed.
func randomMatrix(n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64() - 0.5
	}
	return mat.NewDense(n, n, data)
}

// power returns a**e. e must not be negative.
func power(a mat.Matrix, e int) *mat.Dense {
	var p mat.Dense
	p.Pow(a, e)
	return &p
}
