// Copyright 2018 The aquachain Authors
// This file is part of the aquachain library.
//
// The aquachain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The aquachain library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the aquachain library. If not, see <http://www.gnu.org/licenses/>.

// Command equihashsolver is a small demonstration CLI exercising
// SolveBasic, SolveOptimised and IsValidSolution against a chosen
// (N,K) parameter set and seed string. It does not iterate nonces or
// compare against a difficulty target — both are out of this
// package's scope.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/urfave/cli"

	"github.com/zecpow/equihash/common/config"
	"github.com/zecpow/equihash/common/log"
	"github.com/zecpow/equihash/consensus/equihash"
	eqsha3 "github.com/zecpow/equihash/crypto/sha3"
)

func main() {
	color.Output = colorable.NewColorableStdout()

	app := cli.NewApp()
	app.Name = "equihashsolver"
	app.Usage = "solve and verify Equihash proof-of-work puzzles"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "paramset", Value: "minimal-96-5", Usage: "named parameter set, see common/config"},
		cli.StringFlag{Name: "seed", Value: "", Usage: "arbitrary seed string hashed into the base state"},
		cli.BoolFlag{Name: "optimised", Usage: "use the memory-optimised solver instead of the basic one"},
		cli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		log.Root().SetHandler(log.LvlFilterHandler(log.LvlDebug, log.StreamHandler(colorable.NewColorableStderr(), log.TerminalFormat(true))))
	}

	set, ok := config.Default().ByName(c.String("paramset"))
	if !ok {
		return fmt.Errorf("unknown paramset %q", c.String("paramset"))
	}

	base, err := equihash.InitialiseState(set.N, set.K)
	if err != nil {
		return err
	}

	if seed := c.String("seed"); seed != "" {
		base.Absorb(eqsha3.Keccak256([]byte(seed)))
	}

	var solutions [][]uint32
	if c.Bool("optimised") {
		solutions, err = equihash.SolveOptimised(base, nil)
	} else {
		solutions, err = equihash.SolveBasic(base, nil)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (N=%d, K=%d): %s\n", color.CyanString(set.Name), set.N, set.K, color.GreenString("%d solutions", len(solutions)))
	for i, s := range solutions {
		valid := equihash.IsValidSolution(base, s)
		status := color.GreenString("valid")
		if !valid {
			status = color.RedString("invalid")
		}
		fmt.Printf("  [%d] %v %s\n", i, s, status)
	}
	return nil
}
