// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avl-explore"
	app.Usage = "exercise the AVL multiset from the command line"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log to the console as well",
		},
		cli.StringFlag{
			Name:  "log-dir, l",
			Value: ".",
			Usage: " directory for the log file `DIR`",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:      "demo",
			Usage:     "replay the visual add/remove walkthrough, rendering each step",
			ArgsUsage: "",
			Flags:     []cli.Flag{},
			Action:    runDemo,
		},
		{
			Name:      "exercise",
			Usage:     "random add/remove churn verified against a model after every step",
			ArgsUsage: "",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "items, n",
					Value: 1000,
					Usage: " number of operations `N`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random seed `SEED`",
				},
			},
			Action: runExercise,
		},
		{
			Name:      "sort",
			Usage:     "insert the arguments and walk them back out in order",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " walk in descending order",
				},
			},
			Action: runSort,
		},
	}

	err := app.Run(os.Args)
	logger.Finalise()
	if err != nil {
		exitwithstatus.Message("%s: %s", app.Name, err)
	}
}

func setupLogging(c *cli.Context) error {
	return logger.Initialise(logger.Configuration{
		Directory: c.GlobalString("log-dir"),
		File:      "avl-explore.log",
		Size:      1048576,
		Count:     10,
		Console:   c.GlobalBool("verbose"),
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	})
}
