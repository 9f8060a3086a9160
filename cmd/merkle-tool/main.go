package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/merkle-tool <command> <flags>

var (
	tokenFlag = cli.StringFlag{
		Name:  "token",
		Usage: "token symbol hashed into every leaf, defaults to the token of the balances file",
	}
	chainFlag = cli.StringFlag{
		Name:     "chain",
		Usage:    "chain family, evm or svm",
		Required: true,
	}
	rootFlag = cli.StringFlag{
		Name:     "root",
		Usage:    "0x-prefixed hex root to verify against",
		Required: true,
	}
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "file to write the balances snapshot to, stdout if empty",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to configuration file",
	}
	envFlag = cli.StringFlag{
		Name:  "env",
		Usage: "path to environment files",
		Value: "config/",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "merkle-tool",
		Usage: "build, inspect and verify referral commission Merkle trees",
		Commands: []*cli.Command{
			&BuildCmd,
			&ProofCmd,
			&VerifyCmd,
			&SnapshotCmd,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
