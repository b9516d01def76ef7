// hashchaincli is a thin demo binary exercising the hash-chain
// bit-commitment core end to end, in the spirit of lncli: a handful of
// cli.Command entries that shell out to the library packages and print
// results, with no daemon or transport of its own.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightninglabs/hashchain-disprove/commitment"
	"github.com/lightninglabs/hashchain-disprove/connectors"
	"github.com/lightninglabs/hashchain-disprove/digest"
	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[hashchaincli] %v\n", err)
	os.Exit(1)
}

func networkParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	case "regtest", "":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}

var pubkeyCommand = cli.Command{
	Name:      "pubkey",
	Usage:     "derive a Winternitz public key from a commitment seed",
	ArgsUsage: "seed",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.ShowCommandHelp(ctx, "pubkey")
		}
		pubkey := commitment.SeedToPubkey([]byte(ctx.Args().Get(0)))
		fmt.Println(hex.EncodeToString(pubkey.Bytes()))
		return nil
	},
}

var addressCommand = cli.Command{
	Name:      "address",
	Usage:     "derive a disprove-connector address",
	ArgsUsage: "seed rounds",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Value: "regtest",
			Usage: "mainnet, testnet, simnet, or regtest",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return cli.ShowCommandHelp(ctx, "address")
		}

		params, err := networkParams(ctx.String("network"))
		if err != nil {
			return err
		}

		seed := []byte(ctx.Args().Get(0))
		var rounds uint32
		if _, err := fmt.Sscanf(ctx.Args().Get(1), "%d", &rounds); err != nil {
			return fmt.Errorf("invalid rounds: %w", err)
		}

		operatorPriv, err := btcec.NewPrivateKey()
		if err != nil {
			return err
		}

		pubkey := commitment.SeedToPubkey(seed)
		connector, err := connectors.NewConnectorC(
			params, operatorPriv.PubKey(), pubkey, rounds,
		)
		if err != nil {
			return err
		}

		addr, err := connector.Address()
		if err != nil {
			return err
		}
		fmt.Println(addr.String())
		return nil
	},
}

var commitCommand = cli.Command{
	Name:      "commit",
	Usage:     "print the step state committed to at an index",
	ArgsUsage: "statement index",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return cli.ShowCommandHelp(ctx, "commit")
		}

		statement := []byte(ctx.Args().Get(0))
		var index uint32
		if _, err := fmt.Sscanf(ctx.Args().Get(1), "%d", &index); err != nil {
			return fmt.Errorf("invalid index: %w", err)
		}

		state := digest.Hn20(statement, index)
		fmt.Println(hex.EncodeToString(state[:]))
		return nil
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "hashchaincli"
	app.Version = "0.1"
	app.Usage = "exercise the hash-chain bit-commitment core from the command line"
	app.Commands = []cli.Command{
		pubkeyCommand,
		addressCommand,
		commitCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
