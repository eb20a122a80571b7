// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "address",
			Usage:     "display the address of a name",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*identity or evaluator `NAME`",
				},
			},
			Action: runAddress,
		},
		{
			Name:   "info",
			Usage:  "display registryd status",
			Action: runInfo,
		},
		{
			Name:      "events",
			Usage:     "list committed events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first event sequence `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "create",
			Usage:     "register a new record type",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*type name `STRING`",
				},
				cli.StringFlag{
					Name:  "kind, k",
					Value: "unique",
					Usage: " record kind `KIND` [unique|fungible]",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "set-uri",
			Usage:     "change the metadata URI of a record type",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				prefixFlag,
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " metadata `URI`",
				},
			},
			Action: runSetURI,
		},
		{
			Name:      "permit",
			Usage:     "grant or revoke minting or evaluator trust on a record type",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				prefixFlag,
				cli.StringFlag{
					Name:  "minter, m",
					Value: "",
					Usage: " account allowed to mint `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "evaluator, e",
					Value: "",
					Usage: " evaluator to trust `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "revoke, r",
					Usage: " remove the permission instead",
				},
			},
			Action: runPermit,
		},
		{
			Name:      "type",
			Usage:     "describe a record type",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				prefixFlag,
				cli.StringFlag{
					Name:  "subject, s",
					Value: "",
					Usage: " report minter and trust flags for `ACCOUNT`",
				},
			},
			Action: runType,
		},
		{
			Name:      "mint",
			Usage:     "create new records",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				prefixFlag,
				cli.StringSliceFlag{
					Name:  "to, t",
					Usage: "*recipient `ACCOUNT` (repeatable)",
				},
				cli.StringSliceFlag{
					Name:  "amount, q",
					Usage: " fungible amount `NUMBER` for each recipient",
				},
			},
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "transfer records to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " holder `ACCOUNT` default is caller",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "id, i",
					Usage: "*record `ID` (repeatable)",
				},
				cli.StringSliceFlag{
					Name:  "amount, q",
					Usage: " fungible amount `NUMBER` for each id",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "operator",
			Usage:     "approve or revoke an operator for all the caller's records",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "revoke, r",
					Usage: " remove the approval instead",
				},
			},
			Action: runOperator,
		},
		{
			Name:      "deposit",
			Usage:     "credit native currency to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				cli.Uint64Flag{
					Name:  "amount, q",
					Value: 0,
					Usage: "*amount to credit `NUMBER`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "balance",
			Usage:     "display native balance, or the balance of one record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: " record `ID` blank for the native currency",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "record",
			Usage:     "display owner, state and listing of a record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runRecord,
		},
		{
			Name:      "sell",
			Usage:     "list a unique record with the escrow",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: " only this buyer `ACCOUNT` blank for anyone",
				},
				currencyFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*price `NUMBER`",
				},
				cli.DurationFlag{
					Name:  "expires, e",
					Value: 0,
					Usage: " listing lifetime `DURATION` zero for none",
				},
			},
			Action: runSell,
		},
		{
			Name:      "cancel",
			Usage:     "withdraw a listing",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runCancel,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				currencyFlag,
				cli.Uint64Flag{
					Name:  "value, p",
					Value: 0,
					Usage: " native payment `NUMBER` must equal the price",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "apply",
			Usage:     "submit a record to an evaluator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "evaluator, e",
					Value: "",
					Usage: "*evaluator `ACCOUNT` or program name",
				},
			},
			Action: runApply,
		},
		{
			Name:      "withdraw",
			Usage:     "take a record back from its evaluator",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runWithdraw,
		},
		{
			Name:   "evaluators",
			Usage:  "list hosted evaluator programs",
			Action: runEvaluators,
		},
		{
			Name:      "applications",
			Usage:     "list records under evaluation by a program",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{programFlag},
			Action:    runApplications,
		},
		{
			Name:      "evaluate",
			Usage:     "record an administrator decision on an application",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag,
				idFlag,
				cli.StringFlag{
					Name:  "action, x",
					Value: "",
					Usage: "*`ACTION` [submitted|qualified|rejected]",
				},
			},
			Action: runEvaluate,
		},
		{
			Name:      "finalize",
			Usage:     "finalize qualified applications",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag,
				cli.IntFlag{
					Name:  "batch, b",
					Value: 0,
					Usage: " finalize applications before this `MARKER` zero for all",
				},
			},
			Action: runFinalize,
		},
		{
			Name:   "assets",
			Usage:  "list hosted fungible assets",
			Action: runAssets,
		},
		{
			Name:      "asset-balance",
			Usage:     "display balance and escrow allowance in a hosted asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				currencyFlag,
				ownerFlag,
			},
			Action: runAssetBalance,
		},
		{
			Name:      "asset-transfer",
			Usage:     "transfer an amount of a hosted asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				currencyFlag,
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, q",
					Value: 0,
					Usage: "*amount `NUMBER`",
				},
			},
			Action: runAssetTransfer,
		},
		{
			Name:  "version",
			Usage: "display registry-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}

// flags shared between commands
var (
	idFlag = cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*record `ID`",
	}
	prefixFlag = cli.StringFlag{
		Name:  "prefix, x",
		Value: "",
		Usage: "*record type `PREFIX`",
	}
	ownerFlag = cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: " `ACCOUNT` default is caller",
	}
	currencyFlag = cli.StringFlag{
		Name:  "currency, y",
		Value: "",
		Usage: " asset `SYMBOL` or address blank for native",
	}
	programFlag = cli.StringFlag{
		Name:  "program, g",
		Value: "",
		Usage: "*evaluator program `NAME`",
	}
)
