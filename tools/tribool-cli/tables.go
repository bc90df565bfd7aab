// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"github.com/Fantom-foundation/tribool/common/tribool"
	"github.com/urfave/cli/v2"
)

var (
	checkFlag = cli.BoolFlag{
		Name:  "check",
		Usage: "verifies commutativity, De Morgan duality and double negation before printing",
	}
)

var notCommand = cli.Command{
	Action: func(ctx *cli.Context) error {
		return writeNotTable(ctx.App.Writer)
	},
	Name:  "not",
	Usage: "prints the negation table",
}

var andCommand = cli.Command{
	Action: func(ctx *cli.Context) error {
		return writeBinaryTable(ctx.App.Writer, "&", tribool.Tribool.And)
	},
	Name:  "and",
	Usage: "prints the conjunction table, rows are the left operand",
}

var orCommand = cli.Command{
	Action: func(ctx *cli.Context) error {
		return writeBinaryTable(ctx.App.Writer, "|", tribool.Tribool.Or)
	},
	Name:  "or",
	Usage: "prints the disjunction table, rows are the left operand",
}

var tablesCommand = cli.Command{
	Action: printTables,
	Name:   "tables",
	Usage:  "prints all truth tables",
	Flags: []cli.Flag{
		&checkFlag,
	},
}

func printTables(ctx *cli.Context) error {
	if ctx.Bool(checkFlag.Name) {
		log.Printf("Checking algebraic laws ...")
		if err := checkLaws(tribool.Tribool.Not, tribool.Tribool.And, tribool.Tribool.Or); err != nil {
			return err
		}
		log.Printf("All laws hold")
	}
	out := ctx.App.Writer
	if err := writeNotTable(out); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	if err := writeBinaryTable(out, "&", tribool.Tribool.And); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return writeBinaryTable(out, "|", tribool.Tribool.Or)
}

type unaryOp func(tribool.Tribool) tribool.Tribool
type binaryOp func(a, b tribool.Tribool) tribool.Tribool

func writeNotTable(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "x\t!x\n")
	for _, v := range tribool.Values() {
		fmt.Fprintf(w, "%v\t%v\n", v, v.Not())
	}
	return w.Flush()
}

func writeBinaryTable(out io.Writer, symbol string, op binaryOp) error {
	values := tribool.Values()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, symbol)
	for _, b := range values {
		fmt.Fprintf(w, "\t%v", b)
	}
	fmt.Fprintln(w)
	for _, a := range values {
		fmt.Fprint(w, a)
		for _, b := range values {
			fmt.Fprintf(w, "\t%v", op(a, b))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// checkLaws verifies over all inputs that the given operations form a
// De Morgan algebra with commutative conjunction and disjunction.
func checkLaws(not unaryOp, and, or binaryOp) error {
	var errs []error
	for _, a := range tribool.Values() {
		if got := not(not(a)); got != a {
			errs = append(errs, fmt.Errorf("double negation of %v yields %v", a, got))
		}
		for _, b := range tribool.Values() {
			if x, y := and(a, b), and(b, a); x != y {
				errs = append(errs, fmt.Errorf("conjunction not commutative: %v & %v = %v, %v & %v = %v", a, b, x, b, a, y))
			}
			if x, y := or(a, b), or(b, a); x != y {
				errs = append(errs, fmt.Errorf("disjunction not commutative: %v | %v = %v, %v | %v = %v", a, b, x, b, a, y))
			}
			if x, y := not(and(a, b)), or(not(a), not(b)); x != y {
				errs = append(errs, fmt.Errorf("De Morgan violated: !(%v & %v) = %v, !%v | !%v = %v", a, b, x, a, b, y))
			}
			if x, y := not(or(a, b)), and(not(a), not(b)); x != y {
				errs = append(errs, fmt.Errorf("De Morgan violated: !(%v | %v) = %v, !%v & !%v = %v", a, b, x, a, b, y))
			}
		}
	}
	return errors.Join(errs...)
}
