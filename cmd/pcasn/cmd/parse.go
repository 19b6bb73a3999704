package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/pcasn/pkg/chem"
	"github.com/OpenTraceLab/pcasn/pkg/pcasn"
)

func newParseCmd(a *app) *cobra.Command {
	var summary bool

	parseCmd := &cobra.Command{
		Use:   "parse <asn-file>",
		Short: "Decode one compound record and list its atoms and bonds",
		Long: `Decode a PubChem Compound ASN record and print its atoms (identifier and
element symbol) and bonds (the identifiers of both endpoints).
Use "-" to read the record from standard input.

Examples:
  pcasn parse testdata/ethanol.asn
  pcasn parse --summary testdata/ethanol.asn
  cat record.asn | pcasn parse --split structural -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, a, args[0], summary)
		},
	}

	parseCmd.Flags().BoolVarP(&summary, "summary", "s", false,
		"only print the formula and counts")
	return parseCmd
}

func runParse(cmd *cobra.Command, a *app, filename string, summary bool) error {
	var (
		in   io.Reader
		name = filepath.Base(filename)
	)
	if filename == "-" {
		in = cmd.InOrStdin()
		name = "<stdin>"
	} else {
		f, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		in = f
	}

	file, err := pcasn.NewReader(in, a.cfg.ReaderOptions(a.logger)...).Read()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	mol := file.Molecules()[0]

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Compound: %s\n", name)
	fmt.Fprintf(out, "  Formula: %s\n", mol.Formula())
	fmt.Fprintf(out, "  Atoms:   %d\n", mol.AtomCount())
	fmt.Fprintf(out, "  Bonds:   %d\n", mol.BondCount())
	if summary {
		return nil
	}

	if mol.AtomCount() > 0 {
		fmt.Fprintf(out, "\nAtoms:\n")
		fmt.Fprintf(out, "  %4s  %-10s %s\n", "#", "ID", "Symbol")
		for i, atom := range mol.Atoms {
			fmt.Fprintf(out, "  %4d  %-10s %s\n", i, orDash(atom.ID), orDash(atom.Symbol))
		}
	}

	if mol.BondCount() > 0 {
		fmt.Fprintf(out, "\nBonds:\n")
		fmt.Fprintf(out, "  %4s  %-10s %s\n", "#", "Atom 1", "Atom 2")
		for i, bond := range mol.Bonds {
			fmt.Fprintf(out, "  %4d  %-10s %s\n", i, endpoint(bond, 0), endpoint(bond, 1))
		}
	}
	return nil
}

func endpoint(b *chem.Bond, pos int) string {
	if a := b.Atom(pos); a != nil {
		return orDash(a.ID)
	}
	return "-"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
