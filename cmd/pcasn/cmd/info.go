package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/pcasn/pkg/library"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file|dir>...",
		Short: "Summarize compound records in files or directory trees",
		Long: `Decode every compound record found in the given files and directories
(recursively, filtered by --extensions) and print one line per compound.

Examples:
  pcasn info testdata/
  pcasn info --workers 4 --split structural records/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, a, args)
		},
	}
}

func runInfo(cmd *cobra.Command, a *app, paths []string) error {
	lib := library.New(a.cfg.LibraryOptions(a.logger)...)

	var files []string
	for _, path := range paths {
		st, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !st.IsDir() {
			files = append(files, path)
			continue
		}
		if err := lib.LoadDir(cmd.Context(), path); err != nil {
			return err
		}
	}
	if err := lib.LoadFiles(cmd.Context(), files...); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	names := lib.Names()
	fmt.Fprintf(out, "Found %d compound(s)\n\n", len(names))
	if len(names) == 0 {
		return nil
	}

	fmt.Fprintf(out, "%-32s %6s %6s  %s\n", "Name", "Atoms", "Bonds", "Formula")
	for _, name := range names {
		mol, err := lib.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-32s %6d %6d  %s\n", name, mol.AtomCount(), mol.BondCount(), orDash(mol.Formula()))
	}
	return nil
}
