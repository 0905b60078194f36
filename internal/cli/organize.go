package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyimports/pkg/config"
	"github.com/matzehuels/pyimports/pkg/errors"
	"github.com/matzehuels/pyimports/pkg/imports"
)

// organizeOpts holds the command-line flags for the organize command.
type organizeOpts struct {
	configPath  string   // config file path (pyimports.toml in cwd if empty)
	profile     string   // formatting profile, overrides config
	packageName string   // project package name, treated as local
	prefixes    []string // additional local prefixes
	file        string   // input file ("-" or empty reads stdin when no args)
	output      string   // output file path (stdout if empty)
	categorized bool     // print grouped view instead of the formatted block
}

// organizeCommand creates the organize command. Statements come from
// positional args, from --file, or from stdin.
func (c *CLI) organizeCommand() *cobra.Command {
	opts := organizeOpts{}

	cmd := &cobra.Command{
		Use:   "organize [statements...]",
		Short: "Sort, merge, and format Python import statements",
		Long: `Sort, merge, and format Python import statements.

Statements are read from positional arguments, from --file, or from stdin
when neither is given. Lines indented under an "if TYPE_CHECKING:" guard
are organized into a separate TYPE_CHECKING block.

Examples:
  pyimports organize "import os" "from typing import Any"
  pyimports organize --file imports.py --profile black
  grep -E '^(import|from) ' app.py | pyimports organize --package-name myapp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOrganize(cmd, &opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (defaults to ./pyimports.toml if present)")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "formatting profile: pep8, isort, black, ruff")
	cmd.Flags().StringVar(&opts.packageName, "package-name", "", "project package name, categorized as local")
	cmd.Flags().StringSliceVar(&opts.prefixes, "local-prefix", nil, "additional local package prefixes")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read statements from file instead of args/stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.categorized, "categorized", false, "print statements grouped by category")

	return cmd
}

func (c *CLI) runOrganize(cmd *cobra.Command, opts *organizeOpts, args []string) error {
	h, err := newHelper(opts)
	if err != nil {
		return err
	}

	lines, err := readStatements(opts.file, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	feedStatements(h, lines)
	total := h.Count() + h.TypeCheckingCount()
	if total == 0 {
		printWarning("No import statements found")
		return nil
	}
	prog.done(fmt.Sprintf("Organized %d import statements", total))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if opts.categorized {
		writeCategorized(out, h)
	} else {
		writeFormatted(out, h)
	}

	if opts.output != "" {
		printSuccess("Wrote %d statements to %s", total, opts.output)
	}
	return nil
}

// newHelper resolves config file and flags into a ready Helper. Flags
// override the corresponding config file fields.
func newHelper(opts *organizeOpts) (*imports.Helper, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadOrDefault(config.DefaultFileName)
	}
	if err != nil {
		return nil, err
	}

	if opts.profile != "" {
		cfg.Format.Profile = opts.profile
	}
	if opts.packageName != "" {
		cfg.Local.PackageName = opts.packageName
	}
	cfg.Local.Prefixes = append(cfg.Local.Prefixes, opts.prefixes...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.NewHelper(), nil
}

// readStatements collects raw input lines. Positional args win over
// --file, which wins over stdin.
func readStatements(file string, args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var r io.Reader = stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file not found: %s", file)
			}
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// feedStatements routes input lines into the helper. Lines indented
// under an "if TYPE_CHECKING:" guard go to the type-checking scope; the
// guard line itself is not an import and is skipped.
func feedStatements(h *imports.Helper, lines []string) {
	inGuard := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "if TYPE_CHECKING:" {
			inGuard = true
			continue
		}
		indented := line[0] == ' ' || line[0] == '\t'
		if inGuard && indented {
			h.AddTypeCheckingString(trimmed)
			continue
		}
		inGuard = false
		h.AddString(trimmed)
	}
}

// writeFormatted prints the organized block, with type-checking imports
// under an indented "if TYPE_CHECKING:" guard when present.
func writeFormatted(w io.Writer, h *imports.Helper) {
	for _, line := range h.Formatted() {
		fmt.Fprintln(w, line)
	}

	guarded := h.TypeCheckingFormatted()
	if len(guarded) == 0 {
		return
	}
	if !h.IsEmpty() {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "if TYPE_CHECKING:")
	indent := strings.Repeat(" ", h.Options().IndentSize)
	for _, line := range guarded {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintln(w, indent+line)
	}
}

// writeCategorized prints statements grouped by category with comment
// headers, one group per section.
func writeCategorized(w io.Writer, h *imports.Helper) {
	regular, guarded := h.AllCategorized()
	writeGroups(w, "", regular)
	if !h.IsTypeCheckingEmpty() {
		writeGroups(w, "type-checking ", guarded)
	}
}

func writeGroups(w io.Writer, prefix string, c imports.Categorized) {
	groups := []struct {
		name  string
		lines []string
	}{
		{"future", c.Future},
		{"stdlib", c.Stdlib},
		{"third-party", c.ThirdParty},
		{"local", c.Local},
	}
	for _, g := range groups {
		if len(g.lines) == 0 {
			continue
		}
		fmt.Fprintf(w, "# %s%s\n", prefix, g.name)
		for _, line := range g.lines {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
