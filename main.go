package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tav/internal/tablib"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tav [file]",
	Short: "tav is a terminal viewer for tabular data",
	Long: `tav displays delimited tabular data in an interactive grid with
sorting, searching, cell editing and save support.

Examples:
  tav data.csv
  tav results.tsv
  curl -s https://example.com/data.csv | tav`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTav,
}

var delimiterFlag string

func init() {
	rootCmd.Flags().StringVarP(&delimiterFlag, "delimiter", "d", "", "Field delimiter (default: by file extension)")
}

func runTav(cmd *cobra.Command, args []string) {
	config, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var opts []tea.ProgramOption
	opts = append(opts, tea.WithAltScreen(), tea.WithMouseCellMotion())

	var tbl *tablib.Table
	var sourceName string

	switch {
	case len(args) == 1:
		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "file not found: %s\n", path)
			} else {
				fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
			}
			os.Exit(1)
		}
		tbl, err = tablib.ReadDelimited(f, delimiterFor(path))
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			os.Exit(1)
		}
		sourceName = filepath.Base(path)

	case !isatty.IsTerminal(os.Stdin.Fd()):
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		tbl, err = tablib.ReadDelimited(bytes.NewReader(data), delimiterFor(""))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		sourceName = "stdin"

		// stdin is the pipe, so reattach input to the terminal
		tty, err := os.Open("/dev/tty")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening terminal: %v\n", err)
			os.Exit(1)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))

	default:
		cmd.Help()
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(config, tbl, sourceName), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// delimiterFor resolves the field delimiter: the -d flag wins, then the
// file extension, then comma.
func delimiterFor(path string) rune {
	if delimiterFlag != "" {
		return []rune(delimiterFlag)[0]
	}
	return tablib.DelimiterForPath(path)
}
