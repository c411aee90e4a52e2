package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AlexZinkM/paper-wallet/internal/common"
	"github.com/AlexZinkM/paper-wallet/internal/config"
	"github.com/AlexZinkM/paper-wallet/internal/engine"
	"github.com/AlexZinkM/paper-wallet/internal/entropy"
	"github.com/AlexZinkM/paper-wallet/internal/render"
	"github.com/AlexZinkM/paper-wallet/internal/trigger"
)

const (
	formatText = "text"
	formatJSON = "json"

	keyCtrlC = 3
	barWidth = 32
)

var errInterrupted = errors.New("interrupted")

func newGenerateCmd() *cobra.Command {
	var (
		format      string
		userEntropy string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a paper wallet in the terminal",
		Long: `Reads random keystrokes as extra entropy (or takes --entropy), then
prints the wallet sections with QR codes, or the raw records as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("format must be %s or %s", formatText, formatJSON)
			}

			e, err := newEngine(config.Get())
			if err != nil {
				return err
			}

			c := entropy.NewCollector()
			if cmd.Flags().Changed("entropy") {
				feedString(c, userEntropy)
			} else if err := collectEntropy(c, os.Stdin, cmd.ErrOrStderr()); err != nil {
				return err
			}

			return generate(cmd.OutOrStdout(), e, c, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text|json)")
	cmd.Flags().StringVarP(&userEntropy, "entropy", "e", "", "additional entropy; any random string of 32-64 characters")
	return cmd
}

// generate runs one confirmation cycle over the collected entropy
func generate(w io.Writer, e engine.Engine, c *entropy.Collector, format string) error {
	if format == formatJSON {
		set, err := engine.Generate(e, c.Entropy())
		if err != nil {
			return err
		}
		return writeJSON(w, set)
	}

	r := render.NewWalletRenderer(render.NewTerminal(w))
	tr := trigger.New(c, e, r)
	tr.Show()
	_, err := tr.Confirm()
	return err
}

// feedString feeds every byte of s to the collector as a key press
func feedString(c *entropy.Collector, s string) {
	for i := 0; i < len(s); i++ {
		c.ObserveKey(int(s[i]))
	}
}

// collectEntropy reads keystrokes until Enter. On a terminal every key press
// is observed as it is typed; otherwise one line is read.
func collectEntropy(c *entropy.Collector, in *os.File, status io.Writer) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read entropy: %w", err)
		}
		feedString(c, strings.TrimRight(line, "\r\n"))
		return nil
	}

	fmt.Fprintln(status, "Type random characters for extra entropy, press [ENTER] when done")

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	c.OnReady = func() {
		fmt.Fprint(status, "\r\nEnough entropy collected, press [ENTER] to generate\r\n")
	}
	return readKeys(c, in, status)
}

// readKeys observes bytes from r until a line terminator
func readKeys(c *entropy.Collector, r io.Reader, status io.Writer) error {
	buf := make([]byte, 1)
	for {
		fmt.Fprintf(status, "\r%s %s ", common.ProgressBar(c.Progress(), barWidth), common.FormatPercent(c.Progress()))

		if _, err := r.Read(buf); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("failed to read key: %w", err)
		}

		switch buf[0] {
		case '\r', '\n':
			fmt.Fprint(status, "\r\n")
			return nil
		case keyCtrlC:
			fmt.Fprint(status, "\r\n")
			return errInterrupted
		}
		c.ObserveKey(int(buf[0]))
	}
	fmt.Fprint(status, "\r\n")
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
