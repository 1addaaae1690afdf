package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-capture/pkg/datemath"
	"task-capture/pkg/nlparser"
)

// Output formats.
const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputText = "text"
)

type parseFlags struct {
	now      string
	timezone string
	output   string
}

// NewRootCmd builds the nlparse command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nlparse",
		Short:         "Read dates, times, places and intent out of freeform task lines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCmd())
	return root
}

func newParseCmd() *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse one line from the arguments, or every line on stdin",
		Example: `  nlparse parse "Lunch with Sam tomorrow at 1pm"
  nlparse parse --now 2025-06-10T09:00:00Z --output yaml "Meeting at Central Park next Friday"
  cat todo.txt | nlparse parse --timezone Europe/Berlin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := flags.parser()
			if err != nil {
				return err
			}
			w, err := newWriter(flags.output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if len(args) > 0 {
				if err := w.write(parser.Parse(strings.Join(args, " "))); err != nil {
					return err
				}
				return w.close()
			}
			return parseLines(cmd.InOrStdin(), parser, w)
		},
	}

	cmd.Flags().StringVar(&flags.now, "now", "", "Reference time, RFC 3339 or YYYY-MM-DD (default: current time)")
	cmd.Flags().StringVarP(&flags.timezone, "timezone", "z", "UTC", "IANA timezone days are resolved in")
	cmd.Flags().StringVarP(&flags.output, "output", "o", outputText, "Output format: json, yaml or text")
	return cmd
}

func (f parseFlags) parser() (*nlparser.Parser, error) {
	loc, err := time.LoadLocation(f.timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid --timezone %q: %w", f.timezone, err)
	}

	opts := []nlparser.Option{}
	if f.now != "" {
		now, err := parseNow(f.now, loc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nlparser.WithClock(func() time.Time { return now }))
	}
	return nlparser.New(datemath.NewParserInLocation(loc), opts...), nil
}

func parseNow(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(datemath.DayLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --now %q: want RFC 3339 or YYYY-MM-DD", value)
}

// parseLines parses each non-blank line of r.
func parseLines(r io.Reader, parser *nlparser.Parser, w writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := w.write(parser.Parse(line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return w.close()
}
