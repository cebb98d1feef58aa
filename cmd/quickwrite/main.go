// Package main is the entry point for the quickwrite command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Leprekus/quickwrite/config"
	"github.com/Leprekus/quickwrite/editor"
	"github.com/Leprekus/quickwrite/markdown"
	"github.com/Leprekus/quickwrite/storage"
	"github.com/Leprekus/quickwrite/transform"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("quickwrite", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	showVersion := flags.Bool("version", false, "print version information and exit")
	configPath := flags.String("config", "quickwrite.toml", "path to the configuration file")
	flags.Usage = func() { usage(flags) }
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Printf("quickwrite %s (commit %s, built %s)\n", version, commit, date)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return 2
	}
	cmd, rest := rest[0], rest[1:]

	var cmdErr error
	switch cmd {
	case "actions":
		cmdErr = runActions(cfg)
	case "apply":
		cmdErr = runApply(cfg, rest)
	case "indent":
		cmdErr = runIndent(cfg, rest)
	case "render":
		cmdErr = runRender(cfg, rest)
	case "copy":
		cmdErr = runCopy(rest)
	case "notes":
		cmdErr = runNotes(cfg, rest)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", cmd)
		flags.Usage()
		return 2
	}
	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		return 1
	}
	return 0
}

func usage(flags *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, `Usage: quickwrite [flags] <command> [args]

Commands:
  actions                          list the formatting actions
  apply -action ID [-from N -to N] apply a formatting action to FILE or stdin
  indent [-at N]                   splice tab indentation at an offset
  render                           render FILE or stdin to preview HTML
  copy                             write FILE or stdin to the system clipboard
  notes list|get|put|rm            access the note store

Flags:`)
	flags.PrintDefaults()
}

// readInput reads the document from the first positional argument, or
// from stdin when none (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runActions(cfg config.Config) error {
	for _, a := range editor.DefaultRegistry(cfg).Actions() {
		fmt.Printf("%-8s  %-8s  %s\n", a.ID, a.Label, a.Hint)
	}
	return nil
}

func runApply(cfg config.Config, args []string) error {
	flags := flag.NewFlagSet("apply", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	action := flags.String("action", "", "id of the formatting action to apply")
	from := flags.Int("from", 0, "selection start offset")
	to := flags.Int("to", -1, "selection end offset (defaults to the start offset)")
	verbose := flags.Bool("v", false, "print the resulting selection to stderr")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *action == "" {
		return errors.New("apply: -action is required")
	}
	text, err := readInput(flags.Args())
	if err != nil {
		return err
	}
	if *to < 0 {
		*to = *from
	}

	res, err := editor.DefaultRegistry(cfg).Invoke(*action, transform.Request{Text: text, From: *from, To: *to})
	if err != nil {
		return err
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "selection: [%d, %d]\n", res.From, res.To)
	}
	_, err = os.Stdout.WriteString(res.Text)
	return err
}

func runIndent(cfg config.Config, args []string) error {
	flags := flag.NewFlagSet("indent", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	at := flags.Int("at", 0, "caret offset for the splice")
	if err := flags.Parse(args); err != nil {
		return err
	}
	text, err := readInput(flags.Args())
	if err != nil {
		return err
	}

	res := transform.NewIndent(cfg.IndentWidth).Apply(transform.Request{Text: text, From: *at, To: *at})
	_, err = os.Stdout.WriteString(res.Text)
	return err
}

func runRender(cfg config.Config, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	renderer := markdown.NewRenderer(
		markdown.WithHighlightStyle(cfg.HighlightStyle),
		markdown.WithHardWraps(cfg.HardWraps),
	)
	out, err := renderer.Render(text)
	if err != nil {
		return err
	}
	_, err = os.Stdout.WriteString(out)
	return err
}

func runCopy(args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	return editor.SystemClipboard{}.WriteText(text)
}

func runNotes(cfg config.Config, args []string) error {
	if len(args) == 0 {
		return errors.New("notes: expected list, get, put or rm")
	}
	store := storage.NewStore(cfg.NotesPath)

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		notes, err := store.List()
		if err != nil {
			return err
		}
		for _, n := range notes {
			fmt.Printf("%-36s  %s  %s\n", n.ID, n.Updated.Format(time.RFC3339), firstLine(n.Body))
		}
		return nil
	case "get":
		if len(rest) == 0 {
			return errors.New("notes get: expected a note id")
		}
		body, err := store.Get(rest[0])
		if err != nil {
			return err
		}
		_, err = os.Stdout.WriteString(body)
		return err
	case "put":
		flags := flag.NewFlagSet("notes put", flag.ContinueOnError)
		flags.SetOutput(os.Stderr)
		id := flags.String("id", "", "note id (a fresh id is generated when empty)")
		if err := flags.Parse(rest); err != nil {
			return err
		}
		body, err := readInput(flags.Args())
		if err != nil {
			return err
		}
		saved, err := store.Put(*id, body)
		if err != nil {
			return err
		}
		fmt.Println(saved)
		return nil
	case "rm":
		if len(rest) == 0 {
			return errors.New("notes rm: expected a note id")
		}
		return store.Delete(rest[0])
	default:
		return fmt.Errorf("notes: unknown subcommand %q", sub)
	}
}

// firstLine returns the first line of body, truncated for listing.
func firstLine(body string) string {
	for i := 0; i < len(body); i++ {
		if body[i] == '\n' {
			body = body[:i]
			break
		}
	}
	if len(body) > 60 {
		body = body[:57] + "..."
	}
	return body
}
