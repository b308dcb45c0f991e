// Command redditdecode decodes a saved Reddit JSON response and prints a
// summary, or the decode error when the body does not match the schema.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/kova98/redditthings/models"
	"github.com/pkg/errors"
)

type CLI struct {
	Schema string `help:"Response schema: submissions, comments, thread or about." short:"s" required:"" enum:"submissions,comments,thread,about"`
	Input  string `help:"Path to the JSON response. Reads stdin when empty or '-'." short:"i" type:"path"`
	Indent bool   `help:"Indent the JSON output." default:"true" negatable:""`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns 0 on success, 1 on a decode failure and 2 on usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("redditdecode"),
		kong.Description("Decode a Reddit API response and summarize it."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	body, err := readInput(cli.Input, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	out, err := models.Summarize(cli.Schema, body)
	if err != nil {
		out = models.NewDecodeErrorResponse(err)
	}

	enc := json.NewEncoder(stdout)
	if cli.Indent {
		enc.SetIndent("", "  ")
	}
	if encErr := enc.Encode(out); encErr != nil {
		fmt.Fprintln(stderr, encErr)
		return 2
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		return b, errors.Wrap(err, "read stdin")
	}
	b, err := os.ReadFile(path)
	return b, errors.Wrapf(err, "read %s", path)
}
