// Command funcschema normalizes a JSON Schema document into the restricted
// function-calling dialect and prints the result.
//
// Usage:
//
//	funcschema [flags] [file]
//
// The document is read from the file argument, or stdin when no file is
// given. With --extract the input is treated as free-form text (for example
// a model reply with code fences) and the first JSON object found is used.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/quailyquaily/funcschema"
	"github.com/quailyquaily/funcschema/internal/diag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("funcschema", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	extract := fs.Bool("extract", false, "treat input as free-form text and extract the first JSON object")
	compact := fs.Bool("compact", false, "print the result on one line")
	debug := fs.Bool("debug", false, "log input and output documents")

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) > 1 {
		return fmt.Errorf("usage: funcschema [flags] [file]")
	}

	input, err := readInput(rest, stdin)
	if err != nil {
		return err
	}
	diag.LogText(*debug, nil, "funcschema.input", string(input))

	schema, err := normalizeInput(input, *extract)
	if err != nil {
		return err
	}
	diag.LogJSON(*debug, nil, "funcschema.output", schema)

	return writeResult(stdout, schema, *compact)
}

func readInput(rest []string, stdin io.Reader) ([]byte, error) {
	if len(rest) == 1 {
		data, err := os.ReadFile(rest[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", rest[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func normalizeInput(input []byte, extract bool) (*funcschema.Schema, error) {
	if extract {
		return funcschema.ExtractSchema(string(input))
	}
	return funcschema.FromJSON(input)
}

func writeResult(out io.Writer, schema *funcschema.Schema, compact bool) error {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(schema)
	} else {
		data, err = json.MarshalIndent(schema, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
