package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/paulway/paramval"
	"github.com/paulway/paramval/internal/mcpserver"
	"github.com/paulway/paramval/paramerrors"
	"github.com/paulway/paramval/schema"
	"github.com/paulway/paramval/validator"
)

// Exit codes: 1 for value failures and usage errors, 2 for malformed
// parameter documents.
const (
	exitValidation = 1
	exitSchema     = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitValidation)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("paramval v%s\n", paramval.Version())
	case "help", "-h", "--help":
		printUsage()
	case "check":
		if err := handleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitCode(err))
		}
	case "validate":
		if err := handleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitCode(err))
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitValidation)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(exitValidation)
	}
}

// exitCode maps an error to the process exit code: definition faults exit 2,
// everything else 1.
func exitCode(err error) int {
	if errors.Is(err, paramerrors.ErrSchema) {
		return exitSchema
	}
	return exitValidation
}

func handleCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: paramval check <file>\n\n")
		_, _ = fmt.Fprintf(output, "Check that a parameter document is well formed.\n\n")
		_, _ = fmt.Fprintf(output, "Examples:\n")
		_, _ = fmt.Fprintf(output, "  paramval check params.yaml\n")
		_, _ = fmt.Fprintf(output, "  paramval check params.json\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("check command requires exactly one file path")
	}

	doc, err := schema.LoadWithOptions(schema.WithFilePath(fs.Arg(0)))
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s: %d parameter definitions, all well formed\n", fs.Arg(0), len(doc.Parameters))
	return nil
}

// validateFlags contains flags for the validate command
type validateFlags struct {
	in       string
	timeZone string
	asJSON   bool
}

func setupValidateFlags() (*flag.FlagSet, *validateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &validateFlags{}

	fs.StringVar(&flags.in, "in", "", "parameter location to match (query, header, path, formData, body)")
	fs.StringVar(&flags.timeZone, "tz", "UTC", "IANA time zone attached to dates and naive datetimes")
	fs.BoolVar(&flags.asJSON, "json", false, "output results as JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: paramval validate [flags] <file> <name=value>...\n\n")
		_, _ = fmt.Fprintf(output, "Validate raw values against the parameter definitions in a document.\n")
		_, _ = fmt.Fprintf(output, "Repeat name=value for \"multi\" array parameters.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  paramval validate params.yaml page=3 active=true\n")
		_, _ = fmt.Fprintf(output, "  paramval validate --tz Australia/Sydney params.yaml since=2024-06-01\n")
		_, _ = fmt.Fprintf(output, "  paramval validate --json params.yaml ids=1 ids=2 ids=3\n")
	}

	return fs, flags
}

// validateResult is one name=value outcome, rendered as text or JSON.
type validateResult struct {
	Name  string `json:"name"`
	Raw   string `json:"raw"`
	Valid bool   `json:"valid"`
	Kind  string `json:"kind,omitempty"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func handleValidate(args []string) error {
	fs, flags := setupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("validate command requires a file path and at least one name=value pair")
	}

	loc, err := time.LoadLocation(flags.timeZone)
	if err != nil {
		return fmt.Errorf("loading time zone %q: %w", flags.timeZone, err)
	}

	doc, err := schema.LoadWithOptions(schema.WithFilePath(fs.Arg(0)))
	if err != nil {
		return err
	}

	v, err := validator.New(validator.WithTimeZone(loc))
	if err != nil {
		return err
	}

	pairs, err := collectPairs(fs.Args()[1:])
	if err != nil {
		return err
	}

	results := make([]validateResult, 0, len(pairs))
	failures := 0
	var schemaFault bool
	for _, pair := range pairs {
		param, err := lookupParam(doc, pair.name, flags.in)
		if err != nil {
			return err
		}

		var value validator.Value
		if param.Type == schema.TypeArray && param.CollectionFormat == schema.CollectionMulti {
			value, err = v.ValidateValues(param, pair.values)
		} else {
			value, err = v.Validate(param, pair.values[0])
		}

		result := validateResult{Name: pair.name, Raw: strings.Join(pair.values, ",")}
		if err != nil {
			if errors.Is(err, paramerrors.ErrSchema) {
				schemaFault = true
			}
			failures++
			result.Error = err.Error()
		} else {
			result.Valid = true
			result.Kind = value.Kind().String()
			result.Value = value.Interface()
		}
		results = append(results, result)
	}

	if flags.asJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		fmt.Println(string(data))
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s = %v (%s)\n", r.Name, r.Value, r.Kind)
			} else {
				fmt.Printf("✗ %s: %s\n", r.Name, r.Error)
			}
		}
	}

	if failures > 0 {
		if schemaFault {
			os.Exit(exitSchema)
		}
		os.Exit(exitValidation)
	}
	return nil
}

// pair is one parameter name with its raw values, in argument order.
// Repeated name=value arguments collapse into one pair with multiple values.
type pair struct {
	name   string
	values []string
}

// collectPairs parses name=value arguments, preserving first-seen order and
// grouping repeated names.
func collectPairs(args []string) ([]pair, error) {
	var pairs []pair
	index := make(map[string]int)
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid argument %q: expected name=value", arg)
		}
		if i, seen := index[name]; seen {
			pairs[i].values = append(pairs[i].values, value)
			continue
		}
		index[name] = len(pairs)
		pairs = append(pairs, pair{name: name, values: []string{value}})
	}
	return pairs, nil
}

// lookupParam resolves a parameter by name, and by location when --in was
// given. Without --in, a name defined at more than one location is an error.
func lookupParam(doc *schema.Document, name, in string) (*schema.Parameter, error) {
	if in != "" {
		p := doc.ByName(name, in)
		if p == nil {
			return nil, fmt.Errorf("no parameter named %q at location %q", name, in)
		}
		return p, nil
	}

	var found *schema.Parameter
	for _, p := range doc.Parameters {
		if p != nil && p.Name == name {
			if found != nil {
				return nil, fmt.Errorf("parameter %q is defined at more than one location; pass --in to disambiguate", name)
			}
			found = p
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no parameter named %q in document", name)
	}
	return found, nil
}

func printUsage() {
	fmt.Println(`paramval - request parameter validation tools

Usage:
  paramval <command> [options]

Commands:
  check       Check that a parameter document is well formed
  validate    Validate raw values against a parameter document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  paramval check params.yaml
  paramval validate params.yaml page=3 active=true
  paramval validate --json --tz Australia/Sydney params.yaml since=2024-06-01
  paramval mcp

Run 'paramval <command> --help' for more information on a command.`)
}
