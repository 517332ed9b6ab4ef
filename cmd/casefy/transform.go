package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/viant/casefy"
	"github.com/viant/casefy/encoding"
)

// transformFlags contains flags for the transform command
type transformFlags struct {
	from          string
	to            string
	deep          bool
	arrays        bool
	preserveTypes bool
	mappings      mappingFlag
	exclude       string
	include       string
	config        string
	format        string
	indent        string
	verbose       bool
}

// mappingFlag collects repeated key=value flags
type mappingFlag map[string]string

func (m mappingFlag) String() string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (m mappingFlag) Set(value string) error {
	key, name, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("invalid mapping %q, expected key=name", value)
	}
	m[key] = name
	return nil
}

func setupTransformFlags(output io.Writer) (*flag.FlagSet, *transformFlags) {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	fs.SetOutput(output)
	flags := &transformFlags{mappings: mappingFlag{}}

	fs.StringVar(&flags.from, "from", "", "source case style")
	fs.StringVar(&flags.to, "to", "", "target case style")
	fs.BoolVar(&flags.deep, "deep", true, "descend into nested objects")
	fs.BoolVar(&flags.arrays, "arrays", true, "process array elements")
	fs.BoolVar(&flags.preserveTypes, "preserve-types", true, "keep primitive value types, false converts them to text")
	fs.Var(flags.mappings, "map", "explicit key rename key=name (repeatable)")
	fs.StringVar(&flags.exclude, "exclude", "", "comma separated keys copied as is")
	fs.StringVar(&flags.include, "include", "", "comma separated keys eligible for renaming, other keys are copied as is")
	fs.StringVar(&flags.config, "config", "", "YAML or JSON config file")
	fs.StringVar(&flags.format, "format", "", "document format: json or yaml (detected when omitted)")
	fs.StringVar(&flags.indent, "indent", "", "JSON output indentation")
	fs.BoolVar(&flags.verbose, "verbose", false, "log every renamed key to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: casefy transform [flags] [file]\n\n")
		_, _ = fmt.Fprintf(output, "Rename the keys of a JSON or YAML document read from file or stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  casefy transform -from snake_case -to camelCase input.json\n")
		_, _ = fmt.Fprintf(output, "  casefy transform -from snake_case -to PascalCase -map user_id=ID -exclude metadata input.yaml\n")
		_, _ = fmt.Fprintf(output, "  casefy transform -config casefy.yaml < input.json\n")
	}
	return fs, flags
}

func (c *cli) handleTransform(ctx context.Context, args []string) error {
	fs, flags := setupTransformFlags(c.stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("transform command accepts at most one file path")
	}

	from, to, opts, err := c.transformOptions(fs, flags)
	if err != nil {
		return err
	}
	format, err := encoding.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	content, err := c.readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	value, format, err := encoding.Unmarshal(content, format)
	if err != nil {
		return err
	}
	result, err := casefy.TransformKeysContext(ctx, value, from, to, opts...)
	if err != nil {
		return err
	}
	if result.Err != nil {
		return result.Err
	}
	output, err := encoding.Marshal(result.Data, format, flags.indent)
	if err != nil {
		return err
	}
	if len(output) == 0 || output[len(output)-1] != '\n' {
		output = append(output, '\n')
	}
	if _, err = c.stdout.Write(output); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.stderr, "transformed %d keys from %s to %s\n", result.TransformedKeys, result.From, result.To)
	return nil
}

// transformOptions merges config file settings with explicitly set flags, flags take precedence
func (c *cli) transformOptions(fs *flag.FlagSet, flags *transformFlags) (string, string, []casefy.Option, error) {
	var opts []casefy.Option
	from, to := "", ""
	if flags.config != "" {
		config, err := casefy.LoadConfig(flags.config)
		if err != nil {
			return "", "", nil, err
		}
		from, to = config.From, config.To
		opts = append(opts, config.Options()...)
	}
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "from":
			from = flags.from
		case "to":
			to = flags.to
		case "deep":
			opts = append(opts, casefy.WithDeep(flags.deep))
		case "arrays":
			opts = append(opts, casefy.WithArrays(flags.arrays))
		case "preserve-types":
			opts = append(opts, casefy.WithPreserveTypes(flags.preserveTypes))
		case "map":
			opts = append(opts, casefy.WithFieldMappings(flags.mappings))
		case "exclude":
			opts = append(opts, casefy.WithExcludeFields(splitList(flags.exclude)...))
		case "include":
			fields := splitList(flags.include)
			if len(fields) == 0 {
				flagErr = fmt.Errorf("-include requires at least one key")
				return
			}
			opts = append(opts, casefy.WithIncludeFields(fields...))
		}
	})
	if flagErr != nil {
		return "", "", nil, flagErr
	}
	if flags.verbose {
		handler := slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, casefy.WithLogger(casefy.NewSlogAdapter(slog.New(handler))))
	}
	return from, to, opts, nil
}

func (c *cli) readInput(location string) ([]byte, error) {
	if location == "" || location == "-" {
		return io.ReadAll(c.stdin)
	}
	content, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return content, nil
}

func splitList(value string) []string {
	var ret []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			ret = append(ret, item)
		}
	}
	return ret
}
