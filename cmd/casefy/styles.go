package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/viant/casefy"
	"github.com/viant/casefy/casing"
	"github.com/viant/casefy/internal/mcpserver"
)

func version() string {
	return casefy.Version()
}

func (c *cli) handleStyles(args []string) error {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	writer := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	for _, name := range casing.Styles() {
		info, _ := casing.Default.Info(name)
		_, _ = fmt.Fprintf(writer, "%s\t%s\n", info.Name, info.Description)
	}
	return writer.Flush()
}

func (c *cli) handleDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: casefy detect <key>...\n")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("detect command requires at least one key")
	}
	writer := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	for _, key := range fs.Args() {
		style, ok := casing.Detect(key)
		if !ok {
			style = "-"
		}
		_, _ = fmt.Fprintf(writer, "%s\t%s\n", key, style)
	}
	return writer.Flush()
}

func (c *cli) handleMCP(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	return mcpserver.Run(ctx)
}
