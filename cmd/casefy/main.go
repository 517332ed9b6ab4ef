package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	app := &cli{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(app.run(ctx, os.Args[1:]))
}

func (c *cli) run(ctx context.Context, args []string) int {
	if len(args) < 1 {
		c.printUsage()
		return 1
	}
	command := args[0]
	var err error
	switch command {
	case "version", "-v", "--version":
		_, _ = fmt.Fprintf(c.stdout, "casefy %s\n", version())
		return 0
	case "help", "-h", "--help":
		c.printUsage()
		return 0
	case "transform":
		err = c.handleTransform(ctx, args[1:])
	case "styles":
		err = c.handleStyles(args[1:])
	case "detect":
		err = c.handleDetect(args[1:])
	case "mcp":
		err = c.handleMCP(ctx, args[1:])
	default:
		_, _ = fmt.Fprintf(c.stderr, "Unknown command: %s\n\n", command)
		c.printUsage()
		return 1
	}
	if err != nil {
		_, _ = fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (c *cli) printUsage() {
	_, _ = fmt.Fprintf(c.stderr, `casefy - rename document keys between case styles

Usage:
  casefy <command> [flags] [arguments]

Commands:
  transform   Rename the keys of a JSON or YAML document
  styles      List supported case styles
  detect      Detect the case style of keys
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  casefy transform -from snake_case -to camelCase input.json
  cat input.yaml | casefy transform -from camelCase -to kebab-case -format yaml
  casefy detect user_name userName

Run 'casefy <command> -h' for more information on a command.
`)
}
