package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nileshkumar-sf/kt-agent/internal/engine"
	"github.com/nileshkumar-sf/kt-agent/internal/mcp"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// newLogger builds a stderr-only logger. Stdout stays clean for the MCP
// protocol and for answer output in ask mode.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func resolveRoot(c *cli.Context) string {
	if root := c.String("root"); root != "" {
		return root
	}
	if c.Args().Len() > 0 {
		return c.Args().First()
	}
	return "."
}

func main() {
	app := &cli.App{
		Name:    "ktagent",
		Usage:   "Answer questions about a codebase by ranking its most relevant source locations",
		Version: fmt.Sprintf("%s (built %s)", version, buildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root directory to search",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging on stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "serve",
				Usage:     "Run the MCP server on stdio",
				ArgsUsage: "[project-root]",
				Action:    runServe,
			},
			{
				Name:      "ask",
				Usage:     "Interactively query the project from the terminal",
				ArgsUsage: "[project-root]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "imports",
						Usage: "Annotate each result with the file's import list",
					},
				},
				Action: runAsk,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ktagent: %v\n", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	root := resolveRoot(c)
	server, err := mcp.NewServer(root, logger)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("MCP server ready, listening on stdio",
			zap.String("root", root), zap.String("version", version))
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", zap.Stringer("signal", sig))
		cancel()
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}
	return nil
}

func runAsk(c *cli.Context) error {
	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	root := resolveRoot(c)
	eng, err := engine.New(root, engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to open project: %w", err)
	}

	status := eng.Status()
	fmt.Printf("Loaded %d files from %s (project type: %s)\n", status.Files, status.Root, status.ProjectType)
	fmt.Println("Ask a question about the codebase, or type 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "quit") {
			break
		}

		results, stats, err := eng.SearchWithStats(query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
			continue
		}
		if len(results) == 0 {
			fmt.Println("No relevant code found.")
			continue
		}

		fmt.Printf("Found %d relevant locations in %s (scored %d files):\n",
			len(results), stats.Duration, stats.FilesScored)
		for i, r := range results {
			fmt.Printf("\n[%d] %s:%d (relevance %d)\n", i+1, r.File, r.LineNumber, r.Relevance)
			if len(r.MatchedTerms) > 0 {
				fmt.Printf("    matched: %s\n", strings.Join(r.MatchedTerms, ", "))
			}
			if r.Context != "" {
				printIndented(r.Context)
			}
			printIndented(r.Content)
			if c.Bool("imports") {
				if imports := eng.FileImports(r.File); len(imports) > 0 {
					fmt.Printf("    imports: %s\n", strings.Join(imports, ", "))
				}
			}
		}
	}
	return scanner.Err()
}

func printIndented(block string) {
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		fmt.Printf("    %s\n", line)
	}
}
