package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olehluchkiv/gosolid/internal/catalog"
	"github.com/olehluchkiv/gosolid/internal/diagram"
	"github.com/olehluchkiv/gosolid/internal/diagram/split"
	"github.com/olehluchkiv/gosolid/internal/inspect"
	"github.com/olehluchkiv/gosolid/internal/logging"
	"github.com/olehluchkiv/gosolid/internal/server"
)

func main() {
	// Use a custom FlagSet so we can parse all args regardless of position.
	// Go's default flag.Parse stops at the first non-flag argument, which
	// breaks "gosolid lsp -serve". We reorder args so flags come first,
	// then positional args.
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("gosolid", flag.ExitOnError)
	principle := fs.String("principle", "", "run a single principle demo: srp, ocp, lsp, isp or dip (alternative to positional argument)")
	serve := fs.Bool("serve", false, "serve the browser tour instead of printing demos")
	port := fs.Int("port", 8080, "HTTP server port for -serve")
	output := fs.String("output", "", "write the combined Mermaid diagram to a file and exit")
	srcDir := fs.String("src", ".", "directory inside the module to inspect for diagrams")
	noBrowser := fs.Bool("no-browser", false, "skip auto-opening browser in -serve mode")
	logFile := fs.String("log-file", "logs/gosolid.log", "log file path")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	positional = append(positional, fs.Args()...)

	// Positional argument takes precedence over the -principle flag.
	selected := *principle
	if len(positional) > 0 {
		selected = positional[0]
	}

	level, ok := logging.ParseLevel(strings.ToLower(*logLevel))
	if !ok {
		fmt.Fprintf(os.Stderr, "Invalid log level %q (valid: debug, info, warn, error)\n", *logLevel)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	// Setup signal handling with context cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	// Plain demo mode needs no inspection: print and exit.
	if !*serve && *output == "" {
		if err := runDemos(os.Stdout, selected); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *output != "" {
		if err := writeDiagram(ctx, *srcDir, *output, logger); err != nil {
			logger.Error("failed to write output file", "error", err)
			fmt.Fprintf(os.Stderr, "Error writing to %s: %v\n", *output, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote diagram to %s\n", *output)
		return
	}

	slides, err := buildTour(ctx, *srcDir, logger)
	if err != nil {
		logger.Error("failed to build tour", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	openBrowser := !*noBrowser
	fmt.Printf("Starting server on http://localhost:%d\n", *port)
	if err := server.ServeTour(ctx, slides, *port, openBrowser, logger); err != nil {
		logger.Error("server error", "error", err)
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// runDemos prints one demo, or all five in S-O-L-I-D order when slug is empty.
func runDemos(w io.Writer, slug string) error {
	if slug != "" {
		ex, err := catalog.Find(slug)
		if err != nil {
			return err
		}
		printDemo(w, ex)
		return nil
	}

	for i, ex := range catalog.All() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printDemo(w, ex)
	}
	return nil
}

func printDemo(w io.Writer, ex catalog.Example) {
	fmt.Fprintf(w, "=== %s — %s ===\n", ex.Letter, ex.Title)
	fmt.Fprintf(w, "%s\n\n", ex.Definition)
	ex.Run(w)
}

// inspectPrinciples resolves the module root from dir and inspects the five
// example packages.
func inspectPrinciples(ctx context.Context, dir string, logger *slog.Logger) (*inspect.Result, error) {
	root, err := inspect.FindModuleRoot(dir)
	if err != nil {
		return nil, err
	}
	logger.Info("inspecting module", "module_root", root)

	opts := inspect.Options{PkgPrefix: inspect.PrinciplesPrefix}
	result, err := inspect.Inspect(ctx, root, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("inspect: %w", err)
	}
	result = inspect.Filter(result, opts)

	fmt.Printf("Found %d contracts, %d implementations, %d relations\n",
		len(result.Contracts), len(result.Implementations), len(result.Relations))
	return result, nil
}

// buildTour runs inspection and assembles the slide deck in tour order.
func buildTour(ctx context.Context, dir string, logger *slog.Logger) ([]diagram.Slide, error) {
	result, err := inspectPrinciples(ctx, dir, logger)
	if err != nil {
		return nil, err
	}

	examples := catalog.All()
	order := make([]string, len(examples))
	for i, ex := range examples {
		order[i] = ex.PkgPath
	}

	return diagram.BuildSlides(result, diagram.DefaultDiagramOptions(), split.NewByPackage(order...), examples), nil
}

// writeDiagram writes the combined diagram of all five examples as a
// standalone .mmd file.
func writeDiagram(ctx context.Context, dir, path string, logger *slog.Logger) error {
	result, err := inspectPrinciples(ctx, dir, logger)
	if err != nil {
		return err
	}

	opts := diagram.DefaultDiagramOptions()
	opts.IncludeInit = true
	return os.WriteFile(path, []byte(diagram.GenerateMermaid(result, opts)), 0o644)
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after the positional principle argument).
// Flags that take a value (e.g., -output file.mmd) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	// Set of flags that take a value argument
	valueFlagSet := map[string]bool{
		"-principle": true, "-port": true, "-output": true,
		"-src": true, "-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			if !strings.Contains(arg, "=") && valueFlagSet[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}
