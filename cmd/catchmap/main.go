package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sloppy/catchmap/internal/config"
	"github.com/sloppy/catchmap/internal/observability"
	"github.com/sloppy/catchmap/internal/tooltip"
	"github.com/sloppy/catchmap/internal/web"
)

const defaultEnvFile = ".env"

func usage() string {
	return "Usage: catchmap <serve|render|names>"
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(out, usage())
		return 1
	}

	command := strings.ToLower(args[1])
	switch command {
	case "serve":
		return runServe(args[2:], out, errOut)
	case "render":
		return runRender(args[2:], in, out, errOut)
	case "names":
		return runNames(out)
	case "help", "-h", "--help":
		fmt.Fprintln(out, usage())
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n", command)
		fmt.Fprintln(out, usage())
		return 1
	}
}

// newRegistry is the single place the host binds tooltip names.
func newRegistry() *tooltip.Registry {
	return tooltip.NewRegistry(tooltip.HTMLFormatter{})
}

func runServe(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(errOut)
	envFile := fs.String("env", defaultEnvFile, "path to env file")
	port := fs.Int("port", 0, "port to listen on (overrides CATCHMAP_PORT)")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(errOut, "config: %v\n", err)
		return 1
	}
	if *port != 0 {
		cfg.Port = *port
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(errOut, "config: %v\n", err)
			return 1
		}
	}

	opts := web.Options{
		Logger:       log.New(errOut, "", log.LstdFlags),
		MaxBodyBytes: cfg.MaxBodyBytes,
	}
	if cfg.MetricsEnabled {
		metrics, err := observability.NewTooltipCollector(prometheus.NewRegistry())
		if err != nil {
			fmt.Fprintf(errOut, "metrics: %v\n", err)
			return 1
		}
		opts.Metrics = metrics
	}

	server := web.NewServer(newRegistry(), opts)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	fmt.Fprintf(out, "listening on http://localhost:%d\n", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(errOut, "serve: %v\n", err)
		return 1
	}
	return 0
}

// runRender prints the fragment for one JSON datum read from a file or
// stdin. An absent datum prints nothing.
func runRender(args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(errOut, "render requires a tooltip name")
		return 1
	}
	if len(args) > 2 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(args[2:], " "))
		return 1
	}
	name := args[0]

	source := in
	if len(args) == 2 && args[1] != "-" {
		file, err := os.Open(args[1])
		if err != nil {
			fmt.Fprintf(errOut, "open input: %v\n", err)
			return 1
		}
		defer file.Close()
		source = file
	}
	datum, err := io.ReadAll(source)
	if err != nil {
		fmt.Fprintf(errOut, "read input: %v\n", err)
		return 1
	}

	markup, ok, err := newRegistry().Render(name, datum)
	if err != nil {
		fmt.Fprintf(errOut, "render %s: %v\n", name, err)
		return 1
	}
	if ok {
		fmt.Fprintln(out, markup)
	}
	return 0
}

func runNames(out io.Writer) int {
	for _, name := range newRegistry().Names() {
		fmt.Fprintln(out, name)
	}
	return 0
}
