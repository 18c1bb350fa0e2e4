// Command kvmreq prints the request numbers of the Linux KVM ioctl
// interface.
//
// With no flags it reports the seven requests a minimal VMM touches, one
// "NAME = value" line per request, values in decimal. Other formats decode
// the numbers into their _IOC fields, dump them as YAML, or generate a Go
// constants file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tinyrange/kvmreq/internal/kvm"
	"github.com/tinyrange/kvmreq/internal/report"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kvmreq: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	formatName := flag.String("format", "plain", "Output format (plain, table, yaml, go)")
	all := flag.Bool("all", false, "Report the full request table instead of the minimal seven")
	manifestPath := flag.String("manifest", "", "YAML manifest selecting the requests to report")
	output := flag.String("o", "", "Write to a file instead of stdout")
	pkg := flag.String("pkg", "kvmioctl", "Package name for generated Go source")
	noColor := flag.Bool("no-color", false, "Disable ANSI styling in table output")
	verify := flag.Bool("verify", false, "Cross-check the table against /dev/kvm before reporting (Linux only)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the request numbers of the Linux KVM ioctl interface.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -all -format table\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format go -pkg kvmioctl -o ioctls.go\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		return fmt.Errorf("unexpected argument %q", flag.Arg(0))
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	format, err := report.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	requests, err := selectRequests(*all, *manifestPath)
	if err != nil {
		return err
	}
	slog.Debug("selected requests", "count", len(requests), "format", string(format))

	if *verify {
		if err := kvm.Verify(); err != nil {
			return fmt.Errorf("verify against kernel: %w", err)
		}
		slog.Debug("kernel agrees with the request table")
	}

	opts := report.Options{Package: *pkg}

	if *output == "" {
		opts.Color = !*noColor && term.IsTerminal(int(os.Stdout.Fd()))
		return report.Write(os.Stdout, format, requests, opts)
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create %s: %w", *output, err)
	}
	if err := report.Write(f, format, requests, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *output, err)
	}
	return nil
}

func selectRequests(all bool, manifestPath string) ([]kvm.Request, error) {
	if manifestPath != "" {
		if all {
			return nil, fmt.Errorf("-all and -manifest are mutually exclusive")
		}
		m, err := report.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		return m.Resolve()
	}
	if all {
		return kvm.All(), nil
	}
	return kvm.Canonical(), nil
}
