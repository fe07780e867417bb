// Package main is the entry point for the keybridge CLI: resolve
// shortcut specs against a keyboard layout, print key labels, and
// inspect live key presses.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/dshills/keybridge/internal/key"
	"github.com/dshills/keybridge/internal/layout"
	"github.com/dshills/keybridge/internal/mapper"
	"github.com/dshills/keybridge/internal/platform"
	"github.com/dshills/keybridge/internal/shortcut"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

const usage = `usage: keybridge [flags] <command> [args]

Commands:
  resolve <spec>   print the physical key presses for a shortcut spec
                   ("ctrl+shift+/", "ctrl+k ctrl+c")
  label <code>     print the UI label for a physical key ("Slash")
  inspect          interactively echo key presses and their resolution

Flags:
`

func main() {
	os.Exit(run())
}

func run() int {
	var (
		layoutPath  = flag.String("layout", "", "layout table JSON file (default: built-in US layout)")
		osName      = flag.String("os", runtime.GOOS, "target OS family: linux, macos, windows")
		logLevel    = flag.String("log-level", "warning", "log level: debug, info, warning, error")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("keybridge %s (%s)\n", version, commit)
		return 0
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	log.SetLevel(level)

	osFamily, err := platform.FromName(*osName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	table := layout.USStandard()
	if *layoutPath != "" {
		table, err = layout.LoadFile(*layoutPath, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	m := mapper.New(osFamily, table, log)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return 2
	}

	switch args[0] {
	case "resolve":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Error: resolve needs a shortcut spec")
			return 2
		}
		return cmdResolve(m, args[1])
	case "label":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Error: label needs a key code name")
			return 2
		}
		return cmdLabel(m, args[1])
	case "inspect":
		return cmdInspect(m)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", args[0])
		flag.Usage()
		return 2
	}
}

func cmdResolve(m *mapper.Mapper, spec string) int {
	req, err := shortcut.Parse(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	combos := m.Resolve(req)
	if len(combos) == 0 {
		fmt.Printf("%s: not producible on this layout\n", req)
		return 1
	}
	for _, c := range combos {
		kb := m.Keybinding(c)
		fmt.Printf("%-30s %-24s aria: %s\n", c, kb.Label(), kb.AriaLabel())
	}
	return 0
}

func cmdLabel(m *mapper.Mapper, name string) int {
	sc := key.ScanCodeFromName(name)
	if sc == key.ScanNone {
		fmt.Fprintf(os.Stderr, "Error: unknown key position %q\n", name)
		return 2
	}
	label, err := m.Label(sc, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(label)
	return 0
}
