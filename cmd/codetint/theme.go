package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/codetint/codetint/internal/config"
	"github.com/codetint/codetint/internal/theme"
)

func themeCmd(args []string) {
	if len(args) == 0 {
		log.Fatal("usage: codetint theme export|import ...")
	}
	switch args[0] {
	case "export":
		themeExportCmd(args[1:])
	case "import":
		themeImportCmd(args[1:])
	default:
		log.Fatalf("unknown theme subcommand: %s", args[0])
	}
}

func themeExportCmd(args []string) {
	fs := flag.NewFlagSet("theme export", flag.ExitOnError)
	layer, cfgPath := settingsFlags(fs)
	name := fs.String("name", "my theme", "theme name")
	out := fs.String("out", "codetint-theme.json", "output path")
	_ = fs.Parse(args)

	settings := mustLoadSettings(*cfgPath, layer)
	t := theme.FromSettings(*name, settings)
	if err := theme.Export(*out, t); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("exported theme %q to %s\n", t.Name, *out)
}

func themeImportCmd(args []string) {
	fs := flag.NewFlagSet("theme import", flag.ExitOnError)
	layer, cfgPath := settingsFlags(fs)
	yes := fs.Bool("yes", false, "apply without confirmation")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatal("usage: codetint theme import [flags] FILE")
	}

	t, err := theme.Import(fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if !*yes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("apply theme %q? [y/N] ", t.Name)) {
		// cancelled: change nothing
		return
	}

	settings := mustLoadSettings(*cfgPath, layer)
	applied, err := config.NormalizeAndValidate(t.Apply(settings))
	if err != nil {
		log.Fatal(err)
	}

	home, _ := os.UserHomeDir()
	dest := config.DefaultWritePath(os.Getenv("XDG_CONFIG_HOME"), home)
	if dest == "" {
		log.Fatal("cannot determine config directory")
	}
	if err := config.Save(dest, applied); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("applied theme %q, settings written to %s\n", t.Name, dest)
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "y" || answer == "yes"
}
