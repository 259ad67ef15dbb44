package main

import (
	"flag"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codetint/codetint/internal/lang"
	"github.com/codetint/codetint/internal/render"
	"github.com/codetint/codetint/internal/ui"
)

func viewCmd(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	layer, cfgPath := settingsFlags(fs)
	langFlag := fs.String("lang", "", "force language id (default: detect)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatal("usage: codetint view [flags] FILE")
	}
	path := fs.Arg(0)

	settings := mustLoadSettings(*cfgPath, layer)
	override := checkLangOverride(*langFlag)

	// render errors surface in the status bar, not on stderr
	logger := newLogger(false)
	orch := newOrchestrator(logger, settings)
	defer orch.Close()

	opts := scanOptionsFrom(settings)
	kw, custom := keywordMaps(settings)
	set := orch.BuildKeywordSet(kw, custom, opts)
	orch.RefreshDecorations(set, opts)

	watcher, err := ui.NewWatcher(path, time.Duration(settings.DebounceMS)*time.Millisecond)
	if err != nil {
		log.Fatal(err)
	}
	changes, err := watcher.Start()
	if err != nil {
		log.Fatal(err)
	}

	renderFile := func() (string, int, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", 0, err
		}
		text := string(data)
		languageID := override
		if languageID == "" {
			languageID = lang.Normalize(lang.Detect(path, data))
		}
		byKeyword := orch.Scan(text, languageID, set, opts)
		var placements []render.Placement
		matches := 0
		for token, spans := range byKeyword {
			h, ok := orch.Handle(token)
			if !ok {
				continue
			}
			for _, sp := range spans {
				placements = append(placements, render.Placement{Span: sp, Handle: h})
			}
			matches += len(spans)
		}
		return orch.Registry.ApplyMany(text, placements), matches, nil
	}

	model := ui.NewModel(path, renderFile, watcher, changes)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
