package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/pkg/browser"

	"github.com/codetint/codetint/internal/render"
	"github.com/codetint/codetint/internal/scan"
	"github.com/codetint/codetint/internal/web"
)

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	layer, cfgPath := settingsFlags(fs)
	port := fs.Int("p", 8080, "port")
	root := fs.String("root", ".", "directory to serve")
	open := fs.Bool("open", false, "open the preview in a browser")
	_ = fs.Parse(args)

	settings := mustLoadSettings(*cfgPath, layer)
	logger := newLogger(false)

	// HTML carries its own colors; the terminal registry stays uncolored.
	orch := scan.NewOrchestrator(logger, render.NewRegistry(false))
	defer orch.Close()

	opts := scanOptionsFrom(settings)
	kw, custom := keywordMaps(settings)
	set := orch.BuildKeywordSet(kw, custom, opts)

	app := web.NewApp(*root, set, orch, settings)
	mux := http.NewServeMux()
	app.Register(mux)

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	url := "http://" + addr
	if *open {
		go func() { _ = browser.OpenURL(url) }()
	}
	log.Printf("codetint: serving %s on %s", *root, url)
	log.Fatal(http.ListenAndServe(addr, mux))
}
