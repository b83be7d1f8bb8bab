// Command modelgen writes the built-in recommender bundle to disk so it can
// be inspected or used as a starting point for a customized model file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Arshavi-03/Finergize-recommend/internal/model"
)

func main() {
	out := flag.String("out", "models/finergize_recommender.json", "path to write the bundle to")
	check := flag.String("check", "", "validate an existing bundle file instead of writing one")
	flag.Parse()

	if *check != "" {
		if _, err := model.Load(*check); err != nil {
			log.Fatalf("bundle invalid: %v", err)
		}
		fmt.Printf("%s: ok\n", *check)
		return
	}

	data, err := model.Marshal(model.Default())
	if err != nil {
		log.Fatalf("marshal bundle: %v", err)
	}
	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", *out, len(data))
}
