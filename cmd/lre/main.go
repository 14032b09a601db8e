// Command lre trains a Model from a directory of `.cpt` rule files and
// runs it against a text file, printing every concept's matches.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ovixiao/lre/pkg/config"
	"github.com/ovixiao/lre/pkg/lre"
)

func main() {
	rulesDir := flag.String("rules", "", "directory of .cpt rule files")
	textFile := flag.String("text", "", `path to the text file to match, or "-" for stdin`)
	configFile := flag.String("config", "", "optional YAML config file (defaults to config.Default())")
	flag.Parse()

	if *rulesDir == "" || *textFile == "" {
		fmt.Println(`usage: lre -rules <dir> -text <file-or-"-"> [-config <file>]`)
		os.Exit(2)
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			log.Fatalf("lre: loading config: %v", err)
		}
		cfg = loaded
	}

	model, err := lre.TrainDir(cfg, *rulesDir)
	if err != nil {
		log.Fatalf("lre: training: %v", err)
	}

	var text []byte
	if *textFile == "-" {
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("lre: reading stdin: %v", err)
		}
	} else {
		text, err = os.ReadFile(*textFile)
		if err != nil {
			log.Fatalf("lre: reading %s: %v", *textFile, err)
		}
	}

	matches, err := model.Match(string(text), nil)
	if err != nil {
		log.Fatalf("lre: matching: %v", err)
	}

	if len(matches) == 0 {
		fmt.Println("no concepts matched")
		return
	}
	for name, set := range matches {
		fmt.Printf("%s (%d):\n", name, set.Len())
		for _, r := range set.Slice() {
			fmt.Printf("  %s\n", r)
		}
	}
}
