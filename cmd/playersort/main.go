// Playersort loads a football player dataset, sorts it by name with a chosen
// strategy, and reports how much work the sort did.
//
// Usage:
//
//	playersort [-config file] [-input file] [-out dir] [-lang tag] [-algo name [-save]]
//
// Without -algo, playersort shows an interactive menu: 1 bubble sort,
// 2 merge sort, 3 bucket sort, 4 exit. After each sort it prints the sorted
// table and the metrics, then offers to save the result as
// players_sorted_<algorithm>.csv in the output directory.
//
// With -algo exchange|merge|bucket it sorts once and exits; -save writes the file.
//
// The -config flag names a YAML file with any of the keys input, output_dir,
// locale, bucket_capacity and memory_limit. Flags override the file.
//
// Exit status is 1 if the input file is missing or has no data rows.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/playersort/player"
	"github.com/katalvlaran/playersort/sorting"
)

var (
	configFlag = flag.String("config", "", "read settings from YAML `file`")
	inputFlag  = flag.String("input", "", "read players from CSV `file` (default players.csv)")
	outFlag    = flag.String("out", "", "write sorted CSV files into `dir` (default .)")
	langFlag   = flag.String("lang", "", "collation `locale` (default pt-BR)")
	algoFlag   = flag.String("algo", "", "sort once with `algorithm` (exchange, merge, bucket) and exit")
	saveFlag   = flag.Bool("save", false, "with -algo, save the sorted result")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: playersort [-config file] [-input file] [-out dir] [-lang tag] [-algo name [-save]]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("playersort: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "out":
			cfg.OutputDir = *outFlag
		case "lang":
			cfg.Locale = *langFlag
		}
	})

	fmt.Println("Loading players...")
	recs, err := player.LoadFile(cfg.Input)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d players.\n", len(recs))

	s := newSession(os.Stdin, os.Stdout, recs, cfg)
	if *algoFlag == "" {
		if err := s.loop(); err != nil {
			log.Fatal(err)
		}
		return
	}

	algo, err := sorting.ParseAlgorithm(*algoFlag)
	if err != nil {
		log.Fatal(err)
	}
	if err := s.process(algo, saveFlag); err != nil {
		log.Fatal(err)
	}
}
