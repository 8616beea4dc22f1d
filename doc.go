// Package playersort sorts a football player dataset by name and compares
// how much work three classic strategies spend doing it.
//
// 🚀 What is playersort?
//
//	A small, sequential, dependency-light toolkit that brings together:
//		• Locale collation: names compare the way a pt-BR reader expects
//		  ("Éder" between "Ana" and "Zico"), via golang.org/x/text/collate
//		• Three strategies: bubble (exchange), merge, first-letter bucket
//		• Instrumentation: comparisons, moves, elapsed time, memory estimate
//		• CSV in, CSV out, and an interactive menu
//
// Under the hood, everything is organized under four packages:
//
//	player/  — Record, CSV reader/writer, console table
//	metrics/ — Counters (the per-run metrics context) and Report
//	fold/    — accent folding and first-letter bucket keys
//	sorting/ — Comparator, Mover, ExchangeSort, MergeSort, BucketSort, Sort
//
// and one command:
//
//	cmd/playersort — menu-driven front end (flag + YAML configuration)
//
// Quick example:
//
//	recs, _ := player.LoadFile("players.csv")
//	res, err := sorting.Sort(recs, sorting.Bucket)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = res.Report.WriteSummary(os.Stdout, sorting.Bucket.Title())
//
//	go install github.com/katalvlaran/playersort/cmd/playersort@latest
package playersort
