// Package main provides a content validation tool for book files and
// series data.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hennsa/Aon-sub000/internal/game/book"
	"github.com/hennsa/Aon-sub000/internal/game/rules"
	"github.com/hennsa/Aon-sub000/internal/game/series"
)

func main() {
	start := time.Now()

	bookPath := flag.String("book", "", "path to a book JSON file (required)")
	dataDir := flag.String("data", "data", "path to series data directory")
	flag.Parse()

	if *bookPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	b, err := book.LoadFromFile(*bookPath)
	if err != nil {
		log.Fatalf("loading book: %v", err)
	}

	catalogs, tables := series.DirLoaders(*dataDir)
	reg := series.NewRegistry(catalogs, tables)
	assets, err := reg.Assets(b.SeriesID)
	if err != nil {
		log.Fatalf("loading series data for %q: %v", b.SeriesID, err)
	}

	warnings := rules.ValidateBook(b, assets.Catalog)
	for _, w := range warnings {
		fmt.Fprintln(os.Stdout, w)
	}

	elapsed := time.Since(start)
	if len(warnings) > 0 {
		fmt.Fprintf(os.Stdout, "%s: %d warning(s) in %d section(s) [%s]\n",
			filepath.Base(*bookPath), len(warnings), len(b.Sections), elapsed)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, "%s: ok, %d section(s) [%s]\n",
		filepath.Base(*bookPath), len(b.Sections), elapsed)
}
