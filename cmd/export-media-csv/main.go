package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"portfoliohub/internal/catalog"
)

func main() {
	var (
		catalogPath = flag.String("catalog", "data/catalog.json", "catalog JSON path")
		outPath     = flag.String("out", "data/media.csv", "output CSV path")
	)
	flag.Parse()

	repo, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("load catalog failed: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("mkdir failed: %v", err)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create failed: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"project_id", "section_id", "section_title", "type", "src", "caption", "video_family"}); err != nil {
		log.Fatalf("write header failed: %v", err)
	}

	total := 0
	for _, id := range repo.ListIDs() {
		p := repo.Get(id)
		if p == nil {
			continue
		}
		for _, tm := range catalog.AllMedia(p) {
			if err := w.Write([]string{
				p.ID,
				tm.SectionID,
				tm.SectionTitle,
				tm.Type,
				tm.Src,
				tm.Caption,
				strconv.FormatBool(tm.IsVideoFamily()),
			}); err != nil {
				log.Fatalf("write row failed: %v", err)
			}
			total++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("flush failed: %v", err)
	}

	log.Printf("✅ exported %d media items from %d projects to %s", total, repo.Len(), *outPath)
}
