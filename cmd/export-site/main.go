package main

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"portfoliohub/internal/catalog"
	"portfoliohub/internal/site"
	"portfoliohub/pkg/logger"
)

func main() {
	var (
		catalogPath = flag.String("catalog", "data/catalog.json", "catalog JSON path")
		assetsDir   = flag.String("assets", "assets", "assets directory to copy alongside the pages")
		outDir      = flag.String("out", "public", "output directory for the static site")
	)
	flag.Parse()

	repo, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("load catalog failed: %v", err)
	}

	handler, err := site.NewHandler(repo, *assetsDir, logger.Nop())
	if err != nil {
		log.Fatalf("site handler failed: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir failed: %v", err)
	}

	if err := writePage(filepath.Join(*outDir, "index.html"), handler.RenderGrid); err != nil {
		log.Fatalf("export grid failed: %v", err)
	}

	pages := 1
	for _, id := range repo.ListIDs() {
		dir := filepath.Join(*outDir, "projects", id)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("mkdir %s failed: %v", dir, err)
		}
		path := filepath.Join(dir, "index.html")
		renderID := id
		err := writePage(path, func(w io.Writer) error {
			return handler.RenderDetail(w, renderID)
		})
		if err != nil {
			log.Fatalf("export project %s failed: %v", id, err)
		}
		pages++
	}

	copied, err := copyAssets(*assetsDir, filepath.Join(*outDir, "assets"))
	if err != nil {
		log.Fatalf("copy assets failed: %v", err)
	}

	log.Printf("✅ exported %d pages and %d assets to %s", pages, copied, *outDir)
}

func writePage(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// copyAssets mirrors the assets tree into the export directory. A missing
// source directory is not an error, some catalogs reference remote media only.
func copyAssets(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	if !info.IsDir() {
		return 0, nil
	}

	copied := 0
	err = filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}
