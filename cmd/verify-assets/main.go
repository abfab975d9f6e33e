package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfoliohub/internal/catalog"
	"portfoliohub/pkg/models"
)

type assetRef struct {
	ProjectID string
	Where     string
	Src       string
}

func main() {
	var (
		catalogPath = flag.String("catalog", "data/catalog.json", "catalog JSON path")
		assetsRoot  = flag.String("assets", ".", "root directory local media paths resolve against")
		checkRemote = flag.Bool("remote", false, "also probe http(s) sources")
		timeout     = flag.Duration("timeout", 10*time.Second, "per-request timeout for remote probes")
	)
	flag.Parse()

	repo, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("load catalog failed: %v", err)
	}

	refs := collectRefs(repo)
	client := &http.Client{Timeout: *timeout}

	var broken []assetRef
	checked, skipped := 0, 0
	for _, ref := range refs {
		if ref.Src == "" {
			broken = append(broken, ref)
			continue
		}
		if isRemote(ref.Src) {
			if !*checkRemote {
				skipped++
				continue
			}
			if err := probeRemote(client, ref.Src); err != nil {
				log.Printf("unreachable: %s (%s in %s): %v", ref.Src, ref.Where, ref.ProjectID, err)
				broken = append(broken, ref)
			}
			checked++
			continue
		}
		if _, err := os.Stat(filepath.Join(*assetsRoot, filepath.FromSlash(ref.Src))); err != nil {
			log.Printf("missing: %s (%s in %s)", ref.Src, ref.Where, ref.ProjectID)
			broken = append(broken, ref)
		}
		checked++
	}

	log.Printf("checked %d references, skipped %d remote, %d broken", checked, skipped, len(broken))
	if len(broken) > 0 {
		os.Exit(1)
	}
	log.Println("✅ all referenced assets resolve")
}

func collectRefs(repo *catalog.Repository) []assetRef {
	var refs []assetRef
	for _, id := range repo.ListIDs() {
		p := repo.Get(id)
		if p == nil {
			continue
		}
		for i, hero := range p.HeroImages {
			refs = append(refs, assetRef{
				ProjectID: p.ID,
				Where:     fmt.Sprintf("hero[%d]", i),
				Src:       hero.Src,
			})
		}
		for _, tm := range catalog.AllMedia(p) {
			refs = append(refs, assetRef{
				ProjectID: p.ID,
				Where:     "section " + tm.SectionID,
				Src:       tm.Src,
			})
		}
		refs = append(refs, galleryRefs(p)...)
	}
	return refs
}

func galleryRefs(p *models.Project) []assetRef {
	var refs []assetRef
	for i, src := range p.Gallery {
		if src == "" {
			continue
		}
		refs = append(refs, assetRef{
			ProjectID: p.ID,
			Where:     fmt.Sprintf("gallery[%d]", i),
			Src:       src,
		})
	}
	return refs
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func probeRemote(client *http.Client, src string) error {
	ctx, cancel := context.WithTimeout(context.Background(), client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, src, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Some hosts reject HEAD outright, fall back to a ranged GET.
	if resp.StatusCode == http.StatusMethodNotAllowed {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Range", "bytes=0-0")
		resp2, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp2.Body.Close()
		resp = resp2
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
