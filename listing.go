package main

import (
	"context"
	"log"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var anchorSel = cascadia.MustCompile("a[href]")

// FetchFolderLinks fetches the listing at folderURL and returns its video
// links, deduplicated and in playlist order.
func FetchFolderLinks(ctx context.Context, f *Fetcher, folderURL string) ([]LinkEntry, error) {
	page, err := f.Fetch(ctx, folderURL)
	if err != nil {
		return nil, err
	}
	return ExtractLinks(folderURL, page)
}

// ExtractLinks parses a listing page and collects the anchors that resolve
// to video files. An empty result is not an error.
func ExtractLinks(folderURL, page string) ([]LinkEntry, error) {
	base, err := url.Parse(folderURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse folder url")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, errors.Wrap(err, "parse listing")
	}

	var links []LinkEntry
	anchors := doc.FindMatcher(anchorSel)
	anchors.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href == "" || href == "../" || href == "/" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		full := abs.String()
		if !looksLikeVideo(full) {
			return
		}
		links = append(links, LinkEntry{Href: full, Name: displayName(abs)})
	})

	links = uniqByHref(links)
	sortByName(links)
	log.Printf("[extract] %s: %d anchors, %d videos", folderURL, anchors.Length(), len(links))
	return links, nil
}

// uniqByHref keeps the first entry for each href.
func uniqByHref(in []LinkEntry) []LinkEntry {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, l := range in {
		if _, ok := seen[l.Href]; ok {
			continue
		}
		seen[l.Href] = struct{}{}
		out = append(out, l)
	}
	return out
}

// sortByName orders entries by name so that "ep2" comes before "ep10".
// A Collator is not safe for concurrent use, so each call builds its own.
func sortByName(links []LinkEntry) {
	c := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(links, func(i, j int) bool {
		return c.CompareString(links[i].Name, links[j].Name) < 0
	})
}
