package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"healthbot/internal/domain"
)

// Header aliases accepted for the two required columns. The stock
// catalog ships with Bengali headers; English spellings are accepted
// so clinics can maintain the table in either language.
var (
	phraseAliases = []string{"উপসর্গ/প্রশ্ন", "উপসর্গ", "প্রশ্ন", "symptom/question", "symptom", "question", "phrase"}
	answerAliases = []string{"উত্তর", "answer", "response", "advice"}
)

// Catalog is the loaded reference set. Entries are ordered as read;
// index alignment between phrase and answer is what the matcher
// depends on, so the collection is never reordered after load.
type Catalog struct {
	Entries []domain.CatalogEntry
}

// Phrases returns the reference phrases in catalog order.
func (c *Catalog) Phrases() []string {
	out := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Phrase
	}
	return out
}

// Answer returns the answer aligned with phrase index i.
func (c *Catalog) Answer(i int) string { return c.Entries[i].Answer }

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.Entries) }

// Load reads a catalog file, dispatching on extension (.csv or .xlsx).
func Load(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path)
	default:
		return loadCSV(path)
	}
}

func loadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrCatalogLoad, path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", domain.ErrCatalogLoad, path, err)
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCatalogLoad, path, err)
		}
		rows = append(rows, rec)
	}
	return fromRows(path, head, rows)
}

func loadXLSX(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrCatalogLoad, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", domain.ErrCatalogLoad, path)
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCatalogLoad, path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrCatalogLoad, path)
	}
	return fromRows(path, all[0], all[1:])
}

func fromRows(path string, head []string, rows [][]string) (*Catalog, error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys []string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cPhrase := findAny(phraseAliases)
	cAnswer := findAny(answerAliases)
	if cPhrase == -1 || cAnswer == -1 {
		return nil, fmt.Errorf("%w: %s missing required columns, found headers %v", domain.ErrCatalogLoad, path, head)
	}

	get := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	cat := &Catalog{}
	for _, rec := range rows {
		phrase := get(rec, cPhrase)
		answer := get(rec, cAnswer)
		if phrase == "" {
			continue
		}
		cat.Entries = append(cat.Entries, domain.CatalogEntry{Phrase: phrase, Answer: answer})
	}
	if len(cat.Entries) == 0 {
		return nil, fmt.Errorf("%w: %s contains no entries", domain.ErrCatalogLoad, path)
	}
	return cat, nil
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
