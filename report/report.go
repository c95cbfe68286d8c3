// Package report writes scan records as JSON lines and prints summaries.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"contenttype/scan"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/pgzip"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func compressed(name string) bool {
	return strings.HasSuffix(name, ".gz")
}

type gzipFile struct {
	*pgzip.Writer
	f *os.File
}

func (g gzipFile) Close() error {
	if err := g.Writer.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}

// Create opens name for writing, gzip-compressed when it ends in ".gz".
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if !compressed(name) {
		return f, nil
	}
	return gzipFile{Writer: pgzip.NewWriter(f), f: f}, nil
}

// Write encodes one record per line.
func Write(w io.Writer, records []scan.Record) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding %s: %w", rec.Path, err)
		}
	}
	return nil
}

func WriteFile(name string, records []scan.Record) error {
	w, err := Create(name)
	if err != nil {
		return err
	}
	if err := Write(w, records); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func Read(r io.Reader) ([]scan.Record, error) {
	var records []scan.Record
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	for line := 1; s.Scan(); line++ {
		if len(s.Bytes()) == 0 {
			continue
		}
		var rec scan.Record
		if err := json.Unmarshal(s.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, s.Err()
}

func ReadFile(name string) ([]scan.Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if compressed(name) {
		zr, err := pgzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	return Read(r)
}

// Row is one line of the summary: a MIME type, or "error" for failed
// records.
type Row struct {
	MIME  string
	Files int
	Bytes uint64
}

func Summarize(records []scan.Record) []Row {
	key := func(r scan.Record) string {
		if r.Failed() {
			return "error"
		}
		return r.MIME
	}
	counts := lo.CountValuesBy(records, key)
	groups := lo.GroupBy(records, key)

	rows := lo.MapToSlice(counts, func(mt string, n int) Row {
		return Row{
			MIME:  mt,
			Files: n,
			Bytes: uint64(lo.SumBy(groups[mt], func(r scan.Record) int64 { return r.Size })),
		}
	})
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Files != rows[j].Files {
			return rows[i].Files > rows[j].Files
		}
		return rows[i].MIME < rows[j].MIME
	})
	return rows
}

// Table renders the summary of records to w.
func Table(w io.Writer, records []scan.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"MIME", "Files", "Size"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	var files int
	var total uint64
	for _, row := range Summarize(records) {
		table.Append([]string{row.MIME, strconv.Itoa(row.Files), humanize.Bytes(row.Bytes)})
		files += row.Files
		total += row.Bytes
	}
	table.SetFooter([]string{"total", strconv.Itoa(files), humanize.Bytes(total)})
	table.Render()
}

func Failed(records []scan.Record) int {
	return lo.CountBy(records, scan.Record.Failed)
}
