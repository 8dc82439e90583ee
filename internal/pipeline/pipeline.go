// Package pipeline orchestrates a conversion run: one pass to validate every
// input row into accepted and rejected sequences, then one pass, in accepted
// order, to derive and map each record into an output row, writing as it
// goes. The run is strictly sequential; it either completes or fails fatally.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/veryxcit/freepbx2ucm/internal/config"
	"github.com/veryxcit/freepbx2ucm/internal/exporter"
	"github.com/veryxcit/freepbx2ucm/internal/freepbx"
	"github.com/veryxcit/freepbx2ucm/internal/mapping"
	"github.com/veryxcit/freepbx2ucm/internal/metrics"
	parsecsv "github.com/veryxcit/freepbx2ucm/internal/parser/csv"
	"github.com/veryxcit/freepbx2ucm/internal/report"
	"github.com/veryxcit/freepbx2ucm/internal/skiplog"
	"github.com/veryxcit/freepbx2ucm/internal/ucm"
)

// Summary reports what a completed run did.
type Summary struct {
	TotalRows  int // rows read, header included
	Accepted   int
	Rejected   int
	Exported   int
	Duplicates int // extension numbers appearing on more than one accepted row
}

// CountError reports a row-accounting mismatch after validation: data rows
// that ended up in neither the accepted nor the rejected sequence.
type CountError struct {
	DataRows int
	Accepted int
	Rejected int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("row accounting mismatch: %d data rows but %d accepted + %d rejected",
		e.DataRows, e.Accepted, e.Rejected)
}

// Run executes one conversion. The mapping definition is compiled and
// validated before the input is read, so a bad definition never produces a
// partial output file. Human-readable listing output goes to out.
func Run(cfg config.Config, def *mapping.Definition, out io.Writer) (Summary, error) {
	var sum Summary

	resolver, err := def.Compile()
	if err != nil {
		return sum, fmt.Errorf("mapping: %w", err)
	}

	job := cfg.Job
	if job == "" {
		job = config.DefaultJob
	}

	rows, err := readInput(cfg.InputPath)
	if err != nil {
		return sum, err
	}

	res := validate(rows, job, out)
	sum.TotalRows = res.TotalRows
	sum.Accepted = len(res.Accepted)
	sum.Rejected = len(res.Rejected)

	if !res.Balanced() {
		cerr := &CountError{DataRows: res.DataRows(), Accepted: len(res.Accepted), Rejected: len(res.Rejected)}
		if !cfg.BypassCount {
			return sum, cerr
		}
		fmt.Fprintf(out, "!!! %v (continuing: count check bypassed)\n", cerr)
	}

	sum.Duplicates = reportDuplicates(res.Accepted, out)

	if cfg.RejectsPath != "" {
		if err := writeRejects(cfg.RejectsPath, res.Rejected); err != nil {
			return sum, err
		}
	}

	exported, err := export(cfg, resolver, res.Accepted)
	if err != nil {
		return sum, err
	}
	sum.Exported = exported

	report.Summary(out, sum.TotalRows, sum.Accepted, sum.Rejected, sum.Exported)
	return sum, nil
}

func readInput(path string) ([]parsecsv.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	p := parsecsv.NewParser(parsecsv.Options{ExpectedFields: len(freepbx.Columns)})
	rows, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

// validate classifies every data row, printing the accepted listing as rows
// stream by and the rejected listing afterward, both in input order.
func validate(rows []parsecsv.Row, job string, out io.Writer) freepbx.Result {
	report.Section(out, "Extensions")
	v := &freepbx.Validator{
		Report: func(ext *freepbx.Extension, rejected bool, reason freepbx.Reason) {
			if rejected {
				metrics.RecordRow(job, "rejected", reason.String())
				return
			}
			metrics.RecordRow(job, "accepted", "")
			report.Accepted(out, ext)
		},
	}
	res := v.Validate(rows)

	fmt.Fprintln(out)
	report.Section(out, "Failed Extensions")
	for _, rej := range res.Rejected {
		report.Rejected(out, rej.Ext, rej.Reason.String())
	}
	return res
}

// reportDuplicates warns about extension numbers that appear on more than one
// accepted row. Row signatures distinguish re-exported identical rows from
// genuinely conflicting ones. Nothing is dropped or merged; resolving number
// conflicts between the two platforms is out of scope.
func reportDuplicates(accepted []*freepbx.Extension, out io.Writer) int {
	type occurrence struct {
		record int
		sig    uint64
	}
	byNumber := make(map[string][]occurrence)
	var order []string
	for _, ext := range accepted {
		n := ext.Number()
		if _, seen := byNumber[n]; !seen {
			order = append(order, n)
		}
		byNumber[n] = append(byNumber[n], occurrence{
			record: ext.Record,
			sig:    xxh3.HashString(strings.Join(ext.Raw(), "\x1f")),
		})
	}

	dups := 0
	for _, n := range order {
		occ := byNumber[n]
		if len(occ) < 2 {
			continue
		}
		dups++
		exact := true
		records := make([]int, len(occ))
		for i, o := range occ {
			records[i] = o.record
			if o.sig != occ[0].sig {
				exact = false
			}
		}
		sort.Ints(records)
		report.Duplicate(out, n, records, exact)
	}
	return dups
}

func writeRejects(path string, rejected []freepbx.Rejection) error {
	sl, err := skiplog.Create(path)
	if err != nil {
		return fmt.Errorf("rejects log: %w", err)
	}
	for _, rej := range rejected {
		sl.Add(rej.Reason.String(), rej.Ext.Record, rej.Ext.Number(), rej.Ext.Name())
	}
	if err := sl.Close(); err != nil {
		return fmt.Errorf("rejects log: %w", err)
	}
	return nil
}

// export derives and maps every accepted record, in order, writing each row
// immediately. Any failure discards the staged output file.
func export(cfg config.Config, resolver *mapping.Resolver, accepted []*freepbx.Extension) (int, error) {
	w, err := exporter.Create(cfg.OutputPath, resolver.Header())
	if err != nil {
		return 0, err
	}

	gen := ucm.NewSecretGenerator()
	pol := cfg.Policy()
	for _, ext := range accepted {
		drv := ucm.Derive(ext, pol, gen)
		if err := w.Write(resolver.Row(ext, drv)); err != nil {
			w.Abort()
			return 0, fmt.Errorf("record %d: %w", ext.Record, err)
		}
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return w.Rows(), nil
}
