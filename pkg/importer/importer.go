// Package importer reads requirements from the fixed six-column
// spreadsheet layout and upserts them into the requirement store.
package importer

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/sysarch/reportgen/pkg/reqstore"
)

// SheetName is the fixed input sheet.
const SheetName = "Requirements"

// Columns: ID, Title, Description, Rationale, Notes, Verification Method.
const (
	colID = iota
	colTitle
	colDescription
	colRationale
	colNotes
	colVerification
)

// Result counts the outcome of one import run.
type Result struct {
	Created int
	Updated int
	Skipped int
}

// ImportFile imports every row of the Requirements sheet into store and
// persists the store once afterwards. Row-level failures are logged and
// skipped; only file-level problems return an error.
func ImportFile(path string, store *reqstore.Store) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to open requirement spreadsheet %s", path)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to read sheet %q from %s", SheetName, path)
	}

	res := ImportRows(rows, store)
	if err := store.Save(); err != nil {
		return res, err
	}
	return res, nil
}

// ImportRows upserts the given rows without persisting the store.
func ImportRows(rows [][]string, store *reqstore.Store) Result {
	var res Result
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if isBlank(row) {
			continue
		}
		rec, err := parseRow(row)
		if err != nil {
			logrus.WithError(err).WithField("row", i+1).Warn("skipping requirement row")
			res.Skipped++
			continue
		}
		if store.Upsert(rec) {
			res.Created++
		} else {
			res.Updated++
		}
	}
	return res
}

// isHeader sniffs the optional header row by its column keywords.
func isHeader(row []string) bool {
	id := strings.ToLower(strings.TrimSpace(cell(row, colID)))
	switch id {
	case "id", "identifier", "requirement id", "req id":
		return true
	}
	// A data row can legitimately say "Title"; demand two header keywords.
	return strings.EqualFold(strings.TrimSpace(cell(row, colTitle)), "title") &&
		strings.EqualFold(strings.TrimSpace(cell(row, colDescription)), "description")
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(row []string) (reqstore.Requirement, error) {
	id := clean(cell(row, colID))
	if id == "" {
		return reqstore.Requirement{}, errors.New("missing requirement identifier")
	}

	rec := reqstore.Requirement{
		ID:          id,
		Title:       clean(cell(row, colTitle)),
		Description: clean(cell(row, colDescription)),
		Rationale:   clean(cell(row, colRationale)),
	}
	// Verification method and notes fold into the keywords list.
	if v := clean(cell(row, colVerification)); v != "" {
		rec.Keywords = append(rec.Keywords, v)
	}
	if n := clean(cell(row, colNotes)); n != "" {
		rec.Keywords = append(rec.Keywords, n)
	}
	return rec, nil
}

// cell reads column i, tolerating the short rows excelize returns when
// trailing cells are empty.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// clean normalizes a cell: trimmed, with the placeholder values treated
// as empty.
func clean(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "n/a", "na", "-", "none":
		return ""
	}
	return s
}
