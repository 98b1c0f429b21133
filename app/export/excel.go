// Package export writes scraped video records to a spreadsheet file
package export

import (
	"fmt"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/umputun/yt-scraper/app/metrics"
)

// SheetName is the name of the only sheet in exported file
const SheetName = "Video Data"

// Columns of the exported sheet, in order
var Columns = []string{"title", "url", "views", "likes", "comments", "upload_date", "duration_minutes",
	"video_type", "description", "thumbnail_high"}

// Error is returned when the spreadsheet can't be written
type Error struct {
	File string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("can't export to %q: %v", e.File, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Excel saves records to xlsx file
type Excel struct{}

// Save writes records to fname, one row per record in the given order after the header row.
// Existing file is overwritten. Hidden counts are left empty.
func (x Excel) Save(records []metrics.Record, fname string) (err error) {
	if strings.TrimSpace(fname) == "" {
		return &Error{File: fname, Err: errors.New("empty file name")}
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &Error{File: fname, Err: errors.Wrap(cerr, "close workbook")}
		}
	}()

	if err = f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return &Error{File: fname, Err: errors.Wrap(err, "rename sheet")}
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err = f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return &Error{File: fname, Err: errors.Wrap(err, "write header")}
	}

	for i, r := range records {
		cell, cerr := excelize.CoordinatesToCellName(1, i+2)
		if cerr != nil {
			return &Error{File: fname, Err: cerr}
		}
		row := x.row(r)
		if err = f.SetSheetRow(SheetName, cell, &row); err != nil {
			return &Error{File: fname, Err: errors.Wrapf(err, "write row for %s", r.ID)}
		}
	}

	if err = f.SaveAs(fname); err != nil {
		return &Error{File: fname, Err: err}
	}
	log.Printf("[INFO] %d videos saved to %s", len(records), fname)
	return nil
}

func (x Excel) row(r metrics.Record) []interface{} {
	uploadDate := ""
	if !r.Published.IsZero() {
		uploadDate = r.Published.Format("2006-01-02")
	}
	return []interface{}{r.Title, r.URL, x.count(r.Views), x.count(r.Likes), x.count(r.Comments), uploadDate,
		r.DurationMinutes, string(r.Type), r.Description, r.ThumbnailHigh}
}

// count returns nil for hidden counts to leave the cell empty
func (x Excel) count(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
