package models

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fabrikaops/nonconf_backend/utils"
	"github.com/google/uuid"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// Field names the import mapping can bind a spreadsheet column to.
type Field string

const (
	FieldDescription Field = "description"
	FieldSource      Field = "source"
	FieldSeverity    Field = "severity"
	FieldStatus      Field = "status"
	FieldDay         Field = "day"
	FieldCreatedDate Field = "createdDate"
	FieldActionTitle Field = "actionTitle"
	FieldTeamLeader  Field = "teamLeader"
	FieldTeam        Field = "team"
	FieldCategory    Field = "category"
	FieldTargetDate  Field = "targetDate"
	FieldClosedDate  Field = "closedDate"
)

// MappingNone is the sentinel the UI sends for "this field is not mapped".
const MappingNone = "none"

// Legacy exports used this placeholder for rows without a description;
// such rows carry no usable data and are dropped.
const noDescriptionSentinel = "Açıklama yok"

// FieldMapping binds canonical record fields to spreadsheet column names.
type FieldMapping map[Field]string

// ColumnFor returns the mapped column name, or "" when the field is unmapped.
func (m FieldMapping) ColumnFor(field Field) string {
	column := strings.TrimSpace(m[field])
	if column == "" || column == MappingNone {
		return ""
	}
	return column
}

// Ready reports whether the mapping can drive an import. Description is the
// only mandatory field; without it the commit stays disabled.
func (m FieldMapping) Ready() bool {
	return m.ColumnFor(FieldDescription) != ""
}

var importableExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".xlsm": true,
}

// IsImportableFile checks the upload boundary's accepted extensions. The
// parser itself is format-agnostic once the payload decodes to a grid.
func IsImportableFile(name string) bool {
	return importableExtensions[strings.ToLower(filepath.Ext(name))]
}

// Workbook is a decoded spreadsheet: a header row naming the columns,
// followed by data rows.
type Workbook struct {
	headers []string
	rows    [][]string
}

// OpenWorkbook decodes a spreadsheet payload into a row grid. The first
// sheet is read; its first row is the header row. A payload that is not a
// recognizable spreadsheet yields ErrInvalidWorkbook and nothing else
// happens — the store is untouched on a parse failure.
func OpenWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, utils.ErrInvalidWorkbook
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidWorkbook, err)
	}

	wb := &Workbook{}
	if len(rows) > 0 {
		wb.headers = rows[0]
		wb.rows = rows[1:]
	}
	return wb, nil
}

// Columns returns the non-empty, trimmed header cells: the set of column
// names the caller can build a mapping from.
func (w *Workbook) Columns() []string {
	columns := make([]string, 0, len(w.headers))
	for _, h := range w.headers {
		if name := strings.TrimSpace(h); name != "" {
			columns = append(columns, name)
		}
	}
	return columns
}

// RowCount is the number of data rows (header excluded).
func (w *Workbook) RowCount() int {
	return len(w.rows)
}

// columnIndex resolves a mapped column name to its position in the grid.
func (w *Workbook) columnIndex(name string) int {
	for i, h := range w.headers {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	// GetRows drops trailing empty cells, so rows can be ragged.
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Transform turns the workbook's data rows into records. Rows whose mapped
// description is empty (or the legacy placeholder) are dropped silently;
// everything else recovers locally: unclassifiable text goes to the enum
// defaults, a bad day cell becomes 1, a bad created date becomes now.
func (w *Workbook) Transform(mapping FieldMapping, now time.Time) ([]NonConformity, error) {
	if !mapping.Ready() {
		return nil, utils.ErrDescriptionNotMapped
	}

	indexes := make(map[Field]int)
	for _, field := range []Field{
		FieldDescription, FieldSource, FieldSeverity, FieldStatus, FieldDay,
		FieldCreatedDate, FieldActionTitle, FieldTeamLeader, FieldTeam,
		FieldCategory, FieldTargetDate, FieldClosedDate,
	} {
		indexes[field] = -1
		if column := mapping.ColumnFor(field); column != "" {
			indexes[field] = w.columnIndex(column)
		}
	}

	records := make([]NonConformity, 0, len(w.rows))
	for _, row := range w.rows {
		description := cellAt(row, indexes[FieldDescription])
		if description == "" || strings.EqualFold(description, noDescriptionSentinel) {
			continue
		}

		source := ClassifySource(cellAt(row, indexes[FieldSource]))

		day := 1
		if parsed, err := cast.ToIntE(cellAt(row, indexes[FieldDay])); err == nil && parsed > 0 {
			day = parsed
		}

		createdAt := now
		if parsed, ok := utils.ParseFlexibleDate(cellAt(row, indexes[FieldCreatedDate])); ok {
			createdAt = parsed
		}

		record := NonConformity{
			ID:          uuid.NewString(),
			Source:      source,
			SourceLabel: source.Label(),
			Day:         day,
			Description: description,
			Severity:    ClassifySeverity(cellAt(row, indexes[FieldSeverity])),
			Status:      ClassifyStatus(cellAt(row, indexes[FieldStatus])),
			CreatedAt:   createdAt,
			CreatedDate: createdAt,
			ClosedDate:  utils.NilIfEmpty(cellAt(row, indexes[FieldClosedDate])),
			ActionTitle: utils.NilIfEmpty(cellAt(row, indexes[FieldActionTitle])),
			TeamLeader:  utils.NilIfEmpty(cellAt(row, indexes[FieldTeamLeader])),
			Team:        utils.NilIfEmpty(cellAt(row, indexes[FieldTeam])),
			Category:    utils.NilIfEmpty(cellAt(row, indexes[FieldCategory])),
			TargetDate:  utils.NilIfEmpty(cellAt(row, indexes[FieldTargetDate])),
		}
		if record.ActionTitle != nil {
			record.ActionID = utils.NewPtr(uuid.NewString())
		}
		records = append(records, record)
	}
	return records, nil
}

// ImportResult reports the row accounting of one import. Skipped rows are
// surfaced through the counts, never through an error.
type ImportResult struct {
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportWorkbook runs the whole pipeline: parse, transform with the given
// mapping, commit into the store. On any error the store is left untouched.
func ImportWorkbook(store *Store, r io.Reader, mapping FieldMapping, now time.Time) (ImportResult, error) {
	wb, err := OpenWorkbook(r)
	if err != nil {
		return ImportResult{}, err
	}
	records, err := wb.Transform(mapping, now)
	if err != nil {
		return ImportResult{}, err
	}
	imported := store.CommitImport(records)
	return ImportResult{
		Total:    wb.RowCount(),
		Imported: imported,
		Skipped:  wb.RowCount() - imported,
	}, nil
}
