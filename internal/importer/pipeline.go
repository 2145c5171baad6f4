package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivelane/drivelane-backend/internal/db"
	"github.com/drivelane/drivelane-backend/internal/models"
	log "github.com/sirupsen/logrus"
)

// ErrNoData is returned when the sheet parses but contains zero data rows.
var ErrNoData = errors.New("file is empty or has no data")

const (
	batchSize         = 1000
	maxReportedErrors = 10
	// Data rows start at file row 2; row 1 is the header.
	headerRowOffset = 2
)

// RowError describes one rejected row in an import report.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
	Data  RawRow `json:"data"`
}

// Summary holds the aggregate counts for one import run.
type Summary struct {
	TotalRecords          int `json:"totalRecords"`
	SuccessfullyProcessed int `json:"successfullyProcessed"`
	FailedRecords         int `json:"failedRecords"`
}

// Result is the report returned to the caller. Errors is capped at
// maxReportedErrors to bound response size; Summary counts all rows.
type Result struct {
	Summary Summary    `json:"summary"`
	Errors  []RowError `json:"errors"`
}

// Pipeline runs the bulk vehicle import: parse, normalize each row,
// partition valid from invalid, insert the valid rows in batches.
type Pipeline struct {
	vehicles db.VehicleCollection
}

// NewPipeline creates an import pipeline backed by a vehicle collection.
func NewPipeline(vehicles db.VehicleCollection) *Pipeline {
	return &Pipeline{vehicles: vehicles}
}

// Import processes raw spreadsheet bytes and persists every row that passes
// normalization. One row's failure never aborts the batch; a store-level
// failure aborts the whole import. All normalization happens in memory
// before the first write.
func (p *Pipeline) Import(ctx context.Context, data []byte, filename string) (*Result, error) {
	rows, err := ParseSheet(data, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	log.WithFields(log.Fields{"file": filename, "rows": len(rows)}).Info("parsed import sheet")

	var valid []models.Vehicle
	var rejected []RowError
	for i, row := range rows {
		vehicle, err := NormalizeRow(row)
		if err != nil {
			rejected = append(rejected, RowError{
				Row:   i + headerRowOffset,
				Error: err.Error(),
				Data:  row,
			})
			continue
		}
		valid = append(valid, *vehicle)
	}
	log.WithFields(log.Fields{"valid": len(valid), "rejected": len(rejected)}).Info("validated import rows")

	saved := 0
	for start := 0; start < len(valid); start += batchSize {
		end := start + batchSize
		if end > len(valid) {
			end = len(valid)
		}
		n, err := p.vehicles.InsertVehicles(ctx, valid[start:end], false)
		if err != nil {
			return nil, fmt.Errorf("insert batch: %w", err)
		}
		saved += n
		log.WithFields(log.Fields{"saved": saved, "total": len(valid)}).Info("saved import batch")
	}

	reported := rejected
	if len(reported) > maxReportedErrors {
		reported = reported[:maxReportedErrors]
	}
	if reported == nil {
		reported = []RowError{}
	}

	return &Result{
		Summary: Summary{
			TotalRecords:          len(rows),
			SuccessfullyProcessed: len(valid),
			FailedRecords:         len(rejected),
		},
		Errors: reported,
	}, nil
}
