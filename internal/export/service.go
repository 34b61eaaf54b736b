package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/internal/repository"
)

// Service produces XLSX bytes summarizing the manual-review queue so
// reviewers can work a spreadsheet without re-deriving pipeline logic.
type Service struct {
	docs    repository.DocumentRepository
	records repository.VerificationRepository
	logger  *slog.Logger
}

func NewService(docs repository.DocumentRepository, records repository.VerificationRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, records: records, logger: logger}
}

// ReviewQueueXLSX returns a workbook listing every document awaiting manual
// review with its failing checks and outstanding issues.
func (s *Service) ReviewQueueXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	docs, err := s.docs.ListByStatus(ctx, constants.DocumentManualReview, 0)
	if err != nil {
		return nil, fmt.Errorf("query review queue: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Review Queue"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document ID",
		"Owner ID",
		"Type",
		"Filename",
		"Uploaded",
		"Score",
		"Failing Checks",
		"Outstanding Issues",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		failing := ""
		issues := ""
		score := float32(0)
		if rec, err := s.records.GetCurrent(ctx, d.ID); err == nil {
			score = rec.Score
			var names []string
			for _, c := range rec.Checks {
				if !c.Passed {
					names = append(names, c.Name)
				}
			}
			failing = strings.Join(names, ", ")
			issues = strings.Join(rec.Issues, "; ")
		}

		values := []any{
			d.ID.String(),
			d.OwnerID.String(),
			string(d.DeclaredType),
			d.Filename,
			d.UploadedAt.UTC().Format(time.RFC3339),
			score,
			failing,
			issues,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// default sheet left behind by excelize
	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("review queue exported", "rows", row-2, "duration", time.Since(start))
	return buf.Bytes(), nil
}
