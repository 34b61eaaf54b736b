package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finaid-tools/docverifier/constants"
	"github.com/finaid-tools/docverifier/gen/ent"
	entres "github.com/finaid-tools/docverifier/gen/ent/extractionresult"
	"github.com/finaid-tools/docverifier/internal/entity"
)

type ExtractionResultRepository interface {
	// Create appends a new attempt; prior results are never mutated.
	Create(ctx context.Context, res entity.ExtractionResult) (*entity.ExtractionResult, error)
	// Latest returns the most recent attempt for a document.
	Latest(ctx context.Context, documentID uuid.UUID) (*entity.ExtractionResult, error)
	History(ctx context.Context, documentID uuid.UUID) ([]entity.ExtractionResult, error)
}

type extractionResultRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewExtractionResultRepository(entc *ent.Client, logger *slog.Logger) ExtractionResultRepository {
	return &extractionResultRepo{ent: entc, logger: logger}
}

func (r *extractionResultRepo) Create(ctx context.Context, res entity.ExtractionResult) (*entity.ExtractionResult, error) {
	fields, err := json.Marshal(res.Fields)
	if err != nil {
		return nil, err
	}
	verrs, err := json.Marshal(res.ValidationErrors)
	if err != nil {
		return nil, err
	}
	create := r.ent.ExtractionResult.Create().
		SetDocumentID(res.DocumentID).
		SetClassifiedType(string(res.ClassifiedType)).
		SetOverallConfidence(res.OverallConfidence).
		SetRawText(res.RawText).
		SetFields(fields).
		SetValidationErrors(verrs).
		SetStatus(string(res.Status)).
		SetProcessedAt(res.ProcessedAt)
	if res.ErrorMessage != nil {
		create = create.SetErrorMessage(*res.ErrorMessage)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create extraction result", "document_id", res.DocumentID, "error", err)
		return nil, err
	}
	r.logger.Info("extraction result recorded",
		"document_id", res.DocumentID, "result_id", row.ID,
		"status", res.Status, "confidence", res.OverallConfidence,
	)
	return resultToEntity(row)
}

func (r *extractionResultRepo) Latest(ctx context.Context, documentID uuid.UUID) (*entity.ExtractionResult, error) {
	row, err := r.ent.ExtractionResult.Query().
		Where(entres.DocumentID(documentID)).
		Order(ent.Desc(entres.FieldProcessedAt)).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return resultToEntity(row)
}

func (r *extractionResultRepo) History(ctx context.Context, documentID uuid.UUID) ([]entity.ExtractionResult, error) {
	rows, err := r.ent.ExtractionResult.Query().
		Where(entres.DocumentID(documentID)).
		Order(ent.Asc(entres.FieldProcessedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ExtractionResult, 0, len(rows))
	for _, row := range rows {
		e, err := resultToEntity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func resultToEntity(row *ent.ExtractionResult) (*entity.ExtractionResult, error) {
	res := &entity.ExtractionResult{
		ID:                row.ID,
		DocumentID:        row.DocumentID,
		ClassifiedType:    constants.DocumentType(row.ClassifiedType),
		OverallConfidence: row.OverallConfidence,
		RawText:           row.RawText,
		Status:            constants.ResultStatus(row.Status),
		ErrorMessage:      row.ErrorMessage,
		ProcessedAt:       row.ProcessedAt,
	}
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &res.Fields); err != nil {
			return nil, err
		}
	}
	if len(row.ValidationErrors) > 0 {
		if err := json.Unmarshal(row.ValidationErrors, &res.ValidationErrors); err != nil {
			return nil, err
		}
	}
	return res, nil
}
