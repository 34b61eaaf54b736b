package server

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finaid-tools/docverifier/constants"
	v1 "github.com/finaid-tools/docverifier/gen/proto/docverify/v1"
	"github.com/finaid-tools/docverifier/internal/common"
	"github.com/finaid-tools/docverifier/internal/export"
	"github.com/finaid-tools/docverifier/internal/repository"
	"github.com/finaid-tools/docverifier/internal/templates"
	"github.com/finaid-tools/docverifier/internal/utils"
	"github.com/finaid-tools/docverifier/internal/verification"
)

type VerificationService struct {
	v1.UnimplementedVerificationServiceServer
	docs     repository.DocumentRepository
	results  repository.ExtractionResultRepository
	records  repository.VerificationRepository
	reviews  *verification.Service
	exporter *export.Service
	logger   *slog.Logger
}

func NewVerificationService(
	docs repository.DocumentRepository,
	results repository.ExtractionResultRepository,
	records repository.VerificationRepository,
	reviews *verification.Service,
	exporter *export.Service,
	logger *slog.Logger,
) *VerificationService {
	return &VerificationService{
		docs:     docs,
		results:  results,
		records:  records,
		reviews:  reviews,
		exporter: exporter,
		logger:   logger,
	}
}

func (s *VerificationService) GetLatestExtractionResult(ctx context.Context, req *v1.GetLatestExtractionResultRequest) (*v1.GetLatestExtractionResultResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	res, err := s.results.Latest(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "no extraction result for document")
	}
	return &v1.GetLatestExtractionResultResponse{Result: utils.ToPBExtractionResult(res)}, nil
}

func (s *VerificationService) GetVerificationStatus(ctx context.Context, req *v1.GetVerificationStatusRequest) (*v1.GetVerificationStatusResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "document not found")
	}
	resp := &v1.GetVerificationStatusResponse{DocumentStatus: string(doc.Status)}
	if rec, err := s.records.GetCurrent(ctx, id); err == nil {
		resp.Record = utils.ToPBVerificationRecord(rec)
	}
	return resp, nil
}

func (s *VerificationService) SubmitReviewerDecision(ctx context.Context, req *v1.SubmitReviewerDecisionRequest) (*v1.SubmitReviewerDecisionResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	reviewerID, err := uuid.Parse(strings.TrimSpace(req.GetReviewerId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "reviewer_id must be a UUID")
	}

	rec, err := s.reviews.SubmitDecision(ctx, id, verification.Decision{
		Approve:         req.GetApprove(),
		ReviewerID:      reviewerID,
		Notes:           req.GetNotes(),
		RejectionReason: req.GetRejectionReason(),
		Corrections:     req.GetCorrections(),
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidTransition):
			return nil, status.Errorf(codes.FailedPrecondition, "decision: %v", err)
		case errors.Is(err, common.ErrInvalidInput):
			return nil, status.Errorf(codes.InvalidArgument, "decision: %v", err)
		default:
			s.logger.Error("reviewer decision failed", "document_id", id, "error", err)
			return nil, status.Error(codes.Internal, "decision failed")
		}
	}
	return &v1.SubmitReviewerDecisionResponse{Record: utils.ToPBVerificationRecord(rec)}, nil
}

func (s *VerificationService) GetAvailableTemplates(_ context.Context, _ *v1.GetAvailableTemplatesRequest) (*v1.GetAvailableTemplatesResponse, error) {
	all := templates.All()
	out := make([]*v1.Template, 0, len(all))
	for _, t := range all {
		fields := make([]*v1.FieldSpec, 0, len(t.Fields))
		for _, f := range t.Fields {
			fields = append(fields, &v1.FieldSpec{
				Name:     f.Name,
				Label:    f.Label,
				DataType: string(f.DataType),
				Required: f.Required,
			})
		}
		out = append(out, &v1.Template{
			DocumentType: string(t.DocumentType),
			DisplayName:  t.DisplayName,
			Fields:       fields,
		})
	}
	return &v1.GetAvailableTemplatesResponse{Templates: out}, nil
}

func (s *VerificationService) ListReviewQueue(ctx context.Context, req *v1.ListReviewQueueRequest) (*v1.ListReviewQueueResponse, error) {
	docs, err := s.docs.ListByStatus(ctx, constants.DocumentManualReview, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("review queue listing failed", "error", err)
		return nil, status.Error(codes.Internal, "listing failed")
	}
	out := make([]*v1.Document, 0, len(docs))
	for i := range docs {
		out = append(out, utils.ToPBDocument(&docs[i]))
	}
	return &v1.ListReviewQueueResponse{Documents: out}, nil
}

func (s *VerificationService) ExportReviewQueue(ctx context.Context, _ *v1.ExportReviewQueueRequest) (*v1.ExportReviewQueueResponse, error) {
	data, err := s.exporter.ReviewQueueXLSX(ctx)
	if err != nil {
		s.logger.Error("review queue export failed", "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &v1.ExportReviewQueueResponse{Xlsx: data}, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	return id, nil
}
