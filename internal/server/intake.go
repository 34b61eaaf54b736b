package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finaid-tools/docverifier/constants"
	v1 "github.com/finaid-tools/docverifier/gen/proto/docverify/v1"
	"github.com/finaid-tools/docverifier/internal/ingest"
	"github.com/finaid-tools/docverifier/internal/repository"
	"github.com/finaid-tools/docverifier/internal/utils"
)

type IntakeService struct {
	v1.UnimplementedIntakeServiceServer
	intake *ingest.Service
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewIntakeService(intake *ingest.Service, docs repository.DocumentRepository, logger *slog.Logger) *IntakeService {
	return &IntakeService{intake: intake, docs: docs, logger: logger}
}

// UploadDocument implements v1.IntakeServiceServer
func (s *IntakeService) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	ownerStr := strings.TrimSpace(req.GetOwnerId())
	if ownerStr == "" {
		s.logger.Error("upload request missing owner_id")
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}
	ownerID, err := uuid.Parse(ownerStr)
	if err != nil {
		s.logger.Error("invalid owner_id format for upload", "owner_id", ownerStr, "error", err)
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}
	if strings.TrimSpace(req.GetFilename()) == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetData()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "data is required")
	}

	s.logger.Info("starting document upload", "owner_id", ownerID, "filename", req.GetFilename())
	res, err := s.intake.Upload(ctx, ingest.UploadRequest{
		OwnerID:      ownerID,
		Filename:     req.GetFilename(),
		DeclaredType: constants.ParseDocumentType(req.GetDeclaredType()),
		Data:         req.GetData(),
	})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "upload: %v", err)
	}
	s.logger.Info("document upload succeeded",
		"owner_id", ownerID, "document_id", res.Document.ID, "deduplicated", res.Deduplicated,
	)

	return &v1.UploadDocumentResponse{
		Document:     utils.ToPBDocument(&res.Document),
		Deduplicated: res.Deduplicated,
	}, nil
}

func (s *IntakeService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "document not found")
	}
	return &v1.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}
