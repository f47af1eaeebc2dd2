package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type ReadFilesUseCase struct {
	fileRepo port.FileRepositoryPort
}

func NewReadFilesUseCase(fileRepo port.FileRepositoryPort) *ReadFilesUseCase {
	return &ReadFilesUseCase{fileRepo: fileRepo}
}

func (uc *ReadFilesUseCase) Execute(ctx context.Context, ids []uuid.UUID) ([]domain.File, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ReadFiles",
		"ids":      len(ids),
	})

	ucLogger.Info("Use case started", nil)

	files, err := uc.fileRepo.LoadByIDs(ctx, ids)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"files": len(files)})
	return files, nil
}
