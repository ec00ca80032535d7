package ingesting

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/validating"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/uploader_mock.go -package=mocks

type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*domain.UploadResult, error)
}

type Service struct {
	validator validating.Validator
	loader    *Loader
	newID     func() (string, error)
}

func NewService(validator validating.Validator, loader *Loader) *Service {
	return &Service{
		validator: validator,
		loader:    loader,
		newID:     utils.GenerateID,
	}
}

// Upload lê, valida e grava um CSV de vendas. Lotes com problemas de severidade erro
// são recusados por inteiro; linhas sem campos obrigatórios são descartadas antes da carga.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) (*domain.UploadResult, error) {
	logger := log.ForContext(ctx).WithField("filename", filename)

	batch, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}

	report := s.validator.Inspect(batch)
	if err := report.Err(); err != nil {
		logger.WithField("rows", len(batch.Rows)).Warn("Upload bloqueado pela validação")
		return nil, err
	}

	complete := make([]domain.RawRow, 0, len(batch.Rows))
	for _, row := range batch.Rows {
		if row.HasRequired() {
			complete = append(complete, row)
		}
	}

	if len(complete) == 0 {
		return nil, ErrNoValidRows
	}

	batchID, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do lote")
	}

	count, err := s.loader.Load(ctx, batchID, complete)
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"batch_id": batchID,
		"rows":     count,
	}).Info("CSV ingerido")

	return &domain.UploadResult{
		Message:      "csv uploaded successfully",
		RowsInserted: count,
		Filename:     filename,
		BatchID:      batchID,
		Warnings:     report.Warnings,
		Errors:       report.Errors,
		Summary:      report.Summary(),
	}, nil
}
