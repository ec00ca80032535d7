package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

const uploadField = "file"

// UploadCSV recebe o arquivo multipart "file" e o entrega à ingestão
func UploadCSV(service ingesting.Uploader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// margem para os cabeçalhos do multipart
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1<<20)

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "File too large", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "File is required", nil)
			return
		}
		defer file.Close()

		if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Only CSV files are allowed", nil)
			return
		}

		if header.Size > maxBytes {
			logger.WithFields(log.Fields{
				"filename": header.Filename,
				"size":     header.Size,
			}).Warn("Arquivo acima do limite de upload")
			apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "File too large", map[string]any{
				"max_bytes": maxBytes,
			})
			return
		}

		if header.Size == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "CSV file is empty", nil)
			return
		}

		result, err := service.Upload(r.Context(), header.Filename, file)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
