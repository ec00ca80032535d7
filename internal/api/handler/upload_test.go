package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ingesting/mocks"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/validating"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const testMaxBytes = 1 << 10

func multipartRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(uploadField, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/csv", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadCSV(t *testing.T) {
	csvContent := []byte("date,amount,category,customerID\n2024-01-01,10.00,Books,1\n")

	t.Run("entrega o arquivo à ingestão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockUploader(ctrl)

		uploader.EXPECT().
			Upload(gomock.Any(), "sales.csv", gomock.Any()).
			DoAndReturn(func(_ context.Context, filename string, r io.Reader) (*domain.UploadResult, error) {
				content, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, csvContent, content)
				return &domain.UploadResult{
					Message:      "csv uploaded successfully",
					RowsInserted: 1,
					Filename:     filename,
					BatchID:      "abc",
				}, nil
			})

		rec := httptest.NewRecorder()
		UploadCSV(uploader, testMaxBytes).ServeHTTP(rec, multipartRequest(t, "sales.csv", csvContent))

		require.Equal(t, http.StatusOK, rec.Code)
		var result domain.UploadResult
		decodeBody(t, rec, &result)
		assert.Equal(t, 1, result.RowsInserted)
		assert.Equal(t, "abc", result.BatchID)
	})

	t.Run("extensão diferente de csv", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockUploader(ctrl)

		rec := httptest.NewRecorder()
		UploadCSV(uploader, testMaxBytes).ServeHTTP(rec, multipartRequest(t, "sales.xlsx", csvContent))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("arquivo vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockUploader(ctrl)

		rec := httptest.NewRecorder()
		UploadCSV(uploader, testMaxBytes).ServeHTTP(rec, multipartRequest(t, "sales.csv", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("arquivo acima do limite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockUploader(ctrl)

		rec := httptest.NewRecorder()
		UploadCSV(uploader, testMaxBytes).ServeHTTP(rec, multipartRequest(t, "sales.csv", bytes.Repeat([]byte("a"), testMaxBytes+1)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, apiErrors.ErrFileTooLarge, decodeError(t, rec).Code)
	})

	t.Run("sem arquivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockUploader(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/upload/csv", nil)
		rec := httptest.NewRecorder()
		UploadCSV(uploader, testMaxBytes).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lote bloqueado pela validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockUploader(ctrl)

		uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, &validating.BlockingError{
			Issues: []domain.ValidationIssue{{
				Kind:     domain.IssueMissingColumns,
				Severity: domain.SeverityError,
				Message:  "missing required columns: amount",
			}},
		})

		rec := httptest.NewRecorder()
		UploadCSV(uploader, testMaxBytes).ServeHTTP(rec, multipartRequest(t, "sales.csv", csvContent))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrValidationBlocked, apiErr.Code)
		assert.Contains(t, apiErr.Message, "missing required columns: amount")
	})

	t.Run("todas as linhas rejeitadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockUploader(ctrl)

		uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, &ingesting.AllRowsRejectedError{
			Rejected: 1,
			Reasons:  []string{"row 2: invalid amount"},
		})

		rec := httptest.NewRecorder()
		UploadCSV(uploader, testMaxBytes).ServeHTTP(rec, multipartRequest(t, "sales.csv", csvContent))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrAllRowsRejected, decodeError(t, rec).Code)
	})

	t.Run("erro de banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := mocks.NewMockUploader(ctrl)

		uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorage)

		rec := httptest.NewRecorder()
		UploadCSV(uploader, testMaxBytes).ServeHTTP(rec, multipartRequest(t, "sales.csv", csvContent))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
