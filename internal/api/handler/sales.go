package handler

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/searching"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/utils"
)

const exportTimestampLayout = "20060102_150405"

// SearchSales pagina as vendas com os filtros da query string
func SearchSales(service searching.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters, err := parseSaleFilters(query, true)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit, err := queryInt(r, "limit", searching.DefaultLimit, 1, searching.MaxLimit)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		offset, err := queryInt(r, "offset", 0, 0, math.MaxInt)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		filters.Limit = uint64(limit)
		filters.Offset = uint64(offset)

		result, err := service.Search(r.Context(), filters)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// ExportSales devolve as vendas filtradas como anexo CSV
func ExportSales(service searching.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseSaleFilters(r.URL.Query(), false)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		records, err := service.Export(r.Context(), filters)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		var buf bytes.Buffer
		if err := ingesting.WriteCSV(&buf, records); err != nil {
			writeUseCaseError(w, r, errors.Wrap(err, "erro ao gerar csv"))
			return
		}

		filename := fmt.Sprintf("sales_export_%s.csv", time.Now().Format(exportTimestampLayout))

		log.ForContext(r.Context()).WithFields(log.Fields{
			"rows":     len(records),
			"filename": filename,
		}).Info("Exportação de vendas gerada")

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar exportação")
		}
	}
}

// parseSaleFilters lê os filtros comuns; o filtro de data exata só existe na busca
func parseSaleFilters(query url.Values, withExactDate bool) (domain.SaleFilters, error) {
	var (
		filters domain.SaleFilters
		err     error
	)

	filters.Category = query.Get("category")

	if raw := query.Get("customer_id"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid customer_id")
		}
		filters.CustomerID = &customerID
	}

	if withExactDate {
		if filters.Date, err = queryDate(query, "date"); err != nil {
			return filters, err
		}
	}

	if filters.StartDate, err = queryDate(query, "start_date"); err != nil {
		return filters, err
	}

	if filters.EndDate, err = queryDate(query, "end_date"); err != nil {
		return filters, err
	}

	if withExactDate {
		if filters.MinAmount, err = queryDecimal(query, "min_amount"); err != nil {
			return filters, err
		}
		if filters.MaxAmount, err = queryDecimal(query, "max_amount"); err != nil {
			return filters, err
		}
	}

	return filters, nil
}

func queryDate(query url.Values, name string) (*domain.Date, error) {
	parsed, err := utils.ParseDate(query.Get(name))
	if err != nil {
		return nil, fmt.Errorf("invalid %s format. use YYYY-MM-DD", name)
	}
	if parsed == nil {
		return nil, nil
	}

	date := domain.DateOf(*parsed)
	return &date, nil
}

func queryDecimal(query url.Values, name string) (*decimal.Decimal, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}

	return &value, nil
}
