package summarizing

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

//go:generate mockgen -source=service.go -destination=mocks/summarizer_mock.go -package=mocks

type Summarizer interface {
	GenerateInsights(ctx context.Context, req domain.InsightsRequest) (*domain.Insights, error)
}

type Service struct {
	integrator completion.CompletionIntegrator
}

func NewService(integrator completion.CompletionIntegrator) *Service {
	return &Service{
		integrator: integrator,
	}
}

// GenerateInsights pede ao modelo um resumo com tendências e recomendações
func (s *Service) GenerateInsights(ctx context.Context, req domain.InsightsRequest) (*domain.Insights, error) {
	if err := validate.Struct(req); err != nil {
		return nil, &InsightsError{Err: ErrInvalidRequest, Code: apiErrors.ErrInvalidRequest, Message: err.Error()}
	}

	text, err := s.integrator.Complete(ctx, systemPrompt, BuildPrompt(req))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar insights")
		return nil, classify(err)
	}

	return &domain.Insights{
		Insights: text,
		Success:  true,
	}, nil
}
