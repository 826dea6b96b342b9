package limiter

import (
	"context"

	"github.com/adrianliechti/docling-go/pkg/docling"

	"golang.org/x/time/rate"
)

type Limiter interface {
	limiterSetup()
}

type Api interface {
	Limiter
	docling.Api
}

type limitedApi struct {
	limiter *rate.Limiter
	api     docling.Api
}

func NewApi(l *rate.Limiter, api docling.Api) Api {
	return &limitedApi{
		limiter: l,
		api:     api,
	}
}

func (p *limitedApi) limiterSetup() {
}

func (p *limitedApi) Health(ctx context.Context) (*docling.HealthCheckResponse, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.api.Health(ctx)
}

func (p *limitedApi) ConvertSource(ctx context.Context, request *docling.ConvertDocumentRequest) (*docling.ConvertDocumentResponse, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.api.ConvertSource(ctx, request)
}
