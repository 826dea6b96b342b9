package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/docling-go/pkg/docling"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type Api interface {
	Observable
	docling.Api
}

type observableApi struct {
	name string

	api docling.Api

	operationDurationMetric metric.Float64Histogram
}

func NewApi(name string, api docling.Api) Api {
	meter := otel.Meter(instrumentationName)

	operationDurationMetric, _ := meter.Float64Histogram("docling.client.operation.duration",
		metric.WithDescription("Duration of Docling Serve client operations."),
		metric.WithUnit("s"),
	)

	return &observableApi{
		api: api,

		name: name,

		operationDurationMetric: operationDurationMetric,
	}
}

func (p *observableApi) otelSetup() {
}

func (p *observableApi) Health(ctx context.Context) (*docling.HealthCheckResponse, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "health "+p.name)
	defer span.End()

	result, err := p.api.Health(ctx)

	return result, err
}

func (p *observableApi) ConvertSource(ctx context.Context, request *docling.ConvertDocumentRequest) (*docling.ConvertDocumentResponse, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "convert "+p.name)
	defer span.End()

	timestamp := time.Now()

	result, err := p.api.ConvertSource(ctx, request)

	if err != nil {
		return nil, err
	}

	duration := time.Since(timestamp).Seconds()

	attrs := []KeyValue{
		String("docling.operation.name", "convert"),
		String("docling.conversion.status", string(result.Status())),
	}

	if options := request.Options(); options != nil {
		if formats := options.ToFormats(); len(formats) > 0 {
			attrs = append(attrs, Strings("docling.request.to_formats", outputFormatStrings(formats)))
		}
	}

	p.operationDurationMetric.Record(ctx, duration, metric.WithAttributes(attrs...))

	return result, err
}

func outputFormatStrings(formats []docling.OutputFormat) []string {
	result := make([]string, 0, len(formats))

	for _, format := range formats {
		result = append(result, string(format))
	}

	return result
}
