package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianliechti/docling-go/config"
	"github.com/adrianliechti/docling-go/pkg/docling"
	"github.com/adrianliechti/docling-go/pkg/otel"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	urlFlag := flag.String("url", docling.DefaultBaseURL, "server url")
	tokenFlag := flag.String("token", "", "server api key")

	configFlag := flag.String("config", "", "config file")
	clientFlag := flag.String("client", "", "client name in config file")

	formatFlag := flag.String("format", "md", "output format (md, json, html, text, doctags)")
	ocrFlag := flag.Bool("ocr", false, "force ocr")
	outputFlag := flag.String("output", "", "output file")

	flag.Parse()

	if otel.EnableTelemetry {
		if err := otel.Setup("docling", "0.1.0"); err != nil {
			slog.Error("unable to setup telemetry", "error", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()

	api, err := createApi(*configFlag, *clientFlag, *urlFlag, *tokenFlag)

	if err != nil {
		slog.Error("unable to create client", "error", err)
		os.Exit(1)
	}

	args := flag.Args()

	command := "health"

	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "health":
		health(ctx, api)

	case "convert":
		convert(ctx, api, args, *formatFlag, *ocrFlag, *outputFlag)

	default:
		slog.Error("unknown command", "command", command)
		os.Exit(1)
	}
}

func createApi(configPath, clientName, url, token string) (docling.Api, error) {
	if configPath != "" {
		cfg, err := config.Parse(configPath)

		if err != nil {
			return nil, err
		}

		return cfg.Client(clientName)
	}

	builder := docling.NewClientBuilder().BaseURL(url)

	if token != "" {
		builder = builder.APIKey(token)
	}

	return builder.Build()
}

func health(ctx context.Context, api docling.Api) {
	result, err := api.Health(ctx)

	if err != nil {
		slog.Error("health check failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(result.Status())
}

func convert(ctx context.Context, api docling.Api, args []string, format string, ocr bool, output string) {
	if len(args) == 0 {
		slog.Error("no files or urls to convert")
		os.Exit(1)
	}

	var sources []docling.Source

	for _, arg := range args {
		source, err := createSource(arg)

		if err != nil {
			slog.Error("unable to read source", "source", arg, "error", err)
			os.Exit(1)
		}

		sources = append(sources, source)
	}

	options := docling.NewConvertOptionsBuilder().
		ToFormats(docling.OutputFormat(format))

	if ocr {
		options = options.ForceOCR(true)
	}

	request := docling.NewConvertDocumentRequestBuilder().
		Sources(sources...).
		Options(options.Build()).
		Build()

	result, err := api.ConvertSource(ctx, request)

	if err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}

	document := result.Document()

	if document == nil {
		slog.Error("no document returned", "status", result.Status())
		os.Exit(1)
	}

	content, err := documentContent(document, format)

	if err != nil {
		slog.Error("unable to render document", "error", err)
		os.Exit(1)
	}

	name := output

	if name == "" {
		name = uuid.New().String() + formatExtension(format)
	}

	if err := os.WriteFile(name, content, 0600); err != nil {
		slog.Error("unable to write output", "file", name, "error", err)
		os.Exit(1)
	}

	fmt.Println("Saved: " + name)
}

func createSource(arg string) (docling.Source, error) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return docling.NewHTTPSourceBuilder().URL(arg).Build(), nil
	}

	data, err := os.ReadFile(arg)

	if err != nil {
		return nil, err
	}

	return docling.NewFileSource(data, filepath.Base(arg), ""), nil
}

func documentContent(document *docling.DocumentResponse, format string) ([]byte, error) {
	switch format {
	case "json":
		codec := docling.NewCodecBuilder().Indent("  ").Build()
		return codec.Marshal(document.JSONContent())

	case "html":
		return contentBytes(document.HTMLContent(), format)

	case "text":
		return contentBytes(document.TextContent(), format)

	case "doctags":
		return contentBytes(document.DoctagsContent(), format)

	default:
		return contentBytes(document.MarkdownContent(), format)
	}
}

func contentBytes(content *string, format string) ([]byte, error) {
	if content == nil {
		return nil, fmt.Errorf("document has no %s content", format)
	}

	return []byte(*content), nil
}

func formatExtension(format string) string {
	switch format {
	case "json":
		return ".json"

	case "html":
		return ".html"

	case "text":
		return ".txt"

	case "doctags":
		return ".doctags"

	default:
		return ".md"
	}
}
