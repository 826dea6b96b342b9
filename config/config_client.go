package config

import (
	"crypto/tls"
	"errors"
	"time"

	"github.com/adrianliechti/docling-go/pkg/docling"
	"github.com/adrianliechti/docling-go/pkg/limiter"
	"github.com/adrianliechti/docling-go/pkg/otel"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterClient(id string, api docling.Api) {
	if cfg.clients == nil {
		cfg.clients = make(map[string]docling.Api)
	}

	if _, ok := cfg.clients[""]; !ok {
		cfg.clients[""] = api
	}

	cfg.clients[id] = api
}

func (cfg *Config) Client(id string) (docling.Api, error) {
	if cfg.clients != nil {
		if c, ok := cfg.clients[id]; ok {
			return c, nil
		}
	}

	return nil, errors.New("client not found: " + id)
}

type clientConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Timeout  string `yaml:"timeout"`
	Insecure bool   `yaml:"insecure"`

	Proxy *proxyConfig `yaml:"proxy"`

	Limit *int `yaml:"limit"`

	Telemetry *bool `yaml:"telemetry"`
}

type clientContext struct {
	Limiter *rate.Limiter
}

func (cfg *Config) registerClients(f *configFile) error {
	var configs map[string]clientConfig

	if err := f.Clients.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Clients.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := clientContext{
			Limiter: createLimiter(config.Limit),
		}

		client, err := createClient(config, context)

		if err != nil {
			return err
		}

		var api docling.Api = client

		if _, ok := api.(limiter.Api); !ok {
			api = limiter.NewApi(context.Limiter, api)
		}

		if _, ok := api.(otel.Api); !ok {
			api = otel.NewApi(id, api)
		}

		cfg.RegisterClient(id, api)
	}

	return nil
}

func createClient(cfg clientConfig, context clientContext) (*docling.Client, error) {
	builder := docling.NewClientBuilder()

	if cfg.URL != "" {
		builder = builder.BaseURL(cfg.URL)
	}

	if cfg.Token != "" {
		builder = builder.APIKey(cfg.Token)
	}

	transport := docling.NewTransportBuilder()

	if cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)

		if err != nil {
			return nil, errors.New("invalid timeout: " + cfg.Timeout)
		}

		transport = transport.Timeout(timeout)
	}

	if cfg.Insecure {
		transport = transport.TLSConfig(&tls.Config{InsecureSkipVerify: true})
	}

	proxy, err := cfg.Proxy.proxyFunc()

	if err != nil {
		return nil, err
	}

	if proxy != nil {
		transport = transport.Proxy(proxy)
	}

	instrument := otel.EnableTelemetry

	if cfg.Telemetry != nil {
		instrument = *cfg.Telemetry
	}

	if instrument {
		transport = transport.Instrument(true)
	}

	return builder.Transport(transport).Build()
}
