package config

import (
	"bytes"
	"os"

	"github.com/adrianliechti/docling-go/pkg/docling"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	clients map[string]docling.Api
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{}

	if err := c.registerClients(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Clients yaml.Node `yaml:"clients"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
