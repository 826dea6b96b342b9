package config

import (
	"net/http"
	"net/url"
)

type proxyConfig struct {
	URL string `yaml:"url"`
}

func (cfg *proxyConfig) proxyFunc() (func(*http.Request) (*url.URL, error), error) {
	if cfg == nil || cfg.URL == "" {
		return nil, nil
	}

	proxyURL, err := url.Parse(cfg.URL)

	if err != nil {
		return nil, err
	}

	return http.ProxyURL(proxyURL), nil
}
