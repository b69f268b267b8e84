package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort           = 38471
	DefaultTimeoutSeconds = 10
	DefaultUserAgent      = "JobFinder/1.0 (+local)"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Scrape struct {
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
	} `yaml:"scrape"`

	Search struct {
		// free-text board lines, "<identifier> (<platform>)", one per line
		DefaultBoards string `yaml:"default_boards"`
	} `yaml:"search"`
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.Scrape.TimeoutSeconds) * time.Second
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
