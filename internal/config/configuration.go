package config

import (
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	ERP     ERPConfig     `yaml:"erp"`
}

type StorageConfig struct {
	// postgres or sqlite; sqlite uses Path as the database file.
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule string        `yaml:"schedule"`
	DraftTTL time.Duration `yaml:"draftTTL"`
}

type ERPConfig struct {
	BaseURL    string        `yaml:"baseURL"`
	DataPath   string        `yaml:"dataPath"`
	SubmitPath string        `yaml:"submitPath"`
	Timeout    time.Duration `yaml:"timeout"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 4
	}
	if c.Server.CleanConfig.Schedule == "" {
		c.Server.CleanConfig.Schedule = "@every 6h"
	}
	if c.Server.CleanConfig.DraftTTL == 0 {
		c.Server.CleanConfig.DraftTTL = 30 * 24 * time.Hour
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "postgres"
	}
	if c.ERP.DataPath == "" {
		c.ERP.DataPath = "/supplier/pl/data"
	}
	if c.ERP.SubmitPath == "" {
		c.ERP.SubmitPath = "/supplier/pl/submit"
	}
	if c.ERP.Timeout == 0 {
		c.ERP.Timeout = 30 * time.Second
	}
}
