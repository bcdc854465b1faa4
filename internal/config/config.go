package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type RevenueConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	RevenueDB    `yaml:"revenue_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RevenueDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	FilingTopic  string `yaml:"filing_topic" env-default:"filing-events"`
	RevenueTopic string `yaml:"revenue_topic" env-default:"revenue-events"`
	GroupID      string `yaml:"group_id" env-default:"revenue-service"`
}

func MustLoad() *RevenueConfig {

	// Processing env config variable and file
	configPath := os.Getenv("REVENUE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("REVENUE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RevenueConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
