package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type APIServerConfig struct {
	App    App
	API    API
	DB     DB
	Logger Logger
}

type TictactoeBotConfig struct {
	App     App
	Bot     Bot
	Backend Backend
	Logger  Logger
}

type PropositionExpiryServiceConfig struct {
	App    App
	Bot    Bot
	DB     DB
	Expiry Expiry
	Logger Logger
}

func LoadAPIServerConfig() (APIServerConfig, error) {
	var config APIServerConfig

	if err := env.Parse(&config); err != nil {
		return APIServerConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadTictactoeBotConfig() (TictactoeBotConfig, error) {
	var config TictactoeBotConfig

	if err := env.Parse(&config); err != nil {
		return TictactoeBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadPropositionExpiryServiceConfig() (PropositionExpiryServiceConfig, error) {
	var config PropositionExpiryServiceConfig

	if err := env.Parse(&config); err != nil {
		return PropositionExpiryServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
