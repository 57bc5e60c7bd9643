package main

import (
	"bitbucket.org/sotavant/github-activity-skill/internal/config"
	"flag"
)

func parseFlags() config.Config {
	cfg := config.Default()

	flag.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "address and port")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.GitHubAPIURL, "g", cfg.GitHubAPIURL, "GitHub API base URL")
	flag.StringVar(&cfg.UserAgent, "u", cfg.UserAgent, "User-Agent sent to the GitHub API")
	flag.Parse()

	cfg.ApplyEnv()
	return cfg
}
