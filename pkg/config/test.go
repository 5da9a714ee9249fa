package config

func loadTestConfig(cfg *Config) {
	cfg.ServerHost = "127.0.0.1"
	// Port 0 lets the OS pick a free port so parallel test runs don't
	// collide.
	cfg.ServerPort = 0
	cfg.OMDbAPIKey = "test-key"
}
