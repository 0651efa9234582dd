// Package config provides configuration management for the Open Context Vault API.
//
// Configuration is loaded from environment variables using the env package,
// after any .env files have been applied with godotenv. Values are read once
// at startup and never re-read while the process is running.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("API will listen on %s (mem0 configured: %t)\n",
//	    cfg.BindAddress, cfg.Mem0.Configured())
package config
