package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	Env     string // DEV (local; default), TEST, QA, PROD
	Debug   bool
	Build   string

	Server struct {
		Addr            string
		DisableReqLogs  bool
		ShutdownTimeout time.Duration
	}

	// API is the remote academic records backend. registra keeps no state of
	// its own; every read and write goes through this origin.
	API struct {
		BaseURL string
		Timeout time.Duration
	}

	RollbarToken string
}

func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("appName", "Registra")
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "dev")
	conf.SetDefault("serverAddr", ":8080")
	conf.SetDefault("serverDisableReqLogs", false)
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("apiBaseUrl", "http://127.0.0.1:5000")
	conf.SetDefault("apiTimeout", 10*time.Second)
	conf.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Debug:        conf.GetBool("debug"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
	c.Server.Addr = conf.GetString("serverAddr")
	c.Server.DisableReqLogs = conf.GetBool("serverDisableReqLogs")
	c.Server.ShutdownTimeout = conf.GetDuration("serverShutdownTimeout")
	c.API.BaseURL = conf.GetString("apiBaseUrl")
	c.API.Timeout = conf.GetDuration("apiTimeout")
	return c
}

func (c *Config) IsTest() bool { return c.Env == "TEST" }
