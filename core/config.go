package core

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const envPrefix = "LMS"

type (
	ServerConfig struct {
		Host             string
		Port             int
		DebugHost        string
		ReadTimeout      time.Duration
		WriteTimeout     time.Duration
		ShutdownTimeout  time.Duration
		RateLimit        string // ulule/limiter format, e.g. "300-M"; empty disables it
		CORSAllowOrigins []string
	}

	DatabaseConfig struct {
		Engine          string
		Host            string
		Port            int
		Name            string
		User            string
		Password        string
		AdminUser       string
		AdminPassword   string
		DisableTLS      bool
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
	}

	PasswordConfig struct {
		HashCost int
	}

	Config struct {
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		AppName      string
		Debug        bool
		TestMode     bool
		RollbarToken string

		Server   ServerConfig
		Database DatabaseConfig
		Password PasswordConfig
	}
)

func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func (d DatabaseConfig) Address() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// NewConfig reads the configuration from defaults, the optional `config/.env.<env>` file
// and LMS_* environment variables, in increasing order of precedence.
func NewConfig() *Config {
	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	loadDotEnv(env)

	v := viper.New()
	setDefaults(v, env)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		Env:          env,
		Build:        v.GetString("build"),
		AppName:      v.GetString("appName"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:             v.GetString("server.host"),
			Port:             v.GetInt("server.port"),
			DebugHost:        v.GetString("server.debugHost"),
			ReadTimeout:      v.GetDuration("server.readTimeout"),
			WriteTimeout:     v.GetDuration("server.writeTimeout"),
			ShutdownTimeout:  v.GetDuration("server.shutdownTimeout"),
			RateLimit:        v.GetString("server.rateLimit"),
			CORSAllowOrigins: splitList(v.GetString("server.corsAllowOrigins")),
		},
		Database: DatabaseConfig{
			Engine:          v.GetString("database.engine"),
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			Name:            v.GetString("database.name"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			AdminUser:       v.GetString("database.adminUser"),
			AdminPassword:   v.GetString("database.adminPassword"),
			DisableTLS:      v.GetBool("database.disableTLS"),
			MaxOpenConns:    v.GetInt("database.maxOpenConns"),
			MaxIdleConns:    v.GetInt("database.maxIdleConns"),
			ConnMaxLifetime: v.GetDuration("database.connMaxLifetime"),
		},
		Password: PasswordConfig{
			HashCost: v.GetInt("password.hashCost"),
		},
	}
}

func setDefaults(v *viper.Viper, env string) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", env == "DEV" || env == "TEST")
	v.SetDefault("testMode", env == "TEST")
	v.SetDefault("build", "develop")
	v.SetDefault("appName", "LMS Admin")
	v.SetDefault("rollbarToken", "")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.debugHost", "0.0.0.0:4000")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 10*time.Second)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("server.rateLimit", "600-M")
	v.SetDefault("server.corsAllowOrigins", "*")

	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "lmsadmin")
	v.SetDefault("database.user", "lmsadmin")
	v.SetDefault("database.password", "lmsadmin")
	v.SetDefault("database.adminUser", "postgres")
	v.SetDefault("database.adminPassword", "postgres")
	v.SetDefault("database.disableTLS", env == "DEV" || env == "TEST")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 5*time.Minute)

	v.SetDefault("password.hashCost", bcrypt.DefaultCost)
}

// loadDotEnv loads `config/.env.<env>` if it exists (ignored if it does not).
// The directory can be overridden with CONFIG_DIR.
func loadDotEnv(env string) {
	dir := os.Getenv("CONFIG_DIR")
	if dir == "" {
		dir = "config"
	}
	dotEnvPath := filepath.Join(dir, ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = CleanString(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

func (c *Config) String() string {
	return fmt.Sprintf("%s (%s) env=%s debug=%t", c.AppName, c.Build, c.Env, c.Debug)
}
