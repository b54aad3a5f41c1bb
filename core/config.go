package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kat-co/vala"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (default), TEST, QA, PROD
	AppName  string
	WorkDir  string
	Build    string

	SecretKey    string // signs the web session cookie
	RollbarToken string

	// API is the remote backend; the portal holds no state of its own.
	API struct {
		BaseURL string
		Timeout time.Duration
	}

	Web struct {
		Addr            string
		SessionCookie   string
		ShutdownTimeout time.Duration
	}

	// TransactionFee is the fixed mobile-wallet service charge added on top
	// of every course fee or product price.
	TransactionFee int
}

// NewConfig loads configuration from the environment (and an optional
// config/.env.<env> file) and validates it.
func NewConfig(workDir string) (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "TC Portal")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "h2(h!x)#*c2(#yg4h^$cegm2emypoq5-wer)enb$+57=dz&uox")
	v.SetDefault("apiBaseUrl", "https://api.technicalcomputer.tech/api")
	v.SetDefault("apiTimeout", 30*time.Second)
	v.SetDefault("webAddr", ":8000")
	v.SetDefault("sessionCookie", "tcportal_session")
	v.SetDefault("shutdownTimeout", 5*time.Second)
	v.SetDefault("transactionFee", 30)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:          v.GetBool("debug"),
		TestMode:       v.GetBool("testMode"),
		Env:            env,
		AppName:        v.GetString("appName"),
		WorkDir:        workDir,
		Build:          v.GetString("build"),
		SecretKey:      v.GetString("secretKey"),
		RollbarToken:   v.GetString("rollbarToken"),
		TransactionFee: v.GetInt("transactionFee"),
	}
	conf.API.BaseURL = strings.TrimRight(v.GetString("apiBaseUrl"), "/")
	conf.API.Timeout = v.GetDuration("apiTimeout")
	conf.Web.Addr = v.GetString("webAddr")
	conf.Web.SessionCookie = v.GetString("sessionCookie")
	conf.Web.ShutdownTimeout = v.GetDuration("shutdownTimeout")

	err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(conf.AppName, "appName"),
		vala.StringNotEmpty(conf.SecretKey, "secretKey"),
		vala.StringNotEmpty(conf.API.BaseURL, "apiBaseUrl"),
		vala.GreaterThan(int(conf.API.Timeout), 0, "apiTimeout"),
		vala.GreaterThan(conf.TransactionFee, -1, "transactionFee"),
	).Check()
	if err != nil {
		return nil, err
	}
	return conf, nil
}

// Getwd walks up from the current directory looking for the project root.
// go-test changes the working directory to the package being run during tests;
// walking up keeps asset lookups working either way.
func Getwd(root string) string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if fi, err := os.Stat(currDir); err == nil {
			if filepath.Base(currDir) == root && fi.IsDir() {
				return currDir
			}
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
