package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Port int  `koanf:"port"`
	AWS  AWS  `koanf:"aws"`
	Auth Auth `koanf:"auth"`
}

type AWS struct {
	Region          string `koanf:"region"`
	AccessKeyID     string `koanf:"accesskeyid"`
	SecretAccessKey string `koanf:"secretaccesskey"`
	Endpoint        string `koanf:"endpoint"`
	BudgetsTable    string `koanf:"budgetstable"`
	UsersTable      string `koanf:"userstable"`
	PDFBucket       string `koanf:"pdfbucket"`
}

type Auth struct {
	SessionSecret string `koanf:"sessionsecret"`
	TokenTTLHours int    `koanf:"tokenttlhours"`
}

// Load builds the application configuration from struct defaults, an
// optional YAML file and ORCAFACIL_-prefixed environment variables, in that
// order of precedence.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Port: 8080,
		AWS: AWS{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
			BudgetsTable:    "budgets",
			UsersTable:      "users",
			PDFBucket:       "orcafacil-pdfs",
		},
		Auth: Auth{
			SessionSecret: "devsessionsecret",
			TokenTTLHours: 24 * 14,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config defaults: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "ORCAFACIL_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "ORCAFACIL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
