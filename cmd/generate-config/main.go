package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"indigo/internal/config"
)

// generate-config prints the default configuration as an indigo.yaml template
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode the configuration")
	}
}
