// Config loading for the metagrate CLI.
package main

import (
	"github.com/spf13/viper"
)

const (
	configFileName = "metagrate"
	configFileType = "yaml"

	// Config keys. Flags with the same meaning take precedence.
	cfgKeyOutput           = "output"
	cfgKeyTransferSiteTags = "transfer_site_tags"
	cfgKeySmilesPolicy     = "smiles_policy"
	cfgKeyLogLevel         = "log_level"

	defaultOutput = "metadata_migrated.csv"
)

// loadConfig reads metagrate.yaml from the working directory, or the file
// named by --config. A missing default config file is not an error; a
// missing explicit one is.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyTransferSiteTags, true)
	v.SetDefault(cfgKeySmilesPolicy, "warn")
	v.SetDefault(cfgKeyLogLevel, "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, err
	}
	return v, nil
}
