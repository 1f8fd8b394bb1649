package config

import (
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
)


type Config struct {
	Theme       string `yaml:"theme"`        // chroma style name, "difgo" or "difgo-light"
	Mode        string `yaml:"mode"`         // "unified" or "split"
	Context     int    `yaml:"context"`      // unchanged lines kept around changes, 0 shows everything
	HistoryFile string `yaml:"historyfile"`  // where diff history records are appended
	HistoryMax  int    `yaml:"historymax"`   // most recent records kept
	MaxLines    int    `yaml:"maxlines"`     // input size ceiling per side, diffs above it are refused
	Port        int    `yaml:"port"`         // web server port
}

var DefaultConfig = Config{
	Theme:      "difgo",
	Mode:       "unified",
	Context:    0,
	HistoryMax: 100,
	MaxLines:   20000,
	Port:       7878,
}

func GetConfig() Config {
	conf := DefaultConfig
	conf.HistoryFile = defaultHistoryFile()

	conffilename, exists := os.LookupEnv("DIFGO_CONF")
	if !exists { conffilename = "config.yaml" }

	data, err := os.ReadFile(conffilename)
	if err != nil { return conf }

	var yamlConfig Config
	err = yaml.Unmarshal(data, &yamlConfig)
	if err != nil { return conf }

	if yamlConfig.Theme != "" { conf.Theme = yamlConfig.Theme }
	if yamlConfig.Mode != "" { conf.Mode = yamlConfig.Mode }
	if yamlConfig.Context > 0 { conf.Context = yamlConfig.Context }
	if yamlConfig.HistoryFile != "" { conf.HistoryFile = yamlConfig.HistoryFile }
	if yamlConfig.HistoryMax > 0 { conf.HistoryMax = yamlConfig.HistoryMax }
	if yamlConfig.MaxLines > 0 { conf.MaxLines = yamlConfig.MaxLines }
	if yamlConfig.Port > 0 { conf.Port = yamlConfig.Port }

	return conf
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil { return "difgo-history.json" }
	return filepath.Join(home, ".difgo", "history.json")
}
