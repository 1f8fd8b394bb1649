package config

import (
	"fmt"
	"os"
	"testing"
)

func TestReadConfig(t *testing.T) {
	// Read conf
	conf := GetConfig()
	fmt.Printf("Theme: %s, Mode: %s, MaxLines: %d, Port: %d\n",
		conf.Theme, conf.Mode, conf.MaxLines, conf.Port,
	)

	if conf.Mode != "unified" && conf.Mode != "split" {
		t.Errorf("unexpected default mode %s", conf.Mode)
	}
	if conf.MaxLines <= 0 { t.Errorf("maxlines must be positive") }
}

func TestReadConfigOverride(t *testing.T) {
	content := "theme: difgo-light\nmode: split\nmaxlines: 500\n"
	err := os.WriteFile("difgo_test_config.yaml", []byte(content), 0644)
	if err != nil { t.Fatal(err) }
	defer os.Remove("difgo_test_config.yaml")

	os.Setenv("DIFGO_CONF", "difgo_test_config.yaml")
	defer os.Unsetenv("DIFGO_CONF")

	conf := GetConfig()
	if conf.Theme != "difgo-light" { t.Errorf("expected difgo-light, got %s", conf.Theme) }
	if conf.Mode != "split" { t.Errorf("expected split, got %s", conf.Mode) }
	if conf.MaxLines != 500 { t.Errorf("expected 500, got %d", conf.MaxLines) }
	if conf.Port != DefaultConfig.Port { t.Errorf("port must keep default, got %d", conf.Port) }
}
