package conf

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
)

const (
	DefaultPath = "sysreport.toml"
	PathEnv     = "SYSREPORT_CONFIG"
)

var (
	Path string       // Config path
	mu   sync.RWMutex // Protects access to Conf
	Conf = Defaults()
)

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Report: Report{
			Title: "SYSTEM INFO",
			Width: 73,
			Rule:  "=",
		},
		Sources: Sources{
			OSReleasePaths: []string{"/etc/os-release", "/usr/lib/os-release"},
			UserEnv:        []string{"USERNAME", "USER", "LOGNAME"},
		},
	}
}

// ResolvePath returns the config path named by SYSREPORT_CONFIG, or the default
func ResolvePath() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// LoadConfig Set Path and load config into memory.
// A missing file leaves the defaults in place and is not created.
func LoadConfig(path string) error {
	Path = path
	err := Update()
	applyEnv()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// Update reads the config file and loads it into the global Conf variable
func Update() (err error) {
	mu.Lock()
	defer mu.Unlock()

	if _, err = os.Stat(Path); err != nil {
		return err
	}
	next := Defaults()
	if _, err = toml.DecodeFile(Path, &next); err != nil {
		return fmt.Errorf("failed to update global config %w", err)
	}
	Conf = sanitize(next)
	return nil
}

// applyEnv overlays SYSREPORT_* variables on top of the loaded config
func applyEnv() {
	mu.Lock()
	defer mu.Unlock()

	if v, ok := os.LookupEnv("SYSREPORT_WIDTH"); ok {
		if w, err := cast.ToIntE(v); err == nil {
			Conf.Report.Width = w
		}
	}
	if v, ok := os.LookupEnv("SYSREPORT_TITLE"); ok {
		Conf.Report.Title = v
	}
	if v, ok := os.LookupEnv("SYSREPORT_RULE"); ok {
		Conf.Report.Rule = v
	}
	if v, ok := os.LookupEnv("SYSREPORT_DEBUG"); ok {
		if d, err := cast.ToBoolE(v); err == nil {
			Conf.Debug = d
		}
	}
	Conf = sanitize(Conf)
}

func sanitize(c Config) Config {
	def := Defaults()
	if c.Report.Width <= 0 {
		c.Report.Width = def.Report.Width
	}
	if c.Report.Rule == "" {
		c.Report.Rule = def.Report.Rule
	}
	if len(c.Sources.OSReleasePaths) == 0 {
		c.Sources.OSReleasePaths = def.Sources.OSReleasePaths
	}
	if len(c.Sources.UserEnv) == 0 {
		c.Sources.UserEnv = def.Sources.UserEnv
	}
	return c
}

// Reset restores the built-in defaults
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	Path = ""
	Conf = Defaults()
}

// GetReport returns the Report config in a thread-safe manner
func GetReport() Report {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Report
}

// GetSources returns a copy of the Sources config in a thread-safe manner
func GetSources() Sources {
	mu.RLock()
	defer mu.RUnlock()

	return Sources{
		OSReleasePaths: append([]string(nil), Conf.Sources.OSReleasePaths...),
		UserEnv:        append([]string(nil), Conf.Sources.UserEnv...),
	}
}

// IsDebug reports whether fallback tracing is enabled
func IsDebug() bool {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Debug
}
