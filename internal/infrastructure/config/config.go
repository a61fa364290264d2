package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// MissingConfigError lists every required value absent at startup.
// It is raised once, before the first poll cycle, and is fatal.
type MissingConfigError struct {
	Vars []string
}

func (e *MissingConfigError) Error() string {
	return "missing required configuration: " + strings.Join(e.Vars, ", ")
}

type Config struct {
	Practicum struct {
		Endpoint string        `yaml:"endpoint"`
		Token    string        `yaml:"token"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"practicum"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	Poll struct {
		Interval  time.Duration `yaml:"interval"`
		PauseFile string        `yaml:"pause_file"`
	} `yaml:"poll"`

	Cache struct {
		Path string `yaml:"path"`
	} `yaml:"cache"`
}

// Default returns the config with every non-secret knob filled in.
func Default() Config {
	var c Config
	c.Practicum.Endpoint = defaultEndpoint
	c.Practicum.Timeout = 10 * time.Second
	c.Poll.Interval = 600 * time.Second
	c.Poll.PauseFile = expandHome("~/.cache/homework_watcher_paused")
	c.Cache.Path = expandHome("~/.cache/homework_status.json")
	return c
}

// Load reads the optional YAML file, applies environment overrides and
// runs the credential guard. The returned MissingConfigError names all
// absent required variables, not just the first one.
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}

	if v := os.Getenv("HW_ENDPOINT"); v != "" {
		c.Practicum.Endpoint = v
	}

	if v := os.Getenv("PRACTICUM_TOKEN"); v != "" {
		c.Practicum.Token = v
	}

	if v := os.Getenv("HW_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Practicum.Timeout = d
		}
	}

	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		c.Telegram.Token = v
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Telegram.ChatID = id
		}
	}

	if v := os.Getenv("HW_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Poll.Interval = d
		}
	}

	if v := os.Getenv("CACHE_PATH"); v != "" {
		c.Cache.Path = v
	}

	if v := os.Getenv("PAUSE_FILE"); v != "" {
		c.Poll.PauseFile = v
	}

	c.Cache.Path = expandHome(c.Cache.Path)
	c.Poll.PauseFile = expandHome(c.Poll.PauseFile)

	if c.Practicum.Endpoint == "" {
		c.Practicum.Endpoint = defaultEndpoint
	}

	if c.Practicum.Timeout <= 0 {
		c.Practicum.Timeout = 10 * time.Second
	}

	if c.Poll.Interval <= 0 {
		c.Poll.Interval = 600 * time.Second
	}

	var missing []string
	if c.Practicum.Token == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.Telegram.Token == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.Telegram.ChatID == 0 {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return c, &MissingConfigError{Vars: missing}
	}

	return c, nil
}

// Save writes the config atomically under an exclusive lock. The file
// may carry tokens, hence the tight permissions.
func Save(path string, c Config) error {
	if path == "" {
		return errors.New("empty config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lf, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = lf.Close() }()

	if runtime.GOOS != "windows" {
		if err := syscall.Flock(int(lf.Fd()), syscall.LOCK_EX); err != nil {
			return err
		}
		defer func() { _ = syscall.Flock(int(lf.Fd()), syscall.LOCK_UN) }()
	}

	b, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(b); err != nil {
		return err
	}

	if err := f.Sync(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if h, _ := os.UserHomeDir(); h != "" {
			return h + p[1:]
		}
	}
	return p
}
