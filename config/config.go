package config

import (
	"io"
	"io/ioutil"
	"net"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
)

const (
	DefaultListen      = "127.0.0.1:8000"
	DefaultHTTPTimeout = 30 * time.Second
)

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

// Config covers process-level settings. API keys never live here, they
// are read from the environment by the tool registry.
type Config struct {
	Listen      string   `toml:"listen"`
	HTTPTimeout duration `toml:"http_timeout"`
	UserAgent   string   `toml:"user_agent"`
}

func (c *Config) GetListen() string {
	if c.Listen != "" {
		return c.Listen
	}

	return DefaultListen
}

func (c *Config) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration != 0 {
		return c.HTTPTimeout.Duration
	}

	return DefaultHTTPTimeout
}

func (c *Config) GetUserAgent() string {
	return c.UserAgent
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{}
}

func Parse(file io.Reader) (*Config, error) {
	conf := &Config{}

	buf, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, errors.Annotate(err, "cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "cannot parse config file")
	}

	if err := validate(conf); err != nil {
		return nil, errors.Annotate(err, "invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	if conf.Listen != "" {
		if _, _, err := net.SplitHostPort(conf.Listen); err != nil {
			return errors.Annotatef(err, "incorrect host:port %s", conf.Listen)
		}
	}

	return nil
}
