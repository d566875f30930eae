package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	multierror "github.com/hashicorp/go-multierror"
	flags "github.com/jessevdk/go-flags"
	yaml "gopkg.in/yaml.v2"
)

type Opts struct {
	ConfigFile flags.Filename `long:"config-file" description:"path to config file" value-name:"PATH"`
}

type Config struct {
	LogLevel string `long:"log-level" description:"log level to use (debug, info, error, fatal)" value-name:"LEVEL" yaml:"log_level"`

	Breach struct {
		URL       string        `long:"breach-url" description:"base URL of the k-anonymity range API" value-name:"URL" yaml:"url"`
		Timeout   time.Duration `long:"breach-timeout" description:"how long to wait for a range lookup before ignoring it" value-name:"DURATION" yaml:"timeout"`
		Retries   int           `long:"breach-retries" description:"how many times a range lookup that fails in transport is retried" value-name:"N" yaml:"retries"`
		UserAgent string        `long:"breach-user-agent" description:"User-Agent sent with range lookups" value-name:"AGENT" yaml:"user_agent"`
		Padding   bool          `long:"breach-padding" description:"ask the range API to pad responses (a config file setting of true cannot be undone from the command line)" yaml:"padding"`
		Offline   bool          `long:"offline" description:"never look passwords up in the breach corpus (a config file setting of true cannot be undone from the command line)" yaml:"offline"`
	} `group:"Breach Options" yaml:"breach"`

	API struct {
		BindIP             string        `long:"bind-ip" description:"IP address on which to listen for API traffic" value-name:"IP" yaml:"bind_ip"`
		BindPort           uint16        `long:"bind-port" description:"port on which to listen for API traffic" value-name:"PORT" yaml:"bind_port"`
		SessionIdleTimeout time.Duration `long:"session-idle-timeout" description:"how long an idle session id is remembered" value-name:"DURATION" yaml:"session_idle_timeout"`
	} `group:"API Options" yaml:"api"`
}

func Defaults() *Config {
	c := &Config{LogLevel: "error"}

	c.Breach.URL = "https://api.pwnedpasswords.com"
	c.Breach.Timeout = 3 * time.Second
	c.Breach.Retries = 2
	c.Breach.UserAgent = "pw-alert"

	c.API.BindIP = "127.0.0.1"
	c.API.BindPort = 8080
	c.API.SessionIdleTimeout = 10 * time.Minute

	return c
}

func Load(bs []byte) (*Config, error) {
	c := &Config{}
	err := yaml.UnmarshalStrict(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Merge overwrites c with every field that is set on other. Flags are merged
// over the config file, which is merged over Defaults.
func (c *Config) Merge(other *Config) {
	merge(reflect.ValueOf(c).Elem(), reflect.ValueOf(other).Elem())
}

func (c *Config) Validate() error {
	var result error

	if _, err := c.LagerLevel(); err != nil {
		result = multierror.Append(result, err)
	}

	if !c.Breach.Offline {
		u, err := url.Parse(c.Breach.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			result = multierror.Append(result, fmt.Errorf("invalid breach url: %q", c.Breach.URL))
		}
	}

	if c.Breach.Timeout <= 0 {
		result = multierror.Append(result, errors.New("breach timeout must be positive"))
	}

	if c.Breach.Retries < 0 {
		result = multierror.Append(result, errors.New("breach retries must not be negative"))
	}

	if c.API.SessionIdleTimeout <= 0 {
		result = multierror.Append(result, errors.New("session idle timeout must be positive"))
	}

	return result
}

func (c *Config) LagerLevel() (lager.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return lager.DEBUG, nil
	case "", "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return lager.INFO, fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
}
