package commands

import (
	"os"

	"github.com/pivotal-cf/pw-alert/config"
)

type PwAlertCommand struct {
	config.Opts
	config.Config

	Check   CheckCommand   `command:"check" description:"Evaluate a password read from the terminal or STDIN"`
	Audit   AuditCommand   `command:"audit" description:"Evaluate every password in a list, directory, or archive"`
	Serve   ServeCommand   `command:"serve" description:"Serve password evaluations over HTTP"`
	Update  UpdateCommand  `command:"update" description:"Update pw-alert to the latest version"`
	Version VersionCommand `command:"version" description:"Displays pw-alert version" alias:"V"`
}

var PwAlert PwAlertCommand

// loadConfig layers the config file over the defaults and the command line
// flags over both.
func (c *PwAlertCommand) loadConfig() (*config.Config, error) {
	cfg := config.Defaults()

	if c.ConfigFile != "" {
		bs, err := os.ReadFile(string(c.ConfigFile))
		if err != nil {
			return nil, err
		}

		fileCfg, err := config.Load(bs)
		if err != nil {
			return nil, err
		}

		cfg.Merge(fileCfg)
	}

	cfg.Merge(&c.Config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
