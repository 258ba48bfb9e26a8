package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/arcanaland/solitaire/internal/config"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether no errors were found
func (r ValidationResults) OK() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResults) merge(other ValidationResults) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Validator checks a config file and, once it decodes, the opening deal it
// produces.
type Validator struct {
	ConfigPath string
	Results    ValidationResults

	config *config.Config
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Config returns the decoded configuration, or nil before Validate succeeds
func (v *Validator) Config() *config.Config {
	return v.config
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateConfigToml(); err != nil {
		return v.Results, err
	}

	v.validateDecks()
	v.validateLogLevel()
	v.validateSeed()

	return v.Results, nil
}

func (v *Validator) validateConfigToml() error {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		return fmt.Errorf("error parsing %s: %v", v.ConfigPath, err)
	}
	v.config = cfg

	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key %q is ignored", key.String()))
	}

	for _, key := range []string{"decks", "color", "log_level"} {
		if !meta.IsDefined(key) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s is not set, using the default", key))
		}
	}
	return nil
}

// validateDecks checks the deck multiplier
func (v *Validator) validateDecks() {
	if v.config.Decks < 1 || v.config.Decks > config.MaxDecks {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("decks must be between 1 and %d, got %d", config.MaxDecks, v.config.Decks))
		return
	}
	if v.config.Decks > 1 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%d decks leave duplicate cards that the four suit piles cannot hold", v.config.Decks))
	}
}

// validateLogLevel checks that the logger understands the level
func (v *Validator) validateLogLevel() {
	if _, err := log.ParseLevel(v.config.LogLevel); err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unknown log_level %q (expected one of %s)", v.config.LogLevel,
				strings.Join([]string{"debug", "info", "warn", "error", "fatal"}, ", ")))
	}
}

// validateSeed notes a fixed seed, since every game would then be the same deal
func (v *Validator) validateSeed() {
	if v.config.Seed != 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("seed is fixed to %d, every game deals the same cards", v.config.Seed))
	}
}
