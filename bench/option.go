package bench

import (
	"os"

	"github.com/go-errors/errors"
	"github.com/yaoapp/kun/log"
	"gopkg.in/yaml.v3"
)

const (
	// Microseconds report durations in microseconds
	Microseconds = "us"

	// Milliseconds report durations in milliseconds
	Milliseconds = "ms"
)

// Validate the option, the zero values are replaced by the defaults
func (option *Option) Validate(defaults Option) {

	if option.Iterations == 0 {
		option.Iterations = defaults.Iterations
	}

	if option.Iterations < 0 {
		log.Warn("[bench] iterations should be positive, use %d", defaults.Iterations)
		option.Iterations = defaults.Iterations
	}

	if option.Runs == 0 {
		option.Runs = defaults.Runs
	}

	if option.Runs < 0 {
		log.Warn("[bench] runs should be positive, use %d", defaults.Runs)
		option.Runs = defaults.Runs
	}

	if option.Unit == "" {
		option.Unit = defaults.Unit
	}

	if option.Unit != Microseconds && option.Unit != Milliseconds {
		log.Warn("[bench] the unit %q is not supported (us, ms), use us", option.Unit)
		option.Unit = Microseconds
	}
}

// Check the option can run a session
func (option Option) Check() error {
	if option.Iterations <= 0 {
		return errors.Errorf("%w: iterations must be positive, got %d", ErrInvalidOption, option.Iterations)
	}
	if option.Runs <= 0 {
		return errors.Errorf("%w: runs must be positive, got %d", ErrInvalidOption, option.Runs)
	}
	return nil
}

// LoadOption read a YAML file into v, the fields missing from the file keep their values
func LoadOption(file string, v interface{}) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Errorf("%w: %w", ErrSetup, err)
	}

	err = yaml.Unmarshal(data, v)
	if err != nil {
		return errors.Errorf("%w: %s %w", ErrInvalidOption, file, err)
	}
	return nil
}
