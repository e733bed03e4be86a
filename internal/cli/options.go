package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Usage is printed after an argument error.
const Usage = "usage: singlelink FILE [N]"

// LogLevelEnv names the environment variable holding the log level.
const LogLevelEnv = "SINGLELINK_LOG_LEVEL"

// DefaultLogLevel keeps the report on stdout free of engine chatter on
// stderr unless asked for.
const DefaultLogLevel = "warn"

// Argument failure kinds.
var (
	ErrUsage      = errors.New("invalid number of arguments")
	ErrNotInteger = errors.New("cluster count is not an integer")
	ErrNegative   = errors.New("cluster count is negative")
	ErrZero       = errors.New("cluster count is zero")
)

var validate = validator.New()

// Options is the configuration of one run, built once from the command
// line and the environment.
type Options struct {
	InputPath      string `validate:"required"`
	TargetClusters int    `validate:"gte=1"`
	LogLevel       string `validate:"oneof=debug info warn error"`
}

// Parse builds Options from the arguments following the program name and
// from getenv. The first argument is the input file; the optional second
// one is the target cluster count, 1 when omitted.
func Parse(args []string, getenv func(string) string) (Options, error) {
	if len(args) < 1 || len(args) > 2 {
		return Options{}, fmt.Errorf("%w: got %d, want 1 or 2", ErrUsage, len(args))
	}

	opts := Options{
		InputPath:      args[0],
		TargetClusters: 1,
		LogLevel:       DefaultLogLevel,
	}
	if len(args) == 2 {
		n, err := parseCount(args[1])
		if err != nil {
			return Options{}, err
		}
		opts.TargetClusters = n
	}
	if getenv != nil {
		if lvl := strings.TrimSpace(getenv(LogLevelEnv)); lvl != "" {
			opts.LogLevel = strings.ToLower(lvl)
		}
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks opts against its struct tags.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// parseCount accepts any spelling whose numeric value is a whole number,
// so "3" and "3.0" are both 3.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
		}
		n = int(f)
	}
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: %d", ErrNegative, n)
	case n == 0:
		return 0, ErrZero
	}
	return n, nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
