package lifecycle

import "github.com/dmitrymomot/fieldrules/pkg/fieldrule"

// Config tunes the engine. Load it with config.Load.
type Config struct {
	FallbackMessage    string   `env:"FIELDRULES_FALLBACK_MESSAGE" envDefault:"value not in allowed set"` // FallbackMessage is reported for rules without a custom message.
	StopOnFirstFailure bool     `env:"FIELDRULES_STOP_ON_FIRST_FAILURE" envDefault:"false"`               // StopOnFirstFailure ends a run at the first rejected field.
	KnownStages        []string `env:"FIELDRULES_KNOWN_STAGES" envSeparator:","`                          // KnownStages restricts stage keys accepted by CheckRegistry; empty accepts any key.
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{FallbackMessage: fieldrule.DefaultMessage}
}
