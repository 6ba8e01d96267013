package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/dmitrymomot/fieldrules/pkg/fieldrule"
	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/schema"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Engine evaluates registered field rules against records at named
// lifecycle stages. It keeps no per-call state and is safe for concurrent use.
type Engine struct {
	registry *schema.Registry
	cfg      Config
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConfig replaces the engine configuration. An empty fallback message
// keeps fieldrule.DefaultMessage. Known stages are trimmed and blank entries
// dropped.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		if cfg.FallbackMessage == "" {
			cfg.FallbackMessage = fieldrule.DefaultMessage
		}
		cfg.KnownStages = normalizeStages(cfg.KnownStages)
		e.cfg = cfg
	}
}

func normalizeStages(stages []string) []string {
	if len(stages) == 0 {
		return nil
	}
	out := make([]string, 0, len(stages))
	for _, s := range stages {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// WithFallbackMessage sets the message for rules without one.
func WithFallbackMessage(msg string) Option {
	return func(e *Engine) {
		if msg != "" {
			e.cfg.FallbackMessage = msg
		}
	}
}

// NewEngine creates an engine over registry, or the process-wide registry
// when nil.
func NewEngine(registry *schema.Registry, opts ...Option) *Engine {
	if registry == nil {
		registry = schema.Default()
	}

	e := &Engine{
		registry: registry,
		cfg:      DefaultConfig(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.logger = e.logger.With(logger.Component("lifecycle"))
	return e
}

// Validate checks rec against the rules of entity declared for stage. Fields
// the record does not set are skipped. A rejected value yields a
// *ValidationFailure.
func (e *Engine) Validate(ctx context.Context, entity string, stage fieldrule.Stage, rec Record) error {
	return e.run(ctx, entity, rec, stage)
}

// BeforeSave runs the save hook: rules declared for "save" plus "create" for
// new records or "update" for stored ones.
func (e *Engine) BeforeSave(ctx context.Context, entity string, rec Record, isNew bool) error {
	next := fieldrule.StageUpdate
	if isNew {
		next = fieldrule.StageCreate
	}
	return e.run(ctx, entity, rec, fieldrule.StageSave, next)
}

func (e *Engine) run(ctx context.Context, entity string, rec Record, stages ...fieldrule.Stage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec == nil {
		return ErrNilRecord
	}
	if f, ok := rec.(RecordFunc); ok && f == nil {
		return ErrNilRecord
	}

	ent, ok := e.registry.Lookup(entity)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	var (
		failed fieldrule.Stage
		errs   validator.ValidationErrors
	)
	for _, stage := range stages {
		stageErrs := e.collect(ctx, ent, stage, rec)
		if stageErrs.IsEmpty() {
			continue
		}
		if failed == "" {
			failed = stage
		}
		errs = append(errs, stageErrs...)
		if e.cfg.StopOnFirstFailure {
			break
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	e.logger.DebugContext(ctx, "field rules rejected record",
		logger.Entity(entity),
		logger.Stage(failed.String()),
		logger.Fields(errs.Fields()),
	)
	return &ValidationFailure{Entity: entity, Stage: failed, Errors: errs}
}

func (e *Engine) collect(ctx context.Context, ent schema.Entity, stage fieldrule.Stage, rec Record) validator.ValidationErrors {
	bound := ent.RulesAt(stage)
	rules := make([]validator.Rule, 0, len(bound))
	for _, b := range bound {
		value, ok := rec.FieldValue(b.Field)
		if !ok {
			continue
		}
		rules = append(rules, b.Rule.RuleWithFallback(b.Field, value, e.cfg.FallbackMessage))
	}

	var err error
	if e.cfg.StopOnFirstFailure {
		err = validator.ApplyFirst(rules...)
	} else {
		err = validator.Apply(rules...)
	}
	errs := validator.ExtractValidationErrors(err)
	for _, ve := range errs {
		e.logger.DebugContext(ctx, "field value rejected",
			logger.Entity(ent.Name),
			logger.Field(ve.Field),
			logger.Stage(stage.String()),
		)
	}
	return errs
}

// CheckRegistry verifies that every registered rule names a configured stage.
// Without KnownStages any stage key is accepted.
func (e *Engine) CheckRegistry() error {
	if len(e.cfg.KnownStages) == 0 {
		return nil
	}

	var merr *multierror.Error
	for _, name := range e.registry.Entities() {
		ent, _ := e.registry.Lookup(name)
		for _, f := range ent.Fields {
			for _, r := range f.Rules {
				if slices.Contains(e.cfg.KnownStages, r.Stage().String()) {
					continue
				}
				merr = multierror.Append(merr, fieldrule.NewDeclarationError(
					name+"."+f.Name, fmt.Errorf("%w: %q", ErrUnknownStage, r.Stage())))
			}
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		e.logger.Error("schema names unknown lifecycle stages", logger.Error(err))
		return err
	}
	return nil
}
