package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vaultpass/passgen/internal/metrics"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/password"
)

const (
	DefaultLength   = 16
	DefaultMaxCount = 50
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrCountOutOfRange = errors.New("count out of range")
)

// GeneratorOptions configures a GeneratorService. Zero values fall back to
// defaults: a secure random source, 16 characters and at most 50 passwords.
type GeneratorOptions struct {
	Source        password.Source
	Metrics       *metrics.Metrics
	DefaultLength int
	MaxCount      int
}

// GeneratorService handles password generation and strength evaluation.
type GeneratorService struct {
	source        password.Source
	metrics       *metrics.Metrics
	validate      *validator.Validate
	defaultLength int
	maxCount      int
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(opts GeneratorOptions) *GeneratorService {
	s := &GeneratorService{
		source:        opts.Source,
		metrics:       opts.Metrics,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		defaultLength: opts.DefaultLength,
		maxCount:      opts.MaxCount,
	}
	if s.source == nil {
		s.source = password.SecureSource()
	}
	if s.defaultLength <= 0 {
		s.defaultLength = DefaultLength
	}
	if s.maxCount <= 0 {
		s.maxCount = DefaultMaxCount
	}
	return s
}

// Selection maps the request's class flags to a selection. Missing flags
// default to enabled.
func Selection(req model.GenerateRequest) password.Selection {
	var sel password.Selection
	flags := []struct {
		value *bool
		class password.Class
	}{
		{req.Uppercase, password.Uppercase},
		{req.Lowercase, password.Lowercase},
		{req.Numbers, password.Digit},
		{req.Symbols, password.Symbol},
	}
	for _, f := range flags {
		if boolOrDefault(f.value, true) {
			sel = sel.With(f.class)
		}
	}
	return sel
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := s.check(req); err != nil {
		s.metrics.ObserveFailure("invalid_request")
		return model.GenerateResponse{}, err
	}

	length := req.Length
	if length == 0 {
		length = s.defaultLength
	}
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count > s.maxCount {
		s.metrics.ObserveFailure("count_out_of_range")
		return model.GenerateResponse{}, fmt.Errorf("%w: at most %d passwords per request", ErrCountOutOfRange, s.maxCount)
	}

	sel := Selection(req)
	passwords := make([]model.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		pw, err := password.Generate(length, sel, s.source)
		if err != nil {
			s.metrics.ObserveFailure(failureReason(err))
			return model.GenerateResponse{}, err
		}

		tier := password.Score(pw)
		s.metrics.ObserveGenerated(tier.String(), length)
		passwords = append(passwords, model.GeneratedPassword{
			Password: pw,
			Length:   len(pw),
			Strength: summarize(tier),
		})
	}

	slog.Debug("passwords generated", "count", count, "length", length, "classes", sel.String())

	classes := make([]string, 0, sel.Len())
	for _, c := range sel.Classes() {
		classes = append(classes, c.String())
	}

	first := passwords[0]
	return model.GenerateResponse{
		Password:  first.Password,
		Length:    first.Length,
		Strength:  first.Strength,
		Classes:   classes,
		Passwords: passwords,
	}, nil
}

// Evaluate rates an arbitrary password.
func (s *GeneratorService) Evaluate(req model.StrengthRequest) (model.StrengthResponse, error) {
	if err := s.check(req); err != nil {
		return model.StrengthResponse{}, err
	}

	a := password.Analyze(req.Password)
	est := password.EstimateStrength(req.Password)
	s.metrics.ObserveStrength(a.Tier.String())

	return model.StrengthResponse{
		StrengthSummary: summarize(a.Tier),
		Length:          a.Length,
		LengthScore:     a.LengthScore,
		Diversity:       a.Diversity,
		TotalScore:      a.TotalScore,
		Classes: model.ClassPresence{
			Uppercase: a.HasUpper,
			Lowercase: a.HasLower,
			Digit:     a.HasDigit,
			Symbol:    a.HasOther,
		},
		Estimate: model.EstimateResponse{
			Score:       est.Score,
			EntropyBits: est.EntropyBits,
			CrackTime:   est.CrackTime,
		},
	}, nil
}

// Classes lists the available character classes in alphabet order.
func (s *GeneratorService) Classes() []model.ClassInfo {
	all := password.AllClasses()
	out := make([]model.ClassInfo, 0, len(all))
	for _, c := range all {
		out = append(out, model.ClassInfo{
			Name:     c.String(),
			Alphabet: c.Alphabet(),
			Size:     len(c.Alphabet()),
		})
	}
	return out
}

// IsValidationError reports whether err was caused by bad caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrCountOutOfRange) ||
		errors.Is(err, password.ErrInvalidSelection) ||
		errors.Is(err, password.ErrLengthOutOfRange) ||
		errors.Is(err, password.ErrLengthInsufficient)
}

// check runs struct validation and flattens the field errors.
func (s *GeneratorService) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, password.ErrInvalidSelection):
		return "invalid_selection"
	case errors.Is(err, password.ErrLengthOutOfRange):
		return "length_out_of_range"
	case errors.Is(err, password.ErrLengthInsufficient):
		return "length_insufficient"
	}
	return "internal"
}

func summarize(t password.Tier) model.StrengthSummary {
	return model.StrengthSummary{
		Tier:      t.String(),
		Label:     t.Label(),
		MinLength: t.MinLength(),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
