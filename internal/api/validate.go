package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/brkit/pkg/binder"
	"github.com/dmitrymomot/brkit/pkg/i18n"
	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/sanitizer"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

// ValidateRequest is the body of POST /v1/validate. Absent fields are not
// checked; present but blank fields are reported as required.
type ValidateRequest struct {
	CPF       *string `json:"cpf,omitempty"`
	CNPJ      *string `json:"cnpj,omitempty"`
	RG        *string `json:"rg,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Password  *string `json:"password,omitempty"`
	FullName  *string `json:"full_name,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	Email     *string `json:"email,omitempty"`
	CEP       *string `json:"cep,omitempty"`
}

// ValidateResult is the body of a successful POST /v1/validate.
type ValidateResult struct {
	Valid bool `json:"valid"`
}

const (
	maxFullNameLength = 100
	maxEmailLength    = 254
	maxPasswordLength = 72
)

type formField struct {
	name  string
	value *string
	rules func(field, value string) []validator.Rule
	// mask renders a value safe to log; nil means the value is never logged.
	mask func(string) string
}

func (req ValidateRequest) fields() []formField {
	keep := func(n int) func(string) string {
		return func(v string) string { return sanitizer.MaskString(v, n) }
	}
	return []formField{
		{"cpf", req.CPF, func(f, v string) []validator.Rule {
			return []validator.Rule{validator.ValidCPF(f, v)}
		}, sanitizer.MaskCPF},
		{"cnpj", req.CNPJ, func(f, v string) []validator.Rule {
			return []validator.Rule{validator.ValidCNPJ(f, v)}
		}, sanitizer.MaskCNPJ},
		{"rg", req.RG, func(f, v string) []validator.Rule {
			return []validator.Rule{validator.ValidRG(f, v)}
		}, keep(1)},
		{"phone", req.Phone, func(f, v string) []validator.Rule {
			return []validator.Rule{validator.ValidPhoneBR(f, v)}
		}, keep(2)},
		{"password", req.Password, func(f, v string) []validator.Rule {
			return []validator.Rule{validator.MaxLen(f, v, maxPasswordLength), validator.ValidPassword(f, v)}
		}, nil},
		{"full_name", req.FullName, func(f, v string) []validator.Rule {
			return []validator.Rule{validator.MaxLen(f, v, maxFullNameLength), validator.ValidFullName(f, v)}
		}, keep(1)},
		{"birth_date", req.BirthDate, func(f, v string) []validator.Rule {
			return []validator.Rule{validator.ValidDate(f, v)}
		}, keep(0)},
		{"email", req.Email, func(f, v string) []validator.Rule {
			return []validator.Rule{validator.MaxLen(f, v, maxEmailLength), validator.ValidEmail(f, v)}
		}, keep(2)},
		{"cep", req.CEP, func(f, v string) []validator.Rule {
			return []validator.Rule{validator.ValidCEP(f, v)}
		}, keep(2)},
	}
}

// Rules builds the rule set for the present fields. Values other than the
// password go through sanitizer.Input first.
func (req ValidateRequest) Rules() []validator.Rule {
	var rules []validator.Rule
	for _, f := range req.fields() {
		if f.value == nil {
			continue
		}
		v := *f.value
		if f.mask != nil {
			v = sanitizer.Input(v)
		}
		if strings.TrimSpace(v) == "" {
			rules = append(rules, validator.Required(f.name, v))
			continue
		}
		rules = append(rules, f.rules(f.name, v)...)
	}
	return rules
}

func (s *server) validate(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Locale(r.Context())

	var req ValidateRequest
	if err := s.bindJSON(r, &req); err != nil {
		s.log.DebugContext(r.Context(), "Malformed validation request", logger.Error(err))
		s.writeBindError(w, lang, err)
		return
	}

	err := validator.Apply(req.Rules()...)
	if err == nil {
		s.metrics.Form("valid")
		writeData(w, ValidateResult{Valid: true})
		return
	}

	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		s.log.ErrorContext(r.Context(), "Validation failed unexpectedly", logger.Error(err))
		writeError(w, http.StatusInternalServerError, ErrorDetail{Code: "internal_error"})
		return
	}

	s.logRejections(r, req, verrs)
	s.metrics.Form("invalid", verrs.Fields()...)
	writeError(w, http.StatusUnprocessableEntity, ErrorDetail{
		Code:    CodeValidationFailed,
		Message: s.tr.T(lang, "error.validation_failed"),
		Details: verrs.Messages(s.tr, lang),
	})
}

func (s *server) logRejections(r *http.Request, req ValidateRequest, verrs validator.ValidationErrors) {
	for _, f := range req.fields() {
		if f.value == nil || !verrs.Has(f.name) {
			continue
		}
		attrs := []any{logger.Field(f.name)}
		for _, e := range verrs {
			if e.Field == f.name {
				attrs = append(attrs, logger.Reason(e.TranslationKey))
				break
			}
		}
		if f.mask != nil {
			attrs = append(attrs, logger.Value(f.mask(sanitizer.Input(*f.value))))
		}
		s.log.DebugContext(r.Context(), "Field rejected", attrs...)
	}
}

func (s *server) writeBindError(w http.ResponseWriter, lang string, err error) {
	switch {
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		writeError(w, http.StatusUnsupportedMediaType, ErrorDetail{
			Code:    CodeUnsupportedMediaType,
			Message: s.tr.T(lang, "error.unsupported_media_type"),
		})
	case errors.Is(err, binder.ErrRequestTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, ErrorDetail{
			Code:    CodeRequestTooLarge,
			Message: s.tr.T(lang, "error.request_too_large"),
		})
	default:
		writeError(w, http.StatusBadRequest, ErrorDetail{
			Code:    CodeBadRequest,
			Message: s.tr.T(lang, "error.bad_request"),
		})
	}
}
