package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/brkit/pkg/brdoc"
	"github.com/dmitrymomot/brkit/pkg/i18n"
	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/sanitizer"
)

// DocumentResult is the body of GET /v1/documents/{kind}/{value}.
type DocumentResult struct {
	Kind      string `json:"kind"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
	Formatted string `json:"formatted,omitempty"`
}

// getDocument checks a single identifier. The value is the rest of the path,
// so CNPJ slashes may be sent raw or as %2F.
func (s *server) getDocument(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Locale(r.Context())
	kindParam := chi.URLParam(r, "kind")

	kind, err := brdoc.ParseKind(kindParam)
	if err != nil {
		writeError(w, http.StatusNotFound, ErrorDetail{
			Code:    CodeUnknownKind,
			Message: s.tr.T(lang, "error.unknown_kind", "kind", kindParam),
		})
		return
	}

	value, err := pathValue(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorDetail{
			Code:    CodeMalformedPath,
			Message: s.tr.T(lang, "error.malformed_path"),
		})
		return
	}

	res := DocumentResult{Kind: kind.String()}
	if err := brdoc.Check(kind, value); err != nil {
		res.Reason = brdoc.Reason(err)
		res.Message = s.tr.T(lang, "validation."+kind.String()+"."+res.Reason,
			"length", strconv.Itoa(kind.Len()))
		s.logRejection(r, kind, value, err)
		s.metrics.Document(kind.String(), res.Reason)
		writeData(w, res)
		return
	}

	res.Valid = true
	res.Formatted = format(kind, value)
	s.metrics.Document(kind.String(), "valid")
	writeData(w, res)
}

// pathValue returns the wildcard decoded exactly once. chi matches against
// RawPath when the request has one, so only then is the value still escaped;
// otherwise it was already decoded from Path and a literal '%' must survive.
func pathValue(r *http.Request) (string, error) {
	value := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

func (s *server) logRejection(r *http.Request, kind brdoc.Kind, value string, err error) {
	if errors.Is(err, brdoc.ErrUnknownKind) {
		return
	}
	s.log.DebugContext(r.Context(), "Document rejected",
		logger.DocumentKind(kind.String()),
		logger.Reason(brdoc.Reason(err)),
		logger.Value(mask(kind, value)),
	)
}

func format(kind brdoc.Kind, value string) string {
	if kind == brdoc.KindCNPJ {
		return sanitizer.FormatCNPJ(value)
	}
	return sanitizer.FormatCPF(value)
}

func mask(kind brdoc.Kind, value string) string {
	if kind == brdoc.KindCNPJ {
		return sanitizer.MaskCNPJ(value)
	}
	return sanitizer.MaskCPF(value)
}
