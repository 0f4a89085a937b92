package v1handler

import (
	"io"
	"net/http"
	"strconv"

	"domainsuggest/internal/suggester"
	"domainsuggest/pkg/domain"
	"domainsuggest/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// MaxBodyBytes bounds the size of request bodies.
const MaxBodyBytes = 64 << 10

// Routes registers the v1 endpoints on mux. Paths are absolute.
func (h *Handler) Routes(mux *http.ServeMux, sec *SecHandler) {
	route := func(pattern string, required, authed bool, fn http.HandlerFunc) {
		if authed {
			fn = h.authenticate(sec, required, fn)
		}
		mux.HandleFunc(pattern, h.metrics.Instrument(pattern, fn))
	}

	route("POST /v1/domains/suggestions", false, true, h.Suggest)
	route("GET /v1/domains/demo", false, false, h.Demo)
	route("GET /v1/domains/pricing", false, false, h.Pricing)
	route("GET /v1/suggestions", true, true, h.ListSuggestions)
	route("GET /v1/suggestions/{id}", true, true, h.GetSuggestion)
	route("DELETE /v1/suggestions/{id}", true, true, h.DeleteSuggestion)
	route("GET /v1/usage", true, true, h.Usage)
}

// writeError renders err as an error response.
func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) { encodeError(e, res.Response) })
}

// Suggest runs the production pathway. Authenticated runs are stored.
func (h Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", maxErr.Limit))

			return
		}
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	applicant, err := DecodeApplicant(data)
	if err != nil {
		h.writeSuggestError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	var userID *domain.UserID
	if id, ok := UserIDFromContext(ctx); ok {
		userID = &id
	}

	res, err := h.deps.Suggester.Suggest(ctx, userID, applicant)
	if err != nil {
		h.writeSuggestError(w, r, err)

		return
	}
	h.metrics.Suggested(ctx, PathwayProduction, res.SuggestionSet)

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeSuggestion(e, *res) })
}

// ExampleApplicant is the sample request body returned with input errors.
var ExampleApplicant = domain.Applicant{ //nolint: gochecknoglobals
	Name:          "Sarah Johnson",
	TargetCompany: "Google",
	TargetRole:    "Product Manager",
}

// writeSuggestError adds a sample request body to input errors of Suggest.
func (h Handler) writeSuggestError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	if res.StatusCode == http.StatusBadRequest {
		example := ExampleApplicant
		res.Response.Example = &example
	}
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) { encodeError(e, res.Response) })
}

func (h Handler) Demo(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Suggester.Demo(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	h.metrics.Suggested(r.Context(), PathwayDemo, res.SuggestionSet)

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeDemo(e, res) })
}

// Pricing quotes the repeated domain query parameter, or the sample domains.
func (h Handler) Pricing(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Suggester.PricingReport(r.Context(), r.URL.Query()["domain"])
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodePricingReport(e, res) })
}

func (h Handler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var limit uint64
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.ParseUint(v, 10, 32)
		if err != nil || limit == 0 {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer"))

			return
		}
	}

	items, next, err := h.deps.Suggester.UserSuggestions(r.Context(), userID, r.URL.Query().Get("cursor"), uint(limit))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeSuggestionList(e, items, next) })
}

func (h Handler) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	userID, id, err := h.suggestionParams(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Suggester.Result(r.Context(), userID, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeSuggestion(e, *res) })
}

func (h Handler) DeleteSuggestion(w http.ResponseWriter, r *http.Request) {
	userID, id, err := h.suggestionParams(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Suggester.Delete(r.Context(), userID, id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) suggestionParams(r *http.Request) (domain.UserID, domain.SuggestionID, error) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		return domain.UserID{}, domain.SuggestionID{}, err
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.UserID{}, domain.SuggestionID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid suggestion id")
	}

	return userID, domain.SuggestionID(id), nil
}

// Usage totals the caller's ledger over the days query parameter.
func (h Handler) Usage(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	days := suggester.DefaultUsageDays
	if v := r.URL.Query().Get("days"); v != "" {
		days, err = strconv.Atoi(v)
		if err != nil || days <= 0 {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "days must be a positive integer"))

			return
		}
	}

	res, err := h.deps.Suggester.Usage(r.Context(), userID, days)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeUsage(e, res, days) })
}
