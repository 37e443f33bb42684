package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bossin/grundsteuercheck/internal/calculation"
	"github.com/bossin/grundsteuercheck/internal/config"
	"github.com/bossin/grundsteuercheck/internal/domain"
	"github.com/bossin/grundsteuercheck/internal/output"
)

// Handler serves the calculation API backing the web form.
type Handler struct {
	engine   *calculation.Engine
	defaults config.Defaults
	version  string
}

// NewHandler creates the API handler.
func NewHandler(engine *calculation.Engine, defaults config.Defaults, version string) *Handler {
	return &Handler{engine: engine, defaults: defaults, version: version}
}

// calculateRequest mirrors the form: decimals travel as strings so the exact
// digits the user typed reach the parser. Empty or omitted rate and year
// fields fall back to the configured defaults; custom_value is genuinely
// optional and "0" is a present value.
type calculateRequest struct {
	AssessedValue        string  `json:"assessed_value"`
	RatePerMille         string  `json:"rate_per_mille,omitempty"`
	MunicipalRatePercent string  `json:"municipal_rate_percent,omitempty"`
	RemainingYears       *int    `json:"remaining_years,omitempty"`
	CustomValue          *string `json:"custom_value,omitempty"`
}

// calculateResponse carries the figures twice: as exact two-decimal JSON
// numbers for machine use and as German euro strings for direct display.
type calculateResponse struct {
	output.ResultDoc
	Formatted map[string]string `json:"formatted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Calculate handles POST /api/v1/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	assessment, err := h.buildAssessment(req)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	result := h.engine.Calculate(assessment)
	h.writeJSON(w, r, http.StatusOK, calculateResponse{
		ResultDoc: output.NewResultDoc(result),
		Formatted: formattedFields(assessment, result),
	})
}

// Version handles GET /api/v1/version.
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"version": h.version})
}

func (h *Handler) buildAssessment(req calculateRequest) (domain.Assessment, error) {
	assessed, err := calculation.ParseAmount("assessed_value", req.AssessedValue)
	if err != nil {
		return domain.Assessment{}, err
	}

	rate := h.defaults.RatePerMille
	if req.RatePerMille != "" {
		if rate, err = calculation.ParseRate("rate_per_mille", req.RatePerMille); err != nil {
			return domain.Assessment{}, err
		}
	}

	municipal := h.defaults.MunicipalRatePercent
	if req.MunicipalRatePercent != "" {
		if municipal, err = calculation.ParseRate("municipal_rate_percent", req.MunicipalRatePercent); err != nil {
			return domain.Assessment{}, err
		}
	}

	years := h.defaults.RemainingYears
	if req.RemainingYears != nil {
		if *req.RemainingYears < 0 {
			return domain.Assessment{}, fmt.Errorf("remaining_years must not be negative, got %d", *req.RemainingYears)
		}
		years = *req.RemainingYears
	}

	a := domain.Assessment{
		AssessedValue:        assessed,
		RatePerMille:         rate,
		MunicipalRatePercent: municipal,
		RemainingYears:       years,
	}

	if req.CustomValue != nil {
		if a.CustomValue, err = calculation.ParseOptionalAmount("custom_value", *req.CustomValue); err != nil {
			return domain.Assessment{}, err
		}
	}
	return a, nil
}

func formattedFields(a domain.Assessment, r domain.SavingsResult) map[string]string {
	formatted := map[string]string{
		"tax_current":                   output.FormatEuro(r.TaxCurrent),
		"threshold_value":               output.FormatEuro(r.ThresholdValue),
		"tax_at_threshold":              output.FormatEuro(r.TaxAtThreshold),
		"savings_per_year_at_threshold": output.FormatEuro(r.SavingsPerYearAtThreshold),
		"savings_total_at_threshold":    output.FormatEuro(r.SavingsTotalAtThreshold),
	}
	if r.HasCustomScenario() {
		formatted["custom_value"] = output.FormatEuro(*a.CustomValue)
		formatted["tax_at_custom"] = output.FormatEuro(*r.TaxAtCustom)
		formatted["savings_per_year_custom"] = output.FormatEuro(*r.SavingsPerYearCustom)
		formatted["savings_total_custom"] = output.FormatEuro(*r.SavingsTotalCustom)
	}
	return formatted
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	zerolog.Ctx(r.Context()).Warn().Err(err).Msg("request rejected")
	h.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}
