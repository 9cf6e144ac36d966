package handler

import (
	"net/http"
)

type GetOptionsResponse struct {
	Currencies []string `json:"currencies" example:"AZN,TRY,USD"`
	Karats     []int    `json:"karats" example:"24,22,18,14"`
}

// GetOptions godoc
// @Summary List conversion options
// @Description Retrieve the supported target currencies and gold purities
// @Tags Options
// @Produce json
// @Success 200 {object} GetOptionsResponse
// @Router /options [get]
func (h *Handler) GetOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetOptionsResponse{
		Currencies: h.validator.SupportedCurrencies(),
		Karats:     h.validator.SupportedKarats(),
	})
}
