package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-eka-mr/internal/logger"
	"github.com/MKhiriev/go-eka-mr/internal/utils"
	"github.com/MKhiriev/go-eka-mr/models"
)

// login handles POST /connect-auth/v1/account/login.
//
// It mirrors the real service's credential exchange: a JSON body with
// client_id and client_secret, answered with a JSON body carrying
// access_token. When the mock is configured with a credential pair, only
// that exact pair is accepted; otherwise any non-empty pair passes.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if !h.credentialsAccepted(creds) {
		log.Warn().Str("client_id", creds.ClientID).Msg("login rejected")
		http.Error(w, "invalid client credentials", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWTToken(creds.ClientID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := models.AccessToken{
		Token:     token.SignedString,
		ExpiresIn: int64(h.cfg.TokenDuration.Seconds()),
	}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

func (h *Handler) credentialsAccepted(creds models.Credentials) bool {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return false
	}
	if h.cfg.Credentials.ClientID == "" {
		return true
	}
	return creds == h.cfg.Credentials
}
