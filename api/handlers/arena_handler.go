package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	arenaservice "github.com/arcade-league/arena/app/modules/arena/application"
	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenadb "github.com/arcade-league/arena/app/modules/arena/infrastructure/repositories"
)

// ArenaHandler exposes the arena engine over HTTP.
type ArenaHandler struct {
	service arenaservice.Service
}

// NewArenaHandler creates a new ArenaHandler.
func NewArenaHandler(service arenaservice.Service) *ArenaHandler {
	return &ArenaHandler{service: service}
}

// InitializeDto represents the input data for creating a leaderboard.
type InitializeDto struct {
	EntryFee     uint64   `json:"entry_fee"`
	PrizeRatio   uint8    `json:"prize_ratio"`
	Distribution [3]uint8 `json:"distribution"`
	Policy       string   `json:"policy"`
	KeyVerified  bool     `json:"key_verified"`
	OwnerAccount string   `json:"owner_account"`
	TokenPool    string   `json:"token_pool"`
}

// Initialize creates the active leaderboard.
func (h *ArenaHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var input InitializeDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	err := h.service.Initialize(r.Context(), arenaservice.InitializeParams{
		EntryFee:     input.EntryFee,
		PrizeRatio:   input.PrizeRatio,
		Distribution: arenadomain.Distribution(input.Distribution),
		Policy:       arenadomain.PrizePolicy(input.Policy),
		KeyVerified:  input.KeyVerified,
		OwnerAccount: input.OwnerAccount,
		TokenPool:    input.TokenPool,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// SetSecretKeyDto carries the base64-encoded 32-byte secret.
type SetSecretKeyDto struct {
	Secret string `json:"secret"`
}

// SetSecretKey rotates the session-key secret.
func (h *ArenaHandler) SetSecretKey(w http.ResponseWriter, r *http.Request) {
	var input SetSecretKeyDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	raw, err := base64.StdEncoding.DecodeString(input.Secret)
	if err != nil || len(raw) != len(arenadomain.Secret{}) {
		http.Error(w, "Secret must be 32 bytes, base64 encoded", http.StatusBadRequest)
		return
	}

	var secret arenadomain.Secret
	copy(secret[:], raw)

	if err := h.service.SetSecretKey(r.Context(), secret); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// SetTokenPoolDto carries the replacement pool account.
type SetTokenPoolDto struct {
	TokenPool string `json:"token_pool"`
}

// SetTokenPool repoints the leaderboard at a new pool account.
func (h *ArenaHandler) SetTokenPool(w http.ResponseWriter, r *http.Request) {
	var input SetTokenPoolDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.service.SetTokenPool(r.Context(), input.TokenPool); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// WithdrawCommissionDto carries the withdrawal amount.
type WithdrawCommissionDto struct {
	Amount uint64 `json:"amount"`
}

// WithdrawCommission moves accumulated commission to the owner account.
func (h *ArenaHandler) WithdrawCommission(w http.ResponseWriter, r *http.Request) {
	var input WithdrawCommissionDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.service.WithdrawCommission(r.Context(), input.Amount); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// StartGameDto represents the input data for opening a session.
type StartGameDto struct {
	DisplayName string `json:"display_name"`
}

// StartGame opens a timed session for the authenticated player.
func (h *ArenaHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	playerID, ok := PlayerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing player identity", http.StatusUnauthorized)
		return
	}

	var input StartGameDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.StartGame(r.Context(), playerID, input.DisplayName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// SubmitScoreDto represents the input data for logging a score. Key is the
// base64-encoded session key, omitted when key verification is disabled.
type SubmitScoreDto struct {
	Score uint32 `json:"score"`
	Key   string `json:"key,omitempty"`
}

// SubmitScore closes the authenticated player's session with a score.
func (h *ArenaHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	playerID, ok := PlayerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing player identity", http.StatusUnauthorized)
		return
	}

	var input SubmitScoreDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	var key *arenadomain.SessionKey
	if input.Key != "" {
		raw, err := base64.StdEncoding.DecodeString(input.Key)
		if err != nil || len(raw) != len(arenadomain.SessionKey{}) {
			http.Error(w, "Key must be 32 bytes, base64 encoded", http.StatusBadRequest)
			return
		}
		key = &arenadomain.SessionKey{}
		copy(key[:], raw)
	}

	result, err := h.service.SubmitScore(r.Context(), playerID, input.Score, key)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ClaimPrize pays out the authenticated player's ranked prize.
func (h *ArenaHandler) ClaimPrize(w http.ResponseWriter, r *http.Request) {
	playerID, ok := PlayerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing player identity", http.StatusUnauthorized)
		return
	}

	result, err := h.service.ClaimPrize(r.Context(), playerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SettleRound pays the podium and resets the board for the next round.
func (h *ArenaHandler) SettleRound(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SettleRound(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AddToPrizePoolDto carries a sponsor contribution.
type AddToPrizePoolDto struct {
	Contributor string `json:"contributor"`
	Amount      uint64 `json:"amount"`
}

// AddToPrizePool credits an external contribution to the prize pool.
func (h *ArenaHandler) AddToPrizePool(w http.ResponseWriter, r *http.Request) {
	var input AddToPrizePoolDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.service.AddToPrizePool(r.Context(), input.Contributor, input.Amount); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// GetLeaderboard retrieves the active leaderboard.
func (h *ArenaHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.GetLeaderboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// GetRank retrieves the current rank for a player.
func (h *ArenaHandler) GetRank(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	rank, err := h.service.GetRank(r.Context(), playerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"rank": rank})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusForError(err))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, arenadomain.ErrInvalidConfig),
		errors.Is(err, arenadomain.ErrNameTooLong):
		return http.StatusBadRequest
	case errors.Is(err, arenadomain.ErrInvalidSessionKey):
		return http.StatusForbidden
	case errors.Is(err, arenadb.ErrNoActiveLeaderboard),
		errors.Is(err, arenadomain.ErrSessionNotStarted),
		errors.Is(err, arenadomain.ErrPlayerNotRanked):
		return http.StatusNotFound
	case errors.Is(err, arenadb.ErrLeaderboardExists),
		errors.Is(err, arenadomain.ErrSessionAlreadyActive),
		errors.Is(err, arenadomain.ErrScoreAlreadyLogged),
		errors.Is(err, arenadomain.ErrPrizeAlreadyClaimed):
		return http.StatusConflict
	case errors.Is(err, arenadomain.ErrSessionExpired):
		return http.StatusGone
	case errors.Is(err, arenadomain.ErrNotEligibleForPrize),
		errors.Is(err, arenadomain.ErrWrongPrizePolicy),
		errors.Is(err, arenadomain.ErrInsufficientCommission):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
