package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/optio/loyalty-rewards/pkg/api"
	"github.com/optio/loyalty-rewards/pkg/loyalty"
	"github.com/optio/loyalty-rewards/pkg/mapping"
	"github.com/optio/loyalty-rewards/pkg/models"
	"github.com/optio/loyalty-rewards/pkg/storage"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ApiHandler implements the generated server interface.
// It holds the loyalty core as its only dependency.
type ApiHandler struct {
	Rewards loyalty.Rewards
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(rewards loyalty.Rewards) *ApiHandler {
	return &ApiHandler{Rewards: rewards}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// writeJSON encodes the payload with the given status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: failed to write response: %v", err)
	}
}

// writeError maps domain errors to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrInsufficientPoints):
		http.Error(w, "Insufficient points", http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrInsufficientStock):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrVoucherUnavailable):
		http.Error(w, err.Error(), http.StatusGone)
	case errors.Is(err, storage.ErrVoucherNotFound),
		errors.Is(err, storage.ErrLedgerNotFound),
		errors.Is(err, storage.ErrTierStateNotFound),
		errors.Is(err, storage.ErrRedemptionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("ERROR: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// GetUserProfile returns the user's points balance, tier state and progress.
func (h *ApiHandler) GetUserProfile(w http.ResponseWriter, r *http.Request, userId string) {
	profile, err := h.Rewards.Profile(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiProfile(profile))
}

// RecordDailyLogin awards the daily login bonus, at most once per day.
func (h *ApiHandler) RecordDailyLogin(w http.ResponseWriter, r *http.Request, userId string) {
	activity, awarded, err := h.Rewards.RecordDailyLogin(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}

	result := api.DailyLoginResult{Awarded: awarded}
	if activity != nil {
		result.Activity = mapping.ToApiActivity(activity)
	}
	writeJSON(w, http.StatusOK, result)
}

// RecordUserActivity appends an earning activity for the user.
func (h *ApiHandler) RecordUserActivity(w http.ResponseWriter, r *http.Request, userId string) {
	var newActivity api.NewActivity
	if err := json.NewDecoder(r.Body).Decode(&newActivity); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newActivity.PointsEarned < 0 {
		http.Error(w, "points_earned must be non-negative", http.StatusBadRequest)
		return
	}

	description := ""
	if newActivity.Description != nil {
		description = *newActivity.Description
	}

	activity, err := h.Rewards.RecordActivity(r.Context(), userId, models.ActivityType(newActivity.ActivityType), newActivity.PointsEarned, description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapping.ToApiActivity(activity))
}

// ListUserActivities returns the user's activity log, newest first.
func (h *ApiHandler) ListUserActivities(w http.ResponseWriter, r *http.Request, userId string) {
	activities, err := h.Rewards.ListActivities(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiActivities(activities))
}

// ListTiers returns the tier catalog.
func (h *ApiHandler) ListTiers(w http.ResponseWriter, r *http.Request) {
	defs, err := h.Rewards.ListTiers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiRewardTiers(defs))
}

// ListVouchers returns the active voucher catalog.
func (h *ApiHandler) ListVouchers(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.Rewards.ListVouchers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiVouchers(vouchers))
}

// GetVoucherById returns a single voucher.
func (h *ApiHandler) GetVoucherById(w http.ResponseWriter, r *http.Request, voucherId openapi_types.UUID) {
	voucher, err := h.Rewards.GetVoucher(r.Context(), voucherId.String())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiVoucher(voucher))
}

// RedeemVoucher exchanges points for a voucher.
func (h *ApiHandler) RedeemVoucher(w http.ResponseWriter, r *http.Request, userId string) {
	var newRedemption api.NewRedemption
	if err := json.NewDecoder(r.Body).Decode(&newRedemption); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newRedemption.Quantity <= 0 {
		http.Error(w, "quantity must be positive", http.StatusBadRequest)
		return
	}

	redemption, err := h.Rewards.Redeem(r.Context(), userId, newRedemption.VoucherId.String(), newRedemption.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapping.ToApiRedemption(redemption))
}

// CheckoutCart redeems a whole cart in one atomic commit.
func (h *ApiHandler) CheckoutCart(w http.ResponseWriter, r *http.Request, userId string) {
	var checkout api.CartCheckout
	if err := json.NewDecoder(r.Body).Decode(&checkout); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if len(checkout.Items) == 0 {
		http.Error(w, "cart is empty", http.StatusBadRequest)
		return
	}

	redemptions, err := h.Rewards.Checkout(r.Context(), userId, mapping.ToDomainCartItems(&checkout))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapping.ToApiRedemptions(redemptions))
}

// ListUserRedemptions returns the user's redemption history, newest first.
func (h *ApiHandler) ListUserRedemptions(w http.ResponseWriter, r *http.Request, userId string) {
	redemptions, err := h.Rewards.ListRedemptions(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiRedemptions(redemptions))
}

// GetRedemptionById returns a single redemption.
func (h *ApiHandler) GetRedemptionById(w http.ResponseWriter, r *http.Request, redemptionId openapi_types.UUID) {
	redemption, err := h.Rewards.GetRedemption(r.Context(), redemptionId.String())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiRedemption(redemption))
}
