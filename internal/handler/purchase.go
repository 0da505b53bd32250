package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamebay/internal/market"
)

func (s *Server) Buy(c *gin.Context) {
	buyerID, ok := currentAccountID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	checkoutURL, err := s.market.Purchase(c.Request.Context(), uint(id), buyerID)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, checkoutURL)
	case errors.Is(err, market.ErrNotFound):
		c.String(http.StatusNotFound, "Not found")
	case errors.Is(err, market.ErrOwnListing):
		flash(c, "Cannot buy your own listing")
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, market.ErrNotAvailable):
		flash(c, "Listing is no longer available")
		c.Redirect(http.StatusSeeOther, "/")
	default:
		s.logger.Error("purchase failed", "listing_id", id, "error", err)
		flash(c, "Payment is unavailable right now, try again later")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// ConfirmPayment is where the provider sends the buyer back after
// checkout. It only shows a success message; reconciliation would need
// a verified webhook, which the provider flow here does not use.
func (s *Server) ConfirmPayment(c *gin.Context) {
	flash(c, "Payment processed! Check your email for delivery.")
	c.Redirect(http.StatusSeeOther, "/")
}
