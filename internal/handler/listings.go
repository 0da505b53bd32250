package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamebay/internal/market"
)

func (s *Server) Index(c *gin.Context) {
	items, err := s.market.ActiveListings(c.Request.Context())
	if err != nil {
		s.logger.Error("list active listings failed", "error", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.HTML(http.StatusOK, "list.tmpl", withView(c, ViewData{"Items": items}))
}

func (s *Server) ListingsJSON(c *gin.Context) {
	items, err := s.market.ActiveListings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) AddListingForm(c *gin.Context) {
	c.HTML(http.StatusOK, "listing_form.tmpl", withView(c, nil))
}

func (s *Server) AddListing(c *gin.Context) {
	sellerID, ok := currentAccountID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	in := market.NewListing{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Game:        c.PostForm("game"),
	}

	// validate before the upload so a rejected form never leaves an
	// orphaned file in the upload dir
	if _, err := in.Validate(); err != nil {
		c.HTML(http.StatusBadRequest, "listing_form.tmpl", withView(c, ViewData{
			"Error": err.Error(),
			"Form":  formData(in),
		}))
		return
	}

	imgPath, err := s.saveUploadedImage(c, "image")
	if err != nil {
		c.HTML(http.StatusBadRequest, "listing_form.tmpl", withView(c, ViewData{
			"Error": err.Error(),
			"Form":  formData(in),
		}))
		return
	}
	in.ImagePath = imgPath

	if _, err := s.market.CreateListing(c.Request.Context(), sellerID, in); err != nil {
		if errors.Is(err, market.ErrInvalidInput) {
			c.HTML(http.StatusBadRequest, "listing_form.tmpl", withView(c, ViewData{
				"Error": err.Error(),
				"Form":  formData(in),
			}))
			return
		}
		s.logger.Error("create listing failed", "error", err)
		c.HTML(http.StatusInternalServerError, "listing_form.tmpl", withView(c, ViewData{
			"Error": "Something went wrong, try again",
			"Form":  formData(in),
		}))
		return
	}

	flash(c, "Listing added!")
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) Profile(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	items, err := s.market.SellerListings(c.Request.Context(), accountID)
	if err != nil {
		s.logger.Error("list seller listings failed", "error", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.HTML(http.StatusOK, "profile.tmpl", withView(c, ViewData{"Items": items}))
}

func formData(in market.NewListing) ViewData {
	return ViewData{
		"Title":       in.Title,
		"Description": in.Description,
		"Price":       in.Price,
		"Game":        in.Game,
	}
}
