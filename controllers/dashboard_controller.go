package controllers

import (
	"net/http"
)

// DashboardController handles the landing route
type DashboardController struct{}

// NewDashboardController creates a new dashboard controller
func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

// Index handles GET /
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/voters", http.StatusSeeOther)
}
