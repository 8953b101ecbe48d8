package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/httperr"
	"github.com/junsalon/salon-api/internal/httpresp"
)

type ContactHandler struct {
	repo domain.Repository
}

func NewContactHandler(repo domain.Repository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.repo.ListContacts(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_contacts", "Could not list contacts.")
		return
	}

	httpresp.List(c, contacts)
}

// FindByPhone resolves a contact for the operator UI before listing their
// upcoming bookings.
func (h *ContactHandler) FindByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.BadRequest(c, "missing_phone", "Phone is required.")
		return
	}

	contact, err := h.repo.FindContactByPhone(c.Request.Context(), phone)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeContactNotFound) {
			httperr.NotFound(c, httperr.CodeContactNotFound, "Contact not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_contact", "Could not load contact.")
		return
	}

	httpresp.OK(c, contact)
}
