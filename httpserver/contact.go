package httpserver

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"contacthub/contact"
	"contacthub/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterContactRoutes() {
	s.Router.GET("/api/contacts", s.handleListContacts)
	s.Router.POST("/api/contacts", s.handleAddContact)
	s.Router.PUT("/api/contacts/:id", s.handleUpdateContact)
	s.Router.DELETE("/api/contacts/:id", s.handleDeleteContact)
	s.Router.PUT("/api/contacts/:id/favorite", s.handleSetFavorite)
	s.Router.GET("/api/contacts/export", s.handleExportContacts)
}

// handleListContacts godoc
// @Summary List Contacts
// @Description Get all contacts, newest first, optionally filtered
// @Tags contacts
// @Produce json
// @Param search query string false "Case-insensitive substring over name, email, company"
// @Param category query string false "work | personal | family | other | all"
// @Param favorites query bool false "Only favorite contacts"
// @Success 200 {array} contact.Contact
// @Failure 400 {object} map[string]string
// @Router /api/contacts [get]
func (s *Server) handleListContacts(c echo.Context) error {
	filter, err := contactFilter(c)
	if err != nil {
		return err
	}

	contacts, err := s.ContactService.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, filter.Apply(contacts))
}

// handleAddContact godoc
// @Summary Create Contact
// @Description Add a new contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "Contact Data"
// @Success 201 {object} contact.Contact
// @Failure 400 {object} map[string]string
// @Router /api/contacts [post]
func (s *Server) handleAddContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.ContactService.AddContact(c.Request().Context(), req.ToFields())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, created)
}

// handleUpdateContact replaces all mutable fields of one contact.
func (s *Server) handleUpdateContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.ContactService.UpdateContact(c.Request().Context(), c.Param("id"), req.ToFields())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, updated)
}

func (s *Server) handleDeleteContact(c echo.Context) error {
	if err := s.ContactService.DeleteContact(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "deleted",
	})
}

// handleSetFavorite writes an explicit favorite value rather than flipping
// server-side, so a stale client cannot accidentally undo a newer write.
func (s *Server) handleSetFavorite(c echo.Context) error {
	var req SetFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.ContactService.SetFavorite(c.Request().Context(), c.Param("id"), *req.IsFavorite)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, updated)
}

// handleExportContacts godoc
// @Summary Export Contacts
// @Description Download the full contact set as CSV or XLSX
// @Tags contacts
// @Produce text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Success 200
// @Failure 400 {object} map[string]string
// @Router /api/contacts/export [get]
func (s *Server) handleExportContacts(c echo.Context) error {
	contacts, err := s.ContactService.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format := strings.ToLower(c.QueryParam("format")); format {
	case "", "csv":
		if err := contact.WriteCSV(&buf, contacts); err != nil {
			return err
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="contacts.csv"`)
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	case "xlsx":
		if err := contact.WriteXLSX(&buf, contacts); err != nil {
			return err
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="contacts.xlsx"`)
		return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		return errs.Errorf(errs.EINVALID, "unsupported export format %q", format)
	}
}

func contactFilter(c echo.Context) (contact.Filter, error) {
	f := contact.Filter{Search: c.QueryParam("search")}

	if raw := strings.TrimSpace(c.QueryParam("category")); raw != "" && !strings.EqualFold(raw, string(contact.CategoryAll)) {
		category, err := contact.ParseCategory(raw)
		if err != nil {
			return contact.Filter{}, err
		}
		f.Category = category
	}

	if raw := strings.TrimSpace(c.QueryParam("favorites")); raw != "" {
		favorites, err := strconv.ParseBool(raw)
		if err != nil {
			return contact.Filter{}, errs.Errorf(errs.EINVALID, "invalid favorites flag %q", raw)
		}
		f.FavoritesOnly = favorites
	}

	return f, nil
}
