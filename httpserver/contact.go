package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterContactRoutes(g *echo.Group) {
	g.GET("", s.handleListContacts)
	g.GET("/:id", s.handleGetContact)
	g.POST("", s.handleAddContact)
	g.PUT("/:id", s.handleUpdateContact)
	g.DELETE("/:id", s.handleDeleteContact)
}

// handleListContacts lists every contact, or those matching ?search=.
func (s *Server) handleListContacts(c echo.Context) error {
	contacts, err := s.ContactService.SearchContacts(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, contacts, len(contacts))
}

func (s *Server) handleGetContact(c echo.Context) error {
	id, err := contactID(c)
	if err != nil {
		return err
	}

	ct, err := s.ContactService.GetContact(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, ct)
}

func (s *Server) handleAddContact(c echo.Context) error {
	p, err := bindPayload(c)
	if err != nil {
		return err
	}

	ct, err := s.ContactService.AddContact(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return writeMessage(c, http.StatusCreated, "contact created", ct)
}

func (s *Server) handleUpdateContact(c echo.Context) error {
	id, err := contactID(c)
	if err != nil {
		return err
	}

	p, err := bindPayload(c)
	if err != nil {
		return err
	}

	ct, err := s.ContactService.UpdateContact(c.Request().Context(), id, p)
	if err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "contact updated", ct)
}

func (s *Server) handleDeleteContact(c echo.Context) error {
	id, err := contactID(c)
	if err != nil {
		return err
	}

	if err := s.ContactService.DeleteContact(c.Request().Context(), id); err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "contact deleted", map[string]int64{"id": id})
}
