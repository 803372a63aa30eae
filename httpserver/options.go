package httpserver

import (
	"addressbook/contact"

	"go.uber.org/zap"
)

type Options func(s *Server)

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) {
		s.Logger = l
	}
}

func WithContactService(svc contact.Service) Options {
	return func(s *Server) {
		s.ContactService = svc
	}
}
