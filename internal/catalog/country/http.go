// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package country

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giftwell/giftwell/internal/platform/middleware"
	requestutil "github.com/giftwell/giftwell/internal/platform/request"
	"github.com/giftwell/giftwell/internal/platform/respond"
	"github.com/giftwell/giftwell/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /countries route group.
//
// List and create are the public API surface; delete is admin tooling.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCountries)
	router.Post("/", handler.createCountry)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Delete("/{id}", handler.deleteCountry)
	})

	return router
}

type createCountryRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	countries, err := handler.service.ListCountries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, countries)
}

func (handler *Handler) createCountry(writer http.ResponseWriter, request *http.Request) {
	var input createCountryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.CreateCountry(request.Context(), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, record)
}

func (handler *Handler) deleteCountry(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCountry(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
