// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package brand

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giftwell/giftwell/internal/platform/middleware"
	requestutil "github.com/giftwell/giftwell/internal/platform/request"
	"github.com/giftwell/giftwell/internal/platform/respond"
	"github.com/giftwell/giftwell/internal/platform/sec"
	"github.com/giftwell/giftwell/pkg/jsonopt"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /brands route group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listBrands)
	router.Post("/", handler.createBrand)
	router.Get("/{id}", handler.getBrand)
	router.Get("/by-slug/{slug}", handler.getBrandBySlug)
	router.Patch("/{id}", handler.updateBrand)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Delete("/{id}", handler.deleteBrand)
	})

	return router
}

type createBrandRequest struct {
	Name string `json:"name"`
	Est  *int   `json:"est"`
}

type updateBrandRequest struct {
	Name *string               `json:"name"`
	Est  jsonopt.Optional[int] `json:"est"`
}

func (handler *Handler) listBrands(writer http.ResponseWriter, request *http.Request) {
	brands, err := handler.service.ListBrands(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, brands)
}

func (handler *Handler) getBrand(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.GetBrand(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) getBrandBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	record, err := handler.service.GetBrandBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) createBrand(writer http.ResponseWriter, request *http.Request) {
	var input createBrandRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.CreateBrand(request.Context(), CreateBrandInput{
		Name: input.Name,
		Est:  input.Est,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, record)
}

func (handler *Handler) updateBrand(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateBrandRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.UpdateBrand(request.Context(), id, UpdateBrandInput{
		Name:   input.Name,
		Est:    input.Est.Value,
		EstSet: input.Est.Set,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) deleteBrand(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBrand(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
