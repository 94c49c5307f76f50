// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package gift

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giftwell/giftwell/internal/platform/middleware"
	requestutil "github.com/giftwell/giftwell/internal/platform/request"
	"github.com/giftwell/giftwell/internal/platform/respond"
	"github.com/giftwell/giftwell/internal/platform/sec"
	"github.com/giftwell/giftwell/pkg/jsonopt"
	"github.com/giftwell/giftwell/pkg/pagination"
	"github.com/giftwell/giftwell/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /gifts route group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listGifts)
	router.Post("/", handler.createGift)
	router.Get("/{id}", handler.getGift)
	router.Patch("/{id}", handler.updateGift)
	router.Get("/{id}/categories", handler.listGiftCategories)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Delete("/{id}", handler.deleteGift)
	})

	return router
}

type createGiftRequest struct {
	Name        string `json:"name"`
	Ref         string `json:"ref"`
	BrandID     *int   `json:"brand_id"`
	Description string `json:"description"`
	MadeInID    *int   `json:"made_in_id"`
	CategoryIDs []int  `json:"category_ids"`
}

type updateGiftRequest struct {
	Name        *string               `json:"name"`
	Ref         *string               `json:"ref"`
	BrandID     jsonopt.Optional[int] `json:"brand_id"`
	Description *string               `json:"description"`
	MadeInID    jsonopt.Optional[int] `json:"made_in_id"`
	CategoryIDs []int                 `json:"category_ids"`
}

// giftView decorates a gift with its short category label for listings.
type giftView struct {
	*Gift
	DisplayCategories string `json:"display_categories"`
}

func toView(g *Gift) giftView {
	return giftView{Gift: g, DisplayCategories: g.DisplayCategories()}
}

func (handler *Handler) listGifts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	categoryIDs := query.CommaInts(request.URL.Query().Get("categories"))

	gifts, meta, err := handler.service.ListGifts(request.Context(), params, categoryIDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]giftView, 0, len(gifts))
	for _, g := range gifts {
		views = append(views, toView(g))
	}
	respond.Paginated(writer, views, meta)
}

func (handler *Handler) getGift(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.GetGift(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toView(record))
}

func (handler *Handler) listGiftCategories(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	names, err := handler.service.CategoriesOf(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, names)
}

func (handler *Handler) createGift(writer http.ResponseWriter, request *http.Request) {
	var input createGiftRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.CreateGift(request.Context(), CreateGiftInput{
		Name:        input.Name,
		Ref:         input.Ref,
		BrandID:     input.BrandID,
		Description: input.Description,
		MadeInID:    input.MadeInID,
		CategoryIDs: input.CategoryIDs,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, toView(record))
}

func (handler *Handler) updateGift(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateGiftRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.UpdateGift(request.Context(), id, UpdateGiftInput{
		Name:        input.Name,
		Ref:         input.Ref,
		BrandID:     input.BrandID.Value,
		BrandSet:    input.BrandID.Set,
		Description: input.Description,
		MadeInID:    input.MadeInID.Value,
		MadeInSet:   input.MadeInID.Set,
		CategoryIDs: input.CategoryIDs,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toView(record))
}

func (handler *Handler) deleteGift(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteGift(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
