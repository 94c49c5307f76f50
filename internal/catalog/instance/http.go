// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package instance

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/giftwell/giftwell/internal/platform/middleware"
	requestutil "github.com/giftwell/giftwell/internal/platform/request"
	"github.com/giftwell/giftwell/internal/platform/respond"
	"github.com/giftwell/giftwell/internal/platform/sec"
	"github.com/giftwell/giftwell/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /instances route group.
//
// Everything here sits behind the authentication gate; the full listing,
// status flips and deletes are admin-only on top of that.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.createInstance)
		r.Get("/mine", handler.listMine)
		r.Get("/{id}", handler.getInstance)
		r.Patch("/{id}/claim", handler.claimInstance)
		r.Post("/{id}/release", handler.releaseInstance)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/", handler.listInstances)
		r.Post("/{id}/status", handler.setStatus)
		r.Delete("/{id}", handler.deleteInstance)
	})

	return router
}

type createInstanceRequest struct {
	GiftID    int        `json:"gift_id"`
	EventDate *time.Time `json:"event_date"`
	Size      *string    `json:"size"`
	Colour    *string    `json:"colour"`
	Price     *float64   `json:"price"`
	URL       *string    `json:"url"`
}

type claimInstanceRequest struct {
	EventDate *time.Time `json:"event_date"`
	Size      *string    `json:"size"`
	Colour    *string    `json:"colour"`
	Price     *float64   `json:"price"`
	URL       *string    `json:"url"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// instanceView decorates an instance with its expiry flag.
type instanceView struct {
	*Instance
	Expired bool `json:"expired"`
}

func toView(i *Instance) instanceView {
	return instanceView{Instance: i, Expired: i.IsExpired(time.Now())}
}

func (handler *Handler) listInstances(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	instances, meta, err := handler.service.ListInstances(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]instanceView, 0, len(instances))
	for _, i := range instances {
		views = append(views, toView(i))
	}
	respond.Paginated(writer, views, meta)
}

func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	instances, err := handler.service.ListMine(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]instanceView, 0, len(instances))
	for _, i := range instances {
		views = append(views, toView(i))
	}
	respond.OK(writer, views)
}

func (handler *Handler) getInstance(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	record, err := handler.service.GetInstance(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toView(record))
}

func (handler *Handler) createInstance(writer http.ResponseWriter, request *http.Request) {
	var input createInstanceRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.CreateInstance(request.Context(), CreateInstanceInput{
		GiftID:    input.GiftID,
		EventDate: input.EventDate,
		Size:      input.Size,
		Colour:    input.Colour,
		Price:     input.Price,
		URL:       input.URL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, toView(record))
}

func (handler *Handler) claimInstance(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input claimInstanceRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Claim(request.Context(), id, userID, ClaimInput{
		EventDate: input.EventDate,
		Size:      input.Size,
		Colour:    input.Colour,
		Price:     input.Price,
		URL:       input.URL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toView(record))
}

func (handler *Handler) releaseInstance(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Release(request.Context(), id, claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toView(record))
}

func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input setStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.SetStatus(request.Context(), id, input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toView(record))
}

func (handler *Handler) deleteInstance(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteInstance(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
