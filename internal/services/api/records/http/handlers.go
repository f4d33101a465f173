// Package http provides http transport for records
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"recordkeeper/internal/modkit/httpkit"
	perr "recordkeeper/internal/platform/errors"
	"recordkeeper/internal/services/api/records/domain"
	svc "recordkeeper/internal/services/api/records/service"
)

// Register mounts record endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/process", h.process)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PostJSON[domain.RecordInput](r, "/", h.create)
	httpkit.PutJSON[domain.RecordInput](r, "/{id}", h.update)
	r.Delete("/{id}", httpkit.Handle(h.delete))
}

type handlers struct{ svc svc.Service }

// recordID parses the {id} path parameter
func recordID(r *stdhttp.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, perr.Validationf("id", "invalid id")
	}
	return id, nil
}

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := recordID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

func (h *handlers) create(r *stdhttp.Request, in domain.RecordInput) (any, error) {
	rec, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(rec), nil
}

func (h *handlers) update(r *stdhttp.Request, in domain.RecordInput) (any, error) {
	id, err := recordID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, in)
}

func (h *handlers) delete(r *stdhttp.Request) httpkit.Response {
	id, err := recordID(r)
	if err != nil {
		return httpkit.Error(err)
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return httpkit.Error(err)
	}
	return httpkit.NoContent()
}

// process triggers the batch engine and returns the processed subset
func (h *handlers) process(r *stdhttp.Request) (any, error) {
	return h.svc.ProcessAll(r.Context())
}
