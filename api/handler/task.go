package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/bigamist7/Bigamist-TaskPal/api/transport"
	"github.com/bigamist7/Bigamist-TaskPal/domain"
	"github.com/bigamist7/Bigamist-TaskPal/pkg/httpcontext"
	taskUC "github.com/bigamist7/Bigamist-TaskPal/usecase/task"
)

type TaskHandler struct {
	baseHandler
	store *taskUC.Store
}

func NewTaskHandler(store *taskUC.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	category := string(ctx.QueryArgs().Peek("category"))
	if category == "" {
		h.respondSuccess(ctx, http.StatusOK, h.store.Tasks())
		return
	}

	cat := domain.Category(category)
	if !cat.Valid() {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "unknown category", nil))
		return
	}
	h.respondSuccess(ctx, http.StatusOK, h.store.ByCategory(cat))
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	var req transport.TaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	input, err := buildCreateInput(req)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.store.Add(stdCtx, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	var req transport.TaskUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	patch, err := buildPatch(req)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	// An unknown id is a silent no-op; the update endpoint answers 200
	// with an empty data field so clients can tell nothing was touched.
	updated, err := h.store.Update(stdCtx, id, patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Complete task
// @Tags tasks
// @Router /api/v1/tasks/{id}/complete [post]
func (h *TaskHandler) CompleteTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	completed := h.store.Complete(stdCtx, id)
	h.respondSuccess(ctx, http.StatusOK, completed)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.store.Delete(stdCtx, id)
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Task statistics
// @Tags tasks
// @Router /api/v1/tasks/stats [get]
func (h *TaskHandler) GetStats(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.store.Stats())
}

func (h *TaskHandler) taskID(ctx *fasthttp.RequestCtx) (string, bool) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return "", false
	}
	return id, true
}

func buildCreateInput(req transport.TaskCreateRequest) (taskUC.CreateInput, error) {
	category := domain.Category(req.Category)
	if !category.Valid() {
		return taskUC.CreateInput{}, domain.NewError(domain.ErrCodeInvalid, "unknown category")
	}

	priority := domain.Priority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityMedium
	} else if !priority.Valid() {
		return taskUC.CreateInput{}, domain.NewError(domain.ErrCodeInvalid, "unknown priority")
	}

	return taskUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Priority:    priority,
	}, nil
}

func buildPatch(req transport.TaskUpdateRequest) (taskUC.Patch, error) {
	patch := taskUC.Patch{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.Category != nil {
		category := domain.Category(*req.Category)
		if !category.Valid() {
			return taskUC.Patch{}, domain.NewError(domain.ErrCodeInvalid, "unknown category")
		}
		patch.Category = &category
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		if !priority.Valid() {
			return taskUC.Patch{}, domain.NewError(domain.ErrCodeInvalid, "unknown priority")
		}
		patch.Priority = &priority
	}

	return patch, nil
}
