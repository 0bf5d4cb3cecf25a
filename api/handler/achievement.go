package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
	"github.com/bigamist7/Bigamist-TaskPal/pkg/httpcontext"
	taskUC "github.com/bigamist7/Bigamist-TaskPal/usecase/task"
)

type AchievementHandler struct {
	baseHandler
	store *taskUC.Store
}

func NewAchievementHandler(store *taskUC.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *AchievementHandler {
	return &AchievementHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary List achievements
// @Tags achievements
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) GetAchievements(ctx *fasthttp.RequestCtx) {
	tasks := h.store.Tasks()
	stats := h.store.Stats()
	h.respondSuccess(ctx, http.StatusOK, domain.EvaluateAchievements(tasks, stats))
}
