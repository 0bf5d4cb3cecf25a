package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/bigamist7/Bigamist-TaskPal/api/handler"
)

type Handlers struct {
	Task        *apiHandler.TaskHandler
	Chat        *apiHandler.ChatHandler
	Achievement *apiHandler.AchievementHandler
	Health      *apiHandler.HealthHandler
}

func New(handlers Handlers, cors func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", cors(handlers.Health.Check))

	// Task routes
	r.GET("/api/v1/tasks", cors(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", cors(handlers.Task.CreateTask))
	r.GET("/api/v1/tasks/stats", cors(handlers.Task.GetStats))
	r.PUT("/api/v1/tasks/{id}", cors(handlers.Task.UpdateTask))
	r.POST("/api/v1/tasks/{id}/complete", cors(handlers.Task.CompleteTask))
	r.DELETE("/api/v1/tasks/{id}", cors(handlers.Task.DeleteTask))

	// Achievements
	r.GET("/api/v1/achievements", cors(handlers.Achievement.GetAchievements))

	// Chat routes
	r.GET("/api/v1/chat/messages", cors(handlers.Chat.GetMessages))
	r.POST("/api/v1/chat/messages", cors(handlers.Chat.SendMessage))
	r.DELETE("/api/v1/chat/messages", cors(handlers.Chat.ClearMessages))
	r.GET("/api/v1/chat/personality", cors(handlers.Chat.GetPersonality))
	r.PUT("/api/v1/chat/personality", cors(handlers.Chat.SetPersonality))

	// Preflight requests never reach a route handler; answer them globally.
	r.GlobalOPTIONS = cors(func(ctx *fasthttp.RequestCtx) {})

	return r
}
