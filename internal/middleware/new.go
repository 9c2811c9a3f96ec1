package middleware

import (
	"smart-todo-assistant/config"
	"smart-todo-assistant/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
