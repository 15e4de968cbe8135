package service

import (
	"log/slog"

	"basegraph.app/taskhook/internal/mapper"
	"basegraph.app/taskhook/internal/queue"
)

type Services struct {
	stores   StoreProvider
	producer queue.Producer
	logger   *slog.Logger
}

func NewServices(stores StoreProvider, producer queue.Producer, logger *slog.Logger) *Services {
	return &Services{
		stores:   stores,
		producer: producer,
		logger:   logger,
	}
}

func (s *Services) TaskLinker() TaskLinker {
	return NewTaskLinker(s.stores, s.producer, s.logger)
}

func (s *Services) GitHubEvents() GitHubEventRouter {
	return NewGitHubEventRouter(mapper.NewGitHubEventMapper(), s.TaskLinker(), s.logger)
}
