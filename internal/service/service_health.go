package service

import "context"

type pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	storage pinger
}

func NewHealthService(storage pinger) HealthService {
	return &healthService{storage: storage}
}

func (s *healthService) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}
