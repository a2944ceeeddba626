package customlabel

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Service describes the business logic surface for custom label operations.
type Service interface {
	Create(ctx context.Context, input CreateCustomLabel) string
	FindAll(ctx context.Context) string
	FindOne(ctx context.Context, id int64) string
	Update(ctx context.Context, id int64, input UpdateCustomLabel) string
	Remove(ctx context.Context, id int64) string
}

type service struct {
	log zerolog.Logger
}

// NewService wires the custom label service.
func NewService(log zerolog.Logger) Service {
	return &service{
		log: log.With().Str("component", "custom-label-service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, input CreateCustomLabel) string {
	s.log.Debug().Msg("create custom label")
	return "This action adds a new customLabel"
}

func (s *service) FindAll(ctx context.Context) string {
	s.log.Debug().Msg("list custom labels")
	return "This action returns all customLabels"
}

func (s *service) FindOne(ctx context.Context, id int64) string {
	s.log.Debug().Int64("id", id).Msg("get custom label")
	return fmt.Sprintf("This action returns a #%d customLabel", id)
}

func (s *service) Update(ctx context.Context, id int64, input UpdateCustomLabel) string {
	s.log.Debug().Int64("id", id).Msg("update custom label")
	return fmt.Sprintf("This action updates a #%d customLabel", id)
}

func (s *service) Remove(ctx context.Context, id int64) string {
	s.log.Debug().Int64("id", id).Msg("remove custom label")
	return fmt.Sprintf("This action removes a #%d customLabel", id)
}
