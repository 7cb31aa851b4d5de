package usecase

import (
	"context"

	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListTheaters(ctx context.Context) ([]response.TheaterResponse, error)
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListTheaters(ctx context.Context) ([]response.TheaterResponse, error) {
	theaters, err := s.repo.Theater.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.TheaterResponse, len(theaters))
	for i, theater := range theaters {
		resp[i] = response.TheaterToResponse(theater)
	}
	return resp, nil
}

func (s *catalogService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		resp[i] = response.MovieToResponse(movie)
	}
	return resp, nil
}
