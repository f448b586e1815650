package ratings

import (
	"context"
	"errors"
	"math"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	ratings RatingRepositoryInterface
	books   BookReader
}

func NewService(ratings RatingRepositoryInterface, books BookReader) *Service {
	return &Service{ratings: ratings, books: books}
}

// Rate records a user's 1..5 star vote; re-rating replaces the old vote.
func (s *Service) Rate(ctx context.Context, userID, bookID int64, rating int) error {
	vote := &domain.Rating{
		BookID: bookID,
		UserID: userID,
		Rating: rating,
	}
	if fieldErrs := validator.Validate(vote); fieldErrs != nil {
		return ErrInvalidRating
	}

	if _, err := s.books.FindByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	return s.ratings.Upsert(ctx, vote)
}

func (s *Service) Summary(ctx context.Context, bookID int64) (*SummaryResponse, error) {
	avg, count, err := s.ratings.Summary(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return &SummaryResponse{
		BookID:  bookID,
		Average: math.Round(avg*10) / 10,
		Count:   count,
	}, nil
}
