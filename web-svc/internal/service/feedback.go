package service

import (
	"context"
	"log"
	"strings"
	"time"

	"orderflow/web-svc/internal/domain"
)

const MaxFeedbackLength = 150

type feedbackInput struct {
	Rating  int    `validate:"min=1,max=5"`
	Comment string `validate:"max=150"`
}

var feedbackMessages = map[string]string{
	"Rating":  "please select a rating between 1 and 5",
	"Comment": "feedback must be at most 150 characters",
}

type FeedbackService struct {
	api       FeedbackAPI
	publisher EventPublisher
}

func NewFeedbackService(api FeedbackAPI, publisher EventPublisher) *FeedbackService {
	return &FeedbackService{
		api:       api,
		publisher: publisher,
	}
}

// Submit sends an anonymous rating for orderNumber. Input problems are reported without a network call.
func (s *FeedbackService) Submit(ctx context.Context, orderNumber *string, rating int, comment string) error {
	if orderNumber == nil || strings.TrimSpace(*orderNumber) == "" {
		return newValidationError("order number is missing")
	}

	comment = strings.TrimSpace(comment)
	if err := validateStruct(feedbackInput{Rating: rating, Comment: comment}, feedbackMessages); err != nil {
		return err
	}

	feedback := domain.Feedback{
		OrderNumber: strings.TrimSpace(*orderNumber),
		StarRating:  rating,
		Feedback:    comment,
	}
	if err := s.api.SubmitFeedback(ctx, feedback); err != nil {
		return err
	}

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, domain.Event{
			Type:        domain.EventFeedbackSubmitted,
			OrderNumber: feedback.OrderNumber,
			Rating:      rating,
			Timestamp:   time.Now(),
		})
		if err != nil {
			log.Printf("[feedback] WARNING: failed to publish %s: %v", domain.EventFeedbackSubmitted, err)
		}
	}
	return nil
}
