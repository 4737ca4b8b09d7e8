package survey

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/chocozoo/storefront/pkg/enums"
	pkgerrors "github.com/chocozoo/storefront/pkg/errors"
	"github.com/chocozoo/storefront/pkg/logger"
)

// ThankYouMessage acknowledges a submitted survey.
const ThankYouMessage = "Thank you for your feedback!"

// Home is where the shopper goes after the survey.
const Home = "/"

// Submission is the post-order survey. Every field is optional; a zero
// Satisfaction means the shopper skipped the rating.
type Submission struct {
	SessionID    string             `json:"-"`
	Satisfaction enums.Satisfaction `json:"satisfaction,omitempty"`
	HowHeard     enums.HowHeard     `json:"howHeard,omitempty"`
	NextAnimal   string             `json:"nextAnimal,omitempty"`
	Feedback     string             `json:"feedback,omitempty"`
}

// IsBlank reports whether nothing was answered.
func (s Submission) IsBlank() bool {
	return s.Satisfaction == 0 &&
		s.HowHeard == "" &&
		strings.TrimSpace(s.NextAnimal) == "" &&
		strings.TrimSpace(s.Feedback) == ""
}

// Ack is returned once a survey is accepted.
type Ack struct {
	ID       string `json:"id"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// Service accepts survey submissions. Answers are logged, never stored.
type Service struct {
	logg  *logger.Logger
	newID func() string
}

func NewService(logg *logger.Logger) *Service {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Service{logg: logg, newID: uuid.NewString}
}

// Submit records sub and returns the acknowledgement shown to the shopper.
func (s *Service) Submit(ctx context.Context, sub Submission) (Ack, error) {
	if sub.Satisfaction != 0 && !sub.Satisfaction.IsValid() {
		return Ack{}, pkgerrors.New(pkgerrors.CodeValidation, "satisfaction must be between 1 and 5")
	}
	if sub.HowHeard != "" && !sub.HowHeard.IsValid() {
		return Ack{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid howHeard value")
	}

	id := s.newID()
	fields := map[string]any{
		"survey_id":   id,
		"blank":       sub.IsBlank(),
		"how_heard":   sub.HowHeard.String(),
		"next_animal": strings.TrimSpace(sub.NextAnimal),
		"feedback":    strings.TrimSpace(sub.Feedback),
	}
	if sub.Satisfaction != 0 {
		fields["satisfaction"] = int(sub.Satisfaction)
	}
	if sub.SessionID != "" {
		ctx = s.logg.WithSessionID(ctx, sub.SessionID)
	}
	s.logg.Info(s.logg.WithFields(ctx, fields), "survey.submitted")

	return Ack{ID: id, Message: ThankYouMessage, Redirect: Home}, nil
}
