package controllers

import (
	"context"
	"net/http"

	"github.com/chocozoo/storefront/api/middleware"
	"github.com/chocozoo/storefront/api/responses"
	"github.com/chocozoo/storefront/api/validators"
	"github.com/chocozoo/storefront/internal/survey"
	"github.com/chocozoo/storefront/pkg/enums"
	"github.com/chocozoo/storefront/pkg/logger"
)

type surveySubmitter interface {
	Submit(ctx context.Context, sub survey.Submission) (survey.Ack, error)
}

type surveyRequest struct {
	Satisfaction int    `json:"satisfaction" validate:"omitempty,min=1,max=5"`
	HowHeard     string `json:"howHeard" validate:"omitempty,how_heard"`
	NextAnimal   string `json:"nextAnimal" validate:"max=100"`
	Feedback     string `json:"feedback" validate:"max=2000"`
}

// SurveySubmit accepts the post-order survey.
func SurveySubmit(svc surveySubmitter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload surveyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sub := survey.Submission{
			Satisfaction: enums.Satisfaction(payload.Satisfaction),
			HowHeard:     enums.HowHeard(payload.HowHeard),
			NextAnimal:   validators.SanitizeString(payload.NextAnimal, 100),
			Feedback:     validators.SanitizeString(payload.Feedback, 2000),
		}
		if sess := middleware.SessionFromContext(r.Context()); sess != nil {
			sub.SessionID = sess.ID
		}

		ack, err := svc.Submit(r.Context(), sub)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ack)
	}
}
