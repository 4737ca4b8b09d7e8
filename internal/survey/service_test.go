package survey

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/chocozoo/storefront/pkg/enums"
	pkgerrors "github.com/chocozoo/storefront/pkg/errors"
	"github.com/chocozoo/storefront/pkg/logger"
)

func TestSubmitAcknowledgesAndLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("info"), Output: &buf})
	svc := NewService(logg)
	svc.newID = func() string { return "survey-1" }

	ack, err := svc.Submit(context.Background(), Submission{
		SessionID:    "sess-1",
		Satisfaction: 5,
		HowHeard:     enums.HowHeardFriendFamily,
		NextAnimal:   "  Axolotl ",
		Feedback:     "More owls please",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ack.ID != "survey-1" || ack.Message != ThankYouMessage || ack.Redirect != Home {
		t.Fatalf("unexpected ack %+v", ack)
	}

	out := buf.String()
	for _, want := range []string{`"survey.submitted"`, `"survey_id":"survey-1"`, `"next_animal":"Axolotl"`, `"satisfaction":5`, `"session_id":"sess-1"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestSubmitBlankSurveyIsAccepted(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)
	ack, err := svc.Submit(context.Background(), Submission{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ack.Message != ThankYouMessage {
		t.Fatalf("unexpected message %q", ack.Message)
	}
	if !(Submission{Feedback: "   "}).IsBlank() {
		t.Fatalf("whitespace-only feedback should count as blank")
	}
}

func TestSubmitRejectsOutOfRangeAnswers(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)
	tests := []Submission{
		{Satisfaction: 6},
		{Satisfaction: -1},
		{HowHeard: "carrier-pigeon"},
	}
	for _, sub := range tests {
		if _, err := svc.Submit(context.Background(), sub); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("expected validation error for %+v, got %v", sub, err)
		}
	}
}
