package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SubmitDelay is how long the simulated submission takes.
const SubmitDelay = 2 * time.Second

const sentMessage = "Message sent successfully!"

// Receipt describes a completed submission.
type Receipt struct {
	ID      string
	Form    Form
	SentAt  time.Time
	Message string
}

// Submitter simulates sending the form. Nothing leaves the process; every
// valid form succeeds after Delay.
type Submitter struct {
	Delay time.Duration
	Now   func() time.Time
}

func NewSubmitter() *Submitter {
	return &Submitter{Delay: SubmitDelay, Now: time.Now}
}

// Submit validates f and waits out the simulated delay.
func (s *Submitter) Submit(ctx context.Context, f Form) (Receipt, error) {
	if err := f.Validate(); err != nil {
		return Receipt{}, err
	}

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Receipt{}, fmt.Errorf("contact: submit: %w", ctx.Err())
	case <-timer.C:
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Receipt{
		ID:      uuid.NewString(),
		Form:    f,
		SentAt:  now(),
		Message: sentMessage,
	}, nil
}
