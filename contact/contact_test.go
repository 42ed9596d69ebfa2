package contact

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestValidateField(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"name_ok", "name", "Ada", ""},
		{"name_blank", "name", "   ", "Name is required"},
		{"email_ok", "email", "ada@example.com", ""},
		{"email_missing_at", "email", "ada.example.com", "Please enter a valid email address"},
		{"email_space", "email", "ada lovelace@example.com", "Please enter a valid email address"},
		{"email_empty", "email", "", "Email is required"},
		{"message_short", "message", "hi there", "Message must be at least 10 characters long"},
		{"message_trimmed_short", "message", "  123456789  ", "Message must be at least 10 characters long"},
		{"message_ok", "message", "Hello, I'd like to chat.", ""},
		{"subject_blank", "subject", "", "Subject is required"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateField(c.field, c.value)
			if c.want == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != c.want {
				t.Fatalf("expected %q, got %v", c.want, err)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("field errors should match ErrInvalid")
			}
		})
	}
}

func validForm() Form {
	return Form{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "I enjoyed your projects a lot.",
	}
}

func TestFormValidate(t *testing.T) {
	if err := validForm().Validate(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}

	f := validForm()
	f.Email = "nope"
	f.Message = "short"
	err := f.Validate()

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Fatalf("expected 2 field errors, got %v", verrs)
	}
	if _, ok := verrs.For("email"); !ok {
		t.Fatalf("expected email error")
	}
	if _, ok := verrs.For("name"); ok {
		t.Fatalf("did not expect name error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid")
	}

	f.Reset()
	if f != (Form{}) {
		t.Fatalf("reset should clear the form")
	}
}

func TestSubmit(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &Submitter{Delay: 5 * time.Millisecond, Now: func() time.Time { return fixed }}

	t.Run("success", func(t *testing.T) {
		r, err := s.Submit(context.Background(), validForm())
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if r.ID == "" || r.Message != "Message sent successfully!" || !r.SentAt.Equal(fixed) {
			t.Fatalf("unexpected receipt %+v", r)
		}
	})

	t.Run("invalid_returns_immediately", func(t *testing.T) {
		slow := &Submitter{Delay: time.Hour}
		_, err := slow.Submit(context.Background(), Form{})
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		slow := &Submitter{Delay: time.Hour}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := slow.Submit(ctx, validForm())
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestNotificationLifecycle(t *testing.T) {
	n := NewNotification("Message sent successfully!", Success)
	steps := []struct {
		dt      time.Duration
		visible bool
		expired bool
	}{
		{0, false, false},
		{100 * time.Millisecond, true, false},
		{2 * time.Second, true, false},
		{time.Second, false, false},
		{300 * time.Millisecond, false, true},
	}
	for i, s := range steps {
		n.Advance(s.dt)
		if n.Visible() != s.visible || n.Expired() != s.expired {
			t.Fatalf("step %d: visible=%v expired=%v", i, n.Visible(), n.Expired())
		}
	}

	if NewNotification("x", "").Kind != Info {
		t.Fatalf("expected default info kind")
	}
}
