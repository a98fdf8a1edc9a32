package service

import (
	"errors"
	"testing"
	"time"

	"github.com/tieubaoca/eduinsights-be/types"
)

func TestSessionService_CreateAndGet(t *testing.T) {
	svc := NewSessionService(time.Hour)
	doc := types.NewDocument("some extracted text")

	session := svc.Create(doc, types.RoleTeacher)
	if session.ID == "" {
		t.Fatal("session ID is empty")
	}
	if session.Role != types.RoleTeacher {
		t.Errorf("Role = %q, want teacher", session.Role)
	}

	got, err := svc.Get(session.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Document != doc {
		t.Error("session does not hold the created document")
	}
}

func TestSessionService_DefaultRole(t *testing.T) {
	svc := NewSessionService(time.Hour)
	session := svc.Create(types.NewDocument("x"), "")
	if session.Role != types.RoleStudent {
		t.Errorf("Role = %q, want student default", session.Role)
	}
}

func TestSessionService_NotFound(t *testing.T) {
	svc := NewSessionService(time.Hour)
	if _, err := svc.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionService_Expiry(t *testing.T) {
	svc := NewSessionService(-time.Second)
	session := svc.Create(types.NewDocument("x"), types.RoleStudent)

	if _, err := svc.Get(session.ID); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	// Expired session is dropped on access.
	if _, err := svc.Get(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Get err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionService_Delete(t *testing.T) {
	svc := NewSessionService(time.Hour)
	session := svc.Create(types.NewDocument("x"), types.RoleStudent)

	svc.Delete(session.ID)
	if _, err := svc.Get(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
	// Deleting again is a no-op.
	svc.Delete(session.ID)
}

func TestSessionService_Sweep(t *testing.T) {
	svc := NewSessionService(-time.Second)
	svc.Create(types.NewDocument("a"), types.RoleStudent)
	svc.Create(types.NewDocument("b"), types.RoleStudent)

	svc.sweep()
	if svc.Len() != 0 {
		t.Errorf("Len = %d after sweep, want 0", svc.Len())
	}
}
