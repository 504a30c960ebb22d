package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"silwer/internal/domain"
)

func TestCreateBlockedSlotValidation(t *testing.T) {
	svc := NewSlotService(&fakeSlotRepo{}, zap.NewNop())

	cases := []struct {
		name string
		dto  domain.CreateBlockedSlotDTO
	}{
		{"неверная дата", domain.CreateBlockedSlotDTO{Date: "16-03-2026", Time: "09:00"}},
		{"неверное время", domain.CreateBlockedSlotDTO{Date: "2026-03-16", Time: "abc"}},
		{"пустое время", domain.CreateBlockedSlotDTO{Date: "2026-03-16", Time: ""}},
	}

	for _, tc := range cases {
		if _, err := svc.CreateBlocked(context.Background(), tc.dto); !errors.Is(err, errInvalidSlot) {
			t.Fatalf("%s: err = %v, want errInvalidSlot", tc.name, err)
		}
	}
}

func TestCreateBlockedSlot(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := NewSlotService(repo, zap.NewNop())

	slot, err := svc.CreateBlocked(context.Background(), domain.CreateBlockedSlotDTO{
		Date:   "2026-03-16",
		Time:   "09:00",
		Reason: "уборка",
	})
	if err != nil {
		t.Fatalf("CreateBlocked: %v", err)
	}
	if slot.ID == "" {
		t.Fatal("слот должен получать ID")
	}
	if len(repo.blocked) != 1 {
		t.Fatalf("слотов в хранилище = %d, want 1", len(repo.blocked))
	}
}

func TestCreateCustomSlotDuplicate(t *testing.T) {
	repo := &fakeSlotRepo{customErr: domain.ErrConflict}
	svc := NewSlotService(repo, zap.NewNop())

	_, err := svc.CreateCustom(context.Background(), domain.CreateCustomSlotDTO{
		Date: "2026-03-16",
		Time: "18:00",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("повторная пара дата-время должна давать конфликт, err = %v", err)
	}
}

func TestCreateCustomSlotAcceptsTwelveHourFormat(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := NewSlotService(repo, zap.NewNop())

	slot, err := svc.CreateCustom(context.Background(), domain.CreateCustomSlotDTO{
		Date:        "2026-03-16",
		Time:        "2:00 PM",
		SessionType: "maternity",
	})
	if err != nil {
		t.Fatalf("CreateCustom: %v", err)
	}
	if slot.Time != "2:00 PM" {
		t.Fatalf("исходная строка времени должна сохраняться, got %q", slot.Time)
	}
}
