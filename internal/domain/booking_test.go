package domain_test

import (
	"testing"
	"time"

	"github.com/SnowSE/finalproject-ricardoayala2510/internal/domain"
)

func TestDay_StripsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	in := time.Date(2024, 6, 15, 23, 45, 12, 999, loc)
	got := domain.Day(in)

	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Day(%v) = %v, want %v", in, got, want)
	}
	if !domain.Day(got).Equal(got) {
		t.Fatalf("Day must be idempotent")
	}
}

func TestValidRoomType(t *testing.T) {
	for _, rt := range domain.RoomTypes {
		if !domain.ValidRoomType(rt) {
			t.Fatalf("%s should be valid", rt)
		}
	}
	for _, rt := range []string{"", "single", "Penthouse"} {
		if domain.ValidRoomType(rt) {
			t.Fatalf("%q should be invalid", rt)
		}
	}
}
