package customlabel

import (
	"context"
	"math"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
)

func TestServiceCreate(t *testing.T) {
	svc := NewService(zerolog.Nop())

	got := svc.Create(context.Background(), CreateCustomLabel{})
	if got != "This action adds a new customLabel" {
		t.Fatalf("unexpected create result: %q", got)
	}
}

func TestServiceFindAll(t *testing.T) {
	svc := NewService(zerolog.Nop())

	got := svc.FindAll(context.Background())
	if got != "This action returns all customLabels" {
		t.Fatalf("unexpected find all result: %q", got)
	}
}

func TestServiceInterpolatesID(t *testing.T) {
	svc := NewService(zerolog.Nop())
	ctx := context.Background()

	ids := []int64{0, 1, 7, -1, -42, math.MaxInt64, math.MinInt64}
	for _, id := range ids {
		idText := strconv.FormatInt(id, 10)

		if got, want := svc.FindOne(ctx, id), "This action returns a #"+idText+" customLabel"; got != want {
			t.Errorf("FindOne(%d) = %q, want %q", id, got, want)
		}
		if got, want := svc.Update(ctx, id, UpdateCustomLabel{}), "This action updates a #"+idText+" customLabel"; got != want {
			t.Errorf("Update(%d) = %q, want %q", id, got, want)
		}
		if got, want := svc.Remove(ctx, id), "This action removes a #"+idText+" customLabel"; got != want {
			t.Errorf("Remove(%d) = %q, want %q", id, got, want)
		}
	}
}
