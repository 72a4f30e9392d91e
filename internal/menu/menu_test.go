package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMenuRunsSelectedItem(t *testing.T) {
	var ran []int
	items := []Item{
		{Label: "첫번째", Run: func(ctx context.Context) error { ran = append(ran, 1); return nil }},
		{Label: "두번째", Run: func(ctx context.Context) error { ran = append(ran, 2); return nil }},
	}

	var out bytes.Buffer
	m := New("테스트", items, strings.NewReader("2\n1\n0\n"), &out)
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ran) != 2 || ran[0] != 2 || ran[1] != 1 {
		t.Errorf("expected items [2 1] to run, got %v", ran)
	}
	if !strings.Contains(out.String(), "첫번째") {
		t.Errorf("menu output missing item label:\n%s", out.String())
	}
}

func TestMenuInvalidSelection(t *testing.T) {
	items := []Item{
		{Label: "항목", Run: func(ctx context.Context) error { return nil }},
	}

	var out bytes.Buffer
	m := New("테스트", items, strings.NewReader("9\nx\nq\n"), &out)
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(out.String(), "잘못된 선택"); got != 2 {
		t.Errorf("expected 2 invalid-selection messages, got %d", got)
	}
}

func TestMenuItemErrorKeepsLoop(t *testing.T) {
	calls := 0
	items := []Item{
		{Label: "실패", Run: func(ctx context.Context) error { calls++; return errors.New("boom") }},
	}

	var out bytes.Buffer
	m := New("테스트", items, strings.NewReader("1\n1\nq\n"), &out)
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected item to run twice, got %d", calls)
	}
	if !strings.Contains(out.String(), "boom") {
		t.Errorf("expected item error in output:\n%s", out.String())
	}
}

func TestMenuEOFExits(t *testing.T) {
	m := New("테스트", nil, strings.NewReader(""), &bytes.Buffer{})
	if err := m.Run(context.Background()); err != nil {
		t.Errorf("expected clean exit on EOF, got %v", err)
	}
}

func TestMenuContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New("테스트", nil, strings.NewReader("q\n"), &bytes.Buffer{})
	if err := m.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
