package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Line counting
// ---------------------------------------------------------------------------

func TestCountLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "one line no newline", text: "a", want: 1},
		{name: "one line with newline", text: "a\n", want: 1},
		{name: "two lines no trailing newline", text: "a\nb", want: 2},
		{name: "two lines with trailing newline", text: "a\nb\n", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countLines(tt.text); got != tt.want {
				t.Errorf("countLines(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Display decision
// ---------------------------------------------------------------------------

// testPager builds a pager with every external touchpoint stubbed out
func testPager(out *bytes.Buffer, height int, paged *string) *Pager {
	return &Pager{
		Out:    out,
		height: func() int { return height },
		lookPath: func(name string) (string, error) {
			return "/usr/bin/" + name, nil
		},
		run: func(ctx context.Context, path string, args []string, text string) error {
			*paged = text
			return nil
		},
	}
}

func TestDisplayPrintsDirectlyWhenShort(t *testing.T) {
	var out bytes.Buffer
	var paged string
	p := testPager(&out, 24, &paged)

	text := "one\ntwo\nthree\n"
	if err := p.Display(context.Background(), text); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if out.String() != text {
		t.Errorf("direct output = %q, want %q", out.String(), text)
	}
	if paged != "" {
		t.Error("pager should not run for short output")
	}
}

func TestDisplayPagesWhenOverflowing(t *testing.T) {
	var out bytes.Buffer
	var paged string
	p := testPager(&out, 10, &paged)

	text := strings.Repeat("line\n", 20)
	if err := p.Display(context.Background(), text); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if paged != text {
		t.Errorf("paged text = %q, want the exact rendered text", paged)
	}
	if out.Len() != 0 {
		t.Errorf("direct output should be empty when paging, got %q", out.String())
	}
}

func TestDisplayThreshold(t *testing.T) {
	// With 10 rows, two are reserved for the prompt: 8 lines fit, 9 do not
	var out bytes.Buffer
	var paged string
	p := testPager(&out, 10, &paged)

	fits := strings.Repeat("x\n", 8)
	if err := p.Display(context.Background(), fits); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if paged != "" {
		t.Error("8 lines on a 10 row terminal should print directly")
	}

	out.Reset()
	overflows := strings.Repeat("x\n", 9)
	if err := p.Display(context.Background(), overflows); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if paged != overflows {
		t.Error("9 lines on a 10 row terminal should page")
	}
}

func TestDisplayFallsBackWhenPagerMissing(t *testing.T) {
	var out bytes.Buffer
	ran := false
	p := &Pager{
		Out:      &out,
		height:   func() int { return 10 },
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
		run: func(context.Context, string, []string, string) error {
			ran = true
			return nil
		},
	}

	text := strings.Repeat("line\n", 20)
	if err := p.Display(context.Background(), text); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if out.String() != text {
		t.Errorf("fallback output = %q, want %q", out.String(), text)
	}
	if ran {
		t.Error("pager must not run when its binary is missing")
	}
}

func TestDisplayDisabled(t *testing.T) {
	var out bytes.Buffer
	var paged string
	p := testPager(&out, 10, &paged)
	p.Disable = true

	text := strings.Repeat("line\n", 20)
	if err := p.Display(context.Background(), text); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if out.String() != text {
		t.Errorf("disabled pager output = %q, want %q", out.String(), text)
	}
	if paged != "" {
		t.Error("pager should not run when disabled")
	}
}

func TestDisplayUsesConfiguredCommand(t *testing.T) {
	var out bytes.Buffer
	var gotName, gotPath string
	var gotArgs []string
	p := &Pager{
		Command: "most +g",
		Out:     &out,
		height:  func() int { return 10 },
		lookPath: func(name string) (string, error) {
			gotName = name
			return "/usr/bin/" + name, nil
		},
		run: func(ctx context.Context, path string, args []string, text string) error {
			gotPath, gotArgs = path, args
			return nil
		},
	}

	if err := p.Display(context.Background(), strings.Repeat("line\n", 20)); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if gotName != "most" {
		t.Errorf("probed binary = %q, want %q", gotName, "most")
	}
	if gotPath != "/usr/bin/most" {
		t.Errorf("pager path = %q, want %q", gotPath, "/usr/bin/most")
	}
	if len(gotArgs) != 1 || gotArgs[0] != "+g" {
		t.Errorf("pager args = %v, want [+g]", gotArgs)
	}
}

func TestDisplayDefaultCommand(t *testing.T) {
	var out bytes.Buffer
	var gotName string
	var gotArgs []string
	p := &Pager{
		Out:    &out,
		height: func() int { return 10 },
		lookPath: func(name string) (string, error) {
			gotName = name
			return "/usr/bin/" + name, nil
		},
		run: func(ctx context.Context, path string, args []string, text string) error {
			gotArgs = args
			return nil
		},
	}

	if err := p.Display(context.Background(), strings.Repeat("line\n", 20)); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if gotName != "less" {
		t.Errorf("probed binary = %q, want %q", gotName, "less")
	}
	if len(gotArgs) != 2 || gotArgs[0] != "-R" || gotArgs[1] != "+Gg" {
		t.Errorf("pager args = %v, want [-R +Gg]", gotArgs)
	}
}

func TestDisplayReturnsPagerError(t *testing.T) {
	var out bytes.Buffer
	p := &Pager{
		Out:      &out,
		height:   func() int { return 10 },
		lookPath: func(name string) (string, error) { return "/usr/bin/" + name, nil },
		run: func(context.Context, string, []string, string) error {
			return errors.New("pager exited badly")
		},
	}

	err := p.Display(context.Background(), strings.Repeat("line\n", 20))
	if err == nil {
		t.Fatal("expected pager error to propagate")
	}
}
