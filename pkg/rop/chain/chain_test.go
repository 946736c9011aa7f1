package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/stepkit/pkg/rop/monad"
)

func TestFromValue_Value(t *testing.T) {
	t.Parallel()
	c := FromValue(7)
	v, ok := c.Value()
	if !ok || v != 7 {
		t.Fatalf("expected 7, got %v (ok=%v)", v, ok)
	}
	if c.Pipeline().Len() != 1 {
		t.Fatalf("expected identity step only, got %d steps", c.Pipeline().Len())
	}
}

func TestStart_SharesPipeline(t *testing.T) {
	t.Parallel()
	p := monad.New(3)
	c := Start[int](p)
	Map(c, func(v int) int { return v + 1 })
	if p.Value() != 4 {
		t.Fatalf("expected pipeline value 4, got %v", p.Value())
	}
}

func TestMap_ChangesType(t *testing.T) {
	t.Parallel()
	c := Map(FromValue(5), func(v int) string { return strconv.Itoa(v * 2) })
	v, ok := c.Value()
	if !ok || v != "10" {
		t.Fatalf("expected \"10\", got %v (ok=%v)", v, ok)
	}
	if !c.Passed() {
		t.Fatalf("expected last step to pass")
	}
}

func TestTry_ErrorFallsBackToPreviousValue(t *testing.T) {
	t.Parallel()
	c := Try(FromValue("abc"), func(s string) (int, error) { return strconv.Atoi(s) })
	if c.Passed() {
		t.Fatalf("expected last step to fail")
	}
	if _, ok := c.Value(); ok {
		t.Fatalf("expected value not to be an int")
	}
	if c.Pipeline().Value() != "abc" {
		t.Fatalf("expected fallback to input, got %v", c.Pipeline().Value())
	}
}

func TestTry_ErrorFallsBackToDefault(t *testing.T) {
	t.Parallel()
	c := Try(FromValue("abc", monad.WithDefault(-1)), func(s string) (int, error) {
		return 0, errors.New("no")
	})
	v, ok := c.Value()
	if !ok || v != -1 {
		t.Fatalf("expected default -1, got %v (ok=%v)", v, ok)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	called := 0
	FromValue(2).Ensure(func(int) { called++ })
	if called != 1 {
		t.Fatalf("expected Ensure to run once, got %d", called)
	}

	c := Try(FromValue(2), func(int) (int, error) { return 0, errors.New("x") })
	c.Ensure(func(int) { called++ })
	if called != 1 {
		t.Fatalf("Ensure must not run after a failed step")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	onValue := func(v int) string { return "int:" + strconv.Itoa(v) }
	onOther := func(v any) string { return "other" }

	if got := Finally(FromValue(3), onValue, onOther); got != "int:3" {
		t.Fatalf("expected int:3, got %q", got)
	}

	c := Map(FromValue("x"), func(s string) int { return len(s) })
	c2 := Start[int](c.Pipeline().Apply(func(any) (any, error) { return "str", nil }))
	if got := Finally(c2, onValue, onOther); got != "other" {
		t.Fatalf("expected other, got %q", got)
	}
}
