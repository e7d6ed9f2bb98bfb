package catalog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/patternplay/patternplay/pkg/catalog"
	"github.com/patternplay/patternplay/pkg/mocks"
)

func TestCatalog_RegisterAndRun(t *testing.T) {
	c := catalog.NewCatalog()

	demo := mocks.NewMockDemo("adapter", catalog.GroupStructural, "line one", "line two")
	if err := c.Register(demo); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	var buf bytes.Buffer
	if err := c.Run("adapter", &buf); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	want := "line one\nline two\n"
	if buf.String() != want {
		t.Errorf("expected trace %q, got %q", want, buf.String())
	}
	if demo.RunCount() != 1 {
		t.Errorf("expected 1 run, got %d", demo.RunCount())
	}
}

func TestCatalog_RegisterDuplicateName(t *testing.T) {
	c := catalog.NewCatalog()

	if err := c.Register(mocks.NewMockDemo("observer", catalog.GroupBehavioral)); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	err := c.Register(mocks.NewMockDemo("observer", catalog.GroupBehavioral))
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if !errors.Is(err, catalog.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}

	// The original registration must be untouched
	if c.Len() != 1 {
		t.Errorf("expected catalog length 1, got %d", c.Len())
	}
}

func TestCatalog_RunUnknownName(t *testing.T) {
	c := catalog.NewCatalog()

	var buf bytes.Buffer
	err := c.Run("no-such-demo", &buf)
	if err == nil {
		t.Fatal("expected unknown demo to fail")
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestCatalog_RunAllPreservesRegistrationOrder(t *testing.T) {
	c := catalog.NewCatalog()

	first := mocks.NewMockDemo("first", catalog.GroupBehavioral, "first trace")
	second := mocks.NewMockDemo("second", catalog.GroupCreational, "second trace")
	third := mocks.NewMockDemo("third", catalog.GroupStructural, "third trace")

	for _, d := range []*mocks.MockDemo{first, second, third} {
		if err := c.Register(d); err != nil {
			t.Fatalf("unexpected register error: %v", err)
		}
	}

	var buf bytes.Buffer
	c.RunAll(&buf)

	want := "first trace\nsecond trace\nthird trace\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}

	for _, d := range []*mocks.MockDemo{first, second, third} {
		if d.RunCount() != 1 {
			t.Errorf("demo %s ran %d times, expected 1", d.Name(), d.RunCount())
		}
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := catalog.NewCatalog()

	demo := mocks.NewMockDemo("facade", catalog.GroupStructural)
	if err := c.Register(demo); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	got, ok := c.Lookup("facade")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if got.Name() != "facade" {
		t.Errorf("expected facade, got %s", got.Name())
	}

	if _, ok := c.Lookup("missing"); ok {
		t.Error("expected lookup of missing demo to fail")
	}
}

func TestCatalog_DemosReturnsCopy(t *testing.T) {
	c := catalog.NewCatalog()
	if err := c.Register(mocks.NewMockDemo("proxy", catalog.GroupStructural)); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	demos := c.Demos()
	demos[0] = mocks.NewMockDemo("intruder", catalog.GroupStructural)

	if got := c.Demos()[0].Name(); got != "proxy" {
		t.Errorf("catalog order mutated through Demos(), got %s", got)
	}
}

func TestGroup_IsValid(t *testing.T) {
	for _, g := range catalog.Groups() {
		if !g.IsValid() {
			t.Errorf("expected group %s to be valid", g)
		}
	}
	if catalog.Group("architectural").IsValid() {
		t.Error("expected unknown group to be invalid")
	}
}
