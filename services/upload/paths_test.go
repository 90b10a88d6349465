package upload

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Programming Guides", "programming-guides"},
		{"Data  Science", "data-science"},
		{"a\tb\nc", "a-b-c"},
		{"single", "single"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, c := range cases {
		if got := Slug(c.name); got != c.expected {
			t.Errorf("Slug(%q) = %q, expected %q", c.name, got, c.expected)
		}
	}
}

func TestSlugIdempotent(t *testing.T) {
	names := []string{"Programming Guides", "A  B", "MiXeD Case Name"}
	for _, n := range names {
		once := Slug(n)
		if twice := Slug(once); twice != once {
			t.Errorf("re-slugging %q changed %q to %q", n, once, twice)
		}
	}
}

func TestFieldDir(t *testing.T) {
	s := NewStore("data")
	if got := s.FieldDir(FieldFile, "guides"); got != filepath.Join("data", "files", "guides") {
		t.Errorf("unexpected file dir %v", got)
	}
	if got := s.FieldDir(FieldCover, "guides"); got != filepath.Join("data", "covers", "guides") {
		t.Errorf("unexpected cover dir %v", got)
	}
	if got := s.ThumbDir("guides"); got != filepath.Join("data", "covers", "guides", "thumbnails") {
		t.Errorf("unexpected thumb dir %v", got)
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	s := NewStore(t.TempDir())
	dir := s.FieldDir(FieldCover, "guides")
	if err := s.EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	if err := s.EnsureDir(dir); err != nil {
		t.Errorf("second EnsureDir failed: %v", err)
	}
}

func TestEnsureDirConcurrent(t *testing.T) {
	s := NewStore(t.TempDir())
	dir := s.FieldDir(FieldFile, "brand-new")

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.EnsureDir(dir)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent EnsureDir failed: %v", err)
		}
	}
}

func TestBootstrap(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	s := NewStore(root)
	if err := s.Bootstrap([]string{"guides", "data-science"}); err != nil {
		t.Fatal(err)
	}
	expected := []string{
		filepath.Join(root, "covers"),
		filepath.Join(root, "files"),
		filepath.Join(root, "covers", "guides"),
		filepath.Join(root, "files", "guides"),
		filepath.Join(root, "covers", "data-science"),
		filepath.Join(root, "files", "data-science"),
	}
	for _, dir := range expected {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("expected directory %v: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%v is not a directory", dir)
		}
	}
}

func TestBootstrapIdempotent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "uploads"))
	if err := s.Bootstrap([]string{"guides"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Bootstrap([]string{"guides"}); err != nil {
		t.Errorf("second Bootstrap failed: %v", err)
	}
}

func TestRelPath(t *testing.T) {
	s := NewStore(filepath.Join("var", "uploads"))
	rel, err := s.RelPath(filepath.Join("var", "uploads", "covers", "guides", "a.png"))
	if err != nil {
		t.Fatal(err)
	}
	if rel != "covers/guides/a.png" {
		t.Errorf("unexpected rel path %v", rel)
	}
}
