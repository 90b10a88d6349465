package upload

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func makeFileHeader(t *testing.T, field, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	h.Set("Content-Type", contentType)
	pw, err := mw.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = pw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err = mw.Close(); err != nil {
		t.Fatal(err)
	}
	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	return form.File[field][0]
}

func TestValidateCover(t *testing.T) {
	cases := []struct {
		contentType string
		ok          bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"application/pdf", false},
		{"text/html", false},
	}
	for _, c := range cases {
		fh := makeFileHeader(t, "cover_image", "photo.png", c.contentType, []byte("x"))
		err := Validate(fh, FieldCover)
		if c.ok && err != nil {
			t.Errorf("cover %v rejected: %v", c.contentType, err)
		}
		if !c.ok {
			if err == nil {
				t.Errorf("cover %v accepted", c.contentType)
				continue
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("cover %v: expected ValidationError, got %T", c.contentType, err)
			}
		}
	}
}

func TestValidateFile(t *testing.T) {
	cases := []struct {
		filename string
		ok       bool
	}{
		{"doc.pdf", true},
		{"DOC.PDF", true},
		{"notes.docx", true},
		{"archive.zip", true},
		{"archive.rar", true},
		{"report.Doc", true},
		{"malware.exe", false},
		{"image.png", false},
		{"noext", false},
	}
	for _, c := range cases {
		fh := makeFileHeader(t, "file", c.filename, "application/octet-stream", []byte("x"))
		err := Validate(fh, FieldFile)
		if c.ok && err != nil {
			t.Errorf("file %v rejected: %v", c.filename, err)
		}
		if !c.ok && err == nil {
			t.Errorf("file %v accepted", c.filename)
		}
	}
}

func TestGenerateName(t *testing.T) {
	a := GenerateName("report.PDF")
	if !strings.HasSuffix(a, ".PDF") {
		t.Errorf("extension not preserved in %v", a)
	}
	b := GenerateName("report.PDF")
	if a == b {
		t.Errorf("generated names collide: %v", a)
	}
}

func TestSaveFile(t *testing.T) {
	s := NewStore(t.TempDir())
	content := []byte("pdf content")
	fh := makeFileHeader(t, "file", "intro.pdf", "application/pdf", content)

	saved, err := s.Save(fh, FieldFile, "Programming Guides")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(saved.RelPath, "files/programming-guides/") {
		t.Errorf("unexpected rel path %v", saved.RelPath)
	}
	if strings.Contains(saved.RelPath, "\\") {
		t.Errorf("rel path contains backslash: %v", saved.RelPath)
	}
	got, err := os.ReadFile(saved.FullPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("stored bytes differ from uploaded bytes")
	}
	if _, err = os.Stat(saved.FullPath + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind")
	}
}

func TestSaveGeneratesDistinctNames(t *testing.T) {
	s := NewStore(t.TempDir())
	fh := makeFileHeader(t, "file", "intro.pdf", "application/pdf", []byte("x"))
	first, err := s.Save(fh, FieldFile, "Guides")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Save(fh, FieldFile, "Guides")
	if err != nil {
		t.Fatal(err)
	}
	if first.RelPath == second.RelPath {
		t.Errorf("two saves landed on the same path %v", first.RelPath)
	}
	dir := filepath.Dir(first.FullPath)
	if filepath.Dir(second.FullPath) != dir {
		t.Errorf("saves for the same category landed in different directories")
	}
}

func TestSaveRejectedWritesNothing(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root)
	fh := makeFileHeader(t, "file", "malware.exe", "application/octet-stream", []byte("x"))

	if _, err := s.Save(fh, FieldFile, "Guides"); err == nil {
		t.Fatal("expected validation error")
	}
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("rejected upload left files behind: %v", files)
	}
}

func TestSaveCoverCreatesThumbDir(t *testing.T) {
	s := NewStore(t.TempDir())
	fh := makeFileHeader(t, "cover_image", "photo.png", "image/png", []byte("x"))
	if _, err := s.Save(fh, FieldCover, "Guides"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(s.ThumbDir("guides"))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("thumbnails path is not a directory")
	}
}

func TestSaveStreamsLargeFile(t *testing.T) {
	s := NewStore(t.TempDir())
	content := bytes.Repeat([]byte("0123456789abcdef"), 64*1024)
	fh := makeFileHeader(t, "file", "big.zip", "application/zip", content)

	saved, err := s.Save(fh, FieldFile, "Archives")
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(saved.FullPath)
	if err != nil {
		t.Fatal(err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Error("large upload content mismatch")
	}
}
