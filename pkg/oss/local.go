package oss

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Local stores objects below Dir and serves them under URLPrefix.
type Local struct {
	Dir       string
	URLPrefix string
}

func NewLocal(dir, urlPrefix string) *Local {
	return &Local{Dir: dir, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (l *Local) path(objectName string) (string, error) {
	clean := path.Clean("/" + objectName)
	if clean == "/" {
		return "", errors.Errorf("invalid object name %q", objectName)
	}
	return filepath.Join(l.Dir, filepath.FromSlash(clean)), nil
}

func (l *Local) Put(_ context.Context, objectName string, r io.Reader, _ int64, _ string) (string, error) {
	p, err := l.path(objectName)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "Failed to create folders")
	}
	f, err := os.Create(p)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", p)
	}
	defer f.Close()
	if _, err = io.Copy(f, r); err != nil {
		return "", errors.Wrapf(err, "write %s", p)
	}
	return l.URLPrefix + "/" + strings.TrimLeft(path.Clean("/"+objectName), "/"), nil
}

func (l *Local) Fetch(_ context.Context, objectName, dst string) error {
	p, err := l.path(objectName)
	if err != nil {
		return err
	}
	src, err := os.Open(p)
	if err != nil {
		return errors.Wrapf(err, "open %s", p)
	}
	defer src.Close()
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "create %s", dst)
	}
	defer out.Close()
	_, err = io.Copy(out, src)
	return errors.Wrapf(err, "copy %s", p)
}

func (l *Local) Remove(_ context.Context, objectName string) error {
	p, err := l.path(objectName)
	if err != nil {
		return err
	}
	if err = os.Remove(p); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove %s", p)
	}
	return nil
}

func (l *Local) ObjectName(url string) (string, bool) {
	prefix := l.URLPrefix + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}
