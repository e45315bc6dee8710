package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UniqueFileName builds "<unixmillis>-<random>.<ext>" keeping the extension of original.
func UniqueFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), random, ext)
}

// TotalPages rounds total/limit up.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
