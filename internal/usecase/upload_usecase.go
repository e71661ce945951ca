package usecase

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"app/internal/media"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// 画像アップロードの制約
const (
	MaxUploadSize = 5 << 20 // 5MiB
	uploadSubdir  = "products"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type UploadUsecase struct {
	uploadDir string
}

func NewUploadUsecase(uploadDir string) *UploadUsecase {
	return &UploadUsecase{uploadDir: uploadDir}
}

type UploadOutput struct {
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
}

// SaveImageは検証に通った画像だけをディスクへ書く。
// 拡張子・サイズの検証はすべて書き込み前に行うので、
// 不正なファイルで1バイトも書かれることはない。
// 保存後の正規化は失敗してもログに残すだけで、元ファイルが有効なまま。
func (u *UploadUsecase) SaveImage(filename string, size int64, src io.Reader) (UploadOutput, error) {
	if strings.TrimSpace(filename) == "" {
		return UploadOutput{}, NewHTTPError(http.StatusBadRequest, "No file selected")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return UploadOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid file type. Allowed: PNG, JPG, JPEG, GIF, WEBP")
	}

	if size > MaxUploadSize {
		return UploadOutput{}, NewHTTPError(http.StatusBadRequest, "File too large. Maximum size is 5MB")
	}

	// 元のファイル名は使わない。ランダム名＋検証済み拡張子だけを残す。
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	dir := filepath.Join(u.uploadDir, uploadSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return UploadOutput{}, NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return UploadOutput{}, NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return UploadOutput{}, NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return UploadOutput{}, NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}

	if err := media.Normalize(path); err != nil {
		log.Warnf("image normalize skipped: %v", err)
	}

	return UploadOutput{
		ImageURL: "/uploads/" + uploadSubdir + "/" + name,
		Filename: name,
	}, nil
}
