// Package mediaはアップロード画像の正規化を行う。
// 失敗しても呼び出し側は元ファイルをそのまま使う（best-effort）。
package media

import (
	"github.com/disintegration/imaging"
)

const (
	// 横幅の上限。超えたら縦横比を保って縮小する。
	MaxWidth = 1200

	// 再エンコード時のJPEG品質
	JPEGQuality = 85
)

// Normalizeはpathの画像をデコードし、RGBに揃え、
// 横幅をMaxWidthに収めて同じパスへ再エンコードする。
func Normalize(path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}

	// アルファ付き・パレット形式もここでNRGBAに揃う
	out := imaging.Clone(img)

	if out.Bounds().Dx() > MaxWidth {
		// Lanczosで縮小（高品質リサンプリング）
		out = imaging.Resize(out, MaxWidth, 0, imaging.Lanczos)
	}

	return imaging.Save(out, path, imaging.JPEGQuality(JPEGQuality))
}
