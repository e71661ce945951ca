package usecase

import (
	"context"
	"net/http"
	"strings"

	repo "app/internal/repository"
)

type SettingUsecase struct {
	settings repo.SettingRepository
	tx       repo.TransactionManager
}

func NewSettingUsecase(settings repo.SettingRepository, tx repo.TransactionManager) *SettingUsecase {
	return &SettingUsecase{settings: settings, tx: tx}
}

// 全設定をkey→valueのmapで返す
func (u *SettingUsecase) GetSettings(ctx context.Context) (map[string]string, error) {
	rows, err := u.settings.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

// 渡されたkeyだけをまとめてupsertする。渡されなかったkeyは変更しない。
// 全件をひとつのトランザクションで書くので、失敗時は何も変わらない。
func (u *SettingUsecase) UpdateSettings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return NewHTTPError(http.StatusBadRequest, "no settings provided")
	}
	for k := range values {
		if strings.TrimSpace(k) == "" {
			return NewHTTPError(http.StatusBadRequest, "empty key")
		}
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for k, v := range values {
			if err := r.Settings().Upsert(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
