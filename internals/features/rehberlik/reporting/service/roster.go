package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rehberlik_backend/internals/features/rehberlik/records/model"
	helper "rehberlik_backend/internals/helpers"
)

// MatchTeacher normalize isimle kadroda öğretmen arar. Yalnızca
// görüntü zenginleştirmesi içindir; bulunamazsa (nil, nil) döner ve
// aggregation doğruluğu etkilenmez.
//
// DB tarafında Türkçe katlamalı karşılaştırma yapılamadığından kadro
// çekilip bellekte normalize eşleştirilir; kadro tablosu küçüktür.
func MatchTeacher(ctx context.Context, db *gorm.DB, normalizedName string) (*model.TeacherRosterModel, error) {
	if normalizedName == "" {
		return nil, nil
	}
	var rows []model.TeacherRosterModel
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	for i := range rows {
		if helper.NormalizeText(rows[i].TeacherRosterName) == normalizedName {
			return &rows[i], nil
		}
	}
	return nil, nil
}
