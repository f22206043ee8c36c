// file: services/hint.go
package services

import (
	"NovaCTF/models"
	"NovaCTF/utils"
	"errors"
	"time"

	"gorm.io/gorm"
)

// UnlockHint 为用户解锁一条提示并返回内容。
// (user_id, hint_id) 唯一索引保证重复解锁幂等：已解锁时直接返回内容。
func UnlockHint(db *gorm.DB, userID, hintID uint32) (*models.Hint, error) {
	var hint models.Hint
	if err := db.First(&hint, hintID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("hint not found")
		}
		return nil, err
	}

	unlock := models.HintUnlock{
		HintID:     hintID,
		UserID:     userID,
		UnlockedAt: time.Now(),
	}
	if err := db.Create(&unlock).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	return &hint, nil
}

// HintUnlocked 用户是否已解锁该提示
func HintUnlocked(db *gorm.DB, userID, hintID uint32) (bool, error) {
	var count int64
	err := db.Model(&models.HintUnlock{}).
		Where("user_id = ? AND hint_id = ?", userID, hintID).
		Count(&count).Error
	return count > 0, err
}
