package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AvatarPreset は保存されたアバター設定
type AvatarPreset struct {
	PresetID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"preset_id"`
	AccountID uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`
	Style     string         `gorm:"type:varchar(50);not null" json:"style"`
	Seed      string         `gorm:"type:varchar(100);not null" json:"seed"`
	Options   datatypes.JSON `json:"options"`
	CreatedAt time.Time      `json:"created_at"`
}

func (AvatarPreset) TableName() string {
	return "avatar_presets"
}

// SaveAvatarRequest はアバター保存APIのリクエストDTO
type SaveAvatarRequest struct {
	Name    string         `json:"name" validate:"required,min=1,max=100"`
	Style   string         `json:"style" validate:"omitempty,max=50"`
	Seed    string         `json:"seed" validate:"required,max=100"`
	Options datatypes.JSON `json:"options"`
}

// SaveAvatarResponse はアバター保存の結果
type SaveAvatarResponse struct {
	Preset         *AvatarPreset `json:"preset"`
	AvatarsCreated int           `json:"avatars_created"`
}
