package model

import (
	"time"

	"github.com/google/uuid"
)

// Rarity はアイテムのレア度。見た目のみで効果はない
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// UnlockMethod はアイテムを入手した経路
type UnlockMethod string

const (
	UnlockMethodPurchase          UnlockMethod = "purchase"
	UnlockMethodAchievementReward UnlockMethod = "achievement-reward"
	UnlockMethodDefault           UnlockMethod = "default"
)

// CatalogItem は購入・解放できるカスタマイズ項目の定義 (作成後は不変)
type CatalogItem struct {
	ItemID      uint   `gorm:"primaryKey" json:"item_id"`
	Style       string `gorm:"type:varchar(50);not null;uniqueIndex:uq_catalog_item" json:"style"`
	Category    string `gorm:"type:varchar(50);not null;uniqueIndex:uq_catalog_item" json:"category"`
	Value       string `gorm:"type:varchar(100);not null;uniqueIndex:uq_catalog_item" json:"value"`
	UnlockLevel int    `gorm:"not null;default:1" json:"unlock_level"`
	UnlockCost  int    `gorm:"not null;default:0" json:"unlock_cost"`
	Rarity      Rarity `gorm:"type:varchar(20);not null;default:common" json:"rarity"`
	IsDefault   bool   `gorm:"not null;default:false;index" json:"is_default"`
	// RewardOf が空でない場合、その実績の報酬としてのみ入手できる
	RewardOf string `gorm:"type:varchar(50);not null;default:''" json:"reward_of,omitempty"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}

// Purchasable は購入で入手できるアイテムかどうか
func (c *CatalogItem) Purchasable() bool {
	return !c.IsDefault && c.RewardOf == ""
}

// UnlockRecord はアカウントとカタログアイテムの所有関係
type UnlockRecord struct {
	UnlockID     uuid.UUID    `gorm:"type:uuid;primaryKey" json:"unlock_id"`
	AccountID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_unlock_item" json:"-"`
	Style        string       `gorm:"type:varchar(50);not null;uniqueIndex:uq_unlock_item" json:"style"`
	Category     string       `gorm:"type:varchar(50);not null;uniqueIndex:uq_unlock_item" json:"category"`
	Value        string       `gorm:"type:varchar(100);not null;uniqueIndex:uq_unlock_item" json:"value"`
	ItemID       uint         `gorm:"not null;index" json:"item_id"`
	UnlockMethod UnlockMethod `gorm:"type:varchar(30);not null" json:"unlock_method"`
	UnlockedAt   time.Time    `gorm:"not null" json:"unlocked_at"`
	IsEquipped   bool         `gorm:"not null;default:false" json:"is_equipped"`
}

func (UnlockRecord) TableName() string {
	return "unlock_records"
}

// NewUnlockRecord は item の複合キーを写した所有レコードを生成します。
func NewUnlockRecord(accountID uuid.UUID, item *CatalogItem, method UnlockMethod, at time.Time) *UnlockRecord {
	return &UnlockRecord{
		UnlockID:     uuid.New(),
		AccountID:    accountID,
		Style:        item.Style,
		Category:     item.Category,
		Value:        item.Value,
		ItemID:       item.ItemID,
		UnlockMethod: method,
		UnlockedAt:   at,
	}
}

const DefaultAvatarStyle = "avataaars"

// DefaultCatalog は起動時に投入する静的カタログ
func DefaultCatalog() []CatalogItem {
	return []CatalogItem{
		{Style: DefaultAvatarStyle, Category: "topType", Value: "ShortHairShortFlat", UnlockLevel: 1, Rarity: RarityCommon, IsDefault: true},
		{Style: DefaultAvatarStyle, Category: "topType", Value: "LongHairStraight", UnlockLevel: 1, Rarity: RarityCommon, IsDefault: true},
		{Style: DefaultAvatarStyle, Category: "hairColor", Value: "Brown", UnlockLevel: 1, Rarity: RarityCommon, IsDefault: true},
		{Style: DefaultAvatarStyle, Category: "skinColor", Value: "Light", UnlockLevel: 1, Rarity: RarityCommon, IsDefault: true},
		{Style: DefaultAvatarStyle, Category: "clotheType", Value: "Hoodie", UnlockLevel: 1, Rarity: RarityCommon, IsDefault: true},
		{Style: DefaultAvatarStyle, Category: "topType", Value: "LongHairCurly", UnlockLevel: 3, UnlockCost: 50, Rarity: RarityRare},
		{Style: DefaultAvatarStyle, Category: "accessoriesType", Value: "Sunglasses", UnlockLevel: 4, UnlockCost: 100, Rarity: RarityEpic},
		{Style: DefaultAvatarStyle, Category: "hairColor", Value: "Blonde", UnlockLevel: 2, UnlockCost: 30, Rarity: RarityCommon},
		{Style: DefaultAvatarStyle, Category: "clotheType", Value: "GraphicShirt", UnlockLevel: 2, UnlockCost: 40, Rarity: RarityRare},
		{Style: DefaultAvatarStyle, Category: "accessoriesType", Value: "Kurt", UnlockLevel: 1, Rarity: RarityLegendary, RewardOf: AchievementLegendStatus},
	}
}

// CatalogItemResponse はカタログ一覧のレスポンスDTO
type CatalogItemResponse struct {
	CatalogItem
	Owned       bool `json:"owned"`
	LevelLocked bool `json:"level_locked"`
}

// PurchaseResponse はアイテム購入の結果
type PurchaseResponse struct {
	Unlock      *UnlockRecord `json:"unlock"`
	CoinBalance int           `json:"coin_balance"`
}

// UnlockedItemsResponse は所有アイテムをカテゴリごとにまとめたレスポンスDTO
type UnlockedItemsResponse struct {
	Total      int                        `json:"total"`
	ByCategory map[string][]*UnlockRecord `json:"by_category"`
}
