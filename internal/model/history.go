package model

import "time"

// SearchHistory links a user to a product they looked up. A repeat lookup of
// the same product within the dedup window updates SearchedAt in place
// instead of inserting a new row.
type SearchHistory struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"user_id" gorm:"index:idx_history_user_time,priority:1;not null"`
	ProductID   uint      `json:"product_id" gorm:"index;not null"`
	ProductName string    `json:"product_name" gorm:"type:varchar(255);not null"`
	SearchedAt  time.Time `json:"searched_at" gorm:"index:idx_history_user_time,priority:2,sort:desc"`
}

// HistoryDedupWindow is the recency window within which a repeat lookup of
// the same (user, product) pair refreshes the existing row.
const HistoryDedupWindow = 24 * time.Hour
