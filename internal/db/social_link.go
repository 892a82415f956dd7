package db

// SocialLink 用于保存页脚展示的社交平台链接
// Order 值越小越靠前
type SocialLink struct {
	Model
	Platform string `gorm:"size:50;not null" json:"platform"`
	URL      string `gorm:"size:200;not null" json:"url"`
	IsActive bool   `gorm:"not null" json:"is_active"`
	Order    int    `gorm:"column:sort_order;not null;index" json:"order"`
}
