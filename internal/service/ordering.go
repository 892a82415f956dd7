package service

import "gorm.io/gorm"

// nextSortOrder returns one past the highest sort_order stored for T, or 1
// when the table is empty.
func nextSortOrder[T any](tx *gorm.DB) (int, error) {
	var maxOrder int
	if err := tx.Model(new(T)).Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}
