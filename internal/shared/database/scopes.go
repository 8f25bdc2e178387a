package database

import "gorm.io/gorm"

func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		switch {
		case pageSize > 100:
			pageSize = 100
		case pageSize < 1:
			pageSize = 20
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// NormalizePage applies the same bounds as Paginate for response metadata.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize < 1:
		pageSize = 20
	}
	return page, pageSize
}
