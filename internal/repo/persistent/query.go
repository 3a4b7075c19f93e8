package persistent

import (
	"strings"

	"videotube/internal/entity"

	"gorm.io/gorm"
)

// joinOwner inner-joins the live user referenced by column, dropping rows
// whose owner is gone.
func joinOwner(q *gorm.DB, column string) *gorm.DB {
	return q.Joins("JOIN users ON users.id = " + column + " AND users.deleted_at IS NULL")
}

func paginate(q *gorm.DB, page entity.PageRequest) *gorm.DB {
	return q.Limit(page.Limit).Offset(page.Offset())
}

// containsPattern builds a LIKE pattern for a case-insensitive substring match.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

// countAndFind counts the rows matched by q, then loads one page of them into
// dest with load applying projection, preloads and ordering. Preloads must not
// reach the count query.
func countAndFind(q *gorm.DB, page entity.PageRequest, dest interface{}, load func(*gorm.DB) *gorm.DB) (int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 || int64(page.Offset()) >= total {
		return total, nil
	}

	if err := paginate(load(q), page).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
