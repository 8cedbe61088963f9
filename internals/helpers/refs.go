package helper

import "gorm.io/gorm"

// Ref is one foreign-key style reference checked before a write.
// A nil ID means the column is left empty and is not checked.
type Ref struct {
	Table  string
	Column string
	Label  string
	ID     *string
}

// RefID picks the value of col out of a PATCH change set; nil when the
// column is absent or being cleared.
func RefID(changes map[string]any, col string) *string {
	v, ok := changes[col].(string)
	if !ok {
		return nil
	}
	return &v
}

// EnsureRefs answers 400 "<Label> <id> tidak ditemukan" for the first
// reference whose row does not exist.
func EnsureRefs(tx *gorm.DB, refs ...Ref) error {
	for _, r := range refs {
		if r.ID == nil {
			continue
		}
		var n int64
		if err := tx.Table(r.Table).Where(r.Column+" = ?", *r.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return NewBadRequest(r.Label + " " + *r.ID + " tidak ditemukan")
		}
	}
	return nil
}
