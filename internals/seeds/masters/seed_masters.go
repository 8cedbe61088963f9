package masters

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	masterRepo "jemaat_backend/internals/features/masters/repository"
)

//go:embed data_masters.json
var mastersJSON []byte

type itemSeed struct {
	ID   string `json:"id"`
	Nama string `json:"nama"`
}

// SeedMasters inserts the lookup rows that are missing; existing ids are
// left as they are. Returns the number of inserted rows.
func SeedMasters(db *gorm.DB) (int64, error) {
	var data map[string][]itemSeed
	if err := sonic.Unmarshal(mastersJSON, &data); err != nil {
		return 0, fmt.Errorf("decode data_masters.json: %w", err)
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var inserted int64
	for _, key := range keys {
		kind, ok := masterRepo.LookupKind(key)
		if !ok {
			return inserted, fmt.Errorf("unknown master kind %q", key)
		}
		for _, it := range data[key] {
			res := db.Table(kind.Table).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(map[string]any{kind.IDCol: it.ID, "nama": it.Nama})
			if res.Error != nil {
				return inserted, fmt.Errorf("seed %s %s: %w", key, it.ID, res.Error)
			}
			inserted += res.RowsAffected
		}
		zap.L().Info("master seeded", zap.String("kind", key), zap.Int("rows", len(data[key])))
	}
	return inserted, nil
}
