package masters

import (
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jemaat_backend/internals/models"
)

//go:embed data_wilayah.json
var wilayahJSON []byte

type wilayahSeed struct {
	ID      string  `json:"id"`
	Nama    string  `json:"nama"`
	Parent  string  `json:"parent"`
	KodePos *string `json:"kode_pos"`
}

type wilayahData struct {
	Provinsi  []wilayahSeed `json:"provinsi"`
	KotaKab   []wilayahSeed `json:"kota_kab"`
	Kecamatan []wilayahSeed `json:"kecamatan"`
	Kelurahan []wilayahSeed `json:"kelurahan"`
}

// SeedWilayah loads the administrative hierarchy top-down so every parent
// exists before its children.
func SeedWilayah(db *gorm.DB) error {
	var d wilayahData
	if err := sonic.Unmarshal(wilayahJSON, &d); err != nil {
		return fmt.Errorf("decode data_wilayah.json: %w", err)
	}

	skip := clause.OnConflict{DoNothing: true}
	for _, w := range d.Provinsi {
		if err := db.Clauses(skip).Create(&models.ProvinsiModel{IDProvinsi: w.ID, Nama: w.Nama}).Error; err != nil {
			return fmt.Errorf("seed provinsi %s: %w", w.ID, err)
		}
	}
	for _, w := range d.KotaKab {
		if err := db.Clauses(skip).Create(&models.KotaKabModel{IDKotaKab: w.ID, Nama: w.Nama, IDProvinsi: w.Parent}).Error; err != nil {
			return fmt.Errorf("seed kota/kab %s: %w", w.ID, err)
		}
	}
	for _, w := range d.Kecamatan {
		if err := db.Clauses(skip).Create(&models.KecamatanModel{IDKecamatan: w.ID, Nama: w.Nama, IDKotaKab: w.Parent}).Error; err != nil {
			return fmt.Errorf("seed kecamatan %s: %w", w.ID, err)
		}
	}
	for _, w := range d.Kelurahan {
		m := &models.KelurahanModel{IDKelurahan: w.ID, Nama: w.Nama, KodePos: w.KodePos, IDKecamatan: w.Parent}
		if err := db.Clauses(skip).Create(m).Error; err != nil {
			return fmt.Errorf("seed kelurahan %s: %w", w.ID, err)
		}
	}
	zap.L().Info("wilayah seeded", zap.Int("kelurahan", len(d.Kelurahan)))
	return nil
}
