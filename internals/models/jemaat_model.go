// internals/models/jemaat_model.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

type JemaatModel struct {
	IDJemaat string `gorm:"column:id_jemaat;type:varchar(30);primaryKey" json:"id_jemaat"`
	Nama     string `gorm:"column:nama;type:varchar(150);not null;index" json:"nama"`

	// true = laki-laki ("L")
	JenisKelamin   bool            `gorm:"column:jenis_kelamin;not null;default:false" json:"jenis_kelamin"`
	TanggalLahir   *datatypes.Date `gorm:"column:tanggal_lahir" json:"tanggal_lahir,omitempty"`
	GolDarah       *string         `gorm:"column:gol_darah;type:varchar(3)" json:"gol_darah,omitempty"`
	StatusDalamKel *string         `gorm:"column:status_dalam_kel;type:varchar(50)" json:"status_dalam_kel,omitempty"`

	IDKeluarga   *string `gorm:"column:id_keluarga;type:varchar(30);index" json:"id_keluarga,omitempty"`
	IDStatus     *string `gorm:"column:id_status;type:varchar(20);index" json:"id_status,omitempty"`
	IDPendidikan *string `gorm:"column:id_pendidikan;type:varchar(20);index" json:"id_pendidikan,omitempty"`
	IDPekerjaan  *string `gorm:"column:id_pekerjaan;type:varchar(20);index" json:"id_pekerjaan,omitempty"`
	IDPendapatan *string `gorm:"column:id_pendapatan;type:varchar(20)" json:"id_pendapatan,omitempty"`
	IDJaminan    *string `gorm:"column:id_jaminan;type:varchar(20)" json:"id_jaminan,omitempty"`
	IDPernikahan *string `gorm:"column:id_pernikahan;type:varchar(40);index" json:"id_pernikahan,omitempty"`

	Keluarga   *KeluargaModel      `gorm:"foreignKey:IDKeluarga;references:IDKeluarga" json:"keluarga,omitempty"`
	Status     *StatusJemaatModel  `gorm:"foreignKey:IDStatus;references:IDStatus" json:"status,omitempty"`
	Pendidikan *PendidikanModel    `gorm:"foreignKey:IDPendidikan;references:IDPendidikan" json:"pendidikan,omitempty"`
	Pekerjaan  *PekerjaanModel     `gorm:"foreignKey:IDPekerjaan;references:IDPekerjaan" json:"pekerjaan,omitempty"`
	Pendapatan *PendapatanModel    `gorm:"foreignKey:IDPendapatan;references:IDPendapatan" json:"pendapatan,omitempty"`
	Jaminan    *JaminanModel       `gorm:"foreignKey:IDJaminan;references:IDJaminan" json:"jaminan,omitempty"`
	Pernikahan *PernikahanModel    `gorm:"foreignKey:IDPernikahan;references:IDPernikahan" json:"pernikahan,omitempty"`
	Baptis     []BaptisModel       `gorm:"foreignKey:IDJemaat;references:IDJemaat" json:"baptis_owned,omitempty"`
	Sidi       []SidiModel         `gorm:"foreignKey:IDJemaat;references:IDJemaat" json:"sidi_owned,omitempty"`
	JabatanRel []JemaatJabatanModel `gorm:"foreignKey:IDJemaat;references:IDJemaat" json:"jabatan_rel,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (JemaatModel) TableName() string { return "jemaat" }

// JenisKelaminCode renders the stored boolean back as "L" / "P".
func (m JemaatModel) JenisKelaminCode() string {
	if m.JenisKelamin {
		return "L"
	}
	return "P"
}

type JemaatJabatanModel struct {
	IDJemaat        string          `gorm:"column:id_jemaat;type:varchar(30);primaryKey" json:"id_jemaat"`
	IDJabatan       string          `gorm:"column:id_jabatan;type:varchar(20);primaryKey" json:"id_jabatan"`
	TanggalMulai    *datatypes.Date `gorm:"column:tanggal_mulai" json:"tanggal_mulai,omitempty"`
	TanggalBerakhir *datatypes.Date `gorm:"column:tanggal_berakhir" json:"tanggal_berakhir,omitempty"`
	Aktif           bool            `gorm:"column:aktif;not null;default:true" json:"aktif"`

	Jabatan *JabatanModel `gorm:"foreignKey:IDJabatan;references:IDJabatan" json:"jabatan,omitempty"`
}

func (JemaatJabatanModel) TableName() string { return "jemaat_jabatan" }
