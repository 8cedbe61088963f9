// internals/models/master_model.go
package models

// Lookup tables: id -> label, used for filtering and display only.

type RayonModel struct {
	IDRayon string `gorm:"column:id_rayon;type:varchar(20);primaryKey" json:"id_rayon"`
	Nama    string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (RayonModel) TableName() string { return "rayon" }

type StatusKepemilikanModel struct {
	IDStatusKepemilikan string `gorm:"column:id_status_kepemilikan;type:varchar(20);primaryKey" json:"id_status_kepemilikan"`
	Nama                string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (StatusKepemilikanModel) TableName() string { return "status_kepemilikan" }

type StatusTanahModel struct {
	IDStatusTanah string `gorm:"column:id_status_tanah;type:varchar(20);primaryKey" json:"id_status_tanah"`
	Nama          string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (StatusTanahModel) TableName() string { return "status_tanah" }

type PendidikanModel struct {
	IDPendidikan string `gorm:"column:id_pendidikan;type:varchar(20);primaryKey" json:"id_pendidikan"`
	Nama         string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (PendidikanModel) TableName() string { return "pendidikan" }

type PekerjaanModel struct {
	IDPekerjaan string `gorm:"column:id_pekerjaan;type:varchar(20);primaryKey" json:"id_pekerjaan"`
	Nama        string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (PekerjaanModel) TableName() string { return "pekerjaan" }

type KlasisModel struct {
	IDKlasis string `gorm:"column:id_klasis;type:varchar(20);primaryKey" json:"id_klasis"`
	Nama     string `gorm:"column:nama;type:varchar(100);not null;uniqueIndex" json:"nama"`
}

func (KlasisModel) TableName() string { return "klasis" }

type JabatanModel struct {
	IDJabatan string `gorm:"column:id_jabatan;type:varchar(20);primaryKey" json:"id_jabatan"`
	Nama      string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (JabatanModel) TableName() string { return "jabatan" }

type StatusJemaatModel struct {
	IDStatus string `gorm:"column:id_status;type:varchar(20);primaryKey" json:"id_status"`
	Nama     string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (StatusJemaatModel) TableName() string { return "status_jemaat" }

type PendapatanModel struct {
	IDPendapatan string `gorm:"column:id_pendapatan;type:varchar(20);primaryKey" json:"id_pendapatan"`
	Nama         string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (PendapatanModel) TableName() string { return "pendapatan" }

type JaminanModel struct {
	IDJaminan string `gorm:"column:id_jaminan;type:varchar(20);primaryKey" json:"id_jaminan"`
	Nama      string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (JaminanModel) TableName() string { return "jaminan" }
