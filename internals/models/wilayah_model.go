// internals/models/wilayah_model.go
package models

/*
Administrative hierarchy, always walked in this order:
kelurahan -> kecamatan -> kota_kab -> provinsi
*/

type ProvinsiModel struct {
	IDProvinsi string `gorm:"column:id_provinsi;type:varchar(20);primaryKey" json:"id_provinsi"`
	Nama       string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
}

func (ProvinsiModel) TableName() string { return "provinsi" }

type KotaKabModel struct {
	IDKotaKab  string `gorm:"column:id_kota_kab;type:varchar(20);primaryKey" json:"id_kota_kab"`
	Nama       string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
	IDProvinsi string `gorm:"column:id_provinsi;type:varchar(20);not null;index" json:"id_provinsi"`

	Provinsi *ProvinsiModel `gorm:"foreignKey:IDProvinsi;references:IDProvinsi" json:"provinsi,omitempty"`
}

func (KotaKabModel) TableName() string { return "kota_kab" }

type KecamatanModel struct {
	IDKecamatan string `gorm:"column:id_kecamatan;type:varchar(20);primaryKey" json:"id_kecamatan"`
	Nama        string `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
	IDKotaKab   string `gorm:"column:id_kota_kab;type:varchar(20);not null;index" json:"id_kota_kab"`

	KotaKab *KotaKabModel `gorm:"foreignKey:IDKotaKab;references:IDKotaKab" json:"kota_kab,omitempty"`
}

func (KecamatanModel) TableName() string { return "kecamatan" }

type KelurahanModel struct {
	IDKelurahan string  `gorm:"column:id_kelurahan;type:varchar(20);primaryKey" json:"id_kelurahan"`
	Nama        string  `gorm:"column:nama;type:varchar(100);not null" json:"nama"`
	KodePos     *string `gorm:"column:kode_pos;type:varchar(10)" json:"kode_pos,omitempty"`
	IDKecamatan string  `gorm:"column:id_kecamatan;type:varchar(20);not null;index" json:"id_kecamatan"`

	Kecamatan *KecamatanModel `gorm:"foreignKey:IDKecamatan;references:IDKecamatan" json:"kecamatan,omitempty"`
}

func (KelurahanModel) TableName() string { return "kelurahan" }
