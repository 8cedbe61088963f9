// internals/models/keluarga_model.go
package models

import "time"

type AlamatModel struct {
	IDAlamat    string `gorm:"column:id_alamat;type:varchar(40);primaryKey" json:"id_alamat"`
	Jalan       string `gorm:"column:jalan;type:varchar(255);not null" json:"jalan"`
	RT          int    `gorm:"column:rt;not null;default:0" json:"rt"`
	RW          int    `gorm:"column:rw;not null;default:0" json:"rw"`
	IDKelurahan string `gorm:"column:id_kelurahan;type:varchar(20);not null;index" json:"id_kelurahan"`

	Kelurahan *KelurahanModel `gorm:"foreignKey:IDKelurahan;references:IDKelurahan" json:"kelurahan,omitempty"`
}

func (AlamatModel) TableName() string { return "alamat" }

type KeluargaModel struct {
	IDKeluarga string `gorm:"column:id_keluarga;type:varchar(30);primaryKey" json:"id_keluarga"`

	// member id of the head of household; not a relation to avoid a jemaat<->keluarga cycle
	IDKepalaKeluarga *string `gorm:"column:id_kepala_keluarga;type:varchar(30);index" json:"id_kepala_keluarga,omitempty"`

	IDRayon             *string `gorm:"column:id_rayon;type:varchar(20);index" json:"id_rayon,omitempty"`
	IDStatusKepemilikan *string `gorm:"column:id_status_kepemilikan;type:varchar(20);index" json:"id_status_kepemilikan,omitempty"`
	IDStatusTanah       *string `gorm:"column:id_status_tanah;type:varchar(20);index" json:"id_status_tanah,omitempty"`
	IDAlamat            *string `gorm:"column:id_alamat;type:varchar(40);uniqueIndex" json:"id_alamat,omitempty"`

	Alamat            *AlamatModel            `gorm:"foreignKey:IDAlamat;references:IDAlamat" json:"alamat,omitempty"`
	Rayon             *RayonModel             `gorm:"foreignKey:IDRayon;references:IDRayon" json:"rayon,omitempty"`
	StatusKepemilikan *StatusKepemilikanModel `gorm:"foreignKey:IDStatusKepemilikan;references:IDStatusKepemilikan" json:"status_kepemilikan,omitempty"`
	StatusTanah       *StatusTanahModel       `gorm:"foreignKey:IDStatusTanah;references:IDStatusTanah" json:"status_tanah,omitempty"`
	Jemaat            []JemaatModel           `gorm:"foreignKey:IDKeluarga;references:IDKeluarga" json:"jemaat,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KeluargaModel) TableName() string { return "keluarga" }
