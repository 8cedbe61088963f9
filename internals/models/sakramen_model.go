// internals/models/sakramen_model.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

type BaptisModel struct {
	IDBaptis string         `gorm:"column:id_baptis;type:varchar(40);primaryKey" json:"id_baptis"`
	IDJemaat string         `gorm:"column:id_jemaat;type:varchar(30);not null;index" json:"id_jemaat"`
	Tanggal  datatypes.Date `gorm:"column:tanggal;not null;index" json:"tanggal"`
	IDKlasis *string        `gorm:"column:id_klasis;type:varchar(20);index" json:"id_klasis,omitempty"`

	Jemaat *JemaatModel `gorm:"foreignKey:IDJemaat;references:IDJemaat" json:"jemaat,omitempty"`
	Klasis *KlasisModel `gorm:"foreignKey:IDKlasis;references:IDKlasis" json:"klasis,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BaptisModel) TableName() string { return "baptis" }

type SidiModel struct {
	IDSidi   string         `gorm:"column:id_sidi;type:varchar(40);primaryKey" json:"id_sidi"`
	IDJemaat string         `gorm:"column:id_jemaat;type:varchar(30);not null;index" json:"id_jemaat"`
	Tanggal  datatypes.Date `gorm:"column:tanggal;not null;index" json:"tanggal"`
	IDKlasis *string        `gorm:"column:id_klasis;type:varchar(20);index" json:"id_klasis,omitempty"`

	Jemaat *JemaatModel `gorm:"foreignKey:IDJemaat;references:IDJemaat" json:"jemaat,omitempty"`
	Klasis *KlasisModel `gorm:"foreignKey:IDKlasis;references:IDKlasis" json:"klasis,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SidiModel) TableName() string { return "sidi" }

// PernikahanModel stores the klasis by NAME, not by id. Lookups by klasis id
// have to resolve the name first.
type PernikahanModel struct {
	IDPernikahan string         `gorm:"column:id_pernikahan;type:varchar(40);primaryKey" json:"id_pernikahan"`
	Klasis       string         `gorm:"column:klasis;type:varchar(100);not null;index" json:"klasis"`
	Tanggal      datatypes.Date `gorm:"column:tanggal;not null;index" json:"tanggal"`

	Jemaats []JemaatModel `gorm:"foreignKey:IDPernikahan;references:IDPernikahan" json:"jemaats,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PernikahanModel) TableName() string { return "pernikahan" }
