package models

// All lists every persisted model for AutoMigrate.
func All() []any {
	return []any{
		&ProvinsiModel{},
		&KotaKabModel{},
		&KecamatanModel{},
		&KelurahanModel{},
		&RayonModel{},
		&StatusKepemilikanModel{},
		&StatusTanahModel{},
		&PendidikanModel{},
		&PekerjaanModel{},
		&KlasisModel{},
		&JabatanModel{},
		&StatusJemaatModel{},
		&PendapatanModel{},
		&JaminanModel{},
		&AlamatModel{},
		&KeluargaModel{},
		&PernikahanModel{},
		&JemaatModel{},
		&JemaatJabatanModel{},
		&BaptisModel{},
		&SidiModel{},
		&AdminUserModel{},
	}
}
