package repository

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/models"
	"jemaat_backend/internals/testutil"
)

func status(t *testing.T, err error) int {
	t.Helper()
	ae, ok := helper.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return ae.Status
}

func TestKindsCoverLookupTables(t *testing.T) {
	keys := []string{}
	for _, k := range Kinds() {
		keys = append(keys, k.Key)
	}
	assert.Equal(t, []string{
		"jabatan", "jaminan", "klasis", "pekerjaan", "pendapatan", "pendidikan",
		"rayon", "status-jemaat", "status-kepemilikan", "status-tanah",
	}, keys)

	_, ok := LookupKind("users")
	assert.False(t, ok)
}

func TestMasterCRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := New(db)
	ctx := context.Background()
	k, _ := LookupKind("pendidikan")

	require.NoError(t, repo.Create(ctx, k, Item{ID: "S1", Nama: "Sarjana"}))
	require.NoError(t, repo.Create(ctx, k, Item{ID: "SMA", Nama: "SMA"}))
	assert.Equal(t, fiber.StatusConflict, status(t, repo.Create(ctx, k, Item{ID: "S1", Nama: "Lain"})))

	items, err := repo.List(ctx, k)
	require.NoError(t, err)
	assert.Equal(t, []Item{{ID: "SMA", Nama: "SMA"}, {ID: "S1", Nama: "Sarjana"}}, items)

	it, err := repo.Rename(ctx, k, "S1", "Strata 1")
	require.NoError(t, err)
	assert.Equal(t, "Strata 1", it.Nama)
	got, err := repo.Get(ctx, k, "S1")
	require.NoError(t, err)
	assert.Equal(t, "Strata 1", got.Nama)

	_, err = repo.Rename(ctx, k, "NOPE", "x")
	assert.Equal(t, fiber.StatusNotFound, status(t, err))
	_, err = repo.Get(ctx, k, "NOPE")
	assert.Equal(t, fiber.StatusNotFound, status(t, err))

	require.NoError(t, db.Create(&models.JemaatModel{IDJemaat: "J1", Nama: "Yohanes", IDPendidikan: testutil.Ptr("S1")}).Error)
	assert.Equal(t, fiber.StatusConflict, status(t, repo.Delete(ctx, k, "S1")))

	require.NoError(t, repo.Delete(ctx, k, "SMA"))
	assert.Equal(t, fiber.StatusNotFound, status(t, repo.Delete(ctx, k, "SMA")))
}

func TestKlasisNameOnPernikahan(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := New(db)
	ctx := context.Background()
	k, _ := LookupKind("klasis")

	require.NoError(t, repo.Create(ctx, k, Item{ID: "K1", Nama: "Klasis Pulau Ambon"}))
	require.NoError(t, db.Create(&models.PernikahanModel{
		IDPernikahan: "P1",
		Klasis:       "Klasis Pulau Ambon",
		Tanggal:      datatypes.Date(time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)),
	}).Error)

	// rename ikut memperbarui pernikahan yang menyimpan nama lama
	_, err := repo.Rename(ctx, k, "K1", "Klasis Kota Ambon")
	require.NoError(t, err)
	var p models.PernikahanModel
	require.NoError(t, db.First(&p, "id_pernikahan = ?", "P1").Error)
	assert.Equal(t, "Klasis Kota Ambon", p.Klasis)

	assert.Equal(t, fiber.StatusConflict, status(t, repo.Delete(ctx, k, "K1")))

	require.NoError(t, db.Delete(&models.PernikahanModel{}, "id_pernikahan = ?", "P1").Error)
	require.NoError(t, repo.Delete(ctx, k, "K1"))
}

func TestWilayahParentFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	for _, v := range []any{
		&models.ProvinsiModel{IDProvinsi: "81", Nama: "Maluku"},
		&models.ProvinsiModel{IDProvinsi: "82", Nama: "Maluku Utara"},
		&models.KotaKabModel{IDKotaKab: "8171", Nama: "Kota Ambon", IDProvinsi: "81"},
		&models.KotaKabModel{IDKotaKab: "8101", Nama: "Maluku Tengah", IDProvinsi: "81"},
		&models.KotaKabModel{IDKotaKab: "8271", Nama: "Kota Ternate", IDProvinsi: "82"},
		&models.KecamatanModel{IDKecamatan: "817101", Nama: "Nusaniwe", IDKotaKab: "8171"},
		&models.KelurahanModel{IDKelurahan: "8171011001", Nama: "Benteng", IDKecamatan: "817101"},
	} {
		require.NoError(t, db.Create(v).Error)
	}
	repo := New(db)
	ctx := context.Background()

	prov, err := repo.Provinsi(ctx)
	require.NoError(t, err)
	assert.Len(t, prov, 2)

	kk, err := repo.KotaKab(ctx, testutil.Ptr("81"))
	require.NoError(t, err)
	require.Len(t, kk, 2)
	assert.Equal(t, "Kota Ambon", kk[0].Nama)

	all, err := repo.KotaKab(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	kec, err := repo.Kecamatan(ctx, testutil.Ptr("8271"))
	require.NoError(t, err)
	assert.Empty(t, kec)

	kel, err := repo.Kelurahan(ctx, testutil.Ptr("817101"))
	require.NoError(t, err)
	require.Len(t, kel, 1)
	assert.Equal(t, "Benteng", kel[0].Nama)
}
