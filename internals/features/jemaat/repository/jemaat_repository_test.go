package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jemaat_backend/internals/features/jemaat/dto"
	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/models"
	"jemaat_backend/internals/testutil"
)

var ptr = testutil.Ptr[string]

func TestBuildConditionAllIsUnfiltered(t *testing.T) {
	f := dto.Filter{
		JenisKelamin:        helper.FilterValue("all"),
		GolDarah:            helper.FilterValue("all"),
		StatusDalamKel:      helper.FilterValue("all"),
		IDPendidikan:        helper.FilterValue("all"),
		IDPekerjaan:         helper.FilterValue("all"),
		IDRayon:             helper.FilterValue("all"),
		IDStatusKepemilikan: helper.FilterValue("all"),
		IDStatusTanah:       helper.FilterValue("all"),
	}
	assert.True(t, BuildCondition(f, "").IsEmpty())
	assert.Equal(t, BuildCondition(dto.Filter{}, ""), BuildCondition(f, ""))
}

func TestBuildConditionGender(t *testing.T) {
	assert.Equal(t, true, BuildCondition(dto.Filter{JenisKelamin: ptr("L")}, "").Where["jenis_kelamin"])
	assert.Equal(t, false, BuildCondition(dto.Filter{JenisKelamin: ptr("P")}, "").Where["jenis_kelamin"])
	assert.Equal(t, false, BuildCondition(dto.Filter{JenisKelamin: ptr("x")}, "").Where["jenis_kelamin"])
}

func TestBuildConditionMergesHouseholdKeys(t *testing.T) {
	cond := BuildCondition(dto.Filter{
		IDRayon:       ptr("R1"),
		IDStatusTanah: ptr("ST1"),
		IDPendidikan:  ptr("S1"),
	}, "")

	assert.Equal(t, map[string]any{"id_rayon": "R1", "id_status_tanah": "ST1"}, cond.Keluarga)
	assert.Equal(t, map[string]any{"id_pendidikan": "S1"}, cond.Where)
}

/* ===================== store-backed ===================== */

type fixture struct {
	db   *gorm.DB
	repo *Repository
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	require.NoError(t, db.Create(&models.ProvinsiModel{IDProvinsi: "P1", Nama: "Maluku"}).Error)
	require.NoError(t, db.Create(&models.KotaKabModel{IDKotaKab: "K1", Nama: "Ambon", IDProvinsi: "P1"}).Error)
	require.NoError(t, db.Create(&models.KecamatanModel{IDKecamatan: "C1", Nama: "Sirimau", IDKotaKab: "K1"}).Error)
	require.NoError(t, db.Create(&models.KelurahanModel{IDKelurahan: "L1", Nama: "Batu Meja", IDKecamatan: "C1"}).Error)
	require.NoError(t, db.Create(&models.AlamatModel{IDAlamat: "A1", Jalan: "Jl. Pattimura", RT: 1, RW: 2, IDKelurahan: "L1"}).Error)
	require.NoError(t, db.Create(&models.RayonModel{IDRayon: "R1", Nama: "Rayon 1"}).Error)
	require.NoError(t, db.Create(&models.RayonModel{IDRayon: "R2", Nama: "Rayon 2"}).Error)
	require.NoError(t, db.Create(&models.StatusTanahModel{IDStatusTanah: "ST1", Nama: "Milik"}).Error)
	require.NoError(t, db.Create(&models.JabatanModel{IDJabatan: "J1", Nama: "Majelis"}).Error)

	require.NoError(t, db.Create(&models.KeluargaModel{IDKeluarga: "KG1", IDRayon: ptr("R1"), IDStatusTanah: ptr("ST1"), IDAlamat: ptr("A1")}).Error)
	require.NoError(t, db.Create(&models.KeluargaModel{IDKeluarga: "KG2", IDRayon: ptr("R1")}).Error)
	require.NoError(t, db.Create(&models.KeluargaModel{IDKeluarga: "KG3", IDRayon: ptr("R2"), IDStatusTanah: ptr("ST1")}).Error)

	return fixture{db: db, repo: New(db)}
}

func (f fixture) member(t *testing.T, m models.JemaatModel) {
	t.Helper()
	require.NoError(t, f.db.Create(&m).Error)
}

func names(rows []models.JemaatModel) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Nama)
	}
	return out
}

func TestListPaged(t *testing.T) {
	f := setup(t)
	for i := 0; i < 25; i++ {
		f.member(t, models.JemaatModel{IDJemaat: fmt.Sprintf("J%02d", i), Nama: fmt.Sprintf("Anggota %02d", i)})
	}

	paging := helper.NewPaging(2, 10)
	res, err := f.repo.List(context.Background(), ListParams{Paging: &paging})
	require.NoError(t, err)
	require.NotNil(t, res.Metadata)

	assert.Equal(t, int64(25), res.Metadata.Total)
	assert.Equal(t, 3, res.Metadata.TotalPages)
	assert.Equal(t, 2, res.Metadata.Page)
	assert.Equal(t, 10, res.Metadata.Limit)
	require.Len(t, res.Data, 10)
	assert.Equal(t, "Anggota 10", res.Data[0].Nama)
	assert.Equal(t, "Anggota 19", res.Data[9].Nama)

	last := helper.NewPaging(3, 10)
	res, err = f.repo.List(context.Background(), ListParams{Paging: &last})
	require.NoError(t, err)
	assert.Len(t, res.Data, 5)
}

func TestListUnpagedIsOrderedByName(t *testing.T) {
	f := setup(t)
	f.member(t, models.JemaatModel{IDJemaat: "J1", Nama: "Markus"})
	f.member(t, models.JemaatModel{IDJemaat: "J2", Nama: "Andreas"})
	f.member(t, models.JemaatModel{IDJemaat: "J3", Nama: "Lukas"})

	res, err := f.repo.List(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Nil(t, res.Metadata)
	assert.Equal(t, []string{"Andreas", "Lukas", "Markus"}, names(res.Data))
}

func TestListSearchNameOrIDCaseInsensitive(t *testing.T) {
	f := setup(t)
	f.member(t, models.JemaatModel{IDJemaat: "J1", Nama: "Yohanes"})
	f.member(t, models.JemaatModel{IDJemaat: "J2", Nama: "yohannes"})
	f.member(t, models.JemaatModel{IDJemaat: "YOH-77", Nama: "Petrus"})
	f.member(t, models.JemaatModel{IDJemaat: "J4", Nama: "Maria"})

	res, err := f.repo.List(context.Background(), ListParams{Search: "Yoh"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Yohanes", "yohannes", "Petrus"}, names(res.Data))
}

func TestListSearchTreatsWildcardsLiterally(t *testing.T) {
	f := setup(t)
	f.member(t, models.JemaatModel{IDJemaat: "J1", Nama: "Ana"})

	res, err := f.repo.List(context.Background(), ListParams{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, res.Data)
}

func TestListFilters(t *testing.T) {
	f := setup(t)
	f.member(t, models.JemaatModel{IDJemaat: "J1", Nama: "Abraham", JenisKelamin: true, GolDarah: ptr("O"), IDKeluarga: ptr("KG1")})
	f.member(t, models.JemaatModel{IDJemaat: "J2", Nama: "Sara", JenisKelamin: false, GolDarah: ptr("A"), IDKeluarga: ptr("KG1")})
	f.member(t, models.JemaatModel{IDJemaat: "J3", Nama: "Ishak", JenisKelamin: true, GolDarah: ptr("A"), IDKeluarga: ptr("KG2")})
	f.member(t, models.JemaatModel{IDJemaat: "J4", Nama: "Yakub", JenisKelamin: true, IDKeluarga: ptr("KG3")})
	f.member(t, models.JemaatModel{IDJemaat: "J5", Nama: "Lot", JenisKelamin: true})

	cases := []struct {
		name   string
		filter dto.Filter
		want   []string
	}{
		{"all", dto.Filter{JenisKelamin: helper.FilterValue("all")}, []string{"Abraham", "Ishak", "Lot", "Sara", "Yakub"}},
		{"male", dto.Filter{JenisKelamin: ptr("L")}, []string{"Abraham", "Ishak", "Lot", "Yakub"}},
		{"female", dto.Filter{JenisKelamin: ptr("P")}, []string{"Sara"}},
		{"blood", dto.Filter{GolDarah: ptr("A")}, []string{"Ishak", "Sara"}},
		{"rayon", dto.Filter{IDRayon: ptr("R1")}, []string{"Abraham", "Ishak", "Sara"}},
		{"rayon and tanah", dto.Filter{IDRayon: ptr("R1"), IDStatusTanah: ptr("ST1")}, []string{"Abraham", "Sara"}},
		{"tanah", dto.Filter{IDStatusTanah: ptr("ST1")}, []string{"Abraham", "Sara", "Yakub"}},
		{"male in rayon", dto.Filter{JenisKelamin: ptr("L"), IDRayon: ptr("R1")}, []string{"Abraham", "Ishak"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := f.repo.List(context.Background(), ListParams{Filter: tc.filter})
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(res.Data))
		})
	}
}

func TestListLoadsRelations(t *testing.T) {
	f := setup(t)
	f.member(t, models.JemaatModel{IDJemaat: "J1", Nama: "Abraham", IDKeluarga: ptr("KG1")})
	require.NoError(t, f.db.Create(&models.JemaatJabatanModel{IDJemaat: "J1", IDJabatan: "J1", Aktif: true}).Error)

	res, err := f.repo.List(context.Background(), ListParams{})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)

	m := res.Data[0]
	require.NotNil(t, m.Keluarga)
	require.NotNil(t, m.Keluarga.Alamat)
	require.NotNil(t, m.Keluarga.Alamat.Kelurahan)
	require.NotNil(t, m.Keluarga.Alamat.Kelurahan.Kecamatan)
	require.NotNil(t, m.Keluarga.Alamat.Kelurahan.Kecamatan.KotaKab)
	require.NotNil(t, m.Keluarga.Alamat.Kelurahan.Kecamatan.KotaKab.Provinsi)
	assert.Equal(t, "Maluku", m.Keluarga.Alamat.Kelurahan.Kecamatan.KotaKab.Provinsi.Nama)
	require.NotNil(t, m.Keluarga.Rayon)
	assert.Equal(t, "Rayon 1", m.Keluarga.Rayon.Nama)
	require.Len(t, m.JabatanRel, 1)
	require.NotNil(t, m.JabatanRel[0].Jabatan)
	assert.Equal(t, "Majelis", m.JabatanRel[0].Jabatan.Nama)
}

func TestListStoreFailureIsGeneric(t *testing.T) {
	f := setup(t)
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	paging := helper.NewPaging(1, 10)
	_, err = f.repo.List(context.Background(), ListParams{Paging: &paging})
	require.Error(t, err)
	assert.ErrorIs(t, err, helper.ErrFetchFailed)
	assert.Equal(t, "failed to fetch jemaat data", err.Error())
}

func TestCreateRequiresExistingKeluarga(t *testing.T) {
	f := setup(t)

	err := f.repo.Create(context.Background(), &models.JemaatModel{IDJemaat: "J9", Nama: "X", IDKeluarga: ptr("NOPE")})
	ae, ok := helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, ae.Status)

	require.NoError(t, f.repo.Create(context.Background(), &models.JemaatModel{IDJemaat: "J9", Nama: "X", IDKeluarga: ptr("KG1")}))
	require.NoError(t, f.repo.Create(context.Background(), &models.JemaatModel{IDJemaat: "J10", Nama: "Y"}))
}

func TestWritesRejectMissingMasterReferences(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	require.NoError(t, f.db.Create(&models.PendidikanModel{IDPendidikan: "S1", Nama: "Sarjana"}).Error)

	cases := []struct {
		m   models.JemaatModel
		msg string
	}{
		{models.JemaatModel{IDJemaat: "J20", Nama: "A", IDStatus: ptr("NO-ST")}, "Status jemaat NO-ST tidak ditemukan"},
		{models.JemaatModel{IDJemaat: "J21", Nama: "B", IDPendidikan: ptr("NO-S")}, "Pendidikan NO-S tidak ditemukan"},
		{models.JemaatModel{IDJemaat: "J22", Nama: "C", IDPekerjaan: ptr("NO-P")}, "Pekerjaan NO-P tidak ditemukan"},
		{models.JemaatModel{IDJemaat: "J23", Nama: "D", IDPendapatan: ptr("NO-D")}, "Pendapatan NO-D tidak ditemukan"},
		{models.JemaatModel{IDJemaat: "J24", Nama: "E", IDJaminan: ptr("NO-J")}, "Jaminan NO-J tidak ditemukan"},
		{models.JemaatModel{IDJemaat: "J25", Nama: "F", IDPernikahan: ptr("NO-N")}, "Pernikahan NO-N tidak ditemukan"},
	}
	for _, tc := range cases {
		m := tc.m
		err := f.repo.Create(ctx, &m)
		ae, ok := helper.AsAppError(err)
		require.True(t, ok, tc.msg)
		assert.Equal(t, fiber.StatusBadRequest, ae.Status)
		assert.Equal(t, tc.msg, ae.Message)
	}
	var n int64
	f.db.Model(&models.JemaatModel{}).Count(&n)
	assert.Zero(t, n)

	require.NoError(t, f.repo.Create(ctx, &models.JemaatModel{IDJemaat: "J1", Nama: "Abraham", IDPendidikan: ptr("S1")}))

	_, err := f.repo.Update(ctx, "J1", map[string]any{"id_pekerjaan": "NO-P"})
	ae, ok := helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, ae.Status)

	got, err := f.repo.Update(ctx, "J1", map[string]any{"id_pendidikan": nil})
	require.NoError(t, err)
	assert.Nil(t, got.IDPendidikan)
}

func TestUpdateAndGet(t *testing.T) {
	f := setup(t)
	f.member(t, models.JemaatModel{IDJemaat: "J1", Nama: "Abraham"})

	got, err := f.repo.Update(context.Background(), "J1", map[string]any{"nama": "Abram", "id_keluarga": "KG2"})
	require.NoError(t, err)
	assert.Equal(t, "Abram", got.Nama)
	require.NotNil(t, got.Keluarga)
	assert.Equal(t, "KG2", got.Keluarga.IDKeluarga)

	_, err = f.repo.Update(context.Background(), "J1", map[string]any{"id_keluarga": "NOPE"})
	ae, ok := helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, ae.Status)

	_, err = f.repo.Update(context.Background(), "MISSING", map[string]any{"nama": "x"})
	ae, ok = helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, ae.Status)
}

func TestDeleteRemovesDependents(t *testing.T) {
	f := setup(t)
	f.member(t, models.JemaatModel{IDJemaat: "J1", Nama: "Abraham", IDKeluarga: ptr("KG1")})
	require.NoError(t, f.db.Model(&models.KeluargaModel{}).Where("id_keluarga = ?", "KG1").Update("id_kepala_keluarga", "J1").Error)
	require.NoError(t, f.db.Create(&models.JemaatJabatanModel{IDJemaat: "J1", IDJabatan: "J1", Aktif: true}).Error)

	require.NoError(t, f.repo.Delete(context.Background(), "J1"))

	var n int64
	f.db.Model(&models.JemaatJabatanModel{}).Count(&n)
	assert.Zero(t, n)

	var kg models.KeluargaModel
	require.NoError(t, f.db.First(&kg, "id_keluarga = ?", "KG1").Error)
	assert.Nil(t, kg.IDKepalaKeluarga)

	_, err := f.repo.Get(context.Background(), "J1")
	ae, ok := helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, ae.Status)

	err = f.repo.Delete(context.Background(), "J1")
	ae, ok = helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, ae.Status)
}
