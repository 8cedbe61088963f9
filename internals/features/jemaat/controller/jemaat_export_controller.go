// internals/features/jemaat/controller/jemaat_export_controller.go
package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"jemaat_backend/internals/features/jemaat/dto"
	"jemaat_backend/internals/features/jemaat/repository"
	helper "jemaat_backend/internals/helpers"
	"jemaat_backend/internals/helpers/dbtime"
	"jemaat_backend/internals/models"
)

const exportSheet = "Jemaat"

var exportHeaders = []string{
	"ID Jemaat", "Nama", "Jenis Kelamin", "Tanggal Lahir", "Gol. Darah",
	"Status Dalam Keluarga", "ID Keluarga", "Rayon", "Pendidikan", "Pekerjaan", "Alamat",
}

// GET /api/a/jemaat/export: same filters and search as List, never paged
func (h *JemaatController) Export(c *fiber.Ctx) error {
	res, err := h.Repo.List(c.UserContext(), repository.ListParams{
		Filter: dto.ParseFilter(c),
		Search: strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		return err
	}

	buf, err := BuildWorkbook(res.Data)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("jemaat_%s.xlsx", dbtime.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	helper.SetPrivateCache(c, 0)
	return c.Send(buf.Bytes())
}

// BuildWorkbook renders members as one sheet with a frozen header row.
func BuildWorkbook(rows []models.JemaatModel) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	header := make([]any, len(exportHeaders))
	for i, v := range exportHeaders {
		header[i] = v
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(exportSheet, "A1", last, style)
	}

	for i, m := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			m.IDJemaat,
			m.Nama,
			m.JenisKelaminCode(),
			formatDate(m),
			deref(m.GolDarah),
			deref(m.StatusDalamKel),
			deref(m.IDKeluarga),
			rayonName(m),
			pendidikanName(m),
			pekerjaanName(m),
			alamatText(m),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	_ = f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(m models.JemaatModel) string {
	if m.TanggalLahir == nil {
		return ""
	}
	return time.Time(*m.TanggalLahir).Format(dto.DateLayout)
}

func rayonName(m models.JemaatModel) string {
	if m.Keluarga == nil || m.Keluarga.Rayon == nil {
		return ""
	}
	return m.Keluarga.Rayon.Nama
}

func pendidikanName(m models.JemaatModel) string {
	if m.Pendidikan == nil {
		return ""
	}
	return m.Pendidikan.Nama
}

func pekerjaanName(m models.JemaatModel) string {
	if m.Pekerjaan == nil {
		return ""
	}
	return m.Pekerjaan.Nama
}

func alamatText(m models.JemaatModel) string {
	if m.Keluarga == nil || m.Keluarga.Alamat == nil {
		return ""
	}
	a := m.Keluarga.Alamat
	parts := []string{a.Jalan, fmt.Sprintf("RT %d/RW %d", a.RT, a.RW)}
	if k := a.Kelurahan; k != nil {
		parts = append(parts, k.Nama)
		if kc := k.Kecamatan; kc != nil {
			parts = append(parts, kc.Nama)
			if kk := kc.KotaKab; kk != nil {
				parts = append(parts, kk.Nama)
			}
		}
	}
	return strings.Join(parts, ", ")
}
