// internals/features/masters/repository/kinds.go
package repository

import "sort"

// ref is a column in another table that points at a master row.
type ref struct {
	Table  string
	Column string
}

// Kind describes one id -> label lookup table.
type Kind struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Table  string `json:"-"`
	IDCol  string `json:"-"`
	usedBy []ref
	// columns that store the label instead of the id (pernikahan.klasis)
	usedByName []ref
}

var kinds = map[string]Kind{
	"rayon": {
		Key: "rayon", Label: "Rayon", Table: "rayon", IDCol: "id_rayon",
		usedBy: []ref{{"keluarga", "id_rayon"}},
	},
	"status-kepemilikan": {
		Key: "status-kepemilikan", Label: "Status Kepemilikan Rumah", Table: "status_kepemilikan", IDCol: "id_status_kepemilikan",
		usedBy: []ref{{"keluarga", "id_status_kepemilikan"}},
	},
	"status-tanah": {
		Key: "status-tanah", Label: "Status Tanah", Table: "status_tanah", IDCol: "id_status_tanah",
		usedBy: []ref{{"keluarga", "id_status_tanah"}},
	},
	"pendidikan": {
		Key: "pendidikan", Label: "Pendidikan", Table: "pendidikan", IDCol: "id_pendidikan",
		usedBy: []ref{{"jemaat", "id_pendidikan"}},
	},
	"pekerjaan": {
		Key: "pekerjaan", Label: "Pekerjaan", Table: "pekerjaan", IDCol: "id_pekerjaan",
		usedBy: []ref{{"jemaat", "id_pekerjaan"}},
	},
	"pendapatan": {
		Key: "pendapatan", Label: "Pendapatan", Table: "pendapatan", IDCol: "id_pendapatan",
		usedBy: []ref{{"jemaat", "id_pendapatan"}},
	},
	"jaminan": {
		Key: "jaminan", Label: "Jaminan Kesehatan", Table: "jaminan", IDCol: "id_jaminan",
		usedBy: []ref{{"jemaat", "id_jaminan"}},
	},
	"status-jemaat": {
		Key: "status-jemaat", Label: "Status Jemaat", Table: "status_jemaat", IDCol: "id_status",
		usedBy: []ref{{"jemaat", "id_status"}},
	},
	"jabatan": {
		Key: "jabatan", Label: "Jabatan", Table: "jabatan", IDCol: "id_jabatan",
		usedBy: []ref{{"jemaat_jabatan", "id_jabatan"}},
	},
	"klasis": {
		Key: "klasis", Label: "Klasis", Table: "klasis", IDCol: "id_klasis",
		usedBy:     []ref{{"baptis", "id_klasis"}, {"sidi", "id_klasis"}},
		usedByName: []ref{{"pernikahan", "klasis"}},
	},
}

// LookupKind resolves the :kind path segment.
func LookupKind(key string) (Kind, bool) {
	k, ok := kinds[key]
	return k, ok
}

// Kinds returns every registered kind ordered by key.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
