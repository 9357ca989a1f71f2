package domain

// Level is one step of the seven-level drought classification scale.
type Level struct {
	Name        string `json:"name"`
	Rank        int    `json:"rank"`
	Description string `json:"description"`
	Advisory    string `json:"advisory"`
	Color       string `json:"color"`
}

// Known reports whether l is a configured level rather than the placeholder.
func (l Level) Known() bool { return l.Rank > 0 }

// UnknownLevel is returned by Describe for labels outside the catalog.
var UnknownLevel = Level{
	Name:        "Tidak Diketahui",
	Rank:        0,
	Description: "Kelas kekeringan tidak dikenali pada data sumber.",
	Advisory:    "Periksa kembali data prediksi untuk tanggal ini.",
	Color:       "#95A5A6",
}

// LevelCount is the number of levels on the classification scale.
const LevelCount = 7
