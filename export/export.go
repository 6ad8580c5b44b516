// Package export serializes cohort analysis results as tabular CSV. Each of
// the three outputs is staged in an etable.Table, so results can also be fed
// to anything else that consumes etable (plots, further aggregation) without
// reparsing the CSV.
package export

import (
	"io"
	"os"
	"strings"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"

	cohort "github.com/phonolex/phoneme-cohort"
)

// PrefixTable builds the per-prefix table: one row per distinct prefix, the
// empty prefix included, in the (sorted) order PrefixStats returns.
func PrefixTable(stats []cohort.PrefixStats) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "PrefixCohorts")
	dt.SetMetaData("desc", "Entropy and surprisal per prefix cohort")
	dt.SetMetaData("read-only", "true")

	sch := etable.Schema{
		{Name: "prefix", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "ent.unweight", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.unweight", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, len(stats))

	for i, ps := range stats {
		dt.SetCellString("prefix", i, ps.Prefix)
		dt.SetCellFloat("ent.unweight", i, ps.EntropyUniform)
		dt.SetCellFloat("ent.freq", i, ps.EntropyFreq)
		dt.SetCellFloat("sur.unweight", i, ps.SurprisalUniform)
		dt.SetCellFloat("sur.freq", i, ps.SurprisalFreq)
	}
	return dt
}

// WordTable builds the per-word table. Words are lowercased for output; the
// row order (case-insensitive by word) is preserved from WordMetrics.
func WordTable(metrics []cohort.WordMetrics) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "WordCohorts")
	dt.SetMetaData("desc", "Per-word cohort entropy, surprisal and uniqueness point")
	dt.SetMetaData("read-only", "true")

	sch := etable.Schema{
		{Name: "word", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "freq", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "pron", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "length", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "unique", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "first", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "initial", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "onsetnuc", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "ent.mean.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.mean.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.min.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.min.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.max.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.max.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.first.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.first.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.initial.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.initial.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.onsetnuc.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.onsetnuc.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.final.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.final.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.mean.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.mean.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.min.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.min.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.max.uniform", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.max.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, len(metrics))

	for i, wm := range metrics {
		dt.SetCellString("word", i, strings.ToLower(wm.Word))
		dt.SetCellFloat("freq", i, float64(wm.Frequency))
		dt.SetCellString("pron", i, wm.Pronunciation.String())
		dt.SetCellFloat("length", i, float64(wm.Length))
		dt.SetCellFloat("unique", i, float64(wm.UniquenessPoint))
		dt.SetCellString("first", i, wm.First)
		dt.SetCellString("initial", i, wm.Initial)
		dt.SetCellString("onsetnuc", i, wm.OnsetNucleus)
		dt.SetCellFloat("ent.mean.uniform", i, wm.EntropyUniform.Mean)
		dt.SetCellFloat("ent.mean.freq", i, wm.EntropyFreq.Mean)
		dt.SetCellFloat("ent.min.uniform", i, wm.EntropyUniform.Min)
		dt.SetCellFloat("ent.min.freq", i, wm.EntropyFreq.Min)
		dt.SetCellFloat("ent.max.uniform", i, wm.EntropyUniform.Max)
		dt.SetCellFloat("ent.max.freq", i, wm.EntropyFreq.Max)
		dt.SetCellFloat("ent.first.uniform", i, wm.EntropyUniform.First)
		dt.SetCellFloat("ent.first.freq", i, wm.EntropyFreq.First)
		dt.SetCellFloat("ent.initial.uniform", i, wm.EntropyUniform.Initial)
		dt.SetCellFloat("ent.initial.freq", i, wm.EntropyFreq.Initial)
		dt.SetCellFloat("ent.onsetnuc.uniform", i, wm.EntropyUniform.OnsetNucleus)
		dt.SetCellFloat("ent.onsetnuc.freq", i, wm.EntropyFreq.OnsetNucleus)
		dt.SetCellFloat("ent.final.uniform", i, wm.EntropyUniform.Final)
		dt.SetCellFloat("ent.final.freq", i, wm.EntropyFreq.Final)
		dt.SetCellFloat("sur.mean.uniform", i, wm.SurprisalUniform.Mean)
		dt.SetCellFloat("sur.mean.freq", i, wm.SurprisalFreq.Mean)
		dt.SetCellFloat("sur.min.uniform", i, wm.SurprisalUniform.Min)
		dt.SetCellFloat("sur.min.freq", i, wm.SurprisalFreq.Min)
		dt.SetCellFloat("sur.max.uniform", i, wm.SurprisalUniform.Max)
		dt.SetCellFloat("sur.max.freq", i, wm.SurprisalFreq.Max)
	}
	return dt
}

// PositionTable builds the long-format per-phoneme-position table.
func PositionTable(rows []cohort.PositionRow) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "PhonemePositions")
	dt.SetMetaData("desc", "Entropy and surprisal at every position of every word")
	dt.SetMetaData("read-only", "true")

	sch := etable.Schema{
		{Name: "word", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "pron", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "prefix", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "pos", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "ent.unweight", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ent.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.unweight", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "sur.freq", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, len(rows))

	for i, pr := range rows {
		dt.SetCellString("word", i, pr.Word)
		dt.SetCellString("pron", i, pr.Pronunciation.String())
		dt.SetCellString("prefix", i, pr.Prefix)
		dt.SetCellFloat("pos", i, float64(pr.Position))
		dt.SetCellFloat("ent.unweight", i, pr.EntropyUniform)
		dt.SetCellFloat("ent.freq", i, pr.EntropyFreq)
		dt.SetCellFloat("sur.unweight", i, pr.SurprisalUniform)
		dt.SetCellFloat("sur.freq", i, pr.SurprisalFreq)
	}
	return dt
}

// WriteCSV writes a table as comma-separated values with a header row.
func WriteCSV(w io.Writer, dt *etable.Table) error {
	return dt.WriteCSV(w, ',', true)
}

// SaveCSV writes a table to a file, creating or truncating it. The handle is
// closed on every path.
func SaveCSV(path string, dt *etable.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteCSV(f, dt); err != nil {
		return err
	}
	return f.Close()
}

// WriteAll writes the three output tables next to each other:
// base_prefix.csv, base_word.csv and base_phoneme.csv.
func WriteAll(a *cohort.Analyzer, base string) error {
	if err := SaveCSV(base+"_prefix.csv", PrefixTable(a.PrefixStats())); err != nil {
		return err
	}
	if err := SaveCSV(base+"_word.csv", WordTable(a.WordMetrics())); err != nil {
		return err
	}
	return SaveCSV(base+"_phoneme.csv", PositionTable(a.Positions()))
}
