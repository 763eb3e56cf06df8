package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/uyouii/heuncert/common"
	"github.com/uyouii/heuncert/geochem"
	"github.com/uyouii/heuncert/model"
)

// expected column names, matched case-insensitively:
//
//	id (or grain), u, th, sm, eu, age, age_err (or err)
//
// sm is optional and defaults to 0. When an eu column is present it is
// used as-is, otherwise eU is derived from u/th/sm with the default
// coefficients.
func ReadGrainCSV(r io.Reader, sampleName string) (*model.GrainSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[canonicalColumn(normalizeColumn(name))] = i
	}

	hasEU := hasColumn(columns, "eu")
	if !hasColumn(columns, "age") || !hasColumn(columns, "age_err") {
		return nil, fmt.Errorf("csv needs age and age_err columns: %w", common.ErrorInvalidValue)
	}
	if !hasEU && !hasColumn(columns, "u") {
		return nil, fmt.Errorf("csv needs either an eu column or a u column: %w", common.ErrorInvalidValue)
	}

	grainSet := &model.GrainSet{SampleName: sampleName}
	coefficients := geochem.DefaultEUCoefficients()

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}

		grain := model.Grain{ID: cell(record, columns, "id")}

		if grain.U, err = floatCell(record, columns, "u", row); err != nil {
			return nil, err
		}
		if grain.Th, err = floatCell(record, columns, "th", row); err != nil {
			return nil, err
		}
		if grain.Sm, err = floatCell(record, columns, "sm", row); err != nil {
			return nil, err
		}
		if grain.AgeMa, err = floatCell(record, columns, "age", row); err != nil {
			return nil, err
		}
		if grain.AgeErrMa, err = floatCell(record, columns, "age_err", row); err != nil {
			return nil, err
		}

		if hasEU {
			if grain.EU, err = floatCell(record, columns, "eu", row); err != nil {
				return nil, err
			}
		} else {
			grain.EU = coefficients.EffectiveUranium(grain.U, grain.Th, grain.Sm)
		}

		if err := checkGrain(&grain, row); err != nil {
			return nil, err
		}

		grainSet.Grains = append(grainSet.Grains, grain)
	}

	if grainSet.IsEmpty() {
		return nil, fmt.Errorf("csv has no data rows: %w", common.ErrorInvalidValue)
	}
	return grainSet, nil
}

// WriteResultCSV writes the input columns back out with the empirical
// error appended, the hand-off artifact for downstream inversion.
func WriteResultCSV(w io.Writer, results []model.EmpiricalResult) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "u", "th", "sm", "eu", "age", "age_err", "empirical_err"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, result := range results {
		grain := result.Grain
		record := []string{
			grain.ID,
			formatCell(grain.U),
			formatCell(grain.Th),
			formatCell(grain.Sm),
			formatCell(grain.EU),
			formatCell(grain.AgeMa),
			formatCell(grain.AgeErrMa),
			formatCell(result.EmpiricalErrMa),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteGrainCSV writes a grain set in the input column layout,
// useful for dumping the built-in sample table as a starting point.
func WriteGrainCSV(w io.Writer, grainSet *model.GrainSet) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "u", "th", "sm", "eu", "age", "age_err"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, grain := range grainSet.Grains {
		record := []string{
			grain.ID,
			formatCell(grain.U),
			formatCell(grain.Th),
			formatCell(grain.Sm),
			formatCell(grain.EU),
			formatCell(grain.AgeMa),
			formatCell(grain.AgeErrMa),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// canonicalColumn folds the header aliases seen in the wild into the
// canonical names.
func canonicalColumn(name string) string {
	switch name {
	case "grain":
		return "id"
	case "err":
		return "age_err"
	default:
		return name
	}
}

func hasColumn(columns map[string]int, name string) bool {
	_, ok := columns[name]
	return ok
}

func cell(record []string, columns map[string]int, name string) string {
	index, ok := columns[name]
	if !ok || index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}

// floatCell parses one cell, a missing column or empty cell is 0
// except for age, which becomes NaN so the estimator can exclude it.
func floatCell(record []string, columns map[string]int, name string, row int) (float64, error) {
	raw := cell(record, columns, name)
	if raw == "" {
		if name == "age" {
			return math.NaN(), nil
		}
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: invalid %s value %q: %w", row, name, raw, common.ErrorInvalidValue)
	}
	return value, nil
}

func checkGrain(grain *model.Grain, row int) error {
	if grain.U < 0 || grain.Th < 0 || grain.Sm < 0 || grain.EU < 0 {
		return fmt.Errorf("row %d: negative concentration: %w", row, common.ErrorInvalidValue)
	}
	if grain.AgeErrMa < 0 {
		return fmt.Errorf("row %d: negative age error: %w", row, common.ErrorInvalidValue)
	}
	return nil
}

func formatCell(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
