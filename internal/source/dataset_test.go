package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"pop.csv":     "SIGNGU_CD,SIGNGU_NM,N20S_POPLTN_CO,N30S_POPLTN_CO,N40S_POPLTN_CO,N60S_POPLTN_CO\n28140,인천광역시 동구,10,10,10,70\n",
		"vouch.csv":   "SIGNGU_CD,ITEM_NM,FCLTY_Y_CRDNT_VALUE,FCLTY_X_CRDNT_VALUE\n28140,수영,37.47,126.63\n",
		"public.csv":  "POSESN_MBY_SIGNGU_CD,FCLTY_TY_NM,INDUTY_NM,FCLTY_NM,FCLTY_LA,FCLTY_LO\n2814010100,체육관,,동구국민체육센터,37.48,126.64\n",
		"fitness.csv": "CNTER_NM\n동구(인천)\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return Paths{
		Population:     filepath.Join(dir, "pop.csv"),
		Voucher:        filepath.Join(dir, "vouch.csv"),
		PublicFacility: filepath.Join(dir, "public.csv"),
		Fitness:        filepath.Join(dir, "fitness.csv"),
	}
}

func TestLoader_Load(t *testing.T) {
	paths := writeDataset(t)

	ds, err := NewLoader("utf-8").Load(paths)
	require.NoError(t, err)

	require.Len(t, ds.Population, 1)
	assert.Equal(t, 100.0, ds.Population[0].TotalPopulation)
	assert.Equal(t, 30.0, ds.Population[0].ActivePopulation)
	assert.Len(t, ds.Vouchers, 1)
	assert.Len(t, ds.Publics, 1)
	assert.Len(t, ds.Measurements, 1)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	paths := writeDataset(t)
	paths.Fitness = filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewLoader("utf-8").Load(paths)
	assert.Error(t, err)
}

func TestLoader_Load_MissingColumn(t *testing.T) {
	paths := writeDataset(t)
	require.NoError(t, os.WriteFile(paths.Fitness, []byte("CENTER\n동구\n"), 0o644))

	_, err := NewLoader("utf-8").Load(paths)
	assert.ErrorIs(t, err, ErrMissingColumn)
}
