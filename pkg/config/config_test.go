package config_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventario-local", cfg.App.Name)
	assert.Equal(t, config.DefaultDBPath, cfg.DB.Path)
	assert.NotEqual(t, "estoque.db", cfg.DB.Path)
	assert.Equal(t, 5*time.Minute, cfg.LowStock.Interval)
	assert.Equal(t, "utf-8", cfg.CSV.Encoding)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PATH", "/tmp/otro.db")
	t.Setenv("LOW_STOCK_INTERVAL", "30s")
	t.Setenv("CSV_ENCODING", "Latin1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/otro.db", cfg.DB.Path)
	assert.Equal(t, 30*time.Second, cfg.LowStock.Interval)
	assert.Equal(t, "latin1", cfg.CSV.Encoding)
}

func TestLoad_EncodingInvalido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CSV_ENCODING", "ebcdic")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN_ActivaLlavesForaneas(t *testing.T) {
	dsn := config.DBConfig{Path: "estoque.db", BusyTimeoutMS: 2000}.DSN()

	assert.Contains(t, dsn, "file:estoque.db?")
	assert.Contains(t, dsn, "_foreign_keys=on")
	assert.Contains(t, dsn, "_busy_timeout=2000")
}

func TestDSN_EscapaCaracteresDeURI(t *testing.T) {
	cases := map[string]string{
		"/datos/a#b.db":   "file:/datos/a%23b.db?",
		"/datos/q?x.db":   "file:/datos/q%3Fx.db?",
		"/datos/50%.db":   "file:/datos/50%25.db?",
		"mi carpeta/x.db": "file:mi%20carpeta/x.db?",
		"relativo.db":     "file:relativo.db?",
	}
	for path, want := range cases {
		dsn := config.DBConfig{Path: path}.DSN()
		assert.True(t, strings.HasPrefix(dsn, want), "ruta %q: dsn %q", path, dsn)
	}

	a := config.DBConfig{Path: "a#b.db"}.DSN()
	b := config.DBConfig{Path: "a#c.db"}.DSN()
	assert.NotEqual(t, a, b)
}

func TestDSN_EnMemoria(t *testing.T) {
	dsn := config.DBConfig{Path: "prueba", InMemory: true}.DSN()

	assert.Contains(t, dsn, "file:prueba?")
	assert.Contains(t, dsn, "mode=memory")
	assert.Contains(t, dsn, "cache=shared")
}

func TestLoad_MemoryPath(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PATH", ":memory:")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.DB.InMemory)
	assert.Equal(t, "inventario-local", cfg.DB.Path)
}

func TestLoad_IntervaloSinUnidad(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOW_STOCK_INTERVAL", "300")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOW_STOCK_INTERVAL")
}

func TestLoad_ArchivoYAML(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("db_path: desde-yaml.db\nlow_stock_interval: 30s\n"), 0o600))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "desde-yaml.db", cfg.DB.Path)
	assert.Equal(t, 30*time.Second, cfg.LowStock.Interval)
}

func TestLoad_DotEnvSobreArchivoConfig(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("config.env", []byte("DB_PATH=desde-config.db\nCSV_ENCODING=latin1\n"), 0o600))
	require.NoError(t, os.WriteFile(".env", []byte("DB_PATH=desde-dotenv.db\n"), 0o600))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "desde-dotenv.db", cfg.DB.Path)
	assert.Equal(t, "latin1", cfg.CSV.Encoding, "config.env aporta lo que .env no define")
}

func TestLoad_ArchivoConfigMalFormado(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("db_path: [sin cerrar\n"), 0o600))

	_, err := config.Load()
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working
// directory for the duration of the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
