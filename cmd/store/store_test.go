package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/codec"
	"github.com/hance08/bankbook/internal/config"
	"github.com/hance08/bankbook/internal/constants"
	"github.com/hance08/bankbook/internal/model"
	bookstore "github.com/hance08/bankbook/internal/store"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrationsFS = os.DirFS(filepath.Join("..", ".."))

func sampleSnapshot() bookstore.Snapshot {
	return bookstore.Snapshot{
		{ID: "11111111", Record: model.Record{Name: "Alice", Type: "checking", Balance: 6000}},
		{ID: "22222222", Record: model.Record{Name: "Bob", Type: "savings", Balance: 4050}},
	}
}

func testApp(backend, path string) *app.App {
	cfg := config.NewDefault()
	cfg.Store.Backend = backend
	cfg.Store.Path = path
	return &app.App{Config: cfg}
}

func TestDump_FileBackend(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, bookstore.NewFileStore(fsys, "accounts.json", codec.NewBase64()).Save(sampleSnapshot()))

	var out bytes.Buffer
	runner := &DumpCommandRunner{app: testApp("file", "accounts.json"), fs: fsys, out: &out}
	require.NoError(t, runner.Run())

	assert.JSONEq(t, `{
		"11111111": {"name": "Alice", "type": "checking", "balance": 60},
		"22222222": {"name": "Bob", "type": "savings", "balance": 40.5}
	}`, out.String())
	assert.Less(t, bytes.Index(out.Bytes(), []byte("11111111")), bytes.Index(out.Bytes(), []byte("22222222")))
}

func TestDump_MissingFile(t *testing.T) {
	var out bytes.Buffer
	runner := &DumpCommandRunner{app: testApp("file", "accounts.json"), fs: afero.NewMemMapFs(), out: &out}
	require.NoError(t, runner.Run())
	assert.Equal(t, "{}\n", out.String())
}

func TestDump_BoltBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.bolt")
	st, err := bookstore.NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(sampleSnapshot()))
	require.NoError(t, st.Close())

	var out bytes.Buffer
	runner := &DumpCommandRunner{app: testApp("bolt", path), out: &out}
	require.NoError(t, runner.Run())
	assert.Contains(t, out.String(), `"name": "Bob"`)
}

func TestVerify(t *testing.T) {
	fsys := afero.NewMemMapFs()
	snap := append(sampleSnapshot(), bookstore.Entry{
		ID: "33333333", Record: model.Record{Name: "Carol", Type: "brokerage", Balance: 1},
	})
	require.NoError(t, bookstore.NewFileStore(fsys, "accounts.json", codec.NewBase64()).Save(snap))

	runner := &VerifyCommandRunner{app: testApp("file", "accounts.json"), fs: fsys}
	report, err := runner.Verify()
	require.NoError(t, err)

	assert.True(t, report.Exists)
	assert.Equal(t, 3, report.Accounts)
	assert.Equal(t, "100.51", report.Total.StringFixed(2))
	assert.Equal(t, []string{"33333333"}, report.UnknownTypes)

	pterm.DisableOutput()
	defer pterm.EnableOutput()
	assert.NoError(t, renderReport(report, "USD"))
}

func TestVerify_TotalPastInt64(t *testing.T) {
	fsys := afero.NewMemMapFs()
	snap := bookstore.Snapshot{
		{ID: "11111111", Record: model.Record{Name: "Alice", Type: "checking", Balance: constants.MaxBalanceCents}},
		{ID: "22222222", Record: model.Record{Name: "Bob", Type: "savings", Balance: constants.MaxBalanceCents}},
	}
	require.NoError(t, bookstore.NewFileStore(fsys, "accounts.json", codec.NewBase64()).Save(snap))

	runner := &VerifyCommandRunner{app: testApp("file", "accounts.json"), fs: fsys}
	report, err := runner.Verify()
	require.NoError(t, err)

	assert.Equal(t, "18446744073709550.00", report.Total.StringFixed(2))
	assert.True(t, report.Total.IsPositive())
}

func TestVerify_MissingAndCorrupt(t *testing.T) {
	fsys := afero.NewMemMapFs()
	runner := &VerifyCommandRunner{app: testApp("file", "accounts.json"), fs: fsys}

	report, err := runner.Verify()
	require.NoError(t, err)
	assert.False(t, report.Exists)

	require.NoError(t, afero.WriteFile(fsys, "accounts.json", []byte("%%%"), 0644))
	_, err = runner.Verify()
	assert.ErrorIs(t, err, codec.ErrDecode)

	require.NoError(t, afero.WriteFile(fsys, "accounts.json", []byte(codec.NewBase64().Encode(`{"1": {"name": "x"}}`)), 0644))
	_, err = runner.Verify()
	assert.ErrorIs(t, err, bookstore.ErrCorrupt)
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "accounts.json")
	dst := filepath.Join(dir, "accounts.db")

	require.NoError(t, bookstore.NewFileStore(afero.NewOsFs(), src, codec.NewBase64()).Save(sampleSnapshot()))

	runner := &CopyCommandRunner{
		app:        testApp("file", src),
		migrations: migrationsFS,
		flags:      &copyFlags{Backend: "sqlite", Path: dst},
	}

	n, dstCfg, err := runner.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, bookstore.Config{Backend: "sqlite", Path: dst}, dstCfg)

	copied, err := bookstore.Open(dstCfg, migrationsFS)
	require.NoError(t, err)
	snap, err := copied.Load()
	require.NoError(t, err)
	require.NoError(t, copied.Close())
	assert.Equal(t, sampleSnapshot(), snap)

	_, _, err = runner.Run()
	assert.ErrorContains(t, err, "--force")

	runner.flags.Force = true
	_, _, err = runner.Run()
	assert.NoError(t, err)
}

func TestCopy_Rejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")

	runner := &CopyCommandRunner{app: testApp("file", path), flags: &copyFlags{Backend: "file", Path: path}}
	_, _, err := runner.Run()
	assert.ErrorContains(t, err, "same store")

	runner.flags = &copyFlags{Backend: "file", Path: filepath.Dir(path) + "/./sub/../accounts.json"}
	_, _, err = runner.Run()
	assert.ErrorContains(t, err, "same store")

	runner.flags = &copyFlags{Backend: "memory"}
	_, _, err = runner.Run()
	assert.ErrorContains(t, err, "memory")

	runner.flags = &copyFlags{Backend: "postgres", Path: "x"}
	_, _, err = runner.Run()
	assert.ErrorIs(t, err, bookstore.ErrUnknownBackend)
}

func TestSameStore(t *testing.T) {
	assert.True(t, sameStore(
		bookstore.Config{Backend: "file", Path: "accounts.json"},
		bookstore.Config{Backend: "file", Path: "./accounts.json"},
	))
	assert.True(t, sameStore(
		bookstore.Config{Backend: "sqlite", Path: "data/../accounts.db"},
		bookstore.Config{Backend: "sqlite", Path: "accounts.db"},
	))
	assert.False(t, sameStore(
		bookstore.Config{Backend: "file", Path: "accounts.json"},
		bookstore.Config{Backend: "bolt", Path: "accounts.json"},
	))
	assert.False(t, sameStore(
		bookstore.Config{Backend: "file", Path: "accounts.json"},
		bookstore.Config{Backend: "file", Path: "other.json"},
	))
}
