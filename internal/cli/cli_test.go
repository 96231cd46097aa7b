package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"birthday_reminder/internal/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	for _, key := range []string{"REMINDER_DATA_FILE", "REMINDER_PHOTOS_DIR", "REMINDER_PHOTO_EXT", "STORE_BACKEND", "DATABASE_URL", "ENVIRONMENT"} {
		t.Setenv(key, "")
	}
	t.Setenv("REMINDER_HOME", home)
	t.Setenv("NOTIFIER", "log")
	t.Setenv("LOG_LEVEL", "error")
	return home
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_InitAddList(t *testing.T) {
	home := testEnv(t)

	out, err := run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized")
	assert.FileExists(t, filepath.Join(home, "data.json"))
	assert.DirExists(t, filepath.Join(home, "contacts"))

	_, err = run(t, "add", "birthday", "Alice", "1990-06-15")
	require.NoError(t, err)
	_, err = run(t, "add", "anniversary", "Wedding", "2010-06-20")
	require.NoError(t, err)

	out, err = run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1990-06-15  Alice")
	assert.Contains(t, out, "2010-06-20  Wedding")

	_, err = run(t, "add", "birthday", "Bob", "15.06.1990")
	assert.ErrorIs(t, err, record.ErrInvalidDate)

	_, err = run(t, "remove", "birthday", "Alice")
	require.NoError(t, err)
	_, err = run(t, "remove", "birthday", "Alice")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestCLI_Settings(t *testing.T) {
	testEnv(t)
	_, err := run(t, "init")
	require.NoError(t, err)

	out, err := run(t, "settings", "set", "--countdown-days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "countdown_days: 3")
	assert.Contains(t, out, "photo: true", "unchanged flags keep their stored value")

	out, err = run(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "countdown_days: 3")

	_, err = run(t, "settings", "set", "--countdown-days=-1")
	assert.ErrorIs(t, err, record.ErrInvalidSettings)
}

func TestCLI_Check(t *testing.T) {
	testEnv(t)
	_, err := run(t, "init")
	require.NoError(t, err)
	_, err = run(t, "settings", "set", "--countdown-days", "0")
	require.NoError(t, err)
	_, err = run(t, "add", "birthday", "Alice", "1990-06-15")
	require.NoError(t, err)
	_, err = run(t, "add", "anniversary", "Wedding", "2010-06-20")
	require.NoError(t, err)

	out, err := run(t, "check", "all", "--today", "2024-06-15")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-06-15 BIRTHDAY: 1 due, 1 sent, 0 failed")
	assert.Contains(t, out, "2024-06-15 ANNIVERSARY: 0 due, 0 sent, 0 failed")

	out, err = run(t, "check", "anniversaries", "--today", "2024-06-20")
	require.NoError(t, err)
	assert.Contains(t, out, "ANNIVERSARY: 1 due, 1 sent")

	_, err = run(t, "check", "birthdays", "--today", "June 15")
	assert.ErrorIs(t, err, record.ErrInvalidDate)
}

func TestCLI_CheckWithoutStoreFails(t *testing.T) {
	testEnv(t)

	_, err := run(t, "check", "birthdays")
	assert.ErrorIs(t, err, record.ErrStorageUnavailable)
}

func TestCLI_CheckCorruptStoreFails(t *testing.T) {
	home := testEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "data.json"), []byte("{"), 0o644))

	_, err := run(t, "check", "all")
	assert.ErrorIs(t, err, record.ErrStorageUnavailable)
}
