package cli

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"landmark-explorer/internal/logger"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/pkg/errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Logger.SetOutput(io.Discard)
	os.Exit(m.Run())
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

func TestListBundled(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 13)
	assert.Equal(t, []string{"ID", "NAME", "PARK", "STATE", "FAVORITE"}, strings.Fields(lines[0]))
	assert.Contains(t, lines[1], "Turtle Rock")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "1001"))
}

func TestListFavorites(t *testing.T) {
	out, err := run(t, "list", "--favorites")
	require.NoError(t, err)

	assert.Contains(t, out, "Turtle Rock")
	assert.NotContains(t, out, "Silver Salmon Creek")
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "1001")
	require.NoError(t, err)

	var detail models.LandmarkDetail
	require.NoError(t, json.Unmarshal([]byte(out), &detail))
	assert.Equal(t, "Turtle Rock", detail.Name)
	assert.Equal(t, models.DefaultSpan, detail.Region.Span.LatitudeDelta)
}

func TestFavorite(t *testing.T) {
	out, err := run(t, "favorite", "1002")
	require.NoError(t, err)

	assert.Contains(t, out, "favorite false -> true")
	assert.Contains(t, out, "Silver Salmon Creek")
}

func TestFavoriteUnknownID(t *testing.T) {
	_, err := run(t, "favorite", "99")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))

	_, err = run(t, "show", "abc")
	assert.Error(t, err)
}

func TestAssetFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	out, err := run(t, "list", "--asset", path, "--favorites")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, []string{"ID", "NAME", "PARK", "STATE", "FAVORITE"}, strings.Fields(lines[0]))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = run(t, "list", "--asset", bad)
	assert.True(t, stderrors.Is(err, errors.ErrAssetLoad))
}

func TestLinks(t *testing.T) {
	out, err := run(t, "links", "--asset", "/does/not/exist.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Go to Apple\thttps://apple.com")
}
