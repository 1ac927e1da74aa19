package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getNotFoundServer(t *testing.T) (*httptest.Server, func()) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	return srv, srv.Close
}

func TestGenerateCommand(t *testing.T) {
	srv, cleanup := getNotFoundServer(t)
	defer cleanup()
	dir := t.TempDir()
	input := filepath.Join(dir, "vocab.txt")
	require.NoError(t, os.WriteFile(input, []byte("Haus - house\nmalformed line no dash\n"), 0600))

	t.Run("writes cards", func(t *testing.T) {
		cmd := GenerateCommand{
			Input:      input,
			Output:     filepath.Join(dir, "cards.tsv"),
			Dictionary: "deen",
			SourceLang: "de",
			Endpoint:   srv.URL,
		}
		require.NoError(t, cmd.Execute(nil))
		data, err := os.ReadFile(cmd.Output)
		require.NoError(t, err)
		assert.Equal(t, "Haus\thouse\n", string(data))
	})
	t.Run("only new with bolt ledger", func(t *testing.T) {
		cmd := GenerateCommand{
			Input:      input,
			Output:     filepath.Join(dir, "new.tsv"),
			Dictionary: "deen",
			SourceLang: "de",
			Endpoint:   srv.URL,
			BoltDB:     filepath.Join(dir, "ledger.db"),
			OnlyNew:    true,
		}
		require.NoError(t, cmd.Execute(nil))
		data, err := os.ReadFile(cmd.Output)
		require.NoError(t, err)
		assert.Equal(t, "Haus\thouse\n", string(data))

		require.NoError(t, cmd.Execute(nil))
		data, err = os.ReadFile(cmd.Output)
		require.NoError(t, err)
		assert.Empty(t, data)
	})
	t.Run("missing input", func(t *testing.T) {
		cmd := GenerateCommand{Input: filepath.Join(dir, "missing.txt"), Output: filepath.Join(dir, "x.tsv")}
		assert.Error(t, cmd.Execute(nil))
	})
}

func TestInspectCommand(t *testing.T) {
	input := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(input, []byte("Haus - house\nder Hund + die Hunde - dog\nno dash\n"), 0600))
	t.Run("prints mapping", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, (&InspectCommand{Input: input}).print(buf))
		assert.JSONEq(t, `{"Haus": {"answer": "house"}, "der Hund": {"answer": "dog"}}`, buf.String())
	})
	t.Run("missing input", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.Error(t, (&InspectCommand{Input: input + ".missing"}).print(buf))
		assert.Empty(t, buf.String())
	})
}

func TestGetStorage(t *testing.T) {
	t.Run("no ledger", func(t *testing.T) {
		storage, closeStorage, err := getStorage("", "")
		require.NoError(t, err)
		defer closeStorage()
		assert.Nil(t, storage)
	})
	t.Run("bolt", func(t *testing.T) {
		storage, closeStorage, err := getStorage(filepath.Join(t.TempDir(), "ledger.db"), "")
		require.NoError(t, err)
		defer closeStorage()
		assert.NotNil(t, storage)
	})
	t.Run("invalid redis url", func(t *testing.T) {
		_, _, err := getStorage("", "not-a-url")
		assert.Error(t, err)
	})
}
