package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CreativeUnicorns/prefsxml"
)

func TestNewMemoryStorage(t *testing.T) {
	s := NewMemoryStorage()
	require.NotNil(t, s)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, prefsxml.ErrNotFound)
	assert.Nil(t, s.Bytes())
	assert.Equal(t, 0, s.Saves())
}

func TestMemoryStorage_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	doc := prefsxml.NewDocument()
	require.NoError(t, doc.Set(prefsxml.Entry{Kind: prefsxml.StringKind, Key: "k", Value: "v"}))
	require.NoError(t, s.Save(ctx, doc))
	assert.Equal(t, 1, s.Saves())

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Entries(), loaded.Entries())

	// Mutating the loaded document must not change what is stored.
	require.NoError(t, loaded.Set(prefsxml.Entry{Kind: prefsxml.StringKind, Key: "other", Value: "x"}))
	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Len())
}

func TestMemoryStorage_WithData(t *testing.T) {
	data := []byte("not xml at all")
	s := NewMemoryStorageWithData(data)
	data[0] = 'N'

	assert.Equal(t, []byte("not xml at all"), s.Bytes())
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, prefsxml.ErrMalformed)
}

func TestMemoryStorage_Close(t *testing.T) {
	s := NewMemoryStorage()
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestStorageInterfaces(t *testing.T) {
	var _ prefsxml.Storage = NewMemoryStorage()
	var _ prefsxml.Storage = NewFileStorage("prefs.xml")
}
