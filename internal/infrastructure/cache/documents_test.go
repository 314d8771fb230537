package cache_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/cache"
)

func TestDocumentCache_DecodesOncePerContent(t *testing.T) {
	codec := portmocks.NewMockLayoutCodec(t)
	codec.EXPECT().Name().Return("json")
	doc := entity.NewLayoutDocument()
	codec.EXPECT().Decode(mock.Anything).Return(doc, nil).Once()

	c := cache.NewDocumentCache(4)

	got, hit, err := c.Decode(codec, []byte(`{"major":1}`))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Same(t, doc, got)

	got, hit, err = c.Decode(codec, []byte(`{"major":1}`))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Same(t, doc, got)
	assert.Equal(t, 1, c.Len())
}

func TestDocumentCache_ChangedContentDecodesAgain(t *testing.T) {
	codec := portmocks.NewMockLayoutCodec(t)
	codec.EXPECT().Name().Return("yaml")
	codec.EXPECT().Decode(mock.Anything).RunAndReturn(func(io.Reader) (*entity.LayoutDocument, error) {
		return entity.NewLayoutDocument(), nil
	}).Twice()

	c := cache.NewDocumentCache(0)
	_, _, err := c.Decode(codec, []byte("a"))
	require.NoError(t, err)
	_, hit, err := c.Decode(codec, []byte("b"))
	require.NoError(t, err)
	assert.False(t, hit)

	c.Forget("yaml", []byte("a"))
	assert.Equal(t, 1, c.Len())
}

func TestDocumentCache_DecodeErrorIsNotCached(t *testing.T) {
	codec := portmocks.NewMockLayoutCodec(t)
	codec.EXPECT().Name().Return("toml")
	codec.EXPECT().Decode(mock.Anything).Return(nil, errors.New("bad key")).Twice()

	c := cache.NewDocumentCache(2)
	for range 2 {
		_, hit, err := c.Decode(codec, []byte("broken"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode toml layout")
		assert.False(t, hit)
	}
	assert.Zero(t, c.Len())
}
