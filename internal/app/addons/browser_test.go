package addons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/build50/build50/internal/domain/catalog"
	siteerrors "github.com/build50/build50/pkg/errors"
)

func drain(b *Browser) int {
	ticks := 0
	for b.Tick(b.Seq()) {
		ticks++
	}
	return ticks + 1
}

func TestInitialCategoryIsFirstDeclared(t *testing.T) {
	t.Parallel()

	b := New(catalog.Default())
	assert.Equal(t, catalog.CategoryWeb, b.Current())
	assert.Equal(t, PhaseExiting, b.Phase())
	assert.Empty(t, b.Shown())
	assert.Equal(t, catalog.Default().AddOns(catalog.CategoryWeb), b.VisibleItems())
}

func TestSelectShowsCategoryInDeclaredOrder(t *testing.T) {
	t.Parallel()

	b := New(catalog.Default())
	b.Settle()

	changed, err := b.Select(catalog.CategorySEO)
	require.NoError(t, err)
	require.True(t, changed)

	items := b.VisibleItems()
	require.Len(t, items, 5)
	assert.Equal(t, "SEO Audit & Fixes", items[0].Name)
	assert.Equal(t, catalog.Default().AddOns(catalog.CategorySEO), items)
}

func TestRevealIsStaggeredInCatalogOrder(t *testing.T) {
	t.Parallel()

	b := New(catalog.Default())
	b.Settle()
	_, err := b.Select(catalog.CategoryMaint)
	require.NoError(t, err)

	all := b.VisibleItems()
	require.Equal(t, PhaseExiting, b.Phase())
	require.Empty(t, b.Shown(), "old set is gone before the new one appears")

	for i := 1; i <= len(all); i++ {
		more := b.Tick(b.Seq())
		assert.Equal(t, all[:i], b.Shown())
		assert.Equal(t, i < len(all), more)
	}
	assert.Equal(t, PhaseSettled, b.Phase())
	assert.False(t, b.Tick(b.Seq()))
}

func TestSelectingActiveCategoryIsNoop(t *testing.T) {
	t.Parallel()

	b := New(catalog.Default())
	drain(b)
	seq := b.Seq()

	changed, err := b.Select(catalog.CategoryWeb)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, seq, b.Seq())
	assert.Equal(t, PhaseSettled, b.Phase())
}

func TestStaleTicksAreIgnored(t *testing.T) {
	t.Parallel()

	b := New(catalog.Default())
	b.Settle()
	_, err := b.Select(catalog.CategorySocial)
	require.NoError(t, err)
	stale := b.Seq()
	b.Tick(stale)

	_, err = b.Select(catalog.CategoryPremium)
	require.NoError(t, err)
	assert.False(t, b.Tick(stale))
	assert.Equal(t, PhaseExiting, b.Phase())
	assert.Empty(t, b.Shown())

	b.Tick(b.Seq())
	assert.Equal(t, b.VisibleItems()[:1], b.Shown())
}

func TestSelectRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	b := New(catalog.Default())
	_, err := b.Select(catalog.AddOnCategory("crypto"))

	var ve *siteerrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Equal(t, catalog.CategoryWeb, b.Current())
}

func TestEveryCategoryRevealsFully(t *testing.T) {
	t.Parallel()

	b := New(catalog.Default())
	drain(b)
	for _, c := range catalog.Categories()[1:] {
		_, err := b.Select(c)
		require.NoError(t, err)
		assert.Equal(t, len(b.VisibleItems()), drain(b), c)
		assert.Equal(t, b.VisibleItems(), b.Shown())
	}
}
