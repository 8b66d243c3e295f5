package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, 5, c.Len())
	products := c.Products()
	assert.Equal(t, "ABC1", products[0].ProductID)
	assert.Equal(t, 8000.00, products[0].Price)
	assert.Equal(t, "ABCMAX", products[4].ProductID)
	assert.Equal(t, 30000.00, products[4].Price)
}

func TestLookup(t *testing.T) {
	c := Default()

	e, err := c.Lookup("ABCPRO")
	require.NoError(t, err)
	assert.Equal(t, "AirPodsPro", e.Product.Name)
	assert.Equal(t, 3, e.Handle.Index())
	assert.True(t, e.Handle.Valid())
}

func TestLookup_NotFound(t *testing.T) {
	c := Default()

	_, err := c.Lookup("ZZZ")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Contains(t, err.Error(), "ZZZ")
}

func TestLookup_CaseSensitive(t *testing.T) {
	c := Default()

	_, err := c.Lookup("abc1")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLookup_SameEntrySameHandle(t *testing.T) {
	c := Default()

	a, err := c.Lookup("ABC2")
	require.NoError(t, err)
	b, err := c.Lookup("ABC2")
	require.NoError(t, err)

	assert.Equal(t, a.Handle, b.Handle)
}

func TestHandles_DuplicateIDsAreDistinct(t *testing.T) {
	p := models.Product{ProductID: "DUP", Name: "Twin", Price: 1}
	c := New(p, p)

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].Product, entries[1].Product)
	assert.NotEqual(t, entries[0].Handle, entries[1].Handle)

	// Lookup returns the first match.
	e, err := c.Lookup("DUP")
	require.NoError(t, err)
	assert.Equal(t, entries[0].Handle, e.Handle)
}

func TestProducts_ReturnsCopy(t *testing.T) {
	c := Default()

	products := c.Products()
	products[0].Price = 1

	assert.Equal(t, 8000.00, c.Products()[0].Price)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []models.Product{{ProductID: "A", Price: 2}}
	c := New(in...)

	in[0].Price = 99

	assert.Equal(t, 2.0, c.Products()[0].Price)
}

func TestResolve(t *testing.T) {
	c := Default()
	other := Default()

	e, err := c.Lookup("ABC3")
	require.NoError(t, err)

	p, ok := c.Resolve(e.Handle)
	assert.True(t, ok)
	assert.Equal(t, "AirPods3rdGen", p.Name)

	_, ok = other.Resolve(e.Handle)
	assert.False(t, ok, "handle from another catalog must not resolve")

	_, ok = c.Resolve(Handle{})
	assert.False(t, ok)
}
