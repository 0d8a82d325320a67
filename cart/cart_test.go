package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
)

var kit = models.Product{ID: "kit-001", Name: "Starter Kit", Price: 3500}

func TestAddMergesCatalogLines(t *testing.T) {
	var c Cart
	c.Add(models.NewCatalogItem("line-1", kit, nil, 3500, 1))
	c.Add(models.NewCatalogItem("line-2", kit, nil, 3500, 2))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "line-1", items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3500*3, c.Total())
}

func TestAddKeepsDistinctVariantsApart(t *testing.T) {
	small := models.ProductVariant{ID: "v-s", Name: "Small", Price: 290}
	large := models.ProductVariant{ID: "v-l", Name: "Large", Price: 490}
	seeds := models.Product{ID: "seed-001", Name: "Basil", Variants: []models.ProductVariant{small, large}}

	var c Cart
	c.Add(models.NewCatalogItem("line-1", seeds, &small, 290, 1))
	c.Add(models.NewCatalogItem("line-2", seeds, &large, 490, 1))
	assert.Equal(t, 2, c.Len())
}

func TestAddNeverMergesCustomLines(t *testing.T) {
	cfg := models.DefaultConfig()

	var c Cart
	c.Add(models.NewCustomItem("custom-1", "Smart Farm", cfg, 1500, 1, ""))
	c.Add(models.NewCustomItem("custom-2", "Smart Farm", cfg, 1500, 1, ""))
	assert.Equal(t, 2, c.Len())
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	var c Cart
	c.Add(models.NewCatalogItem("line-1", kit, nil, 3500, 2))

	c.UpdateQuantity("line-1", -999)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.UpdateQuantity("line-1", 4)
	assert.Equal(t, 5, c.Items()[0].Quantity)

	// missing id is a no-op
	c.UpdateQuantity("line-x", 10)
	assert.Equal(t, 5, c.Items()[0].Quantity)
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	var c Cart
	c.Add(models.NewCatalogItem("line-1", kit, nil, 3500, 1))

	c.Remove("line-x")
	assert.Equal(t, 1, c.Len())

	c.Remove("line-1")
	assert.Zero(t, c.Len())
}

func TestClearAndTotal(t *testing.T) {
	var c Cart
	c.Add(models.NewCatalogItem("line-1", kit, nil, 3500, 2))
	c.Add(models.NewCustomItem("custom-1", "Smart Farm", models.DefaultConfig(), 1500, 1, ""))
	assert.Equal(t, 3500*2+1500, c.Total())

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Zero(t, c.Total())
}

func TestItemsReturnsSnapshot(t *testing.T) {
	var c Cart
	c.Add(models.NewCatalogItem("line-1", kit, nil, 3500, 1))

	items := c.Items()
	items[0].Quantity = 99
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestRegistryIsolatesSessions(t *testing.T) {
	reg := NewRegistry()

	reg.With("alice", func(c *Cart) {
		c.Add(models.NewCatalogItem("line-1", kit, nil, 3500, 1))
	})
	reg.With("bob", func(c *Cart) {
		assert.Zero(t, c.Len())
	})
	reg.With("alice", func(c *Cart) {
		assert.Equal(t, 1, c.Len())
	})

	reg.Drop("alice")
	reg.With("alice", func(c *Cart) {
		assert.Zero(t, c.Len())
	})
}

func TestRegistryConcurrentAdds(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.With("shared", func(c *Cart) {
				c.Add(models.NewCatalogItem("line-1", kit, nil, 3500, 1))
			})
		}()
	}
	wg.Wait()

	reg.With("shared", func(c *Cart) {
		require.Equal(t, 1, c.Len())
		assert.Equal(t, 50, c.Items()[0].Quantity)
	})
}
