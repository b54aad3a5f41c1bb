package product_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/product"
	testutil "github.com/techcomputer/portal/tests"
)

func intPtr(i int) *int { return &i }

func TestService_ToggleActive(t *testing.T) {
	prod := product.Product{
		ID:             "p1",
		Title:          "Typing Master Guide",
		TitleBn:        "টাইপিং মাস্টার গাইড",
		Type:           "ebook",
		Description:    "Touch typing from scratch.",
		Price:          250,
		TransactionFee: intPtr(10),
		ThumbnailURL:   "https://cdn.test.tc/thumb.png",
		LogoKey:        "typing-master",
		FileURL:        "https://cdn.test.tc/guide.pdf",
		IsActive:       true,
	}

	repo := &testutil.ProductRepo{Products: []product.Product{prod}}
	svc := product.NewService(repo, core.AlwaysConfirm)

	updated, err := svc.ToggleActive(context.Background(), prod)
	if err != nil {
		t.Fatalf("ToggleActive() failed: %v", err)
	}
	assert.False(t, updated.IsActive)

	// the full payload goes out with only IsActive flipped
	sent := repo.Updated["p1"]
	want := prod.Payload()
	want.IsActive = false
	assert.Equal(t, want, sent)

	// toggling back restores the original payload
	prod.IsActive = false
	if _, err = svc.ToggleActive(context.Background(), prod); err != nil {
		t.Fatalf("ToggleActive() failed: %v", err)
	}
	back := repo.Updated["p1"]
	assert.True(t, back.IsActive)
	back.IsActive = false
	assert.Equal(t, want, back)
}

func TestService_Delete(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		repo := &testutil.ProductRepo{}
		confirm := &testutil.Confirmer{Answer: false}
		svc := product.NewService(repo, confirm)

		err := svc.Delete(context.Background(), "p1")
		assert.Equal(t, core.ErrDeclined, err)
		assert.Empty(t, repo.Deleted)
	})

	t.Run("confirmed", func(t *testing.T) {
		repo := &testutil.ProductRepo{}
		svc := product.NewService(repo, core.AlwaysConfirm)

		if err := svc.Delete(context.Background(), "p1"); err != nil {
			t.Fatalf("Delete() failed: %v", err)
		}
		assert.Equal(t, []string{"p1"}, repo.Deleted)
	})
}

func TestService_QueryActive(t *testing.T) {
	repo := &testutil.ProductRepo{Products: []product.Product{
		{ID: "p1", IsActive: true},
		{ID: "p2", IsActive: false},
		{ID: "p3", IsActive: true},
	}}
	svc := product.NewService(repo, core.AlwaysConfirm)

	active, err := svc.QueryActive(context.Background())
	if err != nil {
		t.Fatalf("QueryActive() failed: %v", err)
	}
	assert.Len(t, active, 2)

	all, err := svc.QueryAll(context.Background())
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	assert.Len(t, all, 3)
}
