package hooks

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/testing/leaktest"
)

const testPoint Point = "sale_flash"

func wrap(tag string) Filter {
	return func(_ context.Context, html string, _ domain.Product) string {
		return "<" + tag + ">" + html + "</" + tag + ">"
	}
}

func TestApply_NoProducerReturnsDefault(t *testing.T) {
	r := NewMemoryRegistry()
	out := r.Apply(context.Background(), testPoint, domain.DefaultSaleFlashHTML, domain.Product{ID: "1"})
	assert.Equal(t, domain.DefaultSaleFlashHTML, out)
	assert.False(t, r.Has(testPoint))
}

func TestApply_RunsFiltersInOrder(t *testing.T) {
	r := NewMemoryRegistry()
	r.Register(testPoint, "a", wrap("a"))
	r.Register(testPoint, "b", wrap("b"))

	out := r.Apply(context.Background(), testPoint, "x", domain.Product{})
	assert.Equal(t, "<b><a>x</a></b>", out)
	assert.Equal(t, []string{"a", "b"}, r.Producers(testPoint))
}

func TestClearThenRegister_LeavesSingleProducer(t *testing.T) {
	r := NewMemoryRegistry()
	r.Register(testPoint, "theme", wrap("theme"))
	r.Register(testPoint, "other-plugin", wrap("other"))
	r.Register("unrelated", "keep", wrap("keep"))

	r.ClearThenRegister(testPoint, "badge", func(_ context.Context, _ string, p domain.Product) string {
		return "badge-" + p.ID
	})

	assert.Equal(t, []string{"badge"}, r.Producers(testPoint))
	assert.Equal(t, "badge-42", r.Apply(context.Background(), testPoint, "ignored", domain.Product{ID: "42"}))
	assert.True(t, r.Has("unrelated"))
}

func TestClearThenRegister_Repeated(t *testing.T) {
	r := NewMemoryRegistry()
	r.ClearThenRegister(testPoint, "badge", wrap("a"))
	r.ClearThenRegister(testPoint, "badge", wrap("b"))

	assert.Len(t, r.Producers(testPoint), 1)
	assert.Equal(t, "<b>x</b>", r.Apply(context.Background(), testPoint, "x", domain.Product{}))
}

func TestClearThenRegister_NilFilterClears(t *testing.T) {
	r := NewMemoryRegistry()
	r.Register(testPoint, "theme", wrap("theme"))
	r.ClearThenRegister(testPoint, "none", nil)
	assert.False(t, r.Has(testPoint))
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := NewMemoryRegistry()
	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.ClearThenRegister(testPoint, "badge", wrap("b"))
		}()
		go func() {
			defer wg.Done()
			out := r.Apply(context.Background(), testPoint, "x", domain.Product{})
			assert.True(t, out == "x" || strings.HasPrefix(out, "<b>"))
		}()
	}
	wg.Wait()
	assert.Equal(t, []string{"badge"}, r.Producers(testPoint))
	checker.Check(0)
}
